// Package app wires configuration, logging and documents together for
// the smartseq command.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/dshills/smartseq/internal/config"
	"github.com/dshills/smartseq/internal/engine"
	"github.com/dshills/smartseq/internal/engine/smart"
	"github.com/dshills/smartseq/internal/logging"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the path to a TOML or YAML settings file.
	ConfigPath string

	// Files are the inputs. With none, Stdin is read.
	Files []string

	// ExpandTabs forces tab expansion on top of the configured setting.
	ExpandTabs bool

	// TabSize overrides document.tabSize when positive.
	TabSize int

	// TrimCells forces cell trimming on top of the configured setting.
	TrimCells bool

	// LogLevel overrides logging.level when set.
	LogLevel string

	// Select is a gjson path applied to the report before printing.
	Select string

	// Pretty indents the printed JSON.
	Pretty bool

	// Dump prints each document tree instead of the report.
	Dump bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Application loads the inputs and reports on them.
type Application struct {
	mu sync.Mutex

	opts      Options
	config    *config.Config
	logger    *logging.Logger
	documents *DocumentManager
	table     config.TableFormat
}

// New creates an Application, loading configuration and opening every
// input. Open failures for individual files are collected and returned
// together after the rest have been opened.
func New(opts Options) (*Application, error) {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	app := &Application{opts: opts}
	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	app.config = config.New(config.WithFile(app.opts.ConfigPath))
	if err := app.config.Load(context.Background()); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if app.opts.TabSize > 0 {
		if err := app.config.Set("document.tabSize", app.opts.TabSize); err != nil {
			return &InitError{Component: "config", Err: err}
		}
	}
	if app.opts.ExpandTabs {
		if err := app.config.Set("document.expandTabs", true); err != nil {
			return &InitError{Component: "config", Err: err}
		}
	}
	if app.opts.TrimCells {
		if err := app.config.Set("table.trimCells", true); err != nil {
			return &InitError{Component: "config", Err: err}
		}
	}
	if app.opts.LogLevel != "" {
		if err := app.config.Set("logging.level", app.opts.LogLevel); err != nil {
			return &InitError{Component: "config", Err: err}
		}
	}

	// 2. Logger
	level, _ := logging.ParseLevel(app.config.Logging().Level)
	cfg := logging.DefaultConfig()
	cfg.Level = level
	cfg.Output = app.opts.Stderr
	app.logger = logging.New(cfg)

	// 3. Documents
	docCfg := app.config.Document()
	engineOpts := []engine.Option{
		engine.WithTabSize(docCfg.TabSize),
		engine.WithMaxUndoEntries(docCfg.MaxUndoEntries),
		engine.WithLogger(app.logger.WithComponent("engine")),
	}
	if docCfg.ReadOnly {
		engineOpts = append(engineOpts, engine.WithReadOnly())
	}
	app.documents = NewDocumentManager(engineOpts...)
	app.table = app.config.Table()

	var errs ErrorList
	if len(app.opts.Files) == 0 {
		_, err := app.documents.OpenReader("<stdin>", app.opts.Stdin)
		errs.Add(err)
	}
	for _, file := range app.opts.Files {
		doc, err := app.documents.Open(file)
		if err != nil {
			app.logger.Error("%v", err)
			errs.Add(err)
			continue
		}
		app.logger.WithField("path", doc.Path).Debug("opened %d characters", doc.Doc.Len())
	}

	// 4. Tab expansion
	if docCfg.ExpandTabs {
		for _, doc := range app.documents.All() {
			if err := doc.Doc.ExpandTabs(); err != nil {
				if errors.Is(err, engine.ErrReadOnly) {
					app.logger.WithField("document", doc.Name).Warn("read-only, tabs left unexpanded")
					continue
				}
				errs.Add(NewOperationError("expand", doc.Name, err))
			}
		}
	}

	if err := errs.AsError(); err != nil {
		return &InitError{Component: "documents", Err: err}
	}
	return nil
}

// Run writes the report, the selected part of it, or the tree dumps to
// Stdout.
func (app *Application) Run(ctx context.Context) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	docs := app.documents.All()
	if len(docs) == 0 {
		return ErrNoDocuments
	}

	if app.opts.Dump {
		for _, doc := range docs {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := io.WriteString(app.opts.Stdout, smart.Dump(doc.Doc.Tree())+"\n"); err != nil {
				return err
			}
		}
		return nil
	}

	out, err := BuildReport(docs, app.table)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if app.opts.Select != "" {
		if out, err = Select(out, app.opts.Select); err != nil {
			return NewOperationError("select", app.opts.Select, err)
		}
	}
	if app.opts.Pretty {
		out = Pretty(out)
	} else {
		out = append(out, '\n')
	}

	app.logger.Debug("report of %d documents, %d bytes", len(docs), len(out))
	_, err = app.opts.Stdout.Write(out)
	return err
}

// Config returns the loaded configuration.
func (app *Application) Config() *config.Config { return app.config }

// Documents returns the document manager.
func (app *Application) Documents() *DocumentManager { return app.documents }

// Logger returns the application logger.
func (app *Application) Logger() *logging.Logger { return app.logger }

// Table returns the table-format policy in effect.
func (app *Application) Table() config.TableFormat { return app.table }
