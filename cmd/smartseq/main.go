// Package main is the entry point for smartseq.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/smartseq/internal/app"
	"github.com/dshills/smartseq/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errExit ends run without an error message, e.g. after -help.
var errExit = errors.New("exit")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stdout, stderr)
	if errors.Is(err, errExit) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	opts.Stdin = stdin
	opts.Stdout = stdout
	opts.Stderr = stderr

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stdout, stderr io.Writer) (app.Options, error) {
	var opts app.Options
	var showVersion bool

	fs := flag.NewFlagSet("smartseq", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to a TOML or YAML settings file")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to a settings file (shorthand)")
	fs.BoolVar(&opts.ExpandTabs, "expand-tabs", false, "Expand tabs to spaces before splitting cells")
	fs.IntVar(&opts.TabSize, "tab-size", 0, "Tab stop interval (default from settings, 4)")
	fs.BoolVar(&opts.TrimCells, "trim", false, "Trim blanks around cell text")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.Select, "select", "", "gjson path selecting part of the report")
	fs.BoolVar(&opts.Pretty, "pretty", false, "Indent the JSON output")
	fs.BoolVar(&opts.Dump, "dump", false, "Print each document tree instead of the report")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "smartseq - table cells with source positions\n\n")
		fmt.Fprintf(stderr, "Usage: smartseq [options] [files...]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  smartseq table.md                       Report every cell\n")
		fmt.Fprintf(stderr, "  smartseq -expand-tabs -trim table.md    Expand tabs, trim cells\n")
		fmt.Fprintf(stderr, "  smartseq -select 'documents.0.rows.#'   Count rows from stdin\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, errExit
		}
		return opts, err
	}

	if showVersion {
		fmt.Fprintf(stdout, "smartseq %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return opts, errExit
	}

	if opts.LogLevel != "" {
		if _, ok := logging.ParseLevel(opts.LogLevel); !ok {
			return opts, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", opts.LogLevel)
		}
	}
	if opts.TabSize < 0 {
		return opts, fmt.Errorf("invalid tab size %d", opts.TabSize)
	}

	opts.Files = fs.Args()
	return opts, nil
}
