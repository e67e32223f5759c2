package app

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dshills/smartseq/internal/config"
	"github.com/dshills/smartseq/internal/engine"
	"github.com/dshills/smartseq/internal/engine/cursor"
	"github.com/dshills/smartseq/internal/engine/smart"
	"github.com/dshills/smartseq/internal/engine/width"
)

// Cell is one '|'-delimited cell of a line in the current text.
type Cell struct {
	// Node holds the cell's characters; they track back to the source.
	Node *smart.Node
	// Index is the offset of the cell's first character in the document.
	Index int
}

// SplitCells splits line, which starts at document offset lineStart, into
// table cells. The blank text before a leading '|' is not a cell, and with
// table.TrimCells the blanks around each cell's text are dropped.
func SplitCells(line *smart.Node, lineStart int, table config.TableFormat) []Cell {
	fnb := cursor.New(line.Safe(), 0).FirstNonBlank()
	leadPipe := fnb < line.Len() && line.CharAt(fnb) == '|'

	parts := line.SplitParts('|', false)
	cells := make([]Cell, 0, len(parts))
	at := lineStart
	for i, p := range parts {
		index := at
		at += p.Len() + 1
		if i == 0 && leadPipe {
			continue
		}
		if table.TrimCells && !p.IsEmpty() {
			c := cursor.New(p.Safe(), 0)
			start, end := c.FirstNonBlank(), c.AfterLastNonBlank()
			p = p.SubSequence(start, end)
			index += start
		}
		cells = append(cells, Cell{Node: p, Index: index})
	}
	return cells
}

// BuildReport renders the cells of every document as JSON.
func BuildReport(docs []*Document, table config.TableFormat) ([]byte, error) {
	report := []byte(`{"documents":[]}`)
	for _, d := range docs {
		raw, err := documentReport(d, table)
		if err != nil {
			return nil, NewOperationError("report", d.Name, err)
		}
		if report, err = sjson.SetRawBytes(report, "documents.-1", raw); err != nil {
			return nil, NewOperationError("report", d.Name, err)
		}
	}
	return report, nil
}

// object accumulates sjson writes, keeping the first error.
type object struct {
	json []byte
	err  error
}

func newObject(raw string) *object { return &object{json: []byte(raw)} }

func (o *object) set(path string, value any) {
	if o.err != nil {
		return
	}
	if out, err := sjson.SetBytes(o.json, path, value); err != nil {
		o.err = err
	} else {
		o.json = out
	}
}

func (o *object) setRaw(path string, raw []byte) {
	if o.err != nil {
		return
	}
	if out, err := sjson.SetRawBytes(o.json, path, raw); err != nil {
		o.err = err
	} else {
		o.json = out
	}
}

func documentReport(d *Document, table config.TableFormat) ([]byte, error) {
	doc := d.Doc
	tree := doc.Tree()
	text := tree.String()
	current := width.NewTerminal(text)
	original := width.NewTerminal(doc.Original().String())
	mark := doc.Errors().Snapshot()

	out := newObject(`{"rows":[]}`)
	out.set("name", d.Name)
	out.set("path", d.Path)
	out.set("length", tree.Len())
	out.set("version", doc.Version())
	out.set("lines", current.LineCount())
	out.set("edits", doc.UndoCount())

	for line := 0; line < current.LineCount() && out.err == nil; line++ {
		start, _ := current.LineStart(line)
		end, _ := current.LineEnd(line)

		row := newObject(`{"cells":[]}`)
		row.set("line", line)
		row.set("start", start)
		for _, c := range SplitCells(tree.SubSequence(start, end), start, table) {
			cell, err := cellReport(c, doc, tree, start, current, original)
			if err != nil {
				return nil, err
			}
			row.setRaw("cells.-1", cell)
		}
		if row.err != nil {
			return nil, row.err
		}
		out.setRaw("rows.-1", row.json)
	}

	out.set("softErrors", doc.Errors().Since(mark))
	return out.json, out.err
}

func cellReport(c Cell, doc *engine.Document, tree *smart.Node, lineStart int, current, original *width.Terminal) ([]byte, error) {
	text := c.Node.String()
	prefix := tree.SubSequence(lineStart, c.Index).String()

	cell := newObject(`{}`)
	cell.set("text", text)
	cell.set("index", c.Index)
	cell.set("length", c.Node.Len())
	cell.set("column", c.Index-lineStart)
	cell.set("displayColumn", current.StringWidth(prefix, ""))
	cell.set("width", current.StringWidth(text, ""))

	if c.Node.IsEmpty() {
		cell.set("source", nil)
		return cell.json, cell.err
	}

	loc := tree.TrackedSourceLocation(c.Index)
	if loc.Source != nil {
		cell.set("source.name", loc.Source.Name())
	}
	cell.set("source.offset", loc.Offset)
	cell.set("source.exact", loc.IsExact())
	cell.set("source.original", loc.Source == doc.Source())
	if loc.Source != doc.Source() {
		return cell.json, cell.err
	}
	if line, ok := original.OffsetLineNumber(loc.Offset); ok {
		ls, _ := original.OffsetLineStart(loc.Offset)
		cell.set("source.line", line)
		cell.set("source.column", loc.Offset-ls)
	}
	return cell.json, cell.err
}

// Select returns the JSON value at a gjson path in report.
func Select(report []byte, path string) ([]byte, error) {
	res := gjson.GetBytes(report, path)
	if !res.Exists() {
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, path)
	}
	return []byte(res.Raw), nil
}

// Pretty indents JSON for terminal output.
func Pretty(json []byte) []byte {
	return pretty.Pretty(json)
}
