// Package grid reads the tabular HTML timetable export into the canonical
// model.
//
// The export is one table: a header row naming the classes after a day
// column and a bell-schedule column, then days × slots lesson rows. The first
// row of every day starts with a day label cell spanning all of that day's
// slots; its rowspan is the slot count.
package grid

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/encoding"

	"timetable-merge/internal/codepage"
	"timetable-merge/internal/docerr"
	"timetable-merge/internal/model"
)

// leadingColumns is the day label column plus the bell-schedule column.
const leadingColumns = 2

// Document is the parsed grid export. Slots and Days are derived from the
// table itself and belong to this document only.
type Document struct {
	Slots   int
	Days    int
	Classes []*model.GridClass
}

// ClassByName returns the class column whose name matches, ignoring case.
func (d *Document) ClassByName(name string) (*model.GridClass, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for _, c := range d.Classes {
		if strings.ToUpper(c.Name) == name {
			return c, true
		}
	}
	return nil, false
}

// Lessons returns the number of lesson occurrences over all classes.
func (d *Document) Lessons() int {
	n := 0
	for _, c := range d.Classes {
		n += len(c.Lessons)
	}
	return n
}

// ParseFile reads and parses the export at path.
func ParseFile(path string, enc encoding.Encoding) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid document %s: %w", path, err)
	}

	return Parse(data, enc)
}

// Parse decodes data from enc and builds the grid side of the model.
func Parse(data []byte, enc encoding.Encoding) (*Document, error) {
	text, err := codepage.Decode(data, enc)
	if err != nil {
		return nil, docerr.Grid("encoding", err, "")
	}

	root, err := html.Parse(bytes.NewReader(text))
	if err != nil {
		return nil, docerr.Grid("markup", docerr.ErrMalformed, err.Error())
	}

	table, ok := findTable(root)
	if !ok {
		return nil, docerr.Grid("table", docerr.ErrMissingTable, "")
	}

	rows := tableRows(table)
	if len(rows) == 0 {
		return nil, docerr.Grid("table", docerr.ErrMissingTable, "table has no rows")
	}

	doc := &Document{}

	header := rowCells(rows[0])
	for i := leadingColumns; i < len(header); i++ {
		doc.Classes = append(doc.Classes, model.NewGridClass(segmentText(header[i])))
	}
	if len(doc.Classes) == 0 {
		return nil, docerr.Grid("header", docerr.ErrNoClasses, "")
	}

	body := rows[1:]
	if err := doc.measure(body); err != nil {
		return nil, err
	}

	for day := range doc.Days {
		chunk := body[day*doc.Slots : (day+1)*doc.Slots]
		for slot, row := range chunk {
			doc.readRow(row, model.Days[day], slot)
		}
	}

	for _, c := range doc.Classes {
		c.DeriveLabels()
	}

	return doc, nil
}

// measure derives Slots and Days from the day label cells and cross-checks
// them against the number of lesson rows. The day label is the first cell of
// the first row of each day; its rowspan is the slot count.
func (d *Document) measure(body []*html.Node) error {
	span := ""
	if len(body) > 0 {
		if cells := rowCells(body[0]); len(cells) > 0 {
			if v, ok := attr(cells[0], "rowspan"); ok {
				span = strings.TrimSpace(v)
			}
		}
	}

	slots, err := strconv.Atoi(span)
	if err != nil || slots < 1 {
		return docerr.Grid("day label", docerr.ErrNoDayLabel, fmt.Sprintf("rowspan %q", span))
	}

	days := 0
	for i := 0; i < len(body); i += slots {
		cells := rowCells(body[i])
		if len(cells) == 0 {
			break
		}
		if v, ok := attr(cells[0], "rowspan"); !ok || strings.TrimSpace(v) != span {
			break
		}
		days++
	}

	if len(body) != slots*days {
		return docerr.Grid("rows", docerr.ErrRowCount,
			fmt.Sprintf("slots=%d days=%d rows=%d", slots, days, len(body)))
	}

	if days > len(model.Days) {
		return docerr.Grid("days", docerr.ErrTooManyDays, fmt.Sprintf("days=%d", days))
	}

	d.Slots, d.Days = slots, days

	return nil
}

// readRow decomposes the class cells of one lesson row.
func (d *Document) readRow(row *html.Node, day model.Day, slot int) {
	cells := rowCells(row)

	skip := 1 // bell schedule
	if slot == 0 {
		skip = leadingColumns
	}
	if skip > len(cells) {
		skip = len(cells)
	}
	cells = cells[skip:]

	for i, class := range d.Classes {
		if i >= len(cells) {
			break
		}
		for _, g := range decompose(segments(cells[i])) {
			class.AddLesson(model.NewGridLesson(g.subject, g.teacher, g.room, day, slot))
		}
	}
}

func findTable(n *html.Node) (*html.Node, bool) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Table {
		return n, true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t, ok := findTable(c); ok {
			return t, true
		}
	}
	return nil, false
}

// tableRows returns the rows of table, looking through thead/tbody/tfoot but
// not into nested tables.
func tableRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	for c := table.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Tr:
			rows = append(rows, c)
		case atom.Thead, atom.Tbody, atom.Tfoot:
			for r := c.FirstChild; r != nil; r = r.NextSibling {
				if r.Type == html.ElementNode && r.DataAtom == atom.Tr {
					rows = append(rows, r)
				}
			}
		}
	}
	return rows
}

func rowCells(row *html.Node) []*html.Node {
	var cells []*html.Node
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.DataAtom == atom.Td || c.DataAtom == atom.Th) {
			cells = append(cells, c)
		}
	}
	return cells
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
