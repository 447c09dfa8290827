package grid

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"timetable-merge/internal/common"
)

// lineBreaks end the current text segment of a cell.
var lineBreaks = map[atom.Atom]bool{
	atom.Br:    true,
	atom.Hr:    true,
	atom.Div:   true,
	atom.P:     true,
	atom.Li:    true,
	atom.Table: true,
	atom.Tr:    true,
	atom.Td:    true,
	atom.Th:    true,
}

// segments splits the text of n into its visual lines: nested cells, blocks
// and <br> separate lines, inline markup does not. Empty lines are dropped.
func segments(n *html.Node) []string {
	var (
		out []string
		cur strings.Builder
	)

	flush := func() {
		if s := common.CollapseSpace(cur.String()); s != "" {
			out = append(out, s)
		}
		cur.Reset()
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				cur.WriteString(c.Data)
			case html.ElementNode:
				brk := lineBreaks[c.DataAtom]
				if brk {
					flush()
				}
				walk(c)
				if brk {
					flush()
				}
			}
		}
	}

	walk(n)
	flush()

	return out
}

// segmentText is the whole text of n on one line.
func segmentText(n *html.Node) string {
	return strings.Join(segments(n), " ")
}

// group is one resolved (subject, teacher, room) triple of a cell.
type group struct {
	subject string
	teacher string
	room    string
}

// decompose turns the lines of a class cell into lesson groups.
//
// The first line holds the subject names, "/"-separated when the class is
// split into groups; the last line holds the room when there are at least
// three lines; the lines in between hold one teacher per group. Names are
// paired with teachers by position, and an empty name repeats the nearest
// non-empty name before it.
func decompose(lines []string) []group {
	nameLine, ok := common.First(lines)
	if !ok {
		return nil
	}

	var teachers []string
	room := ""
	switch {
	case len(lines) >= 3:
		teachers = lines[1 : len(lines)-1]
		room, _ = common.Last(lines)
	case len(lines) == 2:
		teachers = lines[1:]
	}

	names := strings.Split(nameLine, "/")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}

	if len(teachers) == 0 {
		teachers = make([]string, len(names))
	}

	fallback, _ := common.FirstNonZero(names)

	groups := make([]group, 0, len(teachers))
	prev := ""
	for i, teacher := range teachers {
		name := common.At(names, i)
		switch {
		case name != "":
			prev = name
		case prev != "":
			name = prev
		default:
			name = fallback
		}
		if name == "" && teacher == "" {
			continue
		}
		groups = append(groups, group{subject: name, teacher: teacher, room: room})
	}

	return groups
}
