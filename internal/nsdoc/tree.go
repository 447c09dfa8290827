package nsdoc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// element is the minimal tree the NS parser needs: names and attribute keys
// are folded to lower case, text content is dropped.
type element struct {
	name     string
	attrs    map[string]string
	children []*element
}

// attr returns the attribute value, or "" when absent.
func (e *element) attr(name string) string {
	return e.attrs[name]
}

// child finds the first direct child whose tag equals name, ignoring case.
func (e *element) child(name string) (*element, bool) {
	for _, c := range e.children {
		if c.name == strings.ToLower(name) {
			return c, true
		}
	}
	return nil, false
}

// buildTree tokenizes UTF-8 markup into an element tree and returns its root.
// Unclosed elements, including those still open at the end of input, are
// closed implicitly.
func buildTree(data []byte) (*element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false
	dec.Entity = xml.HTMLEntity
	// Input is already UTF-8; the prolog may still name the legacy charset.
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	var (
		root  *element
		stack []*element
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		var se *xml.SyntaxError
		if errors.As(err, &se) && se.Msg == "unexpected EOF" && root != nil {
			// Truncated before the outer close tags.
			break
		}
		if err != nil {
			line, _ := dec.InputPos()
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{
				name:  strings.ToLower(t.Name.Local),
				attrs: make(map[string]string, len(t.Attr)),
			}
			for _, a := range t.Attr {
				el.attrs[strings.ToLower(a.Name.Local)] = a.Value
			}

			if len(stack) == 0 {
				if root == nil {
					root = el
				}
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if root == nil {
		return nil, errors.New("document has no root element")
	}

	return root, nil
}
