// Package codepage converts between the legacy single-byte encodings of the
// exported documents and UTF-8.
package codepage

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// Default is the encoding both exports are written in.
const Default = "windows-1251"

// Lookup resolves an encoding by its WHATWG name or label ("cp1251",
// "windows-1251", "utf-8", ...). An empty name selects Default.
func Lookup(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return charmap.Windows1251, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}

	return enc, nil
}

// Decode converts data from enc to UTF-8. A nil enc means UTF-8 input.
func Decode(data []byte, enc encoding.Encoding) ([]byte, error) {
	if enc == nil || enc == unicode.UTF8 {
		return data, nil
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return out, nil
}

// Encode converts UTF-8 text to enc. Characters the encoding cannot represent
// are an error.
func Encode(text string, enc encoding.Encoding) ([]byte, error) {
	if enc == nil || enc == unicode.UTF8 {
		return []byte(text), nil
	}

	out, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return out, nil
}
