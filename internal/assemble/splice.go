package assemble

import (
	"bytes"

	"timetable-merge/internal/docerr"
)

const (
	weekOpen  = "<Week"
	weekClose = "</week>"
)

// weekSpan locates the open line (trimmed prefix <Week, case-sensitive) and
// the first later close line (trimmed prefix </week>, any case).
func weekSpan(lines [][]byte) (open, closing int, err error) {
	open = -1
	for i, line := range lines {
		if bytes.HasPrefix(bytes.TrimSpace(line), []byte(weekOpen)) {
			open = i
			break
		}
	}

	if open < 0 {
		return 0, 0, &docerr.AssembleError{Tag: weekOpen, Err: docerr.ErrWeekOpen}
	}

	for i := open + 1; i < len(lines); i++ {
		if bytes.HasPrefix(bytes.ToLower(bytes.TrimSpace(lines[i])), []byte(weekClose)) {
			return open, i, nil
		}
	}

	return 0, 0, &docerr.AssembleError{Tag: weekClose, Err: docerr.ErrWeekClose}
}

// Splice replaces the lines strictly between the week open and close lines
// of original with rendered. Both tag lines and everything outside them are
// kept byte for byte.
func Splice(original, rendered []byte) ([]byte, error) {
	lines := bytes.SplitAfter(original, []byte("\n"))

	open, closing, err := weekSpan(lines)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(original)+len(rendered))
	for _, line := range lines[:open+1] {
		out = append(out, line...)
	}

	out = append(out, rendered...)

	for _, line := range lines[closing:] {
		out = append(out, line...)
	}

	return out, nil
}

// LineEnding returns the line terminator of the week open line, "\n" when
// it has none of its own.
func LineEnding(original []byte) string {
	lines := bytes.SplitAfter(original, []byte("\n"))

	open, _, err := weekSpan(lines)
	if err == nil && bytes.HasSuffix(lines[open], []byte("\r\n")) {
		return "\r\n"
	}

	return "\n"
}
