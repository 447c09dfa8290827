package assemble

import (
	"fmt"

	"golang.org/x/text/encoding"

	"timetable-merge/internal/codepage"
	"timetable-merge/internal/correlate"
	"timetable-merge/internal/model"
)

// Merge builds the bucket matrix of pairs, renders it in the line ending and
// encoding of original, and splices it into original.
func Merge(original []byte, pairs []*correlate.Correlation, slots int, enc encoding.Encoding) ([]byte, Stats, error) {
	m, stats := Build(pairs, len(model.Days), slots)

	rendered, err := codepage.Encode(Render(m, LineEnding(original)), enc)
	if err != nil {
		return nil, stats, fmt.Errorf("encode week block: %w", err)
	}

	out, err := Splice(original, rendered)
	if err != nil {
		return nil, stats, err
	}

	return out, stats, nil
}
