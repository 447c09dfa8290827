package correlate

//go:generate go tool stringer -type=Source -linecomment -output=source_string.go

// Source records how a binding was made.
type Source int

const (
	SourceAuto      Source = iota + 1 // auto
	SourcePersisted                   // persisted
	SourceManual                      // manual
)

// ParseSource maps the textual form back to a Source.
func ParseSource(s string) (Source, bool) {
	for _, src := range []Source{SourceAuto, SourcePersisted, SourceManual} {
		if src.String() == s {
			return src, true
		}
	}
	return 0, false
}
