// Package pipeline sequences a conversion run: load both documents, correlate
// them, and assemble the merged NS document.
//
// A Session owns the correlation state of one run. Its methods may be called
// from concurrent HTTP handlers; mutation and assembly never overlap.
package pipeline
