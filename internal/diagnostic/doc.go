// Package diagnostic provides structured warnings, errors, and notes for the
// non-fatal conditions met while correlating and assembling timetables.
//
// Key capabilities:
//   - Unresolved lesson references (unknown teacher or subject id)
//   - Incomplete class correlations with nearest-label suggestions
//   - Classes present in only one of the two documents
//   - Grid lessons skipped during assembly
package diagnostic
