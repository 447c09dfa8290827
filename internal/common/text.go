package common

import "strings"

// CollapseSpace trims s and folds every run of whitespace, including
// non-breaking spaces, into a single space.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
