// Package assemble turns correlations into the week block of an NS document.
//
// Every grid lesson whose label is bound to an NS lesson contributes that
// lesson's id to a day×slot bucket. The buckets are rendered as <Day> blocks
// and spliced between the <Week> and </Week> lines of the original document;
// all other bytes are copied through unchanged.
package assemble
