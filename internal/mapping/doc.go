// Package mapping reads and writes the decisions file: the human-reviewed
// record of which grid label each NS lesson is bound to.
//
// The file turns a one-off review into a repeatable merge. The automatic pass
// honours stored labels where exact matching fails, and entries marked
// manual override whatever the pass decided.
//
// # Schema Overview
//
//	version: "1"
//	classes:
//	  - class: 10A
//	    correlations:
//	      - lesson: "1001"
//	        subject: Математика
//	        teacher: Петрова А. В.
//	        label: Математика — Петрова А. В.
//	        source: auto
//	      - lesson: "1002"
//	        subject: Информатика
//	        teacher: Петров И. С.
//	        label: Информатика — 1:Петров И. С.
//	        source: manual
//	      - lesson: "1003"
//	        subject: ОБЖ
//	        label: ""
//	        candidates: [ОБЖ — Зайцев Л. М.]
//
// # Sources
//
//   - auto: exact subject and teacher match; recomputed on every run
//   - persisted: stored label, used when exact matching finds nothing
//   - manual: reviewer choice, applied after the automatic pass
//
// An empty source defaults to persisted. A manual entry with an empty label
// keeps the lesson unbound.
//
// The subject, teacher and candidates keys are informational; only lesson,
// label and source are read back.
package mapping
