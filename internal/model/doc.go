// Package model holds the canonical, read-only-after-construction view of both
// timetable documents.
//
// NS-side entities (Room, Teacher, Subject, NSLesson, NSClass) carry the stable
// identifiers of the exchange document. Grid-side entities (GridLesson,
// GridClass) carry only free-text labels; a Label is the join key candidate
// between the two vocabularies:
//
//	"{subjectName} — {rawTeacherField}"
//
// Label sets are derived once after grid parsing and are only consumed
// afterwards.
package model
