// Package docerr defines the fatal error types raised while loading the two
// timetable documents and while splicing the merged result.
package docerr

import (
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=DocKind -linecomment -output=dockind_string.go

// DocKind identifies which input document an error belongs to.
type DocKind int

const (
	_ DocKind = iota

	DocNS   // NS document
	DocGrid // grid document
)

// Sentinels for the structural constructs whose absence aborts a load.
var (
	ErrMissingRooms    = errors.New("rooms section not found")
	ErrMissingTeachers = errors.New("teachers section not found")
	ErrMissingSubjects = errors.New("subjects section not found")
	ErrMissingPlan     = errors.New("plan section not found")
	ErrMalformed       = errors.New("malformed markup")
	ErrBadClass        = errors.New("invalid class definition")

	ErrMissingTable = errors.New("data table not found")
	ErrNoClasses    = errors.New("header row has no class columns")
	ErrNoDayLabel   = errors.New("day label cell with rowspan not found")
	ErrRowCount     = errors.New("lesson row count does not match slots x days")
	ErrTooManyDays  = errors.New("more working days than known days")

	ErrWeekOpen  = errors.New("week block open tag not found")
	ErrWeekClose = errors.New("week block close tag not found")
)

// ParseError is a structural failure while reading one of the input documents.
type ParseError struct {
	Doc       DocKind
	Construct string // offending section, tag or cross-check
	Detail    string
	Err       error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Doc, e.Construct)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// NS builds a ParseError for the NS document.
func NS(construct string, err error, detail string) *ParseError {
	return &ParseError{Doc: DocNS, Construct: construct, Detail: detail, Err: err}
}

// Grid builds a ParseError for the grid document.
func Grid(construct string, err error, detail string) *ParseError {
	return &ParseError{Doc: DocGrid, Construct: construct, Detail: detail, Err: err}
}

// AssembleError is a failure to splice the rendered week into the NS document.
type AssembleError struct {
	Tag string
	Err error
}

func (e *AssembleError) Error() string {
	return fmt.Sprintf("assemble: %s: %v", e.Tag, e.Err)
}

func (e *AssembleError) Unwrap() error { return e.Err }

// Kind reports which document a load error belongs to, if any.
func Kind(err error) (DocKind, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Doc, true
	}
	return 0, false
}
