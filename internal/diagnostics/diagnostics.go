// Package diagnostics defines the coded error and warning types reported
// by the matchbox engine.
//
// Every failure class has a stable code: R-codes for registration, C-codes
// for construction, P-codes for pattern compilation, M-codes for matching,
// S-codes for schema documents. Warnings are non-fatal and reported
// alongside a successful result.
package diagnostics

import (
	"errors"
	"fmt"
)

type Code string

const (
	ErrR001 Code = "R001" // two variants share a name in one definition
	ErrR002 Code = "R002" // variant name is not registered
	ErrC001 Code = "C001" // constructor called with wrong argument count
	ErrC002 Code = "C002" // field value violates its constraint
	ErrP001 Code = "P001" // pattern source is malformed
	ErrP002 Code = "P002" // pattern references an unregistered variant
	ErrM001 Code = "M001" // no clause matched the subject
	ErrM002 Code = "M002" // pattern arity disagrees with subject arity
	ErrS001 Code = "S001" // schema document is invalid

	WarnU001 Code = "U001" // clause is unreachable (follows a catch-all)
)

// Error is a generic coded diagnostic. Line and Column are zero unless the
// error originates in pattern source text.
type Error struct {
	Code    Code
	Message string
	Line    int
	Column  int
}

func NewError(code Code, format string, a ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

func NewErrorAt(code Code, line, column int, format string, a ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, a...),
		Line:    line,
		Column:  column,
	}
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] %d:%d: %s", e.Code, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// CodeOf extracts the diagnostic code from err, unwrapping as needed.
// Returns the empty code for nil and for foreign errors.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var c interface{ code() Code }
	if errors.As(err, &c) {
		return c.code()
	}
	return ""
}

// --- Typed taxonomy --------------------------------------------------------

// DuplicateVariantError: two variants in the same Define call share a name.
type DuplicateVariantError struct {
	TypeName string
	Variant  string
}

func (e *DuplicateVariantError) Error() string {
	return fmt.Sprintf("[%s] duplicate variant %s in definition of type %s", ErrR001, e.Variant, e.TypeName)
}

func (e *DuplicateVariantError) code() Code { return ErrR001 }

// UnknownVariantError: a constructor call or constructor pattern names a
// variant no registered type declares.
type UnknownVariantError struct {
	Variant string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("[%s] unknown variant %s", ErrR002, e.Variant)
}

func (e *UnknownVariantError) code() Code { return ErrR002 }

// ArityMismatchError: field count disagreement, either at construction
// (wrong argument count) or at match time (constructor pattern whose
// subpattern count differs from the subject's field count).
type ArityMismatchError struct {
	Variant string
	Want    int
	Got     int
	AtMatch bool
}

func (e *ArityMismatchError) Error() string {
	if e.AtMatch {
		return fmt.Sprintf("[%s] pattern %s expects %d fields, subject has %d", ErrM002, e.Variant, e.Want, e.Got)
	}
	return fmt.Sprintf("[%s] constructor %s expects %d arguments, got %d", ErrC001, e.Variant, e.Want, e.Got)
}

func (e *ArityMismatchError) code() Code {
	if e.AtMatch {
		return ErrM002
	}
	return ErrC001
}

// FieldTypeError: a constructor argument violates the declared field
// constraint. FieldIndex is zero-based and names the first violating field.
type FieldTypeError struct {
	Variant    string
	FieldIndex int
	Constraint string
	Value      string
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("[%s] field %d of %s: value %s does not satisfy constraint %s",
		ErrC002, e.FieldIndex, e.Variant, e.Value, e.Constraint)
}

func (e *FieldTypeError) code() Code { return ErrC002 }

// NoMatchError: every clause rejected the subject. Subject carries the
// subject's variant tag, or its literal rendering for leaf subjects.
type NoMatchError struct {
	Subject string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("[%s] no clause matched subject %s", ErrM001, e.Subject)
}

func (e *NoMatchError) code() Code { return ErrM001 }

// UnreachableClauseWarning: a clause follows a catch-all and can never be
// selected. Non-fatal; matching proceeds with the clauses up to and
// including the catch-all.
type UnreachableClauseWarning struct {
	ClauseIndex int
}

func (w *UnreachableClauseWarning) String() string {
	return fmt.Sprintf("[%s] clause %d is unreachable: it follows a catch-all", WarnU001, w.ClauseIndex)
}
