package salesdata

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Loader errors wrap exactly one of these.
var (
	ErrFileAccess    = errors.New("file access")
	ErrParse         = errors.New("parse")
	ErrColumnMissing = errors.New("column missing")
	ErrType          = errors.New("non-numeric value")

	errNotFinite = errors.New("value is not finite")
)

// ColumnError names a required header that was not found.
type ColumnError struct {
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%v: %q", ErrColumnMissing, e.Column)
}

func (e *ColumnError) Unwrap() error { return ErrColumnMissing }

// CellError describes a numeric cell that failed to parse. Row is 1-based and counts the header.
type CellError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d column %q: %v %q", e.Row, e.Column, ErrType, e.Value)
}

func (e *CellError) Unwrap() []error { return []error{ErrType, e.Err} }
