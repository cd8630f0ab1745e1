package render

import (
	"fmt"
	"strings"
)

// StructuralError reports a dataset shape problem that makes the whole
// run unreliable, e.g. an inventory column that cannot be located.
type StructuralError struct {
	Table string
	Field string
	Found []string // column names actually present, for diagnostics
}

func (e *StructuralError) Error() string {
	msg := fmt.Sprintf("%s table: cannot locate %s", e.Table, e.Field)
	if len(e.Found) > 0 {
		msg += fmt.Sprintf(" (found columns: %s)", strings.Join(e.Found, ", "))
	}
	return msg
}

// ColumnError reports a required column missing from a domain table.
// The affected device is skipped; other devices still render.
type ColumnError struct {
	Domain string
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s table: missing required column %q", e.Domain, e.Column)
}

// RecordError reports a single malformed row. The row's contribution
// is dropped and rendering of the device continues.
type RecordError struct {
	Table    string
	RowIndex int // zero-based data row index
	Field    string
	Reason   string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s row %d: field %q: %s", e.Table, e.RowIndex+1, e.Field, e.Reason)
}

// DeviceError wraps a failure that is fatal for one device only.
type DeviceError struct {
	Serial string
	Domain string
	Err    error
}

func (e *DeviceError) Error() string {
	if e.Domain != "" {
		return fmt.Sprintf("device %s: %s: %v", e.Serial, e.Domain, e.Err)
	}
	return fmt.Sprintf("device %s: %v", e.Serial, e.Err)
}

func (e *DeviceError) Unwrap() error {
	return e.Err
}
