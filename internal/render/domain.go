package render

import (
	"fmt"

	"github.com/ThomasCrouzet/oobgen/internal/model"
)

// Context carries per-device state through the domain mappers for one
// assembly pass.
type Context struct {
	Device model.Device

	// MgmtIP replaces the Management table's own IP Address cell when
	// non-blank. Gateway and Description cells are not affected.
	MgmtIP string

	// DiscoveredSerial is filled by the System mapper when it sees a
	// serial_number row. Only the legacy single-device flow reads it;
	// in inventory mode the row is overwritten before mapping, so the
	// discovered value equals the supplied one.
	DiscoveredSerial string

	records []RecordError
	trailer []string // lines a domain defers to the end of its section
}

func (c *Context) recordErr(table string, rowIndex int, field, reason string) {
	c.records = append(c.records, RecordError{
		Table:    table,
		RowIndex: rowIndex,
		Field:    field,
		Reason:   reason,
	})
}

func (c *Context) defer_(lines ...string) {
	c.trailer = append(c.trailer, lines...)
}

// Records returns the row-level errors collected so far.
func (c *Context) Records() []RecordError {
	return c.records
}

// Domain describes one configuration domain: which table feeds it,
// which columns that table must carry, and how each row maps to set
// commands. All ten domains share the Map loop below; only the per-row
// function differs.
type Domain struct {
	Name     string   // table name, e.g. "NTP"
	Title    string   // section comment, e.g. "NTP Configuration"
	Required []string // columns that must exist in the table header

	// MapRow converts one row into zero or more set commands. A nil
	// result means the row's discriminator was blank and contributes
	// nothing. A non-nil error drops the row as a RecordError; the
	// field name helps diagnostics.
	MapRow func(row model.Row, ctx *Context) (lines []string, field string, err error)
}

// Map renders the domain section for one table: the section comment,
// one batch of lines per row, any deferred trailer lines, and a single
// blank terminator line.
func (d *Domain) Map(t *model.Table, ctx *Context) ([]string, error) {
	for _, col := range d.Required {
		if !t.HasColumn(col) {
			return nil, &ColumnError{Domain: d.Name, Column: col}
		}
	}

	ctx.trailer = nil
	out := []string{"# " + d.Title}

	for i, row := range t.Rows {
		lines, field, err := d.MapRow(row, ctx)
		if err != nil {
			ctx.recordErr(d.Name, i, field, err.Error())
			continue
		}
		out = append(out, lines...)
	}

	out = append(out, ctx.trailer...)
	out = append(out, "")
	return out, nil
}

// ok wraps lines for a MapRow return with no error.
func ok(lines ...string) ([]string, string, error) {
	return lines, "", nil
}

// skip is a MapRow return for a row with a blank discriminator.
func skip() ([]string, string, error) {
	return nil, "", nil
}

func rowErr(field, format string, args ...any) ([]string, string, error) {
	return nil, field, fmt.Errorf(format, args...)
}
