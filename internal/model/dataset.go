package model

// Row maps column names to raw cell values. A column that was absent
// from the source has no key at all; a column that was present but
// empty maps to "".
type Row map[string]string

// Get returns the cell value for a column, or "" if the column is absent.
func (r Row) Get(col string) string {
	return r[col]
}

// Lookup returns the cell value and whether the column exists in the row.
func (r Row) Lookup(col string) (string, bool) {
	v, ok := r[col]
	return v, ok
}

// Table is one named configuration domain: an ordered header plus rows
// in source order.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the table header contains the given column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the table. Used when per-device
// overrides must be applied without mutating the shared dataset.
func (t *Table) Clone() *Table {
	out := &Table{
		Name:    t.Name,
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]Row, len(t.Rows)),
	}
	for i, row := range t.Rows {
		copied := make(Row, len(row))
		for k, v := range row {
			copied[k] = v
		}
		out.Rows[i] = copied
	}
	return out
}

// Dataset is the shared collection of domain tables. It is built once
// by the input sources and read-only for the rest of the run.
type Dataset struct {
	Tables map[string]*Table
	Order  []string // table names in insertion order
}

// NewDataset creates an initialized Dataset.
func NewDataset() *Dataset {
	return &Dataset{Tables: make(map[string]*Table)}
}

// Add registers a table. If a table with the same name already exists,
// rows are appended and new columns merged into the header.
func (d *Dataset) Add(t *Table) {
	existing, ok := d.Tables[t.Name]
	if !ok {
		d.Tables[t.Name] = t
		d.Order = append(d.Order, t.Name)
		return
	}
	for _, col := range t.Columns {
		if !existing.HasColumn(col) {
			existing.Columns = append(existing.Columns, col)
		}
	}
	existing.Rows = append(existing.Rows, t.Rows...)
}

// Table returns the named table, or nil if absent.
func (d *Dataset) Table(name string) *Table {
	return d.Tables[name]
}

// Has reports whether the dataset contains the named table.
func (d *Dataset) Has(name string) bool {
	_, ok := d.Tables[name]
	return ok
}
