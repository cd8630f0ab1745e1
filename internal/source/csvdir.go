package source

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ThomasCrouzet/oobgen/internal/model"
)

func init() {
	Register(func() Source { return &CSVDirSource{} })
}

// knownTables is the fixed load order for CSV exports: one
// <Table>.csv file per domain, exported sheet by sheet.
var knownTables = []string{
	"System",
	"NTP",
	"Syslog",
	"TACACS",
	"VLANs",
	"IRB_Interfaces",
	"Interfaces",
	"Management",
	"Hardening",
	"SNMP",
	"Inventory",
}

// CSVDirSource loads a directory of per-domain CSV files. The first
// record is the header; '#'-prefixed lines are comments. Tables are
// loaded in the fixed domain order so output is stable regardless of
// directory listing order.
type CSVDirSource struct {
	Dir string
}

func (cs *CSVDirSource) Metadata() SourceMetadata {
	return SourceMetadata{
		Name:        "csv",
		DisplayName: "CSV Tables",
		Description: "Loads per-domain CSV files (System.csv, NTP.csv, ...) from a directory",
		ConfigKey:   "csv",
		DetectHint:  "System.csv",
	}
}

func (cs *CSVDirSource) Enabled(sources map[string]any) bool {
	section, ok := sources["csv"].(map[string]any)
	if !ok {
		return false
	}
	dir, _ := section["dir"].(string)
	return dir != ""
}

func (cs *CSVDirSource) Configure(section map[string]any) error {
	if section == nil {
		return nil
	}
	if v, ok := section["dir"].(string); ok {
		cs.Dir = v
	}
	return nil
}

func (cs *CSVDirSource) Validate() []ValidationError {
	var errs []ValidationError
	if cs.Dir != "" {
		if info, err := os.Stat(cs.Dir); err != nil || !info.IsDir() {
			errs = append(errs, ValidationError{
				Field:      "sources.csv.dir",
				Message:    fmt.Sprintf("directory not found: %s", cs.Dir),
				Suggestion: "check the path to your exported CSV tables",
			})
		}
	}
	return errs
}

func (cs *CSVDirSource) Load(ds *model.Dataset) error {
	if cs.Dir == "" {
		return nil
	}

	for _, name := range knownTables {
		path := filepath.Join(cs.Dir, name+".csv")
		if _, err := os.Stat(path); err != nil {
			continue
		}
		t, err := readCSVTable(name, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		ds.Add(t)
	}
	return nil
}

func readCSVTable(name, path string) (*model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comment = '#'
	r.FieldsPerRecord = -1 // rows may be ragged; short rows mean blank cells

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &model.Table{Name: name}, nil
	}

	t := &model.Table{Name: name, Columns: records[0]}
	for _, rec := range records[1:] {
		row := make(model.Row, len(t.Columns))
		for i, col := range t.Columns {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
