package source

import (
	"fmt"
	"os"

	"github.com/ThomasCrouzet/oobgen/internal/model"
	"gopkg.in/yaml.v3"
)

func init() {
	Register(func() Source { return &WorkbookSource{} })
}

// WorkbookSource parses a YAML workbook: a top-level mapping of domain
// name to a list of rows, mirroring the sheet layout of the original
// spreadsheet template. Document order of tables and columns is kept,
// since section and command order must be reproducible.
type WorkbookSource struct {
	Path string
}

func (ws *WorkbookSource) Metadata() SourceMetadata {
	return SourceMetadata{
		Name:        "workbook",
		DisplayName: "YAML Workbook",
		Description: "Parses a YAML workbook of domain tables (System, NTP, VLANs, ...)",
		ConfigKey:   "workbook",
		DetectHint:  "workbook.yml",
	}
}

func (ws *WorkbookSource) Enabled(sources map[string]any) bool {
	section, ok := sources["workbook"].(map[string]any)
	if !ok {
		return false
	}
	path, _ := section["path"].(string)
	return path != ""
}

func (ws *WorkbookSource) Configure(section map[string]any) error {
	if section == nil {
		return nil
	}
	if v, ok := section["path"].(string); ok {
		ws.Path = v
	}
	return nil
}

func (ws *WorkbookSource) Validate() []ValidationError {
	var errs []ValidationError
	if ws.Path != "" {
		if _, err := os.Stat(ws.Path); err != nil {
			errs = append(errs, ValidationError{
				Field:      "sources.workbook.path",
				Message:    fmt.Sprintf("file not found: %s", ws.Path),
				Suggestion: "check the path or run 'oobgen init' to scaffold a workbook",
			})
		}
	}
	return errs
}

func (ws *WorkbookSource) Load(ds *model.Dataset) error {
	if ws.Path == "" {
		return nil
	}

	data, err := os.ReadFile(ws.Path)
	if err != nil {
		return err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal workbook: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("workbook root must be a mapping of table name to rows")
	}

	// Mapping node content alternates key, value
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		t, err := parseTable(name, root.Content[i+1])
		if err != nil {
			return err
		}
		ds.Add(t)
	}
	return nil
}

// parseTable converts a YAML sequence of row mappings into a Table,
// preserving row order and first-seen column order.
func parseTable(name string, node *yaml.Node) (*model.Table, error) {
	t := &model.Table{Name: name}

	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("table %s: expected a list of rows, got %s", name, nodeKind(node))
	}

	for _, rowNode := range node.Content {
		if rowNode.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("table %s: expected a mapping per row, got %s", name, nodeKind(rowNode))
		}
		row := make(model.Row, len(rowNode.Content)/2)
		for j := 0; j+1 < len(rowNode.Content); j += 2 {
			col := rowNode.Content[j].Value
			row[col] = scalarValue(rowNode.Content[j+1])
			if !t.HasColumn(col) {
				t.Columns = append(t.Columns, col)
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// scalarValue renders a YAML value node as the raw cell string.
// Nulls become blank cells; numbers keep their literal form.
func scalarValue(n *yaml.Node) string {
	if n.Tag == "!!null" {
		return ""
	}
	return n.Value
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "list"
	case yaml.ScalarNode:
		return "scalar"
	default:
		return "document"
	}
}
