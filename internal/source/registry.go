package source

import "github.com/ThomasCrouzet/oobgen/internal/model"

// Source defines the interface for self-registering dataset inputs.
type Source interface {
	Metadata() SourceMetadata
	Enabled(sources map[string]any) bool
	Configure(section map[string]any) error
	Validate() []ValidationError
	Load(ds *model.Dataset) error
}

// SourceMetadata describes a source for discovery and documentation.
type SourceMetadata struct {
	Name        string // internal key, e.g. "workbook"
	DisplayName string // human-readable, e.g. "YAML Workbook"
	Description string // one-line description
	ConfigKey   string // YAML key under sources, e.g. "workbook"
	DetectHint  string // filesystem hint for auto-detection, e.g. "workbook.yml"
}

// ValidationError reports a config problem with a suggested fix.
type ValidationError struct {
	Field      string // dotted path, e.g. "sources.workbook.path"
	Message    string // what's wrong
	Suggestion string // how to fix it
}

var registry []func() Source

// Register adds a source factory to the global registry.
// Each source calls this in its init().
func Register(factory func() Source) {
	registry = append(registry, factory)
}

// All returns fresh instances of every registered source.
func All() []Source {
	out := make([]Source, len(registry))
	for i, f := range registry {
		out[i] = f()
	}
	return out
}
