package source

import (
	"fmt"

	"github.com/ThomasCrouzet/oobgen/internal/config"
	"github.com/ThomasCrouzet/oobgen/internal/model"
)

// LoadResult holds the result of a single source run.
type LoadResult struct {
	Name    string
	Skipped bool
	Detail  string
	Err     error
}

// Load runs all registered sources against a fresh dataset. Tables
// with the same name are merged by appending rows, so a devices file
// can extend a workbook's Inventory table.
func Load(cfg *config.Config) (*model.Dataset, []LoadResult, error) {
	ds := model.NewDataset()
	rawSources := cfg.RawSources

	var results []LoadResult

	for _, s := range All() {
		meta := s.Metadata()

		if !s.Enabled(rawSources) {
			results = append(results, LoadResult{Name: meta.DisplayName, Skipped: true})
			continue
		}

		// Extract this source's config section
		section, _ := rawSources[meta.ConfigKey].(map[string]any)
		if err := s.Configure(section); err != nil {
			serr := &SourceError{Source: meta.DisplayName, Err: err}
			results = append(results, LoadResult{Name: meta.DisplayName, Err: serr})
			return nil, results, serr
		}

		before := len(ds.Order)
		if err := s.Load(ds); err != nil {
			serr := &SourceError{Source: meta.DisplayName, Err: err}
			results = append(results, LoadResult{Name: meta.DisplayName, Err: serr})
			return nil, results, serr
		}

		results = append(results, LoadResult{
			Name:   meta.DisplayName,
			Detail: detail(ds, before),
		})
	}

	return ds, results, nil
}

func detail(ds *model.Dataset, before int) string {
	added := len(ds.Order) - before
	if added == 1 {
		return "1 table"
	}
	return fmt.Sprintf("%d tables", added)
}
