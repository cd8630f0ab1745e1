// Package generator walks the device inventory and produces one
// configuration file per device from the shared dataset.
package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ThomasCrouzet/oobgen/internal/model"
	"github.com/ThomasCrouzet/oobgen/internal/render"
	"github.com/ThomasCrouzet/oobgen/internal/util"
)

// Outcome classifies a whole run.
type Outcome int

const (
	Success Outcome = iota // every qualifying device rendered
	Partial                // some devices failed, some rendered
	Failure                // nothing rendered
)

// Result is the per-device outcome.
type Result struct {
	Serial  string
	Device  model.Device
	File    string // path written, empty on skip/failure or dry-run
	Skipped bool   // placeholder row, deliberately not a failure
	Err     error
	Records []render.RecordError
}

// Summary aggregates a run.
type Summary struct {
	Results []Result
	Written int
	Skipped int
	Failed  int
}

// Outcome returns the tri-state result of the run.
func (s *Summary) Outcome() Outcome {
	switch {
	case s.Failed == 0:
		return Success
	case s.Written > 0:
		return Partial
	default:
		return Failure
	}
}

// FailedSerials lists the serials that could not be rendered.
func (s *Summary) FailedSerials() []string {
	var out []string
	for _, r := range s.Results {
		if r.Err != nil {
			out = append(out, r.Serial)
		}
	}
	return out
}

// Generator renders every device in a dataset and writes the results.
type Generator struct {
	OutputDir string
	Serial    string    // when set, only this serial is processed
	DryRun    bool      // print configs instead of writing files
	Stdout    io.Writer // dry-run destination, defaults to os.Stdout
}

// Run processes every device record against the dataset. A single
// device's failure never stops the remaining devices; only a
// structural inventory problem aborts the whole run.
func (g *Generator) Run(ds *model.Dataset) (*Summary, error) {
	devices, legacy, err := devicesFrom(ds)
	if err != nil {
		return nil, err
	}

	if g.Serial != "" {
		devices = filterSerial(devices, g.Serial)
		if len(devices) == 0 {
			return nil, fmt.Errorf("serial %s not found in inventory", g.Serial)
		}
	}

	if !g.DryRun {
		if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	sum := &Summary{}
	for _, dev := range devices {
		res := Result{Serial: dev.Serial, Device: dev}

		if !legacy && model.IsPlaceholderSerial(dev.Serial) {
			res.Skipped = true
			sum.Skipped++
			sum.Results = append(sum.Results, res)
			continue
		}

		rendered, err := render.Assemble(ds, dev)
		if err != nil {
			res.Err = &render.DeviceError{Serial: dev.Serial, Err: err}
			sum.Failed++
			sum.Results = append(sum.Results, res)
			continue
		}
		res.Records = rendered.Records

		name, err := g.fileName(dev, legacy)
		if err != nil {
			res.Err = err
			sum.Failed++
			sum.Results = append(sum.Results, res)
			continue
		}

		if g.DryRun {
			out := g.Stdout
			if out == nil {
				out = os.Stdout
			}
			fmt.Fprintln(out, strings.Repeat("=", 60))
			fmt.Fprintln(out, rendered.Text)
		} else {
			path := filepath.Join(g.OutputDir, name)
			if err := os.WriteFile(path, []byte(rendered.Text), 0o644); err != nil {
				res.Err = &render.DeviceError{Serial: dev.Serial, Err: err}
				sum.Failed++
				sum.Results = append(sum.Results, res)
				continue
			}
			res.File = path
		}

		sum.Written++
		sum.Results = append(sum.Results, res)
	}

	return sum, nil
}

// fileName picks the output file for a device. Inventory mode always
// names by serial; legacy mode falls back serial → hostname → switch.
func (g *Generator) fileName(dev model.Device, legacy bool) (string, error) {
	base := dev.Serial
	if legacy && model.IsPlaceholderSerial(base) {
		base = dev.Hostname
		if model.IsBlank(base) {
			base = "switch"
		}
	}
	safe := util.SanitizeFilename(base)
	if safe == "" {
		return "", &render.DeviceError{
			Serial: dev.Serial,
			Err:    fmt.Errorf("serial %q contains no usable file name characters", dev.Serial),
		}
	}
	return safe + ".cfg", nil
}

func filterSerial(devices []model.Device, serial string) []model.Device {
	var out []model.Device
	for _, d := range devices {
		if d.Serial == serial {
			out = append(out, d)
		}
	}
	return out
}
