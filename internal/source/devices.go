package source

import (
	"fmt"
	"os"

	"github.com/ThomasCrouzet/oobgen/internal/model"
	"gopkg.in/yaml.v3"
)

func init() {
	Register(func() Source { return &DevicesSource{} })
}

// DevicesSource parses a standalone devices.yml inventory and appends
// it to the dataset as an Inventory table, so a workbook without its
// own Inventory sheet can still drive a multi-device run.
type DevicesSource struct {
	Path string
}

// devicesFile mirrors the devices.yml layout.
type devicesFile struct {
	Devices []deviceEntry `yaml:"devices"`
}

type deviceEntry struct {
	Serial   string `yaml:"serial"`
	Hostname string `yaml:"hostname"`
	MgmtIP   string `yaml:"mgmt_ip"`
	Model    string `yaml:"model"`
}

func (ds *DevicesSource) Metadata() SourceMetadata {
	return SourceMetadata{
		Name:        "devices",
		DisplayName: "Devices File",
		Description: "Parses a devices.yml inventory (serial, hostname, mgmt_ip, model)",
		ConfigKey:   "devices",
		DetectHint:  "devices.yml",
	}
}

func (ds *DevicesSource) Enabled(sources map[string]any) bool {
	section, ok := sources["devices"].(map[string]any)
	if !ok {
		return false
	}
	path, _ := section["path"].(string)
	return path != ""
}

func (ds *DevicesSource) Configure(section map[string]any) error {
	if section == nil {
		return nil
	}
	if v, ok := section["path"].(string); ok {
		ds.Path = v
	}
	return nil
}

func (ds *DevicesSource) Validate() []ValidationError {
	var errs []ValidationError
	if ds.Path != "" {
		if _, err := os.Stat(ds.Path); err != nil {
			errs = append(errs, ValidationError{
				Field:      "sources.devices.path",
				Message:    fmt.Sprintf("file not found: %s", ds.Path),
				Suggestion: "check the path to your devices inventory file",
			})
		}
	}
	return errs
}

func (ds *DevicesSource) Load(dataset *model.Dataset) error {
	if ds.Path == "" {
		return nil
	}

	data, err := os.ReadFile(ds.Path)
	if err != nil {
		return err
	}

	var file devicesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("unmarshal devices file: %w", err)
	}
	if len(file.Devices) == 0 {
		return fmt.Errorf("no devices found in %s", ds.Path)
	}

	t := &model.Table{
		Name:    "Inventory",
		Columns: []string{"Serial Number", "Hostname", "Management IP", "Model"},
	}
	for i, dev := range file.Devices {
		if dev.Serial == "" {
			return fmt.Errorf("device entry %d is missing 'serial'", i+1)
		}
		if dev.Model == "" {
			dev.Model = model.DefaultModel
		}
		t.Rows = append(t.Rows, model.Row{
			"Serial Number": dev.Serial,
			"Hostname":      dev.Hostname,
			"Management IP": dev.MgmtIP,
			"Model":         dev.Model,
		})
	}
	dataset.Add(t)
	return nil
}
