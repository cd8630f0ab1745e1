package wizard

import (
	"os"
	"path/filepath"
)

// DetectionResult holds what was auto-detected in the working directory.
type DetectionResult struct {
	WorkbookPath string   // path if found, empty otherwise
	DevicesPath  string   // path if found, empty otherwise
	CSVDir       string   // directory containing per-domain CSV files
	CSVFiles     []string // the CSV files that triggered CSVDir
}

// Detector abstracts filesystem lookups for testing.
type Detector interface {
	Stat(path string) (os.FileInfo, error)
	Glob(pattern string) ([]string, error)
}

// OSDetector uses the real OS for detection.
type OSDetector struct{}

func (OSDetector) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }
func (OSDetector) Glob(pattern string) ([]string, error) { return filepath.Glob(pattern) }

// Detect scans the working directory for known input files.
func Detect(d Detector) DetectionResult {
	if d == nil {
		d = OSDetector{}
	}

	result := DetectionResult{}

	workbookPaths := []string{
		"workbook.yml",
		"workbook.yaml",
		"templates/workbook.yml",
	}
	for _, p := range workbookPaths {
		if _, err := d.Stat(p); err == nil {
			result.WorkbookPath = p
			break
		}
	}

	devicesPaths := []string{
		"devices.yml",
		"devices.yaml",
		"inventory/devices.yml",
	}
	for _, p := range devicesPaths {
		if _, err := d.Stat(p); err == nil {
			result.DevicesPath = p
			break
		}
	}

	csvDirs := []string{"tables", "csv", "."}
	for _, dir := range csvDirs {
		matches, err := d.Glob(filepath.Join(dir, "*.csv"))
		if err != nil || len(matches) == 0 {
			continue
		}
		result.CSVDir = dir
		result.CSVFiles = matches
		break
	}

	return result
}
