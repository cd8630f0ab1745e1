package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// Run executes the interactive wizard and returns the user's answers.
func Run(detection DetectionResult) (*WizardAnswers, error) {
	answers := &WizardAnswers{
		OutputDir: "./output",
	}

	// Build detection summary
	var hints []string
	if detection.WorkbookPath != "" {
		hints = append(hints, fmt.Sprintf("Workbook found: %s", detection.WorkbookPath))
	}
	if detection.DevicesPath != "" {
		hints = append(hints, fmt.Sprintf("Devices file found: %s", detection.DevicesPath))
	}
	if detection.CSVDir != "" {
		hints = append(hints, fmt.Sprintf("CSV tables found in: %s", detection.CSVDir))
	}

	// Pre-select detected sources
	var preSelected []string
	if detection.WorkbookPath != "" {
		preSelected = append(preSelected, "workbook")
	}
	if detection.CSVDir != "" {
		preSelected = append(preSelected, "csv")
	}
	if detection.DevicesPath != "" {
		preSelected = append(preSelected, "devices")
	}
	if len(preSelected) == 0 {
		preSelected = append(preSelected, "workbook")
	}

	// Step 1: Source selection
	var selectedSources []string

	desc := "Select the inputs that feed the configuration generator."
	if len(hints) > 0 {
		desc += "\n\nAuto-detected:\n  " + strings.Join(hints, "\n  ")
	}

	sourceForm := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which input sources do you want to enable?").
				Description(desc).
				Options(
					huh.NewOption("YAML Workbook", "workbook").Selected(contains(preSelected, "workbook")),
					huh.NewOption("CSV Tables", "csv").Selected(contains(preSelected, "csv")),
					huh.NewOption("Devices File", "devices").Selected(contains(preSelected, "devices")),
				).
				Value(&selectedSources),
		),
	)

	if err := sourceForm.Run(); err != nil {
		return nil, err
	}

	answers.EnableWorkbook = contains(selectedSources, "workbook")
	answers.EnableCSV = contains(selectedSources, "csv")
	answers.EnableDevices = contains(selectedSources, "devices")

	// Step 2: Source-specific paths
	var groups []*huh.Group

	if answers.EnableWorkbook {
		defaultPath := detection.WorkbookPath
		if defaultPath == "" {
			defaultPath = "./workbook.yml"
		}
		answers.WorkbookPath = defaultPath

		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Workbook path").
				Description("YAML workbook with one table per configuration domain").
				Value(&answers.WorkbookPath),
			huh.NewConfirm().
				Title("Write an example workbook to that path?").
				Description("Skipped if the file already exists").
				Value(&answers.WriteExample),
		))
	}

	if answers.EnableCSV {
		defaultDir := detection.CSVDir
		if defaultDir == "" {
			defaultDir = "./tables"
		}
		answers.CSVDir = defaultDir

		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("CSV tables directory").
				Description("Directory holding System.csv, NTP.csv, ...").
				Value(&answers.CSVDir),
		))
	}

	if answers.EnableDevices {
		defaultPath := detection.DevicesPath
		if defaultPath == "" {
			defaultPath = "./devices.yml"
		}
		answers.DevicesPath = defaultPath

		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Devices file path").
				Description("YAML inventory with serial, hostname and mgmt_ip per device").
				Value(&answers.DevicesPath),
		))
	}

	// Step 3: Output directory
	groups = append(groups, huh.NewGroup(
		huh.NewInput().
			Title("Output directory").
			Description("One <serial>.cfg file is written here per device").
			Value(&answers.OutputDir),
	))

	if len(groups) > 0 {
		pathForm := huh.NewForm(groups...)
		if err := pathForm.Run(); err != nil {
			return nil, err
		}
	}

	return answers, nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
