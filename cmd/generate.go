package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/ThomasCrouzet/oobgen/internal/config"
	"github.com/ThomasCrouzet/oobgen/internal/generator"
	"github.com/ThomasCrouzet/oobgen/internal/source"
	"github.com/ThomasCrouzet/oobgen/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	workbookPath string
	csvDir       string
	devicesPath  string
	outputDir    string
	serialFilter string
	dryRun       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one configuration file per device",
	Long: `Load the configured input sources, then render and write one JunOS
set-command file per inventory device. Without an Inventory table, a
single config is generated from the dataset's own identity fields.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&workbookPath, "workbook", "", "path to the YAML workbook")
	generateCmd.Flags().StringVar(&csvDir, "csv-dir", "", "directory of per-domain CSV tables")
	generateCmd.Flags().StringVar(&devicesPath, "devices", "", "path to a devices.yml inventory")
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory for generated configs")
	generateCmd.Flags().StringVar(&serialFilter, "serial", "", "only generate the config for this serial number")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print generated configs to stdout instead of writing files")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	applyFlagOverrides()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "run 'oobgen init' to create a config file"))
		return err
	}

	fmt.Println(ui.Bold("Loading input sources..."))

	ds, results, err := source.Load(cfg)

	for _, r := range results {
		if r.Skipped {
			ui.SourceSkipped(r.Name)
		} else if r.Err != nil {
			fmt.Fprint(os.Stderr, ui.FormatError(r.Name+" failed", r.Err.Error(), ""))
		} else {
			ui.SourceDone(r.Name, r.Detail)
		}
	}

	if err != nil {
		return err
	}

	if len(ds.Order) == 0 {
		err := fmt.Errorf("no input sources configured")
		fmt.Fprint(os.Stderr, ui.FormatError("Nothing to generate", err.Error(), "run 'oobgen init' or pass --workbook / --csv-dir / --devices"))
		return err
	}

	gen := &generator.Generator{
		OutputDir: cfg.Output,
		Serial:    serialFilter,
		DryRun:    dryRun,
	}

	sum, err := gen.Run(ds)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Generation aborted", err.Error(), ""))
		return err
	}

	fmt.Println()
	for _, r := range sum.Results {
		switch {
		case r.Skipped:
			ui.DeviceSkipped(r.Serial)
		case r.Err != nil:
			ui.DeviceFailed(r.Serial, r.Err)
		default:
			file := r.File
			if file == "" {
				file = r.Serial // dry-run
			}
			ui.DeviceWritten(file, r.Device.Hostname, r.Device.MgmtIP)
		}
		for _, rec := range r.Records {
			ui.Warn(fmt.Sprintf("%s: %s (row dropped)", r.Serial, rec.Error()))
		}
	}

	fmt.Println()
	if dryRun {
		ui.Success(fmt.Sprintf("%d config(s) rendered (dry run, nothing written)", sum.Written))
	} else {
		ui.Success(fmt.Sprintf("%d config file(s) written to %s", sum.Written, cfg.Output))
	}

	if sum.Failed > 0 {
		return fmt.Errorf("%d device(s) failed: %s", sum.Failed, strings.Join(sum.FailedSerials(), ", "))
	}
	return nil
}

// applyFlagOverrides pushes flag values into viper before config.Load,
// so the registry-based sources see them through RawSources.
func applyFlagOverrides() {
	if workbookPath != "" {
		viper.Set("sources.workbook.path", workbookPath)
	}
	if csvDir != "" {
		viper.Set("sources.csv.dir", csvDir)
	}
	if devicesPath != "" {
		viper.Set("sources.devices.path", devicesPath)
	}
	if outputDir != "" {
		viper.Set("output", outputDir)
	}
}
