package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/ThomasCrouzet/oobgen/internal/config"
	"github.com/ThomasCrouzet/oobgen/internal/generator"
	"github.com/ThomasCrouzet/oobgen/internal/render"
	"github.com/ThomasCrouzet/oobgen/internal/source"
	"github.com/ThomasCrouzet/oobgen/internal/ui"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate your oobgen.yml configuration and input data",
	Long: `Check that all configured input sources exist, then load them and
verify each domain table carries its required columns and the
inventory columns can be located.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "run 'oobgen init' to create a config file"))
		return err
	}

	fmt.Println(ui.Bold("Validating oobgen.yml..."))

	rawSources := cfg.RawSources
	passed := 0
	failed := 0

	for _, s := range source.All() {
		meta := s.Metadata()

		if !s.Enabled(rawSources) {
			continue
		}

		section, _ := rawSources[meta.ConfigKey].(map[string]any)
		if err := s.Configure(section); err != nil {
			ui.ValidationErr(meta.DisplayName, err.Error(), "")
			failed++
			continue
		}

		errs := s.Validate()
		if len(errs) == 0 {
			ui.ValidationOK(meta.DisplayName, "configuration valid")
			passed++
		} else {
			for _, ve := range errs {
				ui.ValidationErr(ve.Field, ve.Message, ve.Suggestion)
				failed++
			}
		}
	}

	// Load the dataset and check table shapes only if the sources
	// themselves were valid.
	if failed == 0 {
		ds, _, err := source.Load(cfg)
		if err != nil {
			ui.ValidationErr("dataset", err.Error(), "")
			failed++
		} else {
			for _, d := range render.AllDomains() {
				t := ds.Table(d.Name)
				if t == nil {
					continue
				}
				var missing []string
				for _, col := range d.Required {
					if !t.HasColumn(col) {
						missing = append(missing, col)
					}
				}
				if len(missing) == 0 {
					ui.ValidationOK(d.Name, fmt.Sprintf("%d row(s)", len(t.Rows)))
					passed++
				} else {
					ui.ValidationErr(d.Name, "missing required column(s): "+strings.Join(missing, ", "), "")
					failed++
				}
			}

			if inv := ds.Table("Inventory"); inv != nil {
				if err := generator.CheckInventory(inv); err != nil {
					ui.ValidationErr("Inventory", err.Error(), "")
					failed++
				} else {
					ui.ValidationOK("Inventory", fmt.Sprintf("%d record(s)", len(inv.Rows)))
					passed++
				}
			}
		}
	}

	fmt.Println()
	if failed == 0 {
		ui.Success(fmt.Sprintf("%d checks passed, 0 errors", passed))
	} else {
		fmt.Printf("%d checks passed, %d errors\n", passed, failed)
	}

	if failed > 0 {
		return fmt.Errorf("%d validation errors", failed)
	}
	return nil
}
