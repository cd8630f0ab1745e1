package cmd

import (
	"fmt"
	"os"

	"github.com/ThomasCrouzet/oobgen/internal/ui"
	"github.com/ThomasCrouzet/oobgen/internal/wizard"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an oobgen.yml config file interactively",
	Long: `Scan the working directory for input files (workbook, CSV tables,
devices inventory) and generate a config file through an interactive
wizard. Optionally writes an example workbook to start from.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := "oobgen.yml"

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("%s already exists.\n", configPath)
		fmt.Print("Overwrite? [y/N] ")
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	// Detect input files
	fmt.Println(ui.Bold("Scanning working directory..."))
	detection := wizard.Detect(nil)

	// Run wizard
	answers, err := wizard.Run(detection)
	if err != nil {
		return fmt.Errorf("wizard: %w", err)
	}

	// Generate config
	content, err := wizard.GenerateConfig(*answers)
	if err != nil {
		return fmt.Errorf("generating config: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	ui.Success(fmt.Sprintf("Created %s", configPath))

	// Write the example workbook only when asked and not clobbering
	if answers.WriteExample && answers.WorkbookPath != "" {
		if _, err := os.Stat(answers.WorkbookPath); err == nil {
			ui.Warn(fmt.Sprintf("%s already exists, not overwriting", answers.WorkbookPath))
		} else if err := os.WriteFile(answers.WorkbookPath, []byte(wizard.ExampleWorkbook), 0644); err != nil {
			return fmt.Errorf("writing example workbook: %w", err)
		} else {
			ui.Success(fmt.Sprintf("Created %s", answers.WorkbookPath))
		}
	}

	fmt.Println()
	fmt.Printf("Next step: %s\n", ui.Bold("oobgen generate"))
	fmt.Printf("           %s\n", ui.Hint("or edit oobgen.yml to fine-tune your config"))

	return nil
}
