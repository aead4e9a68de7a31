package commands

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command
func NewCheckCommand() *cobra.Command {
	var (
		jsonOutput bool
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compile declarations without writing bindings",
		Long: `Run the full compilation pipeline over the project's .tet files and
report diagnostics, without writing any output. Useful in editors and
CI where only the verdict matters.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(jsonOutput, noColor)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit diagnostics as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

func runCheck(jsonOutput, noColor bool) error {
	cfg := loadConfig()

	result, err := compileProject(cfg)
	if err != nil {
		return err
	}

	if err := reportDiagnostics(result.Diags, jsonOutput); err != nil {
		return err
	}

	if !jsonOutput {
		green := color.New(color.FgGreen, color.Bold)
		if noColor {
			green.DisableColor()
		}
		green.Fprintf(os.Stderr, "✓ %d classes, %d enums across %d files: no errors\n",
			len(result.Classes), len(result.Enums), len(result.Files))
	}
	return nil
}
