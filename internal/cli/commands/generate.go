package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tether-lang/tether/internal/cli/ui"
	"github.com/tether-lang/tether/internal/codegen"
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	var (
		jsonOutput bool
		verbose    bool
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compile declarations and write Go bindings",
		Long: `Compile all .tet declaration files under the configured source
directory and write the generated registration and marshaling code to
the output directory.

The output package exposes one exported entry function, named after
the configured entry_symbol, that registers every compiled class at
its scheduled initialization level.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(jsonOutput, verbose, noColor)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit diagnostics as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show per-file progress")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

func runGenerate(jsonOutput, verbose, noColor bool) error {
	cfg := loadConfig()

	var result *compileResult
	compile := func() error {
		var err error
		result, err = compileProject(cfg)
		return err
	}
	if jsonOutput {
		if err := compile(); err != nil {
			return err
		}
	} else {
		if err := ui.WithSpinner(os.Stderr, "Compiling declarations", noColor, compile); err != nil {
			return err
		}
	}

	if err := reportDiagnostics(result.Diags, jsonOutput); err != nil {
		if !jsonOutput {
			fmt.Fprint(os.Stderr, ui.GenerateError(err.Error(), nil, noColor))
		}
		return err
	}

	gen := codegen.New(codegen.Options{
		Package:     cfg.Output.Package,
		EntrySymbol: cfg.EntrySymbol,
	})
	files, err := gen.Generate(result.Classes, result.Enums, result.Plan)
	if err != nil {
		if !jsonOutput {
			fmt.Fprint(os.Stderr, ui.GenerateError(err.Error(), nil, noColor))
		}
		return err
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", cfg.Output.Dir, err)
	}

	write := func(f codegen.File) error {
		path := filepath.Join(cfg.Output.Dir, f.Name)
		return os.WriteFile(path, []byte(f.Content), 0o644)
	}

	if verbose && !jsonOutput {
		err = ui.WithProgress(os.Stderr, "Writing bindings", len(files), noColor, func(bar *ui.ProgressBar) error {
			for _, f := range files {
				if err := write(f); err != nil {
					return err
				}
				bar.Add(1)
			}
			return nil
		})
	} else {
		for _, f := range files {
			if err = write(f); err != nil {
				break
			}
		}
	}
	if err != nil {
		return fmt.Errorf("writing bindings: %w", err)
	}

	if !jsonOutput {
		green := color.New(color.FgGreen, color.Bold)
		if noColor {
			green.DisableColor()
		}
		green.Fprintf(os.Stderr, "✓ Generated %d files for %d classes in %s\n",
			len(files), len(result.Classes), cfg.Output.Dir)
	}
	return nil
}
