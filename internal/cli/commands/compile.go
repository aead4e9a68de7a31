package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/tether-lang/tether/compiler/errors"
	"github.com/tether-lang/tether/compiler/lexer"
	"github.com/tether-lang/tether/compiler/parser"
	"github.com/tether-lang/tether/internal/cli/config"
	"github.com/tether-lang/tether/internal/descriptor"
	"github.com/tether-lang/tether/internal/plan"
	"github.com/tether-lang/tether/internal/utils"
)

// compileResult is the outcome of a full front-end pass over a project.
// Diags collects every diagnostic across all phases; Plan is nil when
// an earlier phase produced errors.
type compileResult struct {
	Files   []string
	Classes []*descriptor.Class
	Enums   []*descriptor.Enum
	Plan    *plan.Plan
	Diags   errors.ErrorList
}

// HasErrors reports whether any diagnostic is Error severity or worse.
func (r *compileResult) HasErrors() bool {
	return r.Diags.HasErrors()
}

// loadConfig loads tether.yml, falling back to defaults with a warning
// when the file is malformed rather than missing.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		yellow := color.New(color.FgYellow)
		yellow.Fprintf(os.Stderr, "Warning: failed to load tether.yml: %v\n", err)
		yellow.Fprintln(os.Stderr, "Using default configuration")
		cfg = config.Default()
	}
	return cfg
}

// compileProject runs the declaration sources through the lexer,
// parser, descriptor builder and registration planner. A non-nil error
// means the source tree itself could not be read; compilation
// diagnostics are returned in the result.
func compileProject(cfg *config.Config) (*compileResult, error) {
	files, err := utils.FindTetFiles(cfg.Source.Dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", cfg.Source.Dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .tet files found under %s", cfg.Source.Dir)
	}

	result := &compileResult{Files: files}
	program := &parser.Program{}

	for _, file := range files {
		source, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}

		tokens, lexErrs := lexer.New(string(source), file).ScanTokens()
		for _, le := range lexErrs {
			result.Diags = append(result.Diags, errors.New("lexer", le.ErrorCode(), le.Message,
				errors.SourceLocation{File: le.File, Line: le.Line, Column: le.Column},
				errors.Error))
		}
		if len(lexErrs) > 0 {
			continue
		}

		fileProgram, parseErrs := parser.New(tokens).Parse()
		for _, pe := range parseErrs {
			result.Diags = append(result.Diags, errors.New("parser", pe.ErrorCode(), pe.Message,
				errors.SourceLocation{File: pe.Location.File, Line: pe.Location.Line, Column: pe.Location.Column},
				errors.Error))
		}
		program.Classes = append(program.Classes, fileProgram.Classes...)
		program.Enums = append(program.Enums, fileProgram.Enums...)
	}

	classes, enums, buildDiags := descriptor.BuildProgram(program)
	result.Diags = append(result.Diags, buildDiags...)
	result.Classes = classes
	result.Enums = enums

	if result.Diags.HasErrors() {
		return result, nil
	}

	p, planDiags := plan.Build(classes, cfg.Levels, plan.WithBuiltins(cfg.Builtins))
	result.Diags = append(result.Diags, planDiags...)
	if !result.Diags.HasErrors() {
		result.Plan = p
	}
	return result, nil
}

// classNames returns the names of all compiled classes, in declaration
// order. Used for fuzzy suggestions.
func (r *compileResult) classNames() []string {
	names := make([]string, len(r.Classes))
	for i, c := range r.Classes {
		names[i] = c.Name
	}
	return names
}

// reportDiagnostics writes diagnostics in the requested format and
// returns an error when any of them is fatal to the run.
func reportDiagnostics(diags errors.ErrorList, asJSON bool) error {
	if len(diags) == 0 {
		return nil
	}
	if asJSON {
		out, err := errors.FormatErrorsAsJSON(diags)
		if err != nil {
			return err
		}
		fmt.Println(out)
	} else {
		fmt.Fprint(os.Stderr, errors.FormatListForTerminal(diags))
	}
	if diags.HasErrors() {
		return fmt.Errorf("compilation failed")
	}
	return nil
}
