package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tether-lang/tether/internal/cli/ui"
	"github.com/tether-lang/tether/internal/descriptor"
	"github.com/tether-lang/tether/runtime/bridge"
)

// NewInspectCommand creates the inspect command
func NewInspectCommand() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "inspect [class]",
		Short: "Show compiled classes and their registration surface",
		Long: `Compile the project and print what would be registered with the host:
classes with their scheduled initialization level, and with a class
name argument the full member surface of that class.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			className := ""
			if len(args) > 0 {
				className = args[0]
			}
			return runInspect(className, noColor)
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

func runInspect(className string, noColor bool) error {
	cfg := loadConfig()

	result, err := compileProject(cfg)
	if err != nil {
		return err
	}
	if err := reportDiagnostics(result.Diags, false); err != nil {
		return err
	}

	if className != "" {
		for _, class := range result.Classes {
			if class.Name == className {
				printClass(class, levelOf(result, class.Name), noColor)
				return nil
			}
		}
		suggestions := ui.FindSimilar(className, result.classNames())
		fmt.Fprint(os.Stderr, ui.ClassNotFoundError(className, suggestions, noColor))
		return fmt.Errorf("unknown class: %s", className)
	}

	ui.Header(os.Stdout, fmt.Sprintf("Project: %s", projectLabel(cfg.ProjectName)), noColor)

	table := ui.NewTable(os.Stdout, []string{"Class", "Parent", "Level", "Props", "Methods", "Signals"}, noColor)
	for _, class := range result.Classes {
		table.AddRow(
			class.Name,
			class.Parent,
			levelOf(result, class.Name),
			strconv.Itoa(len(class.Properties)+len(class.NodeRefs)),
			strconv.Itoa(len(class.Methods)),
			strconv.Itoa(len(class.Signals)),
		)
	}
	table.Render()

	if len(result.Enums) > 0 {
		fmt.Println()
		enumTable := ui.NewTable(os.Stdout, []string{"Enum", "Cases"}, noColor)
		for _, enum := range result.Enums {
			names := make([]string, len(enum.Cases))
			for i, c := range enum.Cases {
				names[i] = fmt.Sprintf("%s=%d", c.Name, c.Value)
			}
			enumTable.AddRow(enum.Name, strings.Join(names, ", "))
		}
		enumTable.Render()
	}
	return nil
}

func projectLabel(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return name
}

// levelOf returns the initialization level a class is scheduled at.
func levelOf(result *compileResult, name string) string {
	for _, level := range bridge.Levels {
		for _, scheduled := range result.Plan.Classes(level) {
			if scheduled == name {
				return level.String()
			}
		}
	}
	return bridge.LevelScene.String()
}

func printClass(class *descriptor.Class, level string, noColor bool) {
	ui.Header(os.Stdout, class.Name, noColor)

	kv := ui.NewKeyValueTable(os.Stdout, noColor)
	kv.AddRow("Parent", class.Parent)
	kv.AddRow("Level", level)
	kv.AddRow("Tool", strconv.FormatBool(class.Tool))
	if class.DiscardHandle {
		kv.AddRow("Discard handle", "true")
	}
	if len(class.Overrides) > 0 {
		kv.AddRow("Overrides", strings.Join(class.Overrides, ", "))
	}
	kv.Render()

	if len(class.Properties) > 0 {
		fmt.Println()
		table := ui.NewTable(os.Stdout, []string{"Property", "Type", "Hint", "Group"}, noColor)
		for _, p := range class.Properties {
			group := p.GroupPath.Group
			if p.GroupPath.Subgroup != "" {
				group += "/" + p.GroupPath.Subgroup
			}
			table.AddRow(p.Name, p.Kind.String(), hintLabel(p), group)
		}
		table.Render()
	}

	if len(class.NodeRefs) > 0 {
		fmt.Println()
		table := ui.NewTable(os.Stdout, []string{"Node ref", "Path", "Target", "Required"}, noColor)
		for _, n := range class.NodeRefs {
			table.AddRow(n.Name, n.Path, n.Target, strconv.FormatBool(n.Required))
		}
		table.Render()
	}

	if len(class.Methods) > 0 {
		fmt.Println()
		table := ui.NewTable(os.Stdout, []string{"Method", "Signature"}, noColor)
		for _, m := range class.Methods {
			table.AddRow(m.Name, methodSignature(m))
		}
		table.Render()
	}

	if len(class.Signals) > 0 {
		fmt.Println()
		table := ui.NewTable(os.Stdout, []string{"Signal", "Args"}, noColor)
		for _, s := range class.Signals {
			table.AddRow(s.Name, argList(s.Args))
		}
		table.Render()
	}
}

func hintLabel(p *descriptor.Property) string {
	if p.Hint == bridge.HintNone {
		return "-"
	}
	label := p.Hint.String()
	if p.HintString != "" {
		label += "(" + p.HintString + ")"
	}
	return label
}

func methodSignature(m *descriptor.Method) string {
	sig := "(" + argList(m.Args) + ")"
	if m.HasReturn {
		sig += " -> " + m.ReturnKind.String()
	}
	return sig
}

func argList(args []descriptor.Arg) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Name + ": " + a.Kind.String()
	}
	return strings.Join(parts, ", ")
}
