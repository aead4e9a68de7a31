package commands

import (
	"fmt"
	"os"
	"regexp"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tether-lang/tether/internal/scaffold"
)

var projectNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// NewNewCommand creates the new command
func NewNewCommand() *cobra.Command {
	var (
		interactive bool
		className   string
		parentClass string
	)

	cmd := &cobra.Command{
		Use:   "new [project-name]",
		Short: "Create a new Tether project",
		Long: `Create a project skeleton: a tether.yml, a src/ directory with a
starter class declaration, and a README describing the workflow.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return runNew(name, className, parentClass, interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for project options")
	cmd.Flags().StringVar(&className, "class", "Main", "Name of the starter class")
	cmd.Flags().StringVar(&parentClass, "parent", "Node", "Host builtin the starter class extends")

	return cmd
}

func runNew(name, className, parentClass string, interactive bool) error {
	if interactive || name == "" {
		answers, err := promptProjectOptions(name, className, parentClass)
		if err != nil {
			return err
		}
		name, className, parentClass = answers.Name, answers.ClassName, answers.ParentClass
	}

	if err := validateProjectName(name); err != nil {
		return err
	}

	ctx := scaffold.NewContext(name)
	ctx.ClassName = className
	ctx.ParentClass = parentClass

	if err := scaffold.Create(name, ctx); err != nil {
		return fmt.Errorf("creating project: %w", err)
	}

	green := color.New(color.FgGreen, color.Bold)
	green.Fprintf(os.Stderr, "✓ Created project %s\n", name)
	fmt.Fprintf(os.Stderr, "\nNext steps:\n")
	fmt.Fprintf(os.Stderr, "  cd %s\n", name)
	fmt.Fprintf(os.Stderr, "  tether generate\n")
	return nil
}

type projectAnswers struct {
	Name        string
	ClassName   string
	ParentClass string
}

func promptProjectOptions(name, className, parentClass string) (projectAnswers, error) {
	answers := projectAnswers{Name: name, ClassName: className, ParentClass: parentClass}

	questions := []*survey.Question{}
	if name == "" {
		questions = append(questions, &survey.Question{
			Name:   "name",
			Prompt: &survey.Input{Message: "Project name:"},
			Validate: func(ans interface{}) error {
				return validateProjectName(ans.(string))
			},
		})
	}
	questions = append(questions,
		&survey.Question{
			Name:   "className",
			Prompt: &survey.Input{Message: "Starter class name:", Default: className},
		},
		&survey.Question{
			Name: "parentClass",
			Prompt: &survey.Select{
				Message: "Parent class:",
				Options: []string{"Node", "Node2D", "Node3D", "CharacterBody2D", "Control", "Resource"},
				Default: parentClass,
			},
		},
	)

	if err := survey.Ask(questions, &answers); err != nil {
		return answers, err
	}
	return answers, nil
}

func validateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name is required")
	}
	if !projectNamePattern.MatchString(name) {
		return fmt.Errorf("project name may only contain letters, numbers, hyphens and underscores")
	}
	return nil
}
