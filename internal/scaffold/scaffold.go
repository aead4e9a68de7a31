// Package scaffold creates new Tether project skeletons from embedded
// templates.
package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"
)

//go:embed templates/*
var templatesFS embed.FS

// Context carries the values stamped into the project templates.
type Context struct {
	ProjectName string
	ProjectID   string
	EntrySymbol string
	ParentClass string
	ClassName   string
	Timestamp   time.Time
}

// outputs maps template names to their destination inside the new
// project directory.
var outputs = map[string]string{
	"tether.yml.tmpl": "tether.yml",
	"class.tet.tmpl":  "src/{{class}}.tet",
	"README.md.tmpl":  "README.md",
}

// NewContext fills a context with defaults for a project name. Every
// project gets a fresh id.
func NewContext(projectName string) Context {
	return Context{
		ProjectName: projectName,
		ProjectID:   uuid.New().String(),
		EntrySymbol: strings.ReplaceAll(projectName, "-", "_") + "_init",
		ParentClass: "Node",
		ClassName:   "Main",
		Timestamp:   time.Now(),
	}
}

// Create writes the project skeleton under dir. The directory must
// not already exist.
func Create(dir string, ctx Context) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %s already exists", dir)
	}

	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("reading embedded templates: %w", err)
	}

	for _, entry := range entries {
		dest, ok := outputs[entry.Name()]
		if !ok {
			continue
		}
		dest = strings.ReplaceAll(dest, "{{class}}", strings.ToLower(ctx.ClassName))

		raw, err := templatesFS.ReadFile(filepath.Join("templates", entry.Name()))
		if err != nil {
			return fmt.Errorf("reading template %s: %w", entry.Name(), err)
		}

		tmpl, err := template.New(entry.Name()).Parse(string(raw))
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		outPath := filepath.Join(dir, dest)
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(outPath), err)
		}

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", outPath, err)
		}
		if err := tmpl.Execute(f, ctx); err != nil {
			f.Close()
			return fmt.Errorf("rendering %s: %w", entry.Name(), err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}
