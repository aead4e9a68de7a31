// Package codegen turns compiled class and enum descriptors into Go
// source files: one wrapper file per class, a shared enum file, and
// the extension entry point wired to the initialization plan.
package codegen

import (
	"fmt"
	"go/format"
	"sort"
	"strings"

	"github.com/tether-lang/tether/internal/descriptor"
	"github.com/tether-lang/tether/internal/plan"
)

const (
	importBridge  = "github.com/tether-lang/tether/runtime/bridge"
	importHostval = "github.com/tether-lang/tether/runtime/hostval"
	importScene   = "github.com/tether-lang/tether/runtime/scene"
)

const fileHeader = "// Code generated by tether. DO NOT EDIT.\n\n"

// Options controls the emitted package.
type Options struct {
	// Package is the name of the generated Go package.
	Package string

	// EntrySymbol is the configured entry point name; it is rendered
	// as an exported Go function.
	EntrySymbol string
}

// File is one generated source file.
type File struct {
	Name    string
	Content string
}

// Generator assembles complete source files from the per-concern
// generators.
type Generator struct {
	opts    Options
	classes *ClassGenerator
	enums   *EnumGenerator
	entry   *EntryGenerator
}

// New creates a generator. Empty options fall back to package
// "bindings" and entry symbol "extension_init".
func New(opts Options) *Generator {
	if opts.Package == "" {
		opts.Package = "bindings"
	}
	if opts.EntrySymbol == "" {
		opts.EntrySymbol = "extension_init"
	}
	return &Generator{
		opts:    opts,
		classes: NewClassGenerator(),
		enums:   NewEnumGenerator(),
		entry:   NewEntryGenerator(),
	}
}

// Generate emits every output file for the compiled program.
func (g *Generator) Generate(classes []*descriptor.Class, enums []*descriptor.Enum, p *plan.Plan) ([]File, error) {
	var files []File

	for _, class := range classes {
		body, err := g.classes.Generate(class)
		if err != nil {
			return nil, fmt.Errorf("generating class %s: %w", class.Name, err)
		}
		content, err := g.assemble(g.classes.Imports(class), body)
		if err != nil {
			return nil, fmt.Errorf("generating class %s: %w", class.Name, err)
		}
		files = append(files, File{
			Name:    descriptor.ToSnakeCase(class.Name) + ".gen.go",
			Content: content,
		})
	}

	if len(enums) > 0 {
		body, err := g.enums.Generate(enums)
		if err != nil {
			return nil, fmt.Errorf("generating enums: %w", err)
		}
		content, err := g.assemble(g.enums.Imports(), body)
		if err != nil {
			return nil, fmt.Errorf("generating enums: %w", err)
		}
		files = append(files, File{
			Name:    "enums.gen.go",
			Content: content,
		})
	}

	body, err := g.entry.Generate(classes, enums, p, g.opts.EntrySymbol)
	if err != nil {
		return nil, fmt.Errorf("generating entry point: %w", err)
	}
	content, err := g.assemble(g.entry.Imports(), body)
	if err != nil {
		return nil, fmt.Errorf("generating entry point: %w", err)
	}
	files = append(files, File{
		Name:    "extension.gen.go",
		Content: content,
	})

	return files, nil
}

// assemble wraps a generated body with the file header, package
// clause and import block, then normalizes the result with gofmt. A
// formatting failure means the emitted source does not parse, which
// is a generator bug surfaced here rather than in the user's build.
func (g *Generator) assemble(imports []string, body string) (string, error) {
	var code strings.Builder

	code.WriteString(fileHeader)
	fmt.Fprintf(&code, "package %s\n\n", g.opts.Package)

	if len(imports) > 0 {
		code.WriteString("import (\n")
		std, proj := splitImports(imports)
		for _, path := range std {
			fmt.Fprintf(&code, "\t%q\n", path)
		}
		if len(std) > 0 && len(proj) > 0 {
			code.WriteString("\n")
		}
		for _, path := range proj {
			fmt.Fprintf(&code, "\t%q\n", path)
		}
		code.WriteString(")\n\n")
	}

	code.WriteString(body)

	formatted, err := format.Source([]byte(code.String()))
	if err != nil {
		return "", fmt.Errorf("formatting generated source: %w", err)
	}
	return string(formatted), nil
}

func splitImports(imports []string) (std, proj []string) {
	for _, path := range imports {
		if strings.Contains(path, ".") {
			proj = append(proj, path)
		} else {
			std = append(std, path)
		}
	}
	sort.Strings(std)
	sort.Strings(proj)
	return std, proj
}
