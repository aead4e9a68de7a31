package codegen

import (
	"fmt"
	"strings"

	"github.com/tether-lang/tether/internal/descriptor"
)

// EnumGenerator emits Go constants and host registration for every
// picker enumeration.
type EnumGenerator struct{}

// NewEnumGenerator creates a new enum generator.
func NewEnumGenerator() *EnumGenerator {
	return &EnumGenerator{}
}

// Imports reports the packages the generated enum source refers to.
func (g *EnumGenerator) Imports() []string {
	return []string{importBridge}
}

// Generate emits the enum source body.
func (g *EnumGenerator) Generate(enums []*descriptor.Enum) (string, error) {
	var code strings.Builder

	for i, enum := range enums {
		if i > 0 {
			code.WriteString("\n\n")
		}
		code.WriteString(g.generateConstants(enum))
		code.WriteString("\n\n")
		code.WriteString(g.generateNameLookup(enum))
	}

	code.WriteString("\n\n")
	code.WriteString(g.generateRegistration(enums))
	code.WriteString("\n")

	return code.String(), nil
}

func (g *EnumGenerator) generateConstants(enum *descriptor.Enum) string {
	var code strings.Builder

	fmt.Fprintf(&code, "// %s case values as registered with the host picker.\n", enum.Name)
	code.WriteString("const (\n")
	for _, c := range enum.Cases {
		fmt.Fprintf(&code, "\t%s%s int64 = %d\n", enum.Name, c.Name, c.Value)
	}
	code.WriteString(")\n\n")

	fmt.Fprintf(&code, "// %sCaseCount is the number of declared %s cases.\n", enum.Name, enum.Name)
	fmt.Fprintf(&code, "const %sCaseCount = %d", enum.Name, len(enum.Cases))

	return code.String()
}

func (g *EnumGenerator) generateNameLookup(enum *descriptor.Enum) string {
	var cases strings.Builder
	for _, c := range enum.Cases {
		fmt.Fprintf(&cases, "\tcase %s%s:\n\t\treturn %q, true\n", enum.Name, c.Name, c.Name)
	}

	return fmt.Sprintf(`// %sName returns the display name of a %s case value.
func %sName(value int64) (string, bool) {
	switch value {
%s	default:
		return "", false
	}
}`, enum.Name, enum.Name, enum.Name, cases.String())
}

func (g *EnumGenerator) generateRegistration(enums []*descriptor.Enum) string {
	var code strings.Builder

	code.WriteString("// registerEnums describes every picker enumeration to the host.\n")
	code.WriteString("func registerEnums(db bridge.ClassDB) error {\n")

	for _, enum := range enums {
		fmt.Fprintf(&code, "\tif err := db.RegisterEnum(bridge.EnumInfo{\n")
		fmt.Fprintf(&code, "\t\tName: %q,\n", enum.Name)
		code.WriteString("\t\tCases: []bridge.EnumCase{\n")
		for _, c := range enum.Cases {
			fmt.Fprintf(&code, "\t\t\t{Name: %q, Value: %d},\n", c.Name, c.Value)
		}
		code.WriteString("\t\t},\n")
		code.WriteString("\t}); err != nil {\n\t\treturn err\n\t}\n")
	}

	code.WriteString("\treturn nil\n}")
	return code.String()
}
