package descriptor

import (
	"fmt"

	"github.com/tether-lang/tether/compiler/errors"
	"github.com/tether-lang/tether/compiler/parser"
)

// BuildEnum derives an Enum descriptor from a @picker enum
// declaration. The enumeration must be integer-backed; cases keep
// declaration order, with implicit values continuing from the
// previous case.
func BuildEnum(node *parser.EnumNode) (*Enum, []errors.CompilerError) {
	var errs []errors.CompilerError
	loc := toLocation(node.Location)

	if node.Backing != "int" {
		errs = append(errs, errors.New("descriptor", errors.ErrNonIntegerEnum,
			fmt.Sprintf("enum %q: picker enums must be integer-backed, got %q", node.Name, node.Backing),
			loc, errors.Error))
		return nil, errs
	}

	if len(node.Cases) == 0 {
		errs = append(errs, errors.New("descriptor", errors.ErrEmptyEnum,
			fmt.Sprintf("enum %q has no cases", node.Name), loc, errors.Error))
		return nil, errs
	}

	enum := &Enum{Name: node.Name, Location: loc}

	seen := make(map[string]bool)
	values := make(map[int64]string)
	next := int64(0)
	for _, caseNode := range node.Cases {
		if seen[caseNode.Name] {
			errs = append(errs, errors.New("descriptor", errors.ErrDuplicateEnumValue,
				fmt.Sprintf("enum %q declares case %q twice", node.Name, caseNode.Name),
				toLocation(caseNode.Location), errors.Error))
			return nil, errs
		}
		seen[caseNode.Name] = true

		value := next
		if caseNode.HasValue {
			value = caseNode.Value
		}
		next = value + 1

		// The registered values back a constant switch in the name
		// lookup, so aliases cannot be tolerated.
		if prev, dup := values[value]; dup {
			errs = append(errs, errors.New("descriptor", errors.ErrDuplicateEnumValue,
				fmt.Sprintf("enum %q: case %q has value %d, already held by %q", node.Name, caseNode.Name, value, prev),
				toLocation(caseNode.Location), errors.Error))
			return nil, errs
		}
		values[value] = caseNode.Name

		enum.Cases = append(enum.Cases, EnumCase{Name: caseNode.Name, Value: value})
	}

	return enum, errs
}
