package descriptor

import (
	"fmt"

	"github.com/tether-lang/tether/compiler/errors"
	"github.com/tether-lang/tether/compiler/parser"
)

// buildSignalFromParams normalizes a signal declared in either form
// (legacy freestanding or typed carrier) into a Signal descriptor.
// Argument types must be in the marshaling capability set and
// argument names must be unique within the signal.
func buildSignalFromParams(name string, params []parser.ParamNode, loc parser.SourceLocation) (*Signal, []errors.CompilerError) {
	var errs []errors.CompilerError

	signal := &Signal{Name: name, Location: toLocation(loc)}

	seen := make(map[string]bool)
	for _, param := range params {
		kind, ok := valueKind(param.Type)
		if !ok {
			errs = append(errs, errors.New("descriptor", errors.ErrUnsupportedExportType,
				fmt.Sprintf("signal %q: argument %q has type %q outside the marshaling capability set",
					name, param.Name, param.Type.Kind),
				toLocation(param.Location), errors.Error))
			return nil, errs
		}
		if seen[param.Name] {
			errs = append(errs, errors.New("descriptor", errors.ErrDuplicateSignalArg,
				fmt.Sprintf("signal %q declares argument %q twice", name, param.Name),
				toLocation(param.Location), errors.Error))
			return nil, errs
		}
		seen[param.Name] = true
		signal.Args = append(signal.Args, Arg{Name: param.Name, Kind: kind})
	}

	return signal, errs
}

// mergeSignal folds a newly built signal into the class's signal set.
// The two declaration forms are interchangeable: declaring the same
// (name, arguments) pair twice collapses to one descriptor, while the
// same name with different arguments is a conflict.
func mergeSignal(existing map[string]*Signal, order *[]*Signal, signal *Signal) []errors.CompilerError {
	prev, ok := existing[signal.Name]
	if !ok {
		existing[signal.Name] = signal
		*order = append(*order, signal)
		return nil
	}

	if prev.ArgsEqual(signal) {
		// Equivalent redeclaration, keep the first.
		return nil
	}

	return []errors.CompilerError{errors.New("descriptor", errors.ErrConflictingSignal,
		fmt.Sprintf("signal %q declared twice with different arguments", signal.Name),
		signal.Location, errors.Error)}
}
