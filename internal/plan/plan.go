// Package plan assigns every compiled class to a host initialization
// level and orders registration so parents always precede children.
package plan

import (
	"fmt"

	"github.com/tether-lang/tether/compiler/errors"
	"github.com/tether-lang/tether/internal/descriptor"
	"github.com/tether-lang/tether/runtime/bridge"
)

// Plan is the validated registration schedule. Within a level, classes
// keep the order they were assigned in.
type Plan struct {
	Levels map[bridge.InitLevel][]string
}

// Classes returns the classes scheduled at one level.
func (p *Plan) Classes(level bridge.InitLevel) []string {
	return p.Levels[level]
}

// Total returns the number of scheduled classes.
func (p *Plan) Total() int {
	n := 0
	for _, names := range p.Levels {
		n += len(names)
	}
	return n
}

// Build validates a level assignment against the compiled classes and
// the host's builtin class set. Classes not named in any level default
// to the scene level, appended in declaration order.
func Build(classes []*descriptor.Class, assignments map[string][]string, builtins []string) (*Plan, errors.ErrorList) {
	var errs errors.ErrorList

	byName := make(map[string]*descriptor.Class, len(classes))
	for _, class := range classes {
		if _, dup := byName[class.Name]; dup {
			errs = append(errs, errors.New("plan", errors.ErrDuplicateClass,
				fmt.Sprintf("class %q is declared more than once", class.Name),
				class.Location, errors.Error))
			continue
		}
		byName[class.Name] = class
	}

	builtin := make(map[string]bool, len(builtins))
	for _, name := range builtins {
		builtin[name] = true
	}

	plan := &Plan{Levels: make(map[bridge.InitLevel][]string)}
	assigned := make(map[string]bridge.InitLevel)

	// Walk levels in host initialization order so defaulted classes
	// land after explicit assignments at the same level.
	for _, level := range bridge.Levels {
		names, ok := assignments[level.String()]
		if !ok {
			continue
		}
		for _, name := range names {
			class, known := byName[name]
			if !known {
				errs = append(errs, errors.New("plan", errors.ErrUnknownPlanClass,
					fmt.Sprintf("level %q names unknown class %q", level, name),
					errors.SourceLocation{}, errors.Error))
				continue
			}
			if prev, dup := assigned[name]; dup {
				errs = append(errs, errors.New("plan", errors.ErrClassInMultipleLevels,
					fmt.Sprintf("class %q assigned to both %q and %q", name, prev, level),
					class.Location, errors.Error))
				continue
			}
			assigned[name] = level
			plan.Levels[level] = append(plan.Levels[level], name)
		}
	}

	for levelName := range assignments {
		if _, err := bridge.ParseLevel(levelName); err != nil {
			errs = append(errs, errors.New("plan", errors.ErrUnknownLevel,
				fmt.Sprintf("unknown initialization level %q", levelName),
				errors.SourceLocation{}, errors.Error))
		}
	}

	for _, class := range classes {
		if _, ok := assigned[class.Name]; ok {
			continue
		}
		if byName[class.Name] != class {
			continue // duplicate, already reported
		}
		assigned[class.Name] = bridge.LevelScene
		plan.Levels[bridge.LevelScene] = append(plan.Levels[bridge.LevelScene], class.Name)
	}

	errs = append(errs, checkParentOrder(plan, byName, builtin, assigned)...)

	if errs.HasErrors() {
		return nil, errs
	}
	return plan, errs
}

// checkParentOrder verifies that every parent is either a host builtin
// or scheduled strictly before its child.
func checkParentOrder(plan *Plan, byName map[string]*descriptor.Class, builtin map[string]bool, assigned map[string]bridge.InitLevel) errors.ErrorList {
	var errs errors.ErrorList

	position := make(map[string]int)
	pos := 0
	for _, level := range bridge.Levels {
		for _, name := range plan.Levels[level] {
			position[name] = pos
			pos++
		}
	}

	for _, level := range bridge.Levels {
		for _, name := range plan.Levels[level] {
			class := byName[name]
			if builtin[class.Parent] {
				continue
			}
			parent, known := byName[class.Parent]
			if !known {
				errs = append(errs, errors.New("plan", errors.ErrUnknownParentClass,
					fmt.Sprintf("class %q extends %q, which is neither a host builtin nor a compiled class",
						name, class.Parent),
					class.Location, errors.Error))
				continue
			}
			if position[parent.Name] >= position[name] {
				errs = append(errs, errors.New("plan", errors.ErrParentAfterChild,
					fmt.Sprintf("class %q registers before its parent %q; move the parent to an earlier slot",
						name, parent.Name),
					class.Location, errors.Error))
			}
		}
	}

	return errs
}
