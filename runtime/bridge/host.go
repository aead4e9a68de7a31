// Package bridge is the load-time half of tether: the host engine
// surface the generated code registers against, the per-class
// registration state machine, and the dual-construction discipline
// for native wrappers around host-owned objects.
package bridge

import "github.com/tether-lang/tether/runtime/hostval"

// Host is the engine surface the generated extension talks to. The
// real implementation lives behind the C boundary; tests use the
// in-memory host from runtime/hosttest.
type Host interface {
	// ClassDB returns the host's class database.
	ClassDB() ClassDB

	// NewObject allocates a fresh host-native object of the given
	// built-in class and returns its handle.
	NewObject(className string) (hostval.Object, error)

	// EmitSignal raises a registered signal on a host object. The
	// generated typed emitters funnel through here.
	EmitSignal(source hostval.Object, signal string, args []hostval.Value) error

	// InEditor reports whether the host is running inside the editor
	// context.
	InEditor() bool

	// ReportError surfaces a diagnostic through the host's error
	// channel. It never aborts the caller.
	ReportError(err error)
}

// GetProxy reads a property from a wrapper instance and marshals it
// to a host value.
type GetProxy func(inst any) hostval.Value

// SetProxy unmarshals a host value and assigns it to a property. A
// conversion failure returns the error and leaves the property
// unchanged.
type SetProxy func(inst any, v hostval.Value) error

// CallProxy invokes an exported method with marshaled arguments. An
// arity or conversion failure returns before the method body runs.
type CallProxy func(inst any, args []hostval.Value) (hostval.Value, error)

// ClassDB is the host's class database API. All registration funnels
// through it; tether never mutates host state any other way.
type ClassDB interface {
	RegisterClass(name, parent string) error
	RegisterProperty(class string, info PropertyInfo, get GetProxy, set SetProxy) error
	RegisterMethod(class string, info MethodInfo, call CallProxy) error
	RegisterSignal(class string, info SignalInfo) error
	RegisterEnum(info EnumInfo) error
	RegisterOverride(class, hook string) error

	// SetActive marks the class as instantiable in the current host
	// context. Tool classes are active inside the editor; gameplay
	// classes only outside it.
	SetActive(class string, active bool) error
}

// PropertyHint is the host's editor hint vocabulary. Tether carries
// these from annotation to registration without interpreting them.
type PropertyHint int

const (
	HintNone PropertyHint = iota
	HintRange
	HintEnum
	HintFile
	HintDir
	HintMultiline
	HintColorNoAlpha
	HintResourceType
)

var hintNames = map[string]PropertyHint{
	"none":           HintNone,
	"range":          HintRange,
	"enum":           HintEnum,
	"file":           HintFile,
	"dir":            HintDir,
	"multiline":      HintMultiline,
	"color_no_alpha": HintColorNoAlpha,
	"resource_type":  HintResourceType,
}

// HintByName resolves an annotation hint name to the host constant.
func HintByName(name string) (PropertyHint, bool) {
	h, ok := hintNames[name]
	return h, ok
}

// String returns the annotation spelling of the hint.
func (h PropertyHint) String() string {
	for name, v := range hintNames {
		if v == h {
			return name
		}
	}
	return "none"
}

// UsageFlags is the host's property usage bitset, passed through
// unchanged.
type UsageFlags uint32

const (
	UsageStorage UsageFlags = 1 << iota
	UsageEditor
	UsageReadOnly
	UsageNoInstanceState

	UsageDefault = UsageStorage | UsageEditor
)

var usageNames = map[string]UsageFlags{
	"storage":           UsageStorage,
	"editor":            UsageEditor,
	"read_only":         UsageReadOnly,
	"no_instance_state": UsageNoInstanceState,
	"default":           UsageDefault,
}

// UsageByName resolves an annotation usage name to the host bit.
func UsageByName(name string) (UsageFlags, bool) {
	u, ok := usageNames[name]
	return u, ok
}

// PropertyInfo describes one exported property to the class database.
// Name is the wire name; DisplayName is what the editor shows when a
// subgroup prefix was stripped.
type PropertyInfo struct {
	Name        string
	DisplayName string
	Kind        hostval.Kind
	Hint        PropertyHint
	HintString  string
	Usage       UsageFlags
	Group       string
	Subgroup    string
}

// ArgInfo describes one method or signal argument.
type ArgInfo struct {
	Name string
	Kind hostval.Kind
}

// MethodInfo describes one exported method.
type MethodInfo struct {
	Name       string
	Args       []ArgInfo
	ReturnKind hostval.Kind
	HasReturn  bool
}

// SignalInfo describes one signal.
type SignalInfo struct {
	Name string
	Args []ArgInfo
}

// EnumInfo describes one picker-friendly enumeration.
type EnumInfo struct {
	Name  string
	Cases []EnumCase
}

// EnumCase is one enumeration case in declaration order.
type EnumCase struct {
	Name  string
	Value int64
}
