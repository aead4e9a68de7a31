package bridge

import "fmt"

// InitLevel is the host's initialization phase. The host invokes the
// extension entry point once per level.
type InitLevel int

const (
	LevelCore InitLevel = iota
	LevelEditor
	LevelScene
	LevelServer
)

// String returns the configuration name of the level.
func (l InitLevel) String() string {
	switch l {
	case LevelCore:
		return "core"
	case LevelEditor:
		return "editor"
	case LevelScene:
		return "scene"
	case LevelServer:
		return "server"
	default:
		return "unknown"
	}
}

// ParseLevel resolves a configuration name to a level.
func ParseLevel(name string) (InitLevel, error) {
	switch name {
	case "core":
		return LevelCore, nil
	case "editor":
		return LevelEditor, nil
	case "scene":
		return LevelScene, nil
	case "server":
		return LevelServer, nil
	default:
		return 0, fmt.Errorf("unknown initialization level %q", name)
	}
}

// Levels lists every level in host invocation order.
var Levels = []InitLevel{LevelCore, LevelEditor, LevelScene, LevelServer}

// EntryPoint dispatches per-level registration. The generated entry
// symbol delegates to one of these; the host calls it synchronously,
// once per level, on its own initialization thread.
type EntryPoint struct {
	registry *Registry
	levels   map[InitLevel][]string
}

// NewEntryPoint builds the dispatcher. Each class may be assigned to
// exactly one level; assigning it twice is rejected here so a bad
// generated table fails loudly at load, not halfway through a level.
func NewEntryPoint(registry *Registry, levels map[InitLevel][]string) (*EntryPoint, error) {
	seen := make(map[string]InitLevel)
	for _, level := range Levels {
		for _, name := range levels[level] {
			if prev, dup := seen[name]; dup {
				return nil, fmt.Errorf("class %q assigned to levels %s and %s", name, prev, level)
			}
			seen[name] = level
			if _, ok := registry.Lookup(name); !ok {
				return nil, fmt.Errorf("level %s lists unknown class %q", level, name)
			}
		}
	}
	return &EntryPoint{registry: registry, levels: levels}, nil
}

// Invoke registers every class assigned to the level, in declaration
// order. Registration failures are reported through the host's error
// channel and surface as a false return, the host's initialization
// failure path.
func (e *EntryPoint) Invoke(host Host, level InitLevel) bool {
	for _, name := range e.levels[level] {
		if err := e.registry.Register(host, name); err != nil {
			host.ReportError(fmt.Errorf("level %s: %w", level, err))
			return false
		}
	}
	return true
}
