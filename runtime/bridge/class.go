package bridge

import "fmt"

// State tracks a class through its one-shot registration.
type State int

const (
	Unregistered State = iota
	Registering
	Registered
)

// String returns the state name for diagnostics.
func (s State) String() string {
	switch s {
	case Unregistered:
		return "unregistered"
	case Registering:
		return "registering"
	case Registered:
		return "registered"
	default:
		return "unknown"
	}
}

// BehaviorMode selects whether a class is live inside the editor.
type BehaviorMode int

const (
	// ModeGameplay classes are active only outside the editor.
	ModeGameplay BehaviorMode = iota
	// ModeTool classes are additionally active inside the editor.
	ModeTool
)

// Class is the runtime registration record for one generated class.
// Body is the generated routine that registers members, signals and
// overrides; it runs exactly once.
type Class struct {
	Name          string
	Parent        string
	Mode          BehaviorMode
	DiscardHandle bool
	Body          func(db ClassDB) error

	state State
}

// State returns the class's registration state.
func (c *Class) State() State { return c.state }

// Registry holds every generated class and the set of host built-ins
// they may descend from. Registration order is enforced here: a
// parent must be Registered (or built-in) before any subclass.
type Registry struct {
	classes  map[string]*Class
	builtins map[string]bool
}

// NewRegistry creates a registry that treats the given class names as
// host built-ins known a priori.
func NewRegistry(builtins ...string) *Registry {
	b := make(map[string]bool, len(builtins))
	for _, name := range builtins {
		b[name] = true
	}
	return &Registry{
		classes:  make(map[string]*Class),
		builtins: b,
	}
}

// Add records a class. Duplicate names are rejected.
func (r *Registry) Add(c *Class) error {
	if _, exists := r.classes[c.Name]; exists {
		return fmt.Errorf("class %q added twice", c.Name)
	}
	r.classes[c.Name] = c
	return nil
}

// Lookup returns the class record, if present.
func (r *Registry) Lookup(name string) (*Class, bool) {
	c, ok := r.classes[name]
	return c, ok
}

// Register runs the class's registration routine against the host.
// A second call is a no-op. Registering before the declared parent is
// an error, as is a registration cycle.
func (r *Registry) Register(host Host, name string) error {
	c, ok := r.classes[name]
	if !ok {
		return fmt.Errorf("unknown class %q", name)
	}

	switch c.state {
	case Registered:
		// Idempotent: the host already has this class.
		return nil
	case Registering:
		return fmt.Errorf("registration cycle through class %q", name)
	}

	if !r.builtins[c.Parent] {
		parent, ok := r.classes[c.Parent]
		if !ok {
			return fmt.Errorf("class %q extends unknown parent %q", name, c.Parent)
		}
		if parent.state != Registered {
			return fmt.Errorf("class %q registered before its parent %q", name, c.Parent)
		}
	}

	c.state = Registering

	db := host.ClassDB()
	if err := db.RegisterClass(c.Name, c.Parent); err != nil {
		c.state = Unregistered
		return err
	}
	if c.Body != nil {
		if err := c.Body(db); err != nil {
			c.state = Unregistered
			return err
		}
	}

	active := c.Mode == ModeTool || !host.InEditor()
	if err := db.SetActive(c.Name, active); err != nil {
		c.state = Unregistered
		return err
	}

	c.state = Registered
	return nil
}
