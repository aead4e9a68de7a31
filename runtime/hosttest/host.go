// Package hosttest is an in-memory host engine used by tether's own
// tests and by extension authors testing generated classes without a
// running engine. It implements bridge.Host, the class database, and
// a small scene graph.
package hosttest

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"

	"github.com/tether-lang/tether/runtime/bridge"
	"github.com/tether-lang/tether/runtime/hostval"
)

// Object is a fake host-owned object with a random instance id.
type Object struct {
	id    uint64
	class string
}

// InstanceID implements hostval.Object.
func (o *Object) InstanceID() uint64 { return o.id }

// Class returns the host class the object was allocated as.
func (o *Object) Class() string { return o.class }

func newID() uint64 {
	u := uuid.New()
	return binary.BigEndian.Uint64(u[:8])
}

// Host is the in-memory engine.
type Host struct {
	db        *ClassDB
	editor    bool
	allocated []*Object
	errors    []error
	emissions []Emission
}

// Emission records one EmitSignal call.
type Emission struct {
	Source hostval.Object
	Signal string
	Args   []hostval.Value
}

// New creates a host with an empty class database, outside the
// editor context.
func New() *Host {
	return &Host{db: NewClassDB()}
}

// SetEditor toggles the editor context reported to registrations.
func (h *Host) SetEditor(editor bool) { h.editor = editor }

// ClassDB implements bridge.Host.
func (h *Host) ClassDB() bridge.ClassDB { return h.db }

// DB returns the concrete class database for assertions.
func (h *Host) DB() *ClassDB { return h.db }

// NewObject implements bridge.Host.
func (h *Host) NewObject(className string) (hostval.Object, error) {
	obj := &Object{id: newID(), class: className}
	h.allocated = append(h.allocated, obj)
	return obj, nil
}

// Allocated returns every object created through NewObject, in order.
func (h *Host) Allocated() []*Object { return h.allocated }

// EmitSignal implements bridge.Host. Emissions are recorded for
// assertions; an emission from a nil source is rejected.
func (h *Host) EmitSignal(source hostval.Object, signal string, args []hostval.Value) error {
	if source == nil {
		return fmt.Errorf("signal %q emitted from a nil source", signal)
	}
	h.emissions = append(h.emissions, Emission{Source: source, Signal: signal, Args: args})
	return nil
}

// Emissions returns every signal emission, in order.
func (h *Host) Emissions() []Emission { return h.emissions }

// InEditor implements bridge.Host.
func (h *Host) InEditor() bool { return h.editor }

// ReportError implements bridge.Host.
func (h *Host) ReportError(err error) { h.errors = append(h.errors, err) }

// Errors returns everything reported through ReportError.
func (h *Host) Errors() []error { return h.errors }

// ClassDB is the in-memory class database.
type ClassDB struct {
	classes map[string]*ClassRecord

	// Enums holds registered enumerations by name.
	Enums map[string]bridge.EnumInfo
}

// ClassRecord captures everything registered for one class.
type ClassRecord struct {
	Name       string
	Parent     string
	Properties []RegisteredProperty
	Methods    []RegisteredMethod
	Signals    []bridge.SignalInfo
	Overrides  []string
	Active     bool
	ActiveSet  bool
}

// RegisteredProperty pairs a property descriptor with its proxies.
type RegisteredProperty struct {
	Info bridge.PropertyInfo
	Get  bridge.GetProxy
	Set  bridge.SetProxy
}

// RegisteredMethod pairs a method descriptor with its call proxy.
type RegisteredMethod struct {
	Info bridge.MethodInfo
	Call bridge.CallProxy
}

// NewClassDB creates an empty database.
func NewClassDB() *ClassDB {
	return &ClassDB{classes: make(map[string]*ClassRecord)}
}

// Class returns the record for a registered class.
func (db *ClassDB) Class(name string) (*ClassRecord, bool) {
	rec, ok := db.classes[name]
	return rec, ok
}

func (db *ClassDB) class(name string) (*ClassRecord, error) {
	rec, ok := db.classes[name]
	if !ok {
		return nil, fmt.Errorf("class %q not registered", name)
	}
	return rec, nil
}

// RegisterClass implements bridge.ClassDB. Duplicate registration is
// an error so idempotence violations show up in tests.
func (db *ClassDB) RegisterClass(name, parent string) error {
	if _, exists := db.classes[name]; exists {
		return fmt.Errorf("class %q already registered", name)
	}
	db.classes[name] = &ClassRecord{Name: name, Parent: parent}
	return nil
}

// RegisterProperty implements bridge.ClassDB.
func (db *ClassDB) RegisterProperty(class string, info bridge.PropertyInfo, get bridge.GetProxy, set bridge.SetProxy) error {
	rec, err := db.class(class)
	if err != nil {
		return err
	}
	for _, p := range rec.Properties {
		if p.Info.Name == info.Name {
			return fmt.Errorf("property %q already registered on %q", info.Name, class)
		}
	}
	rec.Properties = append(rec.Properties, RegisteredProperty{Info: info, Get: get, Set: set})
	return nil
}

// RegisterMethod implements bridge.ClassDB.
func (db *ClassDB) RegisterMethod(class string, info bridge.MethodInfo, call bridge.CallProxy) error {
	rec, err := db.class(class)
	if err != nil {
		return err
	}
	for _, m := range rec.Methods {
		if m.Info.Name == info.Name {
			return fmt.Errorf("method %q already registered on %q", info.Name, class)
		}
	}
	rec.Methods = append(rec.Methods, RegisteredMethod{Info: info, Call: call})
	return nil
}

// RegisterSignal implements bridge.ClassDB.
func (db *ClassDB) RegisterSignal(class string, info bridge.SignalInfo) error {
	rec, err := db.class(class)
	if err != nil {
		return err
	}
	for _, s := range rec.Signals {
		if s.Name == info.Name {
			return fmt.Errorf("signal %q already registered on %q", info.Name, class)
		}
	}
	rec.Signals = append(rec.Signals, info)
	return nil
}

// RegisterEnum implements bridge.ClassDB.
func (db *ClassDB) RegisterEnum(info bridge.EnumInfo) error {
	if db.Enums == nil {
		db.Enums = make(map[string]bridge.EnumInfo)
	}
	if _, exists := db.Enums[info.Name]; exists {
		return fmt.Errorf("enum %q already registered", info.Name)
	}
	db.Enums[info.Name] = info
	return nil
}

// RegisterOverride implements bridge.ClassDB.
func (db *ClassDB) RegisterOverride(class, hook string) error {
	rec, err := db.class(class)
	if err != nil {
		return err
	}
	rec.Overrides = append(rec.Overrides, hook)
	return nil
}

// SetActive implements bridge.ClassDB.
func (db *ClassDB) SetActive(class string, active bool) error {
	rec, err := db.class(class)
	if err != nil {
		return err
	}
	rec.Active = active
	rec.ActiveSet = true
	return nil
}
