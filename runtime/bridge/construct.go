package bridge

import (
	"errors"
	"fmt"

	"github.com/tether-lang/tether/runtime/hostval"
)

// Construction selects exactly one of the two construction paths a
// generated class offers: fresh allocation of a new host object, or
// wrapping a handle the host already owns. The two paths are mutually
// exclusive; double allocation and use-after-free are the failure
// modes this type exists to rule out.
type Construction struct {
	fresh  bool
	handle hostval.Object
}

// Fresh selects the fresh-value path.
func Fresh() Construction {
	return Construction{fresh: true}
}

// Wrap selects the handle-wrapping path for a host-owned handle.
func Wrap(handle hostval.Object) Construction {
	return Construction{handle: handle}
}

// ErrAlreadyConstructed is returned when a wrapper instance is
// initialized a second time.
var ErrAlreadyConstructed = errors.New("instance already constructed")

// ErrNilHandle is returned when the handle-wrapping path receives no
// handle.
var ErrNilHandle = errors.New("cannot wrap a nil host handle")

// Instance is embedded in every generated wrapper struct. It owns the
// link to the host-native counterpart object and guarantees that
// exactly one construction path runs per instance.
type Instance struct {
	object      hostval.Object
	constructed bool
}

// Construct initializes the wrapper once. hostClass is the host-side
// class allocated on the fresh path. Handle-discarding classes carry
// that as registration metadata (Class.DiscardHandle); construction
// itself is identical for both kinds.
func (i *Instance) Construct(host Host, hostClass string, c Construction) error {
	if i.constructed {
		return ErrAlreadyConstructed
	}

	if c.fresh {
		obj, err := host.NewObject(hostClass)
		if err != nil {
			return fmt.Errorf("allocating %s: %w", hostClass, err)
		}
		i.object = obj
	} else {
		if c.handle == nil {
			return ErrNilHandle
		}
		i.object = c.handle
	}

	i.constructed = true
	return nil
}

// Object returns the host-native counterpart. It is nil until
// Construct succeeds.
func (i *Instance) Object() hostval.Object { return i.object }

// Constructed reports whether a construction path has run.
func (i *Instance) Constructed() bool { return i.constructed }

// InstanceID implements hostval.Object so wrappers can themselves be
// marshaled as object values.
func (i *Instance) InstanceID() uint64 {
	if i.object == nil {
		return 0
	}
	return i.object.InstanceID()
}
