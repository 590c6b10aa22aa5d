package jsondiff

import (
	"github.com/pkg/errors"
)

var (
	// ErrPathKind means a path step doesn't fit the container it's applied to:
	// a key into an array, an index into a map, or any step into a scalar
	ErrPathKind = errors.New("path step does not match container kind")
	// ErrIndexRange means an array index is outside the array
	ErrIndexRange = errors.New("array index out of range")
	// ErrKeyNotFound means a map key on the way to a delta's target is missing
	ErrKeyNotFound = errors.New("map key not found")
	// ErrInvalidOperation means a delta has an unrecognized Type
	ErrInvalidOperation = errors.New("invalid operation")

	// errRoot is returned by navigate for the empty path: there is no container
	// above the root
	errRoot = errors.New("root has no container")
)

// Patch applies a change script to a value, returning the patched value. v is
// never modified: containers along the path of each delta are copied (each at
// most once per call) & everything else is shared with v.
//
// Deltas are applied in order, each one against the result of the previous.
// Patch is strict about paths: a step that doesn't match its container, a
// missing intermediate key or an out-of-range index fails the whole patch.
// Deleting a map key that doesn't exist is not an error
func Patch(v Value, patch Deltas) (Value, error) {
	s := newSession(v)
	for i, dlt := range patch {
		if dlt == nil {
			continue
		}
		if err := s.apply(dlt); err != nil {
			return Value{}, errors.Wrapf(err, "patch %d (%s %s)", i, dlt.Type, dlt.Path)
		}
	}
	return s.result, nil
}

// session is the state of a single Patch call. owned records every container
// the session allocated; anything else belongs to the caller (or to an
// inserted value) & must be copied before it's written to
type session struct {
	result Value
	owned  map[interface{}]struct{}
}

func newSession(v Value) *session {
	return &session{result: v, owned: map[interface{}]struct{}{}}
}

func containerID(v Value) interface{} {
	switch v.kind {
	case ArrayKind:
		return v.arr
	case MapKind:
		return v.obj
	}
	return nil
}

func (s *session) owns(v Value) bool {
	id := containerID(v)
	if id == nil {
		return false
	}
	_, ok := s.owned[id]
	return ok
}

// own returns a copy of v that's safe to write to during this session.
// containers already owned are returned as-is
func (s *session) own(v Value) Value {
	if !v.isContainer() || s.owns(v) {
		return v
	}
	cp := v.shallowCopy()
	s.owned[containerID(cp)] = struct{}{}
	return cp
}

// navigate returns the container holding the last step of p, copying every
// container on the way that this session doesn't own yet & installing the copy
// in its parent. The empty path returns errRoot
func (s *session) navigate(p Path) (Value, error) {
	if len(p) == 0 {
		return Value{}, errRoot
	}

	s.result = s.own(s.result)
	container := s.result

	for i, addr := range p[:len(p)-1] {
		var child Value
		switch a := addr.(type) {
		case StringAddr:
			if container.kind != MapKind {
				return Value{}, errors.Wrapf(ErrPathKind, "key %q into %s at %s", string(a), container.kind, p[:i])
			}
			el, ok := container.obj.fields[string(a)]
			if !ok {
				return Value{}, errors.Wrapf(ErrKeyNotFound, "key %q at %s", string(a), p[:i])
			}
			child = s.own(el)
			container.obj.fields[string(a)] = child
		case IndexAddr:
			if container.kind != ArrayKind {
				return Value{}, errors.Wrapf(ErrPathKind, "index %d into %s at %s", int(a), container.kind, p[:i])
			}
			idx, l := int(a), len(container.arr.elems)
			if idx < 0 || idx >= l {
				return Value{}, errors.Wrapf(ErrIndexRange, "index %d exceeds %d at %s", idx, l, p[:i])
			}
			child = s.own(container.arr.elems[idx])
			container.arr.elems[idx] = child
		default:
			return Value{}, errors.Wrapf(ErrPathKind, "unknown address type %T", addr)
		}
		container = child
	}

	if !container.isContainer() {
		return Value{}, errors.Wrapf(ErrPathKind, "cannot address into %s at %s", container.kind, p[:len(p)-1])
	}
	return container, nil
}

func (s *session) apply(dlt *Delta) error {
	switch dlt.Type {
	case DTInsert:
		return s.insert(dlt.Path, dlt.Value)
	case DTDelete:
		return s.delete(dlt.Path)
	default:
		return errors.Wrapf(ErrInvalidOperation, "%q", dlt.Type)
	}
}

func (s *session) insert(p Path, val Value) error {
	container, err := s.navigate(p)
	if err == errRoot {
		s.result = val
		return nil
	} else if err != nil {
		return err
	}

	switch key := p[len(p)-1].(type) {
	case IndexAddr:
		if container.kind != ArrayKind {
			return errors.Wrapf(ErrPathKind, "index %d into %s", int(key), container.kind)
		}
		i, l := int(key), len(container.arr.elems)
		if i < 0 || i > l {
			return errors.Wrapf(ErrIndexRange, "index %d exceeds %d", i, l)
		}
		els := append(container.arr.elems, Value{})
		copy(els[i+1:], els[i:])
		els[i] = val
		container.arr.elems = els
	case StringAddr:
		if container.kind != MapKind {
			return errors.Wrapf(ErrPathKind, "key %q into %s", string(key), container.kind)
		}
		container.obj.fields[string(key)] = val
	default:
		return errors.Wrapf(ErrPathKind, "unknown address type %T", key)
	}
	return nil
}

func (s *session) delete(p Path) error {
	container, err := s.navigate(p)
	if err == errRoot {
		s.result = Null()
		return nil
	} else if err != nil {
		return err
	}

	switch key := p[len(p)-1].(type) {
	case IndexAddr:
		if container.kind != ArrayKind {
			return errors.Wrapf(ErrPathKind, "index %d into %s", int(key), container.kind)
		}
		i, l := int(key), len(container.arr.elems)
		if i < 0 || i >= l {
			return errors.Wrapf(ErrIndexRange, "index %d exceeds %d", i, l)
		}
		els := container.arr.elems
		copy(els[i:], els[i+1:])
		els[l-1] = Value{}
		container.arr.elems = els[:l-1]
	case StringAddr:
		if container.kind != MapKind {
			return errors.Wrapf(ErrPathKind, "key %q into %s", string(key), container.kind)
		}
		delete(container.obj.fields, string(key))
	default:
		return errors.Wrapf(ErrPathKind, "unknown address type %T", key)
	}
	return nil
}
