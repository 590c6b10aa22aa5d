package jsondiff

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidDelta is returned when decoding a malformed delta
var ErrInvalidDelta = errors.New("invalid delta")

// Operation defines the operation of a Delta item
type Operation string

const (
	// DTInsert places a value at a path. Into an array it's an insertion that
	// shifts later elements right, into a map it sets the key, and at the root
	// path it replaces the whole document
	DTInsert = Operation("+")
	// DTDelete removes the value at a path. Deleting from an array shifts later
	// elements left, deleting the root leaves null
	DTDelete = Operation("-")
)

// Delta is a single edit. Deltas are applied in order, each one observing the
// result of the edits before it, so array paths in a list of deltas account
// for earlier insertions & deletions in the same array
type Delta struct {
	// the type of change
	Type Operation
	// Path addresses the location of the edit
	Path Path
	// Value to insert. unused for deletes
	Value Value
}

// Deltas is an ordered edit script. A nil or empty list means "no change"
type Deltas []*Delta

// MarshalJSON encodes a delta positionally, distinguishing inserts & deletes
// by shape instead of a type tag: an insert is [[...path], value], a delete is
// the bare path [...path]. A path step is always a string or number, never an
// array, so the first element of an encoded delta tells the two apart
func (d *Delta) MarshalJSON() ([]byte, error) {
	steps := pathSteps(d.Path)
	switch d.Type {
	case DTInsert:
		return json.Marshal([]interface{}{steps, d.Value})
	case DTDelete:
		return json.Marshal(steps)
	default:
		return nil, errors.Wrapf(ErrInvalidDelta, "unknown operation %q", d.Type)
	}
}

// UnmarshalJSON decodes the positional form written by MarshalJSON
func (d *Delta) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return errors.Wrap(ErrInvalidDelta, err.Error())
	}

	if len(parts) > 0 && isJSONArray(parts[0]) {
		if len(parts) != 2 {
			return errors.Wrapf(ErrInvalidDelta, "insert must have exactly 2 elements, got %d", len(parts))
		}
		p, err := parsePath(parts[0])
		if err != nil {
			return err
		}
		var v Value
		if err := json.Unmarshal(parts[1], &v); err != nil {
			return err
		}
		*d = Delta{Type: DTInsert, Path: p, Value: v}
		return nil
	}

	p, err := parsePath(data)
	if err != nil {
		return err
	}
	*d = Delta{Type: DTDelete, Path: p}
	return nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func pathSteps(p Path) []interface{} {
	steps := make([]interface{}, len(p))
	for i, a := range p {
		steps[i] = a.Value()
	}
	return steps
}

func parsePath(data []byte) (Path, error) {
	var steps []interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&steps); err != nil {
		return nil, errors.Wrap(ErrInvalidDelta, err.Error())
	}

	p := make(Path, len(steps))
	for i, s := range steps {
		switch x := s.(type) {
		case string:
			p[i] = StringAddr(x)
		case json.Number:
			f, err := x.Float64()
			if err != nil || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
				return nil, errors.Wrapf(ErrInvalidDelta, "invalid array index %s", x)
			}
			p[i] = IndexAddr(int(f))
		default:
			return nil, errors.Wrapf(ErrInvalidDelta, "path step %d must be a string or index, got %T", i, s)
		}
	}
	return p, nil
}
