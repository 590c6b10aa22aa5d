package jsondiff

import (
	"encoding/json"
	"math"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedType is returned when converting a go value that has no
// JSON-like counterpart
var ErrUnsupportedType = errors.New("unsupported type")

// FromInterface converts native go data into a Value. It accepts the types
// produced by decoding JSON or YAML into an interface{}: maps with string
// keys, slices, any integer or float type, json.Number, string, bool & nil
func FromInterface(v interface{}) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(float64(x)), nil
	case int:
		return Number(float64(x)), nil
	case int8:
		return Number(float64(x)), nil
	case int16:
		return Number(float64(x)), nil
	case int32:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case uint:
		return Number(float64(x)), nil
	case uint8:
		return Number(float64(x)), nil
	case uint16:
		return Number(float64(x)), nil
	case uint32:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return Value{}, errors.Wrapf(ErrUnsupportedType, "number %q", x.String())
		}
		return Number(f), nil
	case []interface{}:
		elems := make([]Value, len(x))
		for i, el := range x {
			ev, err := FromInterface(el)
			if err != nil {
				return Value{}, errors.Wrapf(err, "index %d", i)
			}
			elems[i] = ev
		}
		return Value{kind: ArrayKind, arr: &array{elems: elems}}, nil
	case map[string]interface{}:
		fields := make(map[string]Value, len(x))
		for k, el := range x {
			ev, err := FromInterface(el)
			if err != nil {
				return Value{}, errors.Wrapf(err, "key %q", k)
			}
			fields[k] = ev
		}
		return Value{kind: MapKind, obj: &object{fields: fields}}, nil
	case map[interface{}]interface{}:
		fields := make(map[string]Value, len(x))
		for k, el := range x {
			ks, ok := k.(string)
			if !ok {
				return Value{}, errors.Wrapf(ErrUnsupportedType, "map key %v (%T)", k, k)
			}
			ev, err := FromInterface(el)
			if err != nil {
				return Value{}, errors.Wrapf(err, "key %q", ks)
			}
			fields[ks] = ev
		}
		return Value{kind: MapKind, obj: &object{fields: fields}}, nil
	default:
		return Value{}, errors.Wrapf(ErrUnsupportedType, "%T", v)
	}
}

// MustFromInterface is FromInterface that panics on error. handy for tests &
// static data
func MustFromInterface(v interface{}) Value {
	val, err := FromInterface(v)
	if err != nil {
		panic(err)
	}
	return val
}

// ParseJSON decodes a JSON document into a Value
func ParseJSON(data []byte) (Value, error) {
	var v Value
	err := json.Unmarshal(data, &v)
	return v, err
}

// ParseYAML decodes a YAML document into a Value
func ParseYAML(data []byte) (Value, error) {
	var v Value
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Value{}, errors.Wrap(err, "parsing yaml")
	}
	return v, nil
}

// MarshalJSON implements the json.Marshaler interface. Infinite numbers can't
// be represented & produce an error
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == NumberKind && math.IsInf(v.num, 0) {
		return nil, errors.Wrapf(ErrUnsupportedType, "infinite number %v", v.num)
	}
	return json.Marshal(v.Interface())
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	val, err := FromInterface(raw)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface
func (v Value) MarshalYAML() (interface{}, error) {
	return v.Interface(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var raw interface{}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	val, err := FromInterface(raw)
	if err != nil {
		return err
	}
	*v = val
	return nil
}
