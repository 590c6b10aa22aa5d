package jsondiff

import (
	"encoding/json"
	"math"
	"sort"
)

// Kind enumerates the types of data a Value can hold
type Kind uint8

const (
	// NullKind is the kind of the zero Value. absent & not-a-number values
	// are normalized to null
	NullKind Kind = iota
	// BoolKind is a true/false value
	BoolKind
	// NumberKind is a float64 value
	NumberKind
	// StringKind is a string value
	StringKind
	// ArrayKind is an ordered sequence of values
	ArrayKind
	// MapKind is a string-keyed mapping of values. key order is irrelevant
	MapKind
)

// String implements the fmt.Stringer interface
func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case ArrayKind:
		return "array"
	case MapKind:
		return "map"
	default:
		return "<unknown kind>"
	}
}

// array & object are the two container types. they're always held by pointer
// so container identity can be observed
type array struct {
	elems []Value
}

type object struct {
	fields map[string]Value
}

// Value is an immutable JSON-like document tree. The zero Value is null.
// Containers are shared by reference between values produced by Diff & Patch,
// so callers must never mutate the results of Elems or Interface in the hope
// of changing a Value
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	arr  *array
	obj  *object
}

// Null returns the null value
func Null() Value { return Value{} }

// Bool creates a boolean value
func Bool(b bool) Value { return Value{kind: BoolKind, b: b} }

// Number creates a numeric value. NaN is normalized to null
func Number(f float64) Value {
	if math.IsNaN(f) {
		return Value{}
	}
	return Value{kind: NumberKind, num: f}
}

// String creates a string value
func String(s string) Value { return Value{kind: StringKind, str: s} }

// Array creates an array value from a list of elements
func Array(elems ...Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return Value{kind: ArrayKind, arr: &array{elems: cp}}
}

// Map creates a map value. The passed-in map is copied
func Map(fields map[string]Value) Value {
	cp := make(map[string]Value, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return Value{kind: MapKind, obj: &object{fields: cp}}
}

// Kind returns the kind of value v holds
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null
func (v Value) IsNull() bool { return v.kind == NullKind }

// IsArray reports whether v is an array
func (v Value) IsArray() bool { return v.kind == ArrayKind }

// IsMap reports whether v is a map
func (v Value) IsMap() bool { return v.kind == MapKind }

// AsBool returns the boolean held by v, false for any other kind
func (v Value) AsBool() bool { return v.b }

// AsNumber returns the number held by v, 0 for any other kind
func (v Value) AsNumber() float64 { return v.num }

// AsString returns the string held by v, "" for any other kind
func (v Value) AsString() string { return v.str }

// Len returns the number of elements in an array or entries in a map. scalars
// have length 0
func (v Value) Len() int {
	switch {
	case v.kind == ArrayKind && v.arr != nil:
		return len(v.arr.elems)
	case v.kind == MapKind && v.obj != nil:
		return len(v.obj.fields)
	}
	return 0
}

// Index returns the i-th element of an array. ok is false if v isn't an array
// or i is out of range
func (v Value) Index(i int) (el Value, ok bool) {
	if v.kind != ArrayKind || v.arr == nil || i < 0 || i >= len(v.arr.elems) {
		return Value{}, false
	}
	return v.arr.elems[i], true
}

// Get returns the value stored at key in a map
func (v Value) Get(key string) (val Value, ok bool) {
	if v.kind != MapKind || v.obj == nil {
		return Value{}, false
	}
	val, ok = v.obj.fields[key]
	return val, ok
}

// Keys lists map keys in sorted order
func (v Value) Keys() []string {
	if v.kind != MapKind || v.obj == nil {
		return nil
	}
	keys := make([]string, 0, len(v.obj.fields))
	for k := range v.obj.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Elems returns a copy of the elements of an array
func (v Value) Elems() []Value {
	if v.kind != ArrayKind || v.arr == nil {
		return nil
	}
	cp := make([]Value, len(v.arr.elems))
	copy(cp, v.arr.elems)
	return cp
}

// elems gives direct, read-only access to array elements
func (v Value) elems() []Value {
	if v.kind != ArrayKind || v.arr == nil {
		return nil
	}
	return v.arr.elems
}

// At returns the value addressed by path. a step that doesn't fit the value
// it's applied to yields ok == false
func (v Value) At(p Path) (val Value, ok bool) {
	val = v
	for _, addr := range p {
		switch a := addr.(type) {
		case StringAddr:
			if val, ok = val.Get(string(a)); !ok {
				return Value{}, false
			}
		case IndexAddr:
			if val, ok = val.Index(int(a)); !ok {
				return Value{}, false
			}
		default:
			return Value{}, false
		}
	}
	return val, true
}

// Interface converts v to the native go types produced by encoding/json:
// map[string]interface{}, []interface{}, float64, string, bool & nil
func (v Value) Interface() interface{} {
	switch v.kind {
	case BoolKind:
		return v.b
	case NumberKind:
		return v.num
	case StringKind:
		return v.str
	case ArrayKind:
		els := v.elems()
		res := make([]interface{}, len(els))
		for i, el := range els {
			res[i] = el.Interface()
		}
		return res
	case MapKind:
		res := map[string]interface{}{}
		if v.obj != nil {
			for k, el := range v.obj.fields {
				res[k] = el.Interface()
			}
		}
		return res
	default:
		return nil
	}
}

// String renders v as compact JSON
func (v Value) String() string {
	data, err := json.Marshal(v.Interface())
	if err != nil {
		return "<" + v.kind.String() + ": " + err.Error() + ">"
	}
	return string(data)
}

// Equal reports whether v & o are deeply equal, see the package-level Equal
// function. Having this method lets go-cmp compare values
func (v Value) Equal(o Value) bool { return Equal(v, o) }

// isContainer reports whether v is an array or map
func (v Value) isContainer() bool {
	return v.kind == ArrayKind || v.kind == MapKind
}

// shallowCopy creates a new container with the same child references.
// scalars are immutable & copy as themselves
func (v Value) shallowCopy() Value {
	switch v.kind {
	case ArrayKind:
		els := v.elems()
		cp := make([]Value, len(els))
		copy(cp, els)
		return Value{kind: ArrayKind, arr: &array{elems: cp}}
	case MapKind:
		fields := map[string]Value{}
		if v.obj != nil {
			for k, el := range v.obj.fields {
				fields[k] = el
			}
		}
		return Value{kind: MapKind, obj: &object{fields: fields}}
	default:
		return v
	}
}

// identical is reference identity for containers & value identity for
// scalars. It's only ever a fast path for equality
func identical(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case NullKind:
		return true
	case BoolKind:
		return a.b == b.b
	case NumberKind:
		return a.num == b.num
	case StringKind:
		return a.str == b.str
	case ArrayKind:
		return a.arr == b.arr
	case MapKind:
		return a.obj == b.obj
	}
	return false
}

// nodeCount is the number of values in a tree, including v itself
func nodeCount(v Value) int {
	n := 1
	switch v.kind {
	case ArrayKind:
		for _, el := range v.elems() {
			n += nodeCount(el)
		}
	case MapKind:
		if v.obj != nil {
			for _, el := range v.obj.fields {
				n += nodeCount(el)
			}
		}
	}
	return n
}

// Walk visits every value in a tree in top-down (prefix) order, map keys in
// sorted order. Returning false from fn skips the children of the value
func Walk(v Value, fn func(p Path, v Value) bool) {
	walk(v, Path{}, fn)
}

func walk(v Value, p Path, fn func(p Path, v Value) bool) {
	if !fn(p, v) {
		return
	}
	switch v.kind {
	case ArrayKind:
		for i, el := range v.elems() {
			walk(el, p.Child(IndexAddr(i)), fn)
		}
	case MapKind:
		for _, k := range v.Keys() {
			el, _ := v.Get(k)
			walk(el, p.Child(StringAddr(k)), fn)
		}
	}
}
