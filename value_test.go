package jsondiff

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

var smallKeys = []string{"a", "b", "c", "d", "e"}

// genValue produces a random document. the value domain is small on purpose
// so arrays & maps generated independently still share elements
func genValue(r *rand.Rand, depth int) Value {
	n := 6
	if depth >= 3 {
		n = 4
	}
	switch r.Intn(n) {
	case 0:
		return Null()
	case 1:
		return Bool(r.Intn(2) == 0)
	case 2:
		return Number([]float64{0, 1, 2, 3, -1, 1.5}[r.Intn(6)])
	case 3:
		return String(smallKeys[r.Intn(len(smallKeys))])
	case 4:
		elems := make([]Value, r.Intn(6))
		for i := range elems {
			elems[i] = genValue(r, depth+1)
		}
		return Array(elems...)
	default:
		fields := map[string]Value{}
		for _, k := range smallKeys {
			if r.Intn(2) == 0 {
				fields[k] = genValue(r, depth+1)
			}
		}
		return Map(fields)
	}
}

// mutate returns a changed copy of v, leaving v as-is
func mutate(r *rand.Rand, v Value, depth int) Value {
	switch v.Kind() {
	case ArrayKind:
		var elems []Value
		for _, el := range v.elems() {
			switch r.Intn(6) {
			case 0:
				// drop
			case 1:
				elems = append(elems, genValue(r, depth+1), el)
			case 2:
				elems = append(elems, mutate(r, el, depth+1))
			default:
				elems = append(elems, el)
			}
		}
		if r.Intn(3) == 0 {
			elems = append(elems, genValue(r, depth+1))
		}
		return Array(elems...)
	case MapKind:
		fields := map[string]Value{}
		for _, k := range smallKeys {
			el, ok := v.Get(k)
			switch {
			case ok && r.Intn(5) == 0:
				// drop
			case ok && r.Intn(3) == 0:
				fields[k] = mutate(r, el, depth+1)
			case ok:
				fields[k] = el
			case r.Intn(4) == 0:
				fields[k] = genValue(r, depth+1)
			}
		}
		return Map(fields)
	default:
		if r.Intn(2) == 0 {
			return genValue(r, depth)
		}
		return v
	}
}

// randomPairs generates n deterministic pairs of documents. most pairs are a
// document & a mutated copy of it, the rest are unrelated
func randomPairs(n int) [][2]Value {
	r := rand.New(rand.NewSource(42))
	pairs := make([][2]Value, n)
	for i := range pairs {
		a := genValue(r, 0)
		switch i % 4 {
		case 0:
			pairs[i] = [2]Value{a, genValue(r, 0)}
		default:
			pairs[i] = [2]Value{a, mutate(r, a, 0)}
		}
	}
	return pairs
}

func TestValueConstructors(t *testing.T) {
	assert.Equal(t, NullKind, Value{}.Kind())
	assert.Equal(t, NullKind, Number(math.NaN()).Kind())
	assert.Equal(t, NumberKind, Number(math.Inf(1)).Kind())
	assert.Equal(t, "map", Map(nil).Kind().String())
	assert.Equal(t, 0, Array().Len())

	src := []Value{Number(1), Number(2)}
	arr := Array(src...)
	src[0] = String("changed")
	el, ok := arr.Index(0)
	assert.True(t, ok)
	assert.Equal(t, float64(1), el.AsNumber(), "Array must copy its input")

	fields := map[string]Value{"a": Bool(true)}
	m := Map(fields)
	fields["b"] = Null()
	assert.Equal(t, 1, m.Len(), "Map must copy its input")
	assert.Equal(t, []string{"a"}, m.Keys())
}

func TestValueAccessors(t *testing.T) {
	v := mustParse(t, `{"b":[true,"x",{"c":null}],"a":1.5}`)

	assert.True(t, v.IsMap())
	assert.Equal(t, []string{"a", "b"}, v.Keys())

	a, ok := v.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1.5, a.AsNumber())

	_, ok = v.Get("missing")
	assert.False(t, ok)

	got, ok := v.At(Path{StringAddr("b"), IndexAddr(1)})
	assert.True(t, ok)
	assert.Equal(t, "x", got.AsString())

	got, ok = v.At(Path{StringAddr("b"), IndexAddr(2), StringAddr("c")})
	assert.True(t, ok)
	assert.True(t, got.IsNull())

	_, ok = v.At(Path{StringAddr("b"), StringAddr("0")})
	assert.False(t, ok, "key into array")
	_, ok = v.At(Path{StringAddr("b"), IndexAddr(3)})
	assert.False(t, ok, "index out of range")

	root, ok := v.At(Path{})
	assert.True(t, ok)
	assert.True(t, identical(v, root))

	assert.Equal(t, `{"a":1.5,"b":[true,"x",{"c":null}]}`, v.String())
}

func TestShallowCopy(t *testing.T) {
	v := mustParse(t, `{"a":{"b":1},"c":[1,2]}`)
	cp := v.shallowCopy()
	assert.False(t, identical(v, cp), "copy must be a new container")
	assert.True(t, Equal(v, cp))

	va, _ := v.Get("a")
	ca, _ := cp.Get("a")
	assert.True(t, identical(va, ca), "children must be shared")

	arr, _ := v.Get("c")
	arrCp := arr.shallowCopy()
	assert.False(t, identical(arr, arrCp))
	assert.True(t, Equal(arr, arrCp))

	s := String("x")
	assert.True(t, identical(s, s.shallowCopy()))
}

func TestWalk(t *testing.T) {
	v := mustParse(t, `{"b":[1,{"c":true}],"a":null}`)

	var paths []string
	Walk(v, func(p Path, _ Value) bool {
		paths = append(paths, p.String())
		return true
	})
	expect := []string{"", "/a", "/b", "/b/0", "/b/1", "/b/1/c"}
	if diff := cmp.Diff(expect, paths); diff != "" {
		t.Errorf("walk order mismatch (-want +got):\n%s", diff)
	}

	paths = nil
	Walk(v, func(p Path, el Value) bool {
		paths = append(paths, p.String())
		return !el.IsArray()
	})
	expect = []string{"", "/a", "/b"}
	if diff := cmp.Diff(expect, paths); diff != "" {
		t.Errorf("walk skip mismatch (-want +got):\n%s", diff)
	}
}

func TestNodeCount(t *testing.T) {
	assert.Equal(t, 1, nodeCount(Null()))
	assert.Equal(t, 6, nodeCount(mustParse(t, `{"b":[1,{"c":true}],"a":null}`)))
}

func TestPathString(t *testing.T) {
	cases := []struct {
		path   Path
		expect string
	}{
		{Path{}, ""},
		{Path{StringAddr("a"), IndexAddr(0)}, "/a/0"},
		{Path{StringAddr("a/b"), StringAddr("m~n")}, "/a~1b/m~0n"},
		{Path{StringAddr("")}, "/"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expect, c.path.String())
	}
}

func TestPathChild(t *testing.T) {
	base := make(Path, 1, 4)
	base[0] = StringAddr("a")
	x := base.Child(StringAddr("x"))
	y := base.Child(StringAddr("y"))

	assert.True(t, x.Eq(Path{StringAddr("a"), StringAddr("x")}))
	assert.True(t, y.Eq(Path{StringAddr("a"), StringAddr("y")}))
	assert.Len(t, base, 1)

	assert.False(t, Path{IndexAddr(0)}.Eq(Path{StringAddr("0")}))
	assert.False(t, Path{}.Eq(Path{IndexAddr(0)}))
}
