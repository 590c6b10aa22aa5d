package jsondiff

import (
	"strconv"
	"strings"
)

// Addr is a single step in a Path, either a StringAddr map key or an IndexAddr
// array index
type Addr interface {
	// Value returns the step as a string or int
	Value() interface{}
	String() string
	Eq(b Addr) bool
}

// StringAddr is a map key
type StringAddr string

var _ Addr = (*StringAddr)(nil)

// Value returns the key as a string
func (a StringAddr) Value() interface{} { return string(a) }

// String returns the key
func (a StringAddr) String() string { return string(a) }

// Eq tests for equality with another address
func (a StringAddr) Eq(b Addr) bool {
	bs, ok := b.(StringAddr)
	return ok && a == bs
}

// IndexAddr is a non-negative array index
type IndexAddr int

var _ Addr = (*IndexAddr)(nil)

// Value returns the index as an int
func (a IndexAddr) Value() interface{} { return int(a) }

// String returns the index in base 10
func (a IndexAddr) String() string { return strconv.Itoa(int(a)) }

// Eq tests for equality with another address
func (a IndexAddr) Eq(b Addr) bool {
	bi, ok := b.(IndexAddr)
	return ok && a == bi
}

// Path addresses a location within a Value by sequential descent. The empty
// path addresses the root
type Path []Addr

// Child returns a new path with addr appended. p is never modified
func (p Path) Child(addr Addr) Path {
	cp := make(Path, len(p), len(p)+1)
	copy(cp, p)
	return append(cp, addr)
}

// Eq tests two paths for equality
func (p Path) Eq(b Path) bool {
	if len(p) != len(b) {
		return false
	}
	for i := range p {
		if !p[i].Eq(b[i]) {
			return false
		}
	}
	return true
}

// String renders the path as an RFC 6901 JSON pointer. the root path is the
// empty string
func (p Path) String() string {
	var sb strings.Builder
	for _, a := range p {
		sb.WriteByte('/')
		sb.WriteString(pointerEscaper.Replace(a.String()))
	}
	return sb.String()
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")
