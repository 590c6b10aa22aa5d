package jsondiff

import (
	"math"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// Unbounded is the default tolerance: diffs of any size are allowed
const Unbounded = math.MaxInt

// DiffConfig are any possible configuration parameters for calculating diffs
type DiffConfig struct {
	// Tolerance is the maximum number of deltas a diff may contain. Once it's
	// exceeded Diff abandons the comparison and returns a single delta that
	// replaces the entire value. LCS uses it as the budget of unmatched
	// elements
	Tolerance int
	// Provide a non-nil stats pointer & diff will populate it with data from
	// the diff process
	Stats *Stats
	// Logger receives debug output, defaults to a no-op logger
	Logger log.Logger
}

// DiffOption is a function that adjust a config, zero or more DiffOptions
// can be passed to the Diff function
type DiffOption func(cfg *DiffConfig)

// OptionTolerance sets the tolerance. negative values are treated as zero
func OptionTolerance(tolerance int) DiffOption {
	return func(cfg *DiffConfig) {
		if tolerance < 0 {
			tolerance = 0
		}
		cfg.Tolerance = tolerance
	}
}

// OptionSetStats will set the passed-in stats pointer when Diff is called
func OptionSetStats(st *Stats) DiffOption {
	return func(cfg *DiffConfig) {
		cfg.Stats = st
	}
}

// OptionLogger sets the logger used by Diff
func OptionLogger(logger log.Logger) DiffOption {
	return func(cfg *DiffConfig) {
		cfg.Logger = logger
	}
}

// Diff computes an edit script that turns a into b. A nil result means a & b
// are equal. The script is never guaranteed to be minimal. If it would hold
// more deltas than the configured tolerance, Diff instead returns a single
// insert at the root path that replaces a with b wholesale.
//
// Patching a with the result of Diff(a, b) always produces a value equal to b
func Diff(a, b Value, opts ...DiffOption) Deltas {
	cfg := &DiffConfig{Tolerance: Unbounded}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNopLogger()
	}

	d := &differ{tolerance: cfg.Tolerance, countNodes: cfg.Stats != nil}
	overflow := d.gather(a, b, Path{})

	if overflow || len(d.result) > cfg.Tolerance {
		level.Debug(cfg.Logger).Log(
			"msg", "tolerance exceeded, replacing whole value",
			"tolerance", cfg.Tolerance,
			"deltas", len(d.result),
			"aborted", overflow,
		)
		if cfg.Stats != nil {
			*cfg.Stats = Stats{
				Left:     nodeCount(a),
				Right:    nodeCount(b),
				Inserts:  nodeCount(b),
				Deletes:  nodeCount(a),
				Replaced: true,
			}
		}
		return Deltas{{Type: DTInsert, Path: Path{}, Value: b}}
	}

	if cfg.Stats != nil {
		*cfg.Stats = Stats{
			Left:    nodeCount(a),
			Right:   nodeCount(b),
			Inserts: d.inserted,
			Deletes: d.deleted,
		}
	}

	if len(d.result) == 0 {
		return nil
	}
	level.Debug(cfg.Logger).Log("msg", "diff complete", "deltas", len(d.result))
	return d.result
}

// Equal reports whether a & b are deeply equal. map key order never matters,
// NaN & absent values equal null. Equal is a diff with zero tolerance: the
// first difference aborts the comparison
func Equal(a, b Value) bool {
	if identical(a, b) {
		return true
	}
	d := &differ{tolerance: 0}
	return !d.gather(a, b, Path{}) && len(d.result) == 0
}

// differ accumulates deltas for a single comparison. tolerance is shared by
// the whole recursion, it is never reset for a subtree
type differ struct {
	tolerance int
	result    Deltas

	// node counts for stats, only tallied when countNodes is set
	countNodes        bool
	inserted, deleted int
}

func (d *differ) insert(p Path, v Value) {
	d.result = append(d.result, &Delta{Type: DTInsert, Path: p, Value: v})
	if d.countNodes {
		d.inserted += nodeCount(v)
	}
}

func (d *differ) delete(p Path, removed Value) {
	d.result = append(d.result, &Delta{Type: DTDelete, Path: p})
	if d.countNodes {
		d.deleted += nodeCount(removed)
	}
}

// replace swaps the subtree at p for b
func (d *differ) replace(p Path, a, b Value) {
	d.insert(p, b)
	if d.countNodes {
		d.deleted += nodeCount(a)
	}
}

func (d *differ) overflowed() bool {
	return len(d.result) > d.tolerance
}

// gather compares a & b at path p, appending deltas to d.result. It returns
// true if the comparison was abandoned because tolerance was exceeded
func (d *differ) gather(a, b Value, p Path) (overflow bool) {
	if identical(a, b) {
		return false
	}

	if a.kind != b.kind {
		d.replace(p, a, b)
		return false
	}

	switch a.kind {
	case ArrayKind:
		return d.gatherArray(a, b, p)
	case MapKind:
		return d.gatherMap(a, b, p)
	default:
		// same kind scalars that aren't identical
		d.replace(p, a, b)
		return false
	}
}

type editKind uint8

const (
	editMatch editKind = iota
	editDelete
	editInsert
)

type edit struct {
	kind       editKind
	aIdx, bIdx int
}

func (d *differ) gatherArray(a, b Value, p Path) bool {
	aEls, bEls := a.elems(), b.elems()

	// the edit script arrives back-to-front. collect it & replay forwards so
	// the offset into the partially patched array accumulates correctly
	var edits []edit
	ok := editScript(aEls, bEls, d.tolerance-len(d.result), Equal, editVisitor{
		match: func(aIdx, bIdx int) { edits = append(edits, edit{editMatch, aIdx, bIdx}) },
		takeA: func(aIdx, bIdx int) { edits = append(edits, edit{editDelete, aIdx, bIdx}) },
		takeB: func(aIdx, bIdx int) { edits = append(edits, edit{editInsert, aIdx, bIdx}) },
	})
	if !ok {
		return true
	}

	offset := 0
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		switch e.kind {
		case editMatch:
			offset++
		case editDelete:
			// earlier deletions are already reflected in the shrinking array,
			// so the next element lands on the same offset
			d.delete(p.Child(IndexAddr(offset)), aEls[e.aIdx])
		case editInsert:
			d.insert(p.Child(IndexAddr(offset)), bEls[e.bIdx])
			offset++
		}
	}
	return false
}

func (d *differ) gatherMap(a, b Value, p Path) bool {
	for _, k := range a.Keys() {
		av, _ := a.Get(k)
		bv, ok := b.Get(k)
		if !ok {
			d.delete(p.Child(StringAddr(k)), av)
			if d.overflowed() {
				return true
			}
			continue
		}

		if d.gather(av, bv, p.Child(StringAddr(k))) {
			return true
		}
		if d.overflowed() {
			return true
		}
	}

	for _, k := range b.Keys() {
		if _, ok := a.Get(k); ok {
			continue
		}
		bv, _ := b.Get(k)
		d.insert(p.Child(StringAddr(k)), bv)
		if d.overflowed() {
			return true
		}
	}

	return false
}
