package jsondiff

// editVisitor receives the decisions of an edit script. Callbacks fire while
// backtracking, so they arrive in reverse: the last decision of the
// left-to-right script comes first. Any callback may be nil
type editVisitor struct {
	// match is called for a pair of equal elements a[aIdx] == b[bIdx]
	match func(aIdx, bIdx int)
	// takeA is called when a[aIdx] is dropped (a deletion). bIdx is the
	// position in b the deletion happens in front of
	takeA func(aIdx, bIdx int)
	// takeB is called when b[bIdx] is taken (an insertion). aIdx is the
	// position in a the insertion happens in front of
	takeB func(aIdx, bIdx int)
}

// editScript finds a shortest edit script that transforms a into b, using the
// greedy diagonal search described in "An O(ND) Difference Algorithm and Its
// Variations" by Eugene W. Myers. Every element taken from only one side costs
// one unit of tolerance. If no script fits within tolerance editScript reports
// false without calling any visitor callbacks.
//
// eq decides element equality. the structural comparator passes Equal, which
// itself runs the comparator, making the two mutually recursive
func editScript(a, b []Value, tolerance int, eq func(x, y Value) bool, visit editVisitor) bool {
	aLen, bLen := len(a), len(b)
	if tolerance < 0 {
		return false
	}
	if tolerance > aLen+bLen {
		tolerance = aLen + bLen
	}

	// furthest reaching a index for each diagonal k = aIdx - bIdx, offset by
	// tolerance so k = -tolerance lands on 0. history keeps a snapshot per edit
	// distance so we can backtrack
	aOfDiagonal := make([]int, tolerance*2+2)
	history := make([][]int, 0, tolerance+1)

	found := false
	var endD, endK int

SEARCH:
	for d := 0; d <= tolerance; d++ {
		for k := -d; k <= d; k += 2 {
			var aIdx int
			takeB := aOfDiagonal[k+1+tolerance]
			if k == -d || (k != d && aOfDiagonal[k-1+tolerance] < takeB) {
				aIdx = takeB
			} else {
				aIdx = aOfDiagonal[k-1+tolerance] + 1
			}

			bIdx := aIdx - k
			for aIdx < aLen && bIdx < bLen && eq(a[aIdx], b[bIdx]) {
				aIdx++
				bIdx++
			}
			aOfDiagonal[k+tolerance] = aIdx

			if aIdx >= aLen && bIdx >= bLen {
				history = append(history, snapshot(aOfDiagonal))
				found, endD, endK = true, d, k
				break SEARCH
			}
		}
		history = append(history, snapshot(aOfDiagonal))
	}

	if !found {
		return false
	}

	d := endD
	aIdx := history[d][endK+tolerance]
	bIdx := aIdx - endK

	for d > 0 {
		k := aIdx - bIdx
		v := history[d-1]

		var prevK int
		if k == -d || (k != d && v[k-1+tolerance] < v[k+1+tolerance]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}

		prevAIdx := v[prevK+tolerance]
		prevBIdx := prevAIdx - prevK

		for aIdx > prevAIdx && bIdx > prevBIdx {
			aIdx--
			bIdx--
			if visit.match != nil {
				visit.match(aIdx, bIdx)
			}
		}

		if aIdx > prevAIdx {
			aIdx--
			if visit.takeA != nil {
				visit.takeA(aIdx, bIdx)
			}
		} else if bIdx > prevBIdx {
			bIdx--
			if visit.takeB != nil {
				visit.takeB(aIdx, bIdx)
			}
		}

		d--
	}

	// shared prefix
	for aIdx > 0 && bIdx > 0 {
		aIdx--
		bIdx--
		if visit.match != nil {
			visit.match(aIdx, bIdx)
		}
	}

	return true
}

func snapshot(v []int) []int {
	cp := make([]int, len(v))
	copy(cp, v)
	return cp
}

// LCS finds the longest common subsequence of a & b, comparing elements with
// Equal. OptionTolerance bounds the number of elements that may be left out of
// the subsequence (from either side) before the search gives up, in which
// case LCS returns false. The tolerance defaults to len(a)+len(b), which
// always succeeds
func LCS(a, b []Value, opts ...DiffOption) ([]Value, bool) {
	cfg := &DiffConfig{Tolerance: len(a) + len(b)}
	for _, opt := range opts {
		opt(cfg)
	}

	var rev []Value
	ok := editScript(a, b, cfg.Tolerance, Equal, editVisitor{
		match: func(aIdx, _ int) { rev = append(rev, a[aIdx]) },
	})
	if !ok {
		return nil, false
	}

	seq := make([]Value, len(rev))
	for i, v := range rev {
		seq[len(rev)-1-i] = v
	}
	return seq, true
}
