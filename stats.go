package jsondiff

// Stats holds statistical metadata about a diff
type Stats struct {
	Left  int `json:"leftNodes"`  // count of nodes in the left tree
	Right int `json:"rightNodes"` // count of nodes in the right tree

	Inserts int `json:"inserts,omitempty"` // number of nodes inserted
	Deletes int `json:"deletes,omitempty"` // number of nodes deleted

	// Replaced is true when the diff exceeded its tolerance & fell back to
	// replacing the whole document
	Replaced bool `json:"replaced,omitempty"`
}

// NodeChange returns a count of the shift between left & right trees
func (s Stats) NodeChange() int {
	return s.Right - s.Left
}

// PctNodeChange returns a value from -1.0 to max(float64) representing the
// relative size shift between left & right trees
func (s Stats) PctNodeChange() float64 {
	if s.Left == 0 {
		return 0
	}
	return float64(s.NodeChange()) / float64(s.Left)
}
