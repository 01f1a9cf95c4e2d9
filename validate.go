package tilemask

import "sort"

// MaskEntry ties a recovered mask to the cell it was found in. The sorted
// entry list is the deliverable lookup table on a perfect reconstruction.
type MaskEntry struct {
	Mask int
	Col  int
	Row  int
}

// Validation compares the recovered mask multiset against the grammar's
// canonical set. Missing, Extra, and Duplicated are the diagnostic signal
// of this tool, not errors: they point at miscalibrated art or an
// unexpected grammar rather than at a failure of the algorithm.
type Validation struct {
	Unique     int
	Missing    []int
	Extra      []int
	Duplicated map[int][]CellPos
	OK         bool
	// Table is the [mask, col, row] lookup table sorted by ascending mask,
	// populated only when OK.
	Table []MaskEntry
}

// Validate classifies the observed (mask, col, row) triples against the
// canonical mask set. Entries with negative masks are the caller's unused
// slots and must not be passed in.
func Validate(entries []MaskEntry, canonical []int) Validation {
	observed := make(map[int][]CellPos, len(entries))
	for _, e := range entries {
		observed[e.Mask] = append(observed[e.Mask], CellPos{Col: e.Col, Row: e.Row})
	}
	expected := make(map[int]bool, len(canonical))
	for _, m := range canonical {
		expected[m] = true
	}

	v := Validation{
		Unique:     len(observed),
		Duplicated: make(map[int][]CellPos),
	}
	for _, m := range canonical {
		if len(observed[m]) == 0 {
			v.Missing = append(v.Missing, m)
		}
	}
	for m, cells := range observed {
		if !expected[m] {
			v.Extra = append(v.Extra, m)
		}
		if len(cells) > 1 {
			v.Duplicated[m] = cells
		}
	}
	sort.Ints(v.Missing)
	sort.Ints(v.Extra)

	v.OK = len(v.Missing) == 0 && len(v.Extra) == 0 && len(v.Duplicated) == 0
	if v.OK {
		v.Table = append([]MaskEntry(nil), entries...)
		sort.Slice(v.Table, func(i, j int) bool { return v.Table[i].Mask < v.Table[j].Mask })
	}
	return v
}
