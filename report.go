package tilemask

import (
	"fmt"
	"io"
	"sort"
)

// WriteReport renders the human-readable diagnostic report for one analyzed
// sheet: the spare slot, the discovered thresholds with the gap that
// produced them, the reconstructed grid, the validation verdict, and, on a
// perfect match, the [mask, col, row] table ready for reuse as a rendering
// lookup table.
func WriteReport(w io.Writer, a *Analysis) {
	if a.Unused != nil {
		fmt.Fprintf(w, "Unused cell: (%d, %d)\n", a.Unused.Col, a.Unused.Row)
	} else {
		fmt.Fprintf(w, "Unused cell: none\n")
	}
	if len(a.Transparent) > 1 {
		fmt.Fprintf(w, "Warning: %d fully transparent cells found, keeping the last; "+
			"the sheet may have an authoring defect:", len(a.Transparent))
		for _, p := range a.Transparent {
			fmt.Fprintf(w, " (%d,%d)", p.Col, p.Row)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Reference fill: %s\n", a.ReferenceFill)

	writeSplit(w, "Edge", a.Edge)
	writeSplit(w, "Corner", a.Corner)
	if a.CrossChecked {
		fmt.Fprintf(w, "2-means cross-check: edge=%.1f, corner=%.1f\n",
			a.EdgeKMeans, a.CornerKMeans)
	}

	fmt.Fprintf(w, "\nReconstructed bitmask grid:\n")
	fmt.Fprintf(w, "%7s", "")
	for c := 0; c < a.Grammar.Geometry.Cols; c++ {
		fmt.Fprintf(w, " col%2d", c)
	}
	fmt.Fprintln(w)
	for r := 0; r < a.Grammar.Geometry.Rows; r++ {
		fmt.Fprintf(w, "row %d: ", r)
		for c := 0; c < a.Grammar.Geometry.Cols; c++ {
			mask := a.Cells[r*a.Grammar.Geometry.Cols+c].Mask
			if mask < 0 {
				fmt.Fprintf(w, "   -- ")
			} else {
				fmt.Fprintf(w, "  %3d ", mask)
			}
		}
		fmt.Fprintln(w)
	}

	v := a.Validation
	fmt.Fprintf(w, "\nValidation:\n")
	fmt.Fprintf(w, "  Unique masks: %d (expected %d)\n", v.Unique, len(a.Grammar.Canonical))
	if len(v.Missing) > 0 {
		fmt.Fprintf(w, "  Missing: %v\n", v.Missing)
	}
	if len(v.Extra) > 0 {
		fmt.Fprintf(w, "  Unexpected: %v\n", v.Extra)
	}
	if len(v.Duplicated) > 0 {
		masks := make([]int, 0, len(v.Duplicated))
		for m := range v.Duplicated {
			masks = append(masks, m)
		}
		sort.Ints(masks)
		for _, m := range masks {
			fmt.Fprintf(w, "  Duplicated: %d at", m)
			for _, p := range v.Duplicated[m] {
				fmt.Fprintf(w, " (%d,%d)", p.Col, p.Row)
			}
			fmt.Fprintln(w)
		}
	}
	if !v.OK {
		return
	}
	fmt.Fprintf(w, "  PERFECT: all %d canonical masks!\n", len(a.Grammar.Canonical))

	fmt.Fprintf(w, "\nCorrect mapping [mask, col, row]:\n")
	for _, e := range v.Table {
		fmt.Fprintf(w, "  [%3d, %2d, %d],\n", e.Mask, e.Col, e.Row)
	}
}

func writeSplit(w io.Writer, label string, sp Split) {
	if sp.Fallback {
		fmt.Fprintf(w, "%s threshold: %.1f (degenerate pool, fallback)\n", label, sp.Value)
		return
	}
	fmt.Fprintf(w, "%s threshold: %.1f (gap: %.1f | %.1f)\n", label, sp.Value, sp.Low, sp.High)
	fmt.Fprintf(w, "  %s diffs range: %.1f to %.1f\n", label, sp.Min, sp.Max)
}
