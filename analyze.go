package tilemask

import (
	"image"

	"github.com/cenkalti/dominantcolor"
)

// Options tunes one analysis run.
type Options struct {
	// Grammar selects the autotile scheme to reconstruct against.
	Grammar Grammar
	// CrossCheck additionally reports a 2-means split of each diff pool
	// next to the gap threshold. Advisory only, and randomized, so it is
	// off by default to keep runs byte-identical.
	CrossCheck bool
}

// DefaultOptions returns options for the standard 47-mask blob grammar.
func DefaultOptions() Options {
	return Options{Grammar: Blob47()}
}

// CellResult is the per-cell outcome: the recovered mask, or -1 for an
// unused slot, plus the region scores that produced it. Scores is nil for
// unused cells, which never contribute to any pool.
type CellResult struct {
	Col    int
	Row    int
	Mask   int
	Scores []float64
}

// Analysis is the full immutable result of one sheet reconstruction.
type Analysis struct {
	Grammar Grammar
	// Transparent lists every fully-transparent cell in scan order; Unused
	// is the last of them, the canonical spare slot. More than one entry
	// in Transparent is suspicious and reported as a warning.
	Transparent []CellPos
	Unused      *CellPos
	// ReferenceFill is the dominant color of the reference cell as a hex
	// string, a quick human check that the right cell was sampled.
	ReferenceFill string
	Edge          Split
	Corner        Split
	// EdgeKMeans and CornerKMeans hold the advisory 2-means splits when
	// Options.CrossCheck was set.
	EdgeKMeans   float64
	CornerKMeans float64
	CrossChecked bool
	Cells        []CellResult
	Validation   Validation
}

// Analyze runs the full reconstruction pipeline over a decoded sheet image.
// The pipeline has a hard ordering barrier: every per-cell region score is
// computed first (phase A), the two thresholds are reduced from the pooled
// scores second (phase B), and only then is any cell classified (phase C).
// Each phase only reads the previous phase's output.
func Analyze(src PixelSource, opts Options) (*Analysis, error) {
	g := opts.Grammar
	if err := g.Validate(); err != nil {
		return nil, err
	}
	sheet, err := NewSheet(src, g.Geometry)
	if err != nil {
		return nil, err
	}
	ref, err := sheet.Reference(g.Reference)
	if err != nil {
		return nil, err
	}

	a := &Analysis{
		Grammar:       g,
		Transparent:   sheet.TransparentCells(),
		ReferenceFill: dominantcolor.Hex(dominantcolor.Find(cellImage(sheet.Cell(g.Reference.Col, g.Reference.Row), g.Geometry.Tile))),
	}
	if n := len(a.Transparent); n > 0 {
		last := a.Transparent[n-1]
		a.Unused = &last
	}

	// Phase A: region scores for every non-empty cell, pooled by kind.
	var edgePool, cornerPool []float64
	scores := make([][]float64, len(sheet.Cells))
	for i := range sheet.Cells {
		cell := &sheet.Cells[i]
		if cell.Transparent {
			continue
		}
		scores[i] = scoreCell(cell, ref, g)
		for r, reg := range g.Regions {
			switch reg.Kind {
			case RegionEdge:
				edgePool = append(edgePool, scores[i][r])
			case RegionCorner:
				cornerPool = append(cornerPool, scores[i][r])
			}
		}
	}

	// Phase B: one global reduction per pool.
	a.Edge = SplitByLargestGap(edgePool)
	a.Corner = SplitByLargestGap(cornerPool)
	if opts.CrossCheck {
		ev, eerr := CrossCheckSplit(edgePool)
		cv, cerr := CrossCheckSplit(cornerPool)
		if eerr == nil && cerr == nil {
			a.EdgeKMeans, a.CornerKMeans = ev, cv
			a.CrossChecked = true
		}
	}

	// Phase C: classification, reading only scores and thresholds.
	a.Cells = make([]CellResult, len(sheet.Cells))
	var entries []MaskEntry
	for i := range sheet.Cells {
		cell := &sheet.Cells[i]
		res := CellResult{Col: cell.Col, Row: cell.Row, Mask: -1}
		if !cell.Transparent {
			res.Scores = scores[i]
			res.Mask = classifyCell(scores[i], g, a.Edge.Value, a.Corner.Value)
			entries = append(entries, MaskEntry{Mask: res.Mask, Col: res.Col, Row: res.Row})
		}
		a.Cells[i] = res
	}

	a.Validation = Validate(entries, g.Canonical)
	return a, nil
}

// cellImage copies a cell into a standalone image for color summarization.
func cellImage(cell *Cell, tile int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, tile, tile))
	for dy := 0; dy < tile; dy++ {
		for dx := 0; dx < tile; dx++ {
			img.SetNRGBA(dx, dy, cell.Pix[dy*tile+dx])
		}
	}
	return img
}
