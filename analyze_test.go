package tilemask

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wbrown/tilemask/imageutil"
)

// The generated ground-truth sheet must reconstruct perfectly: no missing,
// extra, or duplicated masks, and the emitted table must equal the planted
// layout exactly.
func TestAnalyzeSyntheticRoundTrip(t *testing.T) {
	synth := BuildSyntheticSheet(Blob47())

	a, err := Analyze(synth.Image, DefaultOptions())
	require.NoError(t, err)

	require.True(t, a.Validation.OK)
	require.Empty(t, a.Validation.Missing)
	require.Empty(t, a.Validation.Extra)
	require.Empty(t, a.Validation.Duplicated)
	require.Equal(t, 47, a.Validation.Unique)
	require.Equal(t, synth.Truth, a.Validation.Table)

	require.NotNil(t, a.Unused)
	require.Equal(t, CellPos{Col: 11, Row: 3}, *a.Unused)
	require.False(t, a.Edge.Fallback)
	require.False(t, a.Corner.Fallback)
	require.Greater(t, a.Edge.Value, 0.0)
	require.Greater(t, a.Corner.Value, 0.0)
}

func TestAnalyzeDeterministic(t *testing.T) {
	synth := BuildSyntheticSheet(Blob47())

	first, err := Analyze(synth.Image, DefaultOptions())
	require.NoError(t, err)
	second, err := Analyze(synth.Image, DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestAnalyzeStructuralInvariant(t *testing.T) {
	g := Blob47()
	synth := BuildSyntheticSheet(g)

	a, err := Analyze(synth.Image, DefaultOptions())
	require.NoError(t, err)
	for _, cell := range a.Cells {
		if cell.Mask < 0 {
			continue
		}
		requireDiagonalInvariant(t, g, cell.Mask)
	}
}

// The unused slot carries mask -1, no scores, and never reaches the
// validation multiset.
func TestAnalyzeUnusedCellExcluded(t *testing.T) {
	g := Blob47()
	synth := BuildSyntheticSheet(g)

	a, err := Analyze(synth.Image, DefaultOptions())
	require.NoError(t, err)

	spare := a.Cells[3*g.Geometry.Cols+11]
	require.Equal(t, -1, spare.Mask)
	require.Nil(t, spare.Scores)
	for _, e := range a.Validation.Table {
		require.False(t, e.Col == 11 && e.Row == 3)
	}
}

// A cell identical to the reference except for a large deviation on its
// north edge loses N and, through the dependency rule, NW and NE as well.
func TestAnalyzeNorthEdgeDeviation(t *testing.T) {
	g := Blob47()
	synth := BuildSyntheticSheet(g)
	tile := g.Geometry.Tile

	var pos CellPos
	for _, e := range synth.Truth {
		if e.Mask == 0 {
			pos = CellPos{Col: e.Col, Row: e.Row}
			break
		}
	}

	// Sample the two palette colors straight off the sheet: the reference
	// cell is solid fill, and the mask-0 cell's north strip is painted with
	// the absent color.
	fill := synth.Image.NRGBAAt(g.Reference.Col*tile+tile/2, g.Reference.Row*tile+tile/2)
	absent := synth.Image.NRGBAAt(pos.Col*tile+tile/2, pos.Row*tile)

	// Rebuild that cell as a reference copy with only the north strip off.
	x0, y0 := pos.Col*tile, pos.Row*tile
	for dy := 0; dy < tile; dy++ {
		for dx := 0; dx < tile; dx++ {
			synth.Image.SetNRGBA(x0+dx, y0+dy, fill)
		}
	}
	north := g.Regions[0]
	for dy := 0; dy < north.H; dy++ {
		for dx := 0; dx < north.W; dx++ {
			synth.Image.SetNRGBA(x0+north.X+dx, y0+north.Y+dy, absent)
		}
	}

	a, err := Analyze(synth.Image, DefaultOptions())
	require.NoError(t, err)

	got := a.Cells[pos.Row*g.Geometry.Cols+pos.Col]
	require.Equal(t, int(BitW|BitE|BitS|BitSW|BitSE), got.Mask)
	// Mask 0 is gone and 206 now appears twice, so validation must flag it.
	require.False(t, a.Validation.OK)
	require.Contains(t, a.Validation.Missing, 0)
	require.Contains(t, a.Validation.Duplicated, 206)
}

// A sheet holding only the reference and empty cells still runs to the
// validation stage and reports the gap there instead of failing.
func TestAnalyzeReferenceOnlySheet(t *testing.T) {
	g := Blob47()
	img := imageutil.New(g.Geometry.Cols*g.Geometry.Tile, g.Geometry.Rows*g.Geometry.Tile)
	fill := color.NRGBA{R: 60, G: 160, B: 90, A: 255}
	absent := color.NRGBA{R: 210, G: 40, B: 190, A: 255}
	paintCell(img, g.Geometry, g.Regions, g.Reference, g.FullMask(), fill, absent)

	a, err := Analyze(img, DefaultOptions())
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(a.Validation.Missing), 45)
	require.Empty(t, a.Validation.Extra)
	require.Empty(t, a.Validation.Duplicated)
	require.True(t, a.Edge.Fallback)
	require.True(t, a.Corner.Fallback)
	require.NotNil(t, a.Unused)
	require.Equal(t, CellPos{Col: 11, Row: 3}, *a.Unused)
}

func TestAnalyzeTransparentReferenceFatal(t *testing.T) {
	g := Blob47()
	img := imageutil.New(g.Geometry.Cols*g.Geometry.Tile, g.Geometry.Rows*g.Geometry.Tile)

	_, err := Analyze(img, DefaultOptions())
	require.ErrorIs(t, err, ErrTransparentReference)
}

func TestAnalyzeReferenceFillHex(t *testing.T) {
	synth := BuildSyntheticSheet(Blob47())

	a, err := Analyze(synth.Image, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, a.ReferenceFill, 7)
	require.Equal(t, byte('#'), a.ReferenceFill[0])
}

func TestAnalyzeCrossCheck(t *testing.T) {
	synth := BuildSyntheticSheet(Blob47())
	opts := DefaultOptions()
	opts.CrossCheck = true

	a, err := Analyze(synth.Image, opts)
	require.NoError(t, err)
	require.True(t, a.CrossChecked)
	// The advisory split must at least land between the two clusters the
	// gap split found.
	require.Greater(t, a.EdgeKMeans, a.Edge.Low)
	require.Less(t, a.EdgeKMeans, a.Edge.High)
}
