// Package tilemask reconstructs the neighbor-presence bitmask layout of a
// blob-style autotile sheet from its rendered pixels alone. Each 16x16 cell
// is compared against the known full-neighbor reference cell, per-region
// dissimilarity scores are pooled sheet-wide to discover adaptive thresholds,
// and the scores plus thresholds are classified into 8-bit neighbor masks
// that are validated against the canonical mask set of the grammar.
package tilemask

// Bit identifies one neighbor flag in the 8-bit presence mask. The four
// cardinal bits occupy the low nibble and the four diagonal bits the high
// nibble.
type Bit int

const (
	BitN Bit = 1 << iota
	BitW
	BitE
	BitS
	BitNW
	BitNE
	BitSW
	BitSE
)

// RegionKind separates the two score pools. Edge regions are thresholded
// independently from corner regions because the inner 4x4 corner blocks
// produce systematically smaller magnitudes than the edge strips.
type RegionKind int

const (
	RegionEdge RegionKind = iota
	RegionCorner
)

// Region is a named fixed-offset sub-block of a cell. Corner regions carry
// the two cardinal bits that must both be present before the corner's own
// bit may be asserted.
type Region struct {
	Name       string
	Kind       RegionKind
	Bit        Bit
	X, Y, W, H int
	Requires   [2]Bit
}

// Geometry describes the fixed cell grid of a sheet.
type Geometry struct {
	Tile int
	Cols int
	Rows int
}

// CellCount returns the total number of cells in the grid.
func (g Geometry) CellCount() int {
	return g.Cols * g.Rows
}

// CellPos identifies a cell by its grid coordinates.
type CellPos struct {
	Col int
	Row int
}

// Grammar bundles everything that is specific to one autotile scheme: the
// grid geometry, the position of the full-neighbor reference cell, the
// region topology, and the canonical mask set. The reconstruction algorithm
// itself is grammar-agnostic, so 15-mask or 255-mask schemes plug in here
// without touching any other code.
type Grammar struct {
	Geometry  Geometry
	Reference CellPos
	Regions   []Region
	Canonical []int
}

// FullMask returns the mask with every region bit set, the value the
// reference cell is expected to carry.
func (g Grammar) FullMask() int {
	mask := 0
	for _, reg := range g.Regions {
		mask |= int(reg.Bit)
	}
	return mask
}

// Validate reports whether the grammar is internally consistent: a positive
// grid, a reference inside it, and every region rect inside the tile.
func (g Grammar) Validate() error {
	if g.Geometry.Tile <= 0 || g.Geometry.Cols <= 0 || g.Geometry.Rows <= 0 {
		return ErrBadGrammar
	}
	ref := g.Reference
	if ref.Col < 0 || ref.Col >= g.Geometry.Cols || ref.Row < 0 || ref.Row >= g.Geometry.Rows {
		return ErrBadGrammar
	}
	for _, reg := range g.Regions {
		if reg.X < 0 || reg.Y < 0 || reg.W <= 0 || reg.H <= 0 {
			return ErrBadGrammar
		}
		if reg.X+reg.W > g.Geometry.Tile || reg.Y+reg.H > g.Geometry.Tile {
			return ErrBadGrammar
		}
	}
	return nil
}

// Blob47 returns the standard 47-variant blob autotile grammar: a 12x4 grid
// of 16x16 cells with the mask-255 reference at (1,0). Edge regions are the
// centered 3px strips on each side, corners the 4x4 blocks; every corner
// requires both of its flanking cardinals.
func Blob47() Grammar {
	return Grammar{
		Geometry:  Geometry{Tile: 16, Cols: 12, Rows: 4},
		Reference: CellPos{Col: 1, Row: 0},
		Regions: []Region{
			{Name: "N", Kind: RegionEdge, Bit: BitN, X: 3, Y: 0, W: 10, H: 3},
			{Name: "W", Kind: RegionEdge, Bit: BitW, X: 0, Y: 3, W: 3, H: 10},
			{Name: "E", Kind: RegionEdge, Bit: BitE, X: 13, Y: 3, W: 3, H: 10},
			{Name: "S", Kind: RegionEdge, Bit: BitS, X: 3, Y: 13, W: 10, H: 3},
			{Name: "NW", Kind: RegionCorner, Bit: BitNW, X: 0, Y: 0, W: 4, H: 4, Requires: [2]Bit{BitN, BitW}},
			{Name: "NE", Kind: RegionCorner, Bit: BitNE, X: 12, Y: 0, W: 4, H: 4, Requires: [2]Bit{BitN, BitE}},
			{Name: "SW", Kind: RegionCorner, Bit: BitSW, X: 0, Y: 12, W: 4, H: 4, Requires: [2]Bit{BitS, BitW}},
			{Name: "SE", Kind: RegionCorner, Bit: BitSE, X: 12, Y: 12, W: 4, H: 4, Requires: [2]Bit{BitS, BitE}},
		},
		Canonical: []int{
			0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
			19, 23, 27, 31, 37, 39, 45, 47, 55, 63, 74, 75, 78, 79, 91,
			95, 111, 127, 140, 141, 142, 143, 159, 173, 175, 191, 206,
			207, 223, 239, 255,
		},
	}
}
