package tilemask

import (
	"fmt"
	"image/color"
)

// AlphaVisible is the alpha cutoff below which a pixel counts as
// transparent. A cell whose pixels all fall below it is an unused slot.
const AlphaVisible = 128

// PixelSource provides read-only random-access pixel data for a decoded
// sheet image. imageutil.Image is the implementation shipped with this
// module; anything that can hand out straight-alpha pixels satisfies it.
type PixelSource interface {
	Width() int
	Height() int
	NRGBAAt(x, y int) color.NRGBA
}

// Cell holds the pixels of one grid cell. Pix is row-major Tile*Tile.
type Cell struct {
	Col         int
	Row         int
	Pix         []color.NRGBA
	Transparent bool
}

// Sheet is the immutable cell grid extracted from a decoded image. It is
// built once per image and only read afterwards.
type Sheet struct {
	Geometry Geometry
	Cells    []Cell
}

// NewSheet copies the grid cells out of src. The image must be at least
// Cols*Tile by Rows*Tile pixels; anything beyond that extent is ignored.
func NewSheet(src PixelSource, geom Geometry) (*Sheet, error) {
	tile := geom.Tile
	if src.Width() < geom.Cols*tile || src.Height() < geom.Rows*tile {
		return nil, fmt.Errorf("%w: got %dx%d, need %dx%d",
			ErrSheetTooSmall, src.Width(), src.Height(), geom.Cols*tile, geom.Rows*tile)
	}

	sheet := &Sheet{
		Geometry: geom,
		Cells:    make([]Cell, 0, geom.CellCount()),
	}
	for row := 0; row < geom.Rows; row++ {
		for col := 0; col < geom.Cols; col++ {
			cell := Cell{
				Col:         col,
				Row:         row,
				Pix:         make([]color.NRGBA, tile*tile),
				Transparent: true,
			}
			x0, y0 := col*tile, row*tile
			for dy := 0; dy < tile; dy++ {
				for dx := 0; dx < tile; dx++ {
					p := src.NRGBAAt(x0+dx, y0+dy)
					cell.Pix[dy*tile+dx] = p
					if p.A >= AlphaVisible {
						cell.Transparent = false
					}
				}
			}
			sheet.Cells = append(sheet.Cells, cell)
		}
	}
	return sheet, nil
}

// Cell returns the cell at (col, row).
func (s *Sheet) Cell(col, row int) *Cell {
	return &s.Cells[row*s.Geometry.Cols+col]
}

// TransparentCells lists every fully-transparent cell in scan order. More
// than one entry usually indicates an authoring defect in the sheet; the
// last entry is treated as the canonical spare slot.
func (s *Sheet) TransparentCells() []CellPos {
	var out []CellPos
	for i := range s.Cells {
		if s.Cells[i].Transparent {
			out = append(out, CellPos{Col: s.Cells[i].Col, Row: s.Cells[i].Row})
		}
	}
	return out
}

// Reference extracts the baseline pixels from the full-neighbor cell at
// pos. It fails with ErrTransparentReference if that cell is itself
// transparent, since then no baseline exists and reconstruction is
// meaningless.
func (s *Sheet) Reference(pos CellPos) ([]color.NRGBA, error) {
	cell := s.Cell(pos.Col, pos.Row)
	if cell.Transparent {
		return nil, fmt.Errorf("%w: cell (%d,%d)", ErrTransparentReference, pos.Col, pos.Row)
	}
	return cell.Pix, nil
}
