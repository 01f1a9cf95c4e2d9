package tilemask

import (
	"image/color"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/wbrown/tilemask/imageutil"
)

// SyntheticSheet pairs a generated ground-truth sheet with the
// (mask, col, row) layout planted in it, sorted by ascending mask.
type SyntheticSheet struct {
	Image *imageutil.Image
	Truth []MaskEntry
}

// BuildSyntheticSheet renders every canonical mask of the grammar into a
// sheet image: the full mask at the reference position, a fully transparent
// spare cell in the last grid slot, and the remaining masks in ascending
// order across the remaining cells. Each cell starts as the reference fill
// color; every region whose bit is absent from the cell's mask is painted
// with a clearly distinct color. The result round-trips through Analyze and
// doubles as a calibration fixture for foreign sheets.
func BuildSyntheticSheet(g Grammar) *SyntheticSheet {
	geom := g.Geometry
	img := imageutil.New(geom.Cols*geom.Tile, geom.Rows*geom.Tile)

	fr, fg, fb := colorful.Hsv(145, 0.55, 0.72).RGB255()
	ar, ag, ab := colorful.Hsv(285, 0.80, 0.85).RGB255()
	fill := color.NRGBA{R: fr, G: fg, B: fb, A: 255}
	absent := color.NRGBA{R: ar, G: ag, B: ab, A: 255}

	full := g.FullMask()
	spare := CellPos{Col: geom.Cols - 1, Row: geom.Rows - 1}
	masks := append([]int(nil), g.Canonical...)
	sort.Ints(masks)

	s := &SyntheticSheet{Image: img}
	next := 0
	for row := 0; row < geom.Rows; row++ {
		for col := 0; col < geom.Cols; col++ {
			pos := CellPos{Col: col, Row: row}
			if pos == spare {
				continue
			}
			mask := full
			if pos != g.Reference {
				for next < len(masks) && masks[next] == full {
					next++
				}
				if next >= len(masks) {
					continue
				}
				mask = masks[next]
				next++
			}
			paintCell(img, geom, g.Regions, pos, mask, fill, absent)
			s.Truth = append(s.Truth, MaskEntry{Mask: mask, Col: col, Row: row})
		}
	}
	sort.Slice(s.Truth, func(i, j int) bool { return s.Truth[i].Mask < s.Truth[j].Mask })
	return s
}

func paintCell(img *imageutil.Image, geom Geometry, regions []Region, pos CellPos, mask int, fill, absent color.NRGBA) {
	x0, y0 := pos.Col*geom.Tile, pos.Row*geom.Tile
	for dy := 0; dy < geom.Tile; dy++ {
		for dx := 0; dx < geom.Tile; dx++ {
			img.SetNRGBA(x0+dx, y0+dy, fill)
		}
	}
	for _, reg := range regions {
		if mask&int(reg.Bit) != 0 {
			continue
		}
		for dy := 0; dy < reg.H; dy++ {
			for dx := 0; dx < reg.W; dx++ {
				img.SetNRGBA(x0+reg.X+dx, y0+reg.Y+dy, absent)
			}
		}
	}
}
