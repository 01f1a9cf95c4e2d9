package tilemask

import "image/color"

// transparencyPenalty is the per-pixel score charged when a cell pixel is
// not visible: the reference is opaque everywhere, so a transparent pixel
// can never match it.
const transparencyPenalty = 10000

// regionScore computes the dissimilarity of one region of a cell against
// the reference baseline: the mean over the region's pixels of the squared
// RGB Euclidean distance at the same local offset, with the fixed penalty
// substituted for transparent pixels. Squared distance keeps compression
// noise and antialiasing near zero while genuinely different art lands far
// from zero, which is what makes the pooled distribution separable.
func regionScore(cell *Cell, ref []color.NRGBA, reg Region, tile int) float64 {
	var total float64
	count := 0
	for dy := 0; dy < reg.H; dy++ {
		for dx := 0; dx < reg.W; dx++ {
			idx := (reg.Y+dy)*tile + (reg.X + dx)
			p := cell.Pix[idx]
			count++
			if p.A < AlphaVisible {
				total += transparencyPenalty
				continue
			}
			total += squaredColorDistance(p, ref[idx])
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// squaredColorDistance is the squared Euclidean distance between two colors
// in RGB space. Alpha is ignored; the caller has already handled
// visibility.
func squaredColorDistance(a, b color.NRGBA) float64 {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return float64(dr*dr + dg*dg + db*db)
}

// scoreCell computes one score per grammar region for a single cell, in
// region order.
func scoreCell(cell *Cell, ref []color.NRGBA, g Grammar) []float64 {
	scores := make([]float64, len(g.Regions))
	for i, reg := range g.Regions {
		scores[i] = regionScore(cell, ref, reg, g.Geometry.Tile)
	}
	return scores
}
