package tilemask

// classifyCell converts one cell's region scores plus the two discovered
// thresholds into a neighbor mask. An edge region's bit is set iff its
// score falls below the edge threshold. A corner region's bit is set iff
// both of its required cardinal bits are already set and its score falls
// below the corner threshold, so a diagonal can never be asserted in
// isolation; the invariant that a diagonal implies both flanking cardinals
// holds by construction.
func classifyCell(scores []float64, g Grammar, edgeThreshold, cornerThreshold float64) int {
	mask := 0
	for i, reg := range g.Regions {
		if reg.Kind == RegionEdge && scores[i] < edgeThreshold {
			mask |= int(reg.Bit)
		}
	}
	for i, reg := range g.Regions {
		if reg.Kind != RegionCorner {
			continue
		}
		need := int(reg.Requires[0]) | int(reg.Requires[1])
		if mask&need == need && scores[i] < cornerThreshold {
			mask |= int(reg.Bit)
		}
	}
	return mask
}
