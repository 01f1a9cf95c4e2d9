package tilemask

import (
	"fmt"
	"sort"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"gonum.org/v1/gonum/floats"
)

// DefaultThreshold is the conservative stand-in used when a diff pool is
// empty. Downstream validation surfaces the consequences; an empty pool is
// never an error here.
const DefaultThreshold = 100

// Split is the result of the gap-based threshold discovery over one diff
// pool. Low and High are the adjacent samples bounding the largest gap, Min
// and Max the pool range. Fallback marks the degenerate cases where no gap
// existed to split.
type Split struct {
	Value    float64
	Low      float64
	High     float64
	Min      float64
	Max      float64
	Fallback bool
}

// SplitByLargestGap derives a threshold separating two presumed clusters in
// samples: sort ascending, find the pair of adjacent values with the
// largest gap, and take the midpoint of that pair. The true distribution is
// bimodal (near-zero when the neighbor matches the reference, large when it
// does not), so the maximum-gap split separates the clusters without any
// art-style-specific tuning constant.
//
// Degenerate pools never raise: with no samples the fixed DefaultThreshold
// is returned, and with a single distinct value half of that value.
func SplitByLargestGap(samples []float64) Split {
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)
	n := len(sorted)

	if n == 0 {
		return Split{Value: DefaultThreshold, Fallback: true}
	}
	sp := Split{Min: floats.Min(sorted), Max: floats.Max(sorted)}
	if n == 1 {
		sp.Value = sorted[0] / 2
		sp.Low, sp.High = sorted[0], sorted[0]
		sp.Fallback = true
		return sp
	}

	gaps := make([]float64, n-1)
	floats.SubTo(gaps, sorted[1:], sorted[:n-1])
	i := floats.MaxIdx(gaps)
	if gaps[i] == 0 {
		// Every sample identical: half the single distinct value.
		sp.Value = sorted[n-1] / 2
		sp.Low, sp.High = sorted[n-1], sorted[n-1]
		sp.Fallback = true
		return sp
	}

	sp.Low, sp.High = sorted[i], sorted[i+1]
	sp.Value = (sp.Low + sp.High) / 2
	return sp
}

// CrossCheckSplit estimates a split point for the same pool with 2-means
// clustering, as an advisory comparison against the gap split. The k-means
// initialization is randomized, so the result is not deterministic; callers
// wanting reproducible output should leave it disabled.
func CrossCheckSplit(samples []float64) (float64, error) {
	if len(samples) < 2 {
		return 0, fmt.Errorf("cross-check needs at least 2 samples, got %d", len(samples))
	}
	obs := make(clusters.Observations, 0, len(samples))
	for _, v := range samples {
		obs = append(obs, clusters.Coordinates{v})
	}
	km := kmeans.New()
	cs, err := km.Partition(obs, 2)
	if err != nil {
		return 0, fmt.Errorf("2-means partition failed: %w", err)
	}
	return (cs[0].Center[0] + cs[1].Center[0]) / 2, nil
}
