package inference

import (
	"math"
	"sort"

	"github.com/ternarybob/brandex/internal/models"
)

const (
	// defaultBaseUnit applies when no spacing data was observed.
	defaultBaseUnit = 8
	// defaultBorderRadius applies when no radius data was observed.
	defaultBorderRadius = 8.0
	// maxSpacingSample filters out layout-level offsets that would drown
	// the rhythm signal.
	maxSpacingSample = 128.0
	// baseUnitAgreement is the fraction of samples that must land on (or
	// within 1px of) a multiple of a candidate unit.
	baseUnitAgreement = 0.6
)

// baseUnitCandidates are tried largest first: a page on an 8px grid also
// agrees with 4, and the coarser unit is the one designers actually chose.
var baseUnitCandidates = []int{12, 10, 8, 6, 4}

// InferBaseUnit derives the spacing grid unit from observed margin, padding
// and gap values. The result is always one of 2,4,6,8,10,12.
func InferBaseUnit(values []float64) int {
	var sample []float64
	for _, v := range values {
		if v > 0 && v <= maxSpacingSample {
			sample = append(sample, v)
		}
	}
	if len(sample) == 0 {
		return defaultBaseUnit
	}

	for _, unit := range baseUnitCandidates {
		agree := 0
		for _, v := range sample {
			remainder := math.Mod(v, float64(unit))
			if remainder <= 1 || remainder >= float64(unit)-1 {
				agree++
			}
		}
		if float64(agree)/float64(len(sample)) >= baseUnitAgreement {
			return unit
		}
	}

	return clampEven(median(sample))
}

// inferBorderRadius is the rounded median of all observed radii; stylesheet
// and snapshot values count equally.
func inferBorderRadius(record *models.RawBrandingRecord) float64 {
	var radii []float64
	radii = append(radii, record.CSSData.BorderRadii...)
	for _, snap := range record.Snapshots {
		if snap.HasBorderRadius {
			radii = append(radii, snap.BorderRadius)
		}
	}
	if len(radii) == 0 {
		return defaultBorderRadius
	}
	return math.Round(median(radii))
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// clampEven rounds to the nearest even integer and clamps into the valid
// base-unit domain [2,12].
func clampEven(v float64) int {
	n := int(math.Round(v/2)) * 2
	if n < 2 {
		n = 2
	}
	if n > 12 {
		n = 12
	}
	return n
}
