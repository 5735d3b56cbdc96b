package inference

import (
	"math"
	"sort"

	"github.com/ternarybob/brandex/internal/colorx"
	"github.com/ternarybob/brandex/internal/models"
)

// Source weights for the color frequency table. An explicit page background
// hint dominates everything else; element backgrounds grow sub-linearly with
// rendered area.
const (
	weightBackgroundHint = 1000.0
	weightText           = 1.0
	weightBorder         = 0.3
	weightStylesheet     = 0.5
)

// Luminance bands for scheme-matched background selection.
const (
	lightBackgroundYIQ   = 200.0
	darkBackgroundMinYIQ = 10.0
	darkBackgroundMaxYIQ = 100.0
	textPrimaryMaxYIQ    = 160.0
)

// Scheme-appropriate hard defaults applied when no ranked color qualifies.
const (
	defaultLightBackground = "#FFFFFF"
	defaultDarkBackground  = "#1A1A1A"
	defaultLightText       = "#1A1A1A"
	defaultDarkText        = "#F5F5F5"
)

// colorAccumulator is a local frequency table over normalized hex colors.
// It is never shared; every inference run builds its own.
type colorAccumulator struct {
	weights map[string]float64
	sources map[string][]string
}

func newColorAccumulator() *colorAccumulator {
	return &colorAccumulator{
		weights: make(map[string]float64),
		sources: make(map[string][]string),
	}
}

// add normalizes raw, applies the validity filter and accumulates weight.
// Invalid or unparseable values are dropped silently.
func (a *colorAccumulator) add(raw string, weight float64, source string) {
	if raw == "" || !colorx.IsValid(raw) {
		return
	}
	hex := colorx.Hexify(raw)
	if hex == "" || hex == "#000000" || hex == "#FFFFFF" {
		return
	}
	a.weights[hex] += weight
	if len(a.sources[source]) < 50 {
		a.sources[source] = append(a.sources[source], hex)
	}
}

// ranked returns hex colors ordered by accumulated weight descending, with
// the hex string as a deterministic tiebreaker.
func (a *colorAccumulator) ranked() []models.ColorWeight {
	out := make([]models.ColorWeight, 0, len(a.weights))
	for hex, w := range a.weights {
		out = append(out, models.ColorWeight{Hex: hex, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].Hex < out[j].Hex
	})
	return out
}

// accumulateColors builds the frequency table from every color-bearing
// signal in the record.
func accumulateColors(record *models.RawBrandingRecord) *colorAccumulator {
	acc := newColorAccumulator()

	// First usable background wins the hint weight; transparent fills
	// reported by body/html fall through to the next candidate.
	for _, bg := range record.BackgroundCandidates {
		if !colorx.IsValid(bg) {
			continue
		}
		acc.add(bg, weightBackgroundHint, "backgroundHint")
		break
	}

	for _, snap := range record.Snapshots {
		if snap.Colors.Background != "" {
			area := snap.Box.W * snap.Box.H
			acc.add(snap.Colors.Background, 0.5+math.Log10(area+10), "snapshotBackground")
		}
		acc.add(snap.Colors.Text, weightText, "snapshotText")
		acc.add(snap.Colors.Border, weightBorder, "snapshotBorder")
	}

	for _, raw := range record.CSSData.Colors {
		acc.add(raw, weightStylesheet, "stylesheet")
	}

	return acc
}

// inferPalette assigns ranked colors to brand roles. Every role degrades to
// a scheme default or empty rather than failing.
func inferPalette(record *models.RawBrandingRecord, ranked []models.ColorWeight) models.Palette {
	dark := record.ColorScheme == models.ColorSchemeDark

	palette := models.Palette{
		Background:  pickBackground(ranked, dark),
		TextPrimary: pickTextPrimary(ranked, dark),
	}
	palette.Primary = pickPrimary(ranked, palette)
	palette.Accent = pickDistinctNonGrayish(ranked, palette.Primary)
	palette.Link = pickLink(record, ranked, palette.Primary)
	return palette
}

// pickBackground prefers a grayish ranked color inside the scheme's expected
// luminance band, then falls back to the scheme default.
func pickBackground(ranked []models.ColorWeight, dark bool) string {
	for _, c := range ranked {
		if !colorx.IsGrayish(c.Hex) {
			continue
		}
		yiq := colorx.YIQ(c.Hex)
		if dark {
			if yiq >= darkBackgroundMinYIQ && yiq < darkBackgroundMaxYIQ {
				return c.Hex
			}
		} else if yiq >= lightBackgroundYIQ {
			return c.Hex
		}
	}
	if dark {
		return defaultDarkBackground
	}
	return defaultLightBackground
}

// pickTextPrimary takes the first ranked color dark enough to read as body
// text, then falls back to the scheme default.
func pickTextPrimary(ranked []models.ColorWeight, dark bool) string {
	for _, c := range ranked {
		if colorx.YIQ(c.Hex) < textPrimaryMaxYIQ {
			return c.Hex
		}
	}
	if dark {
		return defaultDarkText
	}
	return defaultLightText
}

// pickPrimary takes the first ranked non-grayish color distinct from the
// text and background roles.
func pickPrimary(ranked []models.ColorWeight, palette models.Palette) string {
	for _, c := range ranked {
		if colorx.IsGrayish(c.Hex) {
			continue
		}
		if c.Hex == palette.TextPrimary || c.Hex == palette.Background {
			continue
		}
		return c.Hex
	}
	return ""
}

func pickDistinctNonGrayish(ranked []models.ColorWeight, exclude string) string {
	for _, c := range ranked {
		if colorx.IsGrayish(c.Hex) || c.Hex == exclude {
			continue
		}
		return c.Hex
	}
	return ""
}

// pickLink prefers the computed color of the first sampled anchor, then the
// first ranked non-grayish color distinct from primary.
func pickLink(record *models.RawBrandingRecord, ranked []models.ColorWeight, primary string) string {
	for _, snap := range record.Snapshots {
		if !snap.IsLink {
			continue
		}
		if colorx.IsValid(snap.Colors.Text) {
			if hex := colorx.Hexify(snap.Colors.Text); hex != "" {
				return hex
			}
		}
		break
	}
	return pickDistinctNonGrayish(ranked, primary)
}
