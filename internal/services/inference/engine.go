package inference

import (
	"github.com/ternarybob/brandex/internal/colorx"
	"github.com/ternarybob/brandex/internal/models"
)

// Infer is the deterministic transform from a Raw Branding Record to a
// Heuristic Branding Profile. It is pure: no I/O, no shared state, no
// failure mode — every lookup degrades to a documented default, so two
// calls over the same record produce identical profiles.
//
// The Debug payload is always populated here; the merger strips it unless
// debug visibility is enabled.
func Infer(record *models.RawBrandingRecord) *models.HeuristicProfile {
	if record == nil {
		record = &models.RawBrandingRecord{ColorScheme: models.ColorSchemeLight}
	}

	acc := accumulateColors(record)
	ranked := acc.ranked()
	candidates, rawCount := ScoreButtons(record.Snapshots)

	profile := &models.HeuristicProfile{
		ColorScheme: record.ColorScheme,
		Fonts:       consolidateFonts(record),
		Colors:      inferPalette(record, ranked),
		Typography:  record.Typography,
		Spacing: models.Spacing{
			BaseUnit:     InferBaseUnit(record.CSSData.Spacing),
			BorderRadius: inferBorderRadius(record),
		},
		Components:       models.Components{Input: inferInputStyle(record.Snapshots)},
		Images:           resolveImages(record),
		ButtonCandidates: candidates,
		LogoCandidates:   record.LogoCandidates,
		BrandName:        record.BrandName,
		FrameworkHints:   record.FrameworkHints,
		Debug: &models.ProfileDebug{
			ColorFrequency: ranked,
			SourceColors:   acc.sources,
			RawButtonCount: rawCount,
		},
	}
	return profile
}

// inferInputStyle summarizes form-control styling: the most frequent
// normalized border color and the median radius across input snapshots.
func inferInputStyle(snapshots []models.StyleSnapshot) models.InputStyle {
	borderCounts := make(map[string]int)
	var radii []float64
	for _, snap := range snapshots {
		if !snap.IsInput {
			continue
		}
		if hex := colorx.Hexify(snap.Colors.Border); hex != "" {
			borderCounts[hex]++
		}
		if snap.HasBorderRadius {
			radii = append(radii, snap.BorderRadius)
		}
	}

	var style models.InputStyle
	best := 0
	for hex, n := range borderCounts {
		if n > best || (n == best && hex < style.BorderColor) {
			best = n
			style.BorderColor = hex
		}
	}
	if len(radii) > 0 {
		style.BorderRadius = median(radii)
	}
	return style
}

// resolveImages maps discovered image refs onto the profile's image slots.
// When the selected logo is an inline vector, its inlined markup rides
// along so consumers can render it without the source page.
func resolveImages(record *models.RawBrandingRecord) models.ProfileImages {
	var images models.ProfileImages
	for _, ref := range record.Images {
		switch ref.Type {
		case models.ImageTypeFavicon:
			images.Favicon = ref.Src
		case models.ImageTypeOG:
			images.OGImage = ref.Src
		case models.ImageTypeLogo:
			images.Logo = ref.Src
		case models.ImageTypeLogoSVG:
			images.Logo = ref.Src
			if len(record.LogoCandidates) > 0 && record.LogoCandidates[0].Kind == "svg" {
				images.LogoMarkup = record.LogoCandidates[0].Markup
			}
		}
	}
	return images
}
