package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/brandex/internal/models"
)

func TestInfer(t *testing.T) {
	record := &models.RawBrandingRecord{
		URL:         "https://example.com",
		ColorScheme: models.ColorSchemeLight,
		CSSData: models.CSSData{
			Colors:      []string{"#0055FF", "#0055FF", "#333333"},
			Spacing:     []float64{8, 16, 24, 32},
			BorderRadii: []float64{6, 6, 10},
		},
		Snapshots: []models.StyleSnapshot{
			{
				Tag:      "button",
				Text:     "Get Started",
				Box:      models.BoundingBox{W: 140, H: 44},
				Colors:   models.SnapshotColors{Background: "rgb(0, 85, 255)", Text: "#FFFFFF"},
				IsButton: true,
			},
			{
				Tag:             "input",
				Box:             models.BoundingBox{W: 240, H: 40},
				Colors:          models.SnapshotColors{Border: "#CCCCCC"},
				BorderRadius:    4,
				HasBorderRadius: true,
				IsInput:         true,
			},
		},
		Images: []models.ImageRef{
			{Type: models.ImageTypeFavicon, Src: "https://example.com/favicon.ico"},
			{Type: models.ImageTypeLogoSVG, Src: ""},
		},
		LogoCandidates: []models.LogoCandidate{
			{Kind: "svg", Markup: `<svg fill="#0055FF"></svg>`},
		},
		BrandName:      "Example",
		FrameworkHints: []string{"react"},
	}

	profile := Infer(record)
	require.NotNil(t, profile)

	assert.Equal(t, models.ColorSchemeLight, profile.ColorScheme)
	assert.Equal(t, 8, profile.Spacing.BaseUnit)
	assert.Equal(t, 6.0, profile.Spacing.BorderRadius)
	assert.Equal(t, "Example", profile.BrandName)
	assert.Equal(t, []string{"react"}, profile.FrameworkHints)

	require.Len(t, profile.ButtonCandidates, 1)
	assert.Equal(t, "Get Started", profile.ButtonCandidates[0].Snapshot.Text)

	assert.Equal(t, "#CCCCCC", profile.Components.Input.BorderColor)
	assert.Equal(t, 4.0, profile.Components.Input.BorderRadius)

	assert.Equal(t, "https://example.com/favicon.ico", profile.Images.Favicon)
	assert.Contains(t, profile.Images.LogoMarkup, "<svg")

	require.NotNil(t, profile.Debug)
	assert.Equal(t, 1, profile.Debug.RawButtonCount)
	assert.NotEmpty(t, profile.Debug.ColorFrequency)
}

func TestInferNilRecord(t *testing.T) {
	profile := Infer(nil)
	require.NotNil(t, profile)
	assert.Equal(t, models.ColorSchemeLight, profile.ColorScheme)
	assert.Equal(t, 8, profile.Spacing.BaseUnit)
	assert.Equal(t, "#FFFFFF", profile.Colors.Background)
}

func TestInferIsDeterministic(t *testing.T) {
	record := &models.RawBrandingRecord{
		ColorScheme: models.ColorSchemeDark,
		CSSData:     models.CSSData{Colors: []string{"#6E56CF", "#222222", "#EDEDEF"}},
	}
	first := Infer(record)
	second := Infer(record)
	assert.Equal(t, first.Colors, second.Colors)
	assert.Equal(t, first.Debug.ColorFrequency, second.Debug.ColorFrequency)
}
