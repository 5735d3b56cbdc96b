package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/brandex/internal/models"
)

func fixtureSignals() *models.PageSignals {
	return &models.PageSignals{
		URL:          "https://example.com",
		RootFontSize: 16,
		Meta: models.PageMeta{
			Favicon:    "https://example.com/favicon.ico",
			OGImage:    "https://example.com/og.png",
			SiteName:   "Example",
			Title:      "Example - Home",
			Generator:  "Gatsby 5.0",
			ScriptSrcs: []string{"https://example.com/_next/static/main.js"},
		},
		BackgroundCandidates: []string{"rgb(255, 255, 255)"},
		Stylesheets: models.StylesheetData{
			Colors:      []string{"#0055FF", "#0055FF", "rgb(51, 51, 51)"},
			BorderRadii: []string{"8px", "0.5rem", "auto"},
			Spacing:     []string{"16px", "1.5rem", "50%", "0px"},
			Skips: []models.CollectSkip{
				{Source: "https://cdn.example.com/vendor.css", Reason: "SecurityError"},
			},
		},
		Elements: []models.ElementSignal{
			{
				Tag:             "BUTTON",
				Classes:         "Btn Primary",
				Text:            "  Get Started  ",
				W:               140,
				H:               44,
				Color:           "rgb(255, 255, 255)",
				BackgroundColor: "rgb(0, 85, 255)",
				BorderRadius:    "0.25rem",
				FontFamily:      `"Inter", sans-serif`,
				FontSize:        "1rem",
				IsButton:        true,
			},
		},
		LogoCandidates: []models.LogoSignal{
			{Kind: "img", Src: "https://example.com/hero.png", Alt: "hero", Top: 400},
			{Kind: "img", Src: "https://example.com/logo.png", Alt: "Example logo", InHeader: true, InLink: true, Top: 10},
		},
		Typography: models.TypographySignal{
			BodyStack:    `"Inter", sans-serif`,
			HeadingStack: `"Sora", "Inter", sans-serif`,
			H1Size:       "3rem",
			BodySize:     "16px",
		},
	}
}

func TestCollect(t *testing.T) {
	logger := arbor.NewLogger()

	t.Run("Nil signals are rejected", func(t *testing.T) {
		_, err := Collect(nil, logger)
		assert.Error(t, err)
	})

	t.Run("Lengths resolve to pixels", func(t *testing.T) {
		record, err := Collect(fixtureSignals(), logger)
		require.NoError(t, err)

		assert.Equal(t, []float64{8, 8}, record.CSSData.BorderRadii)
		assert.Equal(t, []float64{16, 24}, record.CSSData.Spacing)

		require.Len(t, record.Snapshots, 1)
		snap := record.Snapshots[0]
		assert.Equal(t, "button", snap.Tag)
		assert.Equal(t, "btn primary", snap.Classes)
		assert.Equal(t, "Get Started", snap.Text)
		assert.Equal(t, 4.0, snap.BorderRadius)
		assert.True(t, snap.HasBorderRadius)
		assert.Equal(t, 16.0, snap.Typography.Size)
		assert.Equal(t, "Inter", snap.Typography.Family)
	})

	t.Run("Stylesheet colors deduplicate", func(t *testing.T) {
		record, err := Collect(fixtureSignals(), logger)
		require.NoError(t, err)
		assert.Equal(t, []string{"#0055FF", "rgb(51, 51, 51)"}, record.CSSData.Colors)
	})

	t.Run("Selected logo moves to front", func(t *testing.T) {
		record, err := Collect(fixtureSignals(), logger)
		require.NoError(t, err)

		require.Len(t, record.LogoCandidates, 2)
		assert.Equal(t, "https://example.com/logo.png", record.LogoCandidates[0].Src)

		var logoRef *models.ImageRef
		for i := range record.Images {
			if record.Images[i].Type == models.ImageTypeLogo {
				logoRef = &record.Images[i]
			}
		}
		require.NotNil(t, logoRef)
		assert.Equal(t, "https://example.com/logo.png", logoRef.Src)
	})

	t.Run("Meta images and brand name resolve", func(t *testing.T) {
		record, err := Collect(fixtureSignals(), logger)
		require.NoError(t, err)

		assert.Equal(t, "Example", record.BrandName)

		types := make(map[models.ImageType]string)
		for _, ref := range record.Images {
			types[ref.Type] = ref.Src
		}
		assert.Equal(t, "https://example.com/favicon.ico", types[models.ImageTypeFavicon])
		assert.Equal(t, "https://example.com/og.png", types[models.ImageTypeOG])
	})

	t.Run("Framework hints from generator and script sources", func(t *testing.T) {
		record, err := Collect(fixtureSignals(), logger)
		require.NoError(t, err)
		assert.Contains(t, record.FrameworkHints, "gatsby")
		assert.Contains(t, record.FrameworkHints, "nextjs")
	})

	t.Run("Stylesheet skips survive into the record", func(t *testing.T) {
		record, err := Collect(fixtureSignals(), logger)
		require.NoError(t, err)
		require.Len(t, record.Skips, 1)
		assert.Equal(t, "https://cdn.example.com/vendor.css", record.Skips[0].Source)
	})

	t.Run("Typography stacks parse with fallbacks", func(t *testing.T) {
		record, err := Collect(fixtureSignals(), logger)
		require.NoError(t, err)

		assert.Equal(t, "Inter", record.Typography.Body.Family)
		assert.Equal(t, []string{"Inter", "sans-serif"}, record.Typography.Body.FontStack)
		assert.Equal(t, "Sora", record.Typography.Heading.Family)
		assert.Equal(t, 48.0, record.Typography.Sizes.H1)
		assert.Equal(t, 16.0, record.Typography.Sizes.Body)
	})
}

func TestDetectColorScheme(t *testing.T) {
	t.Run("Explicit dark class wins", func(t *testing.T) {
		signals := &models.PageSignals{
			RootClasses:          "dark something",
			BackgroundCandidates: []string{"rgb(255, 255, 255)"},
		}
		assert.Equal(t, models.ColorSchemeDark, DetectColorScheme(signals))
	})

	t.Run("Dark data-theme wins", func(t *testing.T) {
		signals := &models.PageSignals{DataTheme: "dark"}
		assert.Equal(t, models.ColorSchemeDark, DetectColorScheme(signals))
	})

	t.Run("Dark background by luminance", func(t *testing.T) {
		signals := &models.PageSignals{
			BackgroundCandidates: []string{"rgba(0, 0, 0, 0)", "rgb(18, 18, 20)"},
		}
		assert.Equal(t, models.ColorSchemeDark, DetectColorScheme(signals))
	})

	t.Run("Default is light", func(t *testing.T) {
		assert.Equal(t, models.ColorSchemeLight, DetectColorScheme(&models.PageSignals{}))
	})
}

func TestSelectLogo(t *testing.T) {
	t.Run("Header link candidate wins outright", func(t *testing.T) {
		candidates := []models.LogoSignal{
			{Kind: "img", Src: "a.png", Alt: "company logo", Top: 5},
			{Kind: "img", Src: "b.png", InHeader: true, InLink: true, Top: 100},
		}
		logo := SelectLogo(candidates)
		require.NotNil(t, logo)
		assert.Equal(t, "b.png", logo.Src)
	})

	t.Run("Images rank before inline vectors", func(t *testing.T) {
		candidates := []models.LogoSignal{
			{Kind: "svg", Classes: "logo", Top: 5},
			{Kind: "img", Src: "logo.png", Alt: "logo", Top: 50},
		}
		logo := SelectLogo(candidates)
		require.NotNil(t, logo)
		assert.Equal(t, "img", logo.Kind)
	})

	t.Run("Testimonial sections are excluded", func(t *testing.T) {
		candidates := []models.LogoSignal{
			{Kind: "img", Src: "client.png", Alt: "client logo", ContainerHint: "testimonials section"},
		}
		assert.Nil(t, SelectLogo(candidates))
	})

	t.Run("Header containment then topmost position break ties", func(t *testing.T) {
		candidates := []models.LogoSignal{
			{Kind: "img", Src: "low.png", Alt: "logo", Top: 500},
			{Kind: "img", Src: "high.png", Alt: "logo", Top: 20},
			{Kind: "img", Src: "header.png", Alt: "logo", InHeader: true, Top: 900},
		}
		logo := SelectLogo(candidates)
		require.NotNil(t, logo)
		assert.Equal(t, "header.png", logo.Src)
	})

	t.Run("No candidates yields nil", func(t *testing.T) {
		assert.Nil(t, SelectLogo(nil))
	})
}

func TestParseFontStack(t *testing.T) {
	assert.Equal(t, []string{"Inter", "sans-serif"}, ParseFontStack(`"Inter", sans-serif`))
	assert.Equal(t, []string{"Segoe UI", "Arial"}, ParseFontStack(`'Segoe UI', Arial`))
	assert.Nil(t, ParseFontStack("   "))
}
