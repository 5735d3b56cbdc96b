package merger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/brandex/internal/models"
)

func heuristicFixture() *models.HeuristicProfile {
	return &models.HeuristicProfile{
		ColorScheme: models.ColorSchemeLight,
		Colors: models.Palette{
			Primary:     "#0055FF",
			Background:  "#FFFFFF",
			TextPrimary: "#1A1A1A",
		},
		ButtonCandidates: []models.ButtonCandidate{
			{Signature: "sign up|#0055FF|btn", Score: 900},
			{Signature: "learn more|#EEEEEE|btn", Score: 400},
			{Signature: "contact|#DDDDDD|btn", Score: 300},
		},
		LogoCandidates: []models.LogoCandidate{
			{Kind: "img", Src: "https://example.com/logo.png"},
			{Kind: "svg", Markup: "<svg></svg>"},
		},
		Images: models.ProfileImages{Logo: "https://example.com/logo.png"},
		Debug:  &models.ProfileDebug{RawButtonCount: 3},
	}
}

func intPtr(v int) *int { return &v }

func TestMerge(t *testing.T) {
	t.Run("Nil enhancement keeps heuristic profile", func(t *testing.T) {
		heuristic := heuristicFixture()
		final := Merge(heuristic, nil, Options{URL: "https://example.com"})

		assert.Equal(t, heuristic.Colors, final.Colors)
		assert.Equal(t, "sign up|#0055FF|btn", final.Buttons.Primary.Signature)
		assert.Equal(t, "learn more|#EEEEEE|btn", final.Buttons.Secondary.Signature)
		assert.Equal(t, models.FieldSourceHeuristic, final.Sources["buttons.primary"])
		assert.Equal(t, models.FieldSourceHeuristic, final.Sources["colors.primary"])
		assert.NotEmpty(t, final.ID)
		assert.Equal(t, "https://example.com", final.URL)
	})

	t.Run("Debug payload stripped by default", func(t *testing.T) {
		final := Merge(heuristicFixture(), nil, Options{})
		assert.Nil(t, final.Debug)
		assert.Nil(t, final.ButtonCandidates)
	})

	t.Run("Debug payload retained when enabled", func(t *testing.T) {
		final := Merge(heuristicFixture(), nil, Options{Debug: true})
		require.NotNil(t, final.Debug)
		assert.Equal(t, 3, final.Debug.RawButtonCount)
		assert.Len(t, final.ButtonCandidates, 3)
	})

	t.Run("In-bounds button indices override roles", func(t *testing.T) {
		enhancement := &models.SemanticEnhancement{
			ButtonClassification: &models.ButtonClassification{
				PrimaryIndex:   intPtr(2),
				SecondaryIndex: intPtr(0),
				Confidence:     0.9,
			},
		}
		final := Merge(heuristicFixture(), enhancement, Options{})

		assert.Equal(t, "contact|#DDDDDD|btn", final.Buttons.Primary.Signature)
		assert.Equal(t, "sign up|#0055FF|btn", final.Buttons.Secondary.Signature)
		assert.Equal(t, models.FieldSourceClassifier, final.Sources["buttons.primary"])
		assert.Equal(t, models.FieldSourceClassifier, final.Sources["buttons.secondary"])
		assert.Equal(t, 0.9, final.Confidence["buttons"])
	})

	t.Run("Out-of-range indices leave heuristic values", func(t *testing.T) {
		enhancement := &models.SemanticEnhancement{
			ButtonClassification: &models.ButtonClassification{
				PrimaryIndex:   intPtr(99),
				SecondaryIndex: intPtr(-1),
			},
			LogoSelection: &models.LogoSelection{SelectedIndex: intPtr(7)},
		}
		final := Merge(heuristicFixture(), enhancement, Options{})

		assert.Equal(t, "sign up|#0055FF|btn", final.Buttons.Primary.Signature)
		assert.Equal(t, "learn more|#EEEEEE|btn", final.Buttons.Secondary.Signature)
		assert.Equal(t, "https://example.com/logo.png", final.Images.Logo)
		assert.Equal(t, models.FieldSourceHeuristic, final.Sources["buttons.primary"])
		assert.Equal(t, models.FieldSourceHeuristic, final.Sources["images.logo"])
	})

	t.Run("Color overrides are independent and normalized", func(t *testing.T) {
		enhancement := &models.SemanticEnhancement{
			ColorRoles: &models.ColorRoleAssignment{
				Primary:    "rgb(110, 86, 207)",
				Accent:     "not-a-color",
				Confidence: 0.7,
			},
		}
		final := Merge(heuristicFixture(), enhancement, Options{})

		assert.Equal(t, "#6E56CF", final.Colors.Primary)
		assert.Equal(t, models.FieldSourceClassifier, final.Sources["colors.primary"])
		assert.Equal(t, "", final.Colors.Accent)
		assert.Equal(t, models.FieldSourceHeuristic, final.Sources["colors.accent"])
		assert.Equal(t, models.FieldSourceHeuristic, final.Sources["colors.background"])
	})

	t.Run("Failure in one field keeps overrides in others", func(t *testing.T) {
		enhancement := &models.SemanticEnhancement{
			ButtonClassification: &models.ButtonClassification{PrimaryIndex: intPtr(1)},
			LogoSelection:        &models.LogoSelection{SelectedIndex: intPtr(99)},
		}
		final := Merge(heuristicFixture(), enhancement, Options{})

		assert.Equal(t, models.FieldSourceClassifier, final.Sources["buttons.primary"])
		assert.Equal(t, models.FieldSourceHeuristic, final.Sources["images.logo"])
	})

	t.Run("Logo selection override carries markup", func(t *testing.T) {
		enhancement := &models.SemanticEnhancement{
			LogoSelection: &models.LogoSelection{SelectedIndex: intPtr(1), Confidence: 0.95},
		}
		final := Merge(heuristicFixture(), enhancement, Options{})

		assert.Equal(t, "<svg></svg>", final.Images.LogoMarkup)
		assert.Equal(t, models.FieldSourceClassifier, final.Sources["images.logo"])
		assert.Equal(t, 0.95, final.Confidence["logo"])
	})

	t.Run("Inline vector selection keeps the heuristic logo URL", func(t *testing.T) {
		enhancement := &models.SemanticEnhancement{
			LogoSelection: &models.LogoSelection{SelectedIndex: intPtr(1)},
		}
		final := Merge(heuristicFixture(), enhancement, Options{})

		assert.Equal(t, "https://example.com/logo.png", final.Images.Logo)
		assert.Equal(t, "<svg></svg>", final.Images.LogoMarkup)
	})

	t.Run("Button indices past the prompt window are ignored", func(t *testing.T) {
		heuristic := heuristicFixture()
		for i := 0; i < 30; i++ {
			heuristic.ButtonCandidates = append(heuristic.ButtonCandidates, models.ButtonCandidate{
				Signature: fmt.Sprintf("filler %d|#0000FF|btn", i),
			})
		}
		enhancement := &models.SemanticEnhancement{
			ButtonClassification: &models.ButtonClassification{
				PrimaryIndex:   intPtr(25),
				SecondaryIndex: intPtr(2),
			},
		}
		final := Merge(heuristic, enhancement, Options{})

		assert.Equal(t, "sign up|#0055FF|btn", final.Buttons.Primary.Signature)
		assert.Equal(t, models.FieldSourceHeuristic, final.Sources["buttons.primary"])
		assert.Equal(t, "contact|#DDDDDD|btn", final.Buttons.Secondary.Signature)
		assert.Equal(t, models.FieldSourceClassifier, final.Sources["buttons.secondary"])
	})
}
