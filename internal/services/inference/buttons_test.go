package inference

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/brandex/internal/models"
)

func buttonSnapshot(text, bg, classes string, w, h float64) models.StyleSnapshot {
	return models.StyleSnapshot{
		Tag:      "button",
		Classes:  classes,
		Text:     text,
		Box:      models.BoundingBox{W: w, H: h},
		Colors:   models.SnapshotColors{Background: bg},
		IsButton: true,
	}
}

func TestScoreButtons(t *testing.T) {
	t.Run("Identical buttons collapse to one candidate", func(t *testing.T) {
		snapshots := []models.StyleSnapshot{
			buttonSnapshot("Get Started", "#0000FF", "btn btn-lg rounded shadow px-4 a", 120, 40),
			buttonSnapshot("Get Started", "#0000FF", "btn btn-lg rounded shadow px-4 b", 120, 40),
		}
		candidates, rawCount := ScoreButtons(snapshots)
		require.Len(t, candidates, 1)
		assert.Equal(t, 2, rawCount)
		assert.Equal(t, 1, candidates[0].Duplicates)
	})

	t.Run("Ineligible snapshots are filtered", func(t *testing.T) {
		snapshots := []models.StyleSnapshot{
			buttonSnapshot("", "#0000FF", "btn", 120, 40),           // no text
			buttonSnapshot("Tiny", "#0000FF", "btn", 20, 40),        // too narrow
			buttonSnapshot("Short", "#0000FF", "btn", 120, 10),      // too flat
			buttonSnapshot("No background", "", "btn", 120, 40),     // unresolvable bg
			buttonSnapshot("Buy now", "not-a-color", "btn", 80, 40), // unresolvable bg
			{Tag: "a", Text: "Plain link", Box: models.BoundingBox{W: 120, H: 40},
				Colors: models.SnapshotColors{Background: "#0000FF"}}, // not a button
		}
		candidates, rawCount := ScoreButtons(snapshots)
		assert.Empty(t, candidates)
		assert.Equal(t, 0, rawCount)
	})

	t.Run("CTA indicator outranks keyword match", func(t *testing.T) {
		withIndicator := buttonSnapshot("Learn more", "#0000FF", "btn", 100, 40)
		withIndicator.HasCTAIndicator = true
		withKeyword := buttonSnapshot("Sign up today", "#0000FF", "btn other", 100, 40)

		candidates, _ := ScoreButtons([]models.StyleSnapshot{withKeyword, withIndicator})
		require.Len(t, candidates, 2)
		assert.Equal(t, "Learn more", candidates[0].Snapshot.Text)
		assert.Greater(t, candidates[0].Score, candidates[1].Score)
	})

	t.Run("Keyword matching is case-insensitive", func(t *testing.T) {
		snap := buttonSnapshot("GET STARTED", "#0000FF", "btn", 100, 40)
		plain := buttonSnapshot("About us", "#0000FF", "btn other", 100, 40)

		candidates, _ := ScoreButtons([]models.StyleSnapshot{plain, snap})
		require.Len(t, candidates, 2)
		assert.Equal(t, "GET STARTED", candidates[0].Snapshot.Text)
	})

	t.Run("Near-white backgrounds score lower", func(t *testing.T) {
		styled := buttonSnapshot("Click here", "#0055FF", "a", 100, 40)
		washed := buttonSnapshot("Click here", "#FDFDFD", "b", 100, 40)

		candidates, _ := ScoreButtons([]models.StyleSnapshot{washed, styled})
		require.Len(t, candidates, 2)
		assert.Equal(t, "#0055FF", candidates[0].Signature[11:18])
	})

	t.Run("Output capped at 80 with unique signatures", func(t *testing.T) {
		var snapshots []models.StyleSnapshot
		for i := 0; i < 120; i++ {
			snapshots = append(snapshots,
				buttonSnapshot(fmt.Sprintf("Button %d", i), "#0000FF", "btn", 100, 40))
		}
		candidates, rawCount := ScoreButtons(snapshots)
		assert.LessOrEqual(t, len(candidates), 80)
		assert.Equal(t, 120, rawCount)

		seen := make(map[string]bool)
		for _, c := range candidates {
			assert.False(t, seen[c.Signature], "duplicate signature %q", c.Signature)
			seen[c.Signature] = true
		}
	})
}
