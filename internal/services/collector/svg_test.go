package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/brandex/internal/models"
)

func TestInlineSVGVariables(t *testing.T) {
	t.Run("Variable-driven fill resolves to literal", func(t *testing.T) {
		markup := `<svg viewBox="0 0 10 10"><path fill="var(--bg)" d="M0 0h10v10z"/></svg>`
		nodes := []models.SVGNodeStyle{
			{Index: 1, Props: map[string]string{"fill": "rgb(0, 0, 0)"}},
		}

		out, err := InlineSVGVariables(markup, nodes)
		require.NoError(t, err)
		assert.Contains(t, out, `fill="rgb(0, 0, 0)"`)
		assert.NotContains(t, out, `fill="var(--bg)"`)
	})

	t.Run("Inline style var declarations are rewritten", func(t *testing.T) {
		markup := `<svg style="fill: var(--brand); opacity: 0.5"><rect width="4" height="4"/></svg>`
		nodes := []models.SVGNodeStyle{
			{Index: 0, Props: map[string]string{"fill": "rgb(0, 85, 255)"}},
		}

		out, err := InlineSVGVariables(markup, nodes)
		require.NoError(t, err)
		assert.NotContains(t, out, "var(--brand)")
		assert.Contains(t, out, "rgb(0, 85, 255)")
		// Untouched declarations survive.
		assert.Contains(t, out, "opacity: 0.5")
	})

	t.Run("Non-paint properties are ignored", func(t *testing.T) {
		markup := `<svg><circle r="2"/></svg>`
		nodes := []models.SVGNodeStyle{
			{Index: 1, Props: map[string]string{"transform": "scale(2)"}},
		}

		out, err := InlineSVGVariables(markup, nodes)
		require.NoError(t, err)
		assert.NotContains(t, out, "transform")
	})

	t.Run("Out-of-range node indices are skipped", func(t *testing.T) {
		markup := `<svg><path d="M0 0"/></svg>`
		nodes := []models.SVGNodeStyle{
			{Index: 9, Props: map[string]string{"fill": "rgb(1, 2, 3)"}},
		}

		out, err := InlineSVGVariables(markup, nodes)
		require.NoError(t, err)
		assert.NotContains(t, out, "rgb(1, 2, 3)")
	})

	t.Run("No flagged nodes returns markup unchanged", func(t *testing.T) {
		markup := `<svg><path d="M0 0"/></svg>`
		out, err := InlineSVGVariables(markup, nil)
		require.NoError(t, err)
		assert.Equal(t, markup, out)
	})

	t.Run("Unparseable markup reports an error", func(t *testing.T) {
		_, err := InlineSVGVariables("<div>not a vector</div>", []models.SVGNodeStyle{
			{Index: 0, Props: map[string]string{"fill": "red"}},
		})
		assert.Error(t, err)
	})
}
