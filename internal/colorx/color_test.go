package colorx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexify(t *testing.T) {
	t.Run("Hex forms expand and uppercase", func(t *testing.T) {
		assert.Equal(t, "#FFAA00", Hexify("#fa0"))
		assert.Equal(t, "#FFAA00FF", Hexify("#fa0f"))
		assert.Equal(t, "#1A2B3C", Hexify("#1a2b3c"))
		assert.Equal(t, "#1A2B3C80", Hexify("#1a2b3c80"))
	})

	t.Run("RGB literals", func(t *testing.T) {
		assert.Equal(t, "#FF0000", Hexify("rgb(255, 0, 0)"))
		assert.Equal(t, "#FF0000", Hexify("rgb(255 0 0)"))
		assert.Equal(t, "#00FF0080", Hexify("rgba(0, 255, 0, 0.5)"))
		assert.Equal(t, "#0000FF", Hexify("rgba(0, 0, 255, 1)"))
	})

	t.Run("color() function with 0-1 channels", func(t *testing.T) {
		assert.Equal(t, "#FF0000", Hexify("color(srgb 1 0 0)"))
		assert.Equal(t, "#FF000080", Hexify("color(display-p3 1 0 0 / 0.5)"))
	})

	t.Run("Percent channels", func(t *testing.T) {
		assert.Equal(t, "#FF0000", Hexify("rgb(100%, 0%, 0%)"))
	})

	t.Run("Named colors resolve to canonical hex", func(t *testing.T) {
		assert.Equal(t, "#FF6347", Hexify("tomato"))
		assert.Equal(t, "#663399", Hexify("rebeccapurple"))
		assert.Equal(t, "#FF6347", Hexify("Tomato"))
		assert.Equal(t, "#FFFFFF", Hexify("white"))
		assert.Equal(t, "", Hexify("transparent"))
	})

	t.Run("Unparseable input yields empty", func(t *testing.T) {
		assert.Equal(t, "", Hexify(""))
		assert.Equal(t, "", Hexify("not-a-color"))
		assert.Equal(t, "", Hexify("#12345"))
		assert.Equal(t, "", Hexify("rgb(a, b, c)"))
		assert.Equal(t, "", Hexify("color(oklch 0.5 0.1 200)"))
	})

	t.Run("Idempotent on own output", func(t *testing.T) {
		inputs := []string{
			"#fa0", "#1a2b3c", "#1a2b3c80",
			"rgb(255, 0, 0)", "rgba(12, 34, 56, 0.25)",
			"color(srgb 0.2 0.4 0.6)", "color(display-p3 1 1 1 / 0.9)",
			"tomato", "", "garbage", "rgb()",
		}
		for _, in := range inputs {
			once := Hexify(in)
			assert.Equal(t, once, Hexify(once), "input %q", in)
		}
	})
}

func TestIsValid(t *testing.T) {
	t.Run("Rejects transparent and near black and white", func(t *testing.T) {
		assert.False(t, IsValid("transparent"))
		assert.False(t, IsValid("rgba(0, 0, 0, 0)"))
		assert.False(t, IsValid("#000000"))
		assert.False(t, IsValid("#fff"))
		assert.False(t, IsValid(""))
	})

	t.Run("Rejects near-white hex by luminance", func(t *testing.T) {
		// #FAFAFA has YIQ 250, over the 240 cutoff.
		assert.False(t, IsValid("#FAFAFA"))
		assert.True(t, IsValid("#EEEEEE"))
	})

	t.Run("Accepts rgb literals outright", func(t *testing.T) {
		assert.True(t, IsValid("rgb(250, 250, 250)"))
		assert.True(t, IsValid("rgba(10, 20, 30, 0.8)"))
	})

	t.Run("Accepts ordinary brand colors", func(t *testing.T) {
		assert.True(t, IsValid("#0055FF"))
		assert.True(t, IsValid("#1a1a1a"))
	})

	t.Run("Named colors follow the hex rules", func(t *testing.T) {
		assert.True(t, IsValid("tomato"))
		assert.False(t, IsValid("white"))
		assert.False(t, IsValid("ivory")) // YIQ over the 240 cutoff
	})
}

func TestYIQ(t *testing.T) {
	assert.Equal(t, 0.0, YIQ("#000000"))
	assert.Equal(t, 255.0, YIQ("#FFFFFF"))
	assert.InDelta(t, 76.2, YIQ("#FF0000"), 0.1)
	assert.Equal(t, 0.0, YIQ("bogus"))
}

func TestRelativeLuminance(t *testing.T) {
	assert.InDelta(t, 0.0, RelativeLuminance("#000000"), 0.001)
	assert.InDelta(t, 1.0, RelativeLuminance("#FFFFFF"), 0.001)
	// Mid gray lands well under the 0.4 dark-scheme threshold.
	assert.Less(t, RelativeLuminance("#333333"), 0.4)
	assert.Greater(t, RelativeLuminance("#EEEEEE"), 0.4)
}

func TestIsGrayish(t *testing.T) {
	assert.True(t, IsGrayish("#1A1A1A"))
	assert.True(t, IsGrayish("#F5F5F0"))
	assert.False(t, IsGrayish("#0055FF"))
	assert.False(t, IsGrayish("not-a-color"))
}

func TestAlpha(t *testing.T) {
	assert.Equal(t, 1.0, Alpha("#123456"))
	assert.InDelta(t, 0.5, Alpha("#12345680"), 0.01)
	assert.Equal(t, 1.0, Alpha("junk"))
}
