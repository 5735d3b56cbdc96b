package colorx

import (
	"strconv"
	"strings"
)

// DefaultRootFontSize is the fallback root font size when the page never
// resolved one.
const DefaultRootFontSize = 16.0

// ToPx resolves a CSS length to pixels. "auto" and percentages return
// (0, false) since they cannot be resolved without layout context; rem/em
// values are multiplied by rootFontSize (defaulting to 16 when unresolved);
// bare numbers parse as-is. Anything else returns (0, false).
func ToPx(value string, rootFontSize float64) (float64, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" || v == "auto" || v == "none" || v == "normal" {
		return 0, false
	}
	if rootFontSize <= 0 {
		rootFontSize = DefaultRootFontSize
	}

	switch {
	case strings.HasSuffix(v, "%"):
		return 0, false
	case strings.HasSuffix(v, "px"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case strings.HasSuffix(v, "rem"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, "rem"), 64)
		if err != nil {
			return 0, false
		}
		return f * rootFontSize, true
	case strings.HasSuffix(v, "em"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, "em"), 64)
		if err != nil {
			return 0, false
		}
		return f * rootFontSize, true
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
