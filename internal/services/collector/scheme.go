package collector

import (
	"strings"

	"github.com/ternarybob/brandex/internal/colorx"
	"github.com/ternarybob/brandex/internal/models"
)

// darkLuminanceThreshold is the WCAG relative luminance below which a page
// background reads as dark.
const darkLuminanceThreshold = 0.4

var darkClassTokens = map[string]bool{
	"dark":       true,
	"dark-mode":  true,
	"theme-dark": true,
}

// DetectColorScheme resolves the page theme. Explicit dark-mode signals
// (root class names or dark data-theme attributes) win outright; otherwise
// the first resolvable non-transparent background among the common app-root
// containers decides via WCAG relative luminance.
func DetectColorScheme(signals *models.PageSignals) models.ColorScheme {
	if hasExplicitDarkSignal(signals.RootClasses, signals.DataTheme) {
		return models.ColorSchemeDark
	}

	for _, raw := range signals.BackgroundCandidates {
		hex := colorx.Hexify(raw)
		if hex == "" || colorx.Alpha(hex) < 0.01 {
			continue
		}
		if colorx.RelativeLuminance(hex) < darkLuminanceThreshold {
			return models.ColorSchemeDark
		}
		return models.ColorSchemeLight
	}

	return models.ColorSchemeLight
}

func hasExplicitDarkSignal(rootClasses, dataTheme string) bool {
	for _, token := range strings.Fields(strings.ToLower(rootClasses)) {
		if darkClassTokens[token] {
			return true
		}
	}
	theme := strings.ToLower(strings.TrimSpace(dataTheme))
	return theme == "dark" || strings.Contains(theme, "dark")
}
