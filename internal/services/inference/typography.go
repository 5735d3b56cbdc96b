package inference

import (
	"sort"
	"strings"

	"github.com/ternarybob/brandex/internal/models"
)

// maxFontFamilies bounds the consolidated font list.
const maxFontFamilies = 10

// genericFamilies are CSS keywords and platform stacks excluded from the
// visible font list; they carry no brand information.
var genericFamilies = func() map[string]bool {
	set := make(map[string]bool)
	for _, f := range []string{
		"system-ui", "-apple-system", "blinkmacsystemfont",
		"segoe ui emoji", "segoe ui symbol", "apple color emoji", "noto color emoji",
		"sans-serif", "serif", "monospace", "cursive", "fantasy",
		"ui-sans-serif", "ui-serif", "ui-monospace", "ui-rounded",
		"emoji", "math", "inherit", "initial",
	} {
		set[f] = true
	}
	return set
}()

// consolidateFonts ranks font families by how often they appear across the
// role stacks and every sampled element's stack. Generic keywords are
// excluded; the top families are retained with counts.
func consolidateFonts(record *models.RawBrandingRecord) []models.FontCount {
	counts := make(map[string]int)
	display := make(map[string]string)

	addStack := func(stack []string) {
		for _, family := range stack {
			key := strings.ToLower(strings.TrimSpace(family))
			if key == "" || genericFamilies[key] {
				continue
			}
			counts[key]++
			if _, ok := display[key]; !ok {
				display[key] = family
			}
		}
	}

	addStack(record.Typography.Body.FontStack)
	addStack(record.Typography.Heading.FontStack)
	for _, snap := range record.Snapshots {
		addStack(snap.Typography.FontStack)
	}

	fonts := make([]models.FontCount, 0, len(counts))
	for key, n := range counts {
		fonts = append(fonts, models.FontCount{Family: display[key], Count: n})
	}
	sort.Slice(fonts, func(i, j int) bool {
		if fonts[i].Count != fonts[j].Count {
			return fonts[i].Count > fonts[j].Count
		}
		return fonts[i].Family < fonts[j].Family
	})
	if len(fonts) > maxFontFamilies {
		fonts = fonts[:maxFontFamilies]
	}
	return fonts
}
