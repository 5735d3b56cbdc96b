package collector

import (
	"strings"

	"github.com/ternarybob/brandex/internal/models"
)

// frameworkFingerprints maps substrings found in the generator meta tag or
// script src attributes to framework hint tokens. Detection is purely
// additive; a page with no match simply carries no hints.
var frameworkFingerprints = []struct {
	needle string
	hint   string
}{
	{"next", "nextjs"},
	{"/_next/", "nextjs"},
	{"nuxt", "nuxt"},
	{"gatsby", "gatsby"},
	{"astro", "astro"},
	{"wp-content", "wordpress"},
	{"wordpress", "wordpress"},
	{"webflow", "webflow"},
	{"squarespace", "squarespace"},
	{"wix.com", "wix"},
	{"shopify", "shopify"},
	{"react", "react"},
	{"vue", "vue"},
	{"angular", "angular"},
	{"svelte", "svelte"},
	{"tailwind", "tailwind"},
	{"bootstrap", "bootstrap"},
}

// DetectFrameworks inspects the generator meta tag and script sources for
// known tooling fingerprints.
func DetectFrameworks(meta models.PageMeta) []string {
	seen := make(map[string]bool)
	var hints []string

	add := func(value string) {
		value = strings.ToLower(value)
		for _, fp := range frameworkFingerprints {
			if strings.Contains(value, fp.needle) && !seen[fp.hint] {
				seen[fp.hint] = true
				hints = append(hints, fp.hint)
			}
		}
	}

	if meta.Generator != "" {
		add(meta.Generator)
	}
	for _, src := range meta.ScriptSrcs {
		add(src)
	}

	return hints
}
