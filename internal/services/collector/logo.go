package collector

import (
	"sort"
	"strings"

	"github.com/ternarybob/brandex/internal/models"
)

// excludedSectionTokens mark containers whose images are third-party marks
// (customer walls, partner strips) rather than the site's own logo.
var excludedSectionTokens = []string{"testimonial", "client", "partner"}

// SelectLogo applies the logo selection priority over the script's logo
// candidates:
//  1. an image or inline vector nested inside a link inside a
//     header/nav/banner region;
//  2. the best-ranked <img> whose alt/src/container matches "logo"
//     (excluding testimonial/client/partner sections), header-contained
//     candidates first, then top-most position;
//  3. the best-ranked inline vector matching the same heuristic.
//
// Returns nil when nothing qualifies.
func SelectLogo(candidates []models.LogoSignal) *models.LogoSignal {
	idx := SelectLogoIndex(candidates)
	if idx < 0 {
		return nil
	}
	return &candidates[idx]
}

// SelectLogoIndex is SelectLogo returning the candidate's position, or -1.
func SelectLogoIndex(candidates []models.LogoSignal) int {
	for i := range candidates {
		if candidates[i].InHeader && candidates[i].InLink {
			return i
		}
	}

	if idx := bestLogoMatch(candidates, "img"); idx >= 0 {
		return idx
	}
	return bestLogoMatch(candidates, "svg")
}

func bestLogoMatch(candidates []models.LogoSignal, kind string) int {
	var matches []int
	for i, c := range candidates {
		if c.Kind != kind || !matchesLogoHint(c) || inExcludedSection(c) {
			continue
		}
		matches = append(matches, i)
	}
	if len(matches) == 0 {
		return -1
	}

	// Header containment beats everything; position on the page breaks ties.
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := candidates[matches[i]], candidates[matches[j]]
		if a.InHeader != b.InHeader {
			return a.InHeader
		}
		return a.Top < b.Top
	})
	return matches[0]
}

func matchesLogoHint(c models.LogoSignal) bool {
	haystack := strings.ToLower(c.Alt + " " + c.Src + " " + c.Classes + " " + c.ContainerHint)
	return strings.Contains(haystack, "logo")
}

func inExcludedSection(c models.LogoSignal) bool {
	hint := strings.ToLower(c.ContainerHint)
	for _, token := range excludedSectionTokens {
		if strings.Contains(hint, token) {
			return true
		}
	}
	return false
}
