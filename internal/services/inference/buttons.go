package inference

import (
	"math"
	"sort"
	"strings"

	"github.com/ternarybob/brandex/internal/colorx"
	"github.com/ternarybob/brandex/internal/models"
)

const (
	// maxButtonCandidates caps the surviving deduplicated list.
	maxButtonCandidates = 80
	// minButtonDimension filters decorative or collapsed elements.
	minButtonDimension = 30.0
	// signatureTextLimit bounds the text portion of the dedup signature.
	signatureTextLimit = 50
	// signatureClassTokens bounds the class portion of the dedup signature.
	signatureClassTokens = 5
	// nearWhiteYIQ marks backgrounds too bright to be a styled button.
	nearWhiteYIQ = 240.0
)

// Score contributions, strongest signal first.
const (
	scoreCTAIndicator  = 1000.0
	scoreCTAKeyword    = 500.0
	scoreStyledBG      = 300.0
	scoreReadableLabel = 100.0
)

// ctaKeywords are lower-cased label fragments that mark action buttons.
var ctaKeywords = []string{
	"sign up", "get started", "deploy", "try", "demo", "contact",
	"buy", "subscribe", "join", "register", "free", "start", "get",
}

// ScoreButtons scores, sorts and deduplicates button-like snapshots.
// The returned list is ranked descending by score, holds at most 80
// candidates with unique signatures, and reports the pre-dedup eligible
// count for diagnostics.
func ScoreButtons(snapshots []models.StyleSnapshot) (candidates []models.ButtonCandidate, rawCount int) {
	var scored []models.ButtonCandidate
	for _, snap := range snapshots {
		bg := colorx.Hexify(snap.Colors.Background)
		if !eligibleButton(snap, bg) {
			continue
		}
		scored = append(scored, models.ButtonCandidate{
			Snapshot:  snap,
			Score:     scoreButton(snap, bg),
			Signature: buttonSignature(snap, bg),
		})
	}
	rawCount = len(scored)

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	// Keep-first dedup: later occurrences of a signature are counted on
	// the survivor, then dropped.
	index := make(map[string]int)
	for _, c := range scored {
		if at, ok := index[c.Signature]; ok {
			candidates[at].Duplicates++
			continue
		}
		index[c.Signature] = len(candidates)
		candidates = append(candidates, c)
	}
	if len(candidates) > maxButtonCandidates {
		candidates = candidates[:maxButtonCandidates]
	}
	return candidates, rawCount
}

func eligibleButton(snap models.StyleSnapshot, bgHex string) bool {
	return snap.IsButton &&
		snap.Box.W >= minButtonDimension &&
		snap.Box.H >= minButtonDimension &&
		snap.Text != "" &&
		bgHex != ""
}

func scoreButton(snap models.StyleSnapshot, bgHex string) float64 {
	var score float64
	if snap.HasCTAIndicator {
		score += scoreCTAIndicator
	}
	text := strings.ToLower(snap.Text)
	for _, kw := range ctaKeywords {
		if strings.Contains(text, kw) {
			score += scoreCTAKeyword
			break
		}
	}
	if colorx.YIQ(bgHex) < nearWhiteYIQ {
		score += scoreStyledBG
	}
	if len(snap.Text) > 0 && len(snap.Text) < 50 {
		score += scoreReadableLabel
	}
	area := snap.Box.W * snap.Box.H
	score += 10 * math.Log10(area+1)
	return score
}

// buttonSignature joins the truncated label, background hex and leading
// class tokens; visually identical buttons collapse to one entry.
func buttonSignature(snap models.StyleSnapshot, bgHex string) string {
	text := strings.ToLower(snap.Text)
	if len(text) > signatureTextLimit {
		text = text[:signatureTextLimit]
	}
	tokens := strings.Fields(strings.ToLower(snap.Classes))
	if len(tokens) > signatureClassTokens {
		tokens = tokens[:signatureClassTokens]
	}
	return text + "|" + bgHex + "|" + strings.Join(tokens, " ")
}
