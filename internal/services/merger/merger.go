package merger

import (
	"time"

	"github.com/ternarybob/brandex/internal/colorx"
	"github.com/ternarybob/brandex/internal/common"
	"github.com/ternarybob/brandex/internal/interfaces"
	"github.com/ternarybob/brandex/internal/models"
)

// Options controls merge behavior for one profile.
type Options struct {
	// Debug retains diagnostic payloads in the output; default stripped.
	Debug bool
	// URL is the source page, recorded on the final profile.
	URL string
}

// Merge combines the heuristic profile with the classifier's enhancement
// into the final branding profile. A nil enhancement (classifier disabled or
// failed) yields the heuristic profile unchanged.
//
// Every override is independent and bounds-checked: an absent, invalid or
// out-of-range enhancement value leaves that field at its heuristic value,
// and never rolls back overrides already applied to other fields. Sources
// records which side won per field; Confidence carries the classifier's
// scores as diagnostics only, never as a gate.
func Merge(heuristic *models.HeuristicProfile, enhancement *models.SemanticEnhancement, opts Options) *models.FinalBrandingProfile {
	now := time.Now()
	final := &models.FinalBrandingProfile{
		ID:               common.NewProfileID(),
		URL:              opts.URL,
		HeuristicProfile: *heuristic,
		Sources:          make(map[string]models.FieldSource),
		Confidence:       make(map[string]float64),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	// Heuristic button roles: best-scored candidate is primary, runner-up
	// secondary. The classifier may reassign both below.
	if len(heuristic.ButtonCandidates) > 0 {
		final.Buttons.Primary = &heuristic.ButtonCandidates[0]
		final.Sources["buttons.primary"] = models.FieldSourceHeuristic
	}
	if len(heuristic.ButtonCandidates) > 1 {
		final.Buttons.Secondary = &heuristic.ButtonCandidates[1]
		final.Sources["buttons.secondary"] = models.FieldSourceHeuristic
	}
	for _, field := range []string{"colors.primary", "colors.accent", "colors.background", "colors.textPrimary", "colors.link", "images.logo"} {
		final.Sources[field] = models.FieldSourceHeuristic
	}

	if enhancement != nil {
		applyButtonClassification(final, heuristic, enhancement.ButtonClassification)
		applyColorRoles(final, enhancement.ColorRoles)
		applyLogoSelection(final, heuristic, enhancement.LogoSelection)
	}

	if !opts.Debug {
		final.Debug = nil
		final.ButtonCandidates = nil
	}
	if len(final.Confidence) == 0 {
		final.Confidence = nil
	}

	return final
}

func applyButtonClassification(final *models.FinalBrandingProfile, heuristic *models.HeuristicProfile, bc *models.ButtonClassification) {
	if bc == nil {
		return
	}
	// Indices are only trusted inside the window the classifier was shown;
	// the full candidate list can be longer than the prompt.
	limit := len(heuristic.ButtonCandidates)
	if limit > interfaces.ClassifierButtonLimit {
		limit = interfaces.ClassifierButtonLimit
	}
	if idx, ok := inBounds(bc.PrimaryIndex, limit); ok {
		final.Buttons.Primary = &heuristic.ButtonCandidates[idx]
		final.Sources["buttons.primary"] = models.FieldSourceClassifier
	}
	if idx, ok := inBounds(bc.SecondaryIndex, limit); ok {
		final.Buttons.Secondary = &heuristic.ButtonCandidates[idx]
		final.Sources["buttons.secondary"] = models.FieldSourceClassifier
	}
	if bc.Confidence > 0 {
		final.Confidence["buttons"] = bc.Confidence
	}
}

func applyColorRoles(final *models.FinalBrandingProfile, roles *models.ColorRoleAssignment) {
	if roles == nil {
		return
	}
	overrideColor(&final.Colors.Primary, roles.Primary, "colors.primary", final)
	overrideColor(&final.Colors.Accent, roles.Accent, "colors.accent", final)
	overrideColor(&final.Colors.Background, roles.Background, "colors.background", final)
	overrideColor(&final.Colors.TextPrimary, roles.TextPrimary, "colors.textPrimary", final)
	overrideColor(&final.Colors.Link, roles.Link, "colors.link", final)
	if roles.Confidence > 0 {
		final.Confidence["colors"] = roles.Confidence
	}
}

// overrideColor replaces one palette slot when the enhancement value
// normalizes to a valid hex color; anything else keeps the heuristic value.
func overrideColor(slot *string, value, field string, final *models.FinalBrandingProfile) {
	if value == "" {
		return
	}
	hex := colorx.Hexify(value)
	if hex == "" {
		return
	}
	*slot = hex
	final.Sources[field] = models.FieldSourceClassifier
}

func applyLogoSelection(final *models.FinalBrandingProfile, heuristic *models.HeuristicProfile, sel *models.LogoSelection) {
	if sel == nil {
		return
	}
	idx, ok := inBounds(sel.SelectedIndex, len(heuristic.LogoCandidates))
	if !ok {
		return
	}
	chosen := heuristic.LogoCandidates[idx]
	// Inline vectors carry no src; the markup is the asset there, and the
	// heuristic logo URL stays in place.
	if chosen.Src != "" {
		final.Images.Logo = chosen.Src
	}
	final.Images.LogoMarkup = chosen.Markup
	final.Sources["images.logo"] = models.FieldSourceClassifier
	if sel.Confidence > 0 {
		final.Confidence["logo"] = sel.Confidence
	}
}

// inBounds dereferences an optional index only when it falls inside
// [0, length).
func inBounds(idx *int, length int) (int, bool) {
	if idx == nil || *idx < 0 || *idx >= length {
		return 0, false
	}
	return *idx, true
}
