package models

import "time"

// Palette assigns normalized hex colors (6 or 8 digit, uppercase) to brand
// roles. An empty string means the role could not be resolved.
type Palette struct {
	Primary     string `json:"primary,omitempty"`
	Accent      string `json:"accent,omitempty"`
	Background  string `json:"background,omitempty"`
	TextPrimary string `json:"textPrimary,omitempty"`
	Link        string `json:"link,omitempty"`
}

// FontCount is one consolidated font family with its observed frequency.
type FontCount struct {
	Family string `json:"family"`
	Count  int    `json:"count"`
}

// Spacing holds the inferred layout rhythm of the page.
type Spacing struct {
	BaseUnit     int     `json:"baseUnit"`     // always one of 2,4,6,8,10,12
	BorderRadius float64 `json:"borderRadius"` // px, rounded
}

// InputStyle describes the dominant form-control styling.
type InputStyle struct {
	BorderColor  string  `json:"borderColor,omitempty"`
	BorderRadius float64 `json:"borderRadius,omitempty"`
}

// Components groups per-component style summaries.
type Components struct {
	Input InputStyle `json:"input"`
}

// ProfileImages is the resolved image set for a brand profile.
type ProfileImages struct {
	Logo       string `json:"logo,omitempty"`
	LogoMarkup string `json:"logoMarkup,omitempty"` // inlined SVG markup when the logo is an inline vector
	Favicon    string `json:"favicon,omitempty"`
	OGImage    string `json:"ogImage,omitempty"`
}

// ButtonCandidate is a scored, deduplicated button sample. Duplicates counts
// later occurrences that collapsed into this signature.
type ButtonCandidate struct {
	Snapshot   StyleSnapshot `json:"snapshot"`
	Score      float64       `json:"score"`
	Signature  string        `json:"signature"`
	Duplicates int           `json:"duplicates,omitempty"`
}

// ColorWeight is one entry of the palette frequency table, kept for
// diagnostics when debug visibility is enabled.
type ColorWeight struct {
	Hex    string  `json:"hex"`
	Weight float64 `json:"weight"`
}

// ProfileDebug carries internal diagnostic payloads. It is stripped from the
// final profile unless debug visibility is enabled.
type ProfileDebug struct {
	ColorFrequency []ColorWeight       `json:"colorFrequency,omitempty"`
	SourceColors   map[string][]string `json:"sourceColors,omitempty"`
	RawButtonCount int                 `json:"rawButtonCount,omitempty"`
}

// HeuristicProfile is the brand profile computed purely from deterministic
// rules, before any semantic classification.
type HeuristicProfile struct {
	ColorScheme      ColorScheme       `json:"colorScheme"`
	Fonts            []FontCount       `json:"fonts,omitempty"`
	Colors           Palette           `json:"colors"`
	Typography       Typography        `json:"typography"`
	Spacing          Spacing           `json:"spacing"`
	Components       Components        `json:"components"`
	Images           ProfileImages     `json:"images"`
	ButtonCandidates []ButtonCandidate `json:"buttonCandidates,omitempty"`
	LogoCandidates   []LogoCandidate   `json:"logoCandidates,omitempty"`
	BrandName        string            `json:"brandName,omitempty"`
	FrameworkHints   []string          `json:"frameworkHints,omitempty"`
	Debug            *ProfileDebug     `json:"debug,omitempty"`
}

// FieldSource tags where a final profile field came from after the merge.
type FieldSource string

const (
	// FieldSourceHeuristic marks a field kept from the heuristic profile.
	FieldSourceHeuristic FieldSource = "heuristic"
	// FieldSourceClassifier marks a field overridden by the semantic classifier.
	FieldSourceClassifier FieldSource = "classifier"
)

// ButtonRoles is the primary/secondary button selection of the final profile.
type ButtonRoles struct {
	Primary   *ButtonCandidate `json:"primary,omitempty"`
	Secondary *ButtonCandidate `json:"secondary,omitempty"`
}

// FinalBrandingProfile is the profile returned to callers: the heuristic
// profile with button/color/logo fields possibly overridden by the semantic
// enhancement. Sources records per field which side won; Confidence carries
// the classifier's scores as diagnostics only.
type FinalBrandingProfile struct {
	ID  string `json:"id" badgerhold:"key"`
	URL string `json:"url" badgerholdIndex:"URL"`

	HeuristicProfile

	Buttons    ButtonRoles            `json:"buttons"`
	Sources    map[string]FieldSource `json:"sources,omitempty"`
	Confidence map[string]float64     `json:"confidence,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
