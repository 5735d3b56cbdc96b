package models

import "time"

// ImageType identifies the origin of a discovered brand image.
type ImageType string

const (
	ImageTypeFavicon ImageType = "favicon"
	ImageTypeOG      ImageType = "og"
	ImageTypeTwitter ImageType = "twitter"
	ImageTypeLogo    ImageType = "logo"
	ImageTypeLogoSVG ImageType = "logo-svg"
)

// ColorScheme is the detected page theme.
type ColorScheme string

const (
	ColorSchemeLight ColorScheme = "light"
	ColorSchemeDark  ColorScheme = "dark"
)

// ImageRef is a single discovered image asset.
type ImageRef struct {
	Type ImageType `json:"type"`
	Src  string    `json:"src"`
}

// BoundingBox holds the rendered dimensions of a sampled element.
type BoundingBox struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// SnapshotColors carries the raw computed color strings of a sampled element.
// Values are whatever the rendering engine reported (typically rgb()/rgba()
// literals); normalization to hex happens during inference.
type SnapshotColors struct {
	Text        string  `json:"text,omitempty"`
	Background  string  `json:"background,omitempty"`
	Border      string  `json:"border,omitempty"`
	BorderWidth float64 `json:"borderWidth,omitempty"`
}

// SnapshotTypography carries resolved font information for a sampled element.
type SnapshotTypography struct {
	Family    string   `json:"family,omitempty"`
	FontStack []string `json:"fontStack,omitempty"`
	Size      float64  `json:"size,omitempty"`
	Weight    string   `json:"weight,omitempty"`
}

// StyleSnapshot is the captured visual state of one sampled element.
type StyleSnapshot struct {
	Tag             string             `json:"tag"`
	Classes         string             `json:"classes,omitempty"`
	Text            string             `json:"text,omitempty"`
	Box             BoundingBox        `json:"box"`
	Colors          SnapshotColors     `json:"colors"`
	Typography      SnapshotTypography `json:"typography"`
	BorderRadius    float64            `json:"borderRadius,omitempty"`
	HasBorderRadius bool               `json:"hasBorderRadius,omitempty"`
	IsButton        bool               `json:"isButton,omitempty"`
	IsInput         bool               `json:"isInput,omitempty"`
	IsLink          bool               `json:"isLink,omitempty"`
	HasCTAIndicator bool               `json:"hasCTAIndicator,omitempty"`
	Shadow          string             `json:"shadow,omitempty"`
}

// CSSData aggregates values harvested from accessible stylesheet rules.
type CSSData struct {
	Colors      []string          `json:"colors,omitempty"`
	BorderRadii []float64         `json:"borderRadii,omitempty"`
	Spacing     []float64         `json:"spacing,omitempty"`
	CustomProps map[string]string `json:"customProps,omitempty"`
}

// FontRole is the resolved font stack for one typographic role.
type FontRole struct {
	Family    string   `json:"family,omitempty"`
	FontStack []string `json:"fontStack,omitempty"`
}

// FontSizes holds resolved pixel sizes for the key text levels.
type FontSizes struct {
	H1   float64 `json:"h1,omitempty"`
	H2   float64 `json:"h2,omitempty"`
	Body float64 `json:"body,omitempty"`
}

// Typography groups per-role font data for a page.
type Typography struct {
	Body    FontRole  `json:"body"`
	Heading FontRole  `json:"heading"`
	Sizes   FontSizes `json:"sizes"`
}

// LogoCandidate is one potential brand logo discovered on the page.
// For inline vector graphics, Markup holds the exported element with any
// CSS-variable-driven paint properties already inlined.
type LogoCandidate struct {
	Kind   string `json:"kind"` // "img" or "svg"
	Src    string `json:"src,omitempty"`
	Alt    string `json:"alt,omitempty"`
	Markup string `json:"markup,omitempty"`
}

// CollectSkip records one item the collector gave up on, with a reason.
// Skips are informational; a skipped stylesheet or element never aborts
// the collection pass.
type CollectSkip struct {
	Source string `json:"source"`
	Reason string `json:"reason"`
}

// RawBrandingRecord is the immutable bundle of signals gathered from one
// rendered page. It is created once per page and consumed once by the
// inference engine; no field is mutated after collection.
type RawBrandingRecord struct {
	URL                  string          `json:"url"`
	CSSData              CSSData         `json:"cssData"`
	Snapshots            []StyleSnapshot `json:"snapshots"`
	Images               []ImageRef      `json:"images,omitempty"`
	ColorScheme          ColorScheme     `json:"colorScheme"`
	Typography           Typography      `json:"typography"`
	FrameworkHints       []string        `json:"frameworkHints,omitempty"`
	BackgroundCandidates []string        `json:"backgroundCandidates,omitempty"`
	LogoCandidates       []LogoCandidate `json:"logoCandidates,omitempty"`
	BrandName            string          `json:"brandName,omitempty"`
	Skips                []CollectSkip   `json:"skips,omitempty"`
	CollectedAt          time.Time       `json:"collectedAt"`
}
