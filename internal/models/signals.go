package models

// PageSignals is the raw payload returned by the in-page collection script.
// Field names mirror the JSON the script emits; values are unnormalized
// computed-style strings. The collector turns this into a RawBrandingRecord.
type PageSignals struct {
	URL                  string           `json:"url"`
	Meta                 PageMeta         `json:"meta"`
	RootFontSize         float64          `json:"rootFontSize"`
	RootClasses          string           `json:"rootClasses,omitempty"`
	DataTheme            string           `json:"dataTheme,omitempty"`
	BackgroundCandidates []string         `json:"backgroundCandidates,omitempty"`
	Stylesheets          StylesheetData   `json:"stylesheets"`
	Elements             []ElementSignal  `json:"elements,omitempty"`
	LogoCandidates       []LogoSignal     `json:"logoCandidates,omitempty"`
	Typography           TypographySignal `json:"typography"`
}

// PageMeta holds head-level signals: icon/meta image links, the generator
// tag and script sources used for framework fingerprinting.
type PageMeta struct {
	Favicon      string   `json:"favicon,omitempty"`
	OGImage      string   `json:"ogImage,omitempty"`
	TwitterImage string   `json:"twitterImage,omitempty"`
	SiteName     string   `json:"siteName,omitempty"`
	Title        string   `json:"title,omitempty"`
	Generator    string   `json:"generator,omitempty"`
	ScriptSrcs   []string `json:"scriptSrcs,omitempty"`
}

// StylesheetData carries values harvested from accessible stylesheet rules,
// still as raw strings, plus one skip entry per sheet or rule that refused
// inspection.
type StylesheetData struct {
	Colors      []string          `json:"colors,omitempty"`
	BorderRadii []string          `json:"borderRadii,omitempty"`
	Spacing     []string          `json:"spacing,omitempty"`
	CustomProps map[string]string `json:"customProps,omitempty"`
	Skips       []CollectSkip     `json:"skips,omitempty"`
}

// ElementSignal is the unnormalized per-element sample taken by the script.
type ElementSignal struct {
	Tag             string  `json:"tag"`
	Classes         string  `json:"classes,omitempty"`
	Text            string  `json:"text,omitempty"`
	W               float64 `json:"w"`
	H               float64 `json:"h"`
	Color           string  `json:"color,omitempty"`
	BackgroundColor string  `json:"backgroundColor,omitempty"`
	BorderColor     string  `json:"borderColor,omitempty"`
	BorderWidth     string  `json:"borderWidth,omitempty"`
	BorderRadius    string  `json:"borderRadius,omitempty"`
	FontFamily      string  `json:"fontFamily,omitempty"`
	FontSize        string  `json:"fontSize,omitempty"`
	FontWeight      string  `json:"fontWeight,omitempty"`
	Shadow          string  `json:"shadow,omitempty"`
	IsButton        bool    `json:"isButton,omitempty"`
	IsInput         bool    `json:"isInput,omitempty"`
	IsLink          bool    `json:"isLink,omitempty"`
	HasCTAIndicator bool    `json:"hasCTAIndicator,omitempty"`
}

// SVGNodeStyle records computed paint properties for one node inside an
// inline vector graphic whose attributes reference CSS variables. Index is
// the node's position in document order within the graphic, with 0 being
// the root element itself.
type SVGNodeStyle struct {
	Index int               `json:"index"`
	Props map[string]string `json:"props"`
}

// LogoSignal is one potential logo element found by the script, with enough
// placement context for the host-side selection priority to rank it.
type LogoSignal struct {
	Kind          string         `json:"kind"` // "img" or "svg"
	Src           string         `json:"src,omitempty"`
	Alt           string         `json:"alt,omitempty"`
	Classes       string         `json:"classes,omitempty"`
	ContainerHint string         `json:"containerHint,omitempty"`
	InHeader      bool           `json:"inHeader,omitempty"`
	InLink        bool           `json:"inLink,omitempty"`
	Top           float64        `json:"top"`
	Markup        string         `json:"markup,omitempty"`
	VarNodes      []SVGNodeStyle `json:"varNodes,omitempty"`
}

// TypographySignal carries the raw font signals for the page roles.
type TypographySignal struct {
	BodyStack    string `json:"bodyStack,omitempty"`
	HeadingStack string `json:"headingStack,omitempty"`
	H1Size       string `json:"h1Size,omitempty"`
	H2Size       string `json:"h2Size,omitempty"`
	BodySize     string `json:"bodySize,omitempty"`
}
