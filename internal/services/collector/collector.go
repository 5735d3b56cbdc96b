package collector

import (
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/brandex/internal/colorx"
	"github.com/ternarybob/brandex/internal/models"
)

// snapshotTextLimit bounds truncated element text in snapshots.
const snapshotTextLimit = 120

// Collect normalizes the raw in-page payload into an immutable Raw Branding
// Record: lengths resolve to pixels, the color scheme and logo are decided,
// and framework hints are attached. Per-item normalization failures are
// dropped or recorded as skips; the pass itself never aborts on one bad
// value.
func Collect(signals *models.PageSignals, logger arbor.ILogger) (*models.RawBrandingRecord, error) {
	if signals == nil {
		return nil, fmt.Errorf("page signals are required")
	}

	rootSize := signals.RootFontSize
	if rootSize <= 0 {
		rootSize = colorx.DefaultRootFontSize
	}

	record := &models.RawBrandingRecord{
		URL:                  signals.URL,
		CSSData:              normalizeCSSData(signals.Stylesheets, rootSize),
		Snapshots:            normalizeSnapshots(signals.Elements, rootSize),
		ColorScheme:          DetectColorScheme(signals),
		Typography:           normalizeTypography(signals.Typography, rootSize),
		FrameworkHints:       DetectFrameworks(signals.Meta),
		BackgroundCandidates: signals.BackgroundCandidates,
		BrandName:            brandName(signals.Meta),
		Skips:                append([]models.CollectSkip(nil), signals.Stylesheets.Skips...),
		CollectedAt:          time.Now(),
	}

	record.Images = collectImages(signals.Meta)
	record.LogoCandidates = normalizeLogoCandidates(signals.LogoCandidates, logger, &record.Skips)

	// The selected candidate moves to the front so downstream consumers can
	// treat index 0 as the heuristic logo choice.
	if idx := SelectLogoIndex(signals.LogoCandidates); idx >= 0 {
		logo := signals.LogoCandidates[idx]
		ref := models.ImageRef{Type: models.ImageTypeLogo, Src: logo.Src}
		if logo.Kind == "svg" {
			ref.Type = models.ImageTypeLogoSVG
		}
		record.Images = append(record.Images, ref)

		if idx > 0 && idx < len(record.LogoCandidates) {
			selected := record.LogoCandidates[idx]
			record.LogoCandidates = append(record.LogoCandidates[:idx], record.LogoCandidates[idx+1:]...)
			record.LogoCandidates = append([]models.LogoCandidate{selected}, record.LogoCandidates...)
		}
	}

	logger.Debug().
		Str("url", signals.URL).
		Int("snapshots", len(record.Snapshots)).
		Int("css_colors", len(record.CSSData.Colors)).
		Int("logo_candidates", len(record.LogoCandidates)).
		Int("skips", len(record.Skips)).
		Str("color_scheme", string(record.ColorScheme)).
		Msg("Collected branding record")

	return record, nil
}

func normalizeCSSData(sheets models.StylesheetData, rootSize float64) models.CSSData {
	data := models.CSSData{
		Colors:      dedupeStrings(sheets.Colors),
		CustomProps: sheets.CustomProps,
	}
	for _, raw := range sheets.BorderRadii {
		if px, ok := colorx.ToPx(raw, rootSize); ok && px >= 0 {
			data.BorderRadii = append(data.BorderRadii, px)
		}
	}
	for _, raw := range sheets.Spacing {
		if px, ok := colorx.ToPx(raw, rootSize); ok && px > 0 {
			data.Spacing = append(data.Spacing, px)
		}
	}
	return data
}

func normalizeSnapshots(elements []models.ElementSignal, rootSize float64) []models.StyleSnapshot {
	snapshots := make([]models.StyleSnapshot, 0, len(elements))
	for _, el := range elements {
		snap := models.StyleSnapshot{
			Tag:     strings.ToLower(el.Tag),
			Classes: strings.ToLower(el.Classes),
			Text:    truncate(strings.TrimSpace(el.Text), snapshotTextLimit),
			Box:     models.BoundingBox{W: el.W, H: el.H},
			Colors: models.SnapshotColors{
				Text:       el.Color,
				Background: el.BackgroundColor,
				Border:     el.BorderColor,
			},
			Typography: models.SnapshotTypography{
				Family:    firstFamily(el.FontFamily),
				FontStack: ParseFontStack(el.FontFamily),
				Weight:    el.FontWeight,
			},
			Shadow:          el.Shadow,
			IsButton:        el.IsButton,
			IsInput:         el.IsInput,
			IsLink:          el.IsLink,
			HasCTAIndicator: el.HasCTAIndicator,
		}
		if px, ok := colorx.ToPx(el.BorderWidth, rootSize); ok {
			snap.Colors.BorderWidth = px
		}
		if px, ok := colorx.ToPx(el.BorderRadius, rootSize); ok {
			snap.BorderRadius = px
			snap.HasBorderRadius = true
		}
		if px, ok := colorx.ToPx(el.FontSize, rootSize); ok {
			snap.Typography.Size = px
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots
}

func normalizeTypography(sig models.TypographySignal, rootSize float64) models.Typography {
	typ := models.Typography{
		Body: models.FontRole{
			Family:    firstFamily(sig.BodyStack),
			FontStack: ParseFontStack(sig.BodyStack),
		},
		Heading: models.FontRole{
			Family:    firstFamily(sig.HeadingStack),
			FontStack: ParseFontStack(sig.HeadingStack),
		},
	}
	if px, ok := colorx.ToPx(sig.H1Size, rootSize); ok {
		typ.Sizes.H1 = px
	}
	if px, ok := colorx.ToPx(sig.H2Size, rootSize); ok {
		typ.Sizes.H2 = px
	}
	if px, ok := colorx.ToPx(sig.BodySize, rootSize); ok {
		typ.Sizes.Body = px
	}
	return typ
}

func normalizeLogoCandidates(signals []models.LogoSignal, logger arbor.ILogger, skips *[]models.CollectSkip) []models.LogoCandidate {
	candidates := make([]models.LogoCandidate, 0, len(signals))
	for _, sig := range signals {
		candidate := models.LogoCandidate{
			Kind: sig.Kind,
			Src:  sig.Src,
			Alt:  sig.Alt,
		}
		if sig.Kind == "svg" && sig.Markup != "" {
			inlined, err := InlineSVGVariables(sig.Markup, sig.VarNodes)
			if err != nil {
				*skips = append(*skips, models.CollectSkip{Source: "svg-logo", Reason: err.Error()})
				logger.Debug().Err(err).Msg("Failed to inline SVG logo variables, keeping raw markup")
				inlined = sig.Markup
			}
			candidate.Markup = inlined
		}
		candidates = append(candidates, candidate)
	}
	return candidates
}

func collectImages(meta models.PageMeta) []models.ImageRef {
	var images []models.ImageRef
	if meta.Favicon != "" {
		images = append(images, models.ImageRef{Type: models.ImageTypeFavicon, Src: meta.Favicon})
	}
	if meta.OGImage != "" {
		images = append(images, models.ImageRef{Type: models.ImageTypeOG, Src: meta.OGImage})
	}
	if meta.TwitterImage != "" {
		images = append(images, models.ImageRef{Type: models.ImageTypeTwitter, Src: meta.TwitterImage})
	}
	return images
}

func brandName(meta models.PageMeta) string {
	if meta.SiteName != "" {
		return meta.SiteName
	}
	return strings.TrimSpace(meta.Title)
}

// ParseFontStack splits a CSS font-family value into trimmed, unquoted
// family names, fallbacks included.
func ParseFontStack(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	stack := make([]string, 0, len(parts))
	for _, part := range parts {
		family := strings.Trim(strings.TrimSpace(part), `"'`)
		if family != "" {
			stack = append(stack, family)
		}
	}
	return stack
}

func firstFamily(value string) string {
	stack := ParseFontStack(value)
	if len(stack) == 0 {
		return ""
	}
	return stack[0]
}

func dedupeStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
