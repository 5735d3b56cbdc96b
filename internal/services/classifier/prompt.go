package classifier

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ternarybob/brandex/internal/interfaces"
	"github.com/ternarybob/brandex/internal/models"
)

// systemPrompt instructs the model to answer with the enhancement JSON only.
const systemPrompt = `You are a brand design analyst. Given a heuristically extracted brand profile from a web page, plus ranked button and logo candidates (and optionally a page screenshot), decide:
1. Which button candidate index is the PRIMARY call-to-action, and which (if any) is SECONDARY.
2. Whether any palette role (primary, accent, background, textPrimary, link) should be reassigned to a different hex color drawn from the evidence.
3. Which logo candidate index is the actual brand logo.

Respond with ONLY a JSON object in this exact shape (omit any section you cannot decide):
{
  "buttonClassification": {"primaryIndex": 0, "secondaryIndex": 1, "confidence": 0.9},
  "colorRoles": {"primary": "#0055FF", "confidence": 0.8},
  "logoSelection": {"selectedIndex": 0, "confidence": 0.95}
}
Indices refer to zero-based positions in the candidate lists provided. Colors must be 6 or 8 digit uppercase hex. Do not add commentary.`

// buttonSummary is the compact per-candidate view sent to the model; full
// snapshots would waste tokens on fields that carry no semantic signal.
type buttonSummary struct {
	Index      int     `json:"index"`
	Text       string  `json:"text"`
	Background string  `json:"background,omitempty"`
	TextColor  string  `json:"textColor,omitempty"`
	Classes    string  `json:"classes,omitempty"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Score      float64 `json:"score"`
}

type logoSummary struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`
	Src   string `json:"src,omitempty"`
	Alt   string `json:"alt,omitempty"`
}

type promptPayload struct {
	URL         string             `json:"url,omitempty"`
	BrandName   string             `json:"brandName,omitempty"`
	ColorScheme models.ColorScheme `json:"colorScheme"`
	Palette     models.Palette     `json:"palette"`
	Fonts       []models.FontCount `json:"fonts,omitempty"`
	Buttons     []buttonSummary    `json:"buttons"`
	Logos       []logoSummary      `json:"logos,omitempty"`
}

// BuildUserPrompt renders the classifier input as a JSON evidence block
// inside a short instruction. Only the top-ranked candidates up to
// interfaces.ClassifierButtonLimit are described; anything past the top
// ranks adds noise, not signal.
func BuildUserPrompt(input *interfaces.ClassifierInput) (string, error) {
	payload := promptPayload{
		URL:       input.URL,
		BrandName: input.BrandName,
	}
	if input.Profile != nil {
		payload.ColorScheme = input.Profile.ColorScheme
		payload.Palette = input.Profile.Colors
		payload.Fonts = input.Profile.Fonts
	}

	buttons := input.Buttons
	if len(buttons) > interfaces.ClassifierButtonLimit {
		buttons = buttons[:interfaces.ClassifierButtonLimit]
	}
	for i, b := range buttons {
		payload.Buttons = append(payload.Buttons, buttonSummary{
			Index:      i,
			Text:       b.Snapshot.Text,
			Background: b.Snapshot.Colors.Background,
			TextColor:  b.Snapshot.Colors.Text,
			Classes:    b.Snapshot.Classes,
			Width:      b.Snapshot.Box.W,
			Height:     b.Snapshot.Box.H,
			Score:      b.Score,
		})
	}
	for i, l := range input.Logos {
		payload.Logos = append(payload.Logos, logoSummary{
			Index: i,
			Kind:  l.Kind,
			Src:   l.Src,
			Alt:   l.Alt,
		})
	}

	evidence, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode classifier evidence: %w", err)
	}

	return "Analyze this extracted brand evidence and return the classification JSON:\n\n" + string(evidence), nil
}

// ParseEnhancement decodes the model's response into a SemanticEnhancement,
// tolerating markdown code fences around the JSON body.
func ParseEnhancement(response string) (*models.SemanticEnhancement, error) {
	body := strings.TrimSpace(response)
	if strings.HasPrefix(body, "```") {
		body = strings.TrimPrefix(body, "```json")
		body = strings.TrimPrefix(body, "```")
		if end := strings.LastIndex(body, "```"); end >= 0 {
			body = body[:end]
		}
		body = strings.TrimSpace(body)
	}

	// Some models prepend prose despite instructions; recover the first
	// JSON object if the body does not start with one.
	if !strings.HasPrefix(body, "{") {
		start := strings.Index(body, "{")
		end := strings.LastIndex(body, "}")
		if start < 0 || end <= start {
			return nil, fmt.Errorf("response contains no JSON object")
		}
		body = body[start : end+1]
	}

	var enhancement models.SemanticEnhancement
	if err := json.Unmarshal([]byte(body), &enhancement); err != nil {
		return nil, fmt.Errorf("failed to decode classification response: %w", err)
	}
	return &enhancement, nil
}
