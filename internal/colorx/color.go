// Package colorx normalizes CSS color values into canonical uppercase hex
// and provides the luminance math used for palette inference. Every function
// degrades to a zero value on malformed input; nothing here panics.
package colorx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Hexify normalizes a CSS color value to an uppercase "#RRGGBB" or
// "#RRGGBBAA" string. Accepted inputs: 3/4/6/8-digit hex, rgb()/rgba()
// literals (comma or space syntax), color(display-p3|srgb ...) with 0-1
// channels, and CSS named colors. Alpha is rounded to two decimals before
// conversion; a fully opaque alpha is dropped. Unparseable input yields "".
//
// Hexify is idempotent on its own output.
func Hexify(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return ""
	}
	lower := strings.ToLower(v)

	switch {
	case strings.HasPrefix(v, "#"):
		return hexifyHex(v)
	case strings.HasPrefix(lower, "rgb"):
		return hexifyRGB(lower)
	case strings.HasPrefix(lower, "color("):
		return hexifyColorFn(lower)
	}
	return namedColors[lower]
}

func hexifyHex(v string) string {
	digits := v[1:]
	for _, c := range digits {
		if !isHexDigit(c) {
			return ""
		}
	}
	switch len(digits) {
	case 3, 4:
		var b strings.Builder
		b.WriteByte('#')
		for _, c := range digits {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		return strings.ToUpper(b.String())
	case 6, 8:
		return "#" + strings.ToUpper(digits)
	}
	return ""
}

func hexifyRGB(v string) string {
	open := strings.Index(v, "(")
	end := strings.LastIndex(v, ")")
	if open < 0 || end <= open {
		return ""
	}
	parts := splitChannels(v[open+1 : end])
	if len(parts) < 3 {
		return ""
	}

	channels := make([]int, 3)
	for i := 0; i < 3; i++ {
		f, ok := parseChannel(parts[i], 255)
		if !ok {
			return ""
		}
		channels[i] = clamp255(math.Round(f))
	}

	alpha := 1.0
	if len(parts) >= 4 {
		a, ok := parseAlpha(parts[3])
		if !ok {
			return ""
		}
		alpha = a
	}

	return formatHex(channels[0], channels[1], channels[2], alpha)
}

// hexifyColorFn handles color(display-p3 r g b / a) and color(srgb r g b / a)
// with channels in the 0-1 range, scaled to 0-255. Display-p3 channels are
// treated as sRGB-equivalent, which is close enough for palette ranking.
func hexifyColorFn(v string) string {
	open := strings.Index(v, "(")
	end := strings.LastIndex(v, ")")
	if open < 0 || end <= open {
		return ""
	}
	body := strings.TrimSpace(v[open+1 : end])

	var rest string
	switch {
	case strings.HasPrefix(body, "display-p3"):
		rest = strings.TrimPrefix(body, "display-p3")
	case strings.HasPrefix(body, "srgb"):
		rest = strings.TrimPrefix(body, "srgb")
	default:
		return ""
	}

	parts := splitChannels(rest)
	if len(parts) < 3 {
		return ""
	}

	channels := make([]int, 3)
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(parts[i], 64)
		if err != nil {
			return ""
		}
		channels[i] = clamp255(math.Round(f * 255))
	}

	alpha := 1.0
	if len(parts) >= 4 {
		a, ok := parseAlpha(parts[3])
		if !ok {
			return ""
		}
		alpha = a
	}

	return formatHex(channels[0], channels[1], channels[2], alpha)
}

// IsValid reports whether a raw color is usable as a brand signal. It
// rejects fully transparent values (alpha below 0.01) and pure/near
// black-and-white hex; rgb()/rgba() literals are otherwise accepted
// outright, and hex is accepted while its YIQ luminance stays under 240.
func IsValid(raw string) bool {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" || v == "transparent" || v == "none" {
		return false
	}

	if strings.HasPrefix(v, "rgb") {
		hex := hexifyRGB(v)
		if hex == "" {
			return false
		}
		if Alpha(hex) < 0.01 {
			return false
		}
		return true
	}

	hex := Hexify(v)
	if hex == "" {
		return false
	}
	if Alpha(hex) < 0.01 {
		return false
	}
	switch hex[:7] {
	case "#000000", "#FFFFFF":
		return false
	}
	return YIQ(hex) < 240
}

// YIQ computes the perceived luminance (R·299 + G·587 + B·114)/1000 over
// 0-255 channels. Returns 0 for unparseable input. Values below 128 call
// for light text on top of the color.
func YIQ(hex string) float64 {
	r, g, b, _, ok := ParseHex(hex)
	if !ok {
		return 0
	}
	return (float64(r)*299 + float64(g)*587 + float64(b)*114) / 1000
}

// RelativeLuminance computes the WCAG relative luminance of a hex color:
// sRGB channels linearized through the standard piecewise gamma curve,
// combined with the 0.2126/0.7152/0.0722 coefficients.
func RelativeLuminance(hex string) float64 {
	r, g, b, _, ok := ParseHex(hex)
	if !ok {
		return 0
	}
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

func linearize(c uint8) float64 {
	s := float64(c) / 255
	if s <= 0.03928 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// IsGrayish reports whether the channels of a hex color sit within a
// 15-point spread of each other, i.e. the color reads as a neutral.
func IsGrayish(hex string) bool {
	r, g, b, _, ok := ParseHex(hex)
	if !ok {
		return false
	}
	max := math.Max(float64(r), math.Max(float64(g), float64(b)))
	min := math.Min(float64(r), math.Min(float64(g), float64(b)))
	return max-min < 15
}

// Alpha extracts the alpha component of a normalized hex color, defaulting
// to 1 for 6-digit values and unparseable input.
func Alpha(hex string) float64 {
	_, _, _, a, ok := ParseHex(hex)
	if !ok {
		return 1
	}
	return a
}

// ParseHex splits a 6 or 8 digit hex color (leading '#', any case) into its
// channels. Short forms are expanded first.
func ParseHex(hex string) (r, g, b uint8, alpha float64, ok bool) {
	v := hexifyHex(strings.TrimSpace(hex))
	if v == "" {
		return 0, 0, 0, 0, false
	}
	digits := v[1:]

	parse := func(s string) uint8 {
		n, _ := strconv.ParseUint(s, 16, 8)
		return uint8(n)
	}
	r = parse(digits[0:2])
	g = parse(digits[2:4])
	b = parse(digits[4:6])
	alpha = 1
	if len(digits) == 8 {
		alpha = float64(parse(digits[6:8])) / 255
	}
	return r, g, b, alpha, true
}

func formatHex(r, g, b int, alpha float64) string {
	alpha = math.Round(alpha*100) / 100
	if alpha >= 1 {
		return fmt.Sprintf("#%02X%02X%02X", r, g, b)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, clamp255(math.Round(alpha*255)))
}

func splitChannels(body string) []string {
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '/' || r == '\t'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func parseChannel(s string, scale float64) (float64, bool) {
	if strings.HasSuffix(s, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, false
		}
		return f / 100 * scale, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseAlpha(s string) (float64, bool) {
	if strings.HasSuffix(s, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, false
		}
		return f / 100, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func clamp255(f float64) int {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return int(f)
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
