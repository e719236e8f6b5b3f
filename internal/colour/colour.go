package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultColor is used when a script does not specify a sheet colour.
const DefaultColor = "#4a5568"

var ErrInvalidHex = errors.New("invalid hex color")

var TeamColours = map[string]string{
	"townsfolk": "#00469e",
	"outsider":  "#00469e",
	"minion":    "#580709",
	"demon":     "#580709",
	"fabled":    "#6b5f05ff",
	"traveller": "#390758ff",
	"loric":     "#1f5807",
}

// TeamColour returns the name colour for a team, falling back to the marker grey.
func TeamColour(team string) string {
	if value, ok := TeamColours[team]; ok {
		return value
	}
	return "#222"
}

// ParseRGB accepts #rgb and #rrggbb (the leading # is optional).
func ParseRGB(hex string) (int, int, int, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 3 {
		var b strings.Builder
		for _, c := range hex {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		hex = b.String()
	}
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	channels := [3]int{}
	for i := range channels {
		value, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
		}
		channels[i] = int(value)
	}
	return channels[0], channels[1], channels[2], nil
}

func RGBString(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clamp(r), clamp(g), clamp(b))
}

func Darken(color string, factor float64) (string, error) {
	r, g, b, err := ParseRGB(color)
	if err != nil {
		return "", err
	}
	return RGBString(scale(r, factor), scale(g, factor), scale(b, factor)), nil
}

// Blend mixes a towards b; t=0 returns a, t=1 returns b.
func Blend(a, b string, t float64) (string, error) {
	ar, ag, ab, err := ParseRGB(a)
	if err != nil {
		return "", err
	}
	br, bg, bb, err := ParseRGB(b)
	if err != nil {
		return "", err
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y int) int {
		return int(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return RGBString(mix(ar, br), mix(ag, bg), mix(ab, bb)), nil
}

// NormalizeColors drops blank entries and falls back to DefaultColor.
func NormalizeColors(colors []string) []string {
	out := make([]string, 0, len(colors))
	for _, value := range colors {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		out = append(out, value)
	}
	if len(out) == 0 {
		return []string{DefaultColor}
	}
	return out
}

// Gradient builds a CSS linear-gradient. A single colour is blended 60% of
// the way to black for its second stop so the header never renders flat.
func Gradient(colors []string, angle int) (string, error) {
	colors = NormalizeColors(colors)
	for _, value := range colors {
		if _, _, _, err := ParseRGB(value); err != nil {
			return "", err
		}
	}
	if len(colors) == 1 {
		dark, err := Blend(colors[0], "#000000", 0.6)
		if err != nil {
			return "", err
		}
		colors = []string{colors[0], dark}
	}
	return "linear-gradient(" + strconv.Itoa(angle) + "deg, " + strings.Join(colors, ", ") + ")", nil
}

func OverlayBackground(colors []string, angle int) (string, error) {
	colors = NormalizeColors(colors)
	if len(colors) == 1 {
		if _, _, _, err := ParseRGB(colors[0]); err != nil {
			return "", err
		}
		return colors[0], nil
	}
	return Gradient(colors, angle)
}

func scale(channel int, factor float64) int {
	return int(math.Round(float64(channel) * factor))
}

func clamp(value int) int {
	if value < 0 {
		return 0
	}
	if value > 255 {
		return 255
	}
	return value
}
