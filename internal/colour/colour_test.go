package colour

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRGBExpandsShortForm(t *testing.T) {
	r, g, b, err := ParseRGB("#abc")
	if err != nil {
		t.Fatalf("expected short form to parse, got %v", err)
	}
	if r != 0xaa || g != 0xbb || b != 0xcc {
		t.Fatalf("unexpected channels: got %d,%d,%d", r, g, b)
	}

	r, g, b, err = ParseRGB("00469e")
	if err != nil {
		t.Fatalf("expected hash-less form to parse, got %v", err)
	}
	if r != 0 || g != 0x46 || b != 0x9e {
		t.Fatalf("unexpected channels: got %d,%d,%d", r, g, b)
	}
}

func TestParseRGBRejectsOtherLengths(t *testing.T) {
	for _, value := range []string{"", "#12", "#1234", "#12345", "#6b5f05ff", "#ggg000"} {
		if _, _, _, err := ParseRGB(value); !errors.Is(err, ErrInvalidHex) {
			t.Fatalf("expected ErrInvalidHex for %q, got %v", value, err)
		}
	}
}

func TestDarkenScalesEachChannel(t *testing.T) {
	got, err := Darken("#4a5568", 0.4)
	if err != nil {
		t.Fatalf("darken: %v", err)
	}
	// 0x4a*0.4=29.6, 0x55*0.4=34, 0x68*0.4=41.6
	if got != "#1e222a" {
		t.Fatalf("expected #1e222a, got %s", got)
	}

	got, err = Darken("#fff", 0.5)
	if err != nil {
		t.Fatalf("darken: %v", err)
	}
	if got != "#808080" {
		t.Fatalf("expected #808080, got %s", got)
	}

	if _, err := Darken("red", 0.5); err == nil {
		t.Fatal("expected error for named color")
	}
}

func TestRGBStringPadsAndClamps(t *testing.T) {
	if got := RGBString(1, 2, 3); got != "#010203" {
		t.Fatalf("expected #010203, got %s", got)
	}
	if got := RGBString(-4, 300, 255); got != "#00ffff" {
		t.Fatalf("expected #00ffff, got %s", got)
	}
}

func TestBlend(t *testing.T) {
	got, err := Blend("#000000", "#ffffff", 0.5)
	if err != nil {
		t.Fatalf("blend: %v", err)
	}
	if got != "#808080" {
		t.Fatalf("expected #808080, got %s", got)
	}
	got, _ = Blend("#102030", "#ffffff", 0)
	if got != "#102030" {
		t.Fatalf("expected unchanged color, got %s", got)
	}
}

func TestGradientAndOverlay(t *testing.T) {
	got, err := Gradient([]string{"#ff0000", "#0000ff"}, 20)
	if err != nil {
		t.Fatalf("gradient: %v", err)
	}
	if got != "linear-gradient(20deg, #ff0000, #0000ff)" {
		t.Fatalf("unexpected gradient %q", got)
	}

	got, err = Gradient([]string{"#ffffff"}, 90)
	if err != nil {
		t.Fatalf("gradient: %v", err)
	}
	if !strings.HasSuffix(got, "#ffffff, #666666)") {
		t.Fatalf("expected single color to fade into dark variant, got %q", got)
	}
	got, _ = Gradient([]string{"#102030"}, 90)
	if got != "linear-gradient(90deg, #102030, #060d13)" {
		t.Fatalf("unexpected single color gradient %q", got)
	}

	overlay, err := OverlayBackground([]string{" ", "#123456"}, 180)
	if err != nil {
		t.Fatalf("overlay: %v", err)
	}
	if overlay != "#123456" {
		t.Fatalf("expected plain overlay, got %q", overlay)
	}

	if _, err := OverlayBackground([]string{"#12"}, 180); err == nil {
		t.Fatal("expected error for malformed overlay color")
	}
}

func TestNormalizeColorsFallsBack(t *testing.T) {
	got := NormalizeColors(nil)
	if len(got) != 1 || got[0] != DefaultColor {
		t.Fatalf("expected default color, got %v", got)
	}
}
