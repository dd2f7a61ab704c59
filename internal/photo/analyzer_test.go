package photo

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/Yash-Yashwant/CosplayAI/internal/domain"
)

// solidImage builds a w x h PNG filled per-row by the supplied function.
func solidImage(t *testing.T, w, h int, rowColor func(y int) color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := rowColor(y)
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

var (
	// Hue ~47 degrees, well inside the blonde range.
	blonde = color.RGBA{R: 229, G: 199, B: 92, A: 255}
	// Hue ~24 degrees with high value, matching only the light skin range.
	lightSkin = color.RGBA{R: 230, G: 200, B: 180, A: 255}
)

func portraitPNG(t *testing.T, w, h int) []byte {
	return solidImage(t, w, h, func(y int) color.Color {
		if y < h/3 {
			return blonde
		}
		return lightSkin
	})
}

func TestValidateAcceptsPortrait(t *testing.T) {
	data := portraitPNG(t, 600, 600)
	if err := NewAnalyzer().Validate(data); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	err := NewAnalyzer().Validate([]byte("definitely not an image"))
	if !errors.Is(err, domain.ErrInvalidUpload) {
		t.Fatalf("expected ErrInvalidUpload, got %v", err)
	}
}

func TestValidateDimensionBounds(t *testing.T) {
	a := NewAnalyzer()

	small := solidImage(t, 100, 100, func(int) color.Color { return lightSkin })
	if err := a.Validate(small); !errors.Is(err, domain.ErrImageTooSmall) {
		t.Errorf("expected ErrImageTooSmall, got %v", err)
	}

	large := solidImage(t, 2500, 600, func(int) color.Color { return lightSkin })
	if err := a.Validate(large); !errors.Is(err, domain.ErrImageTooLarge) {
		t.Errorf("expected ErrImageTooLarge, got %v", err)
	}
}

func TestAnalyzePortrait(t *testing.T) {
	an := NewAnalyzer().Analyze(portraitPNG(t, 600, 600))

	if an.HairColor != "blonde" {
		t.Errorf("hair color: got %q, want blonde", an.HairColor)
	}
	if an.SkinTone != "light" {
		t.Errorf("skin tone: got %q, want light", an.SkinTone)
	}
	if an.Pose != "standard pose" {
		t.Errorf("pose: got %q, want standard pose", an.Pose)
	}
	if !an.FaceDetected {
		t.Error("skin-dominated upper center must register as a face")
	}
	if an.Width != 600 || an.Height != 600 {
		t.Errorf("dimensions: got %dx%d", an.Width, an.Height)
	}
	if an.QualityScore < 0 || an.QualityScore > 1 {
		t.Errorf("quality score out of range: %f", an.QualityScore)
	}

	var bright bool
	for _, cue := range an.StyleCues {
		if cue == "bright lighting" {
			bright = true
		}
	}
	if !bright {
		t.Errorf("expected bright lighting cue, got %v", an.StyleCues)
	}
}

func TestAnalyzePoseFromAspectRatio(t *testing.T) {
	cases := []struct {
		w, h int
		want string
	}{
		{300, 200, "wide pose"},
		{200, 300, "tall pose"},
		{256, 256, "standard pose"},
	}
	a := NewAnalyzer()
	for _, tc := range cases {
		data := solidImage(t, tc.w, tc.h, func(int) color.Color { return lightSkin })
		if got := a.Analyze(data).Pose; got != tc.want {
			t.Errorf("%dx%d: got %q, want %q", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestAnalyzeDarkImage(t *testing.T) {
	near := color.RGBA{R: 20, G: 20, B: 20, A: 255}
	an := NewAnalyzer().Analyze(solidImage(t, 300, 300, func(int) color.Color { return near }))

	if an.HairColor != "black" {
		t.Errorf("hair color: got %q, want black", an.HairColor)
	}
	var dark bool
	for _, cue := range an.StyleCues {
		if cue == "dark lighting" {
			dark = true
		}
	}
	if !dark {
		t.Errorf("expected dark lighting cue, got %v", an.StyleCues)
	}
	if an.FaceDetected {
		t.Error("no skin pixels, no face")
	}
}

func TestAnalyzeDegradesToUnknown(t *testing.T) {
	an := NewAnalyzer().Analyze([]byte{0x00, 0x01, 0x02})
	if an.HairColor != "unknown" || an.SkinTone != "unknown" || an.Pose != "standard pose" {
		t.Fatalf("expected unknown summary, got %+v", an)
	}
	if an.Width != 0 || an.Height != 0 || an.FaceDetected {
		t.Fatalf("degraded summary must carry no measurements: %+v", an)
	}
}

func TestToHSV(t *testing.T) {
	cases := []struct {
		c    color.RGBA
		h    float64
		s, v float64
	}{
		{color.RGBA{255, 0, 0, 255}, 0, 1, 1},
		{color.RGBA{0, 255, 0, 255}, 120, 1, 1},
		{color.RGBA{0, 0, 255, 255}, 240, 1, 1},
		{color.RGBA{255, 255, 255, 255}, 0, 0, 1},
		{color.RGBA{0, 0, 0, 255}, 0, 0, 0},
	}
	for _, tc := range cases {
		got := toHSV(tc.c)
		if abs(got.h-tc.h) > 0.5 || abs(got.s-tc.s) > 0.01 || abs(got.v-tc.v) > 0.01 {
			t.Errorf("toHSV(%v) = %+v, want h=%v s=%v v=%v", tc.c, got, tc.h, tc.s, tc.v)
		}
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
