package photo

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"

	"github.com/kolesa-team/go-webp/decoder"
	"github.com/kolesa-team/go-webp/webp"

	"github.com/Yash-Yashwant/CosplayAI/internal/domain"
)

// Analysis is the per-upload summary consumed by prompt composition. It is
// derived once per request and never persisted.
type Analysis struct {
	HairColor    string   `json:"hair_color"`
	SkinTone     string   `json:"skin_tone"`
	Pose         string   `json:"pose"`
	StyleCues    []string `json:"style_cues"`
	Width        int      `json:"width"`
	Height       int      `json:"height"`
	FaceDetected bool     `json:"face_detected"`
	QualityScore float64  `json:"quality_score"`
}

// Unknown is the degraded summary used when analysis cannot run.
func Unknown() Analysis {
	return Analysis{HairColor: "unknown", SkinTone: "unknown", Pose: "standard pose"}
}

// Analyzer runs fixed-threshold color heuristics over uploaded photos.
type Analyzer struct {
	MinSide int
	MaxSide int
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{MinSide: 512, MaxSide: 2048}
}

// Decode parses jpeg, png, or webp bytes.
func Decode(data []byte) (image.Image, error) {
	if isWebP(data) {
		return webp.Decode(bytes.NewReader(data), &decoder.Options{})
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

func isWebP(data []byte) bool {
	return len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP"))
}

// Validate decodes the image and checks its dimensions against the
// accepted bounds. Failures are client input errors.
func (a *Analyzer) Validate(data []byte) error {
	img, err := Decode(data)
	if err != nil {
		return fmt.Errorf("%w: not a decodable image", domain.ErrInvalidUpload)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < a.MinSide || h < a.MinSide {
		return fmt.Errorf("%w: minimum %dx%d, got %dx%d", domain.ErrImageTooSmall, a.MinSide, a.MinSide, w, h)
	}
	if w > a.MaxSide || h > a.MaxSide {
		return fmt.Errorf("%w: maximum %dx%d, got %dx%d", domain.ErrImageTooLarge, a.MaxSide, a.MaxSide, w, h)
	}
	return nil
}

// Analyze runs the heuristics over an already validated upload. On decode
// failure it degrades to the unknown summary rather than failing the
// request.
func (a *Analyzer) Analyze(data []byte) Analysis {
	img, err := Decode(data)
	if err != nil {
		return Unknown()
	}
	return analyzeImage(img)
}

func analyzeImage(img image.Image) Analysis {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	an := Analysis{
		Width:        w,
		Height:       h,
		HairColor:    detectHairColor(img),
		SkinTone:     detectSkinTone(img),
		Pose:         detectPose(w, h),
		StyleCues:    detectStyleCues(img),
		QualityScore: assessQuality(img),
	}
	an.FaceDetected = detectFace(img)
	return an
}

// sampleStride keeps pixel scans cheap on large uploads.
func sampleStride(w, h int) int {
	stride := (w * h) / 65536
	if stride < 1 {
		return 1
	}
	return stride
}

type hsv struct {
	h float64 // degrees [0, 360)
	s float64 // [0, 1]
	v float64 // [0, 1]
}

func toHSV(c color.Color) hsv {
	r16, g16, b16, _ := c.RGBA()
	r := float64(r16) / 65535
	g := float64(g16) / 65535
	b := float64(b16) / 65535

	max := r
	if g > max {
		max = g
	}
	if b > max {
		max = b
	}
	min := r
	if g < min {
		min = g
	}
	if b < min {
		min = b
	}
	delta := max - min

	out := hsv{v: max}
	if max > 0 {
		out.s = delta / max
	}
	if delta == 0 {
		return out
	}
	switch max {
	case r:
		out.h = 60 * ((g - b) / delta)
	case g:
		out.h = 60 * (2 + (b-r)/delta)
	default:
		out.h = 60 * (4 + (r-g)/delta)
	}
	if out.h < 0 {
		out.h += 360
	}
	return out
}

type hsvRange struct {
	hMin, hMax float64
	sMin, sMax float64
	vMin, vMax float64
}

func (r hsvRange) contains(p hsv) bool {
	return p.h >= r.hMin && p.h <= r.hMax &&
		p.s >= r.sMin && p.s <= r.sMax &&
		p.v >= r.vMin && p.v <= r.vMax
}

type namedRange struct {
	name string
	rng  hsvRange
}

// Hair color ranges, translated from the HSV thresholds of the upstream
// heuristics (hue in degrees, saturation/value normalized).
var hairRanges = []namedRange{
	{"blonde", hsvRange{hMin: 40, hMax: 60, sMin: 0.20, sMax: 1, vMin: 0.20, vMax: 1}},
	{"brunette", hsvRange{hMin: 20, hMax: 40, sMin: 0.20, sMax: 1, vMin: 0.20, vMax: 1}},
	{"black", hsvRange{hMin: 0, hMax: 360, sMin: 0, sMax: 1, vMin: 0, vMax: 0.20}},
	{"red", hsvRange{hMin: 0, hMax: 20, sMin: 0.20, sMax: 1, vMin: 0.20, vMax: 1}},
	{"gray", hsvRange{hMin: 0, hMax: 360, sMin: 0, sMax: 0.12, vMin: 0.20, vMax: 0.78}},
}

var skinRanges = []namedRange{
	{"light", hsvRange{hMin: 0, hMax: 40, sMin: 0.08, sMax: 0.59, vMin: 0.27, vMax: 1}},
	{"medium", hsvRange{hMin: 0, hMax: 40, sMin: 0.08, sMax: 0.59, vMin: 0.08, vMax: 0.78}},
	{"dark", hsvRange{hMin: 0, hMax: 40, sMin: 0.08, sMax: 0.59, vMin: 0, vMax: 0.59}},
}

// detectHairColor scans the top third of the image and picks the color
// range with the most matching pixels.
func detectHairColor(img image.Image) string {
	b := img.Bounds()
	region := image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+b.Dy()/3)
	counts := countRanges(img, region, hairRanges)
	return dominant(counts, hairRanges, "unknown")
}

// detectSkinTone scans the center region of the image.
func detectSkinTone(img image.Image) string {
	b := img.Bounds()
	region := image.Rect(
		b.Min.X+b.Dx()/4, b.Min.Y+b.Dy()/3,
		b.Min.X+3*b.Dx()/4, b.Min.Y+2*b.Dy()/3,
	)
	counts := countRanges(img, region, skinRanges)
	return dominant(counts, skinRanges, "unknown")
}

func countRanges(img image.Image, region image.Rectangle, ranges []namedRange) []int {
	counts := make([]int, len(ranges))
	stride := sampleStride(region.Dx(), region.Dy())
	for y := region.Min.Y; y < region.Max.Y; y += stride {
		for x := region.Min.X; x < region.Max.X; x += stride {
			p := toHSV(img.At(x, y))
			for i, r := range ranges {
				if r.rng.contains(p) {
					counts[i]++
				}
			}
		}
	}
	return counts
}

func dominant(counts []int, ranges []namedRange, fallback string) string {
	best, bestCount := fallback, 0
	for i, c := range counts {
		if c > bestCount {
			best, bestCount = ranges[i].name, c
		}
	}
	return best
}

func detectPose(w, h int) string {
	ratio := float64(w) / float64(h)
	switch {
	case ratio > 1.2:
		return "wide pose"
	case ratio < 0.8:
		return "tall pose"
	default:
		return "standard pose"
	}
}

func detectStyleCues(img image.Image) []string {
	b := img.Bounds()
	stride := sampleStride(b.Dx(), b.Dy())
	var lumSum, satSum float64
	var n int
	for y := b.Min.Y; y < b.Max.Y; y += stride {
		for x := b.Min.X; x < b.Max.X; x += stride {
			p := toHSV(img.At(x, y))
			lumSum += p.v * 255
			satSum += p.s * 255
			n++
		}
	}
	if n == 0 {
		return nil
	}
	var cues []string
	brightness := lumSum / float64(n)
	if brightness > 150 {
		cues = append(cues, "bright lighting")
	} else if brightness < 80 {
		cues = append(cues, "dark lighting")
	}
	saturation := satSum / float64(n)
	if saturation > 100 {
		cues = append(cues, "vibrant colors")
	} else if saturation < 50 {
		cues = append(cues, "muted colors")
	}
	return cues
}

// assessQuality scores local contrast on the grayscale image, normalized
// to [0, 1]. Blurry images score low.
func assessQuality(img image.Image) float64 {
	b := img.Bounds()
	stride := sampleStride(b.Dx(), b.Dy())
	if stride < 1 {
		stride = 1
	}
	var sum, sumSq float64
	var n int
	for y := b.Min.Y + stride; y < b.Max.Y-stride; y += stride {
		for x := b.Min.X + stride; x < b.Max.X-stride; x += stride {
			c := gray(img.At(x, y))
			lap := 4*c - gray(img.At(x-stride, y)) - gray(img.At(x+stride, y)) -
				gray(img.At(x, y-stride)) - gray(img.At(x, y+stride))
			sum += lap
			sumSq += lap * lap
			n++
		}
	}
	if n == 0 {
		return 0
	}
	mean := sum / float64(n)
	variance := sumSq/float64(n) - mean*mean
	score := variance / 1000
	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score
}

func gray(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 257
}

// detectFace approximates face presence by the skin-pixel fraction in the
// upper-center region. A cascade classifier would be overkill for a
// heuristic the prompt only uses as a hint.
func detectFace(img image.Image) bool {
	b := img.Bounds()
	region := image.Rect(
		b.Min.X+b.Dx()/4, b.Min.Y+b.Dy()/8,
		b.Min.X+3*b.Dx()/4, b.Min.Y+b.Dy()/2,
	)
	stride := sampleStride(region.Dx(), region.Dy())
	var skin, total int
	for y := region.Min.Y; y < region.Max.Y; y += stride {
		for x := region.Min.X; x < region.Max.X; x += stride {
			p := toHSV(img.At(x, y))
			total++
			for _, r := range skinRanges {
				if r.rng.contains(p) {
					skin++
					break
				}
			}
		}
	}
	return total > 0 && float64(skin)/float64(total) > 0.15
}
