package generation

import (
	"encoding/base64"
	"fmt"
	"html"
)

// PlaceholderDataURI renders a small inline SVG preview for the named
// character. Used when the service runs without upstream credentials so
// the API flow stays exercisable end to end.
func PlaceholderDataURI(name string) string {
	label := html.EscapeString(name)
	svg := fmt.Sprintf(`<svg width="512" height="512" xmlns="http://www.w3.org/2000/svg">`+
		`<defs><linearGradient id="bg" x1="0%%" y1="0%%" x2="100%%" y2="100%%">`+
		`<stop offset="0%%" stop-color="#4f46e5"/><stop offset="100%%" stop-color="#9333ea"/>`+
		`</linearGradient></defs>`+
		`<rect width="100%%" height="100%%" fill="url(#bg)"/>`+
		`<circle cx="256" cy="180" r="60" fill="#ffdb99"/>`+
		`<text x="50%%" y="90%%" font-family="Arial, sans-serif" font-size="18" fill="#ffffff" text-anchor="middle">%s Cosplay Preview</text>`+
		`</svg>`, label)
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}
