// Package upload validates user-supplied photo files before analysis.
package upload

import (
	"path/filepath"
	"strings"
)

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// AllowedExtension reports whether the filename carries an accepted image
// extension. Matching is case-insensitive.
func AllowedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := allowedExtensions[ext]
	return ok
}

// IsImageContentType reports whether the multipart part declared an
// image MIME type.
func IsImageContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

const maxFilenameLen = 100

// SanitizeFilename replaces characters unsafe for storage keys and caps
// the length, preserving the extension.
func SanitizeFilename(filename string) string {
	var b strings.Builder
	for _, r := range filename {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	s := b.String()
	if len(s) > maxFilenameLen {
		ext := filepath.Ext(s)
		s = s[:maxFilenameLen-len(ext)] + ext
	}
	return s
}
