package upload

import (
	"strings"
	"testing"
)

func TestAllowedExtension(t *testing.T) {
	cases := []struct {
		filename string
		want     bool
	}{
		{"selfie.jpg", true},
		{"selfie.JPEG", true},
		{"photo.png", true},
		{"photo.webp", true},
		{"archive.gif", false},
		{"document.pdf", false},
		{"noextension", false},
		{"trailingdot.", false},
	}
	for _, tc := range cases {
		if got := AllowedExtension(tc.filename); got != tc.want {
			t.Errorf("AllowedExtension(%q) = %v, want %v", tc.filename, got, tc.want)
		}
	}
}

func TestIsImageContentType(t *testing.T) {
	if !IsImageContentType("image/jpeg") {
		t.Error("image/jpeg must be accepted")
	}
	if IsImageContentType("application/octet-stream") {
		t.Error("non-image content type must be rejected")
	}
	if IsImageContentType("") {
		t.Error("empty content type must be rejected")
	}
}

func TestSanitizeFilename(t *testing.T) {
	got := SanitizeFilename("my photo (1)!.jpg")
	if got != "my_photo__1__.jpg" {
		t.Errorf("unexpected sanitized name: %q", got)
	}
}

func TestSanitizeFilenameCapsLengthKeepingExtension(t *testing.T) {
	long := strings.Repeat("a", 200) + ".png"
	got := SanitizeFilename(long)
	if len(got) > 100 {
		t.Errorf("name too long after sanitizing: %d", len(got))
	}
	if !strings.HasSuffix(got, ".png") {
		t.Errorf("extension lost: %q", got)
	}
}
