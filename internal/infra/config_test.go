package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT_ID", "")
	t.Setenv("PORT", "")
	t.Setenv("IMAGEN_LOCATION", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8001" {
		t.Fatalf("Port mismatch: got %q want %q", cfg.Port, "8001")
	}
	if cfg.Location != "us-central1" {
		t.Fatalf("Location mismatch: got %q", cfg.Location)
	}
	if cfg.ProjectID != "" {
		t.Fatalf("ProjectID must default to empty, got %q", cfg.ProjectID)
	}
	if cfg.MaxUploadBytes != 20<<20 {
		t.Fatalf("MaxUploadBytes mismatch: got %d", cfg.MaxUploadBytes)
	}
	if cfg.RecordRetention != 24*time.Hour {
		t.Fatalf("RecordRetention mismatch: got %s", cfg.RecordRetention)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("AllowedOrigins mismatch: %#v", cfg.AllowedOrigins)
	}
}

func TestLoadConfigHonorsEnvironment(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT_ID", "demo-project")
	t.Setenv("PORT", "9090")
	t.Setenv("IMAGEN_MODEL", "imagen-3.0-generate-002")
	t.Setenv("MAX_UPLOAD_MB", "5")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com ")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.ProjectID != "demo-project" || cfg.Port != "9090" {
		t.Fatalf("env not honored: %+v", cfg)
	}
	if cfg.Model != "imagen-3.0-generate-002" {
		t.Fatalf("Model mismatch: got %q", cfg.Model)
	}
	if cfg.MaxUploadBytes != 5<<20 {
		t.Fatalf("MaxUploadBytes mismatch: got %d", cfg.MaxUploadBytes)
	}
	expected := []string{"https://app.example.com", "https://staging.example.com"}
	if len(cfg.AllowedOrigins) != len(expected) {
		t.Fatalf("AllowedOrigins mismatch: %#v", cfg.AllowedOrigins)
	}
	for i, origin := range expected {
		if cfg.AllowedOrigins[i] != origin {
			t.Fatalf("AllowedOrigins[%d] = %q, want %q", i, cfg.AllowedOrigins[i], origin)
		}
	}
}
