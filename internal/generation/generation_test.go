package generation

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"
)

func TestMemoryStorePutGet(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	rec := Record{ID: NewID(), Status: StatusProcessing, Character: "zelda"}
	store.Put(rec)

	got, ok := store.Get(rec.ID)
	if !ok {
		t.Fatal("record not found after Put")
	}
	if got.Character != "zelda" || got.Status != StatusProcessing {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestMemoryStorePutReplaces(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	rec := Record{ID: "abc", Status: StatusProcessing}
	store.Put(rec)

	rec.Status = StatusCompleted
	rec.ResultURL = "data:image/png;base64,xyz"
	store.Put(rec)

	got, _ := store.Get("abc")
	if got.Status != StatusCompleted || got.ResultURL == "" {
		t.Fatalf("update not visible: %+v", got)
	}
}

func TestMemoryStoreMiss(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	if _, ok := store.Get("nope"); ok {
		t.Fatal("expected miss for unknown id")
	}
}

func TestNewIDUnique(t *testing.T) {
	if NewID() == NewID() {
		t.Fatal("ids must be unique")
	}
}

func TestEstimateSeconds(t *testing.T) {
	cases := []struct {
		name          string
		character     string
		quality       string
		width, height int
		want          int
	}{
		{"baseline medium", "sailor-moon", "medium", 512, 512, 30},
		{"high quality", "sailor-moon", "high", 512, 512, 45},
		{"low quality", "sailor-moon", "low", 512, 512, 21},
		{"large photo", "sailor-moon", "medium", 2048, 1024, 36},
		{"complex character", "wonder-woman", "medium", 512, 512, 33},
		{"everything stacked", "2b", "high", 2048, 1024, 59},
		{"unknown quality acts as medium", "sailor-moon", "ultra", 512, 512, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EstimateSeconds(tc.character, tc.quality, tc.width, tc.height)
			if got != tc.want {
				t.Errorf("EstimateSeconds(%s, %s, %dx%d) = %d, want %d",
					tc.character, tc.quality, tc.width, tc.height, got, tc.want)
			}
			if got < 15 {
				t.Errorf("estimate below floor: %d", got)
			}
		})
	}
}

func TestPlaceholderDataURI(t *testing.T) {
	uri := PlaceholderDataURI("Sailor Moon")
	const prefix = "data:image/svg+xml;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("unexpected prefix: %s", uri[:40])
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	svg := string(raw)
	if !strings.Contains(svg, "Sailor Moon Cosplay Preview") {
		t.Errorf("character name missing from placeholder: %s", svg)
	}
	if !strings.HasPrefix(svg, "<svg") {
		t.Errorf("payload is not an svg document: %s", svg[:20])
	}
}

func TestPlaceholderEscapesMarkup(t *testing.T) {
	uri := PlaceholderDataURI(`<script>"x"</script>`)
	raw, _ := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/svg+xml;base64,"))
	if strings.Contains(string(raw), "<script>") {
		t.Fatal("markup must be escaped in the rendered svg")
	}
}
