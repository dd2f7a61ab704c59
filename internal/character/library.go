package character

import "strings"

// Definition describes a fictional character's visual attributes used to
// compose transformation prompts. The basic fields (Costume, Accessories,
// Hair, Pose) are populated for every entry; the extended fields carry
// higher-detail descriptions and may be empty.
type Definition struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Series      string   `json:"series,omitempty"`
	Style       string   `json:"style"`
	Costume     string   `json:"costume"`
	Accessories string   `json:"accessories"`
	Hair        string   `json:"hair"`
	Pose        string   `json:"pose"`
	Colors      []string `json:"colors"`
	Description string   `json:"description"`

	// Extended fields for high-detail entries.
	HairStyle         string `json:"hair_style,omitempty"`
	HairColor         string `json:"hair_color,omitempty"`
	EyeColor          string `json:"eye_color,omitempty"`
	OutfitDetails     string `json:"outfit_details,omitempty"`
	SignatureItems    string `json:"signature_items,omitempty"`
	SignaturePose     string `json:"signature_pose,omitempty"`
	Expression        string `json:"expression,omitempty"`
	Environment       string `json:"environment,omitempty"`
	PersonalityTraits string `json:"personality_traits,omitempty"`
	KeyFeatures       string `json:"key_features,omitempty"`
}

// Summary is the listing shape returned by discovery endpoints.
type Summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Style       string `json:"style"`
	Description string `json:"description"`
}

// Library is a read-only character table, fixed at construction.
type Library struct {
	defs []Definition
	byID map[string]int
}

// NewLibrary returns the built-in character table.
func NewLibrary() *Library {
	defs := definitions()
	byID := make(map[string]int, len(defs))
	for i, def := range defs {
		byID[def.ID] = i
	}
	return &Library{defs: defs, byID: byID}
}

// Get returns the definition for id. The second return value reports
// whether the id is known; an unknown id is a caller input error, not a
// fault.
func (l *Library) Get(id string) (Definition, bool) {
	idx, ok := l.byID[id]
	if !ok {
		return Definition{}, false
	}
	return l.defs[idx], true
}

// List returns summaries for every character in table order.
func (l *Library) List() []Summary {
	out := make([]Summary, 0, len(l.defs))
	for _, def := range l.defs {
		out = append(out, summarize(def))
	}
	return out
}

// FilterByStyle returns summaries whose style tag matches exactly.
func (l *Library) FilterByStyle(style string) []Summary {
	var out []Summary
	for _, def := range l.defs {
		if def.Style == style {
			out = append(out, summarize(def))
		}
	}
	return out
}

// Search returns summaries whose name, description, or style contains the
// query, case-insensitively. A definition matching on several fields
// appears once.
func (l *Library) Search(query string) []Summary {
	q := strings.ToLower(query)
	var out []Summary
	for _, def := range l.defs {
		if strings.Contains(strings.ToLower(def.Name), q) ||
			strings.Contains(strings.ToLower(def.Description), q) ||
			strings.Contains(strings.ToLower(def.Style), q) {
			out = append(out, summarize(def))
		}
	}
	return out
}

// PromptTemplate joins the character's basic prompt fields with ", ",
// skipping empty fields. Unknown ids yield an empty string.
func (l *Library) PromptTemplate(id string) string {
	def, ok := l.Get(id)
	if !ok {
		return ""
	}
	parts := make([]string, 0, 5)
	for _, field := range []string{def.Name, def.Costume, def.Accessories, def.Hair, def.Pose} {
		if field != "" {
			parts = append(parts, field)
		}
	}
	return strings.Join(parts, ", ")
}

// Colors returns the character's canonical palette in order, or nil for
// unknown ids.
func (l *Library) Colors(id string) []string {
	def, ok := l.Get(id)
	if !ok {
		return nil
	}
	return def.Colors
}

func summarize(def Definition) Summary {
	return Summary{ID: def.ID, Name: def.Name, Style: def.Style, Description: def.Description}
}
