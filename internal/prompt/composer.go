// Package prompt composes natural-language instructions for the image
// generation service. Everything here is pure and deterministic.
package prompt

import (
	"regexp"
	"strings"

	"github.com/Yash-Yashwant/CosplayAI/internal/character"
	"github.com/Yash-Yashwant/CosplayAI/internal/photo"
)

const transformInstruction = "Transform this person into a perfect cosplay of"

// maxPromptLen is the hard cap applied by Sanitize. The vendor rejects
// prompts past its token budget, so the tail is dropped.
const maxPromptLen = 500

var baseQualityTerms = []string{
	"professional photography",
	"ultra high quality",
	"extremely detailed",
	"studio lighting",
	"sharp focus",
	"perfect cosplay",
}

var transformationDirectives = []string{
	"preserve facial bone structure and basic features while transforming",
	"completely transform clothing and accessories to match character",
	"maintain consistent art style throughout the transformation",
}

var styleModifiers = map[string]string{
	"anime":     "anime style, cel-shaded, vibrant colors, anime-realistic hybrid",
	"realistic": "photorealistic, detailed textures, natural lighting, hyperrealistic",
	"comic":     "comic book style, bold lines, dynamic colors, comic accurate",
	"fantasy":   "fantasy art style, magical atmosphere, ethereal lighting, mystical",
	"gaming":    "game art style, digital painting, vibrant colors, video game accurate",
}

const defaultStyle = "anime"

// environmentRule maps a series-name substring to a background clause.
// Rules are evaluated in order; the generic clause is the final default.
type environmentRule struct {
	seriesSubstring string
	clause          string
}

var environmentRules = []environmentRule{
	{"attack on titan", "in post-apocalyptic military setting with massive walls in background"},
	{"sailor moon", "in magical girl setting with sparkles and moon background"},
	{"wonder woman", "in heroic pose with ancient Greek architecture background"},
}

const defaultEnvironment = "in dramatic lighting with appropriate background"

var qualityModifiers = map[string][]string{
	"high":   {"ultra detailed", "8k resolution", "professional grade"},
	"medium": {"detailed", "high resolution", "good quality"},
	"low":    {"basic", "standard quality"},
}

const defaultQuality = "medium"

// ComposeTransformationPrompt builds the full transformation prompt from
// the photo analysis, the character definition, and a style tag. Clauses
// appear in a fixed order and empty clauses are omitted. The analysis is
// accepted for contract parity with ComposePortraitPrompt; the edit-mode
// request carries the subject photo itself, so the summary does not feed
// the clause list.
func ComposeTransformationPrompt(analysis photo.Analysis, def character.Definition, style string) string {
	clauses := []string{
		transformInstruction,
		describeCharacter(def),
		strings.Join(transformationDirectives, ", "),
		styleModifier(style),
		environmentClause(def),
		strings.Join(baseQualityTerms, ", "),
	}
	return joinNonEmpty(clauses, ", ")
}

// ComposePortraitPrompt builds the lighter portrait-style prompt used for
// previews: a cosplay photograph of the analyzed person as the character.
func ComposePortraitPrompt(analysis photo.Analysis, def character.Definition, style string) string {
	clauses := []string{
		"Professional cosplay photograph of",
		describePerson(analysis),
		"as",
		describeBasicCharacter(def),
		styleModifier(style),
		strings.Join(baseQualityTerms, ", "),
	}
	return joinNonEmpty(clauses, ", ")
}

// EnhanceForQuality appends the quality tag's modifier list to the prompt.
// Unrecognized tags behave as "medium".
func EnhanceForQuality(prompt, quality string) string {
	modifiers, ok := qualityModifiers[quality]
	if !ok {
		modifiers = qualityModifiers[defaultQuality]
	}
	return prompt + ", " + strings.Join(modifiers, ", ")
}

var disallowedChars = regexp.MustCompile(`[^\w\s,.-]`)

// Sanitize strips characters the vendor rejects and caps the prompt at
// 500 characters. When the cap lands mid-clause, the cut backs off to the
// rightmost comma at or before the cap so the result never ends with a
// partial clause; if no comma precedes the cap, the hard cut stands.
func Sanitize(prompt string) string {
	prompt = disallowedChars.ReplaceAllString(prompt, "")
	if runes := []rune(prompt); len(runes) > maxPromptLen {
		head := string(runes[:maxPromptLen])
		if i := strings.LastIndex(head, ","); i >= 0 {
			head = head[:i]
		}
		prompt = head
	}
	return strings.TrimSpace(prompt)
}

// describeCharacter prefers the extended fields and falls back to the
// basic fields when an extended counterpart is absent. Parts are joined
// with spaces into one clause.
func describeCharacter(def character.Definition) string {
	var parts []string

	if def.Name != "" {
		parts = append(parts, def.Name)
		if def.Series != "" {
			parts = append(parts, "from "+def.Series)
		}
	}

	switch {
	case def.HairStyle != "":
		parts = append(parts, "with "+def.HairStyle)
		if def.HairColor != "" {
			parts = append(parts, def.HairColor+" hair")
		}
	case def.Hair != "":
		parts = append(parts, "with "+def.Hair)
	}
	if def.EyeColor != "" {
		parts = append(parts, def.EyeColor+" eyes")
	}

	if outfit := firstNonEmpty(def.OutfitDetails, def.Costume); outfit != "" {
		parts = append(parts, "wearing "+outfit)
	}
	if def.Accessories != "" {
		parts = append(parts, "equipped with "+def.Accessories)
	}
	if def.SignatureItems != "" {
		parts = append(parts, "holding "+def.SignatureItems)
	}

	if pose := firstNonEmpty(def.SignaturePose, def.Pose); pose != "" {
		parts = append(parts, "in "+pose)
	}
	if def.Expression != "" {
		parts = append(parts, "with "+def.Expression+" expression")
	}

	return strings.Join(parts, " ")
}

func describeBasicCharacter(def character.Definition) string {
	parts := []string{def.Name}
	if def.Costume != "" {
		parts = append(parts, "wearing "+def.Costume)
	}
	if def.Accessories != "" {
		parts = append(parts, "with "+def.Accessories)
	}
	return joinNonEmpty(parts, " ")
}

func describePerson(analysis photo.Analysis) string {
	var parts []string
	if known(analysis.HairColor) {
		parts = append(parts, analysis.HairColor+" hair")
	}
	if known(analysis.SkinTone) {
		parts = append(parts, analysis.SkinTone+" skin")
	}
	if analysis.Pose != "" {
		parts = append(parts, analysis.Pose)
	}
	if len(parts) == 0 {
		return "person"
	}
	return strings.Join(parts, " ")
}

func known(v string) bool {
	return v != "" && v != "unknown"
}

func styleModifier(style string) string {
	if m, ok := styleModifiers[style]; ok {
		return m
	}
	return styleModifiers[defaultStyle]
}

// environmentClause resolves the background clause: the character's
// explicit environment wins, then the series rule table in order, then
// the generic default.
func environmentClause(def character.Definition) string {
	if def.Environment != "" {
		return "in " + def.Environment
	}
	series := strings.ToLower(def.Series)
	if series != "" {
		for _, rule := range environmentRules {
			if strings.Contains(series, rule.seriesSubstring) {
				return rule.clause
			}
		}
	}
	return defaultEnvironment
}

func joinNonEmpty(parts []string, sep string) string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
