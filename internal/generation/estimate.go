package generation

const (
	baseEstimateSeconds = 30
	minEstimateSeconds  = 15
)

var qualityTimeMultipliers = map[string]float64{
	"high":   1.5,
	"medium": 1.0,
	"low":    0.7,
}

// Characters whose costumes take the model noticeably longer to render.
var complexCharacters = map[string]bool{
	"wonder-woman": true,
	"zelda":        true,
	"2b":           true,
}

// EstimateSeconds predicts how long a transformation will take, in whole
// seconds, from the character, quality tag, and source dimensions.
func EstimateSeconds(characterID, quality string, width, height int) int {
	estimate := float64(baseEstimateSeconds)

	if m, ok := qualityTimeMultipliers[quality]; ok {
		estimate *= m
	}
	if width*height > 1024*1024 {
		estimate *= 1.2
	}
	if complexCharacters[characterID] {
		estimate *= 1.1
	}

	if int(estimate) < minEstimateSeconds {
		return minEstimateSeconds
	}
	return int(estimate)
}
