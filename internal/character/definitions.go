package character

// definitions returns the built-in character table. Order here is the
// order List reports.
func definitions() []Definition {
	return []Definition{
		{
			ID:          "sailor-moon",
			Name:        "Sailor Moon",
			Style:       "anime",
			Costume:     "detailed blue sailor costume with white collar and red bow",
			Accessories: "moon tiara, white gloves, red ribbons in hair",
			Hair:        "blonde twin tails with red ribbons",
			Pose:        "magical girl pose with hand on hip",
			Colors:      []string{"blue", "white", "red", "yellow"},
			Description: "Classic anime magical girl with sailor uniform",
		},
		{
			ID:          "wonder-woman",
			Name:        "Wonder Woman",
			Style:       "superhero",
			Costume:     "red and gold armor with blue star-spangled briefs",
			Accessories: "golden tiara, lasso of truth, silver bracelets",
			Hair:        "long dark hair",
			Pose:        "heroic power pose with arms crossed",
			Colors:      []string{"red", "gold", "blue", "silver"},
			Description: "Amazonian warrior princess with iconic superhero costume",
		},
		{
			ID:          "dva",
			Name:        "D.Va",
			Style:       "gaming",
			Costume:     "white and pink mech pilot suit with blue accents",
			Accessories: "gaming headset, pink bunny ears, blue visor",
			Hair:        "brown hair in twin tails",
			Pose:        "gaming victory pose",
			Colors:      []string{"white", "pink", "blue", "brown"},
			Description: "Professional gamer and mech pilot from Overwatch",
		},
		{
			ID:          "harley-quinn",
			Name:        "Harley Quinn",
			Style:       "comic",
			Costume:     "red and black jester outfit with diamond patterns",
			Accessories: "red and black hair, white face paint, mallet",
			Hair:        "red and black pigtails",
			Pose:        "mischievous pose with mallet",
			Colors:      []string{"red", "black", "white"},
			Description: "Chaotic villain with jester-inspired costume",
		},
		{
			ID:          "zelda",
			Name:        "Princess Zelda",
			Style:       "fantasy",
			Costume:     "elegant white and gold dress with royal symbols",
			Accessories: "golden crown, royal jewelry, magical aura",
			Hair:        "blonde hair in elegant style",
			Pose:        "regal pose with hand extended",
			Colors:      []string{"white", "gold", "blue", "green"},
			Description: "Royal princess with magical powers and elegant attire",
		},
		{
			ID:          "power-girl",
			Name:        "Power Girl",
			Style:       "superhero",
			Costume:     "white costume with blue cape and red S symbol",
			Accessories: "blue cape, red boots, confident expression",
			Hair:        "blonde hair in ponytail",
			Pose:        "superhero flying pose",
			Colors:      []string{"white", "blue", "red"},
			Description: "Powerful superhero with classic costume design",
		},
		{
			ID:          "2b",
			Name:        "2B",
			Style:       "gaming",
			Costume:     "black and white maid outfit with combat elements",
			Accessories: "white blindfold, black gloves, combat boots",
			Hair:        "white hair in elegant style",
			Pose:        "combat ready pose",
			Colors:      []string{"black", "white", "silver"},
			Description: "Android combat unit with elegant maid-inspired design",
		},
		{
			ID:                "mikasa",
			Name:              "Mikasa Ackerman",
			Series:            "Attack on Titan",
			Style:             "anime",
			Costume:           "complete Survey Corps uniform with ODM gear harness",
			Accessories:       "iconic red knitted scarf around neck, ODM gear (Omni-Directional Mobility gear) with gas tanks and blade holders, brown leather straps and buckles, military insignia patches",
			Hair:              "short black bob with bangs",
			Pose:              "determined warrior stance",
			Colors:            []string{"brown", "white", "red", "black", "silver", "gray"},
			Description:       "Elite soldier from Attack on Titan with iconic red scarf and ODM gear",
			HairStyle:         "short black bob cut with straight bangs",
			HairColor:         "black",
			EyeColor:          "dark gray",
			OutfitDetails:     "Survey Corps military uniform with brown cropped jacket over white long-sleeve shirt, white pants with brown knee-high boots, leather harness straps across chest and waist",
			SignatureItems:    "dual steel blades for ODM gear, silver blade handles",
			SignaturePose:     "determined military stance with hand on blade hilt",
			Expression:        "serious and determined with piercing gaze",
			Environment:       "post-apocalyptic military setting with massive stone walls",
			PersonalityTraits: "fierce, protective, stoic, loyal",
			KeyFeatures:       "red scarf (most important), military precision, intense expression, combat-ready posture",
		},
		{
			ID:          "catwoman",
			Name:        "Catwoman",
			Style:       "comic",
			Costume:     "black leather catsuit with cat ears",
			Accessories: "black mask, whip, cat ears, claws",
			Hair:        "black hair",
			Pose:        "stealthy cat pose",
			Colors:      []string{"black", "silver"},
			Description: "Feline-themed thief with sleek black costume",
		},
		{
			ID:          "ahri",
			Name:        "Ahri",
			Style:       "gaming",
			Costume:     "elegant white and gold outfit with fox elements",
			Accessories: "nine fox tails, golden jewelry, magical orbs",
			Hair:        "white hair with fox ears",
			Pose:        "mystical fox pose",
			Colors:      []string{"white", "gold", "blue"},
			Description: "Nine-tailed fox spirit with elegant magical attire",
		},
	}
}
