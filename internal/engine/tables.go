package engine

import "github.com/daveonthegit/OutfAI/internal/models"

// The scoring rules are kept as data so each one stays independently
// testable; the scorer itself only does lookups and arithmetic.

// weatherSeasons maps each weather condition to the seasons it allows.
// All-season garments pass regardless of these lists.
var weatherSeasons = map[models.Weather][]models.Season{
	models.WeatherSunny:  {models.SeasonSpring, models.SeasonSummer, models.SeasonAllSeason},
	models.WeatherCloudy: {models.SeasonSpring, models.SeasonSummer, models.SeasonFall, models.SeasonAllSeason},
	models.WeatherRainy:  {models.SeasonSpring, models.SeasonFall, models.SeasonWinter, models.SeasonAllSeason},
	models.WeatherSnowy:  {models.SeasonWinter, models.SeasonAllSeason},
	models.WeatherWindy:  {models.SeasonFall, models.SeasonWinter, models.SeasonAllSeason},
	models.WeatherHot:    {models.SeasonSummer, models.SeasonAllSeason},
	models.WeatherCold:   {models.SeasonFall, models.SeasonWinter, models.SeasonAllSeason},
}

// warmMaterials qualify a garment for sub-10°C weather.
var warmMaterials = []string{"wool", "fleece", "down", "synthetic"}

// hotExcludedMaterials are filtered out above 25°C.
var hotExcludedMaterials = []string{"wool", "fleece"}

// complementaryColorPairs each award a one-time harmony bonus when both
// colors appear in a candidate.
var complementaryColorPairs = [][2]string{
	{"blue", "orange"},
	{"red", "green"},
	{"yellow", "purple"},
}

var neutralColors = map[string]bool{
	"black": true,
	"white": true,
	"gray":  true,
	"beige": true,
	"navy":  true,
}

// moodKeywords are matched as substrings against a garment's material and
// tags when scoring mood alignment.
var moodKeywords = map[models.Mood][]string{
	models.MoodCasual:      {"cotton", "denim", "relaxed"},
	models.MoodFormal:      {"silk", "wool", "structured"},
	models.MoodAdventurous: {"leather", "rugged", "utility"},
	models.MoodCozy:        {"fleece", "knit", "soft"},
	models.MoodEnergetic:   {"athletic", "stretch", "sporty"},
	models.MoodMinimalist:  {"clean", "simple", "linen"},
	models.MoodBold:        {"print", "leather", "statement"},
}

var styleKeywords = map[string]bool{
	"minimalist":  true,
	"bold":        true,
	"classic":     true,
	"trendy":      true,
	"avant-garde": true,
	"casual":      true,
}

// occasionVocabulary is the closed set of occasion tags the scorer
// recognizes; anything else on a garment is ignored by occasion matching.
var occasionVocabulary = map[string]bool{
	"casual":       true,
	"formal":       true,
	"work":         true,
	"smart-casual": true,
	"night":        true,
	"weekend":      true,
}

// moodOccasions maps each mood to the occasion tags it favors.
var moodOccasions = map[models.Mood]map[string]bool{
	models.MoodCasual:      {"casual": true, "weekend": true},
	models.MoodFormal:      {"formal": true, "work": true, "smart-casual": true},
	models.MoodAdventurous: {"casual": true, "weekend": true},
	models.MoodCozy:        {"casual": true, "weekend": true},
	models.MoodEnergetic:   {"night": true, "weekend": true},
	models.MoodMinimalist:  {"work": true, "smart-casual": true},
	models.MoodBold:        {"night": true, "weekend": true, "casual": true},
}

// moodClosings are the fixed closing lines appended to every explanation.
var moodClosings = map[models.Mood]string{
	models.MoodCasual:      "Easygoing and effortless",
	models.MoodFormal:      "Sharp and put together",
	models.MoodAdventurous: "Ready for the unexpected",
	models.MoodCozy:        "Comfortable and warm",
	models.MoodEnergetic:   "Lively and ready to move",
	models.MoodMinimalist:  "Clean lines, nothing wasted",
	models.MoodBold:        "Makes a statement",
}

const genericClosing = "A solid everyday choice"
