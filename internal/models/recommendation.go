package models

import "time"

// Mood is the requested style direction for a recommendation.
type Mood string

const (
	MoodCasual      Mood = "casual"
	MoodFormal      Mood = "formal"
	MoodAdventurous Mood = "adventurous"
	MoodCozy        Mood = "cozy"
	MoodEnergetic   Mood = "energetic"
	MoodMinimalist  Mood = "minimalist"
	MoodBold        Mood = "bold"
)

// Weather is the current weather condition at request time.
type Weather string

const (
	WeatherSunny  Weather = "sunny"
	WeatherCloudy Weather = "cloudy"
	WeatherRainy  Weather = "rainy"
	WeatherSnowy  Weather = "snowy"
	WeatherWindy  Weather = "windy"
	WeatherHot    Weather = "hot"
	WeatherCold   Weather = "cold"
)

// RecommendationContext carries the request-time signals that bias filtering
// and scoring. Mood, weather and temperature are all optional; an absent value
// simply skips the checks that depend on it.
type RecommendationContext struct {
	OwnerID     int      `json:"owner_id" validate:"required,gt=0"`
	Mood        Mood     `json:"mood" validate:"omitempty,oneof=casual formal adventurous cozy energetic minimalist bold"`
	Weather     Weather  `json:"weather" validate:"omitempty,oneof=sunny cloudy rainy snowy windy hot cold"`
	Temperature *float64 `json:"temperature" validate:"omitempty,gte=-60,lte=60"`
	Occasion    string   `json:"occasion" validate:"omitempty,max=100"`
	Limit       int      `json:"limit" validate:"omitempty,min=1,max=10"`
}

// Outfit is a recommended garment combination, ready to present.
type Outfit struct {
	ID          string    `json:"id"`
	OwnerID     int       `json:"owner_id"`
	GarmentIDs  []int     `json:"garment_ids"`
	Score       int       `json:"score"`
	Explanation string    `json:"explanation"`
	Mood        Mood      `json:"mood,omitempty"`
	Weather     Weather   `json:"weather,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Outcome tells callers which terminal state a recommendation request reached,
// so empty results never have to be distinguished by message text.
type Outcome string

const (
	OutcomeOK                  Outcome = "ok"
	OutcomeEmptyWardrobe       Outcome = "empty_wardrobe"
	OutcomeNoEligibleGarments  Outcome = "no_eligible_garments"
	OutcomeNoQualifyingOutfits Outcome = "no_qualifying_outfits"
)

// RecommendationResult wraps the ranked outfit list.
type RecommendationResult struct {
	Outfits        []Outfit `json:"outfits"`
	Explanation    string   `json:"explanation"`
	TotalGenerated int      `json:"total_generated"`
	Outcome        Outcome  `json:"outcome"`
}

// OutfitSnapshot is a persisted copy of a generated outfit.
type OutfitSnapshot struct {
	ID          int       `json:"id"`
	OutfitID    string    `json:"outfit_id"`
	OwnerID     int       `json:"owner_id"`
	GarmentIDs  []int     `json:"garment_ids"`
	Score       int       `json:"score"`
	Explanation string    `json:"explanation"`
	GeneratedAt time.Time `json:"generated_at"`
}
