package models

import "time"

// Category classifies where a garment sits in an outfit.
type Category string

const (
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryShoes     Category = "shoes"
	CategoryOuterwear Category = "outerwear"
	CategoryAccessory Category = "accessory"
)

// Season is the wear season a garment is suited for.
type Season string

const (
	SeasonSpring    Season = "spring"
	SeasonSummer    Season = "summer"
	SeasonFall      Season = "fall"
	SeasonWinter    Season = "winter"
	SeasonAllSeason Season = "all-season"
)

var ValidCategories = map[Category]bool{
	CategoryTop:       true,
	CategoryBottom:    true,
	CategoryShoes:     true,
	CategoryOuterwear: true,
	CategoryAccessory: true,
}

var ValidSeasons = map[Season]bool{
	SeasonSpring:    true,
	SeasonSummer:    true,
	SeasonFall:      true,
	SeasonWinter:    true,
	SeasonAllSeason: true,
}

// Garment represents a single wardrobe item.
type Garment struct {
	ID           int       `json:"id"`
	OwnerID      int       `json:"owner_id"`
	Category     Category  `json:"category"`
	PrimaryColor string    `json:"primary_color"`
	Material     string    `json:"material"`
	Season       Season    `json:"season"`
	Tags         []string  `json:"tags"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateGarmentRequest is the request body for adding a garment to a wardrobe.
type CreateGarmentRequest struct {
	Category     Category `json:"category" validate:"required,oneof=top bottom shoes outerwear accessory"`
	PrimaryColor string   `json:"primary_color" validate:"required,max=50"`
	Material     string   `json:"material" validate:"omitempty,max=100"`
	Season       Season   `json:"season" validate:"omitempty,oneof=spring summer fall winter all-season"`
	Tags         []string `json:"tags" validate:"omitempty,dive,max=50"`
}
