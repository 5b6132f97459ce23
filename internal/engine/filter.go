package engine

import (
	"strings"

	"github.com/daveonthegit/OutfAI/internal/models"
)

const (
	hotThreshold  = 25.0
	coldThreshold = 10.0
)

// filterByContext returns the garments eligible for combination under the
// given context. The season and temperature checks are conjunctive; a check
// whose input signal is absent is skipped.
func filterByContext(garments []models.Garment, rc models.RecommendationContext) []models.Garment {
	eligible := make([]models.Garment, 0, len(garments))
	for _, g := range garments {
		if !seasonAllowed(g, rc.Weather) {
			continue
		}
		if !temperatureAllowed(g, rc.Temperature) {
			continue
		}
		eligible = append(eligible, g)
	}
	return eligible
}

func seasonAllowed(g models.Garment, weather models.Weather) bool {
	if weather == "" || g.Season == models.SeasonAllSeason {
		return true
	}
	allowed, ok := weatherSeasons[weather]
	if !ok {
		// unknown weather carries no signal
		return true
	}
	for _, s := range allowed {
		if g.Season == s {
			return true
		}
	}
	return false
}

func temperatureAllowed(g models.Garment, temperature *float64) bool {
	if temperature == nil {
		return true
	}
	material := strings.ToLower(g.Material)
	switch {
	case *temperature > hotThreshold:
		if g.Category == models.CategoryOuterwear {
			return false
		}
		for _, m := range hotExcludedMaterials {
			if strings.Contains(material, m) {
				return false
			}
		}
		return true
	case *temperature < coldThreshold:
		if g.Category == models.CategoryOuterwear {
			return true
		}
		for _, m := range warmMaterials {
			if strings.Contains(material, m) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
