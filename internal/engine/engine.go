// Package engine generates ranked, explainable outfit recommendations from a
// wardrobe and a request context. It is pure computation: filter garments for
// the context, enumerate combinations, score them on six criteria, then rank
// and truncate. It performs no I/O and keeps no state between calls, so
// concurrent requests need no coordination.
package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daveonthegit/OutfAI/internal/models"
)

const (
	// scoreThreshold is the minimum score an outfit must reach to be
	// included in the final result.
	scoreThreshold = 60
	defaultLimit   = 6
	maxLimit       = 10
)

const (
	msgEmptyWardrobe = "Your wardrobe is empty. Add some garments to get recommendations."
	msgNoEligible    = "No suitable outfit combinations could be formed for these conditions. Try adjusting the context or adding more garments."
	msgNoQualifying  = "No combinations scored high enough. Try a different mood or add more versatile pieces."
)

// Engine is a stateless recommendation generator. The clock and identifier
// source are injectable so results are reproducible in tests; neither feeds
// back into scoring or ordering.
type Engine struct {
	now   func() time.Time
	newID func() string
}

func New() *Engine {
	return &Engine{now: time.Now, newID: uuid.NewString}
}

// NewWithSources builds an engine with a fixed clock and id source.
func NewWithSources(now func() time.Time, newID func() string) *Engine {
	return &Engine{now: now, newID: newID}
}

// GenerateOutfits runs the full pipeline over the supplied wardrobe. It never
// fails: malformed-but-well-typed input degrades to an empty result whose
// Outcome and Explanation say why.
func (e *Engine) GenerateOutfits(garments []models.Garment, rc models.RecommendationContext) models.RecommendationResult {
	if len(garments) == 0 {
		return emptyResult(models.OutcomeEmptyWardrobe, msgEmptyWardrobe)
	}

	eligible := filterByContext(garments, rc)
	if len(eligible) == 0 {
		return emptyResult(models.OutcomeNoEligibleGarments, msgNoEligible)
	}

	candidates := generateCandidates(eligible, rc.Mood)
	if len(candidates) == 0 {
		// survivors exist but no top+bottom pair among them
		return emptyResult(models.OutcomeNoEligibleGarments, msgNoEligible)
	}

	selected := rankAndSelect(candidates, scoreThreshold, resultLimit(rc.Limit))
	if len(selected) == 0 {
		return emptyResult(models.OutcomeNoQualifyingOutfits, msgNoQualifying)
	}

	outfits := make([]models.Outfit, 0, len(selected))
	for _, candidate := range selected {
		outfits = append(outfits, e.materialize(candidate, rc))
	}

	return models.RecommendationResult{
		Outfits:        outfits,
		Explanation:    contextExplanation(rc),
		TotalGenerated: len(candidates),
		Outcome:        models.OutcomeOK,
	}
}

func (e *Engine) materialize(candidate outfitCandidate, rc models.RecommendationContext) models.Outfit {
	ids := make([]int, 0, len(candidate.garments))
	for _, g := range candidate.garments {
		ids = append(ids, g.ID)
	}
	return models.Outfit{
		ID:          e.newID(),
		OwnerID:     rc.OwnerID,
		GarmentIDs:  ids,
		Score:       candidate.score,
		Explanation: strings.Join(candidate.reasons, reasonSeparator),
		Mood:        rc.Mood,
		Weather:     rc.Weather,
		CreatedAt:   e.now().UTC(),
	}
}

func emptyResult(outcome models.Outcome, explanation string) models.RecommendationResult {
	return models.RecommendationResult{
		Outfits:        []models.Outfit{},
		Explanation:    explanation,
		TotalGenerated: 0,
		Outcome:        outcome,
	}
}

func resultLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

// contextExplanation summarizes which signals shaped the result, mentioning
// weather, mood and temperature in that order when present.
func contextExplanation(rc models.RecommendationContext) string {
	var parts []string
	if rc.Weather != "" {
		parts = append(parts, fmt.Sprintf("%s weather", rc.Weather))
	}
	if rc.Mood != "" {
		parts = append(parts, fmt.Sprintf("a %s mood", rc.Mood))
	}
	if rc.Temperature != nil {
		parts = append(parts, fmt.Sprintf("%.0f°C", *rc.Temperature))
	}
	if len(parts) == 0 {
		return "Outfits picked from your wardrobe."
	}
	return "Outfits picked for " + joinNatural(parts) + "."
}

func joinNatural(parts []string) string {
	switch len(parts) {
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}
}
