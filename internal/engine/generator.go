package engine

import (
	"sort"

	"github.com/daveonthegit/OutfAI/internal/models"
)

// maxAccessoryVariants bounds the accessory branching factor per (top, bottom)
// pair. Loosening it changes both the candidate count and which combinations
// reach the score threshold.
const maxAccessoryVariants = 2

// outfitCandidate is a scored combination of garments. It only lives within
// one request's computation; surviving candidates are materialized into
// models.Outfit by the engine.
type outfitCandidate struct {
	garments []models.Garment
	score    int
	reasons  []string
}

// generateCandidates enumerates every valid combination from the eligible
// garments: one candidate per (top, bottom, shoe) triple, a barefoot variant
// when the wardrobe has no shoes, and up to two accessory variants per
// (top, bottom) pair. Garment order within a candidate is always
// top, bottom, shoe, accessory with absent pieces omitted.
func generateCandidates(garments []models.Garment, mood models.Mood) []outfitCandidate {
	byCategory := make(map[models.Category][]models.Garment)
	for _, g := range garments {
		byCategory[g.Category] = append(byCategory[g.Category], g)
	}

	tops := byCategory[models.CategoryTop]
	bottoms := byCategory[models.CategoryBottom]
	if len(tops) == 0 || len(bottoms) == 0 {
		return nil
	}

	shoes := byCategory[models.CategoryShoes]
	accessories := byCategory[models.CategoryAccessory]
	// Accessories and the shoe used in accessory variants are picked in id
	// order, so results stay deterministic regardless of supplier ordering.
	sortByID(shoes)
	sortByID(accessories)
	if len(accessories) > maxAccessoryVariants {
		accessories = accessories[:maxAccessoryVariants]
	}

	var candidates []outfitCandidate
	for _, top := range tops {
		for _, bottom := range bottoms {
			if len(shoes) == 0 {
				candidates = append(candidates, newCandidate(mood, top, bottom))
			} else {
				for _, shoe := range shoes {
					candidates = append(candidates, newCandidate(mood, top, bottom, shoe))
				}
			}
			for _, accessory := range accessories {
				pieces := []models.Garment{top, bottom}
				if len(shoes) > 0 {
					pieces = append(pieces, shoes[0])
				}
				pieces = append(pieces, accessory)
				candidates = append(candidates, newCandidate(mood, pieces...))
			}
		}
	}
	return candidates
}

func newCandidate(mood models.Mood, pieces ...models.Garment) outfitCandidate {
	return outfitCandidate{
		garments: pieces,
		score:    scoreOutfit(pieces, mood),
		reasons:  buildReasons(pieces, mood),
	}
}

func sortByID(garments []models.Garment) {
	sort.Slice(garments, func(i, j int) bool {
		return garments[i].ID < garments[j].ID
	})
}
