package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daveonthegit/OutfAI/internal/models"
)

func TestGenerateCandidatesCounts(t *testing.T) {
	// 2 tops x 2 bottoms x (2 shoes + 2 accessory variants) = 16; the third
	// accessory must not add variants.
	wardrobe := []models.Garment{
		garment(1, models.CategoryTop, "white", "cotton", models.SeasonAllSeason),
		garment(2, models.CategoryTop, "blue", "linen", models.SeasonAllSeason),
		garment(3, models.CategoryBottom, "navy", "denim", models.SeasonAllSeason),
		garment(4, models.CategoryBottom, "gray", "wool", models.SeasonAllSeason),
		garment(5, models.CategoryShoes, "white", "canvas", models.SeasonAllSeason),
		garment(6, models.CategoryShoes, "black", "leather", models.SeasonAllSeason),
		garment(7, models.CategoryAccessory, "black", "leather", models.SeasonAllSeason),
		garment(8, models.CategoryAccessory, "orange", "knit", models.SeasonAllSeason),
		garment(9, models.CategoryAccessory, "red", "silk", models.SeasonAllSeason),
	}

	candidates := generateCandidates(wardrobe, "")

	assert.Len(t, candidates, 16)
	for _, c := range candidates {
		ids := make(map[int]bool)
		for _, g := range c.garments {
			assert.NotEqual(t, 9, g.ID, "third accessory should never be considered")
			ids[g.ID] = true
		}
		assert.Len(t, ids, len(c.garments), "candidate contains a duplicate garment")
	}
}

func TestGenerateCandidatesBarefootVariant(t *testing.T) {
	wardrobe := []models.Garment{
		garment(1, models.CategoryTop, "white", "cotton", models.SeasonAllSeason),
		garment(2, models.CategoryBottom, "navy", "denim", models.SeasonAllSeason),
		garment(3, models.CategoryAccessory, "black", "leather", models.SeasonAllSeason),
	}

	candidates := generateCandidates(wardrobe, "")

	// one barefoot top+bottom candidate plus one accessory variant
	require.Len(t, candidates, 2)
	assert.Len(t, candidates[0].garments, 2)
	assert.Len(t, candidates[1].garments, 3)
	for _, c := range candidates {
		for _, g := range c.garments {
			assert.NotEqual(t, models.CategoryShoes, g.Category)
		}
	}
}

func TestGenerateCandidatesPieceOrder(t *testing.T) {
	wardrobe := []models.Garment{
		garment(1, models.CategoryTop, "white", "cotton", models.SeasonAllSeason),
		garment(2, models.CategoryBottom, "navy", "denim", models.SeasonAllSeason),
		garment(3, models.CategoryShoes, "white", "canvas", models.SeasonAllSeason),
		garment(4, models.CategoryAccessory, "black", "leather", models.SeasonAllSeason),
	}

	candidates := generateCandidates(wardrobe, "")

	require.Len(t, candidates, 2)
	shoeCandidate := candidates[0]
	require.Len(t, shoeCandidate.garments, 3)
	assert.Equal(t, models.CategoryTop, shoeCandidate.garments[0].Category)
	assert.Equal(t, models.CategoryBottom, shoeCandidate.garments[1].Category)
	assert.Equal(t, models.CategoryShoes, shoeCandidate.garments[2].Category)

	accessoryCandidate := candidates[1]
	require.Len(t, accessoryCandidate.garments, 4)
	assert.Equal(t, models.CategoryAccessory, accessoryCandidate.garments[3].Category)
}

func TestGenerateCandidatesAccessoryVariantUsesFirstShoe(t *testing.T) {
	// shoes supplied out of id order; the accessory variant must pick id 3
	wardrobe := []models.Garment{
		garment(1, models.CategoryTop, "white", "cotton", models.SeasonAllSeason),
		garment(2, models.CategoryBottom, "navy", "denim", models.SeasonAllSeason),
		garment(7, models.CategoryShoes, "black", "leather", models.SeasonAllSeason),
		garment(3, models.CategoryShoes, "white", "canvas", models.SeasonAllSeason),
		garment(4, models.CategoryAccessory, "black", "leather", models.SeasonAllSeason),
	}

	candidates := generateCandidates(wardrobe, "")

	require.Len(t, candidates, 3)
	accessoryCandidate := candidates[2]
	require.Len(t, accessoryCandidate.garments, 4)
	assert.Equal(t, 3, accessoryCandidate.garments[2].ID)
}

func TestGenerateCandidatesRequiresTopAndBottom(t *testing.T) {
	onlyTops := []models.Garment{
		garment(1, models.CategoryTop, "white", "cotton", models.SeasonAllSeason),
		garment(2, models.CategoryShoes, "white", "canvas", models.SeasonAllSeason),
	}
	onlyBottoms := []models.Garment{
		garment(1, models.CategoryBottom, "navy", "denim", models.SeasonAllSeason),
		garment(2, models.CategoryAccessory, "black", "leather", models.SeasonAllSeason),
	}

	assert.Empty(t, generateCandidates(onlyTops, ""))
	assert.Empty(t, generateCandidates(onlyBottoms, ""))
	assert.Empty(t, generateCandidates(nil, ""))
}
