package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daveonthegit/OutfAI/internal/models"
)

func TestColorHarmonyScore(t *testing.T) {
	tests := []struct {
		name   string
		colors []string
		want   int
	}{
		{"single garment not scored", []string{"blue"}, 0},
		{"complementary pair", []string{"blue", "orange"}, 15},
		{"pair fires once despite extra neutral", []string{"blue", "orange", "black"}, 15},
		{"case-insensitive pair", []string{"Blue", "ORANGE"}, 15},
		{"monochrome neutral stacks", []string{"navy", "navy"}, 18},
		{"monochrome non-neutral", []string{"red", "red"}, 10},
		{"mostly neutral", []string{"black", "white", "red"}, 8},
		{"two pairs capped", []string{"blue", "orange", "red", "green"}, 20},
		{"nothing in common", []string{"red", "blue"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			garments := make([]models.Garment, 0, len(tt.colors))
			for i, color := range tt.colors {
				garments = append(garments, garment(i+1, models.CategoryTop, color, "", models.SeasonAllSeason))
			}
			assert.Equal(t, tt.want, colorHarmonyScore(garments))
		})
	}
}

func TestMoodAlignmentScore(t *testing.T) {
	formal := []models.Garment{
		garment(1, models.CategoryTop, "black", "silk", models.SeasonAllSeason, "structured"),
		garment(2, models.CategoryBottom, "gray", "wool", models.SeasonAllSeason),
	}

	// silk+structured on the first garment, wool on the second: 3 matches
	assert.Equal(t, 9, moodAlignmentScore(formal, models.MoodFormal))
	assert.Equal(t, 0, moodAlignmentScore(formal, models.MoodEnergetic))
	assert.Equal(t, 0, moodAlignmentScore(formal, ""))
	assert.Equal(t, 0, moodAlignmentScore(formal, "mysterious"))
}

func TestMoodAlignmentScoreCapped(t *testing.T) {
	// three garments x three keyword matches x 3 points = 27, capped at 20
	garments := []models.Garment{
		garment(1, models.CategoryTop, "black", "silk and wool", models.SeasonAllSeason, "structured"),
		garment(2, models.CategoryBottom, "gray", "silk and wool", models.SeasonAllSeason, "structured"),
		garment(3, models.CategoryShoes, "black", "silk and wool", models.SeasonAllSeason, "structured"),
	}

	assert.Equal(t, 20, moodAlignmentScore(garments, models.MoodFormal))
}

func TestStyleCoherenceScore(t *testing.T) {
	tests := []struct {
		name string
		tags [][]string
		want int
	}{
		{"single garment not scored", [][]string{{"classic"}}, 0},
		{"no style tags baseline", [][]string{{"weekend"}, {"work"}}, 5},
		{"shared style", [][]string{{"classic"}, {"classic", "work"}}, 15},
		{"classic with minimalist", [][]string{{"classic"}, {"minimalist"}}, 10},
		{"classic with bold", [][]string{{"classic"}, {"bold"}}, 10},
		{"unrelated styles baseline", [][]string{{"trendy"}, {"avant-garde"}}, 5},
		{"duplicate tag on one garment is not shared", [][]string{{"classic", "classic"}, {"trendy"}}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			garments := make([]models.Garment, 0, len(tt.tags))
			for i, tags := range tt.tags {
				garments = append(garments, garment(i+1, models.CategoryTop, "white", "", models.SeasonAllSeason, tags...))
			}
			assert.Equal(t, tt.want, styleCoherenceScore(garments))
		})
	}
}

func TestOccasionMatchScore(t *testing.T) {
	garments := []models.Garment{
		garment(1, models.CategoryTop, "red", "", models.SeasonAllSeason, "casual", "weekend"),
		garment(2, models.CategoryBottom, "blue", "", models.SeasonAllSeason, "night"),
	}

	// bold targets night/weekend/casual: all three tags match
	assert.Equal(t, 6, occasionMatchScore(garments, models.MoodBold))
	// formal targets formal/work/smart-casual: none match
	assert.Equal(t, 0, occasionMatchScore(garments, models.MoodFormal))
	assert.Equal(t, 0, occasionMatchScore(garments, ""))
}

func TestOccasionMatchScoreIgnoresOpenTags(t *testing.T) {
	garments := []models.Garment{
		garment(1, models.CategoryTop, "red", "", models.SeasonAllSeason, "beach-party", "weekend"),
	}

	// beach-party is not in the occasion vocabulary
	assert.Equal(t, 2, occasionMatchScore(garments, models.MoodCasual))
}

func TestVersatilityScore(t *testing.T) {
	garments := []models.Garment{
		garment(1, models.CategoryTop, "white", "", models.SeasonAllSeason, "versatile-high"),
		garment(2, models.CategoryBottom, "navy", "", models.SeasonAllSeason, "versatile-medium"),
		garment(3, models.CategoryShoes, "black", "", models.SeasonAllSeason),
	}

	assert.Equal(t, 3, versatilityScore(garments))
}

func TestVersatilityScoreCapped(t *testing.T) {
	garments := make([]models.Garment, 0, 5)
	for i := 0; i < 5; i++ {
		garments = append(garments, garment(i+1, models.CategoryTop, "white", "", models.SeasonAllSeason, "versatile-high"))
	}

	assert.Equal(t, 8, versatilityScore(garments))
}

func TestDiversityScore(t *testing.T) {
	two := []models.Garment{
		garment(1, models.CategoryTop, "white", "", models.SeasonAllSeason),
		garment(2, models.CategoryBottom, "navy", "", models.SeasonAllSeason),
	}
	three := append(two, garment(3, models.CategoryShoes, "black", "", models.SeasonAllSeason))

	assert.Equal(t, 5, diversityScore(two))
	assert.Equal(t, 10, diversityScore(three))
}

func TestScoreOutfitBounds(t *testing.T) {
	// bare minimum two-piece outfit: base 50 + style baseline 5 + diversity 5
	minimal := []models.Garment{
		garment(1, models.CategoryTop, "red", "", models.SeasonAllSeason),
		garment(2, models.CategoryBottom, "purple", "", models.SeasonAllSeason),
	}
	assert.Equal(t, 60, scoreOutfit(minimal, ""))

	// everything stacked: the total must cap at 100
	maxed := []models.Garment{
		garment(1, models.CategoryTop, "blue", "silk", models.SeasonAllSeason, "classic", "formal", "work", "versatile-high"),
		garment(2, models.CategoryBottom, "orange", "wool", models.SeasonAllSeason, "classic", "formal", "work", "versatile-high"),
		garment(3, models.CategoryShoes, "black", "structured leather", models.SeasonAllSeason, "classic", "smart-casual", "versatile-high"),
		garment(4, models.CategoryAccessory, "white", "silk", models.SeasonAllSeason, "classic", "work", "versatile-high"),
	}
	assert.Equal(t, 100, scoreOutfit(maxed, models.MoodFormal))
}

func TestComplementaryPairRaisesScore(t *testing.T) {
	pair := []models.Garment{
		garment(1, models.CategoryTop, "blue", "", models.SeasonAllSeason),
		garment(2, models.CategoryBottom, "orange", "", models.SeasonAllSeason),
	}
	noPair := []models.Garment{
		garment(1, models.CategoryTop, "red", "", models.SeasonAllSeason),
		garment(2, models.CategoryBottom, "purple", "", models.SeasonAllSeason),
	}

	assert.Equal(t, 15, scoreOutfit(pair, "")-scoreOutfit(noPair, ""))
}

func TestBuildReasonsOrderAndContent(t *testing.T) {
	garments := []models.Garment{
		garment(1, models.CategoryTop, "black", "silk", models.SeasonAllSeason, "classic", "formal", "versatile-high"),
		garment(2, models.CategoryBottom, "gray", "wool", models.SeasonAllSeason, "classic", "work", "versatile-high"),
		garment(3, models.CategoryShoes, "black", "leather", models.SeasonAllSeason, "classic"),
	}

	reasons := buildReasons(garments, models.MoodFormal)

	require.Equal(t, []string{
		"Balanced 3-piece combination",
		"Grounded in neutral tones",
		"Cohesive classic style",
		"Polished enough for dressier settings",
		"Built from versatile staples",
		"Sharp and put together",
	}, reasons)
}

func TestBuildReasonsMinimal(t *testing.T) {
	garments := []models.Garment{
		garment(1, models.CategoryTop, "red", "", models.SeasonAllSeason),
		garment(2, models.CategoryBottom, "purple", "", models.SeasonAllSeason),
	}

	reasons := buildReasons(garments, "")

	require.Equal(t, []string{genericClosing}, reasons)
}

func TestBuildReasonsClassicModernContrast(t *testing.T) {
	garments := []models.Garment{
		garment(1, models.CategoryTop, "red", "", models.SeasonAllSeason, "classic"),
		garment(2, models.CategoryBottom, "purple", "", models.SeasonAllSeason, "bold"),
	}

	reasons := buildReasons(garments, "")

	assert.Contains(t, reasons, "Classic base with a modern contrast")
}

func TestBuildReasonsCasualNote(t *testing.T) {
	garments := []models.Garment{
		garment(1, models.CategoryTop, "red", "", models.SeasonAllSeason, "weekend"),
		garment(2, models.CategoryBottom, "purple", "", models.SeasonAllSeason, "casual"),
	}

	reasons := buildReasons(garments, models.MoodCozy)

	assert.Contains(t, reasons, "Comfortable and approachable")
	assert.Equal(t, "Comfortable and warm", reasons[len(reasons)-1])
}
