package engine

import (
	"strings"

	"github.com/daveonthegit/OutfAI/internal/models"
)

const (
	baseScore = 50
	maxScore  = 100

	maxColorHarmony  = 20
	maxMoodAlignment = 20
	maxStyleScore    = 15
	maxOccasionScore = 12
	maxVersatility   = 8
)

// scoreOutfit combines the six sub-scores onto the base score and caps the
// total. The cap only binds when several bonuses stack near their maxima.
func scoreOutfit(garments []models.Garment, mood models.Mood) int {
	score := baseScore +
		colorHarmonyScore(garments) +
		moodAlignmentScore(garments, mood) +
		styleCoherenceScore(garments) +
		occasionMatchScore(garments, mood) +
		versatilityScore(garments) +
		diversityScore(garments)
	if score > maxScore {
		score = maxScore
	}
	return score
}

// colorHarmonyScore rewards complementary color pairs, monochrome outfits and
// mostly-neutral palettes. Colors are matched case-insensitively.
func colorHarmonyScore(garments []models.Garment) int {
	if len(garments) < 2 {
		return 0
	}

	colors := make(map[string]bool, len(garments))
	neutrals := 0
	for _, g := range garments {
		color := strings.ToLower(g.PrimaryColor)
		colors[color] = true
		if neutralColors[color] {
			neutrals++
		}
	}

	score := 0
	for _, pair := range complementaryColorPairs {
		if colors[pair[0]] && colors[pair[1]] {
			score += 15
		}
	}
	if len(colors) == 1 {
		score += 10
	}
	if neutrals >= len(garments)-1 {
		score += 8
	}
	if score > maxColorHarmony {
		score = maxColorHarmony
	}
	return score
}

// moodAlignmentScore counts substring matches of the mood's target keywords
// against each garment's material and tags, 3 points per match.
func moodAlignmentScore(garments []models.Garment, mood models.Mood) int {
	keywords, ok := moodKeywords[mood]
	if !ok {
		return 0
	}

	score := 0
	for _, g := range garments {
		haystack := garmentText(g)
		for _, keyword := range keywords {
			if strings.Contains(haystack, keyword) {
				score += 3
			}
		}
	}
	if score > maxMoodAlignment {
		score = maxMoodAlignment
	}
	return score
}

// styleCoherenceScore looks at the style keywords tagged across the outfit:
// a keyword shared by two garments signals a deliberate style, a
// classic/modern pairing still works together, anything else gets the
// baseline.
func styleCoherenceScore(garments []models.Garment) int {
	if len(garments) < 2 {
		return 0
	}

	counts := styleTagCounts(garments)
	if len(counts) == 0 {
		return 5
	}
	for _, n := range counts {
		if n > 1 {
			return 15
		}
	}
	if counts["classic"] > 0 && (counts["minimalist"] > 0 || counts["bold"] > 0) {
		return 10
	}
	return 5
}

// styleTagCounts counts, per style keyword, how many garments carry it.
// Duplicate tags on one garment count once.
func styleTagCounts(garments []models.Garment) map[string]int {
	counts := make(map[string]int)
	for _, g := range garments {
		seen := make(map[string]bool)
		for _, t := range g.Tags {
			tag := strings.ToLower(t)
			if styleKeywords[tag] && !seen[tag] {
				counts[tag]++
				seen[tag] = true
			}
		}
	}
	return counts
}

// occasionMatchScore awards 2 points for every garment tag that is both in
// the occasion vocabulary and targeted by the active mood.
func occasionMatchScore(garments []models.Garment, mood models.Mood) int {
	targets, ok := moodOccasions[mood]
	if !ok {
		return 0
	}

	score := 0
	for _, g := range garments {
		for _, t := range g.Tags {
			tag := strings.ToLower(t)
			if occasionVocabulary[tag] && targets[tag] {
				score += 2
			}
		}
	}
	if score > maxOccasionScore {
		score = maxOccasionScore
	}
	return score
}

func versatilityScore(garments []models.Garment) int {
	score := 0
	for _, g := range garments {
		if hasTag(g, "versatile-high") {
			score += 2
		} else if hasTag(g, "versatile-medium") {
			score++
		}
	}
	if score > maxVersatility {
		score = maxVersatility
	}
	return score
}

func diversityScore(garments []models.Garment) int {
	if len(garments) >= 3 {
		return 10
	}
	return 5
}

func garmentText(g models.Garment) string {
	parts := make([]string, 0, len(g.Tags)+1)
	parts = append(parts, strings.ToLower(g.Material))
	for _, t := range g.Tags {
		parts = append(parts, strings.ToLower(t))
	}
	return strings.Join(parts, " ")
}

func hasTag(g models.Garment, tag string) bool {
	for _, t := range g.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
