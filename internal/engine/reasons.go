package engine

import (
	"fmt"
	"strings"

	"github.com/daveonthegit/OutfAI/internal/models"
)

// reasonSeparator joins an outfit's reasons into its explanation string.
const reasonSeparator = " • "

// buildReasons produces the human-readable notes for one candidate. The
// order is fixed: piece balance, neutral palette, style, occasion,
// versatility, then the mood closing line. Each note only appears when its
// condition holds; the closing line always does.
func buildReasons(garments []models.Garment, mood models.Mood) []string {
	var reasons []string

	if len(garments) >= 3 {
		reasons = append(reasons, fmt.Sprintf("Balanced %d-piece combination", len(garments)))
	}
	if anyNeutralColor(garments) {
		reasons = append(reasons, "Grounded in neutral tones")
	}
	if note := styleReason(garments); note != "" {
		reasons = append(reasons, note)
	}
	if note := occasionReason(garments); note != "" {
		reasons = append(reasons, note)
	}
	if countWithTag(garments, "versatile-high") >= 2 {
		reasons = append(reasons, "Built from versatile staples")
	}
	reasons = append(reasons, moodClosing(mood))

	return reasons
}

func anyNeutralColor(garments []models.Garment) bool {
	for _, g := range garments {
		if neutralColors[strings.ToLower(g.PrimaryColor)] {
			return true
		}
	}
	return false
}

func styleReason(garments []models.Garment) string {
	counts := styleTagCounts(garments)
	if len(counts) == 1 {
		for style := range counts {
			return fmt.Sprintf("Cohesive %s style", style)
		}
	}
	if counts["classic"] > 0 && (counts["bold"] > 0 || counts["minimalist"] > 0) {
		return "Classic base with a modern contrast"
	}
	return ""
}

func occasionReason(garments []models.Garment) string {
	for _, g := range garments {
		if hasTag(g, "formal") {
			return "Polished enough for dressier settings"
		}
	}
	for _, g := range garments {
		if hasTag(g, "casual") {
			return "Comfortable and approachable"
		}
	}
	return ""
}

func countWithTag(garments []models.Garment, tag string) int {
	n := 0
	for _, g := range garments {
		if hasTag(g, tag) {
			n++
		}
	}
	return n
}

func moodClosing(mood models.Mood) string {
	if line, ok := moodClosings[mood]; ok {
		return line
	}
	return genericClosing
}
