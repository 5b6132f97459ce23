package engine

import "sort"

// rankAndSelect sorts candidates by score descending, drops those below the
// threshold and truncates to limit. The sort is stable so ties keep their
// generation order, which keeps results deterministic.
func rankAndSelect(candidates []outfitCandidate, threshold, limit int) []outfitCandidate {
	ranked := make([]outfitCandidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	qualified := make([]outfitCandidate, 0, len(ranked))
	for _, c := range ranked {
		if c.score >= threshold {
			qualified = append(qualified, c)
		}
	}
	if len(qualified) > limit {
		qualified = qualified[:limit]
	}
	return qualified
}
