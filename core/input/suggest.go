package input

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"refine-calc/core/types"
)

// Suggest returns the known type name closest to word, if one is close enough
func Suggest(word string) (string, bool) {
	word = strings.ToLower(strings.TrimSpace(word))
	best := ""
	bestDist := -1
	for _, rt := range types.ResourceTypes() {
		cand := rt.String()
		dist := levenshtein.ComputeDistance(word, cand)
		if dist > levenshteinLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best, bestDist >= 0
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
