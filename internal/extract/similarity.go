package extract

import "strings"

// Similarity scores two normalized texts by token overlap in [0,1]. Identical
// texts score 1; otherwise each word of a longer than three characters counts
// when b has a word equal to it, sharing a prefix with it, or containing it.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	if a == b {
		return 1
	}

	wa, wb := strings.Fields(a), strings.Fields(b)

	matched := 0

	for _, w := range wa {
		if len(w) <= 3 {
			continue
		}

		for _, v := range wb {
			if wordsMatch(w, v) {
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(max(len(wa), len(wb)))
}

func wordsMatch(w, v string) bool {
	if w == v || strings.Contains(v, w) {
		return true
	}

	return len(v) > 3 && strings.Contains(w, v)
}
