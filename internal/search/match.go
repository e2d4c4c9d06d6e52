package search

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MatchScore is the shared matching primitive. Both arguments must already be
// lowercase. Equality, including query+suffix equality for the platform's
// exact suffixes, scores 0. A name containing the query as a substring scores
// the edit distance between the full name and the query, so shorter
// containing names rank better than longer ones. Names that do not contain
// the query are not matches at all.
func MatchScore(nameLower, query string, exactSuffixes []string) (int, bool) {
	if nameLower == query {
		return 0, true
	}

	for _, suffix := range exactSuffixes {
		if nameLower == query+suffix {
			return 0, true
		}
	}

	if strings.Contains(nameLower, query) {
		return fuzzy.LevenshteinDistance(nameLower, query), true
	}

	return 0, false
}
