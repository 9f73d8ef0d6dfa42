package core

import (
	"sort"
	"strings"

	"github.com/hamidzr/shortcutai/model"
	"github.com/sahilm/fuzzy"
)

// IsDirectMatch checks if a string contains a keyword. An upper case letter
// in the keyword makes the match case sensitive.
func IsDirectMatch(s, keyword string) bool {
	if strings.ToLower(keyword) != keyword {
		return strings.Contains(s, keyword)
	}
	return strings.Contains(strings.ToLower(s), keyword)
}

// filterOutUnlikelyMatches takes a sorted list of fuzzy matches and keeps
// the ones with a positive score if there are any.
func filterOutUnlikelyMatches(matches []fuzzy.Match) []fuzzy.Match {
	if len(matches) == 0 || matches[0].Score <= 0 {
		return matches
	}
	positive := make([]fuzzy.Match, 0, len(matches))
	for _, match := range matches {
		if match.Score > 0 {
			positive = append(positive, match)
		}
	}
	return positive
}

// FindProfiles matches profile names against query. Direct substring
// matches come first in their stored order, then fuzzy matches by score.
// An empty query returns every profile.
func FindProfiles(profiles []model.Profile, query string) []model.Profile {
	query = strings.TrimSpace(query)
	if query == "" {
		return profiles
	}

	results := make([]model.Profile, 0)
	direct := make(map[int]bool)
	for i, p := range profiles {
		if IsDirectMatch(p.Name, query) {
			results = append(results, p)
			direct[i] = true
		}
	}

	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}
	matches := fuzzy.Find(query, names)
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Index < matches[j].Index
		}
		return matches[i].Score > matches[j].Score
	})
	for _, match := range filterOutUnlikelyMatches(matches) {
		if !direct[match.Index] {
			results = append(results, profiles[match.Index])
		}
	}
	return results
}
