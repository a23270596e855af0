package errors

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MaxSuggestions is the maximum number of names Suggest returns.
const MaxSuggestions = 3

// minAbbrev is the shortest name treated as an abbreviation of a longer one.
const minAbbrev = 3

// editBudget is how many edits separate a misspelling from a candidate.
// imp names are case sensitive and often very short (eq, or, mod), so two
// letter names get a single edit and the budget grows with length. A
// swapped pair of letters costs two edits.
func editBudget(name string) int {
	switch n := utf8.RuneCountInString(name); {
	case n <= 2:
		return 1
	case n <= 5:
		return 2
	default:
		return 3
	}
}

type candidate struct {
	name  string
	score int
}

// Suggest returns up to MaxSuggestions names from candidates that look like
// a misspelling or an abbreviation of name, closest first. A candidate is a
// misspelling when it is within the edit budget for name. It is an
// abbreviation when name has at least three runes, shares its first rune,
// and appears in it in order ("wfile" for "write_file"). Exact matches and
// repeated candidates are ignored.
func Suggest(name string, candidates []string) []string {
	if name == "" {
		return nil
	}
	budget := editBudget(name)
	seen := map[string]bool{name: true}
	var found []candidate
	for _, c := range candidates {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		if dist := fuzzy.LevenshteinDistance(name, c); dist <= budget {
			found = append(found, candidate{name: c, score: dist})
			continue
		}
		if abbreviates(name, c) {
			// Rank abbreviations after every misspelling.
			found = append(found, candidate{name: c, score: budget + fuzzy.RankMatch(name, c)})
		}
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].score != found[j].score {
			return found[i].score < found[j].score
		}
		return found[i].name < found[j].name
	})
	if len(found) > MaxSuggestions {
		found = found[:MaxSuggestions]
	}
	names := make([]string, len(found))
	for i, c := range found {
		names[i] = c.name
	}
	return names
}

func abbreviates(name, c string) bool {
	if utf8.RuneCountInString(name) < minAbbrev {
		return false
	}
	first, _ := utf8.DecodeRuneInString(name)
	cFirst, _ := utf8.DecodeRuneInString(c)
	return first == cFirst && fuzzy.Match(name, c)
}

// FormatSuggestions renders names as a hint, or "" when there are none.
func FormatSuggestions(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return "did you mean " + names[0] + "?"
	}
	last := len(names) - 1
	return "did you mean " + strings.Join(names[:last], ", ") + " or " + names[last] + "?"
}
