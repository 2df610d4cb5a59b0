package scoring

import "strings"

// KeywordSet matches a fixed list of terms as case-insensitive substrings.
type KeywordSet struct {
	terms []string
}

// NewKeywordSet normalizes the given terms. Blank entries are ignored and
// duplicates (after lower-casing) are collapsed so each term counts once.
func NewKeywordSet(terms []string) KeywordSet {
	seen := make(map[string]struct{}, len(terms))
	normalized := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		normalized = append(normalized, t)
	}
	return KeywordSet{terms: normalized}
}

// Len returns the number of distinct terms in the set.
func (k KeywordSet) Len() int {
	return len(k.terms)
}

// Matches returns the distinct terms found in text, in set order.
// A term occurring several times is reported once.
func (k KeywordSet) Matches(text string) []string {
	if len(k.terms) == 0 {
		return nil
	}
	lower := strings.ToLower(text)
	var found []string
	for _, t := range k.terms {
		if strings.Contains(lower, t) {
			found = append(found, t)
		}
	}
	return found
}
