package lexicon

import (
	"sort"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// wordList matches a fixed set of keywords inside free text using an
// Aho-Corasick automaton built over a normalized alphabet: lowercased, with
// common leet-speak substitutions undone and punctuation/whitespace stripped,
// so "B.4.d person" still hits a "bad" entry.
//
// Matching is substring-based after normalization. Keyword tables must use
// words long enough not to collide with innocent substrings.
type wordList struct {
	machine *goahocorasick.Machine
	empty   bool
}

func newWordList(words []string) (*wordList, error) {
	if len(words) == 0 {
		return &wordList{empty: true}, nil
	}

	seen := make(map[string]struct{}, len(words))
	patterns := make([][]rune, 0, len(words))
	for _, w := range words {
		norm := normalizeRunes([]rune(w))
		if len(norm) == 0 {
			continue
		}
		// bilingual tables may repeat a spelling; the trie wants unique keys
		if _, dup := seen[string(norm)]; dup {
			continue
		}
		seen[string(norm)] = struct{}{}
		patterns = append(patterns, norm)
	}
	// the underlying double-array trie requires sorted input
	sort.Slice(patterns, func(i, j int) bool {
		return string(patterns[i]) < string(patterns[j])
	})

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &wordList{machine: m}, nil
}

// Hits returns every keyword occurrence found in text, in match order.
// Repeated occurrences of the same keyword are reported once each.
func (w *wordList) Hits(text string) []string {
	if w.empty || text == "" {
		return nil
	}
	norm := normalizeRunes([]rune(text))
	if len(norm) == 0 {
		return nil
	}
	terms := w.machine.MultiPatternSearch(norm, false)
	hits := make([]string, 0, len(terms))
	for _, t := range terms {
		hits = append(hits, string(t.Word))
	}
	return hits
}

// Count returns the number of keyword occurrences in text.
func (w *wordList) Count(text string) int {
	return len(w.Hits(text))
}

// normalizeRunes lowercases, undoes leet-speak substitutions and drops
// punctuation, symbols and whitespace.
func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if unicode.IsPunct(clean) || unicode.IsSpace(clean) || unicode.IsSymbol(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune maps common leet-speak characters back to their alphabet
// counterparts.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}
