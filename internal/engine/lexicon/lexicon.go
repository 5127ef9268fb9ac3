// Package lexicon holds the static keyword and pattern tables every
// classifier in the engine reads: toxicity, spam, explicit content,
// sentiment, personality traits, lifestyle categories.
//
// A Lexicon is immutable after construction and safe for concurrent use.
// It is injected into each analyzer rather than shared as package state, so
// tests and future locales can swap tables without global mutation.
package lexicon

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Tables is the raw, data-only definition of a lexicon. All fields are plain
// words, phrases or regex sources so the tables can be extended without
// touching any algorithm.
type Tables struct {
	// word lists (matched leet-aware via Aho-Corasick)
	Toxic     []string
	Vulgar    []string
	Positive  []string
	Negative  []string
	Financial []string

	// regex pattern groups, one score contribution per matched group
	Aggressive []string
	Commercial []string
	Explicit   []string
	Phishing   []string

	// single patterns
	URL          string
	Contact      string
	Abbreviation string

	Disposable  []string // disposable/placeholder email patterns
	GenericBios []string // boilerplate bio phrases

	Traits    map[string][]string // trait name -> keywords
	Lifestyle map[string][]string // lifestyle category -> keywords
	Intents   map[string][]string // relationship intent -> keywords
	Stopwords []string
}

// Lexicon is the compiled, immutable form of Tables.
type Lexicon struct {
	toxic     *wordList
	vulgar    *wordList
	positive  *wordList
	negative  *wordList
	financial *wordList

	aggressive []*regexp.Regexp
	commercial []*regexp.Regexp
	explicit   []*regexp.Regexp
	phishing   []*regexp.Regexp
	disposable []*regexp.Regexp

	url          *regexp.Regexp
	contact      *regexp.Regexp
	abbreviation *regexp.Regexp

	genericBios []string
	traits      map[string][]string
	lifestyle   map[string][]string
	intents     map[string][]string
	stopwords   map[string]struct{}
}

// New compiles a Lexicon from raw tables.
func New(t Tables) (*Lexicon, error) {
	l := &Lexicon{
		traits:    t.Traits,
		lifestyle: t.Lifestyle,
		intents:   t.Intents,
		stopwords: make(map[string]struct{}, len(t.Stopwords)),
	}

	var err error
	build := func(name string, words []string) *wordList {
		if err != nil {
			return nil
		}
		var wl *wordList
		if wl, err = newWordList(words); err != nil {
			err = fmt.Errorf("building %s word list: %w", name, err)
		}
		return wl
	}
	l.toxic = build("toxic", t.Toxic)
	l.vulgar = build("vulgar", t.Vulgar)
	l.positive = build("positive", t.Positive)
	l.negative = build("negative", t.Negative)
	l.financial = build("financial", t.Financial)
	if err != nil {
		return nil, err
	}

	compile := func(name string, sources []string) []*regexp.Regexp {
		if err != nil {
			return nil
		}
		out := make([]*regexp.Regexp, 0, len(sources))
		for _, src := range sources {
			re, cerr := regexp.Compile(src)
			if cerr != nil {
				err = fmt.Errorf("compiling %s pattern %q: %w", name, src, cerr)
				return nil
			}
			out = append(out, re)
		}
		return out
	}
	l.aggressive = compile("aggressive", t.Aggressive)
	l.commercial = compile("commercial", t.Commercial)
	l.explicit = compile("explicit", t.Explicit)
	l.phishing = compile("phishing", t.Phishing)
	l.disposable = compile("disposable", t.Disposable)
	if err != nil {
		return nil, err
	}

	one := func(name, src string) *regexp.Regexp {
		if err != nil || src == "" {
			return nil
		}
		re, cerr := regexp.Compile(src)
		if cerr != nil {
			err = fmt.Errorf("compiling %s pattern: %w", name, cerr)
		}
		return re
	}
	l.url = one("url", t.URL)
	l.contact = one("contact", t.Contact)
	l.abbreviation = one("abbreviation", t.Abbreviation)
	if err != nil {
		return nil, err
	}

	for _, p := range t.GenericBios {
		l.genericBios = append(l.genericBios, strings.ToLower(p))
	}
	for _, w := range t.Stopwords {
		l.stopwords[strings.ToLower(w)] = struct{}{}
	}
	return l, nil
}

// Default returns the built-in bilingual (Spanish/English) lexicon.
// The built-in tables are static and covered by tests, so a compile failure
// here is a programming error.
func Default() *Lexicon {
	l, err := New(builtinTables)
	if err != nil {
		panic(fmt.Sprintf("lexicon: built-in tables failed to compile: %v", err))
	}
	return l
}

// --- word list hits ---

func (l *Lexicon) ToxicHits(text string) []string     { return l.toxic.Hits(text) }
func (l *Lexicon) VulgarHits(text string) []string    { return l.vulgar.Hits(text) }
func (l *Lexicon) PositiveCount(text string) int      { return l.positive.Count(text) }
func (l *Lexicon) NegativeCount(text string) int      { return l.negative.Count(text) }
func (l *Lexicon) FinancialHits(text string) []string { return l.financial.Hits(text) }

// --- pattern groups: number of distinct matched categories ---

func (l *Lexicon) AggressiveMatches(text string) int { return countMatched(l.aggressive, text) }
func (l *Lexicon) CommercialMatches(text string) int { return countMatched(l.commercial, text) }
func (l *Lexicon) ExplicitMatches(text string) int   { return countMatched(l.explicit, text) }
func (l *Lexicon) PhishingMatches(text string) int   { return countMatched(l.phishing, text) }

func countMatched(patterns []*regexp.Regexp, text string) int {
	n := 0
	for _, re := range patterns {
		if re.MatchString(text) {
			n++
		}
	}
	return n
}

// --- single patterns ---

// URLCount returns the number of URL-looking tokens in text.
func (l *Lexicon) URLCount(text string) int {
	if l.url == nil {
		return 0
	}
	return len(l.url.FindAllString(text, -1))
}

// ContactFound reports whether text carries a phone number or an off-platform
// contact handle.
func (l *Lexicon) ContactFound(text string) bool {
	return l.contact != nil && l.contact.MatchString(text)
}

// AbbreviationCount returns the number of chat-abbreviation tokens in text.
func (l *Lexicon) AbbreviationCount(text string) int {
	if l.abbreviation == nil {
		return 0
	}
	return len(l.abbreviation.FindAllString(text, -1))
}

// IsGenericBio reports whether bio is dominated by a known boilerplate
// phrase.
func (l *Lexicon) IsGenericBio(bio string) bool {
	lower := strings.ToLower(bio)
	for _, phrase := range l.genericBios {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// IsDisposableEmail reports whether email matches a disposable or placeholder
// address pattern.
func (l *Lexicon) IsDisposableEmail(email string) bool {
	for _, re := range l.disposable {
		if re.MatchString(email) {
			return true
		}
	}
	return false
}

// --- category tables ---

// TraitKeywords returns the keyword list for a named personality trait,
// nil for unknown traits.
func (l *Lexicon) TraitKeywords(trait string) []string { return l.traits[trait] }

// LifestyleNames returns the fixed lifestyle category names.
func (l *Lexicon) LifestyleNames() []string { return sortedKeys(l.lifestyle) }

// LifestyleKeywords returns the keyword list for a lifestyle category.
func (l *Lexicon) LifestyleKeywords(name string) []string { return l.lifestyle[name] }

// IntentNames returns the fixed relationship-intent category names.
func (l *Lexicon) IntentNames() []string { return sortedKeys(l.intents) }

// IntentKeywords returns the keyword list for a relationship-intent category.
func (l *Lexicon) IntentKeywords(name string) []string { return l.intents[name] }

// IsStopword reports whether w is a function word excluded from
// significant-word overlap.
func (l *Lexicon) IsStopword(w string) bool {
	_, ok := l.stopwords[strings.ToLower(w)]
	return ok
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// deterministic order matters for reproducible scoring output
	sort.Strings(keys)
	return keys
}
