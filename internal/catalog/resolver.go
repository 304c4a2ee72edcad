package catalog

import (
	"sort"
	"strings"
)

// DefaultBoundaryMaxLen is the needle length up to which containment matches
// require word boundaries. The cutoff is an empirically tuned heuristic, not
// a principled rule, which is why it stays configurable.
const DefaultBoundaryMaxLen = 2

// Resolver maps free-form, user-entered names onto catalog entries. Matching
// runs as an ordered list of tiers, each a self-contained strategy, stopping
// at the first hit. Results are used for cosmetic enrichment only, so a miss
// is a normal outcome, not an error.
type Resolver struct {
	entries        []Entry
	sorted         []Entry // by longest alias, descending; catalog order on ties
	boundaryMaxLen int
	tiers          []tier
}

// tier is one matching strategy, tagged for auditability.
type tier struct {
	name  string
	match func(input string) (Entry, bool)
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithBoundaryMaxLen sets the needle length up to which containment matching
// requires word boundaries. Values below 1 keep the default.
func WithBoundaryMaxLen(n int) ResolverOption {
	return func(r *Resolver) {
		if n >= 1 {
			r.boundaryMaxLen = n
		}
	}
}

// WithEntries replaces the built-in catalog, mainly for tests.
func WithEntries(entries []Entry) ResolverOption {
	return func(r *Resolver) {
		r.entries = entries
	}
}

func NewResolver(options ...ResolverOption) *Resolver {
	r := &Resolver{
		entries:        Entries(),
		boundaryMaxLen: DefaultBoundaryMaxLen,
	}
	for _, option := range options {
		option(r)
	}

	// Longest alias first, so a short generic alias cannot pre-empt a more
	// specific brand later in the catalog. The sort is stable: ties keep
	// catalog order, which makes resolution deterministic across runs.
	r.sorted = make([]Entry, len(r.entries))
	copy(r.sorted, r.entries)
	sort.SliceStable(r.sorted, func(i, j int) bool {
		return longestAlias(r.sorted[i]) > longestAlias(r.sorted[j])
	})

	r.tiers = []tier{
		{"id", r.matchID},
		{"alias", r.matchAlias},
		{"contains", r.matchContains},
		{"contained", r.matchContained},
	}
	return r
}

// Resolve returns the best-matching catalog entry for a user-entered name,
// or false when nothing matches. Empty and whitespace-only input never
// matches.
func (r *Resolver) Resolve(name string) (Entry, bool) {
	input := strings.ToLower(strings.TrimSpace(name))
	if input == "" {
		return Entry{}, false
	}
	for _, t := range r.tiers {
		if e, ok := t.match(input); ok {
			return e, true
		}
	}
	return Entry{}, false
}

// matchID: the normalized input is exactly a canonical key.
func (r *Resolver) matchID(input string) (Entry, bool) {
	for _, e := range r.entries {
		if input == e.ID {
			return e, true
		}
	}
	return Entry{}, false
}

// matchAlias: the normalized input is exactly one of an entry's aliases.
func (r *Resolver) matchAlias(input string) (Entry, bool) {
	for _, e := range r.entries {
		for _, a := range e.Aliases {
			if input == a {
				return e, true
			}
		}
	}
	return Entry{}, false
}

// matchContains: an entry's display name or alias occurs inside the input.
// Needles short enough to false-match inside unrelated words must sit on
// word boundaries; longer ones may match as plain substrings.
func (r *Resolver) matchContains(input string) (Entry, bool) {
	for _, e := range r.sorted {
		for _, needle := range needles(e) {
			if r.containsNeedle(input, needle) {
				return e, true
			}
		}
	}
	return Entry{}, false
}

// matchContained: the opposite direction — a catalog alias or display name
// contains the input as a word. Recovers abbreviated input where the catalog
// holds the longer string.
func (r *Resolver) matchContained(input string) (Entry, bool) {
	for _, e := range r.sorted {
		for _, needle := range needles(e) {
			if containsWord(needle, input) {
				return e, true
			}
		}
	}
	return Entry{}, false
}

func (r *Resolver) containsNeedle(input, needle string) bool {
	if len(needle) <= r.boundaryMaxLen {
		return containsWord(input, needle)
	}
	return strings.Contains(input, needle)
}

func needles(e Entry) []string {
	out := make([]string, 0, len(e.Aliases)+1)
	out = append(out, strings.ToLower(e.DisplayName))
	out = append(out, e.Aliases...)
	return out
}

func longestAlias(e Entry) int {
	max := 0
	for _, a := range e.Aliases {
		if len(a) > max {
			max = len(a)
		}
	}
	return max
}

// containsWord reports whether w occurs in s on regexp-style \b boundaries:
// the characters adjacent to the occurrence must not be word characters.
func containsWord(s, w string) bool {
	if w == "" {
		return false
	}
	for i := 0; ; {
		j := strings.Index(s[i:], w)
		if j < 0 {
			return false
		}
		start := i + j
		end := start + len(w)
		if (start == 0 || !isWordChar(s[start-1])) && (end == len(s) || !isWordChar(s[end])) {
			return true
		}
		i = start + 1
	}
}

func isWordChar(c byte) bool {
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}
