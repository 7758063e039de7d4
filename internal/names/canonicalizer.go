package names

import (
	"sort"
	"strings"
)

// EmptyName is returned for empty or whitespace-only input.
const EmptyName = "N/A_EmptyName"

// sentinelPrefix marks best-effort values the pipeline could not resolve.
const sentinelPrefix = "N/A_"

// Canonicalizer resolves arbitrary team-name spellings to canonical names.
// It is immutable after construction and safe for concurrent reads.
type Canonicalizer struct {
	rules     Rules
	aliases   map[string]string
	canonical map[string]struct{}
	lowerKeys map[string]string // lower-cased alias key -> canonical
	normIndex map[string]string // normalized alias key or value -> canonical
}

// NewCanonicalizer builds a resolver over an alias table. The table maps
// observed spellings (including numeric external ids rendered as strings) to
// canonical names; it is copied, so later mutation of the argument has no
// effect.
func NewCanonicalizer(aliases map[string]string, rules Rules) *Canonicalizer {
	c := &Canonicalizer{
		rules:     rules,
		aliases:   make(map[string]string, len(aliases)),
		canonical: make(map[string]struct{}, len(aliases)),
		lowerKeys: make(map[string]string, len(aliases)),
		normIndex: make(map[string]string, 2*len(aliases)),
	}

	// Deterministic iteration: older entries win on collisions in the
	// derived indexes.
	keys := make([]string, 0, len(aliases))
	for k := range aliases {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		canonical := aliases[key]
		c.aliases[key] = canonical
		c.canonical[canonical] = struct{}{}

		lower := strings.ToLower(key)
		if _, ok := c.lowerKeys[lower]; !ok {
			c.lowerKeys[lower] = canonical
		}

		if norm := c.normalize(key); norm != "" {
			if _, ok := c.normIndex[norm]; !ok {
				c.normIndex[norm] = canonical
			}
		}
		if norm := c.normalize(canonical); norm != "" {
			if _, ok := c.normIndex[norm]; !ok {
				c.normIndex[norm] = canonical
			}
		}
	}

	return c
}

// Canonicalize maps a raw team name to its canonical form. It never fails:
// unknown names are returned stripped as a best-effort canonical value, and
// empty input yields the EmptyName sentinel. Resolution order: exact alias
// key, exact canonical value, case-insensitive key, suffix/punctuation
// normalized key or value, numeric alias, passthrough.
func (c *Canonicalizer) Canonicalize(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return EmptyName
	}

	if canonical, ok := c.aliases[name]; ok {
		return canonical
	}
	if _, ok := c.canonical[name]; ok {
		return name
	}
	if canonical, ok := c.lowerKeys[strings.ToLower(name)]; ok {
		return canonical
	}
	if norm := c.normalize(name); norm != "" {
		if canonical, ok := c.normIndex[norm]; ok {
			return canonical
		}
	}
	if isDigits(name) {
		if canonical, ok := c.aliases[name]; ok {
			return canonical
		}
	}

	return name
}

// IsSentinel reports whether a canonicalized value is one of the
// unresolved-state sentinels rather than a real team name.
func IsSentinel(name string) bool {
	return strings.HasPrefix(name, sentinelPrefix)
}

// normalize lower-cases, strips the configured suffix tokens and punctuation
// characters, and removes all whitespace.
func (c *Canonicalizer) normalize(name string) string {
	s := strings.ToLower(name)
	for _, suffix := range c.rules.Suffixes {
		s = strings.ReplaceAll(s, suffix, "")
	}
	for _, punc := range c.rules.Punctuation {
		s = strings.ReplaceAll(s, string(punc), "")
	}
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
