package names

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules configures the normalized-match step of the canonicalizer. The rule
// set is plain data so deployments can extend it without a rebuild.
type Rules struct {
	// Suffixes are lower-case tokens stripped from names before comparison:
	// club-type abbreviations and city/country qualifiers.
	Suffixes []string `yaml:"suffixes"`
	// Punctuation holds the individual characters removed from names.
	Punctuation string `yaml:"punctuation"`
}

// DefaultRules returns the built-in rule set covering the tournament's
// team-name variants.
func DefaultRules() Rules {
	return Rules{
		Suffixes: []string{
			" fc", " cf", " rj", " fr", " hd", " sc", " ac",
			" c.f.", " c. f.", " c f",
			" de ", " e ", " ba",
			" münchen", " riyadh", " abu dhabi", " casablanca", " hyundai",
			" football club", " de futebol e regatas",
			"esportiva ", "athletic ",
		},
		Punctuation: ".()-&",
	}
}

// LoadRules reads a rule set from a YAML file. Missing fields fall back to
// the defaults so a config file can override just one list.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("reading rules file: %w", err)
	}

	rules := DefaultRules()
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("parsing rules file %s: %w", path, err)
	}
	return rules, nil
}
