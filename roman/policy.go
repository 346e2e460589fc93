package roman

import (
	"strings"

	"github.com/erraggy/convkit/convkiterrors"
)

// Policy controls how strictly numeral grammar is enforced.
type Policy int

const (
	// PolicyPermissive accepts any string of valid symbols and evaluates it
	// with the additive/subtractive scan. "IIII" is 4, "VV" is 10 and "IC" is 99.
	PolicyPermissive Policy = iota

	// PolicyStrict additionally requires the numeral to be the canonical
	// spelling of its value, which rejects "IIII", "VV", "IC" and anything
	// above MaxValue.
	PolicyStrict
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicyPermissive:
		return "permissive"
	case PolicyStrict:
		return "strict"
	default:
		return "unknown"
	}
}

func (p Policy) valid() bool {
	return p == PolicyPermissive || p == PolicyStrict
}

// ParsePolicy parses a policy name. An empty name selects PolicyPermissive.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "permissive":
		return PolicyPermissive, nil
	case "strict":
		return PolicyStrict, nil
	default:
		return PolicyPermissive, &convkiterrors.ConfigError{
			Option:  "policy",
			Value:   name,
			Message: "valid policies: permissive, strict",
		}
	}
}
