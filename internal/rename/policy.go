package rename

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:generate go tool stringer -type=PolicyEnum -output=policy_string.go

// PolicyEnum decides what happens to document keys absent from the rename
// table.
type PolicyEnum int

const (
	_ PolicyEnum = iota // skip zero value, use it as a default (invalid) value for PolicyEnum

	PolicyKeep  // keep the key unchanged
	PolicySkip  // drop the entry
	PolicyError // fail the whole transformation
)

// ParsePolicy maps the YAML spelling of a policy to its enum value.
func ParsePolicy(s string) (PolicyEnum, error) {
	switch s {
	case "keep":
		return PolicyKeep, nil
	case "skip":
		return PolicySkip, nil
	case "error":
		return PolicyError, nil
	default:
		return 0, fmt.Errorf("unknown on_missing policy %q (want keep, skip or error)", s)
	}
}

// Word returns the YAML spelling of the policy.
func (p PolicyEnum) Word() string {
	switch p {
	case PolicyKeep:
		return "keep"
	case PolicySkip:
		return "skip"
	case PolicyError:
		return "error"
	default:
		return ""
	}
}

// UnmarshalYAML implements custom YAML unmarshaling for PolicyEnum,
// accepting the lowercase policy words.
func (p *PolicyEnum) UnmarshalYAML(node *yaml.Node) error {
	var s string

	err := node.Decode(&s)
	if err != nil {
		return err
	}

	parsed, err := ParsePolicy(s)
	if err != nil {
		return err
	}

	*p = parsed

	return nil
}

// MarshalYAML implements custom YAML marshaling for PolicyEnum.
func (p PolicyEnum) MarshalYAML() (any, error) {
	if p.Word() == "" {
		return nil, fmt.Errorf("cannot marshal invalid policy %s", p)
	}

	return p.Word(), nil
}
