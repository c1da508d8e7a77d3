package validate

import "fmt"

// Policy selects whether migration-sensitive findings are errors or
// warnings: undeclared placeholders on plain entries and satellite
// placeholder-count mismatches.
type Policy int

const (
	// PolicyStrict routes policy-gated findings to the error sink.
	PolicyStrict Policy = iota
	// PolicyLenient downgrades policy-gated findings to warnings.
	PolicyLenient
)

// ParsePolicy resolves a policy name from configuration.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "strict":
		return PolicyStrict, nil
	case "lenient":
		return PolicyLenient, nil
	default:
		return PolicyStrict, fmt.Errorf("unknown policy %q (want strict or lenient)", s)
	}
}

func (p Policy) String() string {
	if p == PolicyLenient {
		return "lenient"
	}
	return "strict"
}

// report routes a policy-gated finding to the matching sink channel.
func (p Policy) report(s Sink, file, message string) {
	if p == PolicyLenient {
		s.Warning(file, message)
		return
	}
	s.Error(file, message)
}
