// Package comment parses resource entry comments into declaration modes.
//
// A comment selects exactly one mode, checked in priority order:
//
//	-            suppress all structural checks
//	!(a, b, c)   closed enumeration of allowed values
//	{int i, ...} declared function parameters
//	anything     plain human note, no structural meaning
package comment

import (
	"fmt"
	"regexp"
	"strings"

	"resxcheck/internal/model"
)

// declPattern matches one parameter declaration: a dotted type token with an
// optional trailing "?", then an identifier. Whitespace around dots is allowed
// and stripped during normalization.
var declPattern = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*(?:\s*\.\s*[A-Za-z_][A-Za-z0-9_]*)*)(\?)?\s+([A-Za-z_][A-Za-z0-9_]*)$`)

var dotSpacing = regexp.MustCompile(`\s*\.\s*`)

// Parse resolves the declaration mode of the named entry from its comment.
// A nil error always accompanies a usable mode; on error the entry has no
// declaration and callers must halt further checks for it.
func Parse(name, text string) (model.Mode, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.Plain(), nil
	}

	if strings.HasPrefix(trimmed, "-") {
		return model.Suppressed(), nil
	}

	if strings.HasPrefix(trimmed, "!(") {
		end := strings.Index(trimmed, ")")
		if end < 0 {
			// No closing parenthesis: not an enumeration declaration.
			return model.Plain(), nil
		}
		var variants []string
		for _, part := range strings.Split(trimmed[2:end], ",") {
			if v := strings.TrimSpace(part); v != "" {
				variants = append(variants, v)
			}
		}
		// Text after ")" is a free-form note. An empty list is accepted
		// here; the value check against it happens later.
		return model.Enumeration(variants), nil
	}

	if strings.HasPrefix(trimmed, "{") {
		end := strings.Index(trimmed, "}")
		if end < 0 {
			return model.Plain(), nil
		}
		inner := trimmed[1:end]
		if strings.TrimSpace(inner) == "" {
			return model.Plain(), fmt.Errorf("resource %s: invalid parameter declaration found in the comment: %s", name, trimmed)
		}
		var params []model.Parameter
		for _, part := range strings.Split(inner, ",") {
			entry := strings.TrimSpace(part)
			m := declPattern.FindStringSubmatch(entry)
			if m == nil {
				return model.Plain(), fmt.Errorf("resource %s: bad parameter declaration: %s", name, entry)
			}
			params = append(params, model.Parameter{
				Type: dotSpacing.ReplaceAllString(m[1], ".") + m[2],
				Name: m[3],
			})
		}
		return model.Parameterized(params), nil
	}

	return model.Plain(), nil
}
