// Package specifier decides whether a format specifier is usable with a
// declared parameter type. Checks are hand-implemented grammar rules per
// type category, so verdicts never depend on a platform formatter.
package specifier

import "strings"

// Category is the closed classification a type name falls into.
type Category int

const (
	// CategoryEnum covers type names with no richer information available;
	// they are assumed enumeration-like.
	CategoryEnum Category = iota
	// CategoryText covers string parameters.
	CategoryText
	// CategoryDateTime covers DateTime and DateTimeOffset.
	CategoryDateTime
	// CategoryNumber covers all integral and real numeric types.
	CategoryNumber
	// CategoryGuid covers Guid.
	CategoryGuid
	// CategoryDuration covers TimeSpan.
	CategoryDuration
)

// Verdict is the outcome of checking one specifier against one type.
type Verdict int

const (
	// Valid means the specifier would format without error.
	Valid Verdict = iota
	// ValidWithWarning means the specifier is syntactically fine but has no
	// effect and deserves a warning.
	ValidWithWarning
	// Invalid means formatting with the specifier would fail.
	Invalid
)

// categories maps the final name segment of every recognized type spelling,
// language keyword or framework name alike, to its category.
var categories = map[string]Category{
	"string": CategoryText,
	"String": CategoryText,

	"DateTime":       CategoryDateTime,
	"DateTimeOffset": CategoryDateTime,

	"byte": CategoryNumber, "Byte": CategoryNumber,
	"sbyte": CategoryNumber, "SByte": CategoryNumber,
	"short": CategoryNumber, "Int16": CategoryNumber,
	"ushort": CategoryNumber, "UInt16": CategoryNumber,
	"int": CategoryNumber, "Int32": CategoryNumber,
	"uint": CategoryNumber, "UInt32": CategoryNumber,
	"long": CategoryNumber, "Int64": CategoryNumber,
	"ulong": CategoryNumber, "UInt64": CategoryNumber,
	"float": CategoryNumber, "Single": CategoryNumber,
	"double": CategoryNumber, "Double": CategoryNumber,
	"decimal": CategoryNumber, "Decimal": CategoryNumber,
	"BigInteger": CategoryNumber,

	"Guid":     CategoryGuid,
	"TimeSpan": CategoryDuration,
}

// Classify resolves the category of a declared type name. A trailing "?" and
// any qualifying namespace segments are ignored.
func Classify(typeName string) Category {
	name := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(typeName), "?"))
	if dot := strings.LastIndex(name, "."); dot >= 0 {
		name = name[dot+1:]
	}
	if cat, ok := categories[name]; ok {
		return cat
	}
	return CategoryEnum
}

// Check returns the verdict for formatting a value of the given declared
// type with the given specifier text.
func Check(typeName, format string) Verdict {
	if format == "" {
		return Valid
	}
	switch Classify(typeName) {
	case CategoryText:
		return ValidWithWarning
	case CategoryDateTime:
		return boolVerdict(checkDateTime(format))
	case CategoryNumber:
		return boolVerdict(checkNumber(format))
	case CategoryGuid:
		return boolVerdict(len(format) == 1 && strings.ContainsAny(format, "NnDdBbPpXx"))
	case CategoryDuration:
		return boolVerdict(checkDuration(format))
	default:
		return boolVerdict(len(format) == 1 && strings.ContainsAny(format, "GgFfDdXx"))
	}
}

func boolVerdict(ok bool) Verdict {
	if ok {
		return Valid
	}
	return Invalid
}

// standardDateTime lists the single-character standard date/time specifiers.
const standardDateTime = "dDfFgGMmOoRrsStTuUyY"

func checkDateTime(format string) bool {
	if len(format) == 1 {
		return strings.ContainsAny(format, standardDateTime)
	}
	// Custom pattern: unrecognized characters are literals, so only the
	// quoting and escape structure can make it fail.
	return checkLiteralStructure(format, true)
}

// standardNumber lists the standard numeric specifier letters, shared across
// the merged integral-and-real category.
const standardNumber = "CcDdEeFfGgNnPpRrXx"

func checkNumber(format string) bool {
	if isStandardShape(format) {
		return strings.ContainsAny(format[:1], standardNumber)
	}
	// Custom numeric pattern: placeholders aside, unmatched quotes and a
	// dangling backslash are the only fatal shapes.
	return checkLiteralStructure(format, false)
}

// isStandardShape reports whether the format is one ASCII letter followed by
// an optional precision digit run, the shape that selects a standard numeric
// specifier rather than a custom pattern.
func isStandardShape(format string) bool {
	if format == "" {
		return false
	}
	c := format[0]
	if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z') {
		return false
	}
	for i := 1; i < len(format); i++ {
		if format[i] < '0' || format[i] > '9' {
			return false
		}
	}
	return true
}

// durationUnits bounds the repeat count of each duration placeholder letter.
var durationUnits = map[byte]int{'d': 8, 'h': 2, 'm': 2, 's': 2, 'f': 7, 'F': 7}

func checkDuration(format string) bool {
	if len(format) == 1 {
		return strings.ContainsAny(format, "cgGtT")
	}
	// Custom duration patterns allow only placeholder runs, quoted
	// literals, and escapes; a raw literal character is an error.
	i := 0
	for i < len(format) {
		c := format[i]
		if limit, ok := durationUnits[c]; ok {
			run := 0
			for i < len(format) && format[i] == c {
				run++
				i++
			}
			if run > limit {
				return false
			}
			continue
		}
		switch c {
		case '\'', '"':
			end := strings.IndexByte(format[i+1:], c)
			if end < 0 {
				return false
			}
			i += end + 2
		case '\\':
			if i+1 >= len(format) {
				return false
			}
			i += 2
		case '%':
			if i+1 >= len(format) || durationUnits[format[i+1]] == 0 {
				return false
			}
			i += 2
		default:
			return false
		}
	}
	return true
}

// checkLiteralStructure verifies the quoted-literal and escape structure of
// a custom pattern. When percentStrict is set, a '%' must introduce exactly
// one following pattern character.
func checkLiteralStructure(format string, percentStrict bool) bool {
	i := 0
	for i < len(format) {
		switch c := format[i]; c {
		case '\'', '"':
			end := strings.IndexByte(format[i+1:], c)
			if end < 0 {
				return false
			}
			i += end + 2
		case '\\':
			if i+1 >= len(format) {
				return false
			}
			i += 2
		case '%':
			if percentStrict && (i+1 >= len(format) || format[i+1] == '%') {
				return false
			}
			i++
		default:
			i++
		}
	}
	return true
}
