package specifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resxcheck/internal/specifier"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		typeName string
		want     specifier.Category
	}{
		{"string", specifier.CategoryText},
		{"System.String", specifier.CategoryText},
		{"DateTime", specifier.CategoryDateTime},
		{"System.DateTimeOffset", specifier.CategoryDateTime},
		{"int", specifier.CategoryNumber},
		{"int?", specifier.CategoryNumber},
		{"System.Int64", specifier.CategoryNumber},
		{"decimal", specifier.CategoryNumber},
		{"System.Numerics.BigInteger", specifier.CategoryNumber},
		{"Guid", specifier.CategoryGuid},
		{"System.Guid", specifier.CategoryGuid},
		{"TimeSpan", specifier.CategoryDuration},
		{"System.TimeSpan?", specifier.CategoryDuration},
		{"Severity", specifier.CategoryEnum},
		{"My.App.Color", specifier.CategoryEnum},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			assert.Equal(t, tt.want, specifier.Classify(tt.typeName))
		})
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		format   string
		want     specifier.Verdict
	}{
		// Date/time: single characters are standard specifiers.
		{"datetime short date", "DateTime", "d", specifier.Valid},
		{"datetime invalid standard", "DateTime", "k", specifier.Invalid},
		{"datetime custom pattern", "DateTime", "yyyy-MM-dd HH:mm", specifier.Valid},
		{"datetime unterminated quote", "DateTime", "yyyy 'of", specifier.Invalid},
		{"datetime trailing percent", "DateTime", "HH%", specifier.Invalid},
		{"datetime percent form", "DateTimeOffset", "%d", specifier.Valid},

		// Numbers: standard letter plus optional precision, or custom pattern.
		{"int decimal", "int", "d", specifier.Valid},
		{"int hex with precision", "int", "X8", specifier.Valid},
		{"int unknown standard letter", "int", "z", specifier.Invalid},
		{"long currency", "long", "C2", specifier.Valid},
		{"double custom", "double", "#,##0.00", specifier.Valid},
		{"float custom unterminated quote", "float", "0.0 'x", specifier.Invalid},
		{"decimal general", "decimal", "G", specifier.Valid},

		// Guid.
		{"guid braces", "Guid", "B", specifier.Valid},
		{"guid lowercase", "Guid", "n", specifier.Valid},
		{"guid invalid", "Guid", "Z", specifier.Invalid},
		{"guid too long", "Guid", "NN", specifier.Invalid},

		// TimeSpan: custom patterns take no unquoted literals.
		{"timespan constant", "TimeSpan", "c", specifier.Valid},
		{"timespan general", "TimeSpan", "G", specifier.Valid},
		{"timespan custom escaped colon", "TimeSpan", `hh\:mm`, specifier.Valid},
		{"timespan custom raw colon", "TimeSpan", "hh:mm", specifier.Invalid},
		{"timespan quoted literal", "TimeSpan", "hh' hours'", specifier.Valid},
		{"timespan run too long", "TimeSpan", "hhh", specifier.Invalid},
		{"timespan unknown letter", "TimeSpan", "x", specifier.Invalid},

		// Text: syntactically fine, semantically meaningless.
		{"string specifier warns", "string", "N0", specifier.ValidWithWarning},
		{"string empty is fine", "string", "", specifier.Valid},

		// Unrecognized types fall back to enumeration-style codes.
		{"enum hex", "Severity", "x", specifier.Valid},
		{"enum general", "Severity", "G", specifier.Valid},
		{"enum invalid", "Severity", "s", specifier.Invalid},
		{"enum multi-char invalid", "Severity", "GG", specifier.Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, specifier.Check(tt.typeName, tt.format))
		})
	}
}

func TestCheckDeterministic(t *testing.T) {
	// Verdicts are pure functions of their inputs.
	for i := 0; i < 3; i++ {
		assert.Equal(t, specifier.Invalid, specifier.Check("DateTime", "k"))
		assert.Equal(t, specifier.Valid, specifier.Check("int", "d"))
		assert.Equal(t, specifier.Valid, specifier.Check("UnknownEnum", "x"))
		assert.Equal(t, specifier.Invalid, specifier.Check("UnknownEnum", "s"))
	}
}
