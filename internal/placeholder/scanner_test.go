package placeholder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resxcheck/internal/placeholder"
)

func TestScanValid(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		indices []int
	}{
		{"empty", "", nil},
		{"no items", "plain text", nil},
		{"escapes only", "{{ {{{{ }} }}}}}} }}", nil},
		{"single item", "{0}", []int{0}},
		{"text around items", "d{0}c{1}", []int{0, 1}},
		{"out of order", "{2}{0}{1}", []int{0, 1, 2}},
		{"repeated index", "{0} and {0}", []int{0}},
		{"alignment", "{0,10}", []int{0}},
		{"negative alignment", "{0,-10}", []int{0}},
		{"alignment with spaces", "{0 , -5 }", []int{0}},
		{"specifier", "{0:yyyy-MM-dd}", []int{0}},
		{"alignment and specifier", "{0, -5:N2}", []int{0}},
		{"escaped braces in specifier", "{0:x }}y}", []int{0}},
		{"item beside escapes", "{{literal}} {1} {0}", []int{0, 1}},
		{"large index", "{999999}", []int{999999}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := placeholder.Scan(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.indices, items.Indices())
		})
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"lone closing brace", "}"},
		{"closing brace after text", "abc } def"},
		{"closing brace after item", "{0}}"},
		{"missing index", "{abc}"},
		{"empty item", "{}"},
		{"signed index", "{-1}"},
		{"index at limit", "{1000000}"},
		{"space before index", "{ 0}"},
		{"alignment without width", "{0,}"},
		{"alignment sign only", "{0,-}"},
		{"unterminated item", "{0"},
		{"unterminated specifier", "{0:N"},
		{"unterminated after alignment", "{0,5"},
		{"raw open brace in specifier", "{0:{1}}"},
		{"escaped open brace in specifier", "{0: }}{{ }} x}"},
		{"garbage after alignment", "{0,5x}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := placeholder.Scan(tt.value)
			assert.Error(t, err)
		})
	}
}

func TestScanSpecifierSets(t *testing.T) {
	items, err := placeholder.Scan("{0:d} or {0:t} or {0}")
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "t"}, items.Specifiers(0))

	items, err = placeholder.Scan("{0} {1,8:N0}")
	require.NoError(t, err)
	assert.Nil(t, items.Specifiers(0))
	assert.Equal(t, []string{"N0"}, items.Specifiers(1))

	// Escaped brace pairs inside specifier text are recorded verbatim.
	items, err = placeholder.Scan("{0:x }}y}")
	require.NoError(t, err)
	assert.Equal(t, []string{"x }}y"}, items.Specifiers(0))
}

func TestScanDeterministic(t *testing.T) {
	const value = "Found {0:N0} items in {1,6:F2} seconds."

	first, err := placeholder.Scan(value)
	require.NoError(t, err)
	second, err := placeholder.Scan(value)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScanHaltsOnFirstError(t *testing.T) {
	// The malformed second item must not leave a partial map behind.
	items, err := placeholder.Scan("{0} then {bad}")
	assert.Error(t, err)
	assert.Nil(t, items)
}
