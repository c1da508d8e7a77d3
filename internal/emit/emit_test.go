package emit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resxcheck/internal/emit"
	"resxcheck/internal/model"
)

func TestGenerate(t *testing.T) {
	items := []*model.ResourceItem{
		{
			Name:         "Greeting",
			Value:        "Hello",
			DeclaredType: "string",
			Mode:         model.Plain(),
		},
		{
			Name:         "Status",
			Value:        "Active",
			DeclaredType: "string",
			Mode:         model.Enumeration([]string{"Active", "Inactive", "Pending"}),
		},
		{
			Name:         "Found",
			Value:        "Found {0} items in {1} seconds.",
			DeclaredType: "string",
			Mode: model.Parameterized([]model.Parameter{
				{Type: "int", Name: "count"},
				{Type: "double", Name: "seconds"},
			}),
		},
		{
			Name:         "Logo",
			Value:        "logo.png;System.Drawing.Bitmap",
			DeclaredType: "System.Drawing.Bitmap",
			Mode:         model.Plain(),
		},
	}

	src, err := emit.Generate("Strings", items, emit.Options{Package: "resources"})
	require.NoError(t, err)
	got := string(src)

	assert.Contains(t, got, "// Code generated by resxcheck; DO NOT EDIT.")
	assert.Contains(t, got, "package resources")
	assert.Contains(t, got, "func StringsGreeting() string {")
	assert.Contains(t, got, `return "Hello"`)
	assert.Contains(t, got, `var StringsStatusValues = []string{"Active", "Inactive", "Pending"}`)
	assert.Contains(t, got, "func StringsFound(count int, seconds float64) string {")
	assert.Contains(t, got, "formatStringsItem(")
	// Include entries produce no accessor.
	assert.NotContains(t, got, "Logo")
}

func TestGenerateTypedSignatures(t *testing.T) {
	items := []*model.ResourceItem{
		{
			Name:         "Deadline",
			Value:        "{0} left until {1:d}",
			DeclaredType: "string",
			Mode: model.Parameterized([]model.Parameter{
				{Type: "System.TimeSpan", Name: "remaining"},
				{Type: "System.DateTime?", Name: "due"},
			}),
		},
	}

	src, err := emit.Generate("Strings", items, emit.Options{})
	require.NoError(t, err)
	got := string(src)

	assert.Contains(t, got, "package resources")
	assert.Contains(t, got, "func StringsDeadline(remaining time.Duration, due time.Time) string {")
	assert.Contains(t, got, `"time"`)
}

func TestGenerateKeywordParameter(t *testing.T) {
	items := []*model.ResourceItem{
		{
			Name:         "Loop",
			Value:        "{0}",
			DeclaredType: "string",
			Mode: model.Parameterized([]model.Parameter{
				{Type: "int", Name: "range"},
			}),
		},
	}

	src, err := emit.Generate("Strings", items, emit.Options{})
	require.NoError(t, err)
	assert.Contains(t, string(src), "func StringsLoop(range_ int) string {")
}

func TestGenerateNoParameterizedItems(t *testing.T) {
	items := []*model.ResourceItem{
		{Name: "OnlyText", Value: "hi", DeclaredType: "string", Mode: model.Plain()},
	}

	src, err := emit.Generate("Strings", items, emit.Options{})
	require.NoError(t, err)
	got := string(src)

	assert.NotContains(t, got, "formatStringsItem")
	assert.NotContains(t, got, "import")
}
