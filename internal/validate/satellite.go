package validate

import (
	"fmt"
	"path/filepath"
	"strings"

	"resxcheck/internal/model"
	"resxcheck/internal/placeholder"
	"resxcheck/internal/resx"
	"resxcheck/internal/specifier"
	"resxcheck/internal/textutil"
)

// verifySatellite checks every entry of a translation file against the
// resolved base item set. Satellite comments are parsed structurally by the
// document reader but their content is always discarded here: the base
// file's declarations are the only authority.
func (v *Validator) verifySatellite(base map[string]*model.ResourceItem, baseDoc, satDoc *resx.Document, sink Sink) {
	baseName := filepath.Base(baseDoc.Path)

	for _, e := range satDoc.Entries {
		item, ok := base[e.Name]
		if !ok {
			sink.Warning(satDoc.Path, fmt.Sprintf("resource %s does not exist in %s", e.Name, baseName))
			continue
		}

		if e.Type != item.DeclaredType {
			sink.Error(satDoc.Path, fmt.Sprintf("resource %s: type %s does not match type %s in %s",
				e.Name, e.Type, item.DeclaredType, baseName))
			continue
		}
		if !item.IsString() {
			// Includes carry no further structure to check.
			continue
		}

		switch item.Mode.Kind() {
		case model.KindSuppressed:
			continue

		case model.KindEnumeration:
			variants := item.Mode.Variants()
			if !isVariant(e.Value, variants) {
				sink.Error(satDoc.Path, fmt.Sprintf("resource %s: value %q is not one of the allowed values (%s)",
					e.Name, textutil.Truncate(e.Value, maxQuotedValue), strings.Join(variants, ", ")))
			}

		default:
			v.verifyTranslatedValue(item, e, baseName, satDoc.Path, sink)
		}
	}
}

// verifyTranslatedValue re-scans one translated value and holds it to the
// base entry's placeholder contract.
func (v *Validator) verifyTranslatedValue(item *model.ResourceItem, e resx.Entry, baseName, satPath string, sink Sink) {
	items, err := placeholder.Scan(e.Value)
	if err != nil {
		sink.Error(satPath, fmt.Sprintf("resource %s: %v", e.Name, err))
		return
	}

	want := item.PlaceholderCount
	params := item.Mode.Params()
	if item.Mode.Kind() == model.KindParameterized {
		want = len(params)
	}
	if len(items) != want {
		v.policy.report(sink, satPath, fmt.Sprintf("resource %s: the translation uses %d format items but %s declares %d",
			e.Name, len(items), baseName, want))
	}

	// Specifier checks need declared types, which only a parameterized
	// base entry provides.
	if item.Mode.Kind() != model.KindParameterized {
		return
	}
	for i, p := range params {
		for _, spec := range items.Specifiers(i) {
			switch specifier.Check(p.Type, spec) {
			case specifier.Invalid:
				sink.Error(satPath, fmt.Sprintf("resource %s: format specifier %q is not valid for parameter %s of type %s",
					e.Name, spec, p.Name, p.Type))
			case specifier.ValidWithWarning:
				sink.Warning(satPath, fmt.Sprintf("resource %s: format specifier %q has no effect on string parameter %s",
					e.Name, spec, p.Name))
			}
		}
	}
}
