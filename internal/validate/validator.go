// Package validate checks resource groups: it resolves the base file's item
// set, validates every entry against its declared mode, and verifies each
// satellite translation against the base declarations.
package validate

import (
	"fmt"
	"strings"

	"resxcheck/internal/comment"
	"resxcheck/internal/grouping"
	"resxcheck/internal/model"
	"resxcheck/internal/placeholder"
	"resxcheck/internal/resx"
	"resxcheck/internal/specifier"
	"resxcheck/internal/textutil"
)

// maxQuotedValue caps how much of a resource value a diagnostic echoes.
const maxQuotedValue = 120

// Validator runs the per-group validation pass.
type Validator struct {
	policy Policy
}

// New creates a validator with the given policy.
func New(policy Policy) *Validator {
	return &Validator{policy: policy}
}

// GroupResult holds the outcome of validating one resource group.
type GroupResult struct {
	Group grouping.Group
	// Items is the resolved base item set in source order. Entries whose
	// declaration failed are absent.
	Items []*model.ResourceItem
	// Bag collects every diagnostic of the group, base file first, then
	// satellites in culture order.
	Bag *Bag
	// Skipped is set when the group was never validated, for example after
	// a cancelled run.
	Skipped bool
}

// Emittable reports whether the group may reach code emission. A skipped
// group has no verdict and is never emittable.
func (r *GroupResult) Emittable() bool { return !r.Skipped && !r.Bag.HasErrors() }

// Group validates one resource group. I/O and container-level failures are
// reported through the bag like any other diagnostic, attributed to the
// file that caused them.
func (v *Validator) Group(g grouping.Group) *GroupResult {
	res := &GroupResult{Group: g, Bag: NewBag()}

	baseDoc, err := resx.Load(g.BasePath, res.Bag)
	if err != nil {
		res.Bag.Error(g.BasePath, err.Error())
		return res
	}

	byName := make(map[string]*model.ResourceItem)
	for _, e := range baseDoc.Entries {
		if _, dup := byName[e.Name]; dup {
			res.Bag.Error(g.BasePath, fmt.Sprintf("duplicate resource name: %s", e.Name))
			continue
		}
		mode, err := comment.Parse(e.Name, e.Comment)
		if err != nil {
			res.Bag.Error(g.BasePath, err.Error())
			continue
		}
		item := &model.ResourceItem{
			Name:         e.Name,
			Value:        e.Value,
			DeclaredType: e.Type,
			Mode:         mode,
		}
		byName[e.Name] = item
		res.Items = append(res.Items, item)
	}

	for _, item := range res.Items {
		if item.IsString() {
			v.validateEntry(item, g.BasePath, res.Bag)
		}
	}

	for _, sat := range g.Satellites {
		satDoc, err := resx.Load(sat.Path, res.Bag)
		if err != nil {
			res.Bag.Error(sat.Path, err.Error())
			continue
		}
		v.verifySatellite(byName, baseDoc, satDoc, res.Bag)
	}

	return res
}

// validateEntry checks one base entry against its resolved mode. The first
// structural failure halts further checks for this entry only.
func (v *Validator) validateEntry(item *model.ResourceItem, file string, sink Sink) {
	switch item.Mode.Kind() {
	case model.KindSuppressed:
		return

	case model.KindEnumeration:
		variants := item.Mode.Variants()
		if !isVariant(item.Value, variants) {
			sink.Error(file, fmt.Sprintf("resource %s: value %q is not one of the allowed values (%s)",
				item.Name, textutil.Truncate(item.Value, maxQuotedValue), strings.Join(variants, ", ")))
		}
		return
	}

	items, err := placeholder.Scan(item.Value)
	if err != nil {
		sink.Error(file, fmt.Sprintf("resource %s: %v", item.Name, err))
		return
	}
	item.PlaceholderCount = len(items)

	if item.Mode.Kind() == model.KindPlain {
		if len(items) > 0 {
			v.policy.report(sink, file, fmt.Sprintf("resource %s: parameters declaration is missing in the comment", item.Name))
		}
		return
	}

	params := item.Mode.Params()
	if len(items) == 0 {
		sink.Error(file, fmt.Sprintf("resource %s: no format items are used in the value, but function parameters are declared in the comment", item.Name))
		return
	}

	if bad, ok := firstOffendingIndex(items, len(params)); ok {
		sink.Error(file, fmt.Sprintf("resource %s: format items do not match the declared parameters (first offending index %d)",
			item.Name, bad))
		return
	}

	checkSpecifiers(item.Name, items, params, file, sink)
}

// firstOffendingIndex compares the scanned index set against the contiguous
// range [0, n) and returns the smallest missing or out-of-range index.
func firstOffendingIndex(items placeholder.Map, n int) (int, bool) {
	indices := items.Indices()
	seen := make(map[int]bool, len(indices))
	for _, ix := range indices {
		seen[ix] = true
	}

	offending := -1
	for j := 0; j < n; j++ {
		if !seen[j] {
			offending = j
			break
		}
	}
	for _, ix := range indices {
		if ix >= n {
			if offending < 0 || ix < offending {
				offending = ix
			}
			break
		}
	}
	return offending, offending >= 0
}

// checkSpecifiers validates every recorded specifier at index i against the
// type of parameter i.
func checkSpecifiers(name string, items placeholder.Map, params []model.Parameter, file string, sink Sink) {
	for i, p := range params {
		for _, spec := range items.Specifiers(i) {
			switch specifier.Check(p.Type, spec) {
			case specifier.Invalid:
				sink.Error(file, fmt.Sprintf("resource %s: format specifier %q is not valid for parameter %s of type %s",
					name, spec, p.Name, p.Type))
			case specifier.ValidWithWarning:
				sink.Warning(file, fmt.Sprintf("resource %s: format specifier %q has no effect on string parameter %s",
					name, spec, p.Name))
			}
		}
	}
}

func isVariant(value string, variants []string) bool {
	trimmed := strings.TrimSpace(value)
	for _, v := range variants {
		if trimmed == v {
			return true
		}
	}
	return false
}
