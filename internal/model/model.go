package model

// Parameter is one declared function parameter of a parameterized resource.
// Order is significant: parameter i corresponds to format item {i}.
type Parameter struct {
	// Type is the declared type token, whitespace-normalized, with an
	// optional trailing "?" preserved as written.
	Type string
	// Name is the declared parameter identifier.
	Name string
}

// ModeKind identifies which variant of a Mode is populated.
type ModeKind int

const (
	// KindPlain marks an entry without a structural declaration comment.
	KindPlain ModeKind = iota
	// KindSuppressed marks an entry opted out of all structural checks.
	KindSuppressed
	// KindEnumeration marks an entry constrained to a closed value set.
	KindEnumeration
	// KindParameterized marks an entry with declared function parameters.
	KindParameterized
)

func (k ModeKind) String() string {
	switch k {
	case KindSuppressed:
		return "suppressed"
	case KindEnumeration:
		return "enumeration"
	case KindParameterized:
		return "parameterized"
	default:
		return "plain"
	}
}

// Mode is the resolved declaration mode of a resource entry. It is built
// exactly once from the entry's comment and never mutated afterward; the
// variant and parameter slices must be treated as read-only.
type Mode struct {
	kind     ModeKind
	variants []string
	params   []Parameter
}

// Plain returns the mode for entries without a declaration comment.
func Plain() Mode { return Mode{kind: KindPlain} }

// Suppressed returns the mode for entries excluded from validation.
func Suppressed() Mode { return Mode{kind: KindSuppressed} }

// Enumeration returns a mode constraining values to the given ordered list.
func Enumeration(variants []string) Mode {
	vs := make([]string, len(variants))
	copy(vs, variants)
	return Mode{kind: KindEnumeration, variants: vs}
}

// Parameterized returns a mode declaring the given ordered parameter list.
func Parameterized(params []Parameter) Mode {
	ps := make([]Parameter, len(params))
	copy(ps, params)
	return Mode{kind: KindParameterized, params: ps}
}

// Kind reports which variant this mode is.
func (m Mode) Kind() ModeKind { return m.kind }

// Variants returns the declared value list of an enumeration mode.
// The returned slice is read-only.
func (m Mode) Variants() []string { return m.variants }

// Params returns the declared parameter list of a parameterized mode.
// The returned slice is read-only.
func (m Mode) Params() []Parameter { return m.params }

// ResourceItem is one resolved entry of a base resource file.
type ResourceItem struct {
	// Name is the unique resource key within its file.
	Name string
	// Value is the raw resource value text.
	Value string
	// DeclaredType is "string" for ordinary entries, or the type tag of an
	// include entry.
	DeclaredType string
	// Mode is the declaration mode resolved from the entry comment.
	Mode Mode
	// PlaceholderCount is the number of distinct format-item indices found
	// in the base value. It backs the satellite count check for plain
	// entries, which declare no parameters of their own.
	PlaceholderCount int
}

// IsString reports whether the item is an ordinary string entry rather than
// a file include.
func (it *ResourceItem) IsString() bool { return it.DeclaredType == "string" }
