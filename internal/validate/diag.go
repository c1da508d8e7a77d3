package validate

// Diagnostic is one validation finding attributed to a file.
type Diagnostic struct {
	File    string
	Message string
}

// Sink receives diagnostics as they are found. Implementations own routing
// and storage; the validator never aborts on a reported error.
type Sink interface {
	Error(file, message string)
	Warning(file, message string)
}

// Bag is an ordered in-memory Sink. Diagnostics within one file keep their
// source order, so merged output is deterministic.
type Bag struct {
	errors   []Diagnostic
	warnings []Diagnostic
}

// NewBag creates an empty diagnostic bag.
func NewBag() *Bag { return &Bag{} }

// Error records an error diagnostic.
func (b *Bag) Error(file, message string) {
	b.errors = append(b.errors, Diagnostic{File: file, Message: message})
}

// Warning records a warning diagnostic.
func (b *Bag) Warning(file, message string) {
	b.warnings = append(b.warnings, Diagnostic{File: file, Message: message})
}

// Errors returns the recorded errors in order.
func (b *Bag) Errors() []Diagnostic { return b.errors }

// Warnings returns the recorded warnings in order.
func (b *Bag) Warnings() []Diagnostic { return b.warnings }

// HasErrors reports whether any error was recorded.
func (b *Bag) HasErrors() bool { return len(b.errors) > 0 }

// Merge appends another bag's diagnostics, preserving their order.
func (b *Bag) Merge(other *Bag) {
	b.errors = append(b.errors, other.errors...)
	b.warnings = append(b.warnings, other.warnings...)
}
