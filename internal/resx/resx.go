// Package resx reads .resx resource documents into ordered entry lists,
// enforcing the structural rules the validation core relies on.
package resx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry is one (name, value, comment, type) tuple extracted from a document.
type Entry struct {
	// Name is the resource key.
	Name string
	// Value is the raw value text.
	Value string
	// Comment is the raw comment text, empty when absent.
	Comment string
	// Type is the tag of an include entry (the value segment before the
	// first ';' of its type reference), or "string" for ordinary entries.
	Type string
}

// Document is one parsed resource file.
type Document struct {
	// Path identifies the file for diagnostics.
	Path string
	// Entries preserves source order.
	Entries []Entry
}

// Reporter receives per-entry structural errors. An entry that fails a
// structural check is dropped; the remaining entries still load.
type Reporter interface {
	Error(file, message string)
}

type xmlDocument struct {
	XMLName xml.Name  `xml:"root"`
	Data    []xmlData `xml:"data"`
}

type xmlData struct {
	Name     string   `xml:"name,attr"`
	Type     string   `xml:"type,attr"`
	Values   []string `xml:"value"`
	Comments []string `xml:"comment"`
}

// Load reads and parses the resource file at path.
func Load(path string, rep Reporter) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open resource file: %w", err)
	}
	defer f.Close()
	return Parse(f, path, rep)
}

// Parse reads one resx document. A malformed container (bad XML or a root
// element other than <root>) fails the whole document; per-entry defects go
// to the reporter and skip only that entry.
func Parse(r io.Reader, path string, rep Reporter) (*Document, error) {
	var raw xmlDocument
	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse resource file: %w", err)
	}

	doc := &Document{Path: path}
	for _, d := range raw.Data {
		if d.Name == "" {
			rep.Error(path, "data element is missing a name attribute")
			continue
		}
		if len(d.Values) == 0 {
			rep.Error(path, fmt.Sprintf("resource %s: missing value element", d.Name))
			continue
		}
		if len(d.Values) > 1 {
			rep.Error(path, fmt.Sprintf("resource %s: duplicated value element", d.Name))
			continue
		}
		if len(d.Comments) > 1 {
			rep.Error(path, fmt.Sprintf("resource %s: duplicated comment element", d.Name))
			continue
		}

		entry := Entry{
			Name:  d.Name,
			Value: d.Values[0],
			Type:  includeType(d.Type, d.Values[0]),
		}
		if len(d.Comments) == 1 {
			entry.Comment = d.Comments[0]
		}
		doc.Entries = append(doc.Entries, entry)
	}
	return doc, nil
}

// includeType derives the entry type tag. Ordinary entries carry no type
// attribute and are strings; file references carry the referenced type as
// the second ';'-separated segment of their value.
func includeType(typeAttr, value string) string {
	if typeAttr == "" {
		return "string"
	}
	parts := strings.Split(value, ";")
	if len(parts) >= 2 {
		if t := strings.TrimSpace(parts[1]); t != "" {
			return firstSegment(t)
		}
	}
	return firstSegment(typeAttr)
}

// firstSegment trims an assembly-qualified type name down to the type name.
func firstSegment(s string) string {
	if i := strings.Index(s, ","); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
