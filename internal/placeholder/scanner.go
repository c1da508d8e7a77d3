// Package placeholder scans resource values for composite format items of
// the form {index[,alignment][:specifier]}, honoring {{ and }} escapes.
package placeholder

import (
	"fmt"
	"sort"
)

// indexLimit bounds format-item indices and alignment widths.
const indexLimit = 1_000_000

// Map records every format-item index found in one value. An index maps to
// nil when it was only ever seen without a specifier, otherwise to the set
// of literal specifier texts observed at that index.
type Map map[int]map[string]struct{}

// record notes one occurrence of an index, with its specifier when present.
func (m Map) record(index int, spec string, hasSpec bool) {
	set, seen := m[index]
	if !hasSpec {
		if !seen {
			m[index] = nil
		}
		return
	}
	if set == nil {
		set = make(map[string]struct{})
		m[index] = set
	}
	set[spec] = struct{}{}
}

// Indices returns all recorded indices in ascending order.
func (m Map) Indices() []int {
	if len(m) == 0 {
		return nil
	}
	out := make([]int, 0, len(m))
	for ix := range m {
		out = append(out, ix)
	}
	sort.Ints(out)
	return out
}

// Specifiers returns the specifier texts recorded at the given index, in
// lexical order. A bare occurrence contributes nothing.
func (m Map) Specifiers(index int) []string {
	set := m[index]
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Scan walks the value left to right and returns the map of format items it
// contains. The first malformed sequence stops the scan and is returned as
// the error; no partial map is kept.
func Scan(value string) (Map, error) {
	items := make(Map)
	pos := 0
	for pos < len(value) {
		switch value[pos] {
		case '}':
			if pos+1 < len(value) && value[pos+1] == '}' {
				pos += 2
				continue
			}
			return nil, fmt.Errorf("unescaped '}' at position %d", pos)
		case '{':
			if pos+1 < len(value) && value[pos+1] == '{' {
				pos += 2
				continue
			}
			next, err := scanItem(value, pos, items)
			if err != nil {
				return nil, err
			}
			pos = next
		default:
			pos++
		}
	}
	return items, nil
}

// scanItem parses one format item starting at the '{' at open and returns
// the position just past its closing '}'.
func scanItem(value string, open int, items Map) (int, error) {
	pos := open + 1

	index, pos, err := scanNumber(value, pos)
	if err != nil {
		return 0, fmt.Errorf("format item at position %d: %w", open, err)
	}

	pos = skipSpaces(value, pos)

	if pos < len(value) && value[pos] == ',' {
		pos = skipSpaces(value, pos+1)
		if pos < len(value) && value[pos] == '-' {
			pos++
		}
		_, next, err := scanNumber(value, pos)
		if err != nil {
			return 0, fmt.Errorf("format item at position %d: alignment: %w", open, err)
		}
		pos = skipSpaces(value, next)
	}

	var spec string
	hasSpec := false
	if pos < len(value) && value[pos] == ':' {
		pos++
		start := pos
		for pos < len(value) {
			c := value[pos]
			if c == '{' {
				return 0, fmt.Errorf("format item at position %d: '{' is not allowed inside a format specifier", open)
			}
			if c == '}' {
				if pos+1 < len(value) && value[pos+1] == '}' {
					pos += 2
					continue
				}
				break
			}
			pos++
		}
		spec = value[start:pos]
		hasSpec = true
	}

	if pos >= len(value) {
		return 0, fmt.Errorf("format item at position %d is not closed", open)
	}
	if value[pos] != '}' {
		return 0, fmt.Errorf("format item at position %d: unexpected character %q", open, value[pos])
	}

	items.record(index, spec, hasSpec)
	return pos + 1, nil
}

// scanNumber reads a required digit run bounded below indexLimit.
func scanNumber(value string, pos int) (int, int, error) {
	start := pos
	n := 0
	for pos < len(value) && value[pos] >= '0' && value[pos] <= '9' {
		n = n*10 + int(value[pos]-'0')
		if n >= indexLimit {
			return 0, 0, fmt.Errorf("number starting at position %d exceeds the limit", start)
		}
		pos++
	}
	if pos == start {
		return 0, 0, fmt.Errorf("expected a digit at position %d", start)
	}
	return n, pos, nil
}

// skipSpaces advances past ASCII spaces only; other whitespace is not part
// of the format item grammar.
func skipSpaces(value string, pos int) int {
	for pos < len(value) && value[pos] == ' ' {
		pos++
	}
	return pos
}
