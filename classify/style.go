// Package classify maps draw.io style descriptor strings to shape and
// relationship types.
//
// A style descriptor is a semicolon-separated bag of key=value pairs and
// bare flags (for example "rounded=1;whiteSpace=wrap;fillColor=#dae8fc").
// The same token frequently co-occurs with others, so classification is an
// ordered first-match rule list: earlier rules win, and the order is
// semantically load-bearing.
package classify

import "strings"

// Style is a style descriptor parsed once into a queryable token bag, so
// classifier rules run as predicates over it rather than rescanning the
// raw string per rule.
type Style struct {
	raw    string // Lowercased raw descriptor
	values map[string]string
	flags  map[string]bool
}

// ParseStyle parses a raw style descriptor. Shape matching is
// case-insensitive, so keys, values, and the retained raw string are all
// lowercased. An empty descriptor parses to an empty (but usable) Style.
func ParseStyle(raw string) Style {
	s := Style{
		raw:    strings.ToLower(raw),
		values: make(map[string]string),
		flags:  make(map[string]bool),
	}
	for _, token := range strings.Split(s.raw, ";") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if eq := strings.IndexByte(token, '='); eq >= 0 {
			s.values[token[:eq]] = token[eq+1:]
		} else {
			s.flags[token] = true
		}
	}
	return s
}

// Empty reports whether the descriptor carried no tokens at all.
func (s Style) Empty() bool {
	return len(s.values) == 0 && len(s.flags) == 0
}

// Value returns the value of a key=value token, lowercased.
func (s Style) Value(key string) string {
	return s.values[key]
}

// Flag reports whether a bare token is present.
func (s Style) Flag(name string) bool {
	return s.flags[name]
}

// Contains reports whether the descriptor contains the given substring
// anywhere, case-insensitively. Shape families show up both as bare flags
// ("rhombus") and as key values ("shape=mxgraph.bpmn.task"), so containment
// over the whole descriptor is the matching contract.
func (s Style) Contains(sub string) bool {
	return strings.Contains(s.raw, strings.ToLower(sub))
}
