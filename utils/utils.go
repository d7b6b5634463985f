package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// SplitCSVSet turns "a, b,,c" into {a, b, c}. Blank entries are dropped.
func SplitCSVSet(raw string) map[string]bool {
	set := map[string]bool{}
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			set[item] = true
		}
	}
	return set
}

// NormalizeText composes the string to NFC, strips control characters other
// than newlines and tabs, and trims surrounding whitespace.
func NormalizeText(s string) string {
	t := norm.NFC.String(s)
	var b strings.Builder
	b.Grow(len(t))
	for _, r := range t {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// Contains reports whether v is one of options, ignoring surrounding whitespace.
func Contains(options []string, v string) bool {
	v = strings.TrimSpace(v)
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
