package utils

import (
	"strings"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitEscaped splits raw on any of seps, honoring a backslash escape before a
// separator. Escapes of separators are removed from the parts, parts are
// trimmed, and empty parts are dropped.
func SplitEscaped(raw string, seps ...rune) []string {
	isSep := func(r rune) bool {
		for _, s := range seps {
			if r == s {
				return true
			}
		}
		return false
	}

	out := []string{}
	var cur strings.Builder
	flush := func() {
		p := strings.TrimSpace(cur.String())
		if p != "" {
			out = append(out, p)
		}
		cur.Reset()
	}

	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' && i+1 < len(runes) && isSep(runes[i+1]) {
			cur.WriteRune(runes[i+1])
			i++
			continue
		}
		if isSep(r) {
			flush()
			continue
		}
		cur.WriteRune(r)
	}
	flush()
	return out
}

// Fallback returns v trimmed, or fallback when v is blank.
func Fallback(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
