package kcm

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// UnicodeEscape replaces every non-ASCII code point with a \uXXXX escape
// (lower case hex, at least four digits).
func UnicodeEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
			continue
		}
		fmt.Fprintf(&b, "\\u%04x", r)
	}
	return b.String()
}
