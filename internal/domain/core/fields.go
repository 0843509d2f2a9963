package core

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Initials returns up to two upper-case initials for an avatar placeholder.
func Initials(name string) string {
	var out []rune
	for _, part := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(part)
		if !unicode.IsLetter(r) {
			continue
		}
		out = append(out, unicode.ToUpper(r))
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}

// ContactLine joins the non-empty contact fields of an employee.
func ContactLine(email, phone string) string {
	parts := make([]string, 0, 2)
	for _, v := range []string{email, phone} {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " · ")
}
