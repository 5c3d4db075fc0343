package html2mark

import "strings"

// Collapse replaces every run of ASCII whitespace with a single space.
// With trimLeading or trimTrailing set, a space left at that end of the
// result is removed as well.
func Collapse(text string, trimLeading, trimTrailing bool) string {
	var b strings.Builder
	b.Grow(len(text))
	inSpace := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if isCollapsible(c) {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		b.WriteByte(c)
		inSpace = false
	}
	out := b.String()
	if trimLeading {
		out = strings.TrimPrefix(out, " ")
	}
	if trimTrailing {
		out = strings.TrimSuffix(out, " ")
	}
	return out
}

func isCollapsible(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func trimSpaces(s string) string {
	return strings.Trim(s, " ")
}

func trimBlank(s string) string {
	return strings.Trim(s, " \t\n\r")
}

// splitSpaces separates leading and trailing spaces from the core of s so
// inline markers can hug the text.
func splitSpaces(s string) (lead, core, trail string) {
	core = strings.TrimLeft(s, " ")
	lead = s[:len(s)-len(core)]
	trimmed := strings.TrimRight(core, " ")
	trail = core[len(trimmed):]
	return lead, trimmed, trail
}
