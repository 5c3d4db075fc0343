package html2mark

import (
	"bytes"
	"strings"
	"unicode/utf8"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/ansi"
)

const tabWidth = 8

// visibleLen counts the codepoints of s that are not part of an escape
// sequence.
func visibleLen(s string) int {
	return utf8.RuneCountInString(xansi.Strip(s))
}

// escapeEnd returns the index just past the escape sequence starting at
// s[i], which must be ansi.Marker. CSI sequences end at their final letter,
// OSC sequences at BEL or ST.
func escapeEnd(s string, i int) int {
	if i+1 >= len(s) {
		return len(s)
	}
	switch s[i+1] {
	case '[':
		for j := i + 2; j < len(s); j++ {
			if ansi.IsTerminator(rune(s[j])) {
				return j + 1
			}
		}
		return len(s)
	case ']':
		for j := i + 2; j < len(s); j++ {
			if s[j] == '\a' {
				return j + 1
			}
			if s[j] == ansi.Marker && j+1 < len(s) && s[j+1] == '\\' {
				return j + 2
			}
		}
		return len(s)
	}
	return i + 2
}

// isSGR reports whether seq is exactly one Select Graphic Rendition sequence.
func isSGR(seq string) bool {
	if len(seq) < 3 || !strings.HasPrefix(seq, "\x1b[") || seq[len(seq)-1] != 'm' {
		return false
	}
	for i := 2; i < len(seq)-1; i++ {
		c := seq[i]
		if (c < '0' || c > '9') && c != ';' {
			return false
		}
	}
	return true
}

func isResetSGR(seq string) bool {
	return strings.Trim(seq[2:len(seq)-1], "0;") == ""
}

// squashSGR drops every SGR sequence that is immediately followed by
// another one. Each SGR in the table sets the full state, so only the last
// of an adjacent run has any effect.
func squashSGR(s string) string {
	if strings.IndexByte(s, ansi.Marker) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	pending := ""
	for i := 0; i < len(s); {
		if s[i] == ansi.Marker {
			end := escapeEnd(s, i)
			seq := s[i:end]
			if isSGR(seq) {
				pending = seq
				i = end
				continue
			}
			b.WriteString(pending)
			pending = ""
			b.WriteString(seq)
			i = end
			continue
		}
		b.WriteString(pending)
		pending = ""
		b.WriteByte(s[i])
		i++
	}
	b.WriteString(pending)
	return b.String()
}

// lastVisible returns the last byte of b that is not part of a trailing SGR
// sequence.
func lastVisible(b []byte) (byte, bool) {
	for len(b) > 0 {
		if b[len(b)-1] == 'm' {
			if i := bytes.LastIndexByte(b, ansi.Marker); i >= 0 && isSGR(string(b[i:])) {
				b = b[:i]
				continue
			}
		}
		return b[len(b)-1], true
	}
	return 0, false
}

// codeNewline stands in for a newline inside a code span until blank lines
// have been squashed.
const codeNewline = "\ue000"

// normalizeNewlines squashes runs of blank lines to a single blank line and
// leaves at most one trailing newline.
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\n\n") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	run := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			run++
			if run > 2 {
				continue
			}
		} else {
			run = 0
		}
		b.WriteByte(s[i])
	}
	out := b.String()
	trimmed := strings.TrimRight(out, "\n")
	if len(trimmed) < len(out) {
		return trimmed + "\n"
	}
	return out
}

func prefixLines(s, first, rest string) string {
	lines := strings.Split(s, "\n")
	var b strings.Builder
	for i, line := range lines {
		if i == 0 {
			b.WriteString(first)
		} else {
			b.WriteByte('\n')
			b.WriteString(rest)
		}
		b.WriteString(line)
	}
	return b.String()
}
