package html2mark

import (
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/ansi"
)

// lineWrapper hard-wraps rendered text. Widths count codepoints outside
// escape sequences, tabs count as tabWidth. The most recent SGR sequence is
// tracked so a line broken inside a colored span is closed with a reset and
// the color is reopened on the next line.
type lineWrapper struct {
	b      strings.Builder
	limit  int
	width  int
	active string
}

// wrapText reflows every line of s to at most limit visible columns.
func wrapText(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	w := &lineWrapper{limit: limit}
	w.b.Grow(len(s) + len(s)/8)
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			w.newline()
		}
		w.line(line)
	}
	return w.b.String()
}

func (w *lineWrapper) line(line string) {
	for i, word := range strings.Split(line, " ") {
		if i == 0 {
			w.place(word)
			continue
		}
		ww := wordWidth(word)
		if w.width+1+ww > w.limit {
			if ww == 0 {
				continue
			}
			w.newline()
			w.place(word)
			continue
		}
		w.b.WriteByte(' ')
		w.width++
		w.place(word)
	}
}

// place writes word at the current position, moving it to a fresh line or
// splitting it when it does not fit.
func (w *lineWrapper) place(word string) {
	for {
		ww := wordWidth(word)
		if w.width+ww <= w.limit {
			w.write(word)
			w.width += ww
			return
		}
		if w.width > 0 {
			w.newline()
			continue
		}
		head, tail := splitWord(word, w.limit)
		w.write(head)
		if tail == "" {
			w.width += wordWidth(head)
			return
		}
		w.newline()
		word = tail
	}
}

// write copies s to the output, remembering the last SGR sequence seen.
func (w *lineWrapper) write(s string) {
	for i := 0; i < len(s); {
		if s[i] != ansi.Marker {
			i++
			continue
		}
		end := escapeEnd(s, i)
		if seq := s[i:end]; isSGR(seq) {
			if isResetSGR(seq) {
				w.active = ""
			} else {
				w.active = seq
			}
		}
		i = end
	}
	w.b.WriteString(s)
}

func (w *lineWrapper) newline() {
	if w.active != "" {
		w.b.WriteString(sgrReset)
		w.b.WriteByte('\n')
		w.b.WriteString(w.active)
	} else {
		w.b.WriteByte('\n')
	}
	w.width = 0
}

func wordWidth(word string) int {
	n := 0
	for i := 0; i < len(word); {
		if word[i] == ansi.Marker {
			i = escapeEnd(word, i)
			continue
		}
		r, size := utf8.DecodeRuneInString(word[i:])
		n += runeWidth(r)
		i += size
	}
	return n
}

func runeWidth(r rune) int {
	if r == '\t' {
		return tabWidth
	}
	return 1
}

// splitWord cuts word after limit visible columns. At least one rune goes
// to head so callers always make progress.
func splitWord(word string, limit int) (head, tail string) {
	n := 0
	i := 0
	taken := false
	for i < len(word) {
		if word[i] == ansi.Marker {
			i = escapeEnd(word, i)
			continue
		}
		r, size := utf8.DecodeRuneInString(word[i:])
		rw := runeWidth(r)
		if taken && n+rw > limit {
			break
		}
		n += rw
		i += size
		taken = true
	}
	return word[:i], word[i:]
}
