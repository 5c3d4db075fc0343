package html2mark

import (
	"strconv"
	"strings"
)

type reference struct {
	index int
	url   string
	title string
}

// references collects reference-style link definitions for one conversion.
type references struct {
	entries []reference
}

func (r *references) reset() {
	r.entries = r.entries[:0]
}

// register records url and returns its 1-based index.
func (r *references) register(url, title string) int {
	index := len(r.entries) + 1
	r.entries = append(r.entries, reference{index: index, url: url, title: title})
	return index
}

// appendBlock appends the trailing definitions to body, separated by a blank
// line.
func (r *references) appendBlock(body string, styles Styles, colors bool) string {
	if len(r.entries) == 0 {
		return body
	}
	var b strings.Builder
	b.WriteString(body)
	if body != "" && !strings.HasSuffix(body, "\n") {
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	for _, ref := range r.entries {
		marker := "[" + strconv.Itoa(ref.index) + "]"
		if colors {
			b.WriteString(styles.LinkURL.Prefix)
			b.WriteString(marker)
			b.WriteString(sgrReset)
		} else {
			b.WriteString(marker)
		}
		b.WriteString(": ")
		b.WriteString(ref.url)
		if ref.title != "" {
			b.WriteString(` "`)
			b.WriteString(ref.title)
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
