package html2mark

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"
)

// render turns a closed frame into Markdown. The frame has already been
// popped, so c.stack holds its ancestors.
func (c *converter) render(f *frame) string {
	content := string(f.content)
	switch f.tag.kind {
	case kindNone, kindInline:
		return content
	case kindDocument:
		return strings.TrimRight(strings.TrimLeft(content, " \t\n"), " ")
	case kindDiscard:
		return ""
	case kindParagraph:
		return block(trimSpaces(content))
	case kindBlock:
		return block(trimBlank(content))
	case kindEmphasis:
		return c.span(content, "_", func(ctx *spanContext) { ctx.emphasis = true })
	case kindStrong:
		return c.span(content, "**", func(ctx *spanContext) { ctx.strong = true })
	case kindCode:
		return c.code(content)
	case kindHeading:
		return c.heading(content, f.tag.level)
	case kindRule:
		body := "* * *"
		if c.colors() {
			body = c.cfg.styles.Rule.Prefix + body + c.restore()
		}
		return "\n" + body + "\n"
	case kindBreak:
		return "\n"
	case kindLink:
		href, ok := attr(f.attrs, "href")
		if !ok {
			return content
		}
		title, _ := attr(f.attrs, "title")
		return c.link(trimSpaces(content), href, title, false)
	case kindImage:
		alt, _ := attr(f.attrs, "alt")
		src, ok := attr(f.attrs, "src")
		if !ok {
			return alt
		}
		title, _ := attr(f.attrs, "title")
		return c.link(alt, src, title, true)
	case kindPre:
		body := strings.TrimPrefix(content, "\n")
		body = strings.TrimSuffix(body, "\n")
		if body == "" {
			return ""
		}
		return "\n" + prefixLines(body, "\t", "\t") + "\n"
	case kindOrderedList, kindUnorderedList:
		return block(strings.Trim(content, " \n"))
	case kindListItem:
		return c.listItem(strings.Trim(content, " \n"))
	case kindBlockquote:
		return c.quote(content)
	case kindVoid:
		return "<" + f.tag.name + ">"
	}
	return "<" + f.tag.name + ">" + content + "</" + f.tag.name + ">"
}

func block(s string) string {
	if s == "" {
		return ""
	}
	return "\n" + s + "\n"
}

func (c *converter) colors() bool {
	return c.cfg.flags.Has(Colors)
}

// restore returns the code that brings the output back to the color of the
// enclosing spans.
func (c *converter) restore() string {
	return restore(c.cfg.styles.inline(c.context()))
}

// span wraps content in marker, or in the color for its context. Spaces at
// either edge stay outside the markup.
func (c *converter) span(content, marker string, set func(*spanContext)) string {
	lead, core, trail := splitSpaces(content)
	if core == "" {
		return content
	}
	if !c.colors() {
		return lead + marker + core + marker + trail
	}
	ctx := c.context()
	inner := ctx
	set(&inner)
	styles := c.cfg.styles
	return lead + styles.inline(inner).Prefix + core + restore(styles.inline(ctx)) + trail
}

func (c *converter) code(content string) string {
	if content == "" {
		return ""
	}
	if c.inside(kindPre) {
		return content
	}
	fence := strings.Repeat("`", longestRun(content, '`')+1)
	content = strings.ReplaceAll(content, "\n", codeNewline)
	if len(fence) > 1 {
		return fence + " " + content + " " + fence
	}
	return fence + content + fence
}

func longestRun(s string, b byte) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] != b {
			run = 0
			continue
		}
		run++
		if run > longest {
			longest = run
		}
	}
	return longest
}

func (c *converter) heading(content string, level int) string {
	text := Collapse(content, true, true)
	if text == "" {
		return ""
	}
	var body string
	if level <= 2 && c.cfg.flags.Has(UnderscoredHeadings) {
		underline := "="
		if level == 2 {
			underline = "-"
		}
		body = text + "\n" + strings.Repeat(underline, visibleLen(text))
	} else {
		body = strings.Repeat("#", level) + " " + text
	}
	if c.colors() {
		ctx := c.context()
		inner := ctx
		inner.heading = true
		styles := c.cfg.styles
		body = styles.inline(inner).Prefix + body + restore(styles.inline(ctx))
	}
	return "\n" + body + "\n"
}

// link renders a link or image. URLs at least minRefLength codepoints long
// become numbered references when MakeReferenceLinks is set.
func (c *converter) link(text, url, title string, image bool) string {
	var target string
	if c.cfg.flags.Has(MakeReferenceLinks) && utf8.RuneCountInString(url) >= c.cfg.minRefLength {
		target = "[" + strconv.Itoa(c.refs.register(url, title)) + "]"
	} else if title != "" {
		target = "(" + url + ` "` + title + `")`
	} else {
		target = "(" + url + ")"
	}
	if !c.colors() {
		if image {
			return "![" + text + "]" + target
		}
		return "[" + text + "]" + target
	}
	label := text
	if image {
		label = "![" + text + "]"
	}
	if c.cfg.osc8 {
		label = hyperlink(url, label)
	}
	styles := c.cfg.styles
	return styles.LinkText.Prefix + label + styles.LinkURL.Prefix + target + c.restore()
}

// listItem renders an item of the enclosing list. Items outside a list are
// rendered as paragraphs. Stray text ahead of an item in the list is ended
// with a newline so the marker starts its own line.
func (c *converter) listItem(body string) string {
	parent := c.top()
	if parent == nil || !parent.tag.list() {
		return block(body)
	}
	lead := ""
	if b, ok := lastVisible(bytes.TrimRight(parent.content, " ")); ok && b != '\n' {
		lead = "\n"
	}
	parent.items++
	marker, indent := "*", "  "
	if parent.tag.kind == kindOrderedList {
		marker = strconv.Itoa(parent.items) + "."
		indent = strings.Repeat(" ", len(marker))
	}
	if c.colors() {
		marker = c.cfg.styles.ListMarker.Prefix + marker + c.restore()
	}
	if body == "" {
		return lead + marker + "\n"
	}
	return lead + prefixLines(body, marker+" ", indent) + "\n"
}

func (c *converter) quote(content string) string {
	body := strings.TrimRight(content, " \n")
	if strings.TrimSpace(body) == "" {
		return ""
	}
	marker := ">"
	if c.colors() {
		marker = c.cfg.styles.QuoteMarker.Prefix + marker + c.restore()
	}
	return "\n" + prefixLines(body, marker+" ", marker+" ") + "\n"
}
