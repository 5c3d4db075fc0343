package html2mark

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
)

var converterPool = sync.Pool{
	New: func() any {
		return &converter{}
	},
}

// frame is one open tag and the output folded into it so far.
type frame struct {
	tag     tag
	attrs   []html.Attribute
	content []byte
	items   int
}

// converter folds a token stream into Markdown. A converter is owned by a
// single conversion; pooled values are reset before reuse.
type converter struct {
	cfg    renderConfig
	stack  []frame
	result []byte
	refs   references
}

// Convert renders an HTML fragment as Markdown. It never fails: malformed
// markup is closed, ignored or echoed back as described in the package
// documentation.
func Convert(src string, flags Flags, opts ...Option) string {
	c := converterPool.Get().(*converter)
	c.reset(newRenderConfig(flags, opts))
	c.consume(newTokenizer(strings.NewReader(src)))
	out := c.finish()
	c.reset(renderConfig{})
	converterPool.Put(c)
	return out
}

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Flags   Flags
	Options []Option
}

// Render reads all HTML from Reader and writes the converted output to
// Writer.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	c := converterPool.Get().(*converter)
	c.reset(newRenderConfig(req.Flags, req.Options))
	tz := newTokenizer(bytes.NewReader(src))
	c.consume(tz)
	out := c.finish()
	c.reset(renderConfig{})
	converterPool.Put(c)
	if err := tz.err(); err != nil {
		return fmt.Errorf("render: tokenize: %w", err)
	}
	if _, err := io.WriteString(req.Writer, out); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	return nil
}

func (c *converter) reset(cfg renderConfig) {
	c.cfg = cfg
	for i := range c.stack {
		c.stack[i] = frame{}
	}
	c.stack = c.stack[:0]
	c.result = c.result[:0]
	c.refs.reset()
}

func (c *converter) consume(tz *tokenizer) {
	for {
		tok, ok := tz.next()
		if !ok {
			break
		}
		switch tok.typ {
		case tokenText:
			c.text(tok.text)
		case tokenOpen:
			c.open(tok)
		case tokenClose:
			c.close(tok.tag)
		}
	}
	c.collapseTo(0)
}

func (c *converter) finish() string {
	c.collapseTo(0)
	colors := c.cfg.flags.Has(Colors)
	out := normalizeNewlines(string(c.result))
	out = strings.ReplaceAll(out, codeNewline, "\n")
	out = c.refs.appendBlock(out, c.cfg.styles, colors)
	if colors {
		out = squashSGR(out)
	}
	if c.cfg.flags.Has(Wrap) {
		out = wrapText(out, c.cfg.wrapWidth)
	}
	out = strings.ReplaceAll(out, "\u00a0", " ")
	if colors {
		out = sgrReset + squashSGR(out+sgrReset)
	}
	return out
}

func (c *converter) text(s string) {
	if s == "" {
		return
	}
	if c.verbatim() {
		c.write(s)
		return
	}
	s = Collapse(s, false, false)
	if strings.HasPrefix(s, " ") && c.atBreak() {
		s = s[1:]
	}
	c.write(s)
}

func (c *converter) open(tok token) {
	switch tok.tag.kind {
	case kindParagraph:
		c.closeImplicit(kindParagraph, tag.container)
	case kindListItem:
		c.closeImplicit(kindListItem, tag.list)
	}
	if tok.tag.void() {
		c.emit(c.render(&frame{tag: tok.tag, attrs: tok.attrs}))
		return
	}
	c.stack = append(c.stack, frame{tag: tok.tag, attrs: tok.attrs})
}

// close folds every frame down to the nearest one named like t. A close tag
// without a matching frame is ignored.
func (c *converter) close(t tag) {
	for i := len(c.stack) - 1; i >= 0; i-- {
		if c.stack[i].tag.name == t.name {
			c.collapseTo(i)
			return
		}
	}
}

// closeImplicit folds down to the nearest open frame of kind, unless a frame
// for which stop returns true lies in between.
func (c *converter) closeImplicit(kind tagKind, stop func(tag) bool) {
	for i := len(c.stack) - 1; i >= 0; i-- {
		t := c.stack[i].tag
		if t.kind == kind {
			c.collapseTo(i)
			return
		}
		if stop(t) {
			return
		}
	}
}

// collapseTo pops and renders frames until only depth frames remain.
func (c *converter) collapseTo(depth int) {
	for len(c.stack) > depth {
		last := len(c.stack) - 1
		f := c.stack[last]
		c.stack[last] = frame{}
		c.stack = c.stack[:last]
		c.emit(c.render(&f))
	}
}

// top returns the innermost open frame, or nil outside any tag.
func (c *converter) top() *frame {
	if len(c.stack) == 0 {
		return nil
	}
	return &c.stack[len(c.stack)-1]
}

func (c *converter) target() *[]byte {
	if f := c.top(); f != nil {
		return &f.content
	}
	return &c.result
}

func (c *converter) write(s string) {
	dst := c.target()
	*dst = append(*dst, s...)
}

// emit appends rendered output. Output starting a new line drops the spaces
// left at the end of the current one.
func (c *converter) emit(s string) {
	if s == "" {
		return
	}
	dst := c.target()
	if s[0] == '\n' && !c.verbatim() {
		*dst = bytes.TrimRight(*dst, " ")
	}
	*dst = append(*dst, s...)
}

// atBreak reports whether the output so far ends at a line start or after a
// space, where a collapsed leading space carries no meaning.
func (c *converter) atBreak() bool {
	for i := len(c.stack) - 1; i >= 0; i-- {
		if b, ok := lastVisible(c.stack[i].content); ok {
			return b == ' ' || b == '\n'
		}
	}
	b, ok := lastVisible(c.result)
	return !ok || b == ' ' || b == '\n'
}

func (c *converter) verbatim() bool {
	for i := range c.stack {
		if c.stack[i].tag.verbatim() {
			return true
		}
	}
	return false
}

func (c *converter) inside(kind tagKind) bool {
	for i := range c.stack {
		if c.stack[i].tag.kind == kind {
			return true
		}
	}
	return false
}

// context reports the coloring tags enclosing the frame being rendered.
func (c *converter) context() spanContext {
	var ctx spanContext
	for i := range c.stack {
		switch c.stack[i].tag.kind {
		case kindEmphasis:
			ctx.emphasis = true
		case kindStrong:
			ctx.strong = true
		case kindHeading:
			ctx.heading = true
		}
	}
	return ctx
}
