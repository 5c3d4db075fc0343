package html2mark

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type tagKind uint8

const (
	kindNone tagKind = iota
	kindUnknown
	kindParagraph
	kindEmphasis
	kindStrong
	kindCode
	kindHeading
	kindRule
	kindBreak
	kindLink
	kindImage
	kindPre
	kindOrderedList
	kindUnorderedList
	kindListItem
	kindBlockquote
	kindDocument
	kindDiscard
	kindBlock
	kindInline
	kindVoid
)

// tag is a classified element name. name is kept for every kind so unknown
// tags can be echoed back and close tags can be matched.
type tag struct {
	kind  tagKind
	name  string
	level int
}

func classify(name string) tag {
	t := tag{name: name}
	if name == "" {
		return t
	}
	a := atom.Lookup([]byte(name))
	switch a {
	case atom.P:
		t.kind = kindParagraph
	case atom.Em, atom.I:
		t.kind = kindEmphasis
	case atom.B, atom.Strong:
		t.kind = kindStrong
	case atom.Code, atom.Tt, atom.Kbd, atom.Samp, atom.Var:
		t.kind = kindCode
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		t.kind = kindHeading
		t.level = int(name[1] - '0')
	case atom.Hr:
		t.kind = kindRule
	case atom.Br:
		t.kind = kindBreak
	case atom.A:
		t.kind = kindLink
	case atom.Img:
		t.kind = kindImage
	case atom.Pre:
		t.kind = kindPre
	case atom.Ol:
		t.kind = kindOrderedList
	case atom.Ul:
		t.kind = kindUnorderedList
	case atom.Li:
		t.kind = kindListItem
	case atom.Blockquote:
		t.kind = kindBlockquote
	case atom.Html, atom.Body:
		t.kind = kindDocument
	case atom.Head, atom.Script, atom.Style, atom.Template:
		t.kind = kindDiscard
	case atom.Div, atom.Section, atom.Article, atom.Main, atom.Header, atom.Footer,
		atom.Nav, atom.Aside, atom.Figure, atom.Figcaption, atom.Address:
		t.kind = kindBlock
	case atom.Span, atom.Font, atom.Small, atom.Abbr, atom.Cite, atom.Label, atom.U,
		atom.S, atom.Sub, atom.Sup, atom.Mark, atom.Q, atom.Time:
		t.kind = kindInline
	case atom.Area, atom.Base, atom.Col, atom.Embed, atom.Input, atom.Keygen,
		atom.Link, atom.Meta, atom.Param, atom.Source, atom.Track, atom.Wbr:
		t.kind = kindVoid
	default:
		t.kind = kindUnknown
	}
	return t
}

// void reports whether the tag never has content and renders on sight.
func (t tag) void() bool {
	switch t.kind {
	case kindRule, kindBreak, kindImage, kindVoid:
		return true
	}
	return false
}

func (t tag) list() bool {
	return t.kind == kindOrderedList || t.kind == kindUnorderedList
}

// container reports whether an implicit paragraph close must stop at t.
func (t tag) container() bool {
	switch t.kind {
	case kindListItem, kindOrderedList, kindUnorderedList, kindBlockquote,
		kindBlock, kindPre, kindDocument, kindDiscard:
		return true
	}
	return t.name == "td" || t.name == "th"
}

// verbatim reports whether text inside t keeps its whitespace.
func (t tag) verbatim() bool {
	return t.kind == kindPre || t.kind == kindCode
}

type tokenType uint8

const (
	tokenText tokenType = iota
	tokenOpen
	tokenClose
)

// token is one unit of tokenizer output. Self-closing syntax is folded into
// tokenOpen: void elements render on sight and HTML ignores the slash on
// everything else.
type token struct {
	typ   tokenType
	tag   tag
	text  string
	attrs []html.Attribute
}

// tokenizer adapts html.Tokenizer to the token stream the converter folds.
type tokenizer struct {
	z *html.Tokenizer
}

func newTokenizer(r io.Reader) *tokenizer {
	return &tokenizer{z: html.NewTokenizer(r)}
}

// next returns the next token, or false at end of input.
func (t *tokenizer) next() (token, bool) {
	for {
		switch t.z.Next() {
		case html.ErrorToken:
			return token{}, false
		case html.TextToken:
			return token{typ: tokenText, text: string(t.z.Text())}, true
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := t.z.Token()
			return token{typ: tokenOpen, tag: classify(tok.Data), attrs: tok.Attr}, true
		case html.EndTagToken:
			tok := t.z.Token()
			return token{typ: tokenClose, tag: classify(tok.Data)}, true
		}
	}
}

// err returns the tokenizer error that ended the stream, or nil at a clean
// end of input.
func (t *tokenizer) err() error {
	if err := t.z.Err(); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func attr(attrs []html.Attribute, key string) (string, bool) {
	for _, a := range attrs {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
