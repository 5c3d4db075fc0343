package html2mark

import (
	"sort"
	"strings"
)

const sgrReset = "\x1b[0m"

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the color codes used by the renderer.
//
// Inline spans pick their code from the emphasis, strong and heading
// context they are nested in; the remaining fields color fixed markers.
type Styles struct {
	Emphasis       Style
	Strong         Style
	EmphasisStrong Style
	Heading        Style
	HeadingStrong  Style
	LinkText       Style
	LinkURL        Style
	ListMarker     Style
	QuoteMarker    Style
	Rule           Style
}

// Theme provides named styles for colored output.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func sgr(params string) Style {
	return Style{Prefix: "\x1b[" + params + "m"}
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: Styles{
		Emphasis:       sgr("00;36"),
		Strong:         sgr("01;37"),
		EmphasisStrong: sgr("01;36"),
		Heading:        sgr("00;35"),
		HeadingStrong:  sgr("01;35"),
		LinkText:       sgr("00;34"),
		LinkURL:        sgr("00;32"),
		ListMarker:     sgr("00;33"),
		QuoteMarker:    sgr("00;33"),
		Rule:           sgr("00;35"),
	}},
	"bright": theme{name: "bright", styles: Styles{
		Emphasis:       sgr("00;96"),
		Strong:         sgr("01;97"),
		EmphasisStrong: sgr("01;96"),
		Heading:        sgr("00;95"),
		HeadingStrong:  sgr("01;95"),
		LinkText:       sgr("00;94"),
		LinkURL:        sgr("00;92"),
		ListMarker:     sgr("00;93"),
		QuoteMarker:    sgr("00;93"),
		Rule:           sgr("00;95"),
	}},
	"mono": theme{name: "mono", styles: Styles{
		Emphasis:       sgr("00;03"),
		Strong:         sgr("01"),
		EmphasisStrong: sgr("01;03"),
		Heading:        sgr("01;04"),
		HeadingStrong:  sgr("01;04"),
		LinkText:       sgr("00;04"),
		LinkURL:        sgr("00;02"),
		ListMarker:     sgr("01"),
		QuoteMarker:    sgr("00;02"),
		Rule:           sgr("00;02"),
	}},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// spanContext records which coloring tags enclose a span.
type spanContext struct {
	emphasis bool
	strong   bool
	heading  bool
}

// inline returns the code for text in the given context. The zero Style
// means uncolored.
func (s Styles) inline(ctx spanContext) Style {
	switch {
	case ctx.heading && ctx.strong:
		return s.HeadingStrong
	case ctx.heading && ctx.emphasis:
		return s.Emphasis
	case ctx.heading:
		return s.Heading
	case ctx.emphasis && ctx.strong:
		return s.EmphasisStrong
	case ctx.emphasis:
		return s.Emphasis
	case ctx.strong:
		return s.Strong
	}
	return Style{}
}

// restore returns the sequence that brings the terminal back to style st.
func restore(st Style) string {
	if st.Prefix == "" {
		return sgrReset
	}
	return st.Prefix
}
