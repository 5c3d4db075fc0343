package html2mark

// Flags selects independent rendering features. Combine with bitwise OR.
type Flags uint8

const (
	// UnderscoredHeadings renders h1 and h2 as Setext headings.
	UnderscoredHeadings Flags = 1 << iota
	// MakeReferenceLinks turns long link and image URLs into numbered references.
	MakeReferenceLinks
	// Colors wraps rendered spans in ANSI SGR codes.
	Colors
	// Wrap hard-wraps the output to the configured width.
	Wrap
)

// Default renders plain Markdown with inline links and hashed headings.
const Default Flags = 0

const (
	// DefaultMinReferenceLength is the URL length at which MakeReferenceLinks
	// switches a link to reference style.
	DefaultMinReferenceLength = 20
	// DefaultWrapWidth is used when Wrap is set without WithWrapWidth.
	DefaultWrapWidth = 80
)

// Has reports whether all bits of f2 are set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// Option configures a conversion.
type Option func(*renderConfig)

type renderConfig struct {
	flags        Flags
	minRefLength int
	wrapWidth    int
	styles       Styles
	osc8         bool
}

func newRenderConfig(flags Flags, opts []Option) renderConfig {
	cfg := renderConfig{
		flags:        flags,
		minRefLength: DefaultMinReferenceLength,
		wrapWidth:    DefaultWrapWidth,
		styles:       DefaultTheme().Styles(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithMinReferenceLength sets the URL length (in codepoints) from which links
// become reference-style when MakeReferenceLinks is set.
func WithMinReferenceLength(n int) Option {
	return func(cfg *renderConfig) {
		cfg.minRefLength = n
	}
}

// WithWrapWidth sets the wrap column used when Wrap is set. Zero or a
// negative width disables wrapping.
func WithWrapWidth(width int) Option {
	return func(cfg *renderConfig) {
		cfg.wrapWidth = width
	}
}

// WithTheme selects the color table used when Colors is set.
func WithTheme(theme Theme) Option {
	return func(cfg *renderConfig) {
		if theme != nil {
			cfg.styles = theme.Styles()
		}
	}
}

// WithOSC8 enables or disables OSC 8 hyperlinks on link text. Hyperlinks are
// only emitted together with Colors.
func WithOSC8(enabled bool) Option {
	return func(cfg *renderConfig) {
		cfg.osc8 = enabled
	}
}
