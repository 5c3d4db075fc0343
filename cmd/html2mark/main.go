package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/html2mark"
	"pkt.systems/html2mark/internal/logger"
	"pkt.systems/version"
)

const defaultWidth = html2mark.DefaultWrapWidth

func init() {
	version.SetDefaultModule("pkt.systems/html2mark")
}

// options holds the resolved command line and config file settings.
type options struct {
	underscored  bool
	references   bool
	minRefLength int
	color        string
	wrap         bool
	width        int
	theme        string
	osc8         string
	encoding     string
	output       string
	strict       bool
	logLevel     string
	logJSON      bool
	verbose      bool
	quiet        bool
	configPath   string
	listThemes   bool
	showVersion  bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func newFlagSet(opts *options, stderr io.Writer) *pflag.FlagSet {
	flags := pflag.NewFlagSet("html2mark", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVarP(&opts.underscored, "underscored-headings", "u", false, "Render h1/h2 as underlined (Setext) headings")
	flags.BoolVarP(&opts.references, "reference-links", "r", false, "Move long link and image URLs into numbered references")
	flags.IntVar(&opts.minRefLength, "min-reference-length", html2mark.DefaultMinReferenceLength, "URL length from which links become references")
	flags.StringVarP(&opts.color, "color", "c", "auto", "ANSI colors: auto|always|never")
	flags.BoolVarP(&opts.wrap, "wrap", "W", false, "Hard-wrap output")
	flags.IntVarP(&opts.width, "width", "w", 0, "Wrap width (0 uses terminal width if available)")
	flags.StringVarP(&opts.theme, "theme", "t", "default", "Color theme name")
	flags.StringVarP(&opts.osc8, "osc8", "8", "auto", "OSC8 hyperlinks in color mode: auto|on|off")
	flags.StringVarP(&opts.encoding, "encoding", "e", "", "Input encoding (default: sniffed from BOM, meta tag or HTTP header)")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&opts.strict, "strict", false, "Fail on invalid UTF-8 or binary input instead of warning")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug|info|warn|error")
	flags.BoolVar(&opts.logJSON, "log-json", false, "Log as JSON")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Shorthand for --log-level=debug")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Shorthand for --log-level=error")
	flags.StringVar(&opts.configPath, "config", "", "YAML config file (default: <user config dir>/html2mark/config.yaml)")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.BoolVar(&opts.showVersion, "version", false, "Print version and exit")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: html2mark [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nInputs are files, file:// or http(s):// URLs. If none is given, HTML is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	return flags
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flags := newFlagSet(&opts, stderr)
	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	configPath, err := loadConfig(flags, &opts)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 2
	}

	level, err := resolveLogLevel(opts)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --log-level: %v\n", err)
		return 2
	}
	logger.Init(logger.Options{Level: level, JSON: opts.logJSON, Output: stderr})
	if configPath != "" {
		logger.Info("config loaded", "path", configPath)
	}

	if opts.showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if opts.listThemes {
		printThemes(stdout)
		return 0
	}

	theme, ok := html2mark.ThemeByName(opts.theme)
	if !ok {
		fmt.Fprintf(stderr, "unknown theme %q\n\n", opts.theme)
		printThemes(stderr)
		return 2
	}
	osc8, err := resolveOSC8(opts.osc8)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --osc8 %q: %v\n", opts.osc8, err)
		return 2
	}

	inputArgs := flags.Args()
	reader, closer, err := openInputs(inputArgs, stdin, opts.encoding)
	if err != nil {
		fmt.Fprintf(stderr, "open input: %v\n", err)
		return 1
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	src, err := io.ReadAll(reader)
	if err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return 1
	}
	logger.Debug("input read", "sources", len(inputArgs), "bytes", len(src))
	if err := html2mark.ValidateInput(src); err != nil {
		if opts.strict {
			fmt.Fprintf(stderr, "invalid input: %v\n", err)
			return 1
		}
		logger.Warn("input validation failed, converting anyway", "error", err)
	}

	writer, closeOut, err := resolveOutput(opts.output, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "open output: %v\n", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	colors, err := resolveColor(opts.color, writer)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --color %q: %v\n", opts.color, err)
		return 2
	}
	var mode html2mark.Flags
	if opts.underscored {
		mode |= html2mark.UnderscoredHeadings
	}
	if opts.references {
		mode |= html2mark.MakeReferenceLinks
	}
	if colors {
		mode |= html2mark.Colors
	}
	renderOpts := []html2mark.Option{
		html2mark.WithMinReferenceLength(opts.minRefLength),
		html2mark.WithTheme(theme),
		html2mark.WithOSC8(osc8),
	}
	if opts.wrap {
		mode |= html2mark.Wrap
		width := resolveWidth(opts.width, writer)
		renderOpts = append(renderOpts, html2mark.WithWrapWidth(width))
		logger.Debug("wrapping enabled", "width", width)
	}
	logger.Debug("rendering", "colors", colors, "theme", theme.Name(), "osc8", osc8)

	if err := html2mark.Render(html2mark.RenderRequest{
		Reader:  bytes.NewReader(src),
		Writer:  writer,
		Flags:   mode,
		Options: renderOpts,
	}); err != nil {
		logger.Error("render failed", "error", err)
		fmt.Fprintf(stderr, "render: %v\n", err)
		return 1
	}
	return 0
}

func resolveLogLevel(opts options) (slog.Level, error) {
	switch {
	case opts.verbose:
		return slog.LevelDebug, nil
	case opts.quiet:
		return slog.LevelError, nil
	}
	return logger.ParseLevel(opts.logLevel)
}

func printThemes(w io.Writer) {
	for _, name := range html2mark.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	return terminalWidth(w, defaultWidth)
}

func terminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if width, _, err := term.GetSize(fd); err == nil && width > 0 {
				return width
			}
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if width, err := strconv.Atoi(value); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}

// resolveColor decides whether to emit ANSI colors. In auto mode colors are
// used only on a terminal that supports them and when NO_COLOR is unset.
func resolveColor(mode string, w io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always", "on", "true", "1", "yes":
		return true, nil
	case "never", "off", "false", "0", "no":
		return false, nil
	case "", "auto":
		if termenv.EnvNoColor() {
			return false, nil
		}
		f, ok := w.(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) {
			return false, nil
		}
		return termenv.NewOutput(f).EnvColorProfile() != termenv.Ascii, nil
	default:
		return false, fmt.Errorf("expected auto|always|never")
	}
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return html2mark.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}
