package html2mark

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
)

func TestWrapWidthBounds(t *testing.T) {
	src := string(readSample(t))
	assertWidths := func(name string, flags Flags, opts ...Option) {
		for width := 20; width <= 100; width += 5 {
			out := Convert(src, flags|Wrap, append(opts, WithWrapWidth(width))...)
			for i, line := range strings.Split(out, "\n") {
				plain := stripANSI(line)
				if strings.Contains(plain, "\t") {
					continue
				}
				if ansi.PrintableRuneWidth(plain) > width {
					t.Fatalf("%s: line %d exceeds width %d: %q", name, i+1, width, plain)
				}
			}
		}
	}
	assertWidths("plain", Default)
	assertWidths("refs", UnderscoredHeadings|MakeReferenceLinks)
	assertWidths("colors", Colors)
	assertWidths("colors-osc8", Colors, WithOSC8(true))
}

func TestWrapPreservesWords(t *testing.T) {
	out := Convert(lorem, Wrap, WithWrapWidth(17))
	if got := strings.Join(strings.Fields(out), " "); got != lorem {
		t.Fatalf("wrapping lost text\nwant: %q\n got: %q", lorem, got)
	}
	for _, line := range lines(out) {
		if len([]rune(line)) > 17 {
			t.Fatalf("line too long: %q", line)
		}
	}
}
