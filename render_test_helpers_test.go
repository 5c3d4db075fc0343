package html2mark

import (
	"os"
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func stripANSI(s string) string {
	return xansi.Strip(s)
}

func readSample(t testing.TB) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/sample.html")
	if err != nil {
		t.Fatalf("read sample.html: %v", err)
	}
	return data
}

// lorem is the paragraph used by the wrapping tests.
const lorem = "Lorem ipsum dolor sit amet, consectetur adipisicing elit, sed do " +
	"eiusmod tempor incididunt ut labore et dolore magna aliqua."

func assertConvert(t *testing.T, src string, flags Flags, want string, opts ...Option) {
	t.Helper()
	if got := Convert(src, flags, opts...); got != want {
		t.Fatalf("Convert(%q)\nwant: %q\n got: %q", src, want, got)
	}
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
