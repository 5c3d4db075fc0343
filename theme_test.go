package html2mark

import "testing"

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"default", "bright", "mono", " Bright "} {
		if _, ok := ThemeByName(name); !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
	}
	if _, ok := ThemeByName("solarized"); ok {
		t.Fatalf("unexpected theme solarized")
	}
	theme, ok := ThemeByName("")
	if !ok || theme.Name() != "default" {
		t.Fatalf("empty name must select the default theme")
	}
}

func TestAvailableThemesSorted(t *testing.T) {
	names := AvailableThemes()
	want := []string{"bright", "default", "mono"}
	if len(names) != len(want) {
		t.Fatalf("unexpected themes: %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("unexpected themes: %v", names)
		}
	}
}

func TestInlineStyleTable(t *testing.T) {
	s := DefaultTheme().Styles()
	cases := []struct {
		ctx  spanContext
		want string
	}{
		{spanContext{}, ""},
		{spanContext{emphasis: true}, "\x1b[00;36m"},
		{spanContext{strong: true}, "\x1b[01;37m"},
		{spanContext{emphasis: true, strong: true}, "\x1b[01;36m"},
		{spanContext{heading: true}, "\x1b[00;35m"},
		{spanContext{heading: true, strong: true}, "\x1b[01;35m"},
		{spanContext{heading: true, emphasis: true}, "\x1b[00;36m"},
		{spanContext{heading: true, emphasis: true, strong: true}, "\x1b[01;35m"},
	}
	for _, tc := range cases {
		if got := s.inline(tc.ctx).Prefix; got != tc.want {
			t.Fatalf("inline(%+v) = %q, want %q", tc.ctx, got, tc.want)
		}
	}
	if restore(Style{}) != sgrReset {
		t.Fatalf("restoring the uncolored style must reset")
	}
}
