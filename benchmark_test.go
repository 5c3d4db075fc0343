package html2mark

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
)

func BenchmarkConvertSample(b *testing.B) {
	src := string(readSample(b))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Convert(src, UnderscoredHeadings|MakeReferenceLinks)
	}
}

func BenchmarkConvertFlags(b *testing.B) {
	src := string(readSample(b))
	variants := map[string]Flags{
		"plain":  Default,
		"refs":   MakeReferenceLinks,
		"colors": Colors,
		"all":    UnderscoredHeadings | MakeReferenceLinks | Colors | Wrap,
	}
	for name, flags := range variants {
		flags := flags
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Convert(src, flags)
			}
		})
	}
}

func BenchmarkRenderWrapped(b *testing.B) {
	data := readSample(b)
	widths := []int{50, 60, 80}
	for _, width := range widths {
		width := width
		b.Run(intToWidthLabel(width), func(b *testing.B) {
			b.ReportAllocs()
			reader := bytes.NewReader(data)
			for i := 0; i < b.N; i++ {
				reader.Reset(data)
				_ = Render(RenderRequest{
					Reader:  reader,
					Writer:  io.Discard,
					Flags:   Colors | Wrap,
					Options: []Option{WithWrapWidth(width)},
				})
			}
		})
	}
}

func BenchmarkHTTPRender(b *testing.B) {
	data := readSample(b)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}))
	defer server.Close()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := HTTPRender(context.Background(), HTTPRenderRequest{
			URL:    server.URL,
			Writer: io.Discard,
			Flags:  Wrap,
		}); err != nil {
			b.Fatalf("render http: %v", err)
		}
	}
}

func intToWidthLabel(width int) string {
	return "w" + strconv.Itoa(width)
}
