package html2mark

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPRender(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<h1>Hello</h1><p>from <b>HTTP</b></p>"))
	}))
	defer server.Close()

	var out bytes.Buffer
	if err := HTTPRender(context.Background(), HTTPRenderRequest{
		URL:    server.URL,
		Writer: &out,
	}); err != nil {
		t.Fatalf("render http: %v", err)
	}
	if out.String() != "\n# Hello\n\nfrom **HTTP**\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestHTTPRenderDecodesCharset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		_, _ = w.Write([]byte("<p>caf\xe9</p>"))
	}))
	defer server.Close()

	var out bytes.Buffer
	if err := HTTPRender(context.Background(), HTTPRenderRequest{
		URL:    server.URL,
		Writer: &out,
	}); err != nil {
		t.Fatalf("render http: %v", err)
	}
	if out.String() != "\ncafé\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestHTTPRenderErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	var out bytes.Buffer
	err := HTTPRender(context.Background(), HTTPRenderRequest{URL: server.URL, Writer: &out})
	if err == nil || !strings.Contains(err.Error(), "410") {
		t.Fatalf("expected status error, got %v", err)
	}
	if err := HTTPRender(context.Background(), HTTPRenderRequest{URL: "ftp://example.com", Writer: &out}); err == nil {
		t.Fatalf("expected unsupported scheme error")
	}
	if err := HTTPRender(context.Background(), HTTPRenderRequest{Writer: &out}); err == nil {
		t.Fatalf("expected missing URL error")
	}
}
