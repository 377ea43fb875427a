package webscraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const samplePage = `<html>
<head><title>Semaglutide Review</title></head>
<body>
<nav>skip me</nav>
<main>
<h1>Overview</h1>
<p>Semaglutide is a <b>GLP-1</b> receptor agonist.</p>
<script>alert("noise")</script>
</main>
<footer>skip me too</footer>
</body>
</html>`

func TestScrape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()
	tool := New()
	out, err := tool.Call(context.Background(), `{"url": "`+srv.URL+`"}`)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "# Semaglutide Review") {
		t.Errorf("missing title heading in output:\n%s", out)
	}
	if !strings.Contains(out, "GLP-1") {
		t.Errorf("missing main content in output:\n%s", out)
	}
	if strings.Contains(out, "skip me") {
		t.Errorf("nav/footer content leaked into output:\n%s", out)
	}
	if strings.Contains(out, "alert(") {
		t.Errorf("script content leaked into output:\n%s", out)
	}
}

func TestScrapeMaxContentLength(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>" + strings.Repeat("word ", 1000) + "</p></body></html>"))
	}))
	defer srv.Close()
	tool := New(WithMaxContentLength(100))
	out, err := tool.Call(context.Background(), `{"url": "`+srv.URL+`"}`)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) > 200 {
		t.Errorf("expect truncated output, got %d bytes", len(out))
	}
}

func TestScrapeInvalidURL(t *testing.T) {
	tool := New()
	if _, err := tool.Call(context.Background(), `{"url": "not a url"}`); err == nil {
		t.Error("expect validation error for invalid url")
	}
}

func TestScrapeHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()
	tool := New()
	if _, err := tool.Call(context.Background(), `{"url": "`+srv.URL+`"}`); err == nil {
		t.Error("expect error on non-200 response")
	}
}
