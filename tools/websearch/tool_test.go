package websearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWebSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "semaglutide market" {
			t.Errorf("expect q=semaglutide market, got:%s", got)
		}
		w.Write([]byte(`{"query": "semaglutide market", "number_of_results": 2, "results": [
			{"url": "https://example.com/a", "title": "Semaglutide outlook", "content": "GLP-1 demand keeps growing."},
			{"url": "https://example.com/b", "title": "Obesity drug race"}
		]}`))
	}))
	defer srv.Close()
	tool := New(WithBaseURL(srv.URL))
	out, err := tool.Call(context.Background(), `{"query": "semaglutide market"}`)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Semaglutide outlook", "https://example.com/a", "GLP-1 demand keeps growing.", "Obesity drug race"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestWebSearchMaxResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [
			{"url": "https://example.com/1", "title": "one"},
			{"url": "https://example.com/2", "title": "two"},
			{"url": "https://example.com/3", "title": "three"}
		]}`))
	}))
	defer srv.Close()
	tool := New(WithBaseURL(srv.URL), WithMaxResults(2))
	out, err := tool.Call(context.Background(), `{"query": "q"}`)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "three") {
		t.Errorf("expect results truncated at 2, got:\n%s", out)
	}
}

func TestWebSearchNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()
	tool := New(WithBaseURL(srv.URL))
	out, err := tool.Call(context.Background(), `{"query": "nothing here"}`)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No web results found") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestWebSearchEngineError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	tool := New(WithBaseURL(srv.URL))
	if _, err := tool.Call(context.Background(), `{"query": "q"}`); err == nil {
		t.Error("expect error on non-200 response")
	}
}
