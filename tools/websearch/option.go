package websearch

import "net/http"

type Option func(*WebSearch)

func WithBaseURL(baseURL string) Option {
	return func(t *WebSearch) {
		t.baseURL = baseURL
	}
}

func WithLanguage(lang string) Option {
	return func(t *WebSearch) {
		t.language = lang
	}
}

func WithMaxResults(n int) Option {
	return func(t *WebSearch) {
		t.maxResults = n
	}
}

func WithHttpClient(clt *http.Client) Option {
	return func(t *WebSearch) {
		t.httpClient = clt
	}
}
