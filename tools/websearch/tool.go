// Package websearch implements the web search capability on top of a SearxNG
// instance.
package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pharmaxis/pharmintel/components"
	"github.com/pharmaxis/pharmintel/tools"
)

// QueryInput is the argument payload of the web search capability.
type QueryInput struct {
	Query string `json:"query" validate:"required"`
}

// SearchResultItem represents a single search result item.
type SearchResultItem struct {
	// URL The URL of the search result
	URL string `json:"url"`
	// Title The title of the search result
	Title string `json:"title"`
	// Content The content snippet of the search result
	Content string `json:"content,omitempty"`
}

// SearchResponse represents the entire response from the search engine.
type SearchResponse struct {
	Query           string             `json:"query"`
	NumberOfResults int                `json:"number_of_results"`
	Results         []SearchResultItem `json:"results"`
}

// WebSearch queries SearxNG and renders the result list as capability text.
type WebSearch struct {
	language   string
	baseURL    string
	maxResults int
	httpClient *http.Client
}

func New(opts ...Option) *WebSearch {
	ret := new(WebSearch)
	for _, opt := range opts {
		opt(ret)
	}
	if ret.maxResults == 0 {
		ret.maxResults = 10
	}
	if ret.httpClient == nil {
		ret.httpClient = http.DefaultClient
	}
	return ret
}

func (t *WebSearch) ID() tools.ID { return tools.WebSearch }

func (t *WebSearch) Definition() components.ToolDefinition {
	return components.ToolDefinition{
		Name:                 tools.WebSearch.String(),
		Description:          "Perform a real web search. Use this to find current news, research, or guidelines from the web.",
		Parameter:            "query",
		ParameterDescription: "The search query.",
	}
}

func (t *WebSearch) Call(ctx context.Context, arguments string) (string, error) {
	input, err := tools.ParseArguments[QueryInput](arguments)
	if err != nil {
		return "", err
	}
	items, err := t.fetchSearchResults(ctx, input.Query)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return fmt.Sprintf("No web results found for '%s'.", input.Query), nil
	}
	var sb strings.Builder
	for idx, item := range items {
		if idx >= t.maxResults {
			break
		}
		if idx > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(item.Title)
		sb.WriteString("\n")
		sb.WriteString(item.URL)
		if item.Content != "" {
			sb.WriteString("\n")
			sb.WriteString(item.Content)
		}
	}
	return sb.String(), nil
}

// fetchSearchResults queries the search engine and returns the parsed search response
func (t *WebSearch) fetchSearchResults(ctx context.Context, query string) ([]SearchResultItem, error) {
	values := url.Values{}
	values.Set("q", query)
	values.Set("safesearch", "0")
	values.Set("format", "json")
	values.Set("engines", "bing,duckduckgo,google,startpage,yandex")
	if t.language != "" {
		values.Set("language", t.language)
	}
	searchURL := fmt.Sprintf("%s/search?%s", t.baseURL, values.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error querying search engine: %v", err)
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 response from search engine: %d", httpResp.StatusCode)
	}
	var searchResponse SearchResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&searchResponse); err != nil {
		return nil, err
	}
	return searchResponse.Results, nil
}
