// Package pubmed implements the biomedical literature search capability on
// top of the NCBI E-utilities API.
package pubmed

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

const defaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

// QueryInput is the argument payload of the literature search capability.
type QueryInput struct {
	Query string `json:"query" validate:"required"`
}

type searchResponse struct {
	ESearchResult struct {
		Count  string   `json:"count"`
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

type summaryResponse struct {
	Result map[string]json.RawMessage `json:"result"`
}

type articleSummary struct {
	UID     string `json:"uid"`
	Title   string `json:"title"`
	Source  string `json:"source"`
	PubDate string `json:"pubdate"`
	Authors []struct {
		Name string `json:"name"`
	} `json:"authors"`
}

// PubmedSearch searches PubMed and renders article summaries as capability text.
type PubmedSearch struct {
	baseURL    string
	maxResults int
	httpClient *http.Client
}

type Option func(*PubmedSearch)

func WithBaseURL(baseURL string) Option {
	return func(t *PubmedSearch) {
		t.baseURL = baseURL
	}
}

func WithMaxResults(n int) Option {
	return func(t *PubmedSearch) {
		t.maxResults = n
	}
}

func WithHttpClient(clt *http.Client) Option {
	return func(t *PubmedSearch) {
		t.httpClient = clt
	}
}

func New(opts ...Option) *PubmedSearch {
	ret := new(PubmedSearch)
	for _, opt := range opts {
		opt(ret)
	}
	if ret.baseURL == "" {
		ret.baseURL = defaultBaseURL
	}
	if ret.maxResults == 0 {
		ret.maxResults = 5
	}
	if ret.httpClient == nil {
		ret.httpClient = http.DefaultClient
	}
	return ret
}

func (t *PubmedSearch) ID() tools.ID { return tools.PubmedSearch }

func (t *PubmedSearch) Definition() components.ToolDefinition {
	return components.ToolDefinition{
		Name:                 tools.PubmedSearch.String(),
		Description:          "Searches PubMed for biomedical literature and scientific studies. Returns a formatted string of article summaries and metadata.",
		Parameter:            "query",
		ParameterDescription: "The literature search query.",
	}
}

func (t *PubmedSearch) Call(ctx context.Context, arguments string) (string, error) {
	input, err := tools.ParseArguments[QueryInput](arguments)
	if err != nil {
		return "", err
	}
	ids, err := t.search(ctx, input.Query)
	if err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return fmt.Sprintf("No PubMed articles found for '%s'.", input.Query), nil
	}
	articles, err := t.summaries(ctx, ids)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for idx, article := range articles {
		if idx > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "Title: %s\n", article.Title)
		fmt.Fprintf(&sb, "Journal: %s (%s)\n", article.Source, article.PubDate)
		if len(article.Authors) > 0 {
			names := make([]string, 0, len(article.Authors))
			for _, author := range article.Authors {
				names = append(names, author.Name)
			}
			fmt.Fprintf(&sb, "Authors: %s\n", strings.Join(names, ", "))
		}
		fmt.Fprintf(&sb, "PMID: %s", article.UID)
	}
	return sb.String(), nil
}

func (t *PubmedSearch) search(ctx context.Context, query string) ([]string, error) {
	values := url.Values{}
	values.Set("db", "pubmed")
	values.Set("term", query)
	values.Set("retmode", "json")
	values.Set("retmax", fmt.Sprintf("%d", t.maxResults))
	values.Set("sort", "relevance")
	var resp searchResponse
	if err := t.getJSON(ctx, fmt.Sprintf("%s/esearch.fcgi?%s", t.baseURL, values.Encode()), &resp); err != nil {
		return nil, err
	}
	return resp.ESearchResult.IDList, nil
}

func (t *PubmedSearch) summaries(ctx context.Context, ids []string) ([]articleSummary, error) {
	values := url.Values{}
	values.Set("db", "pubmed")
	values.Set("id", strings.Join(ids, ","))
	values.Set("retmode", "json")
	var resp summaryResponse
	if err := t.getJSON(ctx, fmt.Sprintf("%s/esummary.fcgi?%s", t.baseURL, values.Encode()), &resp); err != nil {
		return nil, err
	}
	// preserve the relevance order of the id list
	list := make([]articleSummary, 0, len(ids))
	for _, id := range ids {
		raw, ok := resp.Result[id]
		if !ok {
			continue
		}
		var article articleSummary
		if err := json.Unmarshal(raw, &article); err != nil {
			continue
		}
		list = append(list, article)
	}
	return list, nil
}

func (t *PubmedSearch) getJSON(ctx context.Context, rawURL string, dist any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("error querying PubMed: %v", err)
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("non-200 response from PubMed: %d", httpResp.StatusCode)
	}
	return json.NewDecoder(httpResp.Body).Decode(dist)
}
