// Package webscraper implements the page-fetch capability: it downloads a
// webpage, extracts the main content and renders it as markdown so a result
// page found by the web search can feed back into the reasoning context.
package webscraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/PuerkitoBio/goquery"

	"github.com/pharmaxis/pharmintel/components"
	"github.com/pharmaxis/pharmintel/tools"
)

// URLInput is the argument payload of the page-fetch capability.
type URLInput struct {
	URL string `json:"url" validate:"required,url"`
}

type Webscraper struct {
	// userAgent User agent string to use for requests.
	userAgent string
	// timeout Timeout in seconds for HTTP requests
	timeout int
	// maxContentLength Maximum markdown length in bytes to return.
	maxContentLength int
	httpClient       *http.Client
}

func New(opts ...Option) *Webscraper {
	ret := new(Webscraper)
	for _, opt := range opts {
		opt(ret)
	}
	if ret.userAgent == "" {
		ret.userAgent = DefaultUserAgent
	}
	if ret.timeout == 0 {
		ret.timeout = 30
	}
	if ret.maxContentLength == 0 {
		ret.maxContentLength = 100_000
	}
	if ret.httpClient == nil {
		ret.httpClient = &http.Client{Timeout: time.Second * time.Duration(ret.timeout)}
	}
	return ret
}

func (t *Webscraper) ID() tools.ID { return tools.WebpageScrape }

func (t *Webscraper) Definition() components.ToolDefinition {
	return components.ToolDefinition{
		Name:                 tools.WebpageScrape.String(),
		Description:          "Fetches a webpage and returns its main content as markdown. Use this to read a page found via web search.",
		Parameter:            "url",
		ParameterDescription: "URL of the webpage to scrape.",
	}
}

func (t *Webscraper) Call(ctx context.Context, arguments string) (string, error) {
	input, err := tools.ParseArguments[URLInput](arguments)
	if err != nil {
		return "", err
	}
	parsedURL, err := url.ParseRequestURI(input.URL)
	if err != nil {
		return "", err
	}
	doc, err := t.fetch(ctx, input.URL)
	if err != nil {
		return "", err
	}
	mainContent := t.extractMainContent(doc)
	markdown, err := htmltomarkdown.ConvertString(
		mainContent,
		converter.WithDomain(fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)),
	)
	if err != nil {
		return "", err
	}
	markdown = t.cleanMarkdownContent(markdown)
	if len(markdown) > t.maxContentLength {
		markdown = markdown[:t.maxContentLength]
	}
	if title := strings.TrimSpace(doc.Find("head title").Text()); title != "" {
		return fmt.Sprintf("# %s\n\n%s", title, markdown), nil
	}
	return markdown, nil
}

func (t *Webscraper) fetch(ctx context.Context, link string) (*goquery.Document, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("User-Agent", t.userAgent)
	httpReq.Header.Set("Accept", DefaultAccept)
	httpReq.Header.Set("Connection", "keep-alive")
	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 response from webpage: %d", httpResp.StatusCode)
	}
	return goquery.NewDocumentFromReader(httpResp.Body)
}

// extractMainContent extracts the main content from the webpage using custom heuristics
func (t *Webscraper) extractMainContent(doc *goquery.Document) string {
	for _, tag := range []string{"script", "style", "nav", "header", "footer"} {
		doc.Find(tag).Remove()
	}
	contentCandidates := []string{
		"main",
		"#content, #main",
		".content, .main",
		"article",
		"body",
	}
	var mainContent string
	for _, selector := range contentCandidates {
		sel := doc.Find(selector)
		if sel.Length() > 0 {
			if txt, err := sel.Html(); err == nil {
				mainContent = txt
				break
			}
		}
	}
	if mainContent == "" {
		mainContent, _ = doc.Html()
	}
	return mainContent
}

// Cleans up the markdown content by removing excessive whitespace and normalizing formatting
func (t *Webscraper) cleanMarkdownContent(content string) string {
	// Remove multiple blank lines
	re := regexp.MustCompile(`\r?\n{2,}`)
	content = re.ReplaceAllString(content, "\n\n")
	// Remove trailing whitespace
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	content = strings.Join(lines, "\n")
	// Ensure content ends with single newline
	content = strings.TrimSpace(content) + "\n"
	return content
}
