package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pharmaxis/pharmintel/agents"
	"github.com/pharmaxis/pharmintel/dataset"
)

type stubAgent struct {
	fragments []agents.Fragment
	queries   []string
}

func (a *stubAgent) Invoke(ctx context.Context, query string) <-chan agents.Fragment {
	a.queries = append(a.queries, query)
	out := make(chan agents.Fragment, len(a.fragments))
	for _, fragment := range a.fragments {
		out <- fragment
	}
	close(out)
	return out
}

const testDataset = `{
  "exim_trade_data": {
    "metformin": {
      "molecule_name": "Metformin",
      "api_exports_2023": {"volume_mt": 4200},
      "market_trend": "growing"
    }
  },
  "internal_knowledge_base": {
    "strategy": {
      "plans": {
        "document_id": "STRAT-2024-001",
        "title": "Five Year Strategic Plan",
        "content": "Expand into respiratory."
      }
    }
  }
}`

func testServer(t *testing.T, agent Agent) *httptest.Server {
	t.Helper()
	store, err := dataset.Parse([]byte(testDataset))
	if err != nil {
		t.Fatal(err)
	}
	srv := New(":0", agent, store, t.TempDir())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestStreamFraming(t *testing.T) {
	agent := &stubAgent{fragments: []agents.Fragment{
		{Text: "Metformin exports "},
		{Text: "grew to 4200 MT."},
	}}
	ts := testServer(t, agent)
	resp := postJSON(t, ts.URL+"/api/agent/stream/", `{"query": "trade trends for metformin"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != "text/event-stream" {
		t.Errorf("unexpected content type: %s", got)
	}
	if got := resp.Header.Get("Cache-Control"); got != "no-cache" {
		t.Errorf("unexpected cache control: %s", got)
	}
	bs, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	var lines []string
	for _, line := range strings.Split(string(bs), "\n") {
		if strings.HasPrefix(line, "data: ") {
			lines = append(lines, strings.TrimPrefix(line, "data: "))
		}
	}
	if len(lines) != 3 {
		t.Fatalf("expect 2 chunks and a done line, got %d: %v", len(lines), lines)
	}
	var first struct {
		Chunk string `json:"chunk"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatal(err)
	}
	if first.Chunk != "Metformin exports " {
		t.Errorf("unexpected first chunk: %s", first.Chunk)
	}
	var done struct {
		Done bool `json:"done"`
	}
	if err := json.Unmarshal([]byte(lines[2]), &done); err != nil {
		t.Fatal(err)
	}
	if !done.Done {
		t.Errorf("expect terminal done line, got: %s", lines[2])
	}
	if len(agent.queries) != 1 || agent.queries[0] != "trade trends for metformin" {
		t.Errorf("unexpected queries: %v", agent.queries)
	}
}

func TestStreamErrorFrame(t *testing.T) {
	agent := &stubAgent{fragments: []agents.Fragment{
		{Text: "partial"},
		{Err: errors.New("engine unavailable")},
	}}
	ts := testServer(t, agent)
	resp := postJSON(t, ts.URL+"/api/agent/stream/", `{"query": "q"}`)
	defer resp.Body.Close()
	bs, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	body := string(bs)
	if !strings.Contains(body, `"error":"Streaming error: engine unavailable"`) {
		t.Errorf("missing error frame: %s", body)
	}
	if !strings.Contains(body, `"done":true`) {
		t.Errorf("missing done frame: %s", body)
	}
}

func TestStreamRejectsBadRequests(t *testing.T) {
	ts := testServer(t, &stubAgent{})
	for body, want := range map[string]string{
		"not json":      "invalid json",
		`{"query": ""}`: "query field is required",
	} {
		resp := postJSON(t, ts.URL+"/api/agent/stream/", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%q: unexpected status %d", body, resp.StatusCode)
		}
		var payload map[string]string
		json.NewDecoder(resp.Body).Decode(&payload)
		resp.Body.Close()
		if payload["error"] != want {
			t.Errorf("%q: unexpected error %q", body, payload["error"])
		}
	}
}

func TestChatCollectsStream(t *testing.T) {
	agent := &stubAgent{fragments: []agents.Fragment{
		{Text: "part one, "},
		{Text: "part two."},
	}}
	ts := testServer(t, agent)
	resp := postJSON(t, ts.URL+"/api/agent/chat/", `{"query": "q"}`)
	defer resp.Body.Close()
	var payload map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatal(err)
	}
	if payload["response"] != "part one, part two." {
		t.Errorf("unexpected response: %q", payload["response"])
	}
}

func TestChatReportsTerminalError(t *testing.T) {
	agent := &stubAgent{fragments: []agents.Fragment{{Err: errors.New("boom")}}}
	ts := testServer(t, agent)
	resp := postJSON(t, ts.URL+"/api/agent/chat/", `{"query": "q"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("unexpected status: %d", resp.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	ts := testServer(t, &stubAgent{})
	resp, err := http.Get(ts.URL + "/api/agent/health/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var payload map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatal(err)
	}
	if payload["status"] != "healthy" || payload["agent"] != "Master Agent" {
		t.Errorf("unexpected payload: %v", payload)
	}
}

func TestGatewayLookup(t *testing.T) {
	ts := testServer(t, &stubAgent{})

	resp, err := http.Get(ts.URL + "/api/exim-trade/?molecule=Metformin")
	if err != nil {
		t.Fatal(err)
	}
	var record map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if record["molecule_name"] != "Metformin" {
		t.Errorf("unexpected record: %v", record)
	}

	resp, err = http.Get(ts.URL + "/api/knowledge-base/?doc_id=STRAT-2024-001")
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if doc["title"] != "Five Year Strategic Plan" {
		t.Errorf("unexpected document: %v", doc)
	}
}

func TestGatewayMissingParameter(t *testing.T) {
	ts := testServer(t, &stubAgent{})
	resp, err := http.Get(ts.URL + "/api/exim-trade/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unexpected status: %d", resp.StatusCode)
	}
	var payload map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatal(err)
	}
	if payload["error"] != "Missing 'molecule' query parameter." {
		t.Errorf("unexpected error: %q", payload["error"])
	}
	if payload["usage_example"] == "" {
		t.Error("missing usage example")
	}
}

func TestGatewayNotFound(t *testing.T) {
	ts := testServer(t, &stubAgent{})
	resp, err := http.Get(ts.URL + "/api/exim-trade/?molecule=unobtainium")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unexpected status: %d", resp.StatusCode)
	}
	var payload struct {
		Error              string   `json:"error"`
		AvailableMolecules []string `json:"available_molecules"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatal(err)
	}
	if payload.Error != "Molecule 'unobtainium' not found in trade data." {
		t.Errorf("unexpected error: %q", payload.Error)
	}
	if len(payload.AvailableMolecules) != 1 || payload.AvailableMolecules[0] != "metformin" {
		t.Errorf("unexpected alternatives: %v", payload.AvailableMolecules)
	}
}

func TestReportDownload(t *testing.T) {
	store, err := dataset.Parse([]byte(testDataset))
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	name := "research_report_20240101_120000_ab12.pdf"
	content := []byte("%PDF-1.4 test")
	if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
		t.Fatal(err)
	}
	srv := New(":0", &stubAgent{}, store, dir)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/reports/" + name)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); !strings.Contains(got, "pdf") {
		t.Errorf("unexpected content type: %s", got)
	}
	if got := resp.Header.Get("Content-Disposition"); !strings.Contains(got, name) {
		t.Errorf("unexpected disposition: %s", got)
	}

	resp, err = http.Get(ts.URL + "/api/reports/no_such_report.pdf")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing file should 404, got %d", resp.StatusCode)
	}
}
