package agents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/pharmaxis/pharmintel/components"
	"github.com/pharmaxis/pharmintel/tools"
)

// scriptedEngine replays canned completions and records every request.
type scriptedEngine struct {
	completions []*components.Completion
	chatErr     error
	streamText  []string
	streamErr   error
	requests    []*components.ChatRequest
	streamReqs  []*components.ChatRequest
}

func (e *scriptedEngine) Chat(ctx context.Context, req *components.ChatRequest) (*components.Completion, error) {
	e.requests = append(e.requests, req)
	if e.chatErr != nil {
		return nil, e.chatErr
	}
	idx := len(e.requests) - 1
	if idx >= len(e.completions) {
		idx = len(e.completions) - 1
	}
	return e.completions[idx], nil
}

func (e *scriptedEngine) ChatStream(ctx context.Context, req *components.ChatRequest, fn components.StreamFunc) error {
	e.streamReqs = append(e.streamReqs, req)
	if e.streamErr != nil {
		return e.streamErr
	}
	for _, fragment := range e.streamText {
		if err := fn(ctx, fragment); err != nil {
			return err
		}
	}
	return nil
}

// stubCapability returns a fixed payload and counts invocations.
type stubCapability struct {
	id      tools.ID
	payload string
	err     error
	calls   int
	args    []string
}

func (c *stubCapability) ID() tools.ID { return c.id }

func (c *stubCapability) Definition() components.ToolDefinition {
	return components.ToolDefinition{
		Name:                 c.id.String(),
		Description:          "stub",
		Parameter:            "molecule_name",
		ParameterDescription: "stub",
	}
}

func (c *stubCapability) Call(ctx context.Context, arguments string) (string, error) {
	c.calls++
	c.args = append(c.args, arguments)
	if c.err != nil {
		return "", c.err
	}
	return c.payload, nil
}

func toolCall(id, name, arguments string) components.ToolCall {
	return components.ToolCall{ID: id, Name: name, Arguments: arguments}
}

func TestSpecialistFinalAnswerWithoutCapabilityCalls(t *testing.T) {
	engine := &scriptedEngine{
		completions: []*components.Completion{{Content: "Which molecule are you interested in?"}},
	}
	cap := &stubCapability{id: tools.EximTradeData}
	agent := NewSpecialist(tools.MustRegistry(cap), WithEngine(engine), WithName("EXIM Trade Agent"))
	result, err := agent.Invoke(context.Background(), "what's the trade data?")
	if err != nil {
		t.Fatal(err)
	}
	if result.Analysis != "Which molecule are you interested in?" {
		t.Errorf("unexpected analysis: %s", result.Analysis)
	}
	if string(result.RawData) != "{}" {
		t.Errorf("expect empty raw data, got:%s", result.RawData)
	}
	if cap.calls != 0 {
		t.Errorf("expect no capability calls, got %d", cap.calls)
	}
}

func TestSpecialistCapabilityRoundTrip(t *testing.T) {
	payload := `{"molecule_name": "Metformin", "api_exports_2023": {"volume_mt": 4200}}`
	engine := &scriptedEngine{
		completions: []*components.Completion{
			{ToolCalls: []components.ToolCall{toolCall("call_1", tools.EximTradeData.String(), `{"molecule_name": "metformin"}`)}},
			{Content: "Metformin API exports reached 4200 metric tons in 2023."},
		},
	}
	cap := &stubCapability{id: tools.EximTradeData, payload: payload}
	agent := NewSpecialist(tools.MustRegistry(cap), WithEngine(engine), WithName("EXIM Trade Agent"))
	result, err := agent.Invoke(context.Background(), "trade trends for metformin")
	if err != nil {
		t.Fatal(err)
	}
	if result.Analysis != "Metformin API exports reached 4200 metric tons in 2023." {
		t.Errorf("unexpected analysis: %s", result.Analysis)
	}
	if string(result.RawData) != payload {
		t.Errorf("expect raw data passthrough, got:%s", result.RawData)
	}
	if cap.calls != 1 {
		t.Errorf("expect 1 capability call, got %d", cap.calls)
	}
	// The second pass sees the scratchpad followed by the query.
	second := engine.requests[1]
	roles := make([]string, 0, len(second.Messages))
	for _, msg := range second.Messages {
		roles = append(roles, msg.Role())
	}
	want := []string{components.AssistantRole, components.ToolRole, components.UserRole}
	if len(roles) != len(want) {
		t.Fatalf("unexpected message roles: %v", roles)
	}
	for i := range want {
		if roles[i] != want[i] {
			t.Errorf("message %d: expect role %s, got %s", i, want[i], roles[i])
		}
	}
	if got := second.Messages[1].StringifiedContent(); got != payload {
		t.Errorf("tool turn should carry the capability text, got:%s", got)
	}
}

func TestSpecialistIterationExhaustion(t *testing.T) {
	payload := `{"molecule_name": "Metformin"}`
	engine := &scriptedEngine{
		completions: []*components.Completion{
			{ToolCalls: []components.ToolCall{toolCall("call_1", tools.EximTradeData.String(), `{"molecule_name": "metformin"}`)}},
		},
	}
	cap := &stubCapability{id: tools.EximTradeData, payload: payload}
	agent := NewSpecialist(tools.MustRegistry(cap), WithEngine(engine), WithName("EXIM Trade Agent"), WithMaxIterations(2))
	result, err := agent.Invoke(context.Background(), "trade trends for metformin")
	if err != nil {
		t.Fatal(err)
	}
	if result.Analysis != "Error: EXIM Trade Agent reached max iterations." {
		t.Errorf("unexpected analysis: %s", result.Analysis)
	}
	if string(result.RawData) != payload {
		t.Errorf("expect last raw data retained, got:%s", result.RawData)
	}
	if got := len(engine.requests); got != 2 {
		t.Errorf("expect exactly 2 reasoning passes, got %d", got)
	}
	if cap.calls != 2 {
		t.Errorf("expect 2 capability calls, got %d", cap.calls)
	}
}

func TestSpecialistToolNotFoundIsIdempotent(t *testing.T) {
	engine := &scriptedEngine{
		completions: []*components.Completion{
			{ToolCalls: []components.ToolCall{toolCall("call_1", "get_weather", `{"molecule_name": "x"}`)}},
			{ToolCalls: []components.ToolCall{toolCall("call_2", "get_weather", `{"molecule_name": "x"}`)}},
			{Content: "The weather tool is unavailable."},
		},
	}
	cap := &stubCapability{id: tools.EximTradeData}
	agent := NewSpecialist(tools.MustRegistry(cap), WithEngine(engine), WithName("EXIM Trade Agent"), WithMaxIterations(3))
	result, err := agent.Invoke(context.Background(), "query")
	if err != nil {
		t.Fatal(err)
	}
	// The final pass sees both error turns; they must be byte-identical.
	last := engine.requests[2].Messages
	first := last[1].StringifiedContent()
	second := last[3].StringifiedContent()
	if first != "Error: Tool 'get_weather' not found." {
		t.Errorf("unexpected error turn: %s", first)
	}
	if first != second {
		t.Errorf("error turns differ: %q vs %q", first, second)
	}
	if string(result.RawData) != `{"error":"Error: Tool 'get_weather' not found."}` {
		t.Errorf("unexpected raw data: %s", result.RawData)
	}
	if cap.calls != 0 {
		t.Errorf("registered capability must not run, got %d calls", cap.calls)
	}
}

func TestSpecialistCapabilityErrorIsObservedTurn(t *testing.T) {
	engine := &scriptedEngine{
		completions: []*components.Completion{
			{ToolCalls: []components.ToolCall{toolCall("call_1", tools.EximTradeData.String(), `{"molecule_name": "metformin"}`)}},
			{Content: "The trade lookup failed, please retry later."},
		},
	}
	cap := &stubCapability{id: tools.EximTradeData, err: errors.New("connection refused")}
	agent := NewSpecialist(tools.MustRegistry(cap), WithEngine(engine), WithName("EXIM Trade Agent"))
	result, err := agent.Invoke(context.Background(), "trade trends for metformin")
	if err != nil {
		t.Fatal(err)
	}
	turn := engine.requests[1].Messages[1].StringifiedContent()
	want := fmt.Sprintf("Error executing tool %s: connection refused", tools.EximTradeData)
	if turn != want {
		t.Errorf("expect:%s, got:%s", want, turn)
	}
	if result.Analysis != "The trade lookup failed, please retry later." {
		t.Errorf("unexpected analysis: %s", result.Analysis)
	}
	var raw map[string]string
	if err := json.Unmarshal(result.RawData, &raw); err != nil {
		t.Fatal(err)
	}
	if raw["error"] != want {
		t.Errorf("unexpected raw data: %s", result.RawData)
	}
}

func TestSpecialistNotFoundPayloadWrapped(t *testing.T) {
	notFound := `API Error: 404 - {"error": "Molecule 'xyz' not found", "available_molecules": ["metformin"]}`
	engine := &scriptedEngine{
		completions: []*components.Completion{
			{ToolCalls: []components.ToolCall{toolCall("call_1", tools.EximTradeData.String(), `{"molecule_name": "xyz"}`)}},
			{Content: "Molecule 'xyz' was not found. Available molecules include metformin."},
		},
	}
	cap := &stubCapability{id: tools.EximTradeData, payload: notFound}
	agent := NewSpecialist(tools.MustRegistry(cap), WithEngine(engine), WithName("EXIM Trade Agent"))
	result, err := agent.Invoke(context.Background(), "trade trends for xyz")
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]string
	if err := json.Unmarshal(result.RawData, &raw); err != nil {
		t.Fatal(err)
	}
	if raw["error"] != notFound {
		t.Errorf("expect not-found text preserved in error payload, got:%s", result.RawData)
	}
}

func TestSpecialistScalarRawDataPassthrough(t *testing.T) {
	for _, payload := range []string{"42", `"active"`, "true"} {
		engine := &scriptedEngine{
			completions: []*components.Completion{
				{ToolCalls: []components.ToolCall{toolCall("call_1", tools.EximTradeData.String(), `{"molecule_name": "metformin"}`)}},
				{Content: "Done."},
			},
		}
		cap := &stubCapability{id: tools.EximTradeData, payload: payload}
		agent := NewSpecialist(tools.MustRegistry(cap), WithEngine(engine), WithName("EXIM Trade Agent"))
		result, err := agent.Invoke(context.Background(), "trade trends for metformin")
		if err != nil {
			t.Fatal(err)
		}
		// JSON scalars are valid raw data and must not be wrapped.
		if string(result.RawData) != payload {
			t.Errorf("expect scalar passthrough, got:%s", result.RawData)
		}
	}
}

func TestWebSpecialistAccumulatesRawData(t *testing.T) {
	engine := &scriptedEngine{
		completions: []*components.Completion{
			{ToolCalls: []components.ToolCall{
				toolCall("call_1", tools.WebSearch.String(), `{"query": "semaglutide news"}`),
				toolCall("call_2", tools.PubmedSearch.String(), `{"query": "semaglutide obesity"}`),
			}},
			{Content: "Web Search Findings: demand keeps growing. PubMed Literature: PMID 111."},
		},
	}
	web := &stubCapability{id: tools.WebSearch, payload: "Semaglutide outlook https://example.com/a"}
	pubmed := &stubCapability{id: tools.PubmedSearch, payload: "Title: GLP-1 receptor agonists"}
	agent := NewWebIntelligenceAgent([]tools.Capability{web, pubmed}, WithEngine(engine))
	result, err := agent.Invoke(context.Background(), "find news and papers on semaglutide")
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]string
	if err := json.Unmarshal(result.RawData, &raw); err != nil {
		t.Fatal(err)
	}
	if raw["web_search_result_call_1"] != "Semaglutide outlook https://example.com/a" {
		t.Errorf("missing web search result in raw data: %v", raw)
	}
	if raw["pubmed_search_result_call_2"] != "Title: GLP-1 receptor agonists" {
		t.Errorf("missing pubmed result in raw data: %v", raw)
	}
	if raw["report_content"] != result.Analysis {
		t.Errorf("expect final content retained in raw data: %v", raw)
	}
	// The web agent leads with the query.
	if got := engine.requests[1].Messages[0].Role(); got != components.UserRole {
		t.Errorf("expect leading user turn, got role %s", got)
	}
}

func TestSpecialistEngineErrorPropagates(t *testing.T) {
	engine := &scriptedEngine{chatErr: errors.New("API Error: 500 - upstream")}
	cap := &stubCapability{id: tools.EximTradeData}
	agent := NewSpecialist(tools.MustRegistry(cap), WithEngine(engine), WithName("EXIM Trade Agent"))
	if _, err := agent.Invoke(context.Background(), "query"); err == nil {
		t.Error("expect engine error to propagate")
	}
}
