package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pharmaxis/pharmintel/components"
	"github.com/pharmaxis/pharmintel/report"
	"github.com/pharmaxis/pharmintel/schema"
	"github.com/pharmaxis/pharmintel/tools"
)

const logPrefix = "[master] "

// Fragment is one unit of the dispatcher's streamed reply. A non-nil Err is
// terminal: it is the last fragment the stream produces.
type Fragment struct {
	Text string
	Err  error
}

// ReportGenerator renders the retained agent results into report files.
type ReportGenerator interface {
	Generate(req *report.Request) *report.Response
}

// Master is the top-level dispatcher. It routes a user query through a
// plan / fan-out / synthesis / report pipeline over the specialist agents.
type Master struct {
	Config
	registry *tools.Registry
	reporter ReportGenerator
	logger   *slog.Logger
}

// NewMaster returns a dispatcher over the given specialist capabilities.
// reporter may be nil, which disables report generation.
func NewMaster(registry *tools.Registry, reporter ReportGenerator, opts ...Option) *Master {
	ret := &Master{
		registry: registry,
		reporter: reporter,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.name == "" {
		ret.name = "Master Agent"
	}
	if ret.systemPrompt == "" {
		ret.systemPrompt = masterPrompt
	}
	// The dispatcher prompt places the query before the scratchpad.
	ret.leadingQuery = true
	return ret
}

// capabilityOutcome retains one executed capability call in full, keyed by
// its call ID, for report generation.
type capabilityOutcome struct {
	call   components.ToolCall
	result schema.Result
}

// Invoke runs the dispatch pipeline and streams the reply. The returned
// channel is closed when the reply is complete; a fragment with a non-nil Err
// ends the stream early.
func (m *Master) Invoke(ctx context.Context, query string) <-chan Fragment {
	out := make(chan Fragment, 1)
	go func() {
		defer close(out)
		m.run(ctx, query, out)
	}()
	return out
}

func (m *Master) run(ctx context.Context, query string, out chan<- Fragment) {
	reportRequested, reportFormat := DetectReportFormat(query)

	memory := components.NewMemory(0)
	memory.NewTurn()

	// Phase 1: a single planning pass decides conversational vs task.
	plan, err := m.engine.Chat(ctx, m.buildRequest(query, memory, m.registry.Definitions()))
	if err != nil {
		m.emit(ctx, out, Fragment{Err: err})
		return
	}

	if len(plan.ToolCalls) == 0 {
		// Conversational path: stream the answer with the same prompt,
		// no capabilities bound.
		m.logger.Debug(logPrefix+"conversational reply", "query", query)
		m.synthesize(ctx, query, memory, out)
		return
	}

	// Phase 2: execute every planned call in order. Duplicate calls run
	// independently; failures become observed turns, never aborts.
	memory.Push(components.NewToolCallMessage(schema.NewString(plan.Content), plan.ToolCalls))
	outcomes := make([]capabilityOutcome, 0, len(plan.ToolCalls))
	for _, call := range plan.ToolCalls {
		result, err := m.execute(ctx, call)
		if err != nil {
			m.emit(ctx, out, Fragment{Err: err})
			return
		}
		m.logger.Info(logPrefix+"capability executed", "capability", call.Name, "call_id", call.ID)
		outcomes = append(outcomes, capabilityOutcome{call: call, result: *result})
		memory.Push(components.NewToolResultMessage(call.ID, call.Name, schema.NewString(result.Analysis)))
	}

	// Phase 3: stream the synthesis over the full scratchpad.
	summary, ok := m.synthesize(ctx, query, memory, out)
	if !ok {
		return
	}

	// Phase 4: render the report after the stream has drained. Failures are
	// appended text, never errors.
	if reportRequested && reportFormat != "" && m.reporter != nil && ctx.Err() == nil {
		m.emit(ctx, out, Fragment{Text: m.generateReport(query, summary, reportFormat, outcomes)})
	}
}

// execute runs one planned capability call and normalizes its outcome into a
// result envelope. Only context cancellation is returned as an error.
func (m *Master) execute(ctx context.Context, call components.ToolCall) (*schema.Result, error) {
	handler, ok := m.registry.Lookup(call.Name)
	if !ok {
		return schema.ErrorResult(fmt.Sprintf("Error: Tool '%s' not found.", call.Name), "Tool not found"), nil
	}
	text, err := handler.Call(ctx, call.Arguments)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return schema.ErrorResult(fmt.Sprintf("Error executing tool %s: %v", call.Name, err), err.Error()), nil
	}
	var result schema.Result
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		// Not a result envelope; the whole text is the analysis.
		return schema.ErrorResult(text, "String output, not JSON"), nil
	}
	if result.Analysis == "" {
		result.Analysis = "No analysis provided."
	}
	return &result, nil
}

// synthesize streams one reasoning pass with no capabilities bound,
// forwarding each fragment and accumulating the full text. Returns false when
// the stream ended with a terminal error fragment.
func (m *Master) synthesize(ctx context.Context, query string, memory *components.Memory, out chan<- Fragment) (string, bool) {
	var sb strings.Builder
	err := m.engine.ChatStream(ctx, m.buildRequest(query, memory, nil), func(ctx context.Context, fragment string) error {
		sb.WriteString(fragment)
		return m.emit(ctx, out, Fragment{Text: fragment})
	})
	if err != nil {
		if ctx.Err() == nil {
			m.emit(ctx, out, Fragment{Err: err})
		}
		return sb.String(), false
	}
	return sb.String(), true
}

func (m *Master) generateReport(query, summary string, format report.Format, outcomes []capabilityOutcome) string {
	sections := make([]report.AgentSection, 0, len(outcomes))
	for _, outcome := range outcomes {
		name := DisplayName(outcome.call.Name)
		sections = append(sections, report.AgentSection{
			Agent:    name,
			Analysis: outcome.result.Analysis,
			Sources:  []string{fmt.Sprintf("Source: %s", name)},
			RawData:  outcome.result.RawDataMap(),
		})
	}
	resp := m.reporter.Generate(&report.Request{
		Query:    query,
		Sections: sections,
		Summary:  summary,
		Format:   format,
	})
	if resp.Status != report.StatusSuccess {
		m.logger.Warn(logPrefix+"report generation failed", "message", resp.Message)
		return fmt.Sprintf("\n\n**📊 Report Generation Failed:**\n%s", resp.Message)
	}
	path := resp.Filepath
	if path == "" {
		path = strings.TrimSpace(resp.PDFFilepath + "\n" + resp.ExcelFilepath)
	}
	return fmt.Sprintf("\n\n**📊 Report File:**\n%s", path)
}

func (m *Master) emit(ctx context.Context, out chan<- Fragment, fragment Fragment) error {
	select {
	case out <- fragment:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// DetectReportFormat inspects the query for report cues. The format
// resolution is substring-based and case-insensitive: pdf and excel together
// select both, excel alone selects excel, pdf or a bare "report" selects pdf.
func DetectReportFormat(query string) (bool, report.Format) {
	q := strings.ToLower(query)
	requested := strings.Contains(q, "report") || strings.Contains(q, "pdf") || strings.Contains(q, "excel")
	var format report.Format
	switch {
	case strings.Contains(q, "pdf") && strings.Contains(q, "excel"):
		format = report.FormatBoth
	case strings.Contains(q, "excel"):
		format = report.FormatExcel
	case strings.Contains(q, "pdf") || strings.Contains(q, "report"):
		format = report.FormatPDF
	}
	return requested, format
}
