package components

import (
	"context"
	"log/slog"

	"github.com/pkoukk/tiktoken-go"
	"go.uber.org/atomic"
)

const engineLogPrefix = "[engine] "

// EngineStats counts reasoning passes across all invocations sharing an engine.
type EngineStats struct {
	ChatPasses   atomic.Int64
	StreamPasses atomic.Int64
	Fragments    atomic.Int64
	// PromptTokens is the estimated token footprint of all submitted passes.
	PromptTokens atomic.Int64
}

// InstrumentedEngine wraps an Engine with pass and fragment counters. Each
// reasoning pass logs its estimated prompt footprint before submission.
type InstrumentedEngine struct {
	engine Engine
	stats  *EngineStats
	logger *slog.Logger
}

func NewInstrumentedEngine(engine Engine) *InstrumentedEngine {
	return &InstrumentedEngine{
		engine: engine,
		stats:  new(EngineStats),
		logger: slog.Default(),
	}
}

// Stats returns the shared counters.
func (e *InstrumentedEngine) Stats() *EngineStats {
	return e.stats
}

func (e *InstrumentedEngine) Chat(ctx context.Context, req *ChatRequest) (*Completion, error) {
	e.stats.ChatPasses.Inc()
	e.observe(req, "chat")
	return e.engine.Chat(ctx, req)
}

func (e *InstrumentedEngine) ChatStream(ctx context.Context, req *ChatRequest, fn StreamFunc) error {
	e.stats.StreamPasses.Inc()
	e.observe(req, "stream")
	return e.engine.ChatStream(ctx, req, func(ctx context.Context, fragment string) error {
		e.stats.Fragments.Inc()
		return fn(ctx, fragment)
	})
}

func (e *InstrumentedEngine) observe(req *ChatRequest, pass string) {
	tokens := int64(PromptTokens(req))
	e.stats.PromptTokens.Add(tokens)
	e.logger.Debug(engineLogPrefix+"reasoning pass",
		"pass", pass,
		"model", req.Model,
		"prompt_tokens", tokens,
		"total_prompt_tokens", e.stats.PromptTokens.Load())
}

var _ Engine = (*InstrumentedEngine)(nil)

// CountTokens estimates the token footprint of a prompt for the given model.
// Unknown models fall back to the cl100k_base encoding; a failed lookup counts
// zero rather than blocking the reasoning pass.
func CountTokens(model string, text string) int {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		if enc, err = tiktoken.GetEncoding("cl100k_base"); err != nil {
			return 0
		}
	}
	return len(enc.Encode(text, nil, nil))
}

// PromptTokens estimates the token footprint of a full chat request.
func PromptTokens(req *ChatRequest) int {
	total := CountTokens(req.Model, req.System)
	for _, msg := range req.Messages {
		total += CountTokens(req.Model, msg.StringifiedContent())
	}
	return total
}
