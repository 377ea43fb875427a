package components

import (
	"context"
)

// ChatRequest carries one reasoning pass: the system prompt, the scratchpad
// so far, and the capabilities the pass is bound to.
type ChatRequest struct {
	Model       string
	Temperature float32
	MaxTokens   int
	// System is the agent system prompt.
	System string
	// Messages is the scratchpad, in order.
	Messages []Message
	// Tools are the capabilities the reasoning engine may request.
	Tools []ToolDefinition
}

// Completion is the outcome of one non-streaming reasoning pass.
type Completion struct {
	// Content is the free text of the reasoning output turn.
	Content string
	// ToolCalls are the pending capability call requests, if any.
	ToolCalls []ToolCall
}

// StreamFunc receives one produced text fragment. Returning an error stops the
// stream; a context error is treated as consumer cancellation.
type StreamFunc func(ctx context.Context, fragment string) error

// Engine is the reasoning engine boundary. Both methods block on I/O and honor
// context cancellation.
type Engine interface {
	// Chat performs a single reasoning pass, optionally bound to capabilities.
	Chat(ctx context.Context, req *ChatRequest) (*Completion, error)
	// ChatStream performs a single streaming reasoning pass, forwarding each
	// fragment as it is produced.
	ChatStream(ctx context.Context, req *ChatRequest, fn StreamFunc) error
}
