// Package agents implements the reasoning agents: six specialists, each
// running a bounded capability-call loop, and the master dispatcher that
// routes a user query across them and streams the final synthesis.
package agents

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pharmaxis/pharmintel/components"
	"github.com/pharmaxis/pharmintel/schema"
	"github.com/pharmaxis/pharmintel/tools"
)

const defaultMaxIterations = 2

// Specialist is a single-purpose agent: it runs a bounded reasoning loop
// against its own capability registry and returns a synthesized analysis
// together with the raw data behind it.
type Specialist struct {
	Config
	registry *tools.Registry
}

// NewSpecialist returns a specialist bound to the given capabilities.
func NewSpecialist(registry *tools.Registry, opts ...Option) *Specialist {
	ret := &Specialist{
		registry: registry,
	}
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.maxIterations == 0 {
		ret.maxIterations = defaultMaxIterations
	}
	return ret
}

// buildRequest assembles one reasoning pass from the query and the scratchpad.
func (c *Config) buildRequest(query string, memory *components.Memory, defs []components.ToolDefinition) *components.ChatRequest {
	history := memory.History()
	messages := make([]components.Message, 0, len(history)+1)
	userTurn := components.NewMessage(components.UserRole, schema.NewString(query))
	if c.leadingQuery {
		messages = append(messages, *userTurn)
		messages = append(messages, history...)
	} else {
		messages = append(messages, history...)
		messages = append(messages, *userTurn)
	}
	return &components.ChatRequest{
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		System:      c.systemPrompt,
		Messages:    messages,
		Tools:       defs,
	}
}

// Invoke runs the work cycle for one query.
//
// Each iteration submits the query plus the scratchpad so far. A response
// without capability calls is the final synthesis and terminates the loop.
// Capability failures are recoverable: they are pushed back into the
// scratchpad as error text so the next pass can react to them. Only engine
// I/O failures surface as errors.
func (a *Specialist) Invoke(ctx context.Context, query string) (*schema.Result, error) {
	memory := components.NewMemory(0)
	memory.NewTurn()
	rawData := json.RawMessage("{}")
	accumulated := make(map[string]string)

	for count := 0; count < a.maxIterations; count++ {
		completion, err := a.engine.Chat(ctx, a.buildRequest(query, memory, a.registry.Definitions()))
		if err != nil {
			return nil, err
		}
		if len(completion.ToolCalls) == 0 {
			// Final, synthesized answer.
			if a.accumulateRawData {
				accumulated["report_content"] = completion.Content
				return schema.NewResult(completion.Content, marshalAccumulated(accumulated)), nil
			}
			return schema.NewResult(completion.Content, rawData), nil
		}
		memory.Push(components.NewToolCallMessage(schema.NewString(completion.Content), completion.ToolCalls))
		for _, call := range completion.ToolCalls {
			var (
				resultStr string
				failed    bool
			)
			if cap, ok := a.registry.Lookup(call.Name); ok {
				out, err := cap.Call(ctx, call.Arguments)
				if err != nil {
					if ctx.Err() != nil {
						return nil, ctx.Err()
					}
					resultStr = fmt.Sprintf("Error executing tool %s: %v", call.Name, err)
					failed = true
				} else {
					resultStr = out
				}
			} else {
				resultStr = fmt.Sprintf("Error: Tool '%s' not found.", call.Name)
				failed = true
			}
			if a.accumulateRawData {
				kind := "result"
				if failed {
					kind = "error"
				}
				accumulated[fmt.Sprintf("%s_%s_%s", call.Name, kind, call.ID)] = resultStr
			} else if failed {
				rawData = schema.ErrorData(resultStr)
			} else {
				rawData = schema.ParseRawData(resultStr)
			}
			memory.Push(components.NewToolResultMessage(call.ID, call.Name, schema.NewString(resultStr)))
		}
	}

	analysis := fmt.Sprintf("Error: %s reached max iterations.", a.name)
	if a.accumulateRawData {
		return schema.NewResult(analysis, marshalAccumulated(accumulated)), nil
	}
	return schema.NewResult(analysis, rawData), nil
}

func marshalAccumulated(m map[string]string) json.RawMessage {
	bs, _ := json.Marshal(m)
	return bs
}
