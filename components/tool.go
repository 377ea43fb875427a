package components

import (
	openai "github.com/sashabaranov/go-openai"
)

// ToolCall is a pending capability call request emitted by the reasoning engine.
type ToolCall struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
}

// ToolDefinition describes a capability to the reasoning engine.
// Every capability takes exactly one required string parameter.
type ToolDefinition struct {
	Name        string
	Description string
	// Parameter is the name of the single required string argument.
	Parameter string
	// ParameterDescription documents the single argument.
	ParameterDescription string
}

// JSONSchema returns the single-field input schema of the capability.
func (d ToolDefinition) JSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			d.Parameter: map[string]any{
				"type":        "string",
				"description": d.ParameterDescription,
			},
		},
		"required": []string{d.Parameter},
	}
}

// ToOpenAI converts the definition to an openai function tool.
func (d ToolDefinition) ToOpenAI(dist *openai.Tool) {
	dist.Type = openai.ToolTypeFunction
	dist.Function = &openai.FunctionDefinition{
		Name:        d.Name,
		Description: d.Description,
		Parameters:  d.JSONSchema(),
	}
}

// ToolCallsFromOpenAI converts openai tool calls into pending capability requests.
func ToolCallsFromOpenAI(src []openai.ToolCall) []ToolCall {
	if len(src) == 0 {
		return nil
	}
	list := make([]ToolCall, 0, len(src))
	for _, v := range src {
		list = append(list, ToolCall{
			ID:        v.ID,
			Name:      v.Function.Name,
			Arguments: v.Function.Arguments,
		})
	}
	return list
}

// ToOpenAI converts a message to an openai ChatCompletionMessage.
func (m Message) ToOpenAI(dist *openai.ChatCompletionMessage) {
	dist.Role = m.role
	dist.Content = m.StringifiedContent()
	if len(m.toolCalls) > 0 {
		dist.ToolCalls = make([]openai.ToolCall, 0, len(m.toolCalls))
		for _, v := range m.toolCalls {
			dist.ToolCalls = append(dist.ToolCalls, openai.ToolCall{
				ID:   v.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      v.Name,
					Arguments: v.Arguments,
				},
			})
		}
	}
	if m.toolCallID != "" {
		dist.ToolCallID = m.toolCallID
		dist.Name = m.toolName
	}
}
