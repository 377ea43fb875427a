package components

import (
	"github.com/rs/xid"

	"github.com/pharmaxis/pharmintel/schema"
)

// NewTurnID returns a new turn ID.
func NewTurnID() string {
	return xid.New().String()
}

// MessageRole is the role of the message sender (e.g., 'user', 'system', 'tool')
type MessageRole = string

const (
	SystemRole    MessageRole = "system"
	UserRole      MessageRole = "user"
	AssistantRole MessageRole = "assistant"
	ToolRole      MessageRole = "tool"
)

// Message represents a single turn in the scratchpad exchanged with the
// reasoning engine.
//
// An assistant turn may carry pending capability call requests; a tool turn
// answers exactly one of those requests by call ID.
type Message struct {
	content schema.Schema
	// role is the role of the message sender (e.g., 'user', 'system', 'tool')
	role MessageRole
	//	turnID is Unique identifier for the turn this message belongs to.
	turnID string
	// toolCalls are the pending capability call requests of an assistant turn.
	toolCalls []ToolCall
	// toolCallID is the call identifier a tool turn answers.
	toolCallID string
	// toolName is the capability name of a tool turn.
	toolName string
}

// NewMessage returns a new Message
func NewMessage(role MessageRole, content schema.Schema) *Message {
	return &Message{
		role:    role,
		content: content,
	}
}

// NewToolCallMessage returns an assistant turn carrying capability call requests.
func NewToolCallMessage(content schema.Schema, calls []ToolCall) *Message {
	return &Message{
		role:      AssistantRole,
		content:   content,
		toolCalls: calls,
	}
}

// NewToolResultMessage returns a tool turn answering the given call ID.
func NewToolResultMessage(callID, name string, content schema.Schema) *Message {
	return &Message{
		role:       ToolRole,
		content:    content,
		toolCallID: callID,
		toolName:   name,
	}
}

// SetTurnID set message turnID
func (m *Message) SetTurnID(turnID string) *Message {
	m.turnID = turnID
	return m
}

// Role returns message role
func (m Message) Role() MessageRole {
	return m.role
}

// Content returns message content
func (m Message) Content() schema.Schema {
	return m.content
}

// StringifiedContent returns the wire representation of the message content.
func (m Message) StringifiedContent() string {
	return schema.Stringify(m.content)
}

// TurnID returns message turnID
func (m Message) TurnID() string {
	return m.turnID
}

// ToolCalls returns the pending capability call requests of an assistant turn.
func (m Message) ToolCalls() []ToolCall {
	return m.toolCalls
}

// ToolCallID returns the call identifier answered by a tool turn.
func (m Message) ToolCallID() string {
	return m.toolCallID
}

// ToolName returns the capability name of a tool turn.
func (m Message) ToolName() string {
	return m.toolName
}
