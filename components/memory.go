package components

import (
	"sync"

	"github.com/pharmaxis/pharmintel/schema"
)

// Memory manages the scratchpad for one agent invocation.
// Turns are append-only and never reordered.
// threadsafe
type Memory struct {
	//	history is a list of messages representing the scratchpad.
	history []Message
	//	turnID is the ID of the current turn.
	turnID string
	// maxMessages is the maximum number of messages to keep in history.
	// When exceeded, oldest messages are removed first. Zero means unbounded.
	maxMessages int
	// mtx sync lock
	mtx *sync.RWMutex
}

// NewMemory initializes the Memory with an empty history and optional constraints.
func NewMemory(maxMessages int) *Memory {
	return &Memory{
		maxMessages: maxMessages,
		history:     make([]Message, 0, maxMessages+1),
		mtx:         new(sync.RWMutex),
	}
}

// MaxMessages returns the max number of messages
func (m *Memory) MaxMessages() int {
	return m.maxMessages
}

// TurnID returns the current turn ID
func (m *Memory) TurnID() string {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.turnID
}

// NewTurn initializes a new turn by generating a random turn ID.
func (m *Memory) NewTurn() *Memory {
	m.mtx.Lock()
	m.turnID = NewTurnID()
	m.mtx.Unlock()
	return m
}

// NewMessage adds a message to the scratchpad and manages overflow.
func (m *Memory) NewMessage(role MessageRole, content schema.Schema) *Message {
	return m.Push(NewMessage(role, content))
}

// Push appends a prebuilt message to the scratchpad, stamping the current turn ID.
func (m *Memory) Push(msg *Message) *Message {
	m.mtx.Lock()
	msg.SetTurnID(m.turnID)
	m.history = append(m.history, *msg)
	if l := len(m.history); m.maxMessages > 0 && l > m.maxMessages {
		m.history = m.history[1:]
	}
	m.mtx.Unlock()
	return msg
}

// History retrieves a copy of the scratchpad.
func (m *Memory) History() []Message {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	history := make([]Message, len(m.history))
	copy(history, m.history)
	return history
}

// Reset clears the scratchpad.
func (m *Memory) Reset() *Memory {
	m.mtx.Lock()
	m.history = make([]Message, 0, m.maxMessages)
	m.turnID = ""
	m.mtx.Unlock()
	return m
}

// MessageCount returns the number of messages in the scratchpad.
func (m *Memory) MessageCount() int {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return len(m.history)
}
