package components

import (
	"context"
	"testing"

	"github.com/pharmaxis/pharmintel/schema"
)

type countingEngine struct {
	chats   int
	streams int
}

func (e *countingEngine) Chat(ctx context.Context, req *ChatRequest) (*Completion, error) {
	e.chats++
	return &Completion{Content: "ok"}, nil
}

func (e *countingEngine) ChatStream(ctx context.Context, req *ChatRequest, fn StreamFunc) error {
	e.streams++
	for _, fragment := range []string{"a", "b"} {
		if err := fn(ctx, fragment); err != nil {
			return err
		}
	}
	return nil
}

func TestInstrumentedEngineAccountsPasses(t *testing.T) {
	inner := new(countingEngine)
	engine := NewInstrumentedEngine(inner)
	req := &ChatRequest{
		Model:    "gpt-4o",
		System:   "You are a pharmaceutical analyst.",
		Messages: []Message{*NewMessage(UserRole, schema.NewString("metformin trade trends"))},
	}
	if _, err := engine.Chat(context.Background(), req); err != nil {
		t.Fatal(err)
	}
	if err := engine.ChatStream(context.Background(), req, func(ctx context.Context, fragment string) error {
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	stats := engine.Stats()
	if got := stats.ChatPasses.Load(); got != 1 {
		t.Errorf("expect 1 chat pass, got %d", got)
	}
	if got := stats.StreamPasses.Load(); got != 1 {
		t.Errorf("expect 1 stream pass, got %d", got)
	}
	if got := stats.Fragments.Load(); got != 2 {
		t.Errorf("expect 2 fragments, got %d", got)
	}
	// Both passes submitted the same prompt, so the footprint doubles.
	if got, want := stats.PromptTokens.Load(), int64(2*PromptTokens(req)); got != want {
		t.Errorf("expect %d prompt tokens, got %d", want, got)
	}
	if inner.chats != 1 || inner.streams != 1 {
		t.Errorf("wrapped engine passes: %d chats, %d streams", inner.chats, inner.streams)
	}
}
