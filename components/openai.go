package components

import (
	"context"
	"errors"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIEngine is the Engine implementation backed by an OpenAI-compatible
// chat completion API. The client is read-only after construction and safe for
// concurrent invocations.
type OpenAIEngine struct {
	client *openai.Client
}

// NewOpenAIEngine returns an engine for the given API key. An empty baseURL
// uses the default OpenAI endpoint.
func NewOpenAIEngine(apiKey string, baseURL string) *OpenAIEngine {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIEngine{
		client: openai.NewClientWithConfig(cfg),
	}
}

// NewOpenAIEngineWithClient wraps an existing client.
func NewOpenAIEngineWithClient(clt *openai.Client) *OpenAIEngine {
	return &OpenAIEngine{client: clt}
}

func (e *OpenAIEngine) chatRequest(req *ChatRequest, stream bool) openai.ChatCompletionRequest {
	chatReq := openai.ChatCompletionRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Stream:      stream,
	}
	chatReq.Messages = make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		chatReq.Messages = append(chatReq.Messages, openai.ChatCompletionMessage{
			Role:    SystemRole,
			Content: req.System,
		})
	}
	for _, msg := range req.Messages {
		v := new(openai.ChatCompletionMessage)
		msg.ToOpenAI(v)
		chatReq.Messages = append(chatReq.Messages, *v)
	}
	if len(req.Tools) > 0 {
		chatReq.Tools = make([]openai.Tool, 0, len(req.Tools))
		for _, def := range req.Tools {
			v := new(openai.Tool)
			def.ToOpenAI(v)
			chatReq.Tools = append(chatReq.Tools, *v)
		}
		chatReq.ToolChoice = "auto"
	}
	return chatReq
}

// Chat performs a single reasoning pass.
func (e *OpenAIEngine) Chat(ctx context.Context, req *ChatRequest) (*Completion, error) {
	res, err := e.client.CreateChatCompletion(ctx, e.chatRequest(req, false))
	if err != nil {
		return nil, err
	}
	if len(res.Choices) == 0 {
		return nil, errors.New("empty completion choices")
	}
	msg := res.Choices[0].Message
	return &Completion{
		Content:   msg.Content,
		ToolCalls: ToolCallsFromOpenAI(msg.ToolCalls),
	}, nil
}

// ChatStream performs a single streaming reasoning pass, forwarding every
// produced fragment to fn in arrival order.
func (e *OpenAIEngine) ChatStream(ctx context.Context, req *ChatRequest, fn StreamFunc) error {
	stream, err := e.client.CreateChatCompletionStream(ctx, e.chatRequest(req, true))
	if err != nil {
		return err
	}
	defer stream.Close()
	for {
		res, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if len(res.Choices) == 0 {
			continue
		}
		if fragment := res.Choices[0].Delta.Content; fragment != "" {
			if err := fn(ctx, fragment); err != nil {
				return err
			}
		}
	}
}

var _ Engine = (*OpenAIEngine)(nil)
