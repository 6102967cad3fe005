package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// fakeClient implements completionClient for testing
type fakeClient struct {
	resp openai.ChatCompletionResponse
	err  error
	last openai.ChatCompletionRequest
}

func (f *fakeClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.last = req
	return f.resp, f.err
}

func TestChat_HappyPath(t *testing.T) {
	f := &fakeClient{
		resp: openai.ChatCompletionResponse{
			ID:    "r1",
			Model: "gpt-test",
			Choices: []openai.ChatCompletionChoice{{
				Message:      openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "hello world"},
				FinishReason: openai.FinishReason("stop"),
			}},
		},
	}
	a := &Agent{cfg: Config{Model: "gpt-test", Timeout: time.Second}, client: f}
	reply, err := a.Chat(context.Background(), "hi")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if reply != "hello world" {
		t.Fatalf("unexpected reply: %s", reply)
	}
	if f.last.Model != "gpt-test" {
		t.Fatalf("unexpected request model: %s", f.last.Model)
	}
}

func TestChat_SystemAndParams(t *testing.T) {
	f := &fakeClient{
		resp: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{
				Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "ok"},
			}},
		},
	}
	a := &Agent{cfg: Config{Model: "gpt-test", Timeout: time.Second}, client: f}
	_, err := a.Chat(context.Background(), "hi",
		WithSystem("you are a quiz writer"),
		WithTemperature(0.2),
		WithMaxTokens(64),
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(f.last.Messages) != 2 || f.last.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Fatalf("system message not first: %+v", f.last.Messages)
	}
	if f.last.Temperature != 0.2 || f.last.MaxTokens != 64 {
		t.Fatalf("params not applied: temp=%v max=%d", f.last.Temperature, f.last.MaxTokens)
	}
}

func TestChat_ClientError(t *testing.T) {
	f := &fakeClient{err: errors.New("upstream down")}
	a := &Agent{cfg: Config{Model: "gpt-test", Timeout: time.Second}, client: f}
	if _, err := a.Chat(context.Background(), "hi"); err == nil {
		t.Fatalf("expected error from client to propagate")
	}
}

func TestChat_EmptyChoices(t *testing.T) {
	f := &fakeClient{}
	a := &Agent{cfg: Config{Model: "gpt-test", Timeout: time.Second}, client: f}
	if _, err := a.Chat(context.Background(), "hi"); err == nil {
		t.Fatalf("expected error for empty choices")
	}
}

func TestConfigValidate(t *testing.T) {
	c := Config{Key: "k"}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected missing model to fail validation")
	}
	c.Model = "m"
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
