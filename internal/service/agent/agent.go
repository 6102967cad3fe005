package agent

import (
	"context"
	"errors"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Config holds the generation endpoint configuration. Values can be
// left empty to fall back to environment variables:
//
//	LLM_API_KEY, LLM_BASE_URL, LLM_MODEL
//
// Any OpenAI-compatible /chat/completions endpoint works (the default
// deployment points BaseURL at a Gemini-compatible proxy).
type Config struct {
	Key     string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// LoadEnv fills empty fields from environment variables.
func (c *Config) LoadEnv() {
	if c.Key == "" {
		c.Key = os.Getenv("LLM_API_KEY")
	}
	if c.BaseURL == "" {
		c.BaseURL = os.Getenv("LLM_BASE_URL")
	}
	if c.Model == "" {
		c.Model = os.Getenv("LLM_MODEL")
	}
}

// Validate basic required fields.
func (c *Config) Validate() error {
	if c.Key == "" || c.Model == "" {
		return errors.New("missing required generation configuration (need key, model)")
	}
	return nil
}

// completionClient is the slice of the OpenAI client the agent uses;
// tests substitute a fake.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Agent is a lightweight wrapper around the OpenAI client for
// single-turn completion calls.
type Agent struct {
	cfg    Config
	client completionClient
}

// GetConfig returns a copy of the agent configuration (read-only for caller).
func (a *Agent) GetConfig() Config { return a.cfg }

// New creates a new Agent using the provided config (with env fallbacks).
func New(cfg Config) (*Agent, error) {
	cfg.LoadEnv()
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	oaiCfg := openai.DefaultConfig(cfg.Key)
	if cfg.BaseURL != "" {
		oaiCfg.BaseURL = cfg.BaseURL
	}
	return &Agent{cfg: cfg, client: openai.NewClientWithConfig(oaiCfg)}, nil
}

// Option is a functional option to modify agent configuration before initialization.
type Option func(*Config)

// WithKey overrides the API key.
func WithKey(v string) Option { return func(c *Config) { c.Key = v } }

// WithBaseURL overrides the API endpoint.
func WithBaseURL(v string) Option { return func(c *Config) { c.BaseURL = v } }

// WithModel sets the model name.
func WithModel(v string) Option { return func(c *Config) { c.Model = v } }

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option { return func(c *Config) { c.Timeout = d } }

// NewAuto creates an Agent pulling defaults from environment variables
// first, then applying options.
func NewAuto(opts ...Option) (*Agent, error) {
	cfg := Config{}
	cfg.LoadEnv()
	for _, o := range opts {
		o(&cfg)
	}
	return New(cfg)
}

// ChatOption allows customizing a single Chat call.
type ChatOption func(*chatParams)

type chatParams struct {
	system      string
	temperature float32
	maxTokens   int
}

// WithSystem sets a system prompt.
func WithSystem(system string) ChatOption { return func(p *chatParams) { p.system = system } }

// WithTemperature sets sampling temperature (0-2, typical 0-1).
func WithTemperature(t float32) ChatOption { return func(p *chatParams) { p.temperature = t } }

// WithMaxTokens limits output tokens (0 lets the API decide).
func WithMaxTokens(n int) ChatOption { return func(p *chatParams) { p.maxTokens = n } }

// Chat sends a single-turn user prompt and returns the assistant's reply text.
func (a *Agent) Chat(ctx context.Context, userPrompt string, opts ...ChatOption) (string, error) {
	if a == nil || a.client == nil {
		return "", errors.New("agent not initialized")
	}
	p := chatParams{temperature: 0.7}
	for _, o := range opts {
		o(&p)
	}
	msgs := make([]openai.ChatCompletionMessage, 0, 2)
	if p.system != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: p.system})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: userPrompt})

	req := openai.ChatCompletionRequest{
		Model:       a.cfg.Model,
		Messages:    msgs,
		Temperature: p.temperature,
	}
	if p.maxTokens > 0 {
		req.MaxTokens = p.maxTokens
	}
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()
	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response choices")
	}
	return resp.Choices[0].Message.Content, nil
}
