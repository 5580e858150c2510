// Package gemini drives the tool registry from a Gemini model: tools are exposed as function
// declarations and the model's function calls are answered from the registry.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"github.com/ironsheep/roku-tools/internal/config"
	"github.com/ironsheep/roku-tools/internal/tools"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.5-flash"
	// Temperature of the conversational model.
	Temperature float32 = 0.8
	// MaxRounds bounds the function-call round trips of one user turn.
	MaxRounds = 5

	requestTimeout = 60 * time.Second
)

var (
	ErrNoAPIKey      = errors.New("gemini: GOOGLE_API_KEY is not set")
	ErrNoCandidates  = errors.New("gemini: response has no candidates")
	ErrTooManyRounds = errors.New("gemini: too many function-call rounds")
)

// Generator is the subset of genai.Models used by Chat.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// NewClient creates a Gemini API client. It dials through the configured proxy, if any.
func NewClient(ctx context.Context, cfg config.Config) (*genai.Client, error) {
	if cfg.GoogleAPIKey == "" {
		return nil, ErrNoAPIKey
	}
	httpClient, err := cfg.HTTPClient(requestTimeout)
	if err != nil {
		return nil, err
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.GoogleAPIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
}

// Respond runs one function call against reg. The reply carries the tool's text under
// "output", or under "error" when the tool failed or does not exist.
func Respond(ctx context.Context, reg *tools.Registry, call *genai.FunctionCall) *genai.FunctionResponse {
	resp := &genai.FunctionResponse{ID: call.ID, Name: call.Name}

	args, err := json.Marshal(call.Args)
	if err != nil {
		resp.Response = map[string]any{"error": fmt.Sprintf("invalid arguments: %v", err)}
		return resp
	}

	res, err := reg.Call(ctx, call.Name, args)
	switch {
	case err != nil:
		resp.Response = map[string]any{"error": err.Error()}
	case res.Failed():
		resp.Response = map[string]any{"error": res.Text}
	default:
		resp.Response = map[string]any{"output": res.Text}
	}
	return resp
}

// Chat is a text conversation with the assistant persona. It is not safe for concurrent use.
type Chat struct {
	gen     Generator
	reg     *tools.Registry
	model   string
	config  *genai.GenerateContentConfig
	history []*genai.Content
	logger  *slog.Logger
}

// NewChat starts a conversation. An empty model uses DefaultModel.
func NewChat(gen Generator, reg *tools.Registry, model string, logger *slog.Logger) *Chat {
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Chat{
		gen:   gen,
		reg:   reg,
		model: model,
		config: &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(Instruction, genai.RoleUser),
			Temperature:       genai.Ptr(Temperature),
			Tools:             Declarations(reg),
		},
		logger: logger,
	}
}

// Send adds a user message and returns the model's answer, resolving any function calls
// it makes along the way. A failed turn leaves the history as it was before the call.
func (c *Chat) Send(ctx context.Context, text string) (string, error) {
	mark := len(c.history)
	answer, err := c.send(ctx, text)
	if err != nil {
		// Gemini rejects a history that ends in an unanswered function call.
		clear(c.history[mark:])
		c.history = c.history[:mark]
		return "", err
	}
	return answer, nil
}

func (c *Chat) send(ctx context.Context, text string) (string, error) {
	c.history = append(c.history, genai.NewContentFromText(text, genai.RoleUser))

	for round := 0; round <= MaxRounds; round++ {
		resp, err := c.gen.GenerateContent(ctx, c.model, c.history, c.config)
		if err != nil {
			return "", err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
			return "", ErrNoCandidates
		}
		content := resp.Candidates[0].Content
		if content.Role == "" {
			content.Role = genai.RoleModel
		}
		c.history = append(c.history, content)

		calls := resp.FunctionCalls()
		if len(calls) == 0 {
			return resp.Text(), nil
		}
		if round == MaxRounds {
			break
		}

		parts := make([]*genai.Part, 0, len(calls))
		for _, call := range calls {
			c.logger.Debug("function call", "name", call.Name, "round", round+1)
			parts = append(parts, &genai.Part{FunctionResponse: Respond(ctx, c.reg, call)})
		}
		c.history = append(c.history, genai.NewContentFromParts(parts, genai.RoleUser))
	}
	return "", ErrTooManyRounds
}

// History returns the conversation so far.
func (c *Chat) History() []*genai.Content {
	return c.history
}
