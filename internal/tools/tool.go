package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// ErrInvalidArguments is wrapped when call arguments cannot be decoded.
var ErrInvalidArguments = errors.New("invalid tool arguments")

// HandlerFunc is the typed body of a tool.
type HandlerFunc[A any] func(ctx context.Context, args A) Result

// Tool is a named operation the agent can call.
type Tool struct {
	Name        Name
	Description string
	// Schema describes the JSON object accepted as arguments.
	Schema *jsonschema.Schema

	invoke func(ctx context.Context, args json.RawMessage) Result
}

// New builds a tool whose arguments decode into A. The argument schema is derived from A's
// json and jsonschema struct tags.
func New[A any](name Name, description string, fn HandlerFunc[A]) (*Tool, error) {
	if !name.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	if fn == nil {
		return nil, fmt.Errorf("tool %s: nil handler", name)
	}
	schema, err := jsonschema.For[A](&jsonschema.ForOptions{})
	if err != nil {
		return nil, fmt.Errorf("tool %s: schema: %w", name, err)
	}
	return &Tool{
		Name:        name,
		Description: description,
		Schema:      schema,
		invoke: func(ctx context.Context, raw json.RawMessage) Result {
			var args A
			if err := decodeArgs(raw, &args); err != nil {
				return Fail(KindInternal, fmt.Errorf("%w: %v", ErrInvalidArguments, err),
					fmt.Sprintf("Sorry, I couldn't understand the details for %s. Please try again.", name))
			}
			return fn(ctx, args)
		},
	}, nil
}

// MustNew is New that panics on error. Use it for the static catalog.
func MustNew[A any](name Name, description string, fn HandlerFunc[A]) *Tool {
	t, err := New(name, description, fn)
	if err != nil {
		panic(err)
	}
	return t
}

// Invoke runs the tool with raw JSON arguments.
func (t *Tool) Invoke(ctx context.Context, args json.RawMessage) Result {
	return t.invoke(ctx, args)
}

func decodeArgs(raw json.RawMessage, v any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		raw = []byte("{}")
	}
	return json.Unmarshal(raw, v)
}
