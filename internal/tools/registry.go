package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

var (
	ErrToolAlreadyRegistered = errors.New("tool already registered")
	ErrToolNotRegistered     = errors.New("tool not registered")
)

// Registry maps tool names to tools. Register everything before serving; after that the
// registry is only read.
type Registry struct {
	tools  map[Name]*Tool
	order  []Name
	logger *slog.Logger
}

// NewRegistry creates an empty registry. A nil logger uses slog.Default().
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		tools:  make(map[Name]*Tool),
		logger: logger,
	}
}

// Register adds a tool.
func (r *Registry) Register(t *Tool) error {
	if t == nil || t.invoke == nil {
		return ErrToolNotRegistered
	}
	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("%w: %s", ErrToolAlreadyRegistered, t.Name)
	}
	r.tools[t.Name] = t
	r.order = append(r.order, t.Name)
	return nil
}

// Get returns the tool registered under name.
func (r *Registry) Get(name Name) (*Tool, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotRegistered, name)
	}
	return t, nil
}

// Lookup resolves a wire name.
func (r *Registry) Lookup(name string) (*Tool, error) {
	n, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	return r.Get(n)
}

// List returns the registered tools in registration order.
func (r *Registry) List() []*Tool {
	out := make([]*Tool, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, r.tools[n])
	}
	return out
}

// Call dispatches a call by wire name. The error is non-nil only when the name does not resolve
// to a registered tool; tool failures are reported through the Result.
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (Result, error) {
	t, err := r.Lookup(name)
	if err != nil {
		return Result{}, err
	}

	callID := uuid.NewString()
	log := r.logger.With("tool", string(t.Name), "call_id", callID)
	log.Debug("tool call", "args", string(args))

	start := time.Now()
	res := r.invoke(ctx, t, args, log)
	elapsed := time.Since(start)

	if res.Failed() {
		log.Warn("tool call failed", "kind", res.Kind.String(), "err", res.Err, "elapsed", elapsed)
	} else {
		log.Info("tool call done", "elapsed", elapsed, "chars", len(res.Text))
	}
	return res, nil
}

func (r *Registry) invoke(ctx context.Context, t *Tool, args json.RawMessage, log *slog.Logger) (res Result) {
	defer func() {
		if p := recover(); p != nil {
			log.Error("tool panicked", "panic", p)
			res = Fail(KindInternal, fmt.Errorf("panic: %v", p),
				"Oh dear, something went wrong on my side. Please try again.")
		}
	}()
	return t.Invoke(ctx, args)
}
