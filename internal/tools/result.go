package tools

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind categorizes the outcome of a tool call.
type Kind int

const (
	// KindOK is a successful call.
	KindOK Kind = iota
	// KindNetwork covers connection failures and non-2xx upstream statuses.
	KindNetwork
	// KindTimeout is an upstream call that exceeded its deadline.
	KindTimeout
	// KindConfig is a missing credential or external engine.
	KindConfig
	// KindContent is a call that worked but produced nothing usable (e.g. empty extraction).
	KindContent
	// KindInternal is everything else.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindConfig:
		return "config"
	case KindContent:
		return "content"
	default:
		return "internal"
	}
}

// Result is the outcome of a tool call. Text is always set and is what the agent speaks,
// including on failure.
type Result struct {
	Text string
	Kind Kind
	Err  error
}

// OK returns a successful result.
func OK(text string) Result {
	return Result{Text: text, Kind: KindOK}
}

// Fail returns a failed result with the user-facing text to speak.
func Fail(kind Kind, err error, text string) Result {
	return Result{Text: text, Kind: kind, Err: err}
}

// Failed reports whether the call did not succeed.
func (r Result) Failed() bool {
	return r.Kind != KindOK
}

// Classify maps a transport error to a failure kind.
func Classify(err error) Kind {
	if err == nil {
		return KindOK
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	// Local file errors unwrap to syscall.Errno, which also satisfies net.Error.
	var pathErr *fs.PathError
	var linkErr *os.LinkError
	if errors.As(err, &pathErr) || errors.As(err, &linkErr) {
		return KindInternal
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return KindTimeout
		}
		return KindNetwork
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return KindNetwork
	}
	return KindInternal
}

// StatusError reports a non-2xx HTTP status from an upstream service.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return "unexpected status " + strconv.Itoa(e.StatusCode) + " from " + e.URL
}

// Truncate shortens s to at most limit runes, appending suffix when it was cut.
// Cuts never split a multi-byte character.
func Truncate(s string, limit int, suffix string) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	var b strings.Builder
	n := 0
	for _, r := range s {
		if n == limit {
			break
		}
		b.WriteRune(r)
		n++
	}
	b.WriteString(suffix)
	return b.String()
}
