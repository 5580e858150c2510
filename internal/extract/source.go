package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ironsheep/roku-tools/internal/tools"
)

const (
	// MaxSourceBytes caps how much of a document is read.
	MaxSourceBytes = 50 << 20

	// FetchTimeout bounds a remote document download.
	FetchTimeout = 30 * time.Second
)

// ErrTooLarge is returned when a source exceeds the read cap.
var ErrTooLarge = errors.New("extract: source too large")

// ClientFactory returns a fresh HTTP client for one call.
type ClientFactory func(timeout time.Duration) (*http.Client, error)

// SourceReader loads document bytes from a URL or a local path.
type SourceReader struct {
	NewClient ClientFactory
	MaxBytes  int64
}

// NewSourceReader returns a reader with the default cap.
func NewSourceReader(newClient ClientFactory) *SourceReader {
	if newClient == nil {
		newClient = func(timeout time.Duration) (*http.Client, error) {
			return &http.Client{Timeout: timeout}, nil
		}
	}
	return &SourceReader{NewClient: newClient, MaxBytes: MaxSourceBytes}
}

// IsURL reports whether source is fetched over HTTP rather than read from disk.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Read returns the bytes of source. http:// and https:// sources are downloaded
// (non-2xx is an error); anything else is a local file path.
func (r *SourceReader) Read(ctx context.Context, source string) ([]byte, error) {
	if IsURL(source) {
		return r.fetch(ctx, source)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return r.readLimited(f)
}

func (r *SourceReader) fetch(ctx context.Context, source string) ([]byte, error) {
	client, err := r.NewClient(FetchTimeout)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &tools.StatusError{URL: source, StatusCode: resp.StatusCode}
	}
	return r.readLimited(resp.Body)
}

func (r *SourceReader) readLimited(rd io.Reader) ([]byte, error) {
	limit := r.MaxBytes
	if limit <= 0 {
		limit = MaxSourceBytes
	}
	data, err := io.ReadAll(io.LimitReader(rd, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, limit)
	}
	return data, nil
}
