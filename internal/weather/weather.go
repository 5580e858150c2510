// Package weather implements the get_weather tool against a wttr.in style service.
package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/ironsheep/roku-tools/internal/tools"
)

// Timeout bounds each request to the weather service.
const Timeout = 10 * time.Second

// maxBody caps how much of a response is read.
const maxBody = 1 << 20

// errMalformed marks a 200 response whose payload has no current conditions.
var errMalformed = errors.New("weather: malformed payload")

// ClientFactory returns a fresh HTTP client for one call.
type ClientFactory func(timeout time.Duration) (*http.Client, error)

// Service looks up current conditions for a city.
type Service struct {
	BaseURL   string
	NewClient ClientFactory
	Logger    *slog.Logger
}

// New returns a Service for baseURL (e.g. https://wttr.in).
func New(baseURL string, newClient ClientFactory, logger *slog.Logger) *Service {
	if newClient == nil {
		newClient = func(timeout time.Duration) (*http.Client, error) {
			return &http.Client{Timeout: timeout}, nil
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		NewClient: newClient,
		Logger:    logger,
	}
}

// Args are the arguments of get_weather.
type Args struct {
	City string `json:"city" jsonschema:"The city to get the current weather for"`
}

// Handle is the get_weather handler. A non-200 answer or an unusable payload triggers one
// request for the one-line summary format.
func (s *Service) Handle(ctx context.Context, a Args) tools.Result {
	city := a.City

	client, err := s.NewClient(Timeout)
	if err != nil {
		return s.fail(city, err)
	}

	status, body, err := s.get(ctx, client, city, "j1")
	if err != nil {
		return s.fail(city, err)
	}

	if status == http.StatusOK {
		text, err := Describe(city, body)
		if err == nil {
			s.Logger.Info("weather", "city", city, "text", text)
			return tools.OK(text)
		}
		s.Logger.Warn("weather payload unusable, trying summary", "city", city, "err", err)
	} else {
		s.Logger.Warn("weather lookup failed, trying summary", "city", city, "status", status)
	}

	status, body, err = s.get(ctx, client, city, "3")
	if err != nil {
		return s.fail(city, err)
	}
	if status != http.StatusOK {
		s.Logger.Error("weather summary failed", "city", city, "status", status)
		return tools.Fail(tools.KindNetwork, &tools.StatusError{URL: s.BaseURL, StatusCode: status},
			fmt.Sprintf("Could not retrieve weather for %s. Please check the city name and try again.", city))
	}
	return tools.OK(strings.TrimSpace(string(body)))
}

// Describe formats a j1 payload. Missing fields read as N/A (condition as Unknown).
func Describe(city string, payload []byte) (string, error) {
	if !gjson.ValidBytes(payload) {
		return "", errMalformed
	}
	cur := gjson.GetBytes(payload, "current_condition.0")
	if !cur.IsObject() {
		return "", errMalformed
	}

	field := func(path, def string) string {
		if v := cur.Get(path); v.Exists() {
			return v.String()
		}
		return def
	}

	return fmt.Sprintf("Current weather in %s: %s°C (%s°F), %s. Feels like %s°C. Humidity: %s%%. Wind: %s km/h.",
		city,
		field("temp_C", "N/A"),
		field("temp_F", "N/A"),
		field("weatherDesc.0.value", "Unknown"),
		field("FeelsLikeC", "N/A"),
		field("humidity", "N/A"),
		field("windspeedKmph", "N/A"),
	), nil
}

func (s *Service) get(ctx context.Context, client *http.Client, city, format string) (int, []byte, error) {
	u := s.BaseURL + "/" + url.PathEscape(city) + "?format=" + format
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

func (s *Service) fail(city string, err error) tools.Result {
	kind := tools.Classify(err)
	s.Logger.Error("weather lookup error", "city", city, "kind", kind, "err", err)
	switch kind {
	case tools.KindTimeout:
		return tools.Fail(kind, err, fmt.Sprintf("Sorry, the weather service is taking too long to respond for %s.", city))
	case tools.KindNetwork:
		return tools.Fail(kind, err, fmt.Sprintf("Network error while getting weather for %s. Please check your internet connection.", city))
	default:
		return tools.Fail(kind, err, fmt.Sprintf("An error occurred while retrieving weather for %s. Please try again.", city))
	}
}
