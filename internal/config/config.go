// Package config provides process-wide configuration loaded once at startup.
// Values come from an optional YAML file, then the environment (including a .env file);
// every field has a safe default so the binary runs without any setup.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/net/proxy"
	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration. Treat it as immutable after Load.
type Config struct {
	// Conversational model
	GoogleAPIKey string `yaml:"google_api_key"` // GOOGLE_API_KEY
	GeminiModel  string `yaml:"gemini_model"`   // ROKU_GEMINI_MODEL, default "gemini-2.5-flash"

	// Email
	GmailUser        string `yaml:"gmail_user"`         // GMAIL_USER
	GmailAppPassword string `yaml:"gmail_app_password"` // GMAIL_APP_PASSWORD
	SMTPHost         string `yaml:"smtp_host"`          // ROKU_SMTP_HOST, default "smtp.gmail.com"
	SMTPPort         int    `yaml:"smtp_port"`          // ROKU_SMTP_PORT, default 587

	// OCR
	TesseractCmd   string `yaml:"tesseract_cmd"`   // TESSERACT_CMD
	TessdataPrefix string `yaml:"tessdata_prefix"` // TESSDATA_PREFIX

	// Upstream endpoints
	WeatherURL string `yaml:"weather_url"` // ROKU_WEATHER_URL, default "https://wttr.in"
	SearchURL  string `yaml:"search_url"`  // ROKU_SEARCH_URL, default "https://html.duckduckgo.com/html/"
	SocksProxy string `yaml:"socks_proxy"` // ROKU_SOCKS_PROXY, e.g. "127.0.0.1:1080"

	// Process
	LogLevel string `yaml:"log_level"` // ROKU_LOG_LEVEL, default "info"
	HTTPAddr string `yaml:"http_addr"` // ROKU_HTTP_ADDR
}

const (
	envKeyGoogleAPIKey     = "GOOGLE_API_KEY"
	envKeyGeminiModel      = "ROKU_GEMINI_MODEL"
	envKeyGmailUser        = "GMAIL_USER"
	envKeyGmailAppPassword = "GMAIL_APP_PASSWORD"
	envKeySMTPHost         = "ROKU_SMTP_HOST"
	envKeySMTPPort         = "ROKU_SMTP_PORT"
	envKeyTesseractCmd     = "TESSERACT_CMD"
	envKeyTessdataPrefix   = "TESSDATA_PREFIX"
	envKeyWeatherURL       = "ROKU_WEATHER_URL"
	envKeySearchURL        = "ROKU_SEARCH_URL"
	envKeySocksProxy       = "ROKU_SOCKS_PROXY"
	envKeyLogLevel         = "ROKU_LOG_LEVEL"
	envKeyHTTPAddr         = "ROKU_HTTP_ADDR"
)

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		GeminiModel: "gemini-2.5-flash",
		SMTPHost:    "smtp.gmail.com",
		SMTPPort:    587,
		WeatherURL:  "https://wttr.in",
		SearchURL:   "https://html.duckduckgo.com/html/",
		LogLevel:    "info",
	}
}

// Load builds the configuration. envFile is loaded into the process environment when it exists
// (existing variables win). configFile, when non-empty, must be a readable YAML file.
func Load(envFile, configFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	cfg := Defaults()
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", configFile, err)
		}
	}

	cfg.GoogleAPIKey = envOr(envKeyGoogleAPIKey, cfg.GoogleAPIKey)
	cfg.GeminiModel = envOr(envKeyGeminiModel, cfg.GeminiModel)
	cfg.GmailUser = envOr(envKeyGmailUser, cfg.GmailUser)
	cfg.GmailAppPassword = envOr(envKeyGmailAppPassword, cfg.GmailAppPassword)
	cfg.SMTPHost = envOr(envKeySMTPHost, cfg.SMTPHost)
	cfg.TesseractCmd = envOr(envKeyTesseractCmd, cfg.TesseractCmd)
	cfg.TessdataPrefix = envOr(envKeyTessdataPrefix, cfg.TessdataPrefix)
	cfg.WeatherURL = envOr(envKeyWeatherURL, cfg.WeatherURL)
	cfg.SearchURL = envOr(envKeySearchURL, cfg.SearchURL)
	cfg.SocksProxy = envOr(envKeySocksProxy, cfg.SocksProxy)
	cfg.LogLevel = envOr(envKeyLogLevel, cfg.LogLevel)
	cfg.HTTPAddr = envOr(envKeyHTTPAddr, cfg.HTTPAddr)

	if v := os.Getenv(envKeySMTPPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("%s: invalid port %q", envKeySMTPPort, v)
		}
		cfg.SMTPPort = port
	}

	return cfg, nil
}

// HasMailCredentials reports whether both the mail account and its app password are set.
func (c Config) HasMailCredentials() bool {
	return c.GmailUser != "" && c.GmailAppPassword != ""
}

// HTTPClient returns a new client with the given timeout. Each tool call builds its own client;
// when a SOCKS proxy is configured all connections are dialed through it.
func (c Config) HTTPClient(timeout time.Duration) (*http.Client, error) {
	if c.SocksProxy == "" {
		return &http.Client{Timeout: timeout}, nil
	}

	dialer, err := proxy.SOCKS5("tcp", c.SocksProxy, nil, proxy.Direct)
	if err != nil {
		return nil, fmt.Errorf("socks proxy %s: %w", c.SocksProxy, err)
	}
	transport := &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			if cd, ok := dialer.(proxy.ContextDialer); ok {
				return cd.DialContext(ctx, network, addr)
			}
			return dialer.Dial(network, addr)
		},
	}
	return &http.Client{Transport: transport, Timeout: timeout}, nil
}

// envOr returns the value of the environment variable key, or fallback if not set.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
