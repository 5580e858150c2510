// Package assistant assembles the production tool registry from configuration.
package assistant

import (
	"log/slog"
	"time"

	"github.com/ironsheep/roku-tools/internal/clock"
	"github.com/ironsheep/roku-tools/internal/config"
	"github.com/ironsheep/roku-tools/internal/election"
	"github.com/ironsheep/roku-tools/internal/extract"
	"github.com/ironsheep/roku-tools/internal/mailer"
	"github.com/ironsheep/roku-tools/internal/ocr"
	"github.com/ironsheep/roku-tools/internal/search"
	"github.com/ironsheep/roku-tools/internal/story"
	"github.com/ironsheep/roku-tools/internal/tools"
	"github.com/ironsheep/roku-tools/internal/weather"
)

// Deps overrides production collaborators. Zero fields use the defaults built from config.
type Deps struct {
	Search search.Engine
	Mail   mailer.Sender
	OCR    ocr.Engine
	Now    func() time.Time
}

// NewRegistry wires all tools with their production dependencies.
func NewRegistry(cfg config.Config, logger *slog.Logger) (*tools.Registry, error) {
	return Build(cfg, Deps{}, logger)
}

// Build wires all tools, using deps where set.
func Build(cfg config.Config, deps Deps, logger *slog.Logger) (*tools.Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}
	newClient := cfg.HTTPClient

	engine := deps.Search
	if engine == nil {
		engine = search.NewDuckDuckGo(cfg.SearchURL, newClient)
	}
	ocrEngine := deps.OCR
	if ocrEngine == nil {
		ocrEngine = ocr.New(ocr.Options{Command: cfg.TesseractCmd, TessdataPrefix: cfg.TessdataPrefix})
	}

	searcher := search.New(engine, logger.With("component", "search"))
	elections := election.New(searcher, logger.With("component", "election"))
	clk := clock.New(logger.With("component", "clock"))
	if deps.Now != nil {
		searcher.Now = deps.Now
		elections.Now = deps.Now
		clk.Now = deps.Now
	}

	wx := weather.New(cfg.WeatherURL, newClient, logger.With("component", "weather"))
	if !cfg.HasMailCredentials() {
		logger.Warn("send_email is not configured", "need", "GMAIL_USER and GMAIL_APP_PASSWORD")
	}
	mail := mailer.New(cfg.GmailUser, cfg.GmailAppPassword, cfg.SMTPHost, cfg.SMTPPort, deps.Mail, logger.With("component", "mail"))
	docs := extract.New(extract.NewSourceReader(newClient), ocrEngine, logger.With("component", "extract"))

	catalog := []*tools.Tool{
		tools.MustNew(tools.GetWeather,
			"Get the current weather for a given city with detailed information.",
			wx.Handle),
		tools.MustNew(tools.SearchWeb,
			"Search the web using DuckDuckGo and return concise results.",
			searcher.Web),
		tools.MustNew(tools.SendEmail,
			"Send an email through Gmail.",
			mail.Handle),
		tools.MustNew(tools.ExtractPDFText,
			"Extract text from a PDF file provided as a URL or local file path.",
			docs.PDF),
		tools.MustNew(tools.ExtractImageText,
			"Perform OCR on an image provided as a URL or local file path. Requires the Tesseract OCR engine.",
			docs.Image),
		tools.MustNew(tools.GetCurrentDatetime,
			"Get the current date and time information.",
			clk.Handle),
		tools.MustNew(tools.GetCurrentEvents,
			"Get current information about recent events, elections, or current facts.",
			searcher.CurrentEvents),
		tools.MustNew(tools.AnswerGeneralQuestion,
			"Answer general knowledge questions and provide engaging, friendly responses. Use it for open-ended questions, trivia, explanations, and casual conversation.",
			searcher.GeneralQuestion),
		tools.MustNew(tools.GetElectionInfo,
			"Get information about elections and political events.",
			elections.Handle),
		tools.MustNew(tools.TellShortStory,
			"Tell an original short story based on the given theme or topic, with fun characters and a happy ending.",
			story.Tell),
		tools.MustNew(tools.SearchYouTube,
			"Search YouTube for videos based on the query and return top results.",
			searcher.YouTube),
		tools.MustNew(tools.SearchMusic,
			"Search for music, songs, artists, and music-related content.",
			searcher.Music),
		tools.MustNew(tools.SearchNews,
			"Search for latest news, current events, and breaking news.",
			searcher.News),
	}

	reg := tools.NewRegistry(logger.With("component", "registry"))
	for _, t := range catalog {
		if err := reg.Register(t); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
