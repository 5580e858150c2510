// Package search implements the search-backed tools. Every variant builds its own query
// template over one Engine call and trims the answer for voice readout.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ironsheep/roku-tools/internal/tools"
)

// Readout limits, in characters.
const (
	webLimit           = 500
	mediaLimit         = 400
	currentEventsLimit = 300
	generalLimit       = 400

	// mediaMinResult is the shortest engine answer treated as a real hit by the media variants.
	mediaMinResult = 50
)

// Searcher exposes the search tool handlers.
type Searcher struct {
	Engine Engine
	Logger *slog.Logger
	Now    func() time.Time
}

// New returns a Searcher backed by engine.
func New(engine Engine, logger *slog.Logger) *Searcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Searcher{Engine: engine, Logger: logger, Now: time.Now}
}

// QueryArgs are the arguments of search_web.
type QueryArgs struct {
	Query string `json:"query" jsonschema:"What to search the web for"`
}

// MediaArgs are the arguments of search_news, search_music and search_youtube.
type MediaArgs struct {
	Query      string `json:"query,omitempty" jsonschema:"The search query"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"Maximum number of results to return (default: 5)"`
}

// TopicArgs are the arguments of get_current_events.
type TopicArgs struct {
	Topic string `json:"topic" jsonschema:"The topic to search for, e.g. 2024 US elections or current events"`
}

// QuestionArgs are the arguments of answer_general_question.
type QuestionArgs struct {
	Question string `json:"question" jsonschema:"The question to answer"`
}

// Run performs one engine search. It is shared with other search-backed packages.
func (s *Searcher) Run(ctx context.Context, query string, maxResults int) (string, error) {
	res, err := s.Engine.Search(ctx, query, maxResults)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res), nil
}

// Web is the search_web handler.
func (s *Searcher) Web(ctx context.Context, a QueryArgs) tools.Result {
	results, err := s.Run(ctx, a.Query, DefaultMaxResults)
	if err != nil {
		s.Logger.Error("web search failed", "query", a.Query, "err", err)
		return tools.Fail(tools.Classify(err), err,
			fmt.Sprintf("An error occurred while searching the web for '%s'. Please try again.", a.Query))
	}
	results = tools.Truncate(results, webLimit, "...")
	s.Logger.Info("web search", "query", a.Query, "results", results)
	return tools.OK(results)
}

// News is the search_news handler.
func (s *Searcher) News(ctx context.Context, a MediaArgs) tools.Result {
	query := a.Query
	if strings.TrimSpace(query) == "" {
		query = "latest news"
	}
	lower := strings.ToLower(query)
	searchQuery := fmt.Sprintf("news %s latest updates", query)
	if strings.Contains(lower, "latest") || strings.Contains(lower, "news") {
		searchQuery = fmt.Sprintf("news %s latest updates headlines", query)
	}

	results, err := s.Run(ctx, searchQuery, a.MaxResults)
	if err != nil {
		s.Logger.Error("news search failed", "query", query, "err", err)
		return tools.Fail(tools.Classify(err), err,
			fmt.Sprintf("Oh dear, I had trouble getting the latest news for '%s'. News search might be having issues right now. Would you like me to try a different topic?", query))
	}
	s.Logger.Info("news search", "query", query, "results", results)

	if utf8.RuneCountInString(results) <= mediaMinResult {
		return tools.OK(fmt.Sprintf("I searched for news about '%s' but couldn't find specific results. Try searching for 'latest news' or a specific topic!", query))
	}
	return tools.OK(fmt.Sprintf("📰 Here are the latest news updates I found for '%s':\n\n%s\n\nStay informed! Would you like me to search for news on a specific topic?",
		query, tools.Truncate(results, mediaLimit, "...")))
}

// Music is the search_music handler.
func (s *Searcher) Music(ctx context.Context, a MediaArgs) tools.Result {
	results, err := s.Run(ctx, fmt.Sprintf("music %s song lyrics artist", a.Query), a.MaxResults)
	if err != nil {
		s.Logger.Error("music search failed", "query", a.Query, "err", err)
		return tools.Fail(tools.Classify(err), err,
			fmt.Sprintf("Oh dear, I had trouble searching for music related to '%s'. Music search might be having issues right now. Would you like me to try a different search?", a.Query))
	}
	s.Logger.Info("music search", "query", a.Query, "results", results)

	if utf8.RuneCountInString(results) <= mediaMinResult {
		return tools.OK(fmt.Sprintf("I searched for music related to '%s' but couldn't find specific results. Try searching for a specific song, artist, or genre!", a.Query))
	}
	return tools.OK(fmt.Sprintf("Oh, wonderful! I love music! 🎵 Here are some great results for '%s':\n\n%s\n\nYou can search for lyrics, artist info, or similar songs. What kind of music are you in the mood for?",
		a.Query, tools.Truncate(results, mediaLimit, "...")))
}

// YouTube is the search_youtube handler.
func (s *Searcher) YouTube(ctx context.Context, a MediaArgs) tools.Result {
	results, err := s.Run(ctx, "site:youtube.com "+a.Query, a.MaxResults)
	if err != nil {
		s.Logger.Error("youtube search failed", "query", a.Query, "err", err)
		return tools.Fail(tools.Classify(err), err,
			fmt.Sprintf("Oh dear, I had trouble searching YouTube for '%s'. The YouTube search feature might be having issues right now. Would you like me to try a different search?", a.Query))
	}
	s.Logger.Info("youtube search", "query", a.Query, "results", results)

	if utf8.RuneCountInString(results) <= mediaMinResult {
		return tools.OK(fmt.Sprintf("I searched YouTube for '%s' but couldn't find specific video results. Try rephrasing your search or being more specific!", a.Query))
	}
	return tools.OK(fmt.Sprintf("Oh, I'd love to help you find YouTube videos! Here are some great results for '%s':\n\n%s\n\nYou can click these links to watch the videos directly on YouTube! Would you like me to search for something else?",
		a.Query, tools.Truncate(results, mediaLimit, "...")))
}

// CurrentEvents is the get_current_events handler.
func (s *Searcher) CurrentEvents(ctx context.Context, a TopicArgs) tools.Result {
	year := s.Now().Year()
	searchQuery := fmt.Sprintf("latest news %s %d %d", a.Topic, year-1, year)
	if strings.Contains(strings.ToLower(a.Topic), "election") {
		searchQuery = fmt.Sprintf("US %s %d %d latest news results", a.Topic, year-1, year)
	}

	results, err := s.Run(ctx, searchQuery, DefaultMaxResults)
	if err != nil {
		s.Logger.Error("current events search failed", "topic", a.Topic, "err", err)
		return tools.Fail(tools.Classify(err), err,
			fmt.Sprintf("I'm having trouble getting current information about %s. Please try again.", a.Topic))
	}
	results = tools.Truncate(results, currentEventsLimit, "...")
	s.Logger.Info("current events", "topic", a.Topic, "results", results)
	return tools.OK(results)
}

var factualPrefixes = []string{"what is", "who is", "how does", "why does", "when did", "where is"}

// casualReplies is checked in order; the first entry with a matching keyword wins.
var casualReplies = []struct {
	keywords []string
	reply    string
}{
	{[]string{"favorite"}, "That's such a fun question! While I don't have personal favorites, I love learning about what people enjoy. What's yours?"},
	{[]string{"dream", "wish", "hope"}, "Dreams and hopes are so wonderful! I hope all your dreams come true. What do you hope for?"},
	{[]string{"hobby"}, "Hobbies are amazing! They keep life interesting and fun. Do you have any hobbies you'd like to tell me about?"},
	{[]string{"joke", "funny"}, "I'd love to share a joke! Why don't scientists trust atoms? Because they make up everything! 😄 What do you think?"},
	{[]string{"color"}, "Colors are so vibrant and beautiful! I think all colors have their own special charm. What's your favorite color?"},
	{[]string{"music", "song"}, "Music is such a wonderful thing! It can express so many emotions and bring people together. What kind of music do you enjoy?"},
}

// GeneralQuestion is the answer_general_question handler.
func (s *Searcher) GeneralQuestion(ctx context.Context, a QuestionArgs) tools.Result {
	lower := strings.ToLower(a.Question)

	lead := "That's an interesting question!"
	if containsAny(lower, factualPrefixes) {
		lead = "Oh, what a great question!"
	} else {
		for _, c := range casualReplies {
			if containsAny(lower, c.keywords) {
				return tools.OK(c.reply)
			}
		}
	}

	results, err := s.Run(ctx, a.Question, DefaultMaxResults)
	if err != nil {
		s.Logger.Error("general question search failed", "question", a.Question, "err", err)
		return tools.Fail(tools.Classify(err), err,
			fmt.Sprintf("Oh dear, I had a little trouble with '%s', but I'd love to try again! Could you rephrase it for me?", a.Question))
	}
	return tools.OK(lead + " " + tools.Truncate(results, generalLimit, "..."))
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
