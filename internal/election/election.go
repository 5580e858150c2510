// Package election implements get_election_info: questions about future elections get a canned
// answer, everything else is answered from a search anchored on the right election year.
package election

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ironsheep/roku-tools/internal/tools"
)

const (
	prefix          = "Roger Boss. "
	historicalLimit = 300
	currentLimit    = 500
)

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// Searcher runs one web search. search.Searcher satisfies it.
type Searcher interface {
	Run(ctx context.Context, query string, maxResults int) (string, error)
}

// Responder answers election questions.
type Responder struct {
	Search Searcher
	Logger *slog.Logger
	Now    func() time.Time
}

// New returns a Responder using the system clock.
func New(search Searcher, logger *slog.Logger) *Responder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Responder{Search: search, Logger: logger, Now: time.Now}
}

// Args are the arguments of get_election_info.
type Args struct {
	Query string `json:"query" jsonschema:"The election-related question"`
}

// TargetYear returns the largest year between 1900 and 2099 mentioned in query.
func TargetYear(query string) (int, bool) {
	target, found := 0, false
	for _, m := range yearPattern.FindAllString(query, -1) {
		y, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if !found || y > target {
			target, found = y, true
		}
	}
	return target, found
}

// PresidentialYear returns the most recent presidential election year for year.
func PresidentialYear(year int) int {
	return year - year%4
}

// Handle is the get_election_info handler.
func (r *Responder) Handle(ctx context.Context, a Args) tools.Result {
	current := r.Now().Year()
	presidential := PresidentialYear(current)
	lower := strings.ToLower(a.Query)

	target, hasYear := TargetYear(a.Query)
	if !hasYear && strings.Contains(lower, "future") {
		target, hasYear = current+1, true
	}

	var query string
	limit := currentLimit
	switch {
	case hasYear && target > current:
		r.Logger.Info("election question about the future", "query", a.Query, "target", target)
		return tools.OK(fmt.Sprintf("%sThe %d elections haven't occurred yet as we're currently in %d. The most recent US elections were the %d presidential election in November. Would you like me to search for information about the %d election cycle?",
			prefix, target, current, presidential, presidential))
	case hasYear && target < current:
		query = fmt.Sprintf("US elections %d results presidential congressional", target)
		limit = historicalLimit
	case strings.Contains(lower, "president"):
		query = fmt.Sprintf("%d US presidential election results winner", presidential)
	case strings.Contains(lower, "congress"):
		query = fmt.Sprintf("%d US congressional midterm elections results", presidential)
	default:
		query = fmt.Sprintf("%d US election results %s winner outcome", presidential, a.Query)
	}

	results, err := r.Search.Run(ctx, query, 0)
	if err != nil {
		r.Logger.Error("election search failed", "query", a.Query, "err", err)
		return tools.Fail(tools.Classify(err), err,
			fmt.Sprintf("I'm having trouble getting election information about %s. Please try again.", a.Query))
	}
	results = tools.Truncate(results, limit, "...")
	r.Logger.Info("election info", "query", a.Query, "search", query, "results", results)
	return tools.OK(prefix + results)
}
