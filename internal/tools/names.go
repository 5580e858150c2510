package tools

import (
	"errors"
	"fmt"
)

// Name identifies a tool on the wire.
type Name string

const (
	GetWeather            Name = "get_weather"
	SearchWeb             Name = "search_web"
	SearchNews            Name = "search_news"
	SearchMusic           Name = "search_music"
	SearchYouTube         Name = "search_youtube"
	GetCurrentEvents      Name = "get_current_events"
	AnswerGeneralQuestion Name = "answer_general_question"
	SendEmail             Name = "send_email"
	ExtractPDFText        Name = "extract_pdf_text"
	ExtractImageText      Name = "extract_image_text"
	GetCurrentDatetime    Name = "get_current_datetime"
	GetElectionInfo       Name = "get_election_info"
	TellShortStory        Name = "tell_short_story"
)

// Names lists every tool in catalog order.
var Names = []Name{
	GetWeather,
	SearchWeb,
	SendEmail,
	ExtractPDFText,
	ExtractImageText,
	GetCurrentDatetime,
	GetCurrentEvents,
	AnswerGeneralQuestion,
	GetElectionInfo,
	TellShortStory,
	SearchYouTube,
	SearchMusic,
	SearchNews,
}

// ErrUnknownTool is returned for a name outside the catalog.
var ErrUnknownTool = errors.New("unknown tool")

var knownNames = func() map[Name]struct{} {
	m := make(map[Name]struct{}, len(Names))
	for _, n := range Names {
		m[n] = struct{}{}
	}
	return m
}()

// ParseName converts a wire name into a Name.
func ParseName(s string) (Name, error) {
	n := Name(s)
	if _, ok := knownNames[n]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, s)
	}
	return n, nil
}

// Valid reports whether n is part of the catalog.
func (n Name) Valid() bool {
	_, ok := knownNames[n]
	return ok
}
