// Package tools defines the function-call surface exposed to the conversational agent.
//
// A [Tool] is a single named operation: it accepts JSON arguments decoded into a typed struct
// and returns a [Result] holding the text the agent will speak. Tools never return Go errors or
// panic across this boundary; every failure is folded into a categorized Result so that the
// conversation can always continue.
//
// # Names
//
// The set of tools is closed. Each one is identified by a [Name] constant:
//
//   - get_weather: current conditions for a city
//   - search_web, search_news, search_music, search_youtube: templated web searches
//   - get_current_events, answer_general_question: search-backed answers
//   - send_email: SMTP dispatch
//   - extract_pdf_text, extract_image_text: document text extraction
//   - get_current_datetime: time zone aware clock
//   - get_election_info: scripted election responder
//   - tell_short_story: canned stories
//
// # Registry
//
// A [Registry] maps names to tools. It is built once at startup and is read-only afterwards,
// so it is safe for concurrent use without locking.
package tools
