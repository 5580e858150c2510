package gemini

import (
	"strings"
	"testing"

	"github.com/ironsheep/roku-tools/internal/tools"
)

func TestInstruction(t *testing.T) {
	for _, want := range []string{
		HelpReply,
		"When greeted, reply: \"Hello there! I'm Roku, your cheerful AI assistant! What can I help you with today?\"",
		"As you wish. Current weather in London:",
		"Roger Boss. [concise search results]",
		"As you wish. Today is Monday, January 15, 2024.",
		"Who won the 2024 elections?",
		"Who won the 2025 elections in US?",
	} {
		if !strings.Contains(Instruction, want) {
			t.Errorf("instruction lacks %q", want)
		}
	}

	for _, name := range tools.Names {
		if !strings.Contains(Instruction, string(name)) {
			t.Errorf("instruction does not mention %s", name)
		}
	}
}
