package story

import (
	"context"
	"strings"
	"testing"
)

func TestStory_KnownThemes(t *testing.T) {
	for _, theme := range Themes() {
		t.Run(theme, func(t *testing.T) {
			want := stories[theme]
			if want == "" {
				t.Fatalf("no canned story for %q", theme)
			}
			if got := Story(theme); got != want {
				t.Errorf("Story(%q) did not return the canned text", theme)
			}
			if got := Story(strings.ToUpper(theme)); got != want {
				t.Errorf("Story(%q) should match case-insensitively", strings.ToUpper(theme))
			}
		})
	}
}

func TestStory_GenericTemplate(t *testing.T) {
	for _, theme := range []string{"dinosaurs", "space pirates", "Adventure Time"} {
		got := Story(theme)
		if strings.Contains(got, "{theme}") {
			t.Errorf("Story(%q) left an unfilled slot", theme)
		}
		if n := strings.Count(got, theme); n != strings.Count(genericStory, "{theme}") {
			t.Errorf("Story(%q): theme appears %d times, want %d", theme, n, strings.Count(genericStory, "{theme}"))
		}
		if !strings.HasPrefix(got, "Oh, what a wonderful theme!") {
			t.Errorf("Story(%q) should use the generic template", theme)
		}
	}
}

func TestTell(t *testing.T) {
	tests := []struct {
		name       string
		theme      string
		wantPrefix string
	}{
		{"default theme", "", "Oh, I'd love to tell you a story! Here's a fun one about adventure: Once upon a time, in a magical forest"},
		{"known theme", "magic", "Oh, I'd love to tell you a story! Here's a fun one about magic: Deep in an enchanted forest"},
		{"generic theme", "robots", "Oh, I'd love to tell you a story! Here's a fun one about robots: Oh, what a wonderful theme!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Tell(context.Background(), Args{Theme: tt.theme})
			if res.Failed() {
				t.Fatalf("unexpected failure: %+v", res)
			}
			if !strings.HasPrefix(res.Text, tt.wantPrefix) {
				t.Errorf("got %q, want prefix %q", res.Text, tt.wantPrefix)
			}
		})
	}
}
