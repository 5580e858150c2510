package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadArguments(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		want    string
		wantErr bool
	}{
		{"none", "", nil, "", false},
		{"inline", "", []string{`{"city":"Oslo"}`}, `{"city":"Oslo"}`, false},
		{"stdin", `{"theme":"space"}`, []string{"-"}, `{"theme":"space"}`, false},
		{"blank", "", []string{"  "}, "  ", false},
		{"invalid", "", []string{`{city:Oslo}`}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readArguments(strings.NewReader(tt.stdin), tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error: got %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	SetBuildInfo("1.0.0", "2026-01-01", "abc123")
	defer SetBuildInfo("dev", "unknown", "unknown")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	if err := Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	for _, want := range []string{"roku-tools 1.0.0", "Build time: 2026-01-01", "Git commit: abc123", "Tools: 13"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output lacks %q:\n%s", want, out.String())
		}
	}
}
