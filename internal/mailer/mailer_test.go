package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/textproto"
	"strings"
	"testing"

	"github.com/wneessen/go-mail"

	"github.com/ironsheep/roku-tools/internal/tools"
)

type fakeSender struct {
	err  error
	sent []*mail.Msg
}

func (f *fakeSender) Send(_ context.Context, msg *mail.Msg) error {
	f.sent = append(f.sent, msg)
	return f.err
}

var sample = Args{
	ToEmail: "friend@example.com",
	Subject: "Dinner",
	Message: "See you at <8>\nBring cake",
	CCEmail: "other@example.com",
}

func TestHandle_MissingCredentials(t *testing.T) {
	tests := []struct{ account, password string }{
		{"", ""},
		{"me@example.com", ""},
		{"", "secret"},
	}
	for _, tt := range tests {
		s := &fakeSender{}
		res := New(tt.account, tt.password, "smtp.example.com", 587, s, nil).Handle(context.Background(), sample)
		if res.Kind != tools.KindConfig || !errors.Is(res.Err, ErrCredentialsMissing) {
			t.Errorf("account=%q password set=%v: got %+v", tt.account, tt.password != "", res)
		}
		if res.Text != "Email sending failed: Gmail credentials not configured." {
			t.Errorf("got %q", res.Text)
		}
		if len(s.sent) != 0 {
			t.Error("no SMTP attempt should be made without credentials")
		}
	}
}

func TestHandle_Success(t *testing.T) {
	s := &fakeSender{}
	res := New("me@example.com", "secret", "smtp.example.com", 587, s, nil).Handle(context.Background(), sample)
	if res.Failed() {
		t.Fatalf("unexpected failure: %+v", res)
	}
	if res.Text != "Email sent successfully to friend@example.com" {
		t.Errorf("got %q", res.Text)
	}
	if len(s.sent) != 1 {
		t.Fatalf("sent %d messages", len(s.sent))
	}

	msg := s.sent[0]
	if got := msg.GetFromString(); len(got) != 1 || !strings.Contains(got[0], "me@example.com") {
		t.Errorf("from: %v", got)
	}
	if got := msg.GetToString(); len(got) != 1 || !strings.Contains(got[0], "friend@example.com") {
		t.Errorf("to: %v", got)
	}
	if got := msg.GetCcString(); len(got) != 1 || !strings.Contains(got[0], "other@example.com") {
		t.Errorf("cc: %v", got)
	}
	if got := msg.GetGenHeader(mail.HeaderSubject); len(got) != 1 || got[0] != "Dinner" {
		t.Errorf("subject: %v", got)
	}
}

func TestHandle_NoCC(t *testing.T) {
	s := &fakeSender{}
	a := sample
	a.CCEmail = ""
	New("me@example.com", "secret", "", 0, s, nil).Handle(context.Background(), a)
	if len(s.sent) != 1 {
		t.Fatalf("sent %d messages", len(s.sent))
	}
	if got := s.sent[0].GetCcString(); len(got) != 0 {
		t.Errorf("cc should be empty, got %v", got)
	}
}

func TestHandle_SendErrors(t *testing.T) {
	authErr := fmt.Errorf("dial failed: %w",
		fmt.Errorf("SMTP AUTH failed: %w", &textproto.Error{Code: 535, Msg: "5.7.8 Username and Password not accepted"}))

	tests := []struct {
		name     string
		err      error
		wantText string
		wantKind tools.Kind
	}{
		{
			name:     "auth",
			err:      authErr,
			wantText: "Email sending failed: Authentication error. Please check your Gmail credentials.",
			wantKind: tools.KindConfig,
		},
		{
			name:     "other smtp",
			err:      &textproto.Error{Code: 550, Msg: "mailbox unavailable"},
			wantText: "Email sending failed: SMTP error - 550 mailbox unavailable",
			wantKind: tools.KindNetwork,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &fakeSender{err: tt.err}
			res := New("me@example.com", "secret", "", 0, s, nil).Handle(context.Background(), sample)
			if res.Text != tt.wantText {
				t.Errorf("got %q, want %q", res.Text, tt.wantText)
			}
			if res.Kind != tt.wantKind {
				t.Errorf("kind: got %v, want %v", res.Kind, tt.wantKind)
			}
			if !errors.Is(res.Err, tt.err) {
				t.Errorf("Err should wrap the send error")
			}
		})
	}
}

func TestHandle_InvalidAddress(t *testing.T) {
	s := &fakeSender{}
	a := sample
	a.ToEmail = "not an address"
	res := New("me@example.com", "secret", "", 0, s, nil).Handle(context.Background(), a)
	if res.Kind != tools.KindInternal {
		t.Errorf("kind: got %v", res.Kind)
	}
	if !strings.HasPrefix(res.Text, "An error occurred while sending email: ") {
		t.Errorf("got %q", res.Text)
	}
	if len(s.sent) != 0 {
		t.Error("an invalid message must not be sent")
	}
}

func TestCompose_Alternative(t *testing.T) {
	msg, err := Compose("me@example.com", sample)
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}
	raw := buf.String()
	for _, want := range []string{"multipart/alternative", "text/plain", "text/html"} {
		if !strings.Contains(raw, want) {
			t.Errorf("message should contain %q", want)
		}
	}
}

func TestHTMLBody(t *testing.T) {
	got := htmlBody("a < b\nc & d")
	want := "<p>a &lt; b<br>\nc &amp; d</p>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{&textproto.Error{Code: 535, Msg: "bad credentials"}, true},
		{fmt.Errorf("wrapped: %w", &textproto.Error{Code: 534, Msg: "web login required"}), true},
		{errors.New("SMTP AUTH failed: EOF"), true},
		{&textproto.Error{Code: 421, Msg: "try later"}, false},
		{errors.New("connection refused"), false},
	}
	for _, tt := range tests {
		if got := IsAuthError(tt.err); got != tt.want {
			t.Errorf("IsAuthError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
