package server

import (
	"context"
	"encoding/json"
	"image"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

type fakeOCR struct{}

func (fakeOCR) Recognize(context.Context, image.Image, string) (string, error) { return "", nil }

func (fakeOCR) Version(context.Context) (string, error) { return "tesseract 5.3.0", nil }

func newHTTPTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(NewHTTPHandler(newTestServer(t), fakeOCR{}))
	t.Cleanup(ts.Close)
	return ts
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}

func TestHTTP_Healthz(t *testing.T) {
	ts := newHTTPTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d", resp.StatusCode)
	}
	var h Health
	decodeBody(t, resp, &h)

	if h.Status != "ok" || h.Version != "1.2.3" || h.Tools != 2 {
		t.Errorf("health: %+v", h)
	}
	if h.OCR == nil || !h.OCR.Available || h.OCR.Version != "tesseract 5.3.0" {
		t.Errorf("ocr info: %+v", h.OCR)
	}
}

func TestHTTP_HealthzWithoutOCR(t *testing.T) {
	ts := httptest.NewServer(NewHTTPHandler(newTestServer(t), nil))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	var h Health
	decodeBody(t, resp, &h)
	if h.OCR != nil {
		t.Errorf("ocr should be omitted without an engine: %+v", h.OCR)
	}
}

func TestHTTP_ListTools(t *testing.T) {
	ts := newHTTPTestServer(t)

	resp, err := http.Get(ts.URL + "/v1/tools")
	if err != nil {
		t.Fatalf("GET /v1/tools: %v", err)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q", ct)
	}
	var list []Tool
	decodeBody(t, resp, &list)
	if len(list) != 2 || list[0].Name != "tell_short_story" {
		t.Errorf("tools: %+v", list)
	}
}

func TestHTTP_CallTool(t *testing.T) {
	ts := newHTTPTestServer(t)

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		want       ToolResponse
	}{
		{
			name:       "success",
			path:       "/v1/tools/tell_short_story",
			body:       `{"theme":"robots"}`,
			wantStatus: http.StatusOK,
			want:       ToolResponse{Tool: "tell_short_story", Text: "A story about robots"},
		},
		{
			name:       "empty body",
			path:       "/v1/tools/tell_short_story",
			body:       ``,
			wantStatus: http.StatusOK,
			want:       ToolResponse{Tool: "tell_short_story", Text: "A story about "},
		},
		{
			name:       "tool failure",
			path:       "/v1/tools/get_weather",
			body:       `{"city":"Oslo"}`,
			wantStatus: http.StatusOK,
			want:       ToolResponse{Tool: "get_weather", Text: "Sorry, the weather service timed out for Oslo.", Error: "timeout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+tt.path, "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("POST %s: %v", tt.path, err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status: got %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			var got ToolResponse
			decodeBody(t, resp, &got)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHTTP_CallUnknownTool(t *testing.T) {
	ts := newHTTPTestServer(t)

	resp, err := http.Post(ts.URL+"/v1/tools/launch_rocket", "application/json", strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", resp.StatusCode)
	}
	var body map[string]string
	decodeBody(t, resp, &body)
	if !strings.Contains(body["error"], "launch_rocket") {
		t.Errorf("error should name the tool: %v", body)
	}
}

func TestHTTP_RequestID(t *testing.T) {
	ts := newHTTPTestServer(t)

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d", resp.StatusCode)
	}
}

func TestWebSocket(t *testing.T) {
	ts := newHTTPTestServer(t)
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	send := func(msg string) {
		t.Helper()
		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	read := func() MCPResponse {
		t.Helper()
		var resp MCPResponse
		if err := conn.ReadJSON(&resp); err != nil {
			t.Fatalf("read: %v", err)
		}
		return resp
	}

	// The notification gets no reply, so the next message read answers the ping.
	send(`{"jsonrpc":"2.0","method":"notifications/initialized"}`)
	send(`{"jsonrpc":"2.0","id":"p","method":"ping"}`)
	if resp := read(); resp.ID != "p" || resp.Error != nil {
		t.Errorf("ping: %+v", resp)
	}

	send(`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"tell_short_story","arguments":{"theme":"owls"}}}`)
	resp := read()
	if resp.Error != nil {
		t.Fatalf("tools/call error: %+v", resp.Error)
	}
	raw, _ := json.Marshal(resp.Result)
	if !strings.Contains(string(raw), `"text":"A story about owls"`) || !strings.Contains(string(raw), `"isError":false`) {
		t.Errorf("tools/call result: %s", raw)
	}

	send(`{oops`)
	if resp := read(); resp.Error == nil || resp.Error.Code != -32700 {
		t.Errorf("parse error: %+v", resp)
	}
}
