package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/ironsheep/roku-tools/internal/ocr"
)

const (
	maxArgsBytes = 1 << 20
	probeTimeout = 5 * time.Second
)

// ToolResponse is the body of POST /v1/tools/{name}. Error holds the failure kind and is
// empty on success.
type ToolResponse struct {
	Tool  string `json:"tool"`
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// Health is the body of GET /healthz.
type Health struct {
	Status  string    `json:"status"`
	Version string    `json:"version"`
	Tools   int       `json:"tools"`
	OCR     *ocr.Info `json:"ocr,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// NewHTTPHandler returns the HTTP routes for s. engine, when non-nil, is probed by /healthz.
func NewHTTPHandler(s *Server, engine ocr.Engine) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		h := Health{Status: "ok", Version: s.Version, Tools: len(s.reg.List())}
		if engine != nil {
			ctx, cancel := context.WithTimeout(req.Context(), probeTimeout)
			defer cancel()
			info := ocr.Probe(ctx, engine)
			h.OCR = &info
		}
		writeJSON(w, http.StatusOK, h)
	})

	r.Route("/v1/tools", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, s.ToolDefinitions())
		})
		r.Post("/{name}", s.handleHTTPCall)
	})

	r.Get("/ws", s.handleWebSocket)

	return r
}

func (s *Server) handleHTTPCall(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	args, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxArgsBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read arguments: "+err.Error())
		return
	}

	res, err := s.reg.Call(r.Context(), name, json.RawMessage(args))
	if err != nil {
		if isUnknownTool(err) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := ToolResponse{Tool: name, Text: res.Text}
	if res.Failed() {
		resp.Error = res.Kind.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleWebSocket speaks the JSON-RPC protocol with one request per text message.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	log := s.logger.With("remote", r.RemoteAddr)
	log.Info("websocket client connected")

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Info("websocket client disconnected")
			} else {
				log.Warn("websocket read failed", "err", err)
			}
			return
		}

		resp := s.HandleMessage(r.Context(), msg)
		if resp == nil {
			continue
		}
		if err := conn.WriteJSON(resp); err != nil {
			log.Warn("websocket write failed", "err", err)
			return
		}
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"elapsed", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
