package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

type chatRequest struct {
	Query string `json:"query"`
}

func decodeQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return "", false
	}
	if strings.TrimSpace(req.Query) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query field is required"})
		return "", false
	}
	return req.Query, true
}

// handleStream replies with SSE framing: one data line per produced fragment,
// a data line with an error field on failure, and a terminal done line.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	query, ok := decodeQuery(w, r)
	if !ok {
		return
	}
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("X-Accel-Buffering", "no")
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Credentials", "true")

	flusher, _ := w.(http.Flusher)
	writeEvent := func(payload any) {
		bs, err := json.Marshal(payload)
		if err != nil {
			slog.Error(fmt.Sprintf("%s - sse encode: %v", logPrefix, err))
			return
		}
		fmt.Fprintf(w, "data: %s\n\n", bs)
		if flusher != nil {
			flusher.Flush()
		}
	}

	for fragment := range s.agent.Invoke(r.Context(), query) {
		if fragment.Err != nil {
			slog.Error(fmt.Sprintf("%s - streaming: %v", logPrefix, fragment.Err))
			writeEvent(map[string]string{"error": fmt.Sprintf("Streaming error: %v", fragment.Err)})
			break
		}
		writeEvent(map[string]string{"chunk": fragment.Text})
	}
	writeEvent(map[string]bool{"done": true})
}

// handleChat collects the full fragment stream into one JSON response, for
// clients that cannot consume SSE.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	query, ok := decodeQuery(w, r)
	if !ok {
		return
	}
	var sb strings.Builder
	for fragment := range s.agent.Invoke(r.Context(), query) {
		if fragment.Err != nil {
			slog.Error(fmt.Sprintf("%s - chat: %v", logPrefix, fragment.Err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": fragment.Err.Error()})
			return
		}
		sb.WriteString(fragment.Text)
	}
	writeJSON(w, http.StatusOK, map[string]string{"response": sb.String()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.agent == nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"status": "unhealthy", "error": "agent not configured"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "agent": "Master Agent"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		slog.Error(fmt.Sprintf("%s - response encode: %v", logPrefix, err))
	}
}
