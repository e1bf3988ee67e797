package v1

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Streamed replies go to the browser in the same shape the completion
// gateway uses, so the client-side parser handles both ends of the proxy.

type sseDelta struct {
	Content string `json:"content"`
}

type sseChoice struct {
	Delta sseDelta `json:"delta"`
}

type sseEvent struct {
	Choices []sseChoice `json:"choices"`
}

type sseWriter struct {
	w       gin.ResponseWriter
	flusher http.Flusher
	started bool
}

// newSSEWriter wraps the response for event streaming. Headers are not
// written until the first event, so early failures can still produce a
// JSON error response.
func newSSEWriter(c *gin.Context) (*sseWriter, bool) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "streaming unsupported"})
		return nil, false
	}
	return &sseWriter{w: c.Writer, flusher: flusher}, true
}

func (s *sseWriter) writeHeaders() {
	if s.started {
		return
	}
	s.started = true
	h := s.w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	s.w.WriteHeader(http.StatusOK)
}

// Chunk emits one content fragment as a data record.
func (s *sseWriter) Chunk(content string) error {
	s.writeHeaders()
	payload, err := json.Marshal(sseEvent{Choices: []sseChoice{{Delta: sseDelta{Content: content}}}})
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", payload); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// Done emits the terminal sentinel.
func (s *sseWriter) Done() {
	s.writeHeaders()
	fmt.Fprint(s.w, "data: [DONE]\n\n")
	s.flusher.Flush()
}

// Started reports whether any event has been written; once true the JSON
// error path is no longer available.
func (s *sseWriter) Started() bool {
	return s.started
}
