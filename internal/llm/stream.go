package llm

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
)

// eventEnvelope is the payload shape shared by streamed delta records and
// one-shot replies: {choices:[{delta:{content}}]} or {choices:[{message:{content}}]}.
type eventEnvelope struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (e *eventEnvelope) content() string {
	if len(e.Choices) == 0 {
		return ""
	}
	if c := e.Choices[0].Delta.Content; c != "" {
		return c
	}
	return e.Choices[0].Message.Content
}

const dataPrefix = "data: "

// doneSentinel terminates the stream.
const doneSentinel = "[DONE]"

// decodeEvents consumes a newline-delimited event stream and emits each
// record's content fragment in order. Comment lines (":" prefix) and blanks
// are ignored. A record that fails to parse is put back in the buffer and
// retried after the next read, which handles records split across network
// reads; records still unparsable when the stream ends are dropped in the
// final flush. Only read errors are returned.
func decodeEvents(r io.Reader, emit func(string) error) error {
	buf := make([]byte, 4096)
	var pending []byte

	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)

			stop, err := drainLines(&pending, emit)
			if err != nil {
				return err
			}
			if stop {
				return nil
			}
		}

		if readErr == io.EOF {
			return flushRemainder(pending, emit)
		}
		if readErr != nil {
			return readErr
		}
	}
}

// drainLines processes every complete line in pending. It reports stop=true
// once the done sentinel is seen. On a parse failure the line is re-buffered
// and draining pauses until more bytes arrive.
func drainLines(pending *[]byte, emit func(string) error) (bool, error) {
	for {
		idx := bytes.IndexByte(*pending, '\n')
		if idx < 0 {
			return false, nil
		}

		line := string((*pending)[:idx])
		*pending = (*pending)[idx+1:]

		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, ":") || strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, dataPrefix) {
			continue
		}

		payload := strings.TrimSpace(line[len(dataPrefix):])
		if payload == doneSentinel {
			return true, nil
		}

		var envelope eventEnvelope
		if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
			rebuffered := append([]byte(line+"\n"), *pending...)
			*pending = rebuffered
			return false, nil
		}

		if content := envelope.content(); content != "" {
			if err := emit(content); err != nil {
				return false, err
			}
		}
	}
}

// flushRemainder parses whatever is left after the stream ends; records that
// still do not parse are dropped.
func flushRemainder(pending []byte, emit func(string) error) error {
	if len(bytes.TrimSpace(pending)) == 0 {
		return nil
	}

	for _, raw := range strings.Split(string(pending), "\n") {
		raw = strings.TrimSuffix(raw, "\r")
		if raw == "" || strings.HasPrefix(raw, ":") || !strings.HasPrefix(raw, dataPrefix) {
			continue
		}
		payload := strings.TrimSpace(raw[len(dataPrefix):])
		if payload == doneSentinel {
			continue
		}

		var envelope eventEnvelope
		if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
			continue
		}
		if content := envelope.content(); content != "" {
			if err := emit(content); err != nil {
				return err
			}
		}
	}
	return nil
}
