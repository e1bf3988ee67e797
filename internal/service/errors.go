package service

import (
	"errors"
	"strings"
)

// ErrChatBusy rejects a send while a chat request is already in flight for
// the session. Only one streamed reply may be open at a time.
var ErrChatBusy = errors.New("a chat request is already in flight for this session")

var ErrEmptyMessage = errors.New("message must not be empty")

type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}
