package assessment

import "errors"

var (
	ErrIncompleteInput  = errors.New("questionnaire is incomplete")
	ErrInvalidSessionID = errors.New("session id must be a valid UUID")
)
