// Package llm talks to the OpenAI-compatible completion gateway that backs
// the chat coach, the streaming diet planner, and the trend summariser.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"bpcoach/internal/config"
)

var ErrUpstream = errors.New("completion gateway error")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is the surface the services need. Stream delivers content fragments
// in arrival order through onChunk; Complete returns the whole reply at once.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
	Stream(ctx context.Context, messages []Message, onChunk func(string) error) error
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream,omitempty"`
}

// GatewayClient calls the configured gateway over HTTP. Two resty clients
// because streamed responses must outlive the one-shot request timeout.
type GatewayClient struct {
	oneshot       *resty.Client
	streaming     *resty.Client
	url           string
	model         string
	streamTimeout time.Duration
	log           *zap.Logger
}

func NewGatewayClient(cfg config.CoachConfig, log *zap.Logger) *GatewayClient {
	oneshot := resty.New().
		SetTimeout(cfg.RequestTimeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(cfg.APIKey)

	streaming := resty.New().
		SetTimeout(cfg.StreamTimeout).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(cfg.APIKey)

	return &GatewayClient{
		oneshot:       oneshot,
		streaming:     streaming,
		url:           cfg.GatewayURL,
		model:         cfg.Model,
		streamTimeout: cfg.StreamTimeout,
		log:           log,
	}
}

// Complete issues a non-streaming completion and returns the reply text.
func (c *GatewayClient) Complete(ctx context.Context, messages []Message) (string, error) {
	var envelope eventEnvelope
	resp, err := c.oneshot.R().
		SetContext(ctx).
		SetBody(completionRequest{Model: c.model, Messages: messages}).
		SetResult(&envelope).
		Post(c.url)
	if err != nil {
		return "", fmt.Errorf("calling completion gateway: %w", err)
	}

	if resp.IsError() {
		c.log.Warn("completion gateway returned error status",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("body", resp.String()),
		)
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode())
	}

	return envelope.content(), nil
}

// Stream issues a streaming completion and feeds each extracted content
// fragment to onChunk in arrival order. A gateway that answers with a plain
// JSON body instead of an event stream yields the whole reply as one chunk.
// Individual malformed records never fail the stream; transport and HTTP
// errors do.
func (c *GatewayClient) Stream(ctx context.Context, messages []Message, onChunk func(string) error) error {
	resp, err := c.streaming.R().
		SetContext(ctx).
		SetBody(completionRequest{Model: c.model, Messages: messages, Stream: true}).
		SetDoNotParseResponse(true).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("calling completion gateway: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.IsError() {
		c.log.Warn("completion gateway returned error status",
			zap.Int("status_code", resp.StatusCode()),
		)
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode())
	}

	if strings.Contains(resp.Header().Get("Content-Type"), "application/json") {
		raw, err := io.ReadAll(body)
		if err != nil {
			return fmt.Errorf("reading gateway response: %w", err)
		}
		var envelope eventEnvelope
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return fmt.Errorf("decoding gateway response: %w", err)
		}
		if content := envelope.content(); content != "" {
			return onChunk(content)
		}
		return nil
	}

	return decodeEvents(body, onChunk)
}
