package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/crewmart/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Millisecond * 500
)

// Message is the body accepted by the chat gateway.
type Message struct {
	Identity int64  `json:"identity"`
	Text     string `json:"text"`
}

type GatewayClient struct {
	url           string
	client        clients.HTTPClientI
	retryInterval time.Duration
}

func NewGatewayClient(address string, client clients.HTTPClientI) *GatewayClient {
	return &GatewayClient{
		url:           address + "/api/messages",
		client:        client,
		retryInterval: retryInterval,
	}
}

// Send delivers one message. Transport failures and 5xx answers are retried,
// any other non-2xx status is final.
func (c *GatewayClient) Send(ctx context.Context, identity int64, text string) error {
	body, err := json.Marshal(Message{Identity: identity, Text: text})
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}
	headers := http.Header{"Content-Type": []string{"application/json"}}

	var statusCode int
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		statusCode, _, err = c.client.Post(ctx, c.url, headers.Clone(), body)
		switch {
		case err != nil:
			zap.L().Warn("Gateway unreachable, retrying", zap.Int64("identity", identity), zap.Int("attempt", attempt), zap.Error(err))
		case statusCode >= http.StatusInternalServerError || statusCode == http.StatusTooManyRequests:
			zap.L().Warn("Gateway refused message, retrying", zap.Int64("identity", identity), zap.Int("status", statusCode), zap.Int("attempt", attempt))
		case statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices:
			return nil
		default:
			return fmt.Errorf("gateway rejected message for %d with status %d", identity, statusCode)
		}
		if attempt < maxRetries {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.retryInterval * time.Duration(attempt)):
			}
		}
	}
	if err != nil {
		return fmt.Errorf("failed to deliver message to %d after %d retries: %w", identity, maxRetries, err)
	}
	return fmt.Errorf("failed to deliver message to %d after %d retries: status %d", identity, maxRetries, statusCode)
}
