// ABOUTME: Chat call against POST /chat/
// ABOUTME: One message in, one reply out; no conversation context is sent

package api

import (
	"context"
	"fmt"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// Chat sends one message and returns the bot's reply. Sends pass a local
// rate limiter so a pasted burst doesn't hammer the backend.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", fmt.Errorf("message is required")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	var resp chatResponse
	if err := c.doJSON(ctx, "POST", "/chat/", chatRequest{Message: message}, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}
