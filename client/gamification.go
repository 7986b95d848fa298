package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetGamification retrieves the server-computed progression aggregate.
func (c *Client) GetGamification(ctx context.Context) (*Gamification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	reqURL := fmt.Sprintf("%s/api/gamification", c.baseURL)

	var g Gamification
	err := c.retry.run(ctx, func() error {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return err
		}
		resp, err := c.http.Do(httpReq)
		if err != nil {
			return &TransientError{Err: err}
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return statusError("get gamification", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(&g)
	})
	if err != nil {
		return nil, err
	}
	return &g, nil
}
