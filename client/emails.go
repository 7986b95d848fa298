package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListEmails retrieves outreach emails. The endpoint is read-only; this
// client never issues email transitions.
func (c *Client) ListEmails(ctx context.Context, f EmailFilter) ([]Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateEmailStatus(f.Status); err != nil {
		return nil, err
	}
	q := url.Values{}
	if f.Status != "" && f.Status != "all" {
		q.Set("status", f.Status)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	reqURL := fmt.Sprintf("%s/api/emails", c.baseURL)
	if enc := q.Encode(); enc != "" {
		reqURL += "?" + enc
	}

	var lr listEmailsResponse
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
			return statusError("list emails", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(&lr)
	})
	if err != nil {
		return nil, err
	}
	return lr.Emails, nil
}
