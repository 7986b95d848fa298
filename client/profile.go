package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// GetProfile retrieves the user identity snapshot.
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	reqURL := fmt.Sprintf("%s/api/profile", c.baseURL)

	var p Profile
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
			return statusError("get profile", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(&p)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile patches the profile and returns the updated snapshot.
func (c *Client) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(upd)
	if err != nil {
		return nil, err
	}
	reqURL := fmt.Sprintf("%s/api/profile", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPatch, reqURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &TransientError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("update profile", resp.StatusCode)
	}
	var p Profile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SetAgent sets the cosmetic persona. The command is idempotent: setting
// the same agent twice is a no-op server-side.
func (c *Client) SetAgent(ctx context.Context, agent string) (*Profile, error) {
	if err := ValidateAgent(agent); err != nil {
		return nil, err
	}
	return c.UpdateProfile(ctx, ProfileUpdate{Agent: &agent})
}
