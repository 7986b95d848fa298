package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// Job operations. Reads retry transient failures; the three mutating
// commands are issued at most once per call and carry a fresh
// Idempotency-Key so the service can dedupe caller-level retries.

// ListJobs retrieves the jobs matching f. The filter is forwarded
// verbatim as query parameters.
func (c *Client) ListJobs(ctx context.Context, f JobFilter) ([]Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q := url.Values{}
	if f.Status != "" && f.Status != "all" {
		q.Set("status", f.Status)
	}
	if f.Source != "" && f.Source != "all" {
		q.Set("source", f.Source)
	}
	if f.Type != "" && f.Type != "all" {
		q.Set("type", f.Type)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(f.PerPage))
	}
	reqURL := fmt.Sprintf("%s/api/jobs", c.baseURL)
	if enc := q.Encode(); enc != "" {
		reqURL += "?" + enc
	}

	var lr listJobsResponse
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
			return statusError("list jobs", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(&lr)
	})
	if err != nil {
		return nil, err
	}
	return lr.Jobs, nil
}

// UpdateJobStatus requests a status transition and returns the updated
// job. The service owns transition legality: a rejected transition comes
// back as ErrConflict, an unknown id as ErrNotFound.
func (c *Client) UpdateJobStatus(ctx context.Context, id string, status JobStatus) (*Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateJobID(id); err != nil {
		return nil, err
	}
	if err := ValidateStatus(status); err != nil {
		return nil, err
	}
	body, err := json.Marshal(UpdateJobRequest{Status: status})
	if err != nil {
		return nil, err
	}
	reqURL := fmt.Sprintf("%s/api/jobs/%s", c.baseURL, id)
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
		return nil, statusError("update job", resp.StatusCode)
	}
	var job Job
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

// TriggerApply asks the service to run the automated apply flow for id.
// Whether the job lands in applied or failed is the service's decision;
// the outcome shows up on the next fetch. A 502 from the downstream
// application channel maps to ErrRemoteSubmission.
func (c *Client) TriggerApply(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateJobID(id); err != nil {
		return err
	}
	reqURL := fmt.Sprintf("%s/api/jobs/%s/apply", c.baseURL, id)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, nil)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return &TransientError{Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return nil
	case http.StatusBadGateway:
		return fmt.Errorf("trigger apply: %w", ErrRemoteSubmission)
	}
	return statusError("trigger apply", resp.StatusCode)
}

// DeleteJob removes a job remotely. The service may keep an archived
// record; from this client's view the job is simply gone from every
// subsequent fetch.
func (c *Client) DeleteJob(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateJobID(id); err != nil {
		return err
	}
	reqURL := fmt.Sprintf("%s/api/jobs/%s", c.baseURL, id)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, reqURL, nil)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return &TransientError{Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	}
	return statusError("delete job", resp.StatusCode)
}
