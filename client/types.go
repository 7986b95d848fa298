package client

import "time"

// ------------------------------
// Core domain types and payloads
// ------------------------------

// JobStatus is the lifecycle state of a tracked job.
type JobStatus string

const (
	StatusNew         JobStatus = "new"
	StatusInProgress  JobStatus = "in_progress"
	StatusApplied     JobStatus = "applied"
	StatusNeedsReview JobStatus = "needs_review"
	StatusFailed      JobStatus = "failed"
)

// Known reports whether s is one of the five defined states.
func (s JobStatus) Known() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusApplied, StatusNeedsReview, StatusFailed:
		return true
	}
	return false
}

// Job is a discovered opportunity tracked through the lifecycle. The
// remote service creates jobs; the client only reads them and issues
// explicit status-transition commands.
type Job struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	Location  string    `json:"location,omitempty"`
	Source    string    `json:"source"`           // open set: linkedin, jobright, manual, ...
	Type      string    `json:"application_type"` // open set: workday, greenhouse, ...
	Status    JobStatus `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JobFilter narrows ListJobs. Zero values mean "all". The filter is
// passed to the service verbatim; the SDK never filters locally, so the
// displayed set can't diverge from the server's notion of "matching".
type JobFilter struct {
	Status  string
	Source  string
	Type    string
	Search  string
	PerPage int
}

// listJobsResponse mirrors the backend list shape.
type listJobsResponse struct {
	Jobs  []Job `json:"jobs"`
	Count int   `json:"count"`
}

// UpdateJobRequest is the PATCH /api/jobs/{id} payload.
type UpdateJobRequest struct {
	Status JobStatus `json:"status"`
}

// Message is an outreach email. Read-only from this client's side.
type Message struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Status    string    `json:"status"` // draft|scheduled|sent|failed
	CreatedAt time.Time `json:"created_at"`
}

// EmailFilter narrows ListEmails. Zero values mean "all".
type EmailFilter struct {
	Status string
	Limit  int
}

// listEmailsResponse mirrors the backend list shape.
type listEmailsResponse struct {
	Emails []Message `json:"emails"`
	Count  int       `json:"count"`
}

// Profile is the user identity snapshot.
type Profile struct {
	FullName  string `json:"full_name"`
	FirstName string `json:"first_name"`
	Email     string `json:"email,omitempty"`
	Agent     string `json:"valorant_agent"`
	AgentName string `json:"agent_name"`
}

// ProfileUpdate is a partial PATCH /api/profile payload; nil fields are
// left untouched by the service.
type ProfileUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	Agent    *string `json:"valorant_agent,omitempty"`
}

// Gamification is the server-computed progression aggregate. The
// progression package derives the same shape offline from raw activity.
type Gamification struct {
	TotalXP         int    `json:"total_xp"`
	Level           int    `json:"level"`
	LevelTitle      string `json:"level_title"`
	XPInLevel       int    `json:"current_xp_in_level"`
	XPForNextLevel  int    `json:"xp_for_next_level"`
	RankIcon        string `json:"rank_icon"`
	Streak          int    `json:"streak"`
	ActivitiesToday int    `json:"activities_today"`
}
