package tracker

import (
	"net/url"
	"strconv"
)

// Status is the workflow state of an issue.
type Status string

// Workflow states, in lifecycle order.
const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in-progress"
	StatusClosed     Status = "closed"
)

// Statuses lists all workflow states in lifecycle order.
var Statuses = []Status{StatusOpen, StatusInProgress, StatusClosed}

// Priority is the urgency level of an issue.
type Priority string

// Priority levels, lowest first. The set is defined by the backend.
const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Priorities lists all priority levels, lowest first.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// Issue is a tracked work item. Timestamps are kept as the raw RFC 3339
// strings the backend returns; formatting happens at render time.
type Issue struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Status      Status   `json:"status"`
	Priority    Priority `json:"priority"`
	Assignee    string   `json:"assignee,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// CreateRequest is the payload for creating an issue. Optional fields are
// pointers so that blanks serialize as JSON null, matching the backend's
// models.
type CreateRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Status      Status   `json:"status"`
	Priority    Priority `json:"priority"`
	Assignee    *string  `json:"assignee"`
}

// UpdateRequest is a partial update; only non-nil fields are sent.
type UpdateRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Status      *Status   `json:"status,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	Assignee    *string   `json:"assignee,omitempty"`
}

// ListOptions configures a list request. Zero-valued filters are omitted
// from the query string.
type ListOptions struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string

	Search   string
	Status   Status
	Priority Priority
	Assignee string
}

// query builds the URL query parameters for a list request.
func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(o.PageSize))
	}
	if o.SortBy != "" {
		q.Set("sort_by", o.SortBy)
	}
	if o.SortOrder != "" {
		q.Set("sort_order", o.SortOrder)
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Status != "" {
		q.Set("status", string(o.Status))
	}
	if o.Priority != "" {
		q.Set("priority", string(o.Priority))
	}
	if o.Assignee != "" {
		q.Set("assignee", o.Assignee)
	}
	return q
}

// Pagination is the paging envelope returned by the list endpoint.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

// ListResult is the response from the list endpoint.
type ListResult struct {
	Issues     []Issue    `json:"issues"`
	Pagination Pagination `json:"pagination"`
}

// Health is the response from the health endpoint.
type Health struct {
	Status      string `json:"status"`
	TotalIssues int    `json:"total_issues"`
}

// Nullable returns a pointer to s, or nil if s is empty. Used to build
// create payloads where blank optional fields must serialize as null.
func Nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
