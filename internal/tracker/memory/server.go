// Package memory is an in-memory implementation of the issue tracker REST
// contract. It backs the `issuedeck demo` subcommand and the client tests.
package memory

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pmartin/issuedeck/internal/tracker"
)

// Server holds the issue store and implements the REST endpoints.
type Server struct {
	mu     sync.Mutex
	issues []tracker.Issue
	now    func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// NewServer creates an empty in-memory tracker backend.
func NewServer(opts ...Option) *Server {
	s := &Server{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add inserts an issue directly into the store, filling in id and
// timestamps. Returns the stored issue.
func (s *Server) Add(issue tracker.Issue) tracker.Issue {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.now().UTC().Format(time.RFC3339)
	if issue.ID == "" {
		issue.ID = uuid.NewString()
	}
	if issue.Status == "" {
		issue.Status = tracker.StatusOpen
	}
	if issue.Priority == "" {
		issue.Priority = tracker.PriorityMedium
	}
	if issue.CreatedAt == "" {
		issue.CreatedAt = ts
	}
	if issue.UpdatedAt == "" {
		issue.UpdatedAt = ts
	}
	s.issues = append(s.issues, issue)
	return issue
}

// Handler returns the HTTP handler for the tracker API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /issues", s.handleList)
	mux.HandleFunc("POST /issues", s.handleCreate)
	mux.HandleFunc("GET /issues/{id}", s.handleGet)
	mux.HandleFunc("PUT /issues/{id}", s.handleUpdate)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	total := len(s.issues)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":       "ok",
		"timestamp":    s.now().UTC().Format(time.RFC3339),
		"total_issues": total,
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	s.mu.Lock()
	filtered := make([]tracker.Issue, len(s.issues))
	copy(filtered, s.issues)
	s.mu.Unlock()

	if search := strings.ToLower(q.Get("search")); search != "" {
		var kept []tracker.Issue
		for _, issue := range filtered {
			if strings.Contains(strings.ToLower(issue.Title), search) ||
				strings.Contains(strings.ToLower(issue.Description), search) ||
				strings.Contains(strings.ToLower(issue.Assignee), search) {
				kept = append(kept, issue)
			}
		}
		filtered = kept
	}
	if status := q.Get("status"); status != "" {
		var kept []tracker.Issue
		for _, issue := range filtered {
			if string(issue.Status) == status {
				kept = append(kept, issue)
			}
		}
		filtered = kept
	}
	if priority := q.Get("priority"); priority != "" {
		var kept []tracker.Issue
		for _, issue := range filtered {
			if string(issue.Priority) == priority {
				kept = append(kept, issue)
			}
		}
		filtered = kept
	}
	if assignee := strings.ToLower(q.Get("assignee")); assignee != "" {
		var kept []tracker.Issue
		for _, issue := range filtered {
			if issue.Assignee != "" && strings.Contains(strings.ToLower(issue.Assignee), assignee) {
				kept = append(kept, issue)
			}
		}
		filtered = kept
	}

	sortIssues(filtered, q.Get("sort_by"), q.Get("sort_order") == "desc")

	page := intParam(q.Get("page"), 1)
	if page < 1 {
		page = 1
	}
	pageSize := intParam(q.Get("page_size"), 10)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > 100 {
		pageSize = 100
	}

	total := len(filtered)
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	pageIssues := filtered[start:end]
	if pageIssues == nil {
		pageIssues = []tracker.Issue{}
	}

	writeJSON(w, http.StatusOK, tracker.ListResult{
		Issues: pageIssues,
		Pagination: tracker.Pagination{
			Page:       page,
			PageSize:   pageSize,
			TotalCount: total,
			TotalPages: (total + pageSize - 1) / pageSize,
		},
	})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, issue := range s.issues {
		if issue.ID == id {
			writeJSON(w, http.StatusOK, issue)
			return
		}
	}
	writeNotFound(w, id)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req tracker.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusUnprocessableEntity, "title is required")
		return
	}
	if req.Status != "" && !validStatus(req.Status) {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("invalid status: %s", req.Status))
		return
	}
	if req.Priority != "" && !validPriority(req.Priority) {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("invalid priority: %s", req.Priority))
		return
	}

	issue := tracker.Issue{
		Title:    req.Title,
		Status:   req.Status,
		Priority: req.Priority,
	}
	if req.Description != nil {
		issue.Description = *req.Description
	}
	if req.Assignee != nil {
		issue.Assignee = *req.Assignee
	}

	created := s.Add(issue)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req tracker.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if req.Status != nil && !validStatus(*req.Status) {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("invalid status: %s", *req.Status))
		return
	}
	if req.Priority != nil && !validPriority(*req.Priority) {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("invalid priority: %s", *req.Priority))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.issues {
		if s.issues[i].ID != id {
			continue
		}
		issue := &s.issues[i]
		if req.Title != nil {
			issue.Title = *req.Title
		}
		if req.Description != nil {
			issue.Description = *req.Description
		}
		if req.Status != nil {
			issue.Status = *req.Status
		}
		if req.Priority != nil {
			issue.Priority = *req.Priority
		}
		if req.Assignee != nil {
			issue.Assignee = *req.Assignee
		}
		issue.UpdatedAt = s.now().UTC().Format(time.RFC3339)
		writeJSON(w, http.StatusOK, *issue)
		return
	}
	writeNotFound(w, id)
}

// validStatus reports whether s is one of the accepted status values.
// Out-of-enum writes are rejected with 422 rather than stored verbatim.
func validStatus(s tracker.Status) bool {
	_, ok := statusRank[s]
	return ok
}

func validPriority(p tracker.Priority) bool {
	_, ok := priorityRank[p]
	return ok
}

// statusRank orders statuses by lifecycle for sorting.
var statusRank = map[tracker.Status]int{
	tracker.StatusOpen:       1,
	tracker.StatusInProgress: 2,
	tracker.StatusClosed:     3,
}

// priorityRank orders priorities lowest to highest for sorting.
var priorityRank = map[tracker.Priority]int{
	tracker.PriorityLow:      1,
	tracker.PriorityMedium:   2,
	tracker.PriorityHigh:     3,
	tracker.PriorityCritical: 4,
}

// sortIssues sorts in place by the given field. Unknown fields fall back to
// updated_at, matching the backend's default.
func sortIssues(issues []tracker.Issue, sortBy string, desc bool) {
	var less func(a, b tracker.Issue) bool
	switch sortBy {
	case "title":
		less = func(a, b tracker.Issue) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case "status":
		less = func(a, b tracker.Issue) bool {
			return statusRank[a.Status] < statusRank[b.Status]
		}
	case "priority":
		less = func(a, b tracker.Issue) bool {
			return priorityRank[a.Priority] < priorityRank[b.Priority]
		}
	case "assignee":
		less = func(a, b tracker.Issue) bool {
			return a.Assignee < b.Assignee
		}
	case "created_at":
		less = func(a, b tracker.Issue) bool {
			return a.CreatedAt < b.CreatedAt
		}
	default:
		less = func(a, b tracker.Issue) bool {
			return a.UpdatedAt < b.UpdatedAt
		}
	}

	sort.SliceStable(issues, func(i, j int) bool {
		if desc {
			return less(issues[j], issues[i])
		}
		return less(issues[i], issues[j])
	})
}

func intParam(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeNotFound(w http.ResponseWriter, id string) {
	writeJSON(w, http.StatusNotFound, map[string]interface{}{
		"detail": map[string]string{
			"error":   "Issue not found",
			"message": fmt.Sprintf("No issue exists with ID: %s", id),
		},
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}
