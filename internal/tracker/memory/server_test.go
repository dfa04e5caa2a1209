package memory

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pmartin/issuedeck/internal/tracker"
)

// newTestBackend starts the in-memory backend and returns a client against
// it, plus the server for seeding.
func newTestBackend(t *testing.T) (*tracker.Client, *Server) {
	t.Helper()
	tick := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	srv := NewServer(WithClock(func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return tracker.NewClient(ts.URL), srv
}

func seedIssues(srv *Server) {
	srv.Add(tracker.Issue{Title: "Fix login page", Description: "Auth fails", Status: tracker.StatusOpen, Priority: tracker.PriorityHigh, Assignee: "ana@example.com"})
	srv.Add(tracker.Issue{Title: "Update dashboard", Status: tracker.StatusInProgress, Priority: tracker.PriorityMedium})
	srv.Add(tracker.Issue{Title: "Add search", Description: "Full-text search", Status: tracker.StatusClosed, Priority: tracker.PriorityLow, Assignee: "bob@example.com"})
}

func TestHealthReportsTotal(t *testing.T) {
	c, srv := newTestBackend(t)
	seedIssues(srv)

	h, err := c.CheckHealth(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Status != "ok" {
		t.Errorf("expected ok, got %s", h.Status)
	}
	if h.TotalIssues != 3 {
		t.Errorf("expected 3 issues, got %d", h.TotalIssues)
	}
}

func TestListDefaultSortIsUpdatedAt(t *testing.T) {
	c, srv := newTestBackend(t)
	seedIssues(srv)

	result, err := c.ListIssues(context.Background(), tracker.ListOptions{SortOrder: "desc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Issues) != 3 {
		t.Fatalf("expected 3 issues, got %d", len(result.Issues))
	}
	// Most recently updated first
	if result.Issues[0].Title != "Add search" {
		t.Errorf("expected newest first, got %q", result.Issues[0].Title)
	}
}

func TestListSearchSpansFields(t *testing.T) {
	c, srv := newTestBackend(t)
	seedIssues(srv)

	// Matches description of "Fix login page"
	result, err := c.ListIssues(context.Background(), tracker.ListOptions{Search: "auth"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Issues) != 1 || result.Issues[0].Title != "Fix login page" {
		t.Fatalf("expected description match, got %v", result.Issues)
	}

	// Matches assignee
	result, err = c.ListIssues(context.Background(), tracker.ListOptions{Search: "bob"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Issues) != 1 || result.Issues[0].Title != "Add search" {
		t.Fatalf("expected assignee match, got %v", result.Issues)
	}
}

func TestListStatusAndPriorityFilters(t *testing.T) {
	c, srv := newTestBackend(t)
	seedIssues(srv)

	result, err := c.ListIssues(context.Background(), tracker.ListOptions{Status: tracker.StatusInProgress})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Issues) != 1 || result.Issues[0].Title != "Update dashboard" {
		t.Fatalf("unexpected status filter result: %v", result.Issues)
	}

	result, err = c.ListIssues(context.Background(), tracker.ListOptions{Priority: tracker.PriorityHigh})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Issues) != 1 || result.Issues[0].Title != "Fix login page" {
		t.Fatalf("unexpected priority filter result: %v", result.Issues)
	}
}

func TestListPrioritySortUsesRankOrder(t *testing.T) {
	c, srv := newTestBackend(t)
	seedIssues(srv)

	result, err := c.ListIssues(context.Background(), tracker.ListOptions{SortBy: "priority", SortOrder: "desc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := make([]tracker.Priority, len(result.Issues))
	for i, issue := range result.Issues {
		got[i] = issue.Priority
	}
	want := []tracker.Priority{tracker.PriorityHigh, tracker.PriorityMedium, tracker.PriorityLow}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected rank order %v, got %v", want, got)
		}
	}
}

func TestListPagination(t *testing.T) {
	c, srv := newTestBackend(t)
	for i := 0; i < 7; i++ {
		srv.Add(tracker.Issue{Title: "Task", Status: tracker.StatusOpen, Priority: tracker.PriorityLow})
	}

	result, err := c.ListIssues(context.Background(), tracker.ListOptions{Page: 2, PageSize: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Issues) != 3 {
		t.Errorf("expected 3 issues on page 2, got %d", len(result.Issues))
	}
	if result.Pagination.TotalCount != 7 {
		t.Errorf("expected totalCount 7, got %d", result.Pagination.TotalCount)
	}
	if result.Pagination.TotalPages != 3 {
		t.Errorf("expected totalPages 3, got %d", result.Pagination.TotalPages)
	}

	result, err = c.ListIssues(context.Background(), tracker.ListOptions{Page: 3, PageSize: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Issues) != 1 {
		t.Errorf("expected 1 issue on last page, got %d", len(result.Issues))
	}
}

func TestGetAndNotFound(t *testing.T) {
	c, srv := newTestBackend(t)
	stored := srv.Add(tracker.Issue{Title: "Fix it", Status: tracker.StatusOpen, Priority: tracker.PriorityMedium})

	issue, err := c.GetIssue(context.Background(), stored.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if issue.Title != "Fix it" {
		t.Errorf("unexpected title: %q", issue.Title)
	}

	_, err = c.GetIssue(context.Background(), "missing-id")
	if !tracker.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestCreateGeneratesIDAndTimestamps(t *testing.T) {
	c, _ := newTestBackend(t)

	issue, err := c.CreateIssue(context.Background(), tracker.CreateRequest{
		Title:    "New issue",
		Priority: tracker.PriorityCritical,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if issue.ID == "" {
		t.Error("expected generated id")
	}
	if issue.CreatedAt == "" || issue.UpdatedAt == "" {
		t.Error("expected timestamps to be set")
	}
	if issue.Status != tracker.StatusOpen {
		t.Errorf("expected default status open, got %s", issue.Status)
	}
}

func TestCreateRejectsUnknownEnumValues(t *testing.T) {
	c, _ := newTestBackend(t)

	_, err := c.CreateIssue(context.Background(), tracker.CreateRequest{
		Title:  "Bad status",
		Status: tracker.Status("archived"),
	})
	var terr *tracker.Error
	if !errors.As(err, &terr) || terr.StatusCode != 422 {
		t.Fatalf("expected 422 for unknown status, got %v", err)
	}
	if !strings.Contains(terr.Message, "invalid status") {
		t.Errorf("unexpected detail: %q", terr.Message)
	}

	_, err = c.CreateIssue(context.Background(), tracker.CreateRequest{
		Title:    "Bad priority",
		Priority: tracker.Priority("urgent"),
	})
	if !errors.As(err, &terr) || terr.StatusCode != 422 {
		t.Fatalf("expected 422 for unknown priority, got %v", err)
	}

	// Nothing gets stored on a rejected create.
	result, err := c.ListIssues(context.Background(), tracker.ListOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Issues) != 0 {
		t.Errorf("rejected creates were stored: %v", result.Issues)
	}
}

func TestUpdateRejectsUnknownEnumValues(t *testing.T) {
	c, srv := newTestBackend(t)
	stored := srv.Add(tracker.Issue{Title: "Fix it", Status: tracker.StatusOpen, Priority: tracker.PriorityLow})

	badStatus := tracker.Status("archived")
	_, err := c.UpdateIssue(context.Background(), stored.ID, tracker.UpdateRequest{Status: &badStatus})
	var terr *tracker.Error
	if !errors.As(err, &terr) || terr.StatusCode != 422 {
		t.Fatalf("expected 422 for unknown status, got %v", err)
	}

	badPriority := tracker.Priority("urgent")
	_, err = c.UpdateIssue(context.Background(), stored.ID, tracker.UpdateRequest{Priority: &badPriority})
	if !errors.As(err, &terr) || terr.StatusCode != 422 {
		t.Fatalf("expected 422 for unknown priority, got %v", err)
	}

	// A rejected update must not touch the stored issue.
	issue, err := c.GetIssue(context.Background(), stored.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if issue.Status != tracker.StatusOpen || issue.UpdatedAt != stored.UpdatedAt {
		t.Errorf("rejected update modified the issue: %+v", issue)
	}
}

func TestUpdateBumpsUpdatedAt(t *testing.T) {
	c, srv := newTestBackend(t)
	stored := srv.Add(tracker.Issue{Title: "Slow query", Status: tracker.StatusOpen, Priority: tracker.PriorityLow})

	status := tracker.StatusClosed
	updated, err := c.UpdateIssue(context.Background(), stored.ID, tracker.UpdateRequest{Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != tracker.StatusClosed {
		t.Errorf("expected closed, got %s", updated.Status)
	}
	if updated.Title != "Slow query" {
		t.Errorf("partial update should keep title, got %q", updated.Title)
	}
	if updated.UpdatedAt == stored.UpdatedAt {
		t.Error("expected updated_at to change")
	}
	if updated.CreatedAt != stored.CreatedAt {
		t.Error("created_at should not change on update")
	}

	_, err = c.UpdateIssue(context.Background(), "missing-id", tracker.UpdateRequest{Status: &status})
	if !tracker.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}
