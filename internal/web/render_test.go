package web

import (
	"strings"
	"testing"

	"github.com/pmartin/issuedeck/internal/tracker"
)

func singleIssueResult(issue tracker.Issue) *tracker.ListResult {
	return &tracker.ListResult{
		Issues: []tracker.Issue{issue},
		Pagination: tracker.Pagination{
			Page: 1, PageSize: 10, TotalCount: 1, TotalPages: 1,
		},
	}
}

func TestRenderPageEscapesMarkup(t *testing.T) {
	page := RenderPage(singleIssueResult(tracker.Issue{
		ID:        "abc123",
		Title:     `<b>bold?</b>`,
		Status:    tracker.StatusOpen,
		Priority:  tracker.PriorityMedium,
		UpdatedAt: "2024-06-01T09:00:00Z",
	}))

	if !strings.Contains(page, "&lt;b&gt;bold?&lt;/b&gt;") {
		t.Error("markup in the title was not escaped")
	}
	if strings.Contains(page, "<b>bold?</b>") {
		t.Error("raw markup leaked into the page")
	}
}

func TestRenderPageBadgesAndPlaceholders(t *testing.T) {
	page := RenderPage(singleIssueResult(tracker.Issue{
		ID:       "abc123",
		Title:    "A bug",
		Status:   tracker.StatusOpen,
		Priority: tracker.PriorityMedium,
	}))

	if !strings.Contains(page, `class="badge status-open"`) {
		t.Error("missing status badge class")
	}
	if !strings.Contains(page, "Unassigned") {
		t.Error("blank assignee should render as Unassigned")
	}
	if !strings.Contains(page, "1 issue") || strings.Contains(page, "1 issues") {
		t.Error("count should be pluralized correctly")
	}
}

func TestRenderPageEmpty(t *testing.T) {
	page := RenderPage(&tracker.ListResult{})
	if !strings.Contains(page, "No issues found") {
		t.Error("missing empty state")
	}
	if !strings.Contains(page, "0 issues") {
		t.Error("missing zero count")
	}
}

func TestRenderPagePaging(t *testing.T) {
	page := RenderPage(&tracker.ListResult{
		Issues: []tracker.Issue{{Title: "x", Status: tracker.StatusOpen, Priority: tracker.PriorityLow}},
		Pagination: tracker.Pagination{
			Page: 2, PageSize: 10, TotalCount: 23, TotalPages: 3,
		},
	})
	// The count label reflects the rows on this page, not the envelope total.
	if !strings.Contains(page, "1 issue of 23") {
		t.Errorf("missing page row count: %s", page)
	}
	if strings.Contains(page, "23 issues") {
		t.Error("count label shows the envelope total instead of the page rows")
	}
	if !strings.Contains(page, "page 2 of 3") {
		t.Error("missing page indicator")
	}
}

func TestBadgeClass(t *testing.T) {
	if got := badgeClass("status", "in-progress"); got != "status-in-progress" {
		t.Errorf("badgeClass = %q", got)
	}
	if got := badgeClass("status", "needs review"); got != "status-needs-review" {
		t.Errorf("badgeClass with space = %q", got)
	}
}

func TestRenderError(t *testing.T) {
	page := RenderError(`backend said <no>`)
	if !strings.Contains(page, "backend said &lt;no&gt;") {
		t.Error("error message was not escaped")
	}
}
