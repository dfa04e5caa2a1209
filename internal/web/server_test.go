package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pmartin/issuedeck/internal/tracker"
	"github.com/pmartin/issuedeck/internal/tracker/memory"
)

func newDashboard(t *testing.T) (*httptest.Server, *memory.Server) {
	t.Helper()

	backend := memory.NewServer()
	backendSrv := httptest.NewServer(backend.Handler())
	t.Cleanup(backendSrv.Close)

	dash := httptest.NewServer(NewServer(tracker.NewClient(backendSrv.URL)).Handler())
	t.Cleanup(dash.Close)

	return dash, backend
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestDashboardRendersIssues(t *testing.T) {
	dash, backend := newDashboard(t)
	backend.Add(tracker.Issue{
		Title:    "Fix <script>alert(1)</script> injection",
		Status:   tracker.StatusInProgress,
		Priority: tracker.PriorityCritical,
		Assignee: "alex@example.com",
	})

	status, body := get(t, dash.URL)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Error("issue title was not escaped")
	}
	if strings.Contains(body, "<script>alert(1)</script>") {
		t.Error("raw script tag leaked into the page")
	}
	if !strings.Contains(body, "status-in-progress") {
		t.Error("missing status badge")
	}
	if !strings.Contains(body, "alex@example.com") {
		t.Error("missing assignee")
	}
}

func TestDashboardPassesFilters(t *testing.T) {
	dash, backend := newDashboard(t)
	backend.Add(tracker.Issue{Title: "Open one", Status: tracker.StatusOpen})
	backend.Add(tracker.Issue{Title: "Closed one", Status: tracker.StatusClosed})

	_, body := get(t, dash.URL+"?status=closed")
	if strings.Contains(body, "Open one") {
		t.Error("status filter was not applied")
	}
	if !strings.Contains(body, "Closed one") {
		t.Error("filtered issue missing")
	}
	if !strings.Contains(body, "1 issue") {
		t.Error("count should reflect the filtered total")
	}
}

func TestDashboardDetailPage(t *testing.T) {
	dash, backend := newDashboard(t)
	created := backend.Add(tracker.Issue{
		Title:       "Detail <i>here</i>",
		Description: "body & soul",
		Status:      tracker.StatusOpen,
		Priority:    tracker.PriorityLow,
	})

	status, body := get(t, dash.URL+"/issues/"+created.ID)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body, "Detail &lt;i&gt;here&lt;/i&gt;") {
		t.Error("detail title was not escaped")
	}
	if !strings.Contains(body, "body &amp; soul") {
		t.Error("detail description was not escaped")
	}
	if !strings.Contains(body, "Unassigned") {
		t.Error("blank assignee should render as Unassigned")
	}

	status, _ = get(t, dash.URL+"/issues/nope")
	if status != http.StatusNotFound {
		t.Errorf("missing issue status = %d, want 404", status)
	}
}

func TestDashboardBackendDown(t *testing.T) {
	backendSrv := httptest.NewServer(http.NotFoundHandler())
	backendSrv.Close() // unreachable backend

	dash := httptest.NewServer(NewServer(tracker.NewClient(backendSrv.URL)).Handler())
	defer dash.Close()

	status, body := get(t, dash.URL)
	if status != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", status)
	}
	if !strings.Contains(body, "Failed to load issues") {
		t.Error("missing error page")
	}
}
