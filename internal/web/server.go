package web

import (
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pmartin/issuedeck/internal/tracker"
)

// Server renders the issue list as HTML, fetching from the tracker backend
// on every request.
type Server struct {
	client *tracker.Client
}

// NewServer creates a web server backed by the given tracker client.
func NewServer(client *tracker.Client) *Server {
	return &Server{client: client}
}

// Handler returns the HTTP handler for the dashboard.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /issues/{id}", s.handleDetail)
	return mux
}

// handleIndex fetches a page of issues and renders it. The browser's query
// string passes straight through to the backend's list parameters.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	opts := optionsFromQuery(r.URL.Query())

	result, err := s.client.ListIssues(r.Context(), opts)
	if err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, RenderError("Failed to load issues: "+err.Error()))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, RenderPage(result))
}

// handleDetail renders a single issue.
func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	issue, err := s.client.GetIssue(r.Context(), id)
	if err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if tracker.IsNotFound(err) {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, RenderError("Issue "+id+" not found"))
			return
		}
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, RenderError("Failed to load issue: "+err.Error()))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, RenderDetail(issue))
}

// optionsFromQuery maps dashboard query parameters onto list options.
// Unknown or malformed values are ignored rather than rejected.
func optionsFromQuery(q url.Values) tracker.ListOptions {
	opts := tracker.ListOptions{
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
		Search:    q.Get("search"),
		Status:    tracker.Status(q.Get("status")),
		Priority:  tracker.Priority(q.Get("priority")),
		Assignee:  q.Get("assignee"),
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		opts.Page = page
	}
	if size, err := strconv.Atoi(q.Get("page_size")); err == nil && size > 0 {
		opts.PageSize = size
	}
	return opts
}
