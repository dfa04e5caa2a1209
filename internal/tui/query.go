package tui

import "github.com/pmartin/issuedeck/internal/tracker"

// Sort field and order defaults match the backend's.
const (
	defaultSortBy    = "updated_at"
	defaultSortOrder = "desc"
)

// sortFields lists the fields the list can be sorted by.
var sortFields = []string{"title", "status", "priority", "assignee", "created_at", "updated_at"}

// queryState holds the list controller's pagination, sorting, and filter
// state. It is mutated in place by user actions and converted into request
// options for each fetch.
type queryState struct {
	page      int
	pageSize  int
	sortBy    string
	sortOrder string

	search   string
	status   tracker.Status
	priority tracker.Priority
	assignee string
}

// newQueryState returns the initial query: first page, sorted by most
// recently updated.
func newQueryState(pageSize int) queryState {
	return queryState{
		page:      1,
		pageSize:  pageSize,
		sortBy:    defaultSortBy,
		sortOrder: defaultSortOrder,
	}
}

// selectSort applies a sort selection: re-selecting the current field flips
// the order, selecting a new field resets to ascending. The page resets to 1
// either way.
func (q *queryState) selectSort(field string) {
	if field == q.sortBy {
		if q.sortOrder == "asc" {
			q.sortOrder = "desc"
		} else {
			q.sortOrder = "asc"
		}
	} else {
		q.sortBy = field
		q.sortOrder = "asc"
	}
	q.page = 1
}

// setSearch updates the search text and resets to the first page.
func (q *queryState) setSearch(text string) {
	q.search = text
	q.page = 1
}

// setStatus updates the status filter and resets to the first page.
func (q *queryState) setStatus(s tracker.Status) {
	q.status = s
	q.page = 1
}

// setPriority updates the priority filter and resets to the first page.
func (q *queryState) setPriority(p tracker.Priority) {
	q.priority = p
	q.page = 1
}

// setAssignee updates the assignee filter and resets to the first page.
func (q *queryState) setAssignee(a string) {
	q.assignee = a
	q.page = 1
}

// clearFilters drops all filters, keeping sort and page size.
func (q *queryState) clearFilters() {
	q.search = ""
	q.status = ""
	q.priority = ""
	q.assignee = ""
	q.page = 1
}

// hasFilters reports whether any filter is set.
func (q *queryState) hasFilters() bool {
	return q.search != "" || q.status != "" || q.priority != "" || q.assignee != ""
}

// nextPage advances to the next page if one exists.
func (q *queryState) nextPage(totalPages int) bool {
	if q.page >= totalPages {
		return false
	}
	q.page++
	return true
}

// prevPage steps back one page if possible.
func (q *queryState) prevPage() bool {
	if q.page <= 1 {
		return false
	}
	q.page--
	return true
}

// options converts the state into request options. Only non-empty filters
// are carried over.
func (q *queryState) options() tracker.ListOptions {
	return tracker.ListOptions{
		Page:      q.page,
		PageSize:  q.pageSize,
		SortBy:    q.sortBy,
		SortOrder: q.sortOrder,
		Search:    q.search,
		Status:    q.status,
		Priority:  q.priority,
		Assignee:  q.assignee,
	}
}
