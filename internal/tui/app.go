package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pmartin/issuedeck/internal/config"
	"github.com/pmartin/issuedeck/internal/tracker"
)

// searchDebounce is how long typing in the search box must pause before a
// fetch fires.
const searchDebounce = 300 * time.Millisecond

// --- Messages ---

// healthMsg is sent when the startup health check completes.
type healthMsg struct {
	health *tracker.Health
	err    error
}

// startLoadMsg kicks off the first fetch. Init must not mutate the model
// (bubbletea discards the receiver copy), so the initial load is requested
// as a message and started from Update, where the sequence bump sticks.
type startLoadMsg struct{}

// issuesLoadedMsg delivers a fetched page of issues (or an error). seq ties
// the response to the request that produced it; responses from superseded
// requests are discarded.
type issuesLoadedMsg struct {
	seq    int
	result *tracker.ListResult
	err    error
}

// searchDebounceMsg fires when the search input has been idle long enough.
// Only the message matching the latest keystroke triggers a fetch.
type searchDebounceMsg struct {
	seq int
}

// issueDetailMsg delivers a fully-fetched issue for the detail view.
type issueDetailMsg struct {
	id    string
	issue *tracker.Issue
	err   error
}

// issueCreatedMsg is sent after a create attempt.
type issueCreatedMsg struct {
	issue *tracker.Issue
	err   error
}

// reloadAfterCreateMsg triggers the list refresh that follows a successful
// create. It arrives on a short delay so the success message is readable
// before the table redraws.
type reloadAfterCreateMsg struct{}

// issueUpdatedMsg is sent after an edit (status, priority, title, etc.).
type issueUpdatedMsg struct {
	id    string
	issue *tracker.Issue
	err   error
}

// --- App model ---

// App is the root bubbletea model for issuedeck.
type App struct {
	width  int
	height int
	ready  bool

	client *tracker.Client
	cfg    *config.Config

	query   queryState
	loadSeq int // incremented per fetch; stale responses are dropped

	issues     []tracker.Issue
	pagination tracker.Pagination
	state      listState
	loadErr    string

	table table.Model

	searchInput   textinput.Model
	searchFocused bool
	debounceSeq   int // incremented per keystroke; stale timers are dropped

	notes notifier

	overlay       overlay       // active overlay (nil = none)
	overlayIssue  string        // issue id the overlay is targeting
	overlayAction overlayAction // which action the overlay result maps to
	creating      *createOverlay

	detail *issueDetailView // non-nil when the detail view is open

	health *tracker.Health
}

// NewApp creates a new App model.
// Pass nil client to run without a backend (for testing).
func NewApp(client *tracker.Client, cfg *config.Config) App {
	si := textinput.New()
	si.Prompt = "/ "
	si.Placeholder = "search title, description, assignee"
	si.CharLimit = 200

	t := table.New(
		table.WithColumns(buildColumns(cfg.List.Columns, 80)),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = tableHeaderStyle
	styles.Selected = tableSelectedStyle
	styles.Cell = tableCellStyle
	t.SetStyles(styles)

	return App{
		client:      client,
		cfg:         cfg,
		query:       newQueryState(cfg.List.PageSize),
		state:       listLoading,
		table:       t,
		searchInput: si,
		notes:       newNotifier(cfg.Notifications.Duration()),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.client == nil {
		return nil
	}
	return tea.Batch(a.cmdCheckHealth(), func() tea.Msg { return startLoadMsg{} })
}

// --- Commands ---

// cmdCheckHealth verifies the backend is reachable.
func (a App) cmdCheckHealth() tea.Cmd {
	client := a.client
	return func() tea.Msg {
		health, err := client.CheckHealth(context.Background())
		return healthMsg{health: health, err: err}
	}
}

// startLoad shows the loading indicator and kicks off a fetch with the
// current query. The sequence number increments so any in-flight response
// becomes stale.
func (a *App) startLoad() tea.Cmd {
	if a.client == nil {
		return nil
	}
	a.notes.show(notifyLoading, "Loading issues...")
	a.loadSeq++
	seq := a.loadSeq
	opts := a.query.options()
	client := a.client
	return func() tea.Msg {
		result, err := client.ListIssues(context.Background(), opts)
		return issuesLoadedMsg{seq: seq, result: result, err: err}
	}
}

// cmdFetchIssue fetches a full issue before the detail view opens.
func (a App) cmdFetchIssue(id string) tea.Cmd {
	if a.client == nil {
		return nil
	}
	client := a.client
	return func() tea.Msg {
		issue, err := client.GetIssue(context.Background(), id)
		return issueDetailMsg{id: id, issue: issue, err: err}
	}
}

// cmdCreateIssue submits a new issue.
func (a App) cmdCreateIssue(req tracker.CreateRequest) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		issue, err := client.CreateIssue(context.Background(), req)
		return issueCreatedMsg{issue: issue, err: err}
	}
}

// cmdUpdateIssue applies a partial update to an issue.
func (a App) cmdUpdateIssue(id string, req tracker.UpdateRequest) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		issue, err := client.UpdateIssue(context.Background(), id, req)
		return issueUpdatedMsg{id: id, issue: issue, err: err}
	}
}

// --- Update ---

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.table.SetColumns(buildColumns(a.cfg.List.Columns, a.width))
		a.table.SetHeight(a.tableHeight())
		a.table.SetWidth(a.width)
		a.searchInput.Width = a.width - 6
		if a.detail != nil {
			a.detail.setSize(a.width, a.height)
		}

	case startLoadMsg:
		return a, a.startLoad()

	case healthMsg:
		if msg.err != nil {
			return a, a.notes.show(notifyError, errorMessage(msg.err))
		}
		a.health = msg.health

	case issuesLoadedMsg:
		if msg.seq != a.loadSeq {
			// A newer fetch is in flight; this page is stale.
			return a, nil
		}
		a.notes.hide(notifyLoading)
		if msg.err != nil {
			a.state = listError
			a.loadErr = errorMessage(msg.err)
			a.issues = nil
			a.pagination = tracker.Pagination{}
			a.table.SetRows(nil)
			return a, a.notes.show(notifyError, a.loadErr)
		}
		a.issues = msg.result.Issues
		a.pagination = msg.result.Pagination
		if len(a.issues) == 0 {
			a.state = listEmpty
		} else {
			a.state = listReady
		}
		a.table.SetRows(issuesToRows(a.issues, a.cfg.List.Columns))
		if a.table.Cursor() >= len(a.issues) && len(a.issues) > 0 {
			a.table.SetCursor(len(a.issues) - 1)
		}

	case searchDebounceMsg:
		if msg.seq != a.debounceSeq {
			// Another keystroke arrived after this timer was set.
			return a, nil
		}
		text := strings.TrimSpace(a.searchInput.Value())
		if text == a.query.search {
			return a, nil
		}
		a.query.setSearch(text)
		return a, a.startLoad()

	case issueDetailMsg:
		a.notes.hide(notifyLoading)
		if msg.err != nil {
			// Fetch failed: stay on the list, no detail view opens.
			return a, a.notes.show(notifyError, errorMessage(msg.err))
		}
		dv := newIssueDetailView(*msg.issue, a.width, a.height)
		a.detail = &dv

	case issueCreatedMsg:
		a.notes.hide(notifyLoading)
		if msg.err != nil {
			// Leave the form open with its values so the user can retry.
			if a.creating != nil {
				a.creating.reopen()
				a.overlay = a.creating
				a.overlayAction = overlayActionCreate
			}
			return a, a.notes.show(notifyError, errorMessage(msg.err))
		}
		if a.creating != nil {
			a.creating.reset()
		}
		successCmd := a.notes.show(notifySuccess, "Created "+shortID(msg.issue.ID))
		reload := tea.Tick(time.Second, func(time.Time) tea.Msg {
			return reloadAfterCreateMsg{}
		})
		return a, tea.Batch(successCmd, reload)

	case reloadAfterCreateMsg:
		// The success message stays up; loading has its own slot.
		return a, a.startLoad()

	case issueUpdatedMsg:
		a.notes.hide(notifyLoading)
		if msg.err != nil {
			return a, a.notes.show(notifyError, errorMessage(msg.err))
		}
		a.applyIssueUpdate(msg.issue)
		return a, a.notes.show(notifySuccess, "Updated "+shortID(msg.id))

	case notifyExpireMsg:
		a.notes.expire(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

// applyIssueUpdate swaps an updated issue into the list and the detail view.
func (a *App) applyIssueUpdate(updated *tracker.Issue) {
	for i := range a.issues {
		if a.issues[i].ID == updated.ID {
			a.issues[i] = *updated
			a.table.SetRows(issuesToRows(a.issues, a.cfg.List.Columns))
			break
		}
	}
	if a.detail != nil && a.detail.issue.ID == updated.ID {
		a.detail.updateIssue(*updated)
	}
}

// handleKey processes key input.
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// An active overlay captures all keys.
	if a.overlay != nil {
		var cmd tea.Cmd
		a.overlay, cmd = a.overlay.Update(msg)
		if isDone, result := a.overlay.done(); isDone {
			model, resCmd := a.handleOverlayResult(result)
			return model, tea.Batch(cmd, resCmd)
		}
		return a, cmd
	}

	// Detail view keys.
	if a.detail != nil {
		switch key {
		case "q":
			return a, tea.Quit
		case "esc":
			a.detail = nil
			return a, nil
		}
		if model, cmd, handled := a.handleEditHotkey(msg, a.detail.issue); handled {
			return model, cmd
		}
		// Delegate remaining keys to the viewport (j/k scrolling).
		return a, a.detail.Update(msg)
	}

	// The focused search input captures typing.
	if a.searchFocused {
		return a.handleSearchKey(msg)
	}

	switch key {
	case "q":
		return a, tea.Quit

	case "esc":
		if a.query.hasFilters() {
			a.query.clearFilters()
			a.searchInput.SetValue("")
			return a, a.startLoad()
		}
		return a, nil

	case "/":
		a.searchFocused = true
		a.searchInput.SetValue(a.query.search)
		return a, a.searchInput.Focus()

	case "r", "ctrl+r":
		return a, a.startLoad()

	case "ctrl+n":
		if a.creating == nil {
			a.creating = newCreateOverlay(a.width, a.height)
		}
		a.overlay = a.creating
		a.overlayAction = overlayActionCreate
		return a, nil

	case "o":
		items := make([]selectionItem, len(sortFields))
		for i, f := range sortFields {
			desc := ""
			if f == a.query.sortBy {
				desc = "current (" + a.query.sortOrder + ")"
			}
			items[i] = selectionItem{ID: f, Label: f, Desc: desc}
		}
		a.overlay = newSelectionOverlay("Sort By", items).preselect(a.query.sortBy)
		a.overlayAction = overlayActionSort
		return a, nil

	case "f":
		items := []selectionItem{{ID: "", Label: "all"}}
		for _, s := range tracker.Statuses {
			items = append(items, selectionItem{ID: string(s), Label: string(s)})
		}
		a.overlay = newSelectionOverlay("Filter by Status", items).preselect(string(a.query.status))
		a.overlayAction = overlayActionFilterStatus
		return a, nil

	case "g":
		items := []selectionItem{{ID: "", Label: "all"}}
		for _, p := range tracker.Priorities {
			items = append(items, selectionItem{ID: string(p), Label: string(p)})
		}
		a.overlay = newSelectionOverlay("Filter by Priority", items).preselect(string(a.query.priority))
		a.overlayAction = overlayActionFilterPriority
		return a, nil

	case "u":
		a.overlay = newTextInputOverlay("Filter by Assignee", a.query.assignee)
		a.overlayAction = overlayActionFilterAssignee
		return a, nil

	case "[":
		if a.query.prevPage() {
			return a, a.startLoad()
		}
		return a, nil

	case "]":
		if a.query.nextPage(a.pagination.TotalPages) {
			return a, a.startLoad()
		}
		return a, nil

	case "enter":
		// Fetch the full issue first; the detail view only opens on success.
		if issue := a.selectedIssue(); issue != nil {
			a.notes.show(notifyLoading, "Opening "+shortID(issue.ID)+"...")
			return a, a.cmdFetchIssue(issue.ID)
		}
		return a, nil

	default:
		if issue := a.selectedIssue(); issue != nil {
			if model, cmd, handled := a.handleEditHotkey(msg, *issue); handled {
				return model, cmd
			}
		}
		// Delegate to the table for j/k/up/down navigation.
		if a.state == listReady {
			var cmd tea.Cmd
			a.table, cmd = a.table.Update(msg)
			return a, cmd
		}
	}

	return a, nil
}

// handleSearchKey routes keypresses while the search input is focused. Every
// edit bumps the debounce sequence and schedules a timer; only the timer from
// the last keystroke survives to trigger a fetch.
func (a App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.searchFocused = false
		a.searchInput.Blur()
		a.debounceSeq++ // cancel any pending timer
		text := strings.TrimSpace(a.searchInput.Value())
		if text == a.query.search {
			return a, nil
		}
		a.query.setSearch(text)
		return a, a.startLoad()

	case "esc":
		a.searchFocused = false
		a.searchInput.Blur()
		a.debounceSeq++
		a.searchInput.SetValue(a.query.search)
		return a, nil
	}

	var cmd tea.Cmd
	before := a.searchInput.Value()
	a.searchInput, cmd = a.searchInput.Update(msg)
	if a.searchInput.Value() == before {
		return a, cmd
	}

	a.debounceSeq++
	seq := a.debounceSeq
	debounce := tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
	return a, tea.Batch(cmd, debounce)
}

// selectedIssue returns the issue under the table cursor, or nil.
func (a App) selectedIssue() *tracker.Issue {
	if a.state != listReady {
		return nil
	}
	idx := a.table.Cursor()
	if idx < 0 || idx >= len(a.issues) {
		return nil
	}
	return &a.issues[idx]
}

// --- Edit hotkeys ---

// editHotkeys is the set of keys that act on the selected issue.
var editHotkeys = map[string]bool{
	"s": true, "p": true, "t": true, "e": true, "a": true, "y": true,
}

// handleEditHotkey processes edit hotkeys for the given target issue.
// Returns (model, cmd, true) if the key was handled.
func (a App) handleEditHotkey(msg tea.KeyMsg, issue tracker.Issue) (tea.Model, tea.Cmd, bool) {
	key := msg.String()
	if !editHotkeys[key] {
		return a, nil, false
	}

	switch key {
	case "y":
		// Yank (copy) issue id to clipboard.
		if err := clipboard.WriteAll(issue.ID); err != nil {
			return a, a.notes.show(notifyError, "Clipboard unavailable"), true
		}
		return a, a.notes.show(notifySuccess, "Copied "+shortID(issue.ID)), true

	case "s":
		items := make([]selectionItem, len(tracker.Statuses))
		for i, s := range tracker.Statuses {
			items[i] = selectionItem{ID: string(s), Label: string(s)}
		}
		a.overlay = newSelectionOverlay("Change Status", items).preselect(string(issue.Status))
		a.overlayIssue = issue.ID
		a.overlayAction = overlayActionEditStatus
		return a, nil, true

	case "p":
		items := make([]selectionItem, len(tracker.Priorities))
		for i, p := range tracker.Priorities {
			items[i] = selectionItem{ID: string(p), Label: string(p)}
		}
		a.overlay = newSelectionOverlay("Change Priority", items).preselect(string(issue.Priority))
		a.overlayIssue = issue.ID
		a.overlayAction = overlayActionEditPriority
		return a, nil, true

	case "a":
		a.overlay = newTextInputOverlay("Assign To", issue.Assignee)
		a.overlayIssue = issue.ID
		a.overlayAction = overlayActionEditAssignee
		return a, nil, true

	case "t":
		a.overlay = newTextInputOverlay("Edit Title", issue.Title)
		a.overlayIssue = issue.ID
		a.overlayAction = overlayActionEditTitle
		return a, nil, true

	case "e":
		a.overlay = newTextEditorOverlay("Edit Description", issue.Description, a.width, a.height)
		a.overlayIssue = issue.ID
		a.overlayAction = overlayActionEditDescription
		return a, nil, true
	}

	return a, nil, false
}

// overlayAction identifies what a completed overlay's result maps to.
type overlayAction int

const (
	overlayActionNone overlayAction = iota
	overlayActionCreate
	overlayActionSort
	overlayActionFilterStatus
	overlayActionFilterPriority
	overlayActionFilterAssignee
	overlayActionEditStatus
	overlayActionEditPriority
	overlayActionEditAssignee
	overlayActionEditTitle
	overlayActionEditDescription
)

// handleOverlayResult processes the result of a completed overlay and
// dispatches the appropriate request.
func (a App) handleOverlayResult(result interface{}) (tea.Model, tea.Cmd) {
	issueID := a.overlayIssue
	action := a.overlayAction
	a.overlay = nil
	a.overlayIssue = ""
	a.overlayAction = overlayActionNone

	if result == nil {
		// Cancelled. The create form keeps its draft for next time.
		return a, nil
	}

	switch action {
	case overlayActionCreate:
		req := result.(*tracker.CreateRequest)
		if req.Title == "" {
			// Reject locally: no request goes out, the form stays open.
			a.creating.reopen()
			a.overlay = a.creating
			a.overlayAction = overlayActionCreate
			return a, a.notes.show(notifyError, "Title is required")
		}
		a.notes.show(notifyLoading, "Creating issue...")
		return a, a.cmdCreateIssue(*req)

	case overlayActionSort:
		item := result.(*selectionItem)
		a.query.selectSort(item.ID)
		return a, a.startLoad()

	case overlayActionFilterStatus:
		item := result.(*selectionItem)
		a.query.setStatus(tracker.Status(item.ID))
		return a, a.startLoad()

	case overlayActionFilterPriority:
		item := result.(*selectionItem)
		a.query.setPriority(tracker.Priority(item.ID))
		return a, a.startLoad()

	case overlayActionFilterAssignee:
		a.query.setAssignee(strings.TrimSpace(result.(string)))
		return a, a.startLoad()

	case overlayActionEditStatus:
		item := result.(*selectionItem)
		status := tracker.Status(item.ID)
		a.notes.show(notifyLoading, "Updating "+shortID(issueID)+"...")
		return a, a.cmdUpdateIssue(issueID, tracker.UpdateRequest{Status: &status})

	case overlayActionEditPriority:
		item := result.(*selectionItem)
		priority := tracker.Priority(item.ID)
		a.notes.show(notifyLoading, "Updating "+shortID(issueID)+"...")
		return a, a.cmdUpdateIssue(issueID, tracker.UpdateRequest{Priority: &priority})

	case overlayActionEditAssignee:
		assignee := strings.TrimSpace(result.(string))
		a.notes.show(notifyLoading, "Updating "+shortID(issueID)+"...")
		return a, a.cmdUpdateIssue(issueID, tracker.UpdateRequest{Assignee: &assignee})

	case overlayActionEditTitle:
		title := strings.TrimSpace(result.(string))
		if title == "" {
			return a, a.notes.show(notifyError, "Title cannot be empty")
		}
		a.notes.show(notifyLoading, "Updating "+shortID(issueID)+"...")
		return a, a.cmdUpdateIssue(issueID, tracker.UpdateRequest{Title: &title})

	case overlayActionEditDescription:
		desc := result.(string)
		a.notes.show(notifyLoading, "Updating "+shortID(issueID)+"...")
		return a, a.cmdUpdateIssue(issueID, tracker.UpdateRequest{Description: &desc})
	}

	return a, nil
}

// errorMessage builds a user-facing message from a request error.
func errorMessage(err error) string {
	var terr *tracker.Error
	if errors.As(err, &terr) {
		switch terr.Kind {
		case tracker.KindNetwork:
			return "Cannot reach server: " + terr.Error()
		case tracker.KindNotFound:
			return "Issue no longer exists"
		case tracker.KindValidation:
			if terr.Message != "" {
				return "Invalid input: " + terr.Message
			}
			return "Invalid input"
		case tracker.KindServer:
			if terr.Message != "" {
				return fmt.Sprintf("Server error (%d): %s", terr.StatusCode, terr.Message)
			}
			return fmt.Sprintf("Server error (%d)", terr.StatusCode)
		}
	}
	return err.Error()
}

// tableHeight returns the height available for the issue table.
func (a App) tableHeight() int {
	// Reserve: title (2) + search bar (2) + status bar (1)
	h := a.height - 5
	if h < 3 {
		h = 3
	}
	return h
}

// --- View ---

// View implements tea.Model.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	if a.overlay != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("issuedeck"),
			a.overlay.View(a.width, a.height),
			a.renderStatusBar(),
		)
	}

	if a.detail != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("issuedeck"),
			a.detail.View(),
			a.renderStatusBar(),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("issuedeck"),
		a.renderSearchBar(),
		a.renderList(),
		a.renderStatusBar(),
	)
}

// renderSearchBar draws the search input or the applied search text.
func (a App) renderSearchBar() string {
	var bar string
	switch {
	case a.searchFocused:
		bar = a.searchInput.View()
	case a.query.search != "":
		bar = filterPromptStyle.Render("/ ") + countStyle.Render(truncate(a.query.search, 40))
	default:
		bar = helpStyle.Render("/ search")
	}

	if filters := a.renderActiveFilters(); filters != "" {
		bar += helpStyle.Render("  │  ") + filters
	}
	return filterBarStyle.Render(bar)
}

// renderActiveFilters summarizes non-search filters next to the search bar.
func (a App) renderActiveFilters() string {
	var parts []string
	if a.query.status != "" {
		parts = append(parts, "status="+string(a.query.status))
	}
	if a.query.priority != "" {
		parts = append(parts, "priority="+string(a.query.priority))
	}
	if a.query.assignee != "" {
		parts = append(parts, "assignee="+a.query.assignee)
	}
	if len(parts) == 0 {
		return ""
	}
	return countStyle.Render(strings.Join(parts, "  ")) + helpStyle.Render("  (esc clears)")
}

// renderList draws the table or a placeholder for the current list state.
func (a App) renderList() string {
	switch a.state {
	case listLoading:
		return loadingStyle.Render("Loading issues...")
	case listError:
		return errorStyle.Render("Error: " + a.loadErr)
	case listEmpty:
		if a.query.hasFilters() {
			return emptyStyle.Render("No issues match the current filters")
		}
		return emptyStyle.Render("No issues yet. ctrl+n creates one.")
	}
	return a.table.View()
}

// renderStatusBar draws the bottom status line: counts, paging, transient
// notifications, and key help.
func (a App) renderStatusBar() string {
	var parts []string

	if a.state == listLoading && a.health != nil {
		parts = append(parts, successStyle.Render(a.health.Status)+
			countStyle.Render(fmt.Sprintf(" · %d tracked", a.health.TotalIssues)))
	}
	if a.state == listReady || a.state == listEmpty {
		counts := statusCounts(a.issues)
		var byStatus []string
		for _, s := range tracker.Statuses {
			if n := counts[s]; n > 0 {
				byStatus = append(byStatus, statusLabel(s)+countStyle.Render(fmt.Sprintf(" %d", n)))
			}
		}
		// The count label reflects the rows actually fetched; the
		// envelope's total shows up alongside the page indicator.
		page := countStyle.Render(countLabel(len(a.issues)))
		if a.pagination.TotalPages > 1 {
			page += helpStyle.Render(fmt.Sprintf("  of %d  page %d/%d",
				a.pagination.TotalCount, a.pagination.Page, a.pagination.TotalPages))
		}
		parts = append(parts, page)
		if len(byStatus) > 0 {
			parts = append(parts, strings.Join(byStatus, " "))
		}
	}

	if text := a.notes.get(notifyLoading); text != "" {
		parts = append(parts, loadingStyle.Render(text))
	}
	if text := a.notes.get(notifyError); text != "" {
		parts = append(parts, errorStyle.Render(text))
	}
	if text := a.notes.get(notifySuccess); text != "" {
		parts = append(parts, successStyle.Render(text))
	}

	switch {
	case a.detail != nil:
		parts = append(parts, helpStyle.Render("j/k: scroll  s/p/a/t/e: edit  y: copy id  esc: back"))
	case a.overlay != nil:
		// Overlays render their own hints.
	default:
		parts = append(parts, helpStyle.Render("enter: open  ctrl+n: new  /: search  o: sort  f/g/u: filter  [/]: page  r: refresh  q: quit"))
	}

	return strings.Join(parts, helpStyle.Render("  │  "))
}
