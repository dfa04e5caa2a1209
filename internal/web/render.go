// Package web serves a read-only HTML view of the issue list, for sharing a
// tracker snapshot in a browser without the TUI.
package web

import (
	"fmt"
	"html"
	"net/url"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/pmartin/issuedeck/internal/tracker"
)

const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>issuedeck</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem; color: #172b4d; }
h1 { font-size: 1.3rem; }
table { border-collapse: collapse; width: 100%; }
th, td { text-align: left; padding: 0.5rem 0.75rem; border-bottom: 1px solid #dfe1e6; }
th { font-size: 0.8rem; text-transform: uppercase; color: #6b778c; }
.badge { display: inline-block; padding: 0.15rem 0.5rem; border-radius: 3px; font-size: 0.8rem; }
.status-open { background: #deebff; color: #0747a6; }
.status-in-progress { background: #fff0b3; color: #974f0c; }
.status-closed { background: #e3fcef; color: #006644; }
.priority-low { color: #2684ff; }
.priority-medium { color: #ff991f; }
.priority-high { color: #ff7452; }
.priority-critical { color: #de350b; font-weight: bold; }
.unassigned { color: #6b778c; font-style: italic; }
.meta { color: #6b778c; font-size: 0.85rem; margin: 0.5rem 0 1rem; }
.empty { color: #6b778c; padding: 2rem 0; }
.error { color: #de350b; padding: 2rem 0; }
</style>
</head>
<body>
<h1>issuedeck</h1>
`

const pageFoot = `</body>
</html>
`

// RenderPage builds the full HTML document for a page of issues.
func RenderPage(result *tracker.ListResult) string {
	var b strings.Builder
	b.WriteString(pageHead)

	p := result.Pagination
	b.WriteString(`<p class="meta">` + countLabel(len(result.Issues)))
	if p.TotalPages > 1 {
		fmt.Fprintf(&b, " of %d &middot; page %d of %d", p.TotalCount, p.Page, p.TotalPages)
	}
	b.WriteString("</p>\n")

	if len(result.Issues) == 0 {
		b.WriteString(`<p class="empty">No issues found</p>` + "\n")
	} else {
		renderTable(&b, result.Issues)
	}

	b.WriteString(pageFoot)
	return b.String()
}

// RenderDetail builds the HTML document for a single issue.
func RenderDetail(issue *tracker.Issue) string {
	var b strings.Builder
	b.WriteString(pageHead)

	b.WriteString(`<p class="meta"><a href="/">&larr; all issues</a></p>` + "\n")
	fmt.Fprintf(&b, "<h2>%s</h2>\n", html.EscapeString(issue.Title))
	fmt.Fprintf(&b, `<p><span class="badge %s">%s</span> <span class="%s">%s</span></p>`+"\n",
		badgeClass("status", string(issue.Status)), html.EscapeString(string(issue.Status)),
		badgeClass("priority", string(issue.Priority)), html.EscapeString(string(issue.Priority)))

	if issue.Description != "" {
		fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(issue.Description))
	} else {
		b.WriteString(`<p class="unassigned">No description</p>` + "\n")
	}

	b.WriteString(`<p class="meta">`)
	if issue.Assignee == "" {
		b.WriteString(`Assignee: <span class="unassigned">Unassigned</span>`)
	} else {
		b.WriteString("Assignee: " + html.EscapeString(issue.Assignee))
	}
	fmt.Fprintf(&b, " &middot; id %s", html.EscapeString(issue.ID))
	fmt.Fprintf(&b, " &middot; created %s &middot; updated %s",
		html.EscapeString(issue.CreatedAt), html.EscapeString(issue.UpdatedAt))
	b.WriteString("</p>\n")

	b.WriteString(pageFoot)
	return b.String()
}

// RenderError builds an HTML document for a failed fetch.
func RenderError(message string) string {
	var b strings.Builder
	b.WriteString(pageHead)
	b.WriteString(`<p class="error">` + html.EscapeString(message) + "</p>\n")
	b.WriteString(pageFoot)
	return b.String()
}

func renderTable(b *strings.Builder, issues []tracker.Issue) {
	b.WriteString("<table>\n<thead><tr>")
	for _, h := range []string{"Title", "Status", "Priority", "Assignee", "Updated"} {
		b.WriteString("<th>" + h + "</th>")
	}
	b.WriteString("</tr></thead>\n<tbody>\n")
	for _, issue := range issues {
		renderRow(b, issue)
	}
	b.WriteString("</tbody>\n</table>\n")
}

// renderRow emits one issue row. All user-entered values pass through
// html.EscapeString so markup in titles or names renders as text.
func renderRow(b *strings.Builder, issue tracker.Issue) {
	b.WriteString("<tr>")
	fmt.Fprintf(b, `<td><a href="/issues/%s">%s</a></td>`,
		url.PathEscape(issue.ID), html.EscapeString(issue.Title))
	fmt.Fprintf(b, `<td><span class="badge %s">%s</span></td>`,
		badgeClass("status", string(issue.Status)), html.EscapeString(string(issue.Status)))
	fmt.Fprintf(b, `<td><span class="%s">%s</span></td>`,
		badgeClass("priority", string(issue.Priority)), html.EscapeString(string(issue.Priority)))
	if issue.Assignee == "" {
		b.WriteString(`<td><span class="unassigned">Unassigned</span></td>`)
	} else {
		fmt.Fprintf(b, `<td>%s</td>`, html.EscapeString(issue.Assignee))
	}
	fmt.Fprintf(b, `<td>%s</td>`, html.EscapeString(relativeAge(issue.UpdatedAt)))
	b.WriteString("</tr>\n")
}

// badgeClass builds a CSS class like "status-in-progress" from an enum
// value. Spaces become hyphens so the value stays a single class token.
func badgeClass(kind, value string) string {
	return kind + "-" + strings.ReplaceAll(value, " ", "-")
}

// countLabel formats a row count with a pluralized noun.
func countLabel(n int) string {
	if n == 1 {
		return "1 issue"
	}
	return fmt.Sprintf("%d issues", n)
}

// relativeAge renders an RFC 3339 timestamp as a human age, falling back to
// the raw date portion when the timestamp doesn't parse.
func relativeAge(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		if len(ts) >= 10 {
			return ts[:10]
		}
		return ts
	}
	return humanize.Time(t)
}
