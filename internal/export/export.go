// Package export renders persisted legal reports into portable formats: a
// whitelisted JSON document and a paginated plain-text document.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/nyaya-ai/legal-voice-api/internal/report"
)

// jsonFields is the export whitelist. Diagnostic flags (fallbackUsed,
// parseError, rawResponse) deliberately stay out of exported documents.
var jsonFields = []string{
	"sessionId",
	"meetingTitle",
	"participants",
	"agent",
	"user",
	"timestamp",
	"duration",
	"legalIssue",
	"summary",
	"keyDiscussionPoints",
	"decisions",
	"legalTopics",
	"caseReferences",
	"caseType",
	"jurisdiction",
	"urgency",
	"lawsDiscussed",
	"documentsMentioned",
	"recommendations",
	"nextSteps",
	"actionItems",
}

// JSON restricts a report to the export whitelist and stamps exportedOn.
func JSON(r report.Report) map[string]any {
	out := make(map[string]any, len(jsonFields)+1)
	for _, field := range jsonFields {
		if v, ok := r[field]; ok {
			out[field] = v
		}
	}
	out["exportedOn"] = time.Now().UTC().Format(time.RFC3339)
	return out
}

const (
	lineWidth    = 80
	linesPerPage = 44
)

// Document renders the report as paginated plain text with a page-number
// footer, mirroring the fields of the JSON export.
func Document(r report.Report) string {
	var lines []string
	add := func(s string) {
		lines = append(lines, wrap(s, lineWidth)...)
	}

	add("LEGAL CONSULTATION REPORT")
	add("")
	if title := stringField(r, "meetingTitle"); title != "" {
		add(title)
	}
	add(fmt.Sprintf("Session ID: %s", stringField(r, "sessionId")))
	add("")

	if parts, ok := r["participants"].(map[string]any); ok {
		add("Participants")
		add(fmt.Sprintf("  Client: %s", stringOr(parts["client"], "Anonymous")))
		add(fmt.Sprintf("  Lawyer: %s", stringOr(parts["lawyer"], "AI Legal Assistant")))
		add("")
	}

	if ts := stringField(r, "timestamp"); ts != "" {
		add(fmt.Sprintf("Date: %s", ts))
	}
	if d := stringField(r, "duration"); d != "" {
		add(fmt.Sprintf("Duration: %s", d))
	}
	add(fmt.Sprintf("Case Type: %s    Jurisdiction: %s    Urgency: %s",
		stringField(r, "caseType"), stringField(r, "jurisdiction"), stringField(r, "urgency")))
	add("")

	if issue := stringField(r, "legalIssue"); issue != "" {
		add("Legal Issue")
		add("  " + issue)
		add("")
	}
	if summary := stringField(r, "summary"); summary != "" {
		add("Summary")
		add("  " + summary)
		add("")
	}

	listSections := []struct {
		title string
		field string
	}{
		{"Key Discussion Points", "keyDiscussionPoints"},
		{"Decisions", "decisions"},
		{"Legal Topics", "legalTopics"},
		{"Case References", "caseReferences"},
		{"Laws Discussed", "lawsDiscussed"},
		{"Documents Mentioned", "documentsMentioned"},
		{"Recommendations", "recommendations"},
		{"Next Steps", "nextSteps"},
	}
	for _, section := range listSections {
		items, ok := r[section.field].([]any)
		if !ok || len(items) == 0 {
			continue
		}
		add(section.title)
		for _, item := range items {
			add(fmt.Sprintf("  - %v", item))
		}
		add("")
	}

	if items, ok := r["actionItems"].([]any); ok && len(items) > 0 {
		add("Action Items")
		for _, item := range items {
			m, ok := item.(map[string]any)
			if !ok {
				add(fmt.Sprintf("  - %v", item))
				continue
			}
			line := fmt.Sprintf("  - %s", stringOr(m["task"], ""))
			if v := stringOr(m["assignedTo"], ""); v != "" {
				line += fmt.Sprintf(" (assigned: %s)", v)
			}
			if v := stringOr(m["priority"], ""); v != "" {
				line += fmt.Sprintf(" [%s]", v)
			}
			if v := stringOr(m["dueDate"], ""); v != "" {
				line += fmt.Sprintf(" due %s", v)
			}
			add(line)
		}
		add("")
	}

	return paginate(lines)
}

// paginate splits lines into fixed-height pages, each closed by a centered
// "Page N of M" footer.
func paginate(lines []string) string {
	pages := (len(lines) + linesPerPage - 1) / linesPerPage
	if pages == 0 {
		pages = 1
	}

	var b strings.Builder
	for page := 0; page < pages; page++ {
		start := page * linesPerPage
		end := start + linesPerPage
		if end > len(lines) {
			end = len(lines)
		}
		for _, line := range lines[start:end] {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		footer := fmt.Sprintf("Page %d of %d", page+1, pages)
		pad := (lineWidth - len(footer)) / 2
		if pad < 0 {
			pad = 0
		}
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(footer)
		b.WriteByte('\n')
		if page < pages-1 {
			b.WriteByte('\f')
		}
	}
	return b.String()
}

func wrap(s string, width int) []string {
	if len(s) <= width {
		return []string{s}
	}
	words := strings.Fields(s)
	var out []string
	var line string
	for _, w := range words {
		if line == "" {
			line = w
			continue
		}
		if len(line)+1+len(w) > width {
			out = append(out, line)
			line = w
			continue
		}
		line += " " + w
	}
	if line != "" {
		out = append(out, line)
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}

func stringField(r report.Report, key string) string {
	s, _ := r[key].(string)
	return s
}

func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}
