// Package report owns the legal report schema: the default template, the JSON
// extraction chain over raw model output, and the back-fill merge that
// guarantees every persisted report is schema-complete.
package report

import "time"

// Report is the dynamic report object. The generating model decides most of
// the content; Backfill guarantees the shape.
type Report = map[string]any

// Urgency levels.
const (
	UrgencyLow    = "Low"
	UrgencyMedium = "Medium"
	UrgencyHigh   = "High"
)

// arrayFields are the list-valued report fields. Backfill forces each of them
// to an array whenever the merged value is anything else.
var arrayFields = []string{
	"keyDiscussionPoints",
	"importantPoints",
	"decisions",
	"legalTopics",
	"caseReferences",
	"lawsDiscussed",
	"documentsMentioned",
	"documentsNeeded",
	"recommendations",
	"nextSteps",
	"actionItems",
	"risksIdentified",
	"clientConcerns",
	"adviceProvided",
}

// Default returns a complete report template for the session: every required
// and optional field present, every array empty but non-nil.
func Default(sessionID string) Report {
	r := Report{
		"sessionId":    sessionID,
		"meetingTitle": "Legal Consultation Session",
		"participants": map[string]any{
			"client": "Anonymous",
			"lawyer": "AI Legal Assistant",
		},
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"duration":     "N/A",
		"agent":        "AI Legal Assistant",
		"user":         "Anonymous",
		"legalIssue":   "General legal consultation",
		"summary":      "The user consulted about a legal matter. Detailed information was not available.",
		"caseType":     "General",
		"jurisdiction": "India",
		"urgency":      UrgencyMedium,
	}
	for _, field := range arrayFields {
		r[field] = []any{}
	}
	return r
}
