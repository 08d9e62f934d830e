package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyaya-ai/legal-voice-api/internal/report"
)

func TestJSONWhitelist(t *testing.T) {
	r := report.Default("sess-1")
	r["summary"] = "Tenant eviction dispute"
	r["fallbackUsed"] = true
	r["parseError"] = "unexpected token"
	r["rawResponse"] = "not json"

	out := JSON(r)

	assert.Equal(t, "sess-1", out["sessionId"])
	assert.Equal(t, "Tenant eviction dispute", out["summary"])

	_, hasFallback := out["fallbackUsed"]
	_, hasParseErr := out["parseError"]
	_, hasRaw := out["rawResponse"]
	assert.False(t, hasFallback, "diagnostic flags must not be exported")
	assert.False(t, hasParseErr)
	assert.False(t, hasRaw)

	exportedOn, ok := out["exportedOn"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, exportedOn)
	assert.NoError(t, err)
}

func TestJSONSkipsAbsentFields(t *testing.T) {
	r := report.Report{"sessionId": "sess-2", "summary": "short"}
	out := JSON(r)

	assert.Equal(t, "sess-2", out["sessionId"])
	_, hasTopics := out["legalTopics"]
	assert.False(t, hasTopics)
}

func TestDocumentRendersSectionsAndFooter(t *testing.T) {
	r := report.Default("sess-3")
	r["summary"] = "Discussion of a property boundary dispute."
	r["legalIssue"] = "Encroachment by a neighbour"
	r["keyDiscussionPoints"] = []any{"Survey records", "Prior notices"}
	r["actionItems"] = []any{
		map[string]any{"task": "Obtain survey report", "assignedTo": "Client", "priority": "high", "dueDate": "2026-09-15"},
	}

	doc := Document(r)

	assert.Contains(t, doc, "LEGAL CONSULTATION REPORT")
	assert.Contains(t, doc, "Session ID: sess-3")
	assert.Contains(t, doc, "Key Discussion Points")
	assert.Contains(t, doc, "- Survey records")
	assert.Contains(t, doc, "Obtain survey report (assigned: Client) [high] due 2026-09-15")
	assert.Contains(t, doc, "Page 1 of")
}

func TestDocumentPaginatesLongReports(t *testing.T) {
	r := report.Default("sess-4")
	points := make([]any, 120)
	for i := range points {
		points[i] = "Point about a recurring procedural question raised during the call"
	}
	r["keyDiscussionPoints"] = points

	doc := Document(r)

	assert.Contains(t, doc, "Page 1 of")
	assert.Contains(t, doc, "Page 2 of")
	assert.True(t, strings.Contains(doc, "\f"), "pages are separated by form feeds")
}

func TestDocumentWrapsLongLines(t *testing.T) {
	r := report.Default("sess-5")
	r["summary"] = strings.Repeat("regulatory compliance obligations ", 10)

	for _, line := range strings.Split(Document(r), "\n") {
		assert.LessOrEqual(t, len(line), lineWidth, "line exceeds width: %q", line)
	}
}
