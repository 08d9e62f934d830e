// Package transcript turns conversation turns into the formatted text fed to
// report generation, and carries the live-ingestion merge rule for final
// transcript fragments.
package transcript

import (
	"fmt"
	"math"
	"strings"

	"github.com/nyaya-ai/legal-voice-api/internal/domain"
)

// syntheticTurn keeps report generation from running on empty input.
var syntheticTurn = domain.Turn{Role: domain.RoleUser, Text: "I need legal advice"}

// Formatted is the rendering of a conversation plus per-role turn counts.
type Formatted struct {
	Text           string
	TotalTurns     int
	UserTurns      int
	AssistantTurns int
}

// Format renders each turn as "[Message {n}] {Lawyer|Client}: {text}" joined
// by blank lines, numbering from 1. An empty conversation is replaced by a
// single synthetic client turn.
func Format(turns []domain.Turn) Formatted {
	if len(turns) == 0 {
		turns = []domain.Turn{syntheticTurn}
	}

	var b strings.Builder
	f := Formatted{TotalTurns: len(turns)}
	for i, turn := range turns {
		speaker := "Client"
		if turn.Role == domain.RoleAssistant {
			speaker = "Lawyer"
			f.AssistantTurns++
		} else {
			f.UserTurns++
		}
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "[Message %d] %s: %s", i+1, speaker, turn.Text)
	}
	f.Text = b.String()
	return f
}

// Merge applies the live-transcription rule for a final fragment: when the
// last stored turn has the same role, its text is extended (space-joined)
// instead of growing the turn count.
func Merge(turns []domain.Turn, role, text string) []domain.Turn {
	if n := len(turns); n > 0 && turns[n-1].Role == role {
		merged := make([]domain.Turn, n)
		copy(merged, turns)
		merged[n-1].Text = merged[n-1].Text + " " + text
		return merged
	}
	return append(append([]domain.Turn(nil), turns...), domain.Turn{Role: role, Text: text})
}

// EstimateDuration approximates call length from the turn count when no
// measured duration was supplied.
func EstimateDuration(totalTurns int) string {
	minutes := int(math.Ceil(float64(totalTurns) * 1.5))
	return fmt.Sprintf("Approximately %d minutes", minutes)
}
