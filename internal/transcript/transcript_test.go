package transcript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nyaya-ai/legal-voice-api/internal/domain"
)

func TestFormat(t *testing.T) {
	turns := []domain.Turn{
		{Role: domain.RoleUser, Text: "My landlord kept my deposit"},
		{Role: domain.RoleAssistant, Text: "Do you have a written rental agreement?"},
		{Role: domain.RoleUser, Text: "Yes, registered"},
	}

	f := Format(turns)

	assert.Equal(t, 3, f.TotalTurns)
	assert.Equal(t, 2, f.UserTurns)
	assert.Equal(t, 1, f.AssistantTurns)
	assert.Contains(t, f.Text, "[Message 1] Client: My landlord kept my deposit")
	assert.Contains(t, f.Text, "[Message 2] Lawyer: Do you have a written rental agreement?")
	assert.Contains(t, f.Text, "[Message 3] Client: Yes, registered")
	assert.Equal(t, f.TotalTurns, strings.Count(f.Text, "[Message "))
}

func TestFormatEmptyConversation(t *testing.T) {
	f := Format(nil)

	assert.Equal(t, 1, f.TotalTurns)
	assert.Equal(t, 1, f.UserTurns)
	assert.Equal(t, 0, f.AssistantTurns)
	assert.Equal(t, "[Message 1] Client: I need legal advice", f.Text)
}

func TestFormatUnknownRoleIsClient(t *testing.T) {
	f := Format([]domain.Turn{{Role: "system", Text: "hello"}})
	assert.Contains(t, f.Text, "Client: hello")
	assert.Equal(t, 1, f.UserTurns)
}

func TestMerge(t *testing.T) {
	turns := []domain.Turn{{Role: domain.RoleUser, Text: "I was"}}

	// Same role: text concatenates, turn count stays.
	turns = Merge(turns, domain.RoleUser, "arrested yesterday")
	assert.Len(t, turns, 1)
	assert.Equal(t, "I was arrested yesterday", turns[0].Text)

	// Different role: a new turn is appended.
	turns = Merge(turns, domain.RoleAssistant, "Were you shown a warrant?")
	assert.Len(t, turns, 2)
	assert.Equal(t, domain.RoleAssistant, turns[1].Role)

	// Empty input: first turn.
	first := Merge(nil, domain.RoleUser, "hello")
	assert.Len(t, first, 1)
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	orig := []domain.Turn{{Role: domain.RoleUser, Text: "a"}}
	_ = Merge(orig, domain.RoleUser, "b")
	assert.Equal(t, "a", orig[0].Text)
}

func TestEstimateDuration(t *testing.T) {
	assert.Equal(t, "Approximately 2 minutes", EstimateDuration(1))
	assert.Equal(t, "Approximately 3 minutes", EstimateDuration(2))
	assert.Equal(t, "Approximately 15 minutes", EstimateDuration(10))
	assert.Equal(t, "Approximately 0 minutes", EstimateDuration(0))
}
