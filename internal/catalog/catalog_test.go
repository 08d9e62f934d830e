package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Criminal Lawyer", "criminal-lawyer"},
		{"already normalized", "criminal-lawyer", "criminal-lawyer"},
		{"punctuation runs", "Cyber  Crime!! Lawyer", "cyber-crime-lawyer"},
		{"leading and trailing junk", "  --Family Lawyer-- ", "family-lawyer"},
		{"digits kept", "Top 10 Lawyer", "top-10-lawyer"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Criminal Lawyer", "General   Lawyer", "a--b", "", "Consumer Rights Lawyer"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize should be idempotent for %q", in)
	}
}

func TestCatalogLookups(t *testing.T) {
	c := New(Personas())

	assert.NotEmpty(t, c.All())

	general, ok := c.BySpecialist("General Lawyer")
	require.True(t, ok)
	assert.Equal(t, GeneralLawyerKey, Normalize(general.Specialist))

	// Lookup is normalization-insensitive.
	same, ok := c.BySpecialist("general-lawyer")
	require.True(t, ok)
	assert.Equal(t, general.ID, same.ID)

	byID, ok := c.ByID(general.ID)
	require.True(t, ok)
	assert.Equal(t, general.Specialist, byID.Specialist)

	_, ok = c.BySpecialist("totally-unknown-xyz")
	assert.False(t, ok)

	_, ok = c.ByID(9999)
	assert.False(t, ok)
}

func TestExactlyOneGeneralLawyer(t *testing.T) {
	count := 0
	for _, p := range Personas() {
		if Normalize(p.Specialist) == GeneralLawyerKey {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
