package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONDirect(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"bare object", `{"summary":"ok"}`},
		{"fenced json block", "```json\n{\"summary\":\"ok\"}\n```"},
		{"fenced untagged block", "```\n{\"summary\":\"ok\"}\n```"},
		{"surrounding whitespace", "  \n{\"summary\":\"ok\"}\n  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, stage := ExtractJSON(tt.raw)
			require.Equal(t, StageDirect, stage)
			assert.Equal(t, "ok", parsed["summary"])
		})
	}
}

func TestExtractJSONBracesSpan(t *testing.T) {
	parsed, stage := ExtractJSON(`Here is info: {"summary":"partial"} trailing junk`)
	require.Equal(t, StageBraces, stage)
	assert.Equal(t, "partial", parsed["summary"])
}

func TestExtractJSONNone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"gibberish", "I am sorry, I cannot help with that."},
		{"broken braces", "some {not json at all} text"},
		{"empty", ""},
		{"array not object", `[1,2,3]`},
		{"null", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, stage := ExtractJSON(tt.raw)
			assert.Equal(t, StageNone, stage)
			assert.Nil(t, parsed)
		})
	}
}

func TestExtractJSONFencedWinsOverBraces(t *testing.T) {
	raw := "preamble {oops ```json\n{\"summary\":\"fenced\"}\n``` tail"
	parsed, stage := ExtractJSON(raw)
	require.Equal(t, StageDirect, stage)
	assert.Equal(t, "fenced", parsed["summary"])
}
