package report

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Stage identifies which extraction strategy produced a parse, so the
// synthesizer can flag partial parses.
type Stage int

const (
	// StageNone means no strategy yielded valid JSON.
	StageNone Stage = iota
	// StageDirect means the response parsed after fence stripping (or as-is).
	StageDirect
	// StageBraces means JSON was recovered from a {...} span inside free text.
	StageBraces
)

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ExtractJSON runs the repair chain over raw model output: strip a fenced code
// block and parse, then try the first-'{' to last-'}' span, then give up. Each
// stage returns a tagged outcome instead of panicking or raising, so the
// caller sees exactly which path succeeded.
func ExtractJSON(raw string) (Report, Stage) {
	candidate := strings.TrimSpace(raw)
	if m := fencedBlock.FindStringSubmatch(candidate); m != nil {
		candidate = strings.TrimSpace(m[1])
	}

	if parsed, ok := parseObject(candidate); ok {
		return parsed, StageDirect
	}

	if span, ok := braceSpan(raw); ok {
		if parsed, ok := parseObject(span); ok {
			return parsed, StageBraces
		}
	}

	return nil, StageNone
}

func parseObject(s string) (Report, bool) {
	var obj Report
	if err := json.Unmarshal([]byte(s), &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

// braceSpan returns the greedy first-'{' to last-'}' substring.
func braceSpan(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
