package report

// Fallbacks are computed defaults used only when the parsed report omits the
// corresponding field.
type Fallbacks struct {
	Duration string
}

// Backfill merges a parsed (possibly partial) report on top of the default
// template for the session, then enforces the schema invariants:
//
//   - sessionId is always the caller's value, never the model's
//   - every declared array field is an array, absence coerced to empty
//   - timestamp, duration and participants fall back to computed defaults only
//     when the parsed object left them unset
//
// Backfill is idempotent: running it again over its own output is a no-op.
func Backfill(sessionID string, parsed Report, fb Fallbacks) Report {
	merged := Default(sessionID)
	for k, v := range parsed {
		merged[k] = v
	}

	merged["sessionId"] = sessionID

	for _, field := range arrayFields {
		if _, ok := merged[field].([]any); !ok {
			merged[field] = []any{}
		}
	}

	if s, ok := merged["timestamp"].(string); !ok || s == "" {
		merged["timestamp"] = Default(sessionID)["timestamp"]
	}
	if s, ok := merged["duration"].(string); !ok || s == "" {
		if fb.Duration != "" {
			merged["duration"] = fb.Duration
		} else {
			merged["duration"] = "N/A"
		}
	}
	if _, ok := merged["participants"].(map[string]any); !ok {
		merged["participants"] = Default(sessionID)["participants"]
	}

	return merged
}
