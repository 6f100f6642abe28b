package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
)

// DecodeJSON unmarshals a model response into out, tolerating the usual
// LLM output damage: markdown code fences, leading prose, trailing
// commas, unquoted keys. Strict decode is tried first; repair only runs
// when it fails.
func DecodeJSON(raw string, out any) error {
	cleaned := stripCodeFence(raw)

	if err := json.Unmarshal([]byte(cleaned), out); err == nil {
		return nil
	}

	repaired, err := jsonrepair.RepairJSON(cleaned)
	if err != nil {
		return fmt.Errorf("response is not repairable JSON: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), out); err != nil {
		return fmt.Errorf("repaired response still not valid JSON: %w", err)
	}
	return nil
}

// stripCodeFence removes a surrounding ```json ... ``` block and any
// prose outside it. Without a fence it trims to the outermost JSON
// braces/brackets when present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)

	if idx := strings.Index(s, "```"); idx >= 0 {
		rest := s[idx+3:]
		// Skip an optional language tag on the fence line.
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			firstLine := strings.TrimSpace(rest[:nl])
			if firstLine == "json" || firstLine == "JSON" || firstLine == "" {
				rest = rest[nl+1:]
			}
		}
		if end := strings.Index(rest, "```"); end >= 0 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return s
	}
	var end int
	if s[start] == '{' {
		end = strings.LastIndexByte(s, '}')
	} else {
		end = strings.LastIndexByte(s, ']')
	}
	if end > start {
		return s[start : end+1]
	}
	return s
}
