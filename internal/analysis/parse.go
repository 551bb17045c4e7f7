package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrEmptyResponse indicates the model returned nothing usable.
var ErrEmptyResponse = errors.New("empty model response")

var (
	trailingCommaObject = regexp.MustCompile(`,\s*}`)
	trailingCommaArray  = regexp.MustCompile(`,\s*]`)
)

// Parse locates the JSON object inside a raw model response, repairs common
// malformations, and returns its fields with values left raw for the
// normalizer. The repair set is deliberately minimal: over-aggressive repair
// risks silently mangling valid content.
func Parse(raw string) (map[string]json.RawMessage, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, ErrEmptyResponse
	}
	text = stripFence(text)

	// Drop any leading/trailing prose the model added despite instructions.
	if start := strings.Index(text, "{"); start >= 0 {
		if end := strings.LastIndex(text, "}"); end > start {
			text = text[start : end+1]
		}
	}

	text = trailingCommaObject.ReplaceAllString(text, "}")
	text = trailingCommaArray.ReplaceAllString(text, "]")

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return nil, fmt.Errorf("model response is not valid JSON: %w", err)
	}
	return fields, nil
}

// ParseStringList is the array variant of Parse, used for responses that are
// supposed to be a JSON array of strings (clarifying questions, topic
// checks). Non-string items are dropped.
func ParseStringList(raw string) ([]string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, ErrEmptyResponse
	}
	text = stripFence(text)

	if start := strings.Index(text, "["); start >= 0 {
		if end := strings.LastIndex(text, "]"); end > start {
			text = text[start : end+1]
		}
	}
	text = trailingCommaArray.ReplaceAllString(text, "]")

	var items []any
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, fmt.Errorf("model response is not a valid JSON array: %w", err)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// stripFence takes the interior of the first fenced code block, dropping the
// opening fence and an optional language tag. Text not starting with a fence
// is returned unchanged.
func stripFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	inner := text[3:]
	if end := strings.Index(inner, "```"); end >= 0 {
		inner = inner[:end]
	}
	inner = strings.TrimSpace(inner)
	if len(inner) >= 4 && strings.EqualFold(inner[:4], "json") {
		inner = inner[4:]
	}
	return strings.TrimSpace(inner)
}
