package domain

import (
	"regexp"
	"strings"
)

// MaxTranscriptLen caps stored reflection text.
const MaxTranscriptLen = 5000

var controlChars = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f]`)

// SanitizeText strips control characters and enforces a length limit.
func SanitizeText(text string, maxLen int) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	if len(runes) > maxLen {
		text = string(runes[:maxLen])
	}
	text = controlChars.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// ClampInt clamps v into [low, high].
func ClampInt(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// ClampFloat clamps v into [low, high].
func ClampFloat(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
