package analysis

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/signal-au/signal-api/internal/domain"
)

// ClarifyingQuestion is the deterministic follow-up for short reflections
// that never mention energy or focus.
const ClarifyingQuestion = "How was your energy and focus today?"

// energyKeywords mark a short reflection as already covering energy/focus.
var energyKeywords = []string{"energy", "tired", "drained", "focused", "focus", "productive", "work", "deep work"}

// NeedsClarification decides whether the input carries enough information to
// analyze. It returns a clarifying question the user should answer first, or
// "" to proceed straight to analysis. The gate never blocks analysis: model
// errors, a nil completer, and malformed responses all mean "no
// clarification needed".
func NeedsClarification(ctx context.Context, c Completer, in domain.ReflectionInput) string {
	t := strings.TrimSpace(in.Transcript)
	if t == "" || utf8.RuneCountInString(t) < 10 {
		// Too little signal to even ask a targeted question.
		return ""
	}
	if utf8.RuneCountInString(t) < 80 {
		lower := strings.ToLower(t)
		mentioned := false
		for _, w := range energyKeywords {
			if strings.Contains(lower, w) {
				mentioned = true
				break
			}
		}
		if !mentioned {
			// Cheap deterministic path: no model call spent.
			return ClarifyingQuestion
		}
	}
	if c == nil {
		return ""
	}

	resp, err := c.Complete(ctx, buildGatePrompt(in), 0.2, 80)
	if err != nil {
		return ""
	}
	resp = strings.TrimSpace(resp)
	if resp == "" || strings.EqualFold(resp, "NONE") {
		return ""
	}
	// Reject responses that ignore the instruction format.
	if !strings.HasSuffix(resp, "?") {
		return ""
	}
	return resp
}
