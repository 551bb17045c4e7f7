package analysis

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

const clarifyPromptTemplate = `You are Signal, a performance pattern detection engine. You detect factors impacting productivity. You do NOT provide therapy. NEVER ask about feelings, emotions, relationships, or personal life.

User's reflection so far:

"%s"

Generate 1-2 clarifying questions about PERFORMANCE ONLY. Ask ONLY about: sleep, energy, focus, work output, what blocked them.

BAD (therapeutic - never do this): "What's causing you to feel blue?", "Can you share more about your relationship?", "What do you think is missing?"
GOOD (performance): "How did that affect your energy for work today?", "What got in the way of your focus?", "How did your sleep factor in?"

Return JSON array only: ["question1?", "question2?"].`

// clarifyFallbacks pairs trigger keywords with the canned performance
// question used when the model is unavailable or unhelpful.
var clarifyFallbacks = []struct {
	keywords []string
	question string
}{
	{[]string{"blue", "down", "bothered", "sad", "don't feel", "dont feel"}, "How did that affect your energy for work today?"},
	{[]string{"unproductive", "unfocused", "wasted", "sat the whole day"}, "What got in the way of feeling productive today?"},
	{[]string{"tired", "exhausted", "drained"}, "How did you sleep last night?"},
	{[]string{"unsure", "confused", "bored", "unmotivated", "not sure"}, "What did you attempt today that mattered to you?"},
	{[]string{"fight", "argument", "conflict", "bf", "boyfriend", "girlfriend"}, "How did that affect your energy for work today?"},
	{[]string{"stress", "anxious", "overwhelmed", "stuck"}, "What got in the way of your focus?"},
	{[]string{"sleep", "slept", "rest", "woke", "wake"}, "What might have affected your sleep quality?"},
}

// ClarifyQuestions produces 1-2 performance-only clarifying questions for a
// partial reflection. source is "gpt", "fallback", or "none"; err is a
// diagnostic only, never fatal.
func ClarifyQuestions(ctx context.Context, c Completer, text string) (questions []string, source string, err error) {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < 15 {
		return []string{}, "none", nil
	}
	if c == nil {
		return fallbackClarify(text), "fallback", ErrModelUnavailable
	}

	raw, completeErr := c.Complete(ctx, buildClarifyPrompt(text), 0.4, 0)
	if completeErr != nil {
		return fallbackClarify(text), "fallback", completeErr
	}
	qs, parseErr := ParseStringList(raw)
	if parseErr != nil || len(qs) == 0 {
		return fallbackClarify(text), "fallback", parseErr
	}
	if len(qs) > 2 {
		qs = qs[:2]
	}
	return qs, "gpt", nil
}

func buildClarifyPrompt(text string) string {
	return fmt.Sprintf(clarifyPromptTemplate, truncate(text, 500))
}

func fallbackClarify(text string) []string {
	lower := strings.ToLower(text)
	questions := []string{}
	seen := map[string]bool{}
	for _, fb := range clarifyFallbacks {
		for _, kw := range fb.keywords {
			if strings.Contains(lower, kw) {
				if !seen[fb.question] {
					questions = append(questions, fb.question)
					seen[fb.question] = true
				}
				break
			}
		}
	}
	if len(questions) == 0 {
		questions = append(questions, "What got in the way of your best work today?")
	}
	if len(questions) > 2 {
		questions = questions[:2]
	}
	return questions
}
