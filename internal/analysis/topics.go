package analysis

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// The three reflection topics a complete check-in must address. The model
// is restricted to these exact strings so the client can match on them.
const (
	TopicSleep   = "How did you sleep?"
	TopicFeeling = "What are you feeling?"
	TopicAttempt = "What did you attempt?"
)

const topicsPromptTemplate = `A user's daily reflection must meaningfully address 3 topics. A vague mention is NOT enough — they need to provide real detail.

TOPIC 1 — "How did you sleep?"
ADDRESSED: they give AT LEAST TWO specifics: duration, quality description, disruptions, bedtime, or how they woke up.
"slept 7 hours, woke up twice" → ADDRESSED (duration + disruption)
"went to bed at 11, woke up groggy" → ADDRESSED (bedtime + wake quality)
"slept okay" → NOT ADDRESSED (only one vague word)
"slept fine today" → NOT ADDRESSED (no real detail)
"i slept alright" → NOT ADDRESSED (too vague)

TOPIC 2 — "What are you feeling?"
ADDRESSED: they describe their current emotional state, mood, or energy level for the day.
"I feel low today", "my energy is drained", "I'm stressed" → ADDRESSED
"felt groggy waking up", "felt restless at night" → NOT ADDRESSED (describes sleep, not current feeling)
"okay" or "fine" without context → NOT ADDRESSED (too vague)

TOPIC 3 — "What did you attempt?"
ADDRESSED: they describe what they worked on, tried, or did during the day (or said they did nothing).
"worked on my project", "did nothing today", "went to class" → ADDRESSED
No mention of any activity → NOT ADDRESSED

Reflection: "%s"

Return JSON array of MISSING topics. Use exact strings:
["How did you sleep?", "What are you feeling?", "What did you attempt?"]
Return [] only if ALL three are meaningfully addressed with detail.`

var (
	sleepTopicRe   = regexp.MustCompile(`\b(sleep|slept|rest|woke|nap|bed|insomnia|alright|well|hours?|asleep|restorative|restless)\b`)
	feelingTopicRe = regexp.MustCompile(`\b(feel|felt|feeling|energy|mood|stressed|anxious|happy|sad|tired|exhausted|drained|bothered|down|low|great|calm|relaxed|motivated|restless|groggy|heavy)\b`)
	feelingShortRe = regexp.MustCompile(`(feel|i'm|im)\s+(okay|fine|good|bad)`)
	attemptTopicRe = regexp.MustCompile(`\b(work|worked|attempt|tried|did|task|project|focus|study|meeting|class|productive|unproductive|nothing|read|exercise|chilled)\b`)
)

// MissingTopics returns which of the three reflection topics the text does
// not meaningfully address. Very short text is missing all three; model
// failures fall back to the keyword heuristics.
func MissingTopics(ctx context.Context, c Completer, text string) []string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < 5 {
		return []string{TopicSleep, TopicFeeling, TopicAttempt}
	}
	if c == nil {
		return fallbackTopics(text)
	}

	raw, err := c.Complete(ctx, fmt.Sprintf(topicsPromptTemplate, truncate(text, 1200)), 0.1, 100)
	if err != nil {
		return fallbackTopics(text)
	}
	items, err := ParseStringList(raw)
	if err != nil {
		return fallbackTopics(text)
	}
	missing := []string{}
	for _, q := range items {
		if q == TopicSleep || q == TopicFeeling || q == TopicAttempt {
			missing = append(missing, q)
		}
	}
	return missing
}

func fallbackTopics(text string) []string {
	lower := strings.ToLower(text)
	missing := []string{}
	if !sleepTopicRe.MatchString(lower) {
		missing = append(missing, TopicSleep)
	}
	if !feelingTopicRe.MatchString(lower) && !feelingShortRe.MatchString(lower) {
		missing = append(missing, TopicFeeling)
	}
	if !attemptTopicRe.MatchString(lower) {
		missing = append(missing, TopicAttempt)
	}
	return missing
}
