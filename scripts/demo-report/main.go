// Generates a weekly report from a canned week of reflections and prints it.
// Useful for eyeballing prompt and report quality without a database.
// Usage: go run scripts/demo-report/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/signal-au/signal-api/internal/analysis"
	"github.com/signal-au/signal-api/internal/config"
	"github.com/signal-au/signal-api/internal/domain"
	"github.com/signal-au/signal-api/internal/llm"
)

var demoEntries = []domain.Entry{
	{
		Date: "2026-02-23", SleepHours: 7, SleepQuality: 3, Energy: 3, DeepWorkBlocks: 1,
		ReflectionSummary:     "Decent sleep but woke up once around 3am, might have been the late dinner. One deep work block in the morning, then social media broke the afternoon.",
		LikelyDrivers:         []string{"Late dinner disrupted sleep continuity", "Social media broke afternoon focus momentum"},
		ExperimentForTomorrow: "Dinner before 8pm, block social media until 4pm",
	},
	{
		Date: "2026-02-22", SleepHours: 7.5, SleepQuality: 4, Energy: 4, DeepWorkBlocks: 2,
		ReflectionSummary:     "Good sleep, morning walk, then straight into two deep work blocks. No phone until 2pm. Best day this week.",
		LikelyDrivers:         []string{"Consistent sleep restored working memory", "Morning walk elevated baseline arousal", "Delayed phone use prevented attentional residue"},
		ExperimentForTomorrow: "Replicate: walk, deep work, light lunch",
	},
	{
		Date: "2026-02-21", SleepHours: 8, SleepQuality: 4, Energy: 3, DeepWorkBlocks: 1,
		ReflectionSummary:     "Crashed early and slept 8 hours. Slow foggy morning, one focused session in the afternoon, submitted the assignment. Walk helped clear my head.",
		LikelyDrivers:         []string{"Recovery sleep restored some executive function", "Post-deadline relief reduced cognitive load"},
		ExperimentForTomorrow: "Morning walk before any screens",
	},
	{
		Date: "2026-02-20", SleepHours: 5.5, SleepQuality: 2, Energy: 2, DeepWorkBlocks: 0,
		ReflectionSummary:     "Deadline stress kept me up until 1am. Three coffees by noon, jittery and anxious, no deep work. Last night's work was probably low quality anyway.",
		LikelyDrivers:         []string{"Acute sleep restriction impaired focus", "Caffeine-induced anxiety", "Decision fatigue from deadline pressure"},
		ExperimentForTomorrow: "Set hard stop at 11pm regardless of deadline",
	},
	{
		Date: "2026-02-19", SleepHours: 7, SleepQuality: 4, Energy: 4, DeepWorkBlocks: 2,
		ReflectionSummary:     "Slept well, woke naturally at 7:30. Two solid deep work blocks before noon with the phone in another room. Small energy dip at 3pm but recovered.",
		LikelyDrivers:         []string{"Phone removal reduced attentional residue", "Morning deep work leveraged peak energy"},
		ExperimentForTomorrow: "Repeat morning routine",
	},
	{
		Date: "2026-02-18", SleepHours: 7.5, SleepQuality: 3, Energy: 3, DeepWorkBlocks: 1,
		ReflectionSummary:     "Better sleep but residual tiredness. One deep work block in the morning, then a hard post-lunch crash and an afternoon of meetings that could have been emails.",
		LikelyDrivers:         []string{"Post-lunch glucose crash", "Residual sleep debt from previous night"},
		ExperimentForTomorrow: "Light lunch, walk after eating",
	},
	{
		Date: "2026-02-17", SleepHours: 6, SleepQuality: 2, Energy: 2, DeepWorkBlocks: 0,
		ReflectionSummary:     "Stayed up until 2am scrolling, woke groggy, couldn't focus in the 10am lecture. Admin tasks all day, skipped the gym, felt scattered.",
		LikelyDrivers:         []string{"Late-night phone use disrupted sleep onset", "Sleep debt reduced executive function"},
		ExperimentForTomorrow: "Phone in another room by 11pm",
	},
}

func main() {
	cfg := config.Load()

	client := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIAnalysisModel, cfg.OpenAITranscribeModel)
	if client == nil {
		log.Fatal("OPENAI_API_KEY is required for the demo report")
	}

	synthesizer := analysis.NewSynthesizer(func() analysis.Completer { return client })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	report := synthesizer.Synthesize(ctx, demoEntries)
	if report.Err != "" && report.WeekNarrative == "" {
		log.Fatalf("Report generation failed: %s", report.Err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal report: %v", err)
	}

	fmt.Fprintln(os.Stdout, string(out))
}
