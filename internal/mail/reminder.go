package mail

import (
	"fmt"
	"strings"
)

// TrialDays is the length of the check-in trial covered by reminder emails.
const TrialDays = 7

// dayEncouragement holds the per-day nudge copy for the 7-day trial.
var dayEncouragement = map[int]string{
	1: "You signed up — now let's make it count. Your first check-in takes 2 minutes and sets the baseline for everything Signal does for you.",
	2: "Day 2 — patterns start forming. Keep building the data.",
	3: "You're almost halfway. The more data, the sharper the insights.",
	4: "Day 4! Consistency is where Signal gets powerful.",
	5: "Over the halfway mark. Your weekly report is taking shape.",
	6: "One more day until your full weekly report unlocks.",
	7: "Final day of the trial! Complete today to unlock your weekly pattern report.",
}

const defaultEncouragement = "Keep the streak going — your data is building something useful."

const firstDayExplainer = `
      <div style="margin:20px 0 0 0;padding:16px;background:rgba(255,255,255,0.03);border:1px solid rgba(255,255,255,0.06);border-radius:10px;">
        <p style="color:#a3a3a3;font-size:12px;line-height:1.6;margin:0;">
          <span style="color:#e5e5e5;font-weight:500;">Here's how it works:</span><br>
          Log 3 things daily — sleep, energy, and a quick reflection.<br>
          Signal spots patterns you can't see yourself.<br>
          After 7 days, you unlock your full weekly performance report.
        </p>
      </div>`

// ReminderSubject returns the subject line for the reminder on the given
// trial day.
func ReminderSubject(dayNumber int) string {
	if dayNumber == 1 {
		return "Welcome to Signal — start your first check-in"
	}
	return fmt.Sprintf("Day %d/%d — Time for your check-in", dayNumber, TrialDays)
}

// BuildReminderHTML renders the daily check-in reminder email body.
func BuildReminderHTML(dayNumber int, userName, appURL string) string {
	greeting := "Hey"
	if userName != "" {
		greeting += " " + userName
	}
	if appURL == "" {
		appURL = "https://signal-au.com"
	}

	msg, ok := dayEncouragement[dayNumber]
	if !ok {
		msg = defaultEncouragement
	}

	ctaText := "Log today's check-in"
	explainer := ""
	if dayNumber == 1 {
		ctaText = "Start your first check-in"
		explainer = firstDayExplainer
	}

	done := min(dayNumber-1, TrialDays)
	if done < 0 {
		done = 0
	}
	progress := strings.Repeat("🟢", done) + strings.Repeat("⚫", TrialDays-done)

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="margin:0;padding:0;background:#050505;font-family:'Inter',system-ui,-apple-system,sans-serif;">
  <div style="max-width:480px;margin:0 auto;padding:40px 24px;">
    <div style="text-align:center;margin-bottom:32px;">
      <div style="display:inline-block;width:32px;height:32px;background:white;border-radius:50%%;line-height:32px;">
        <div style="display:inline-block;width:10px;height:10px;background:black;border-radius:50%%;vertical-align:middle;"></div>
      </div>
      <span style="color:white;font-size:13px;font-weight:500;letter-spacing:-0.01em;margin-left:8px;vertical-align:middle;">SIGNAL</span>
    </div>

    <div style="background:rgba(255,255,255,0.03);border:1px solid rgba(255,255,255,0.08);border-radius:16px;padding:32px 24px;">
      <p style="color:#e5e5e5;font-size:15px;margin:0 0 6px 0;">%s,</p>
      <p style="color:#a3a3a3;font-size:14px;line-height:1.6;margin:0 0 20px 0;">
        %s
      </p>%s
      <p style="color:#737373;font-size:12px;margin:0 0 24px 0;">
        Day %d of %d &nbsp;·&nbsp; %s
      </p>
      <div style="text-align:center;">
        <a href="%s/checkin" style="display:inline-block;background:white;color:black;font-size:13px;font-weight:500;padding:10px 28px;border-radius:999px;text-decoration:none;">
          %s
        </a>
      </div>
    </div>

    <p style="color:#525252;font-size:11px;text-align:center;margin-top:24px;">
      You're receiving this because you signed up for Signal's 7-day trial.
    </p>
  </div>
</body>
</html>
`, greeting, msg, explainer, dayNumber, TrialDays, progress, appURL, ctaText)
	return body
}
