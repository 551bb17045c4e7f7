package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/signal-au/signal-api/internal/crypto"
	"github.com/signal-au/signal-api/internal/domain"
)

const seededDays = 10

var demoReflections = []string{
	"Slept badly but still got two deep work blocks in before lunch. Afternoon was a write-off, too many meetings.",
	"Great energy all day. Morning run plus an early night yesterday made a clear difference.",
	"Felt scattered. Kept context switching between the migration work and support tickets, never got into flow.",
	"Solid day. Blocked out the morning for the report draft and actually kept the block.",
	"Tired and irritable, probably the late dinner. Energy crashed hard around 3pm.",
	"Average day. Work got done but nothing felt sharp. Skipped the walk, might be related.",
	"One of those days where everything clicked. Finished the review backlog and still had energy in the evening.",
}

var demoDrivers = [][]string{
	{"Short sleep", "Meeting-heavy afternoon"},
	{"Morning exercise", "Early bedtime"},
	{"Context switching", "No protected focus time"},
	{"Time blocking", "Single clear priority"},
	{"Late dinner", "Afternoon energy crash"},
	{"Skipped daily walk"},
	{"Good sleep", "Cleared backlog momentum"},
}

// Run seeds the database with a demo user and a stretch of recent entries so
// the weekly report unlocks out of the box. Safe to call multiple times.
func Run(db *gorm.DB, cipher *crypto.Cipher) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.Entry{}, &domain.Signup{}, &domain.Feedback{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	user := domain.User{
		ID:    uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Email: "demo@signal-au.com",
		Name:  "Demo User",
	}
	if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := seedEntriesForUser(db, user, cipher, rng); err != nil {
		return err
	}

	log.Println("Seed completed")
	return nil
}

func seedEntriesForUser(db *gorm.DB, user domain.User, cipher *crypto.Cipher, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		reflection := demoReflections[i%len(demoReflections)]
		drivers := demoDrivers[i%len(demoDrivers)]

		encDrivers := make([]string, len(drivers))
		for j, d := range drivers {
			encDrivers[j] = cipher.Encrypt(d)
		}

		entry := domain.Entry{
			UserID:                user.ID,
			Date:                  date,
			SleepHours:            5.5 + float64(rng.Intn(6))*0.5,
			SleepQuality:          2 + rng.Intn(4),
			Energy:                2 + rng.Intn(4),
			DeepWorkBlocks:        rng.Intn(4),
			Transcript:            cipher.Encrypt(reflection),
			ReflectionSummary:     cipher.Encrypt(reflection),
			LikelyDrivers:         encDrivers,
			PredictedImpact:       cipher.Encrypt("Tomorrow's focus will likely follow tonight's sleep."),
			ExperimentForTomorrow: cipher.Encrypt("Protect one deep work block before opening email."),
			EntryNumber:           1,
		}

		var count int64
		if err := db.Model(&domain.Entry{}).
			Where("user_id = ? AND date = ?", user.ID, date).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check existing entry: %w", err)
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to create entry for %s: %w", date, err)
		}
	}
	return nil
}
