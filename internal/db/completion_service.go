package db

import (
	"time"

	"sooth/internal/models"
)

// RecordCompletion stores one finished session for an activity.
// Source is "timer" for natural countdown completions and "manual" for
// activities marked done by hand.
func RecordCompletion(activityID, source string, durationSeconds int) (*models.Completion, error) {
	completion := models.Completion{
		ActivityID:      activityID,
		CompletedAt:     time.Now(),
		DurationSeconds: durationSeconds,
		Source:          source,
	}

	if err := DB.Create(&completion).Error; err != nil {
		return nil, err
	}

	return &completion, nil
}

// CompletedToday counts how many sessions finished since local midnight.
func CompletedToday() (int, error) {
	start := startOfDay(time.Now())

	var count int64
	err := DB.Model(&models.Completion{}).
		Where("completed_at >= ?", start).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// CompletedTodayFor reports whether the given activity finished at least
// once since local midnight.
func CompletedTodayFor(activityID string) (bool, error) {
	start := startOfDay(time.Now())

	var count int64
	err := DB.Model(&models.Completion{}).
		Where("activity_id = ? AND completed_at >= ?", activityID, start).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// CompletionsInRange returns completions within the given window, oldest first.
func CompletionsInRange(startTime, endTime time.Time) ([]models.Completion, error) {
	var completions []models.Completion

	err := DB.Where("completed_at >= ? AND completed_at <= ?", startTime, endTime).
		Order("completed_at ASC").
		Find(&completions).Error
	if err != nil {
		return nil, err
	}

	return completions, nil
}

// StreakFor computes the consecutive-day streak for an activity: the number
// of days, counting back from today (or yesterday if today has no
// completion yet), with at least one completion each.
func StreakFor(activityID string) (int, error) {
	var completions []models.Completion
	err := DB.Where("activity_id = ?", activityID).
		Order("completed_at DESC").
		Find(&completions).Error
	if err != nil {
		return 0, err
	}
	if len(completions) == 0 {
		return 0, nil
	}

	// Collect the distinct days that have a completion
	days := make(map[string]bool)
	for _, c := range completions {
		days[c.CompletedAt.Format("2006-01-02")] = true
	}

	// A streak may still be alive if today hasn't been done yet
	cursor := startOfDay(time.Now())
	if !days[cursor.Format("2006-01-02")] {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for days[cursor.Format("2006-01-02")] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return streak, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
