package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sooth/internal/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sooth.db")

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	DB = gdb
	require.NoError(t, runMigrations())

	t.Cleanup(func() {
		_ = Close()
		DB = nil
	})
}

// insertCompletionAt writes a completion row with an explicit timestamp
func insertCompletionAt(t *testing.T, activityID string, at time.Time) {
	t.Helper()
	c := models.Completion{
		ActivityID:      activityID,
		CompletedAt:     at,
		DurationSeconds: 300,
		Source:          "timer",
	}
	require.NoError(t, DB.Create(&c).Error)
}

func TestRecordCompletion(t *testing.T) {
	setupTestDB(t)

	c, err := RecordCompletion("1", "timer", 300)
	require.NoError(t, err)
	assert.NotZero(t, c.ID)
	assert.Equal(t, "1", c.ActivityID)
	assert.Equal(t, "timer", c.Source)
	assert.WithinDuration(t, time.Now(), c.CompletedAt, time.Minute)
}

func TestCompletedToday(t *testing.T) {
	setupTestDB(t)

	count, err := CompletedToday()
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = RecordCompletion("1", "timer", 300)
	require.NoError(t, err)
	_, err = RecordCompletion("2", "manual", 600)
	require.NoError(t, err)

	// Yesterday's session must not count
	insertCompletionAt(t, "1", time.Now().AddDate(0, 0, -1))

	count, err = CompletedToday()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCompletedTodayFor(t *testing.T) {
	setupTestDB(t)

	done, err := CompletedTodayFor("1")
	require.NoError(t, err)
	assert.False(t, done)

	_, err = RecordCompletion("1", "timer", 300)
	require.NoError(t, err)

	done, err = CompletedTodayFor("1")
	require.NoError(t, err)
	assert.True(t, done)

	done, err = CompletedTodayFor("2")
	require.NoError(t, err)
	assert.False(t, done)
}

func TestCompletionsInRange(t *testing.T) {
	setupTestDB(t)

	now := time.Now()
	insertCompletionAt(t, "1", now.AddDate(0, 0, -10))
	insertCompletionAt(t, "2", now.AddDate(0, 0, -3))
	insertCompletionAt(t, "3", now.AddDate(0, 0, -1))

	completions, err := CompletionsInRange(now.AddDate(0, 0, -7), now)
	require.NoError(t, err)
	require.Len(t, completions, 2)

	// Oldest first
	assert.Equal(t, "2", completions[0].ActivityID)
	assert.Equal(t, "3", completions[1].ActivityID)
}

func TestStreakFor(t *testing.T) {
	setupTestDB(t)

	streak, err := StreakFor("1")
	require.NoError(t, err)
	assert.Zero(t, streak)

	now := time.Now()

	// Three consecutive days ending today
	insertCompletionAt(t, "1", now)
	insertCompletionAt(t, "1", now.AddDate(0, 0, -1))
	insertCompletionAt(t, "1", now.AddDate(0, 0, -2))
	// A gap, then an older day that must not count
	insertCompletionAt(t, "1", now.AddDate(0, 0, -5))

	streak, err = StreakFor("1")
	require.NoError(t, err)
	assert.Equal(t, 3, streak)
}

func TestStreakForSurvivesMissingToday(t *testing.T) {
	setupTestDB(t)

	now := time.Now()
	// Completed yesterday and the day before, nothing yet today
	insertCompletionAt(t, "1", now.AddDate(0, 0, -1))
	insertCompletionAt(t, "1", now.AddDate(0, 0, -2))

	streak, err := StreakFor("1")
	require.NoError(t, err)
	assert.Equal(t, 2, streak)
}

func TestStreakIsPerActivity(t *testing.T) {
	setupTestDB(t)

	insertCompletionAt(t, "1", time.Now())

	streak, err := StreakFor("2")
	require.NoError(t, err)
	assert.Zero(t, streak)
}
