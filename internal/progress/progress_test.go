package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		goal      int
		want      int
	}{
		{"partial", 3, 5, 60},
		{"exact goal", 5, 5, 100},
		{"over goal is not clamped", 6, 5, 120},
		{"nothing done", 0, 5, 0},
		{"zero goal guards division", 3, 0, 0},
		{"negative goal guards division", 3, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentage(tt.completed, tt.goal))
		})
	}
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 2, Remaining(3, 5))
	assert.Equal(t, 0, Remaining(5, 5))
	assert.Equal(t, 0, Remaining(7, 5))
	assert.Equal(t, 5, Remaining(0, 5))
}

func TestMessage(t *testing.T) {
	assert.Contains(t, Message(5, 5), "daily goal")
	assert.Contains(t, Message(7, 5), "reached")
	assert.Equal(t, "1 more activity to reach your daily goal", Message(4, 5))
	assert.Equal(t, "2 more activities to reach your daily goal", Message(3, 5))
}
