package catalog

import "sooth/internal/models"

// Default returns the built-in catalog shipped with sooth.
func Default() *Catalog {
	return &Catalog{
		Resources: []models.Resource{
			{
				ID:          "1",
				Title:       "Understanding Anxiety: A Student's Guide",
				Description: "Learn about the common signs of anxiety and practical coping strategies for academic life.",
				Type:        models.ResourceArticle,
				Category:    models.CategoryAnxiety,
				Duration:    "8 min read",
				Rating:      4.8,
				Featured:    true,
			},
			{
				ID:          "2",
				Title:       "Guided Sleep Meditation",
				Description: "A calming 20-minute audio session to help you unwind and fall asleep faster.",
				Type:        models.ResourceAudio,
				Category:    models.CategoryWellness,
				Duration:    "20 min",
				Rating:      4.9,
				Featured:    true,
			},
			{
				ID:          "3",
				Title:       "Managing Exam Stress",
				Description: "Video workshop on keeping stress manageable during exam season.",
				Type:        models.ResourceVideo,
				Category:    models.CategoryStress,
				Duration:    "15 min",
				Rating:      4.6,
				Featured:    false,
			},
			{
				ID:          "4",
				Title:       "Recognizing Depression",
				Description: "When sadness becomes something more: signs to watch for and where to find help.",
				Type:        models.ResourceArticle,
				Category:    models.CategoryDepression,
				Duration:    "10 min read",
				Rating:      4.7,
				Featured:    false,
			},
			{
				ID:          "5",
				Title:       "Mindfulness Workbook",
				Description: "A printable workbook with daily mindfulness exercises and reflection prompts.",
				Type:        models.ResourcePDF,
				Category:    models.CategoryGeneral,
				Duration:    "",
				Rating:      4.5,
				Featured:    false,
			},
			{
				ID:          "6",
				Title:       "Building Healthy Sleep Habits",
				Description: "Evidence-based tips for a consistent sleep schedule and better rest.",
				Type:        models.ResourceArticle,
				Category:    models.CategoryWellness,
				Duration:    "6 min read",
				Rating:      4.4,
				Featured:    true,
			},
		},
		Activities: []models.Activity{
			{
				ID:              "1",
				Title:           "4-7-8 Breathing Exercise",
				Description:     "Inhale for 4 seconds, hold for 7, exhale for 8. A quick way to calm your nervous system.",
				DurationMinutes: 5,
				Category:        models.ActivityBreathing,
				Level:           models.LevelBeginner,
				Streak:          3,
			},
			{
				ID:              "2",
				Title:           "Morning Meditation",
				Description:     "Start the day with a short guided meditation to set a calm, focused tone.",
				DurationMinutes: 10,
				Category:        models.ActivityMeditation,
				Level:           models.LevelBeginner,
				Completed:       true,
				Streak:          7,
			},
			{
				ID:              "3",
				Title:           "Gratitude Journaling",
				Description:     "Write down three things you are grateful for and why they matter today.",
				DurationMinutes: 15,
				Category:        models.ActivityJournaling,
				Level:           models.LevelBeginner,
			},
			{
				ID:              "4",
				Title:           "Body Scan Relaxation",
				Description:     "Move attention slowly from head to toe, releasing tension as you go.",
				DurationMinutes: 20,
				Category:        models.ActivityMindfulness,
				Level:           models.LevelIntermediate,
				Streak:          1,
			},
			{
				ID:              "5",
				Title:           "Gentle Stretching",
				Description:     "Light movement to loosen up your body after long study sessions.",
				DurationMinutes: 10,
				Category:        models.ActivityMovement,
				Level:           models.LevelBeginner,
			},
		},
	}
}
