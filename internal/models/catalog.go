package models

// ResourceType classifies how a resource is consumed
type ResourceType string

const (
	ResourceArticle ResourceType = "article"
	ResourceVideo   ResourceType = "video"
	ResourceAudio   ResourceType = "audio"
	ResourcePDF     ResourceType = "pdf"
)

// ResourceCategory groups resources by the concern they address
type ResourceCategory string

const (
	CategoryAnxiety    ResourceCategory = "anxiety"
	CategoryDepression ResourceCategory = "depression"
	CategoryStress     ResourceCategory = "stress"
	CategoryWellness   ResourceCategory = "wellness"
	CategoryGeneral    ResourceCategory = "general"
)

// Resource represents a read-only library entry (article, video, audio, pdf)
type Resource struct {
	ID          string           `yaml:"id" json:"id"`
	Title       string           `yaml:"title" json:"title"`
	Description string           `yaml:"description" json:"description"`
	Type        ResourceType     `yaml:"type" json:"type"`
	Category    ResourceCategory `yaml:"category" json:"category"`
	Duration    string           `yaml:"duration,omitempty" json:"duration,omitempty"` // display label, e.g. "8 min read"
	Rating      float64          `yaml:"rating" json:"rating"`                         // 0.0-5.0
	Featured    bool             `yaml:"featured" json:"featured"`
	URL         string           `yaml:"url,omitempty" json:"url,omitempty"`
}

// ActivityCategory groups self-care exercises by kind
type ActivityCategory string

const (
	ActivityBreathing   ActivityCategory = "breathing"
	ActivityMeditation  ActivityCategory = "meditation"
	ActivityMovement    ActivityCategory = "movement"
	ActivityJournaling  ActivityCategory = "journaling"
	ActivityMindfulness ActivityCategory = "mindfulness"
)

// ActivityLevel is the experience level an exercise is pitched at
type ActivityLevel string

const (
	LevelBeginner     ActivityLevel = "beginner"
	LevelIntermediate ActivityLevel = "intermediate"
	LevelAdvanced     ActivityLevel = "advanced"
)

// Activity represents a guided self-care exercise with a fixed duration
type Activity struct {
	ID              string           `yaml:"id" json:"id"`
	Title           string           `yaml:"title" json:"title"`
	Description     string           `yaml:"description" json:"description"`
	DurationMinutes int              `yaml:"duration_minutes" json:"duration_minutes"` // whole minutes, > 0
	Category        ActivityCategory `yaml:"category" json:"category"`
	Level           ActivityLevel    `yaml:"level" json:"level"`

	// Display defaults shipped with the catalog. The completion store
	// overlays live values when it has records for the activity.
	Completed bool `yaml:"completed,omitempty" json:"completed"`
	Streak    int  `yaml:"streak,omitempty" json:"streak"` // consecutive days, >= 0
}
