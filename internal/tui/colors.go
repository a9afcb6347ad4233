package tui

// Color constants for sooth TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#102A26" // Deep teal
	ColorBorder         = "#3A5550" // Muted sea-green

	// Text Colors
	ColorPrimaryText   = "#E8F2EE" // Primary text (titles, values)
	ColorSecondaryText = "#AFC7BF" // Secondary text - soft green-grey
	ColorDisabledText  = "#6D8379" // Disabled/muted text
	ColorPlaceholder   = "#AFC7BF" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Calm green theme)
	ColorAccentMain   = "#10B981" // Accent elements, active borders
	ColorAccentBright = "#6EE7B7" // Highlights, running timer

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Warnings
)
