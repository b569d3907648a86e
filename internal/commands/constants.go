package commands

// Common constants used across command implementations
const (
	// OptionsUsage is the usage pattern shown for flag-only commands
	OptionsUsage = "[OPTIONS]"

	// HistoryDefaultLimit is how many journal entries history shows by default
	HistoryDefaultLimit = 10
)
