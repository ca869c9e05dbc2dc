package model

// Glyphs used by the interactive browser
// Using simple single-width characters for consistent terminal rendering
const (
	IconPrompt     = "›" // Query prompt
	IconIgnoreCase = "≈" // Case-insensitive mode
	IconExactCase  = "=" // Case-sensitive mode
	IconNoMatch    = "✗" // No matching lines
	IconSeparator  = "│" // Between line number and text
)
