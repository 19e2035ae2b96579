package model

// Centralized icons for the UI components
const (
	IconFavorite    = "♥" // Heart (in favorites)
	IconNotFavorite = "♡" // Hollow heart
	IconRemove      = "✗" // Thin X (remove)
	IconCopied      = "✓"
	IconEmpty       = "∅" // No results
	IconMissing     = "?" // Glyph could not be derived
)
