// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"

	// File operations
	OpOpenFile   Op = "open audio file"
	OpOpenFolder Op = "open folder"

	// Metadata
	OpMetadataRead Op = "read track metadata"

	// Favorites
	OpFavoriteAdd    Op = "add favorite"
	OpFavoriteRemove Op = "remove favorite"
	OpFavoriteList   Op = "load favorites"

	// Accounts
	OpRegister Op = "register account"
	OpLogin    Op = "log in"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
