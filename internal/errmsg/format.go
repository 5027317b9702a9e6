// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	// Library
	OpLibraryScan    Op = "scan library"
	OpLibraryLoad    Op = "load library"
	OpLibraryRebuild Op = "rebuild search index"

	// Metadata
	OpMetadataImport Op = "import metadata"

	// Suggestions
	OpSuggest Op = "search suggestions"

	// Playlist
	OpPlaylistMove   Op = "move playlist item"
	OpPlaylistRemove Op = "remove playlist item"
	OpPlaylistAdd    Op = "add to playlist"
	OpPlaylistLoad   Op = "load playlist"
	OpPlaylistSave   Op = "save playlist"

	// Playback
	OpPlaybackStart Op = "start playback"

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
