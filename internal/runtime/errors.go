package runtime

import (
	"errors"

	"github.com/daybook-cli/daybook/internal/recognize"
)

// Common errors.
var (
	ErrEntryNotFound    = errors.New("entry not found")
	ErrAmbiguousID      = errors.New("id prefix matches more than one entry")
	ErrNothingToSay     = errors.New("journal entry needs text or an audio file")
	ErrTextAndAudio     = errors.New("journal entry takes text or audio, not both")
	ErrUnknownDish      = errors.New("dish not found in the bundled table")
	ErrNotConfigured    = errors.New("recognition service is not configured")
	ErrUnknownStatsKind = errors.New("unknown stats kind")
)

// Suggestions provides helpful suggestions for common errors.
var Suggestions = map[error]string{
	ErrEntryNotFound:    "Use 'daybook journal|money|food list' to see entry ids.",
	ErrAmbiguousID:      "Give more characters of the id.",
	ErrNothingToSay:     "Pass the entry text as arguments, or --audio FILE.",
	ErrTextAndAudio:     "Drop either the text or the --audio flag.",
	ErrUnknownDish:      "Use 'daybook food dishes' to browse the table, or pass --calories.",
	ErrNotConfigured:    "Set api_token and user_key with 'daybook config set', or export DAYBOOK_API_TOKEN and DAYBOOK_USER_KEY.",
	ErrUnknownStatsKind: "Valid kinds are 'money' and 'food'.",

	recognize.ErrImageTooLarge:   "The photo could not be compressed under 1 MiB. Try a smaller photo.",
	recognize.ErrUnreadableImage: "Pass a JPEG, PNG, GIF, or WebP photo.",
}

// GetSuggestion returns a suggestion for an error, if available.
func GetSuggestion(err error) string {
	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}
	var transportErr *recognize.TransportError
	if errors.As(err, &transportErr) {
		return "Check your network connection and api_url, then try again."
	}
	var parseErr *recognize.ParseError
	if errors.As(err, &parseErr) {
		return "The service did not recognize a dish. Log it manually with 'daybook food log'."
	}
	return ""
}

// FormatError formats an error with optional suggestion.
func FormatError(err error) string {
	msg := err.Error()
	if suggestion := GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}
