package model

import (
	"strings"
	"time"
)

// JournalEntry is a single journal record, either free text or a reference
// to a recorded audio file. The input layer creates exactly one of the two;
// the model itself does not forbid other combinations.
type JournalEntry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Text      string    `json:"text,omitempty"`
	Audio     string    `json:"audio,omitempty"`
}

// EntityID returns the unique identifier of the entry.
func (e JournalEntry) EntityID() string {
	return e.ID
}

// EntityTime returns the creation timestamp of the entry.
func (e JournalEntry) EntityTime() time.Time {
	return e.CreatedAt
}

// HasAudio returns true if the entry references an audio recording.
func (e JournalEntry) HasAudio() bool {
	return e.Audio != ""
}

// Preview returns the first line of the text, truncated to max runes.
func (e JournalEntry) Preview(max int) string {
	line := e.Text
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	runes := []rune(line)
	if len(runes) > max {
		return string(runes[:max-1]) + "…"
	}
	return line
}

// NewJournalEntry creates a text journal entry.
func NewJournalEntry(text string, at time.Time) JournalEntry {
	return JournalEntry{
		ID:        NewID(),
		CreatedAt: at,
		Text:      text,
	}
}

// NewAudioJournalEntry creates a journal entry referencing an audio file.
func NewAudioJournalEntry(audio string, at time.Time) JournalEntry {
	return JournalEntry{
		ID:        NewID(),
		CreatedAt: at,
		Audio:     audio,
	}
}
