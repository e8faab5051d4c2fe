package models

import "github.com/google/uuid"

// LogType tags a log entry for styling.
type LogType string

const (
	LogInfo    LogType = "info"
	LogSuccess LogType = "success"
	LogFailure LogType = "failure"
	LogCombat  LogType = "combat"
	LogRomance LogType = "romance"
	LogMail    LogType = "mail"
	LogNPC     LogType = "npc"
)

// LogEntry is one line of the player-facing log. Entries are never mutated.
type LogEntry struct {
	ID   string  `yaml:"id"`
	Text string  `yaml:"text"`
	Type LogType `yaml:"type"`
}

// DefaultLogCapacity is how many entries a LogBook keeps.
const DefaultLogCapacity = 20

// LogBook keeps the most recent entries, oldest first.
type LogBook struct {
	capacity int
	entries  []LogEntry
}

func NewLogBook(capacity int) *LogBook {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	return &LogBook{capacity: capacity}
}

// Add appends an entry, evicting the oldest one when full.
func (b *LogBook) Add(text string, typ LogType) LogEntry {
	e := LogEntry{ID: uuid.NewString(), Text: text, Type: typ}
	b.entries = append(b.entries, e)
	if over := len(b.entries) - b.capacity; over > 0 {
		b.entries = append(b.entries[:0:0], b.entries[over:]...)
	}
	return e
}

// Entries returns a copy of the retained entries.
func (b *LogBook) Entries() []LogEntry {
	return append([]LogEntry(nil), b.entries...)
}

func (b *LogBook) Len() int { return len(b.entries) }
