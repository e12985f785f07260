package transcript

import (
	"strings"
	"sync"
	"time"
)

// Note is a timestamped interviewer observation. Notes are append-only and
// never mutated; they serve as fallback evidence when the transcript is thin.
type Note struct {
	Timestamp time.Time `json:"timestamp"`
	Category  string    `json:"category"`
	Content   string    `json:"note"`
	Stage     string    `json:"stage"`
}

// Notes is the append-only note log for one session.
type Notes struct {
	mu    sync.Mutex
	notes []Note
}

// NewNotes creates an empty note log.
func NewNotes() *Notes {
	return &Notes{}
}

// Add records a note under the given category and interview stage.
func (n *Notes) Add(category, content, stage string) Note {
	if category == "" {
		category = "general"
	}
	note := Note{
		Timestamp: time.Now().UTC(),
		Category:  category,
		Content:   content,
		Stage:     stage,
	}
	n.mu.Lock()
	n.notes = append(n.notes, note)
	n.mu.Unlock()
	return note
}

// Count reports how many notes were recorded.
func (n *Notes) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.notes)
}

// All returns a snapshot copy in chronological order.
func (n *Notes) All() []Note {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Note, len(n.notes))
	copy(out, n.notes)
	return out
}

// FormatNotes renders notes as a flat chronological block, one
// "[CATEGORY - STAGE] content" line each, for prompt embedding.
func FormatNotes(notes []Note) string {
	if len(notes) == 0 {
		return "No notes recorded."
	}
	lines := make([]string, 0, len(notes))
	for _, note := range notes {
		lines = append(lines, "["+strings.ToUpper(note.Category)+" - "+note.Stage+"] "+note.Content)
	}
	return strings.Join(lines, "\n")
}
