package transcript

import (
	"strings"
	"sync"
	"time"
)

// EmptySentinel is returned by Render when no utterances were captured.
// Callers must treat it as "no data", not as transcript content.
const EmptySentinel = "No transcript available."

// Speaker identifies who produced an utterance.
type Speaker string

const (
	SpeakerCandidate   Speaker = "candidate"
	SpeakerInterviewer Speaker = "interviewer"
)

// Display returns the speaker tag used in rendered transcripts.
func (s Speaker) Display() string {
	switch s {
	case SpeakerCandidate:
		return "Candidate"
	case SpeakerInterviewer:
		return "Interviewer"
	}
	return string(s)
}

// Utterance is one speaker-attributed line of the conversation.
// Immutable once appended.
type Utterance struct {
	Timestamp time.Time `json:"timestamp"`
	Speaker   Speaker   `json:"speaker"`
	Text      string    `json:"text"`
}

// Log is the append-only, ordered utterance log for one interview session.
// Order reflects arrival order of normalized events; wall-clock reordering
// under network races is accepted, not reconciled.
type Log struct {
	mu         sync.Mutex
	utterances []Utterance
}

// NewLog creates an empty transcript log.
func NewLog() *Log {
	return &Log{}
}

// Append records an utterance. Empty or whitespace-only text is a no-op.
// Safe for concurrent use up to session teardown; no I/O on this path.
func (l *Log) Append(speaker Speaker, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	l.mu.Lock()
	l.utterances = append(l.utterances, Utterance{
		Timestamp: time.Now().UTC(),
		Speaker:   speaker,
		Text:      text,
	})
	l.mu.Unlock()
}

// TurnCount reports how many utterances have been recorded.
func (l *Log) TurnCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.utterances)
}

// Utterances returns a snapshot copy in store order.
func (l *Log) Utterances() []Utterance {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Utterance, len(l.utterances))
	copy(out, l.utterances)
	return out
}

// Render formats the transcript as "{Speaker}: {text}" lines separated by
// blank lines, or EmptySentinel when nothing was captured.
func (l *Log) Render() string {
	utts := l.Utterances()
	if len(utts) == 0 {
		return EmptySentinel
	}
	lines := make([]string, 0, len(utts))
	for _, u := range utts {
		lines = append(lines, u.Speaker.Display()+": "+u.Text)
	}
	return strings.Join(lines, "\n\n")
}
