package session

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tacktile/interview-agent/internal/metrics"
	"github.com/tacktile/interview-agent/internal/prompts"
	"github.com/tacktile/interview-agent/internal/transcript"
)

// Question is one interviewer question tracked to avoid repetition.
type Question struct {
	Timestamp time.Time `json:"timestamp"`
	Question  string    `json:"question"`
	Stage     string    `json:"stage"`
	Category  string    `json:"category,omitempty"`
}

// Session is the aggregate root for one interview: transcript, notes,
// candidate facts, stage, and timing. Exactly one per interview; nothing is
// shared across sessions.
type Session struct {
	ID        string
	Log       *transcript.Log
	Notes     *transcript.Notes
	Candidate *transcript.CandidateInfo
	StartTime time.Time

	mu        sync.Mutex
	stage     string
	questions []Question
}

// New creates a session pre-seeded from the interview configuration.
func New(cfg prompts.InterviewConfig) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		Log:       transcript.NewLog(),
		Notes:     transcript.NewNotes(),
		Candidate: transcript.NewCandidateInfo(),
		StartTime: time.Now().UTC(),
		stage:     "introduction",
	}
	s.Candidate.Set("position", cfg.Position)
	if cfg.Company != "" {
		s.Candidate.Set("company", cfg.Company)
	}
	if cfg.Department != "" {
		s.Candidate.Set("department", cfg.Department)
	}
	if len(cfg.KeySkills) > 0 {
		s.Candidate.Set("key_skills", strings.Join(cfg.KeySkills, ", "))
	}
	return s
}

// Stage returns the current interview phase.
func (s *Session) Stage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// SetStage advances the interview phase. Free text, monotonically advanced
// by the caller, not validated against a fixed state machine.
func (s *Session) SetStage(stage string) {
	s.mu.Lock()
	old := s.stage
	s.stage = stage
	s.mu.Unlock()
	slog.Info("interview stage changed", "session_id", s.ID, "from", old, "to", stage)
}

// MarkQuestionAsked tracks a question so the interviewer avoids repeats.
func (s *Session) MarkQuestionAsked(question, category string) {
	q := Question{
		Timestamp: time.Now().UTC(),
		Question:  question,
		Stage:     s.Stage(),
		Category:  category,
	}
	s.mu.Lock()
	s.questions = append(s.questions, q)
	s.mu.Unlock()
}

// QuestionsAsked returns a snapshot of the asked-question log.
func (s *Session) QuestionsAsked() []Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// RecordNote appends a note tagged with the current stage.
func (s *Session) RecordNote(category, content string) transcript.Note {
	note := s.Notes.Add(category, content, s.Stage())
	metrics.NotesRecorded.Inc()
	return note
}

// DurationMinutes is the elapsed interview time, floored to whole minutes.
func (s *Session) DurationMinutes() int {
	return int(time.Since(s.StartTime) / time.Minute)
}
