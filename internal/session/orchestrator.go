package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/tacktile/interview-agent/internal/archive"
	"github.com/tacktile/interview-agent/internal/evaluation"
	"github.com/tacktile/interview-agent/internal/metrics"
	"github.com/tacktile/interview-agent/internal/room"
	"github.com/tacktile/interview-agent/internal/transcript"
)

// State is the orchestrator's lifecycle position. There is no path back to
// Active: termination is final.
type State int

const (
	StateNotStarted State = iota
	StateActive
	StateEvaluating
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateActive:
		return "active"
	case StateEvaluating:
		return "evaluating"
	case StateClosed:
		return "closed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Responder generates the interviewer's next reply for a candidate turn.
type Responder interface {
	Reply(ctx context.Context, userMessage string) (string, error)
}

// Voice delivers interviewer text to the room for playback.
type Voice interface {
	Say(text string) error
}

// Config wires one session's collaborators. Responder, Voice, Recorder and
// Report are optional.
type Config struct {
	Session   *Session
	Engine    *evaluation.Engine
	Store     *evaluation.Store
	Recorder  *archive.Recorder
	Responder Responder
	Voice     Voice
	Report    io.Writer // summary sink; defaults to stdout
}

// Orchestrator sequences one interview session: transcript capture while
// active, exactly one evaluation run at termination, then closed.
// It implements room.Subscriber.
type Orchestrator struct {
	cfg Config

	mu                  sync.Mutex
	state               State
	evaluationTriggered bool

	closeOnce sync.Once
	done      chan struct{}
	evalErr   error
}

// NewOrchestrator creates an orchestrator for one session.
func NewOrchestrator(cfg Config) *Orchestrator {
	if cfg.Report == nil {
		cfg.Report = os.Stdout
	}
	return &Orchestrator{cfg: cfg, done: make(chan struct{})}
}

// Start transitions NotStarted -> Active and, when a responder is wired,
// sends the opening interviewer turn.
func (o *Orchestrator) Start(ctx context.Context, greetingInstruction string) {
	o.mu.Lock()
	if o.state != StateNotStarted {
		o.mu.Unlock()
		return
	}
	o.state = StateActive
	o.mu.Unlock()

	metrics.SessionsTotal.Inc()
	metrics.SessionsActive.Inc()
	slog.Info("interview session started", "session_id", o.cfg.Session.ID,
		"position", o.cfg.Session.Candidate.Get("position", ""))

	if o.cfg.Responder != nil && greetingInstruction != "" {
		go o.respond(ctx, greetingInstruction)
	}
}

// State returns the current lifecycle state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Err reports a persistence failure from the evaluation run, if any.
// Valid after Wait returns.
func (o *Orchestrator) Err() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.evalErr
}

// Wait blocks until the session is closed (evaluation finished and
// persisted, or closed without data). Guarantees the process does not exit
// before the artifact is on disk.
func (o *Orchestrator) Wait() {
	<-o.done
}

// OnConversationItem normalizes a conversation event into the transcript.
// Malformed or empty items are dropped; capture never aborts the session.
func (o *Orchestrator) OnConversationItem(item room.ConversationItem) {
	speaker, ok := item.Speaker()
	if !ok {
		metrics.EventsDropped.WithLabelValues("role").Inc()
		return
	}
	text := strings.TrimSpace(item.Text())
	if text == "" {
		return
	}

	o.cfg.Session.Log.Append(speaker, text)
	metrics.Utterances.WithLabelValues(string(speaker)).Inc()
	o.cfg.Recorder.Utterance(string(speaker), text)

	if speaker == transcript.SpeakerCandidate {
		o.enrich(text)
		if o.cfg.Responder != nil {
			go o.respond(context.Background(), text)
		}
	}
}

// OnParticipantDisconnected treats a standard human participant leaving as
// a termination signal. Automated participants (SIP bridges, agents) never
// end the session.
func (o *Orchestrator) OnParticipantDisconnected(p room.Participant) {
	if !p.IsHuman() {
		slog.Info("non-human participant left", "identity", p.Identity, "kind", p.Kind)
		return
	}
	slog.Info("participant left", "identity", p.Identity)
	o.triggerEvaluation("participant_disconnected")
}

// OnDisconnected treats room disconnection as a termination signal.
func (o *Orchestrator) OnDisconnected() {
	o.triggerEvaluation("room_disconnected")
}

// Complete is the explicit-completion termination signal.
func (o *Orchestrator) Complete() {
	o.triggerEvaluation("completed")
}

// triggerEvaluation is the single atomic decision point: the first
// termination signal observed while Active flips the guard and schedules
// exactly one evaluation run; every later signal is a silent no-op.
func (o *Orchestrator) triggerEvaluation(reason string) {
	o.mu.Lock()
	if o.evaluationTriggered || o.state != StateActive {
		o.mu.Unlock()
		return
	}

	if o.cfg.Session.Log.TurnCount() == 0 && o.cfg.Session.Notes.Count() == 0 {
		o.state = StateClosed
		o.mu.Unlock()
		slog.Warn("session ended with no data, skipping evaluation",
			"session_id", o.cfg.Session.ID, "reason", reason)
		o.finish()
		return
	}

	o.evaluationTriggered = true
	o.state = StateEvaluating
	o.mu.Unlock()

	slog.Info("session ended, scheduling evaluation",
		"session_id", o.cfg.Session.ID, "reason", reason,
		"turns", o.cfg.Session.Log.TurnCount())
	go o.runEvaluation()
}

func (o *Orchestrator) runEvaluation() {
	defer func() {
		o.mu.Lock()
		o.state = StateClosed
		o.mu.Unlock()
		o.finish()
	}()

	s := o.cfg.Session
	transcriptText := s.Log.Render()
	if transcriptText == transcript.EmptySentinel {
		slog.Warn("limited transcript data, evaluating from notes alone", "session_id", s.ID)
	}

	candidate := s.Candidate.Get("name", "Unknown Candidate")
	position := s.Candidate.Get("position", "Unknown Position")

	result := o.cfg.Engine.Evaluate(context.Background(), evaluation.Request{
		CandidateName:   candidate,
		Position:        position,
		Transcript:      transcriptText,
		Notes:           s.Notes.All(),
		DurationMinutes: s.DurationMinutes(),
		CandidateInfo:   s.Candidate.Snapshot(),
	})

	path, err := o.cfg.Store.Save(result)
	if err != nil {
		// Losing the artifact defeats the system's purpose; surface it.
		o.mu.Lock()
		o.evalErr = err
		o.mu.Unlock()
		slog.Error("evaluation artifact not persisted", "session_id", s.ID, "error", err)
		o.cfg.Recorder.Evaluation(result.Recommendation.Decision,
			result.Recommendation.RoleFitPercentage, "", "persist_failed")
		o.cfg.Recorder.End(candidate, position)
		return
	}

	slog.Info("evaluation saved", "session_id", s.ID, "path", path,
		"decision", result.Recommendation.Decision,
		"role_fit", result.Recommendation.RoleFitPercentage)
	fmt.Fprintln(o.cfg.Report, evaluation.RenderSummary(result))

	o.cfg.Recorder.Evaluation(result.Recommendation.Decision,
		result.Recommendation.RoleFitPercentage, path, "ok")
	o.cfg.Recorder.End(candidate, position)
}

func (o *Orchestrator) finish() {
	o.closeOnce.Do(func() {
		metrics.SessionsActive.Dec()
		close(o.done)
	})
}

// enrich applies best-effort candidate fact extraction to a candidate turn.
func (o *Orchestrator) enrich(text string) {
	if o.cfg.Session.Candidate.Has("name") {
		return
	}
	if name, ok := ExtractName(text); ok {
		o.cfg.Session.Candidate.Set("name", name)
		slog.Info("candidate name detected", "session_id", o.cfg.Session.ID, "name", name)
	}
}

// respond generates and delivers one interviewer turn. Fire-and-forget:
// failures are logged, never fatal to capture.
func (o *Orchestrator) respond(ctx context.Context, userMessage string) {
	reply, err := o.cfg.Responder.Reply(ctx, userMessage)
	if err != nil {
		slog.Warn("interviewer reply failed", "session_id", o.cfg.Session.ID, "error", err)
		return
	}
	if o.cfg.Voice == nil {
		return
	}
	if err = o.cfg.Voice.Say(reply); err != nil {
		slog.Warn("interviewer reply not delivered", "session_id", o.cfg.Session.ID, "error", err)
	}
}
