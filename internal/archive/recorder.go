package archive

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type recordMsg struct {
	kind string // "utterance", "evaluation", "end"
	utt  Utterance
	eval Evaluation
	// end fields
	candidate string
	position  string
}

// Recorder writes archive rows asynchronously via a buffered channel so the
// event path never blocks on the database.
// All methods are nil-safe (no-op on nil receiver).
type Recorder struct {
	store     *Store
	sessionID string
	ch        chan recordMsg
	done      chan struct{}
}

// NewRecorder creates a recorder bound to one session, inserting the session
// row synchronously. Must call Close when done.
func NewRecorder(store *Store, sessionID, candidate, position string) (*Recorder, error) {
	if err := store.CreateSession(sessionID, candidate, position); err != nil {
		return nil, err
	}
	r := &Recorder{
		store:     store,
		sessionID: sessionID,
		ch:        make(chan recordMsg, 64),
		done:      make(chan struct{}),
	}
	go r.drain()
	return r, nil
}

func (r *Recorder) drain() {
	defer close(r.done)
	for msg := range r.ch {
		r.handle(msg)
	}
}

func (r *Recorder) handle(m recordMsg) {
	var err error
	switch m.kind {
	case "utterance":
		err = r.store.AddUtterance(m.utt)
	case "evaluation":
		err = r.store.AddEvaluation(m.eval)
	case "end":
		err = r.store.EndSession(r.sessionID, m.candidate, m.position)
	default:
		return
	}
	if err != nil {
		slog.Warn("archive write failed", "kind", m.kind, "error", err)
	}
}

// Utterance queues one transcript line for archival.
func (r *Recorder) Utterance(speaker, text string) {
	if r == nil {
		return
	}
	r.ch <- recordMsg{kind: "utterance", utt: Utterance{
		ID:        uuid.NewString(),
		SessionID: r.sessionID,
		Speaker:   speaker,
		Text:      text,
		SpokenAt:  time.Now().UTC(),
	}}
}

// Evaluation queues the evaluation outcome for archival.
func (r *Recorder) Evaluation(decision string, roleFit int, artifactPath, status string) {
	if r == nil {
		return
	}
	r.ch <- recordMsg{kind: "evaluation", eval: Evaluation{
		ID:           uuid.NewString(),
		SessionID:    r.sessionID,
		Decision:     decision,
		RoleFit:      roleFit,
		ArtifactPath: artifactPath,
		Status:       status,
	}}
}

// End stamps the session's end time and final candidate identity.
func (r *Recorder) End(candidate, position string) {
	if r == nil {
		return
	}
	r.ch <- recordMsg{kind: "end", candidate: candidate, position: position}
}

// Close drains pending writes and stops the background goroutine.
func (r *Recorder) Close() {
	if r == nil {
		return
	}
	close(r.ch)
	<-r.done
}
