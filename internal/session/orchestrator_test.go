package session

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacktile/interview-agent/internal/evaluation"
	"github.com/tacktile/interview-agent/internal/prompts"
	"github.com/tacktile/interview-agent/internal/room"
)

type countingClient struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (c *countingClient) Complete(ctx context.Context, system, user string) (string, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	if c.err != nil {
		return "", c.err
	}
	return `{"overall_assessment":{"hire_recommendation":"Hire"},"recommendation":{"decision":"Hire","role_fit_percentage":80}}`, nil
}

func (c *countingClient) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func newTestOrchestrator(t *testing.T, client evaluation.ChatClient) (*Orchestrator, *evaluation.Store, *bytes.Buffer) {
	t.Helper()
	store := evaluation.NewStore(t.TempDir())
	report := &bytes.Buffer{}
	orch := NewOrchestrator(Config{
		Session: New(prompts.ConfigFor("AI Developer")),
		Engine:  evaluation.NewEngine(client),
		Store:   store,
		Report:  report,
	})
	return orch, store, report
}

func userItem(text string) room.ConversationItem {
	return room.ConversationItem{Role: room.RoleUser, Content: room.Content{{Text: text}}}
}

func agentItem(text string) room.ConversationItem {
	return room.ConversationItem{Role: room.RoleAssistant, Content: room.Content{{Text: text}}}
}

func TestOrchestratorFullSession(t *testing.T) {
	client := &countingClient{}
	orch, store, report := newTestOrchestrator(t, client)

	orch.Start(context.Background(), "")
	require.Equal(t, StateActive, orch.State())

	orch.OnConversationItem(agentItem("Hello, please introduce yourself."))
	orch.OnConversationItem(userItem("Hi, my name is Priya, applying as an AI developer."))
	orch.OnConversationItem(agentItem("Tell me about a recent project."))
	orch.OnConversationItem(userItem("I built a streaming transcription service in Go."))

	orch.Complete()
	orch.Wait()

	assert.Equal(t, StateClosed, orch.State())
	require.NoError(t, orch.Err())
	assert.Equal(t, 1, client.count())

	names, err := store.List()
	require.NoError(t, err)
	require.Len(t, names, 1)
	// Name heuristic fed the artifact file name.
	assert.True(t, strings.HasPrefix(names[0], "Priya_AI_Developer_"))

	assert.Contains(t, report.String(), "INTERVIEW EVALUATION REPORT")
	assert.Contains(t, report.String(), "Recommendation: Hire")
}

func TestOrchestratorEvaluatesAtMostOnce(t *testing.T) {
	client := &countingClient{}
	orch, store, _ := newTestOrchestrator(t, client)

	orch.Start(context.Background(), "")
	orch.OnConversationItem(userItem("hello"))

	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); orch.Complete() }()
	go func() { defer wg.Done(); orch.OnDisconnected() }()
	go func() {
		defer wg.Done()
		orch.OnParticipantDisconnected(room.Participant{Identity: "cand"})
	}()
	wg.Wait()
	orch.Wait()

	assert.Equal(t, 1, client.count())
	names, err := store.List()
	require.NoError(t, err)
	assert.Len(t, names, 1)
}

func TestOrchestratorSkipsEvaluationWithoutData(t *testing.T) {
	client := &countingClient{}
	orch, store, _ := newTestOrchestrator(t, client)

	orch.Start(context.Background(), "")
	orch.OnDisconnected()
	orch.Wait()

	assert.Equal(t, StateClosed, orch.State())
	assert.Zero(t, client.count())
	names, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestOrchestratorNotesAloneTriggerEvaluation(t *testing.T) {
	client := &countingClient{}
	orch, store, _ := newTestOrchestrator(t, client)

	orch.Start(context.Background(), "")
	orch.cfg.Session.RecordNote("general", "candidate joined but mic failed")
	orch.Complete()
	orch.Wait()

	assert.Equal(t, 1, client.count())
	names, err := store.List()
	require.NoError(t, err)
	assert.Len(t, names, 1)
}

func TestOrchestratorFallbackStillPersists(t *testing.T) {
	client := &countingClient{err: errors.New("model offline")}
	orch, store, report := newTestOrchestrator(t, client)

	orch.Start(context.Background(), "")
	orch.OnConversationItem(userItem("hello"))
	orch.Complete()
	orch.Wait()

	require.NoError(t, orch.Err())
	names, err := store.List()
	require.NoError(t, err)
	require.Len(t, names, 1)

	result, err := store.Load(names[0])
	require.NoError(t, err)
	assert.Equal(t, "Needs Review", result.Recommendation.Decision)
	assert.Equal(t, 50, result.Recommendation.RoleFitPercentage)
	assert.Contains(t, report.String(), "Recommendation: Needs Review")
}

func TestOrchestratorIgnoresEventsBeforeStart(t *testing.T) {
	client := &countingClient{}
	orch, _, _ := newTestOrchestrator(t, client)

	// Termination signals before Start are no-ops; the session never opened.
	orch.Complete()
	orch.OnDisconnected()
	assert.Equal(t, StateNotStarted, orch.State())
	assert.Zero(t, client.count())
}

func TestOrchestratorDropsNonSpeakerItems(t *testing.T) {
	client := &countingClient{}
	orch, _, _ := newTestOrchestrator(t, client)
	orch.Start(context.Background(), "")

	orch.OnConversationItem(room.ConversationItem{Role: "system", Content: room.Content{{Text: "internal"}}})
	orch.OnConversationItem(userItem("   "))

	assert.Equal(t, 0, orch.cfg.Session.Log.TurnCount())
}

func TestOrchestratorIgnoresNonHumanDisconnect(t *testing.T) {
	client := &countingClient{}
	orch, _, _ := newTestOrchestrator(t, client)
	orch.Start(context.Background(), "")
	orch.OnConversationItem(userItem("hello"))

	orch.OnParticipantDisconnected(room.Participant{Identity: "agent", Kind: room.ParticipantKindAgent})
	assert.Equal(t, StateActive, orch.State())
	assert.Zero(t, client.count())

	orch.Complete()
	orch.Wait()
	assert.Equal(t, 1, client.count())
}

func TestOrchestratorCandidateNameEnrichment(t *testing.T) {
	client := &countingClient{}
	orch, _, _ := newTestOrchestrator(t, client)
	orch.Start(context.Background(), "")

	orch.OnConversationItem(userItem("Good morning, I am Jordan."))
	assert.Equal(t, "Jordan", orch.cfg.Session.Candidate.Get("name", ""))

	// First detection wins.
	orch.OnConversationItem(userItem("my name is Robot"))
	assert.Equal(t, "Jordan", orch.cfg.Session.Candidate.Get("name", ""))
}

func TestOrchestratorWaitReturnsPromptly(t *testing.T) {
	client := &countingClient{}
	orch, _, _ := newTestOrchestrator(t, client)
	orch.Start(context.Background(), "")
	orch.OnConversationItem(userItem("hello"))
	orch.Complete()

	done := make(chan struct{})
	go func() { orch.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("orchestrator did not close in time")
	}
}
