package evaluation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacktile/interview-agent/internal/transcript"
)

type fakeClient struct {
	response string
	err      error
	calls    int
	lastUser string
}

func (f *fakeClient) Complete(ctx context.Context, system, user string) (string, error) {
	f.calls++
	f.lastUser = user
	return f.response, f.err
}

func TestEvaluateFallbackOnRequestError(t *testing.T) {
	client := &fakeClient{err: errors.New("api down")}
	engine := NewEngine(client)

	result := engine.Evaluate(context.Background(), Request{
		CandidateName: "Alex",
		Position:      "Software Engineer",
		Transcript:    "Candidate: hello",
		Notes: []transcript.Note{
			{Category: "general", Content: "arrived on time", Stage: "introduction"},
		},
		DurationMinutes: 12,
	})

	require.NotNil(t, result)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "Needs Review", result.OverallAssessment.HireRecommendation)
	assert.Equal(t, "Low", result.OverallAssessment.ConfidenceLevel)
	assert.Equal(t, "Needs Review", result.Recommendation.Decision)
	assert.Equal(t, 50, result.Recommendation.RoleFitPercentage)
	assert.Equal(t, 5, result.Ratings["overall_score"])
	assert.Equal(t, []string{"AI evaluation failed - manual review required"}, result.RedFlags)
	assert.Equal(t, "Interview conducted with 1 notes recorded.", result.TranscriptSummary)
}

func TestEvaluateFallbackOnUnparseableResponse(t *testing.T) {
	client := &fakeClient{response: "I think the candidate was great!"}
	engine := NewEngine(client)

	result := engine.Evaluate(context.Background(), Request{CandidateName: "Alex"})

	assert.Equal(t, "Needs Review", result.Recommendation.Decision)
	assert.Equal(t, 50, result.Recommendation.RoleFitPercentage)
}

func TestEvaluateParsesModelResponse(t *testing.T) {
	client := &fakeClient{response: `{
		"overall_assessment": {
			"summary": "Strong showing",
			"hire_recommendation": "Hire",
			"confidence_level": "High",
			"reasoning": "Consistent depth"
		},
		"ratings": {"overall_score": 8, "technical_competency": 9},
		"strengths": ["clear communication"],
		"recommendation": {
			"decision": "Hire",
			"next_steps": "System design round",
			"role_fit_percentage": 85
		}
	}`}
	engine := NewEngine(client)

	result := engine.Evaluate(context.Background(), Request{
		CandidateName:   "Priya Sharma",
		Position:        "AI Developer",
		DurationMinutes: 20,
	})

	assert.Equal(t, "Hire", result.OverallAssessment.HireRecommendation)
	assert.Equal(t, 85, result.Recommendation.RoleFitPercentage)
	assert.Equal(t, 8, result.Ratings["overall_score"])

	// Metadata is stamped by the engine, not the model.
	assert.Equal(t, "Priya Sharma", result.Metadata.CandidateName)
	assert.Equal(t, "AI Developer", result.Metadata.Position)
	assert.Equal(t, 20, result.Metadata.DurationMinutes)
	assert.Equal(t, EvaluatorName, result.Metadata.Evaluator)
	assert.NotEmpty(t, result.Metadata.EvaluationTimestamp)
}

func TestEvaluateNormalizesMissingCollections(t *testing.T) {
	client := &fakeClient{response: `{"overall_assessment":{"hire_recommendation":"Maybe"}}`}
	engine := NewEngine(client)

	result := engine.Evaluate(context.Background(), Request{})

	assert.NotNil(t, result.DetailedEvaluation)
	assert.NotNil(t, result.Ratings)
	assert.NotNil(t, result.Strengths)
	assert.NotNil(t, result.Weaknesses)
	assert.NotNil(t, result.RedFlags)
	assert.NotNil(t, result.KeyHighlights)
	assert.NotNil(t, result.Recommendation.ConcernsToAddress)
	assert.NotNil(t, result.CandidateInfo)
	assert.NotNil(t, result.InterviewNotes)
}

func TestEvaluatePassesNotesAndTranscriptToPrompt(t *testing.T) {
	client := &fakeClient{err: errors.New("unused")}
	engine := NewEngine(client)

	engine.Evaluate(context.Background(), Request{
		Transcript: "Candidate: I built a Go service",
		Notes: []transcript.Note{
			{Category: "technical", Content: "solid concurrency answer", Stage: "technical"},
		},
	})

	assert.Contains(t, client.lastUser, "Candidate: I built a Go service")
	assert.Contains(t, client.lastUser, "[TECHNICAL - technical] solid concurrency answer")
}
