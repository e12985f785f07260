package evaluation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/tacktile/interview-agent/internal/metrics"
	"github.com/tacktile/interview-agent/internal/transcript"
)

// ChatClient produces one structured completion for a system/user message
// pair. Implementations must request JSON-constrained output.
type ChatClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Engine turns a completed interview into an evaluation artifact. The
// external call is attempted exactly once; any failure is absorbed into a
// deterministic fallback assessment, never propagated upward.
type Engine struct {
	client ChatClient
}

// NewEngine creates an evaluation engine on top of a chat client.
func NewEngine(client ChatClient) *Engine {
	return &Engine{client: client}
}

// Evaluate generates the complete evaluation for one interview. It does not
// return an error: on any model or parse failure the result carries the
// fallback assessment with a low-confidence marker for human review.
func (e *Engine) Evaluate(ctx context.Context, req Request) *Result {
	slog.Info("starting evaluation", "candidate", req.CandidateName, "position", req.Position)

	start := time.Now()
	assessment := e.generateAssessment(ctx, req)
	metrics.EvaluationDuration.Observe(time.Since(start).Seconds())

	now := time.Now().UTC().Format(time.RFC3339)
	candidateInfo := req.CandidateInfo
	if candidateInfo == nil {
		candidateInfo = map[string]string{}
	}
	notes := req.Notes
	if notes == nil {
		notes = []transcript.Note{}
	}

	result := &Result{
		Metadata: Metadata{
			CandidateName:       req.CandidateName,
			Position:            req.Position,
			InterviewDate:       now,
			DurationMinutes:     req.DurationMinutes,
			Evaluator:           EvaluatorName,
			EvaluationTimestamp: now,
		},
		CandidateInfo:        candidateInfo,
		OverallAssessment:    assessment.OverallAssessment,
		DetailedEvaluation:   assessment.DetailedEvaluation,
		Ratings:              assessment.Ratings,
		Strengths:            assessment.Strengths,
		Weaknesses:           assessment.Weaknesses,
		RedFlags:             assessment.RedFlags,
		KeyHighlights:        assessment.KeyHighlights,
		Recommendation:       assessment.Recommendation,
		FeedbackForCandidate: assessment.FeedbackForCandidate,
		InterviewNotes:       notes,
		TranscriptSummary:    assessment.TranscriptSummary,
	}
	return result
}

func (e *Engine) generateAssessment(ctx context.Context, req Request) Assessment {
	raw, err := e.client.Complete(ctx, SystemPrompt, BuildPrompt(req))
	if err != nil {
		metrics.EvaluationFallbacks.WithLabelValues("request").Inc()
		slog.Error("evaluation request failed, using fallback assessment", "error", err)
		return fallbackAssessment(len(req.Notes))
	}

	var assessment Assessment
	if err = json.Unmarshal([]byte(raw), &assessment); err != nil {
		metrics.EvaluationFallbacks.WithLabelValues("parse").Inc()
		slog.Error("evaluation response unparseable, using fallback assessment",
			"error", fmt.Errorf("decode assessment: %w", err))
		return fallbackAssessment(len(req.Notes))
	}

	assessment.normalize()
	return assessment
}

// fallbackAssessment is the fixed minimal assessment used when the model
// call or its parsing fails. Deterministic apart from the note count.
func fallbackAssessment(noteCount int) Assessment {
	a := Assessment{
		OverallAssessment: OverallAssessment{
			Summary:            "Evaluation based on interview notes",
			HireRecommendation: "Needs Review",
			ConfidenceLevel:    "Low",
			Reasoning:          "AI evaluation unavailable, manual review required",
		},
		Ratings:  map[string]int{"overall_score": 5},
		RedFlags: []string{"AI evaluation failed - manual review required"},
		Recommendation: Recommendation{
			Decision:          "Needs Review",
			NextSteps:         "Manual evaluation required",
			RoleFitPercentage: 50,
		},
		FeedbackForCandidate: "Thank you for your time. Our team will review your interview.",
		TranscriptSummary:    fmt.Sprintf("Interview conducted with %d notes recorded.", noteCount),
	}
	a.normalize()
	return a
}
