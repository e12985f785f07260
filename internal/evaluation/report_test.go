package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSummaryComplete(t *testing.T) {
	out := RenderSummary(&Result{
		Metadata: Metadata{
			CandidateName:   "Jane Doe",
			Position:        "AI Developer",
			InterviewDate:   "2026-08-30T14:00:00Z",
			DurationMinutes: 22,
		},
		OverallAssessment: OverallAssessment{
			Summary:            "Strong candidate overall.",
			HireRecommendation: "Hire",
			ConfidenceLevel:    "High",
			Reasoning:          "Deep technical answers.",
		},
		Ratings: map[string]int{
			"overall_score":        8,
			"technical_competency": 9,
			"soft_skills":          7,
			"experience_match":     8,
			"growth_potential":     9,
		},
		Strengths:  []string{"clear communication", "system design depth"},
		Weaknesses: []string{"limited cloud exposure"},
		RedFlags:   []string{"inconsistent dates on resume"},
		Recommendation: Recommendation{
			Decision:          "Hire",
			NextSteps:         "Schedule final round",
			RoleFitPercentage: 85,
		},
	})

	assert.Contains(t, out, "INTERVIEW EVALUATION REPORT")
	assert.Contains(t, out, "Name:           Jane Doe")
	assert.Contains(t, out, "Interview Date: 2026-08-30")
	assert.Contains(t, out, "Duration:       22 minutes")
	assert.Contains(t, out, "Overall Score:  8/10")
	assert.Contains(t, out, "Role Fit:       85%")
	assert.Contains(t, out, "Technical Competency: 9/10")
	assert.Contains(t, out, "1. clear communication")
	assert.Contains(t, out, "2. system design depth")
	assert.Contains(t, out, "RED FLAGS:")
	assert.Contains(t, out, "! inconsistent dates on resume")
	assert.Contains(t, out, "Schedule final round")
}

func TestRenderSummaryMissingFields(t *testing.T) {
	out := RenderSummary(&Result{})

	assert.Contains(t, out, "Name:           N/A")
	assert.Contains(t, out, "Overall Score:  N/A/10")
	assert.Contains(t, out, "SUMMARY:\n  N/A")
	assert.NotContains(t, out, "RED FLAGS:")
}

func TestRenderSummaryFromFallback(t *testing.T) {
	engine := NewEngine(&fakeClient{err: assert.AnError})
	result := engine.Evaluate(t.Context(), Request{CandidateName: "X", Position: "Y"})

	out := RenderSummary(result)
	assert.Contains(t, out, "Recommendation: Needs Review")
	assert.Contains(t, out, "Confidence:     Low")
	assert.Contains(t, out, "Overall Score:  5/10")
	assert.Contains(t, out, "Role Fit:       50%")
	assert.Contains(t, out, "! AI evaluation failed - manual review required")
}
