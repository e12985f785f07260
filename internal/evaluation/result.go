package evaluation

import (
	"github.com/tacktile/interview-agent/internal/transcript"
)

// EvaluatorName is the fixed evaluator identifier stamped into metadata.
const EvaluatorName = "SIMA - AI Interview Assistant"

// Metadata identifies one evaluation artifact.
type Metadata struct {
	CandidateName       string `json:"candidate_name"`
	Position            string `json:"position"`
	InterviewDate       string `json:"interview_date"`
	DurationMinutes     int    `json:"duration_minutes"`
	Evaluator           string `json:"evaluator"`
	EvaluationTimestamp string `json:"evaluation_timestamp"`
	SavedTo             string `json:"saved_to,omitempty"`
}

// OverallAssessment is the model's top-level impression.
type OverallAssessment struct {
	Summary            string `json:"summary"`
	HireRecommendation string `json:"hire_recommendation"`
	ConfidenceLevel    string `json:"confidence_level"`
	Reasoning          string `json:"reasoning"`
}

// DimensionScore is one per-dimension rating with supporting evidence.
type DimensionScore struct {
	Rating     int      `json:"rating"`
	Assessment string   `json:"assessment"`
	Evidence   []string `json:"evidence"`
}

// Recommendation is the hiring decision block.
type Recommendation struct {
	Decision          string   `json:"decision"`
	NextSteps         string   `json:"next_steps"`
	ConcernsToAddress []string `json:"concerns_to_address"`
	RoleFitPercentage int      `json:"role_fit_percentage"`
}

// Assessment is the structured payload the model must return. Field names,
// nesting and ranges are a contract with the external model; see BuildPrompt.
type Assessment struct {
	OverallAssessment    OverallAssessment         `json:"overall_assessment"`
	DetailedEvaluation   map[string]DimensionScore `json:"detailed_evaluation"`
	Ratings              map[string]int            `json:"ratings"`
	Strengths            []string                  `json:"strengths"`
	Weaknesses           []string                  `json:"weaknesses"`
	RedFlags             []string                  `json:"red_flags"`
	KeyHighlights        []string                  `json:"key_highlights"`
	Recommendation       Recommendation            `json:"recommendation"`
	FeedbackForCandidate string                    `json:"feedback_for_candidate"`
	TranscriptSummary    string                    `json:"transcript_summary"`
}

// normalize replaces nil collections with empty ones so downstream consumers
// and the persisted artifact never see nulls for list fields.
func (a *Assessment) normalize() {
	if a.DetailedEvaluation == nil {
		a.DetailedEvaluation = map[string]DimensionScore{}
	}
	for name, dim := range a.DetailedEvaluation {
		if dim.Evidence == nil {
			dim.Evidence = []string{}
			a.DetailedEvaluation[name] = dim
		}
	}
	if a.Ratings == nil {
		a.Ratings = map[string]int{}
	}
	if a.Strengths == nil {
		a.Strengths = []string{}
	}
	if a.Weaknesses == nil {
		a.Weaknesses = []string{}
	}
	if a.RedFlags == nil {
		a.RedFlags = []string{}
	}
	if a.KeyHighlights == nil {
		a.KeyHighlights = []string{}
	}
	if a.Recommendation.ConcernsToAddress == nil {
		a.Recommendation.ConcernsToAddress = []string{}
	}
}

// Result is the complete evaluation artifact persisted per session.
// Immutable after creation; a re-run produces a new artifact.
type Result struct {
	Metadata             Metadata                  `json:"metadata"`
	CandidateInfo        map[string]string         `json:"candidate_info"`
	OverallAssessment    OverallAssessment         `json:"overall_assessment"`
	DetailedEvaluation   map[string]DimensionScore `json:"detailed_evaluation"`
	Ratings              map[string]int            `json:"ratings"`
	Strengths            []string                  `json:"strengths"`
	Weaknesses           []string                  `json:"weaknesses"`
	RedFlags             []string                  `json:"red_flags"`
	KeyHighlights        []string                  `json:"key_highlights"`
	Recommendation       Recommendation            `json:"recommendation"`
	FeedbackForCandidate string                    `json:"feedback_for_candidate"`
	InterviewNotes       []transcript.Note         `json:"interview_notes"`
	TranscriptSummary    string                    `json:"transcript_summary"`
}
