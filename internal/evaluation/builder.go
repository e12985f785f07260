package evaluation

import (
	"fmt"

	"github.com/tacktile/interview-agent/internal/transcript"
)

// maxTranscriptChars bounds the transcript embedded in the prompt so the
// request never grows past the model's context budget. The cut is a hard
// character truncation, not sentence-aware.
const maxTranscriptChars = 4000

// SystemPrompt is the evaluator persona sent as the system message.
const SystemPrompt = "You are an expert hiring manager and interview evaluator. Provide thorough, fair, and data-driven assessments."

// Request carries everything the engine needs to evaluate one interview.
type Request struct {
	CandidateName   string
	Position        string
	Transcript      string
	Notes           []transcript.Note
	DurationMinutes int
	CandidateInfo   map[string]string
}

// BuildPrompt assembles the evaluation instruction prompt. The embedded
// output schema (field names, nesting, ranges) is a contract with the model
// and must stay in sync with the Assessment type.
func BuildPrompt(req Request) string {
	return fmt.Sprintf(`You are an expert hiring manager evaluating an interview. Analyze the following interview data and provide a comprehensive evaluation.

INTERVIEW DETAILS:
- Candidate: %s
- Position: %s
- Duration: %d minutes

INTERVIEW NOTES:
%s

INTERVIEW TRANSCRIPT:
%s

Based on this interview, provide a detailed evaluation in the following JSON format:

{
    "overall_assessment": {
        "summary": "2-3 sentence overall impression",
        "hire_recommendation": "Strong Hire / Hire / Maybe / No Hire",
        "confidence_level": "High / Medium / Low",
        "reasoning": "Brief explanation of recommendation"
    },
    "detailed_evaluation": {
        "technical_skills": {
            "rating": 1-10,
            "assessment": "detailed assessment",
            "evidence": ["specific examples from interview"]
        },
        "problem_solving": {
            "rating": 1-10,
            "assessment": "detailed assessment",
            "evidence": ["specific examples"]
        },
        "communication": {
            "rating": 1-10,
            "assessment": "detailed assessment",
            "evidence": ["specific examples"]
        },
        "experience_relevance": {
            "rating": 1-10,
            "assessment": "detailed assessment",
            "evidence": ["specific examples"]
        },
        "cultural_fit": {
            "rating": 1-10,
            "assessment": "detailed assessment",
            "evidence": ["specific examples"]
        }
    },
    "ratings": {
        "overall_score": 1-10,
        "technical_competency": 1-10,
        "soft_skills": 1-10,
        "experience_match": 1-10,
        "growth_potential": 1-10
    },
    "strengths": [
        "List 3-5 key strengths with specific examples"
    ],
    "weaknesses": [
        "List 2-4 areas for improvement with specific examples"
    ],
    "red_flags": [
        "List any concerns or red flags, empty array if none"
    ],
    "key_highlights": [
        "3-5 most impressive or notable moments from the interview"
    ],
    "recommendation": {
        "decision": "Strong Hire / Hire / Maybe / No Hire",
        "next_steps": "recommended next steps",
        "concerns_to_address": ["any concerns to explore in next rounds"],
        "role_fit_percentage": 0-100
    },
    "feedback_for_candidate": "Constructive feedback that could be shared with candidate (2-3 paragraphs)",
    "transcript_summary": "Brief summary of interview flow and key discussion points"
}

Provide ONLY the JSON output, no additional text.`,
		req.CandidateName,
		req.Position,
		req.DurationMinutes,
		transcript.FormatNotes(req.Notes),
		truncate(req.Transcript, maxTranscriptChars),
	)
}

// truncate cuts s to at most max characters, respecting rune boundaries.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
