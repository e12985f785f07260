package evaluation

import (
	"fmt"
	"strings"
)

const reportRule = "===================================================================="

// RenderSummary produces the operator-facing plain-text report for one
// evaluation. Missing values render as "N/A"; it never fails.
func RenderSummary(result *Result) string {
	meta := result.Metadata
	overall := result.OverallAssessment
	rec := result.Recommendation

	var b strings.Builder

	b.WriteString("\n" + reportRule + "\n")
	b.WriteString("                 INTERVIEW EVALUATION REPORT\n")
	b.WriteString(reportRule + "\n\n")

	b.WriteString("CANDIDATE INFORMATION:\n")
	fmt.Fprintf(&b, "  Name:           %s\n", orNA(meta.CandidateName))
	fmt.Fprintf(&b, "  Position:       %s\n", orNA(meta.Position))
	fmt.Fprintf(&b, "  Interview Date: %s\n", orNA(dateOnly(meta.InterviewDate)))
	fmt.Fprintf(&b, "  Duration:       %d minutes\n\n", meta.DurationMinutes)

	b.WriteString("OVERALL ASSESSMENT:\n")
	fmt.Fprintf(&b, "  Recommendation: %s\n", orNA(overall.HireRecommendation))
	fmt.Fprintf(&b, "  Confidence:     %s\n", orNA(overall.ConfidenceLevel))
	fmt.Fprintf(&b, "  Overall Score:  %s/10\n", ratingOrNA(result.Ratings, "overall_score"))
	fmt.Fprintf(&b, "  Role Fit:       %d%%\n\n", rec.RoleFitPercentage)

	fmt.Fprintf(&b, "SUMMARY:\n  %s\n\n", orNA(overall.Summary))
	fmt.Fprintf(&b, "REASONING:\n  %s\n\n", orNA(overall.Reasoning))

	b.WriteString("RATINGS BREAKDOWN:\n")
	fmt.Fprintf(&b, "  Technical Competency: %s/10\n", ratingOrNA(result.Ratings, "technical_competency"))
	fmt.Fprintf(&b, "  Soft Skills:          %s/10\n", ratingOrNA(result.Ratings, "soft_skills"))
	fmt.Fprintf(&b, "  Experience Match:     %s/10\n", ratingOrNA(result.Ratings, "experience_match"))
	fmt.Fprintf(&b, "  Growth Potential:     %s/10\n\n", ratingOrNA(result.Ratings, "growth_potential"))

	b.WriteString("STRENGTHS:\n")
	writeNumbered(&b, result.Strengths)

	b.WriteString("\nAREAS FOR IMPROVEMENT:\n")
	writeNumbered(&b, result.Weaknesses)

	if len(result.RedFlags) > 0 {
		b.WriteString("\nRED FLAGS:\n")
		for _, flag := range result.RedFlags {
			fmt.Fprintf(&b, "  ! %s\n", flag)
		}
	}

	fmt.Fprintf(&b, "\nRECOMMENDED NEXT STEPS:\n  %s\n", orNA(rec.NextSteps))
	b.WriteString("\n" + reportRule + "\n")

	return b.String()
}

func writeNumbered(b *strings.Builder, items []string) {
	for i, item := range items {
		fmt.Fprintf(b, "  %d. %s\n", i+1, item)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func ratingOrNA(ratings map[string]int, key string) string {
	if v, ok := ratings[key]; ok {
		return fmt.Sprintf("%d", v)
	}
	return "N/A"
}

// dateOnly trims an RFC3339 timestamp down to its date part.
func dateOnly(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}
