package session

import "strings"

// Best-effort enrichment from free candidate speech. No correctness
// guarantee; a miss simply leaves the configured values in place.

var namePhrases = []string{"my name is ", "i'm ", "i am "}

// ExtractName scans an utterance for a self-introduction and returns the
// first following word, capitalized.
func ExtractName(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, phrase := range namePhrases {
		idx := strings.Index(lower, phrase)
		if idx < 0 {
			continue
		}
		rest := strings.TrimSpace(lower[idx+len(phrase):])
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		name := strings.Trim(fields[0], ".,!?")
		if name == "" {
			continue
		}
		return strings.ToUpper(name[:1]) + name[1:], true
	}
	return "", false
}

// positionKeywords maps phrases heard in candidate speech to canonical
// position titles. Ordered so more specific phrases win.
var positionKeywords = []struct {
	keyword  string
	position string
}{
	{"ui/ux designer", "UI/UX Designer"},
	{"ui ux designer", "UI/UX Designer"},
	{"frontend developer", "Frontend Developer"},
	{"front end developer", "Frontend Developer"},
	{"backend developer", "Backend Developer"},
	{"back end developer", "Backend Developer"},
	{"full stack developer", "Full Stack Developer"},
	{"fullstack developer", "Full Stack Developer"},
	{"software developer", "Software Developer"},
	{"software engineer", "Software Engineer"},
	{"ai developer", "AI Developer"},
	{"ml engineer", "ML Engineer"},
	{"machine learning", "ML Engineer"},
	{"data scientist", "Data Scientist"},
	{"devops engineer", "DevOps Engineer"},
	{"qa engineer", "QA Engineer"},
	{"product manager", "Product Manager"},
	{"project manager", "Project Manager"},
	{"designer", "Designer"},
	{"tester", "QA Tester"},
}

// DetectPosition scans an utterance for a role the candidate names.
func DetectPosition(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, kw := range positionKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.position, true
		}
	}
	return "", false
}
