package prompts

// InterviewConfig is the static per-interview record read once at session
// start. The core never mutates it.
type InterviewConfig struct {
	Position              string
	Company               string
	Department            string
	KeySkills             []string
	DurationTargetMinutes int
	Difficulty            string
}

// keySkills maps known positions to the skills the interviewer focuses on.
var keySkills = map[string][]string{
	"AI Developer":       {"Python", "Machine Learning", "LLMs", "API Development", "PyTorch/TensorFlow"},
	"Software Engineer":  {"Python", "Django/FastAPI", "REST APIs", "PostgreSQL", "AWS/Cloud"},
	"Frontend Developer": {"React", "TypeScript", "CSS/Tailwind", "State Management", "REST APIs"},
	"Data Scientist":     {"Python", "Statistics", "Machine Learning", "SQL", "Data Visualization"},
}

// ConfigFor returns the interview configuration for a position, with
// company defaults applied. Unknown positions get no key-skill focus.
func ConfigFor(position string) InterviewConfig {
	return InterviewConfig{
		Position:              position,
		Company:               "Tacktile System",
		Department:            "Engineering",
		KeySkills:             keySkills[position],
		DurationTargetMinutes: 20,
		Difficulty:            "intermediate",
	}
}
