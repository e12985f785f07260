package archive

import "time"

// Session is one archived interview session.
type Session struct {
	ID        string     `json:"id"`
	Candidate string     `json:"candidate"`
	Position  string     `json:"position"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

// Utterance is one archived transcript line.
type Utterance struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Speaker   string    `json:"speaker"`
	Text      string    `json:"text"`
	SpokenAt  time.Time `json:"spoken_at"`
}

// Evaluation is the archived outcome of one evaluation run.
type Evaluation struct {
	ID           string `json:"id"`
	SessionID    string `json:"session_id"`
	Decision     string `json:"decision"`
	RoleFit      int    `json:"role_fit"`
	ArtifactPath string `json:"artifact_path"`
	Status       string `json:"status"`
}
