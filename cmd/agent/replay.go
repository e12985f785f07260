package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/tacktile/interview-agent/internal/evaluation"
	"github.com/tacktile/interview-agent/internal/room"
	"github.com/tacktile/interview-agent/internal/session"
	"github.com/tacktile/interview-agent/internal/transcript"
)

// replayItem is one entry of an exported chat history file.
type replayItem struct {
	Type      string       `json:"type"`
	Role      string       `json:"role"`
	Content   room.Content `json:"content"`
	CreatedAt float64      `json:"created_at"` // unix seconds
}

type chatHistory struct {
	Items []replayItem `json:"items"`
}

// inferenceKeywords maps conversation vocabulary to a likely position when
// the candidate never names one outright.
var inferenceKeywords = []struct {
	keyword  string
	position string
}{
	{"angular", "Frontend Developer"},
	{"react", "Frontend Developer"},
	{"frontend", "Frontend Developer"},
	{"backend", "Backend Developer"},
	{"api", "Backend Developer"},
	{"database", "Backend Developer"},
	{"figma", "UI/UX Designer"},
	{"design", "UI/UX Designer"},
	{"wireframe", "UI/UX Designer"},
	{"machine learning", "AI Developer"},
	{"model", "AI Developer"},
	{"ai", "AI Developer"},
}

// runReplay rebuilds a transcript from an exported chat history file and
// runs a fresh evaluation over it. Used when the live session ended without
// producing an artifact.
func runReplay(cfg config, engine *evaluation.Engine, store *evaluation.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read chat history: %w", err)
	}

	var history chatHistory
	if err = json.Unmarshal(data, &history); err != nil {
		// Some exports are a bare item array.
		if arrErr := json.Unmarshal(data, &history.Items); arrErr != nil {
			return fmt.Errorf("decode chat history %s: %w", path, err)
		}
	}

	log := transcript.NewLog()
	candidateName := ""
	position := ""
	var firstAt, lastAt float64

	for _, item := range history.Items {
		if item.Type != "" && item.Type != "message" {
			continue
		}
		convItem := room.ConversationItem{Role: item.Role, Content: item.Content}
		speaker, ok := convItem.Speaker()
		if !ok {
			continue
		}
		text := strings.TrimSpace(convItem.Text())
		if text == "" {
			continue
		}
		log.Append(speaker, text)

		if item.CreatedAt > 0 {
			if firstAt == 0 {
				firstAt = item.CreatedAt
			}
			lastAt = item.CreatedAt
		}
		if speaker != transcript.SpeakerCandidate {
			continue
		}
		if candidateName == "" {
			if name, found := session.ExtractName(text); found {
				candidateName = name
			}
		}
		if position == "" {
			if p, found := session.DetectPosition(text); found {
				position = p
			}
		}
	}

	transcriptText := log.Render()
	if position == "" {
		position = inferPosition(transcriptText)
	}
	if candidateName == "" {
		candidateName = "Unknown Candidate"
	}
	if position == "" {
		position = cfg.position
	}

	durationMinutes := 15
	if firstAt > 0 && lastAt > firstAt {
		durationMinutes = int((lastAt - firstAt) / 60)
	}

	slog.Info("chat history loaded", "file", path, "turns", log.TurnCount(),
		"candidate", candidateName, "position", position, "duration_minutes", durationMinutes)

	now := time.Now().UTC()
	notes := []transcript.Note{
		{Timestamp: now, Category: "general", Content: fmt.Sprintf("Interview rebuilt from chat history - %d conversation turns", log.TurnCount()), Stage: "summary"},
		{Timestamp: now, Category: "role_detection", Content: fmt.Sprintf("Candidate role detected as: %s", position), Stage: "analysis"},
	}

	result := engine.Evaluate(context.Background(), evaluation.Request{
		CandidateName:   candidateName,
		Position:        position,
		Transcript:      transcriptText,
		Notes:           notes,
		DurationMinutes: durationMinutes,
		CandidateInfo: map[string]string{
			"name":     candidateName,
			"position": position,
			"source":   "chat history export",
		},
	})

	savedTo, err := store.Save(result)
	if err != nil {
		return err
	}

	fmt.Println(evaluation.RenderSummary(result))
	fmt.Printf("Full evaluation saved to: %s\n", savedTo)
	return nil
}

// inferPosition guesses a role from conversation vocabulary. Ordered so the
// strongest signals win over generic ones.
func inferPosition(transcriptText string) string {
	lower := strings.ToLower(transcriptText)
	for _, kw := range inferenceKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.position
		}
	}
	return ""
}
