package main

import (
	"os"
	"strconv"

	"github.com/tacktile/interview-agent/internal/evaluation"
	"github.com/tacktile/interview-agent/internal/interviewer"
)

type config struct {
	port                 string
	roomURL              string
	agentIdentity        string
	position             string
	openAIKey            string
	evalModel            string
	evaluationsDir       string
	archiveDBURL         string
	repliesEnabled       bool
	interviewerModel     string
	interviewerMaxTokens int
}

func loadConfig() config {
	return config{
		port:                 envStr("AGENT_PORT", "8080"),
		roomURL:              envStr("ROOM_URL", ""),
		agentIdentity:        envStr("AGENT_IDENTITY", "sima-agent"),
		position:             envStr("INTERVIEW_POSITION", "AI Developer"),
		openAIKey:            envStr("OPENAI_API_KEY", ""),
		evalModel:            envStr("EVAL_MODEL", evaluation.DefaultModel),
		evaluationsDir:       envStr("EVALUATIONS_DIR", "evaluations"),
		archiveDBURL:         envStr("ARCHIVE_DB_URL", ""),
		repliesEnabled:       envStr("AGENT_REPLIES", "true") != "false",
		interviewerModel:     envStr("INTERVIEWER_MODEL", interviewer.DefaultModel),
		interviewerMaxTokens: envInt("INTERVIEWER_MAX_TOKENS", 300),
	}
}

func envStr(key, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

func envInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}
