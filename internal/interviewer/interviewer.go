package interviewer

import (
	"context"
	"fmt"
	"strings"

	"github.com/nlpodyssey/openai-agents-go/agents"
	"github.com/nlpodyssey/openai-agents-go/modelsettings"
	"github.com/openai/openai-go/v2/packages/param"
)

const DefaultModel = "gpt-4o-mini"

// Client generates interviewer turns with the openai-agents-go SDK.
// A nil provider falls back to the SDK's default OpenAI provider, which
// reads OPENAI_API_KEY from the environment.
type Client struct {
	provider     agents.ModelProvider
	model        string
	maxTokens    int
	instructions string
}

// New creates an interviewer client with the given persona instructions.
func New(instructions, model string, maxTokens int, provider agents.ModelProvider) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		provider:     provider,
		model:        model,
		maxTokens:    maxTokens,
		instructions: instructions,
	}
}

// Reply streams one interviewer turn in response to the candidate's message
// and returns the accumulated text.
func (c *Client) Reply(ctx context.Context, userMessage string) (string, error) {
	agent := agents.New("interviewer").
		WithInstructions(c.instructions).
		WithModel(c.model).
		WithModelSettings(modelsettings.ModelSettings{
			MaxTokens: param.NewOpt(int64(c.maxTokens)),
		})

	runner := agents.Runner{Config: agents.RunConfig{
		ModelProvider:   c.provider,
		MaxTurns:        1,
		TracingDisabled: true,
	}}

	events, errCh, err := runner.RunStreamedChan(ctx, agent, userMessage)
	if err != nil {
		return "", fmt.Errorf("interviewer stream start: %w", err)
	}

	var buf strings.Builder
	for ev := range events {
		raw, ok := ev.(agents.RawResponsesStreamEvent)
		if !ok {
			continue
		}
		if raw.Data.Type != "response.output_text.delta" {
			continue
		}
		buf.WriteString(raw.Data.Delta)
	}
	if streamErr := <-errCh; streamErr != nil {
		return "", fmt.Errorf("interviewer stream: %w", streamErr)
	}

	return strings.TrimSpace(buf.String()), nil
}
