package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// GPT asks a chat-completion model for a one-line summary of the e-mail
// body. Any API failure or unusable response falls back to the Simple
// summarizer, so Summarize is total.
type GPT struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	fallback    *Simple
	logger      *zap.Logger
}

func NewGPT(apiKey, model string, maxTokens int, temperature float64, maxLen int, logger *zap.Logger) *GPT {
	return &GPT{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		fallback:    NewSimple(maxLen),
		logger:      logger,
	}
}

func (g *GPT) Summarize(ctx context.Context, body string) string {
	if strings.TrimSpace(body) == "" {
		return DefaultContent
	}

	prompt := fmt.Sprintf(`Resuma o e-mail abaixo em uma única frase curta, em português, `+
		`descrevendo a interação com o segurado. Responda apenas com a frase, sem aspas.

E-mail:
%s`, body)

	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   g.maxTokens,
			Temperature: float32(g.temperature),
		},
	)
	if err != nil {
		g.logger.Error("Failed to get summary from model", zap.Error(err))
		return g.fallback.Summarize(ctx, body)
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		g.logger.Warn("Model returned an empty summary")
		return g.fallback.Summarize(ctx, body)
	}
	// The model occasionally ignores the no-quotes instruction.
	summary = strings.Trim(summary, `"`)
	return g.fallback.Summarize(ctx, summary)
}
