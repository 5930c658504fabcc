// Package enrichment layers AI/maps-derived text on top of stored
// records: activity tips, travel-time estimates and structured extraction
// of pasted confirmation mails. Lookups degrade to fallback strings
// instead of failing the surrounding request.
package enrichment

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Advice is the tagged result of a suggestion lookup. Fallback marks the
// degraded text produced when the model could not be reached.
type Advice struct {
	Text     string `json:"advice"`
	Fallback bool   `json:"fallback"`
}

// Advisor produces short activity tips through a chat-completion API.
type Advisor struct {
	client *openai.Client
	model  string
	temp   float32
	logger *zap.Logger
}

// AdvisorConfig holds the model settings for the advisor.
type AdvisorConfig struct {
	APIKey      string
	BaseURL     string // optional OpenAI-compatible endpoint
	Model       string
	Temperature float32
}

// NewAdvisor creates an advisor.
func NewAdvisor(cfg AdvisorConfig, logger *zap.Logger) *Advisor {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &Advisor{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		temp:   cfg.Temperature,
		logger: logger,
	}
}

// Suggest returns a short tip for visiting the activity in the given
// country. Any failure, from quota to a malformed response, degrades to a
// human-readable fallback string; the caller never sees an error.
func (a *Advisor) Suggest(ctx context.Context, activity, country string) Advice {
	prompt := fmt.Sprintf(
		"我正在規劃去 %s 旅遊，景點是 %s。請提供 50 字以內的簡短介紹與建議，像是一定要點哪些餐點、看哪些東西等等。",
		country, activity)

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: a.temp,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		a.logger.Warn("Advice lookup failed, returning fallback",
			zap.String("activity", activity),
			zap.Error(err))
		return Advice{Text: fmt.Sprintf("暫時無法獲取建議：%v", err), Fallback: true}
	}
	if len(resp.Choices) == 0 {
		a.logger.Warn("Advice lookup returned no choices", zap.String("activity", activity))
		return Advice{Text: "暫時無法獲取建議：empty response", Fallback: true}
	}

	return Advice{Text: resp.Choices[0].Message.Content}
}
