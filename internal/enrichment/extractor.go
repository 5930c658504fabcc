package enrichment

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/jaychen/travel-planner/internal/models"
)

// Extractor turns pasted confirmation text (flight or hotel mails) into
// the nine flight/hotel columns of a trip.
type Extractor struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewExtractor creates an extractor sharing the advisor's model settings.
func NewExtractor(cfg AdvisorConfig, logger *zap.Logger) *Extractor {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &Extractor{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: logger,
	}
}

// ExtractTripMeta parses free text into structured trip meta. Fields
// absent from the input come back as empty strings. On any model or parse
// failure it returns nil and the error; it never panics the caller.
func (e *Extractor) ExtractTripMeta(ctx context.Context, rawText, tripStart string) (*models.TripMeta, error) {
	prompt := fmt.Sprintf(`請分析以下旅遊資訊（包含航班或酒店）並轉換為結構化 JSON。
參考開始日期：%s
輸入內容：%s

請嚴格遵守以下 JSON 格式：
{
  "航班號": "...", "出發機場": "...", "出發時間": "HH:MM",
  "抵達機場": "...", "抵達時間": "HH:MM",
  "酒店名稱": "...", "酒店地址": "...", "入住日期": "YYYY-MM-DD", "退房日期": "YYYY-MM-DD"
}
如果資訊中沒有提到某項，請填入空字串 ""。請直接輸出純 JSON 字串。`, tripStart, rawText)

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.model,
		Temperature: 0.1,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You extract flight and hotel details from travel confirmation text. Always respond with valid JSON.",
			},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		e.logger.Error("Extraction call failed", zap.Error(err))
		return nil, fmt.Errorf("extraction call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from model")
	}

	content := resp.Choices[0].Message.Content
	meta, err := decodeMetaJSON(content)
	if err != nil {
		e.logger.Error("Failed to parse extraction response",
			zap.Error(err),
			zap.String("content", content))
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	e.logger.Info("Trip meta extracted",
		zap.String("flight", meta.FlightNumber),
		zap.String("hotel", meta.HotelName))
	return meta, nil
}

// decodeMetaJSON unmarshals the model output, tolerating markdown fences
// and prose around the JSON object.
func decodeMetaJSON(content string) (*models.TripMeta, error) {
	var meta models.TripMeta
	if err := json.Unmarshal([]byte(content), &meta); err == nil {
		return &meta, nil
	}
	start := findJSONStart(content)
	if start < 0 {
		return nil, fmt.Errorf("no JSON object in response")
	}
	end := findJSONEnd(content, start)
	if end <= start {
		return nil, fmt.Errorf("unterminated JSON object in response")
	}
	if err := json.Unmarshal([]byte(content[start:end]), &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// findJSONStart finds the first '{' in a string.
func findJSONStart(content string) int {
	for i := 0; i < len(content); i++ {
		if content[i] == '{' {
			return i
		}
	}
	return -1
}

// findJSONEnd finds the index just past the brace matching content[start],
// skipping braces inside string literals.
func findJSONEnd(content string, start int) int {
	if start < 0 || start >= len(content) || content[start] != '{' {
		return -1
	}

	braceCount := 0
	inString := false
	escapeNext := false

	for i := start; i < len(content); i++ {
		char := content[i]

		if escapeNext {
			escapeNext = false
			continue
		}
		if char == '\\' {
			escapeNext = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		if char == '{' {
			braceCount++
		} else if char == '}' {
			braceCount--
			if braceCount == 0 {
				return i + 1
			}
		}
	}

	return -1
}
