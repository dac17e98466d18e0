package recognition

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient backs the recognizer with the hosted Whisper at
// /v1/audio/translations. The API only serves whisper-1, so the model
// tier is accepted and ignored.
type OpenAIClient struct {
	client *openai.Client
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
	}
}

func (c *OpenAIClient) Translate(ctx context.Context, filePath string, _ ModelSize) (string, error) {
	resp, err := c.client.CreateTranslation(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filePath,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text), nil
}
