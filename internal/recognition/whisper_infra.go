package recognition

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// sourceLanguage is the fixed hint for the translate task.
const sourceLanguage = "te"

// WhisperClient talks to a self-hosted Whisper ASR server. The model tier
// is chosen per request, so the first call on a cold tier pays the full
// model load time.
type WhisperClient struct {
	baseURL string
	client  *http.Client
}

func NewWhisperClient(baseURL string) *WhisperClient {
	return &WhisperClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

func (c *WhisperClient) Translate(ctx context.Context, filePath string, model ModelSize) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("audio_file", filepath.Base(filePath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("read audio file: %w", err)
	}

	_ = mw.WriteField("task", "translate")
	_ = mw.WriteField("language", sourceLanguage)
	_ = mw.WriteField("model", string(model))

	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/asr", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("whisper request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		return "", fmt.Errorf("whisper error: %s", body)
	}

	var parsed struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode whisper: %w", err)
	}

	return strings.TrimSpace(parsed.Text), nil
}
