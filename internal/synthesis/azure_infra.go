package synthesis

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	azureVoice  = "en-US-JennyNeural"
	azureFormat = "riff-24khz-16bit-mono-pcm" // plain WAV
)

// AzureClient speaks the Azure Speech REST TTS endpoint. Credentials are
// captured once at startup; an empty key or region is reported per call
// as a canceled-with-error outcome instead of failing the process.
type AzureClient struct {
	key      string
	region   string
	endpoint string // built from region unless overridden in tests
	client   *http.Client
}

func NewAzureClient(key, region string) *AzureClient {
	endpoint := ""
	if region != "" {
		endpoint = fmt.Sprintf("https://%s.tts.speech.microsoft.com/cognitiveservices/v1", region)
	}
	return &AzureClient{
		key:      key,
		region:   region,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *AzureClient) Synthesize(ctx context.Context, text, outPath string) Result {
	if c.key == "" || c.region == "" {
		return Result{
			Outcome:      OutcomeCanceledError,
			ErrorDetails: "AZURE_SPEECH_KEY or AZURE_SERVICE_REGION not configured",
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(ssml(text)))
	if err != nil {
		return Result{Outcome: OutcomeCanceledError, ErrorDetails: err.Error()}
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("X-Microsoft-OutputFormat", azureFormat)
	req.Header.Set("User-Agent", "audio_translator")

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			// caller went away, not a service fault
			return Result{Outcome: OutcomeCanceled}
		}
		return Result{Outcome: OutcomeCanceledError, ErrorDetails: err.Error()}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to write the audio
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusServiceUnavailable:
		return Result{Outcome: OutcomeCanceled}
	default:
		body, _ := io.ReadAll(resp.Body)
		return Result{
			Outcome:      OutcomeCanceledError,
			ErrorDetails: fmt.Sprintf("azure tts status %d: %s", resp.StatusCode, body),
		}
	}

	out, err := os.Create(outPath)
	if err != nil {
		return Result{Outcome: OutcomeCanceledError, ErrorDetails: err.Error()}
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return Result{Outcome: OutcomeCanceledError, ErrorDetails: err.Error()}
	}

	return Result{Outcome: OutcomeCompleted, Path: outPath}
}

func ssml(text string) string {
	var esc strings.Builder
	_ = xml.EscapeText(&esc, []byte(text))

	return fmt.Sprintf(
		`<speak version='1.0' xml:lang='en-US'><voice name='%s'>%s</voice></speak>`,
		azureVoice, esc.String(),
	)
}
