package synthesis

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testClient(endpoint string) *AzureClient {
	return &AzureClient{
		key:      "test-key",
		region:   "westeurope",
		endpoint: endpoint,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

func TestAzureClient_MissingCredentials(t *testing.T) {
	c := NewAzureClient("", "")

	res := c.Synthesize(context.Background(), "Hello", filepath.Join(t.TempDir(), "out.wav"))
	if res.Outcome != OutcomeCanceledError {
		t.Fatalf("outcome = %v, want canceled-with-error", res.Outcome)
	}
	if res.ErrorDetails == "" {
		t.Error("expected a diagnostic message")
	}
}

func TestAzureClient_Completed(t *testing.T) {
	wav := []byte("RIFF....WAVEdata")
	var gotKey, gotFormat, gotBody string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Ocp-Apim-Subscription-Key")
		gotFormat = r.Header.Get("X-Microsoft-OutputFormat")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Write(wav)
	}))
	defer srv.Close()

	outPath := filepath.Join(t.TempDir(), "out.wav")
	res := testClient(srv.URL).Synthesize(context.Background(), "Hello, how are you?", outPath)

	if res.Outcome != OutcomeCompleted {
		t.Fatalf("outcome = %v (%s)", res.Outcome, res.ErrorDetails)
	}
	if res.Path != outPath {
		t.Errorf("path = %q", res.Path)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(wav) {
		t.Error("written audio does not match response body")
	}
	if gotKey != "test-key" {
		t.Errorf("subscription key header = %q", gotKey)
	}
	if gotFormat != azureFormat {
		t.Errorf("output format header = %q", gotFormat)
	}
	if !strings.Contains(gotBody, "Hello, how are you?") {
		t.Errorf("ssml body = %q", gotBody)
	}
	if !strings.Contains(gotBody, azureVoice) {
		t.Errorf("ssml body missing voice: %q", gotBody)
	}
}

func TestAzureClient_AuthFailureIsCanceledError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid subscription key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	outPath := filepath.Join(t.TempDir(), "out.wav")
	res := testClient(srv.URL).Synthesize(context.Background(), "Hello", outPath)

	if res.Outcome != OutcomeCanceledError {
		t.Fatalf("outcome = %v", res.Outcome)
	}
	if !strings.Contains(res.ErrorDetails, "401") {
		t.Errorf("details = %q", res.ErrorDetails)
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Error("no file should be written on cancellation")
	}
}

func TestAzureClient_ThrottlingIsOperationalCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	res := testClient(srv.URL).Synthesize(context.Background(), "Hello", filepath.Join(t.TempDir(), "out.wav"))
	if res.Outcome != OutcomeCanceled {
		t.Fatalf("outcome = %v", res.Outcome)
	}
	if res.ErrorDetails != "" {
		t.Errorf("operational cancel must carry no diagnostic, got %q", res.ErrorDetails)
	}
}

func TestAzureClient_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := testClient("http://127.0.0.1:0").Synthesize(ctx, "Hello", filepath.Join(t.TempDir(), "out.wav"))
	if res.Outcome != OutcomeCanceled {
		t.Fatalf("outcome = %v", res.Outcome)
	}
}

func TestSSML_EscapesText(t *testing.T) {
	body := ssml(`a <b> & "c"`)
	if strings.Contains(body, "<b>") {
		t.Errorf("unescaped markup in %q", body)
	}
	if !strings.Contains(body, "&lt;b&gt;") {
		t.Errorf("expected escaped markup in %q", body)
	}
}
