package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/audio_translator/internal/recognition"
	"github.com/Vovarama1992/audio_translator/internal/synthesis"
)

// Service sequences one request: recognize, name the output, synthesize.
type Service struct {
	recognizer recognition.Recognizer
	synth      synthesis.Synthesizer
	outDir     string
	log        *logger.ZapLogger
	now        func() time.Time
}

func NewService(rec recognition.Recognizer, synth synthesis.Synthesizer, outDir string, log *logger.ZapLogger) *Service {
	return &Service{
		recognizer: rec,
		synth:      synth,
		outDir:     outDir,
		log:        log,
		now:        time.Now,
	}
}

// OutputFileName builds the per-request WAV name. Second resolution:
// two requests inside the same second get the same name and the later
// one wins.
func OutputFileName(ts time.Time) string {
	return fmt.Sprintf("translated_audio_%s.wav", ts.Format("20060102150405"))
}

func (s *Service) Process(ctx context.Context, filePath string, model recognition.ModelSize) (string, string, error) {
	text, err := s.recognizer.Translate(ctx, filePath, model)
	if err != nil {
		return "", "", fmt.Errorf("recognition: %w", err)
	}

	outName := OutputFileName(s.now())
	outPath := filepath.Join(s.outDir, outName)

	if text == "" {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "empty transcription, skipping synthesis",
			Service: "pipeline",
		})
		return "", outPath, nil
	}

	res := s.synth.Synthesize(ctx, text, outPath)
	switch res.Outcome {
	case synthesis.OutcomeCompleted:
		s.log.Log(logger.LogEntry{
			Level:   "info",
			Message: "synthesis completed: " + res.Path,
			Service: "pipeline",
		})
	case synthesis.OutcomeCanceled:
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "synthesis canceled",
			Service: "pipeline",
		})
	case synthesis.OutcomeCanceledError:
		s.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "synthesis canceled with error: " + res.ErrorDetails,
			Service: "pipeline",
		})
	}

	return text, outPath, nil
}
