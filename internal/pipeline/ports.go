package pipeline

import (
	"context"

	"github.com/Vovarama1992/audio_translator/internal/recognition"
)

type Processor interface {
	// Process runs one request end to end and returns the translated text
	// plus the generated output path. The path is returned even when
	// synthesis was skipped or failed, so the caller must check the file
	// before serving it.
	Process(ctx context.Context, filePath string, model recognition.ModelSize) (string, string, error)
}
