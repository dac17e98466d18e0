package recognition

import (
	"context"
	"fmt"
)

// ModelSize is the Whisper model tier. Bigger is slower and more accurate.
type ModelSize string

const (
	ModelTiny   ModelSize = "tiny"
	ModelBase   ModelSize = "base"
	ModelSmall  ModelSize = "small"
	ModelMedium ModelSize = "medium"
	ModelLarge  ModelSize = "large"
)

// ModelSizes lists the tiers in speed order, for the UI dropdown.
var ModelSizes = []ModelSize{ModelTiny, ModelBase, ModelSmall, ModelMedium, ModelLarge}

// ParseModelSize validates a user-supplied tier. Empty input falls back
// to the most accurate tier.
func ParseModelSize(s string) (ModelSize, error) {
	if s == "" {
		return ModelLarge, nil
	}
	for _, m := range ModelSizes {
		if s == string(m) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown model size %q", s)
}

type Recognizer interface {
	// Translate runs the model over the audio file in translate mode and
	// returns English text. Empty string means the model produced nothing.
	Translate(ctx context.Context, filePath string, model ModelSize) (string, error)
}
