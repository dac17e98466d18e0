package synthesis

import "context"

// Outcome tags the result of one synthesis attempt.
type Outcome int

const (
	// OutcomeCompleted — audio written to the destination path.
	OutcomeCompleted Outcome = iota
	// OutcomeCanceled — the service declined the request for an
	// operational reason (throttling, shutdown). No diagnostic attached.
	OutcomeCanceled
	// OutcomeCanceledError — the attempt failed with an internal error;
	// ErrorDetails carries the diagnostic. Missing credentials land here.
	OutcomeCanceledError
)

// Result is deliberately not an error: cancellation must never abort
// the request that triggered the synthesis.
type Result struct {
	Outcome      Outcome
	Path         string
	ErrorDetails string
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text, outPath string) Result
}
