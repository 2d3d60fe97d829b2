package asrpipeline

// RecognizeResult is the tagged variant replacing the duck-typed model
// result (a string, an object with .text, or one additionally exposing
// tokens/timestamps) per Design Notes §9. Timed is nil for a bare Text
// result.
type RecognizeResult struct {
	Text  string
	Timed *TimedResult
}

// TimedResult carries model-supplied token/timestamp pairs.
type TimedResult struct {
	Text       string
	Tokens     []string
	Timestamps []float64 // one per token, token start time in chunk-local seconds
}

// Recognizer is the small interface a model integration exposes, declaring
// which params it honors instead of the source's keyword-argument
// introspection (Design Notes §9). Integrations receive the full param set
// and silently ignore fields they don't support.
type Recognizer interface {
	// SupportsTimestamps reports whether this model exposes the
	// timestamp-augmented variant (§4.4 step 2).
	SupportsTimestamps() bool
	// RecognizeBatch runs the batched recognize operation over a batch of
	// chunk sample slices, honoring whichever of language/targetLanguage/pnc
	// it supports. wantTimestamps asks a model that SupportsTimestamps to
	// switch to its timestamp-augmented variant (§4.4 step 2); a model
	// without that capability ignores it.
	RecognizeBatch(chunks [][]float32, sampleRate int, language, targetLanguage string, pnc *PNCValue, wantTimestamps bool) ([]RecognizeResult, error)
}
