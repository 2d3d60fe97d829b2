// Package audio declares the minimal decoder contract the runtime depends
// on; decoding itself is an external collaborator per §1.
package audio

// Decoder resamples an input audio file to mono float32 PCM at the
// requested sample rate. Real engines wire a concrete implementation
// (e.g. libsndfile/ffmpeg-backed); tests wire a fixture-backed fake.
type Decoder interface {
	// Decode returns mono float32 samples at sampleRate.
	Decode(path string, sampleRate int) (samples []float32, err error)
	// HeaderSeconds does a cheap header-only read to estimate duration
	// without decoding the full file, used by the diarization pipeline's
	// audio_seconds computation (§4.5 step 2). 0 is tolerated on failure.
	HeaderSeconds(path string) (seconds float64, err error)
}
