package asrpipeline

// VADParams is a resolved set of voice-activity-detection tuning knobs.
// Per this system's Open Questions, nothing in the pipeline currently
// consumes this: vad_* keys are forward-compat no-ops until a future
// pipeline version adds a VAD-first path, but the resolution logic is
// specified and tested here so that future consumer is a drop-in.
type VADParams struct {
	SpeechPadMs       int
	MinSilenceMs      int
	MinSpeechMs       int
	MaxSpeechS        int
}

// VADOverrides carries the subset of vad_* keys the caller explicitly set,
// distinguishing "not provided" from "provided as zero".
type VADOverrides struct {
	SpeechPadMs, MinSilenceMs, MinSpeechMs, MaxSpeechS int
	SpeechPadSet, MinSilenceSet, MinSpeechSet, MaxSpeechSet bool
}

var vadPresets = map[string]VADParams{
	"conservative": {SpeechPadMs: 400, MinSilenceMs: 800, MinSpeechMs: 300, MaxSpeechS: 30},
	"balanced":     {SpeechPadMs: 300, MinSilenceMs: 600, MinSpeechMs: 200, MaxSpeechS: 25},
	"aggressive":   {SpeechPadMs: 150, MinSilenceMs: 300, MinSpeechMs: 120, MaxSpeechS: 20},
}

// ResolveVADParams looks up preset (falling back to "balanced" for an
// unknown name) and applies any explicit overrides on top, matching
// get_vad_params/resolved_vad_params in asr_engine/params.py.
func ResolveVADParams(preset string, overrides VADOverrides) VADParams {
	p, ok := vadPresets[preset]
	if !ok {
		p = vadPresets["balanced"]
	}
	if overrides.SpeechPadSet {
		p.SpeechPadMs = overrides.SpeechPadMs
	}
	if overrides.MinSilenceSet {
		p.MinSilenceMs = overrides.MinSilenceMs
	}
	if overrides.MinSpeechSet {
		p.MinSpeechMs = overrides.MinSpeechMs
	}
	if overrides.MaxSpeechSet {
		p.MaxSpeechS = overrides.MaxSpeechS
	}
	return p
}
