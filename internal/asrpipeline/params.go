// Package asrpipeline implements the ASR Pipeline of §4.4: chunked
// batched recognize, word/segment timestamp derivation, segment splitting
// and merging, and output file writing.
package asrpipeline

import (
	"strconv"
	"strings"
)

// Params is the typed, validated StartJob configuration for the ASR
// engine, per §6's param table.
type Params struct {
	ChunkLenS       float64
	ChunkBatchSize  int
	SegmentGapS     *float64
	IncludeSegments bool
	IncludeWords    bool
	MergeShort      bool
	MergeThresholdS float64
	MergeMaxWords   int
	SampleRate      int
	Language        string
	TargetLanguage  string
	PNC             *PNCValue
	VADPreset       string
	VADOverrides    VADOverrides
}

// PNCValue is the union the pnc key can take: a literal "pnc"/"nopnc"
// string, or a boolean hint.
type PNCValue struct {
	Literal string // "pnc" or "nopnc", when set
	Bool    *bool
}

func parseBool(v string, def bool) bool {
	if v == "" {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

func parseBoolPtr(v string) *bool {
	if v == "" {
		return nil
	}
	b := parseBool(v, false)
	return &b
}

func parseInt(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

func parseFloat(v string, def float64) float64 {
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return f
}

func parseFloatPtr(v string) *float64 {
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return nil
	}
	return &f
}

func parsePNC(v string) *PNCValue {
	if v == "" {
		return nil
	}
	val := strings.ToLower(strings.TrimSpace(v))
	if val == "pnc" || val == "nopnc" {
		return &PNCValue{Literal: val}
	}
	switch val {
	case "1", "true", "yes", "y", "on":
		b := true
		return &PNCValue{Bool: &b}
	case "0", "false", "no", "n", "off":
		b := false
		return &PNCValue{Bool: &b}
	default:
		return nil
	}
}

// ParamsFromKV parses the flat string map StartJob receives on the wire
// into typed Params, with string-to-value parsing rules grounded on
// asr_engine/params.py's _parse_bool/_parse_int/_parse_float/_parse_pnc:
// a malformed numeric value silently falls back to its default rather than
// producing an InvalidArgument error.
func ParamsFromKV(kv map[string]string) Params {
	p := Params{
		ChunkLenS:       parseFloat(kv["chunk_len_s"], 300.0),
		ChunkBatchSize:  parseInt(kv["chunk_batch_size"], 8),
		SegmentGapS:     parseFloatPtr(kv["segment_gap_s"]),
		IncludeSegments: parseBool(kv["include_segments"], true),
		IncludeWords:    parseBool(kv["include_words"], true),
		MergeShort:      parseBool(kv["merge_short_segments"], true),
		MergeThresholdS: parseFloat(kv["merge_attach_threshold_s"], 0.25),
		MergeMaxWords:   parseInt(kv["merge_attach_max_words"], 2),
		SampleRate:      parseInt(kv["sample_rate"], 16000),
		Language:        kv["language"],
		TargetLanguage:  kv["target_language"],
		PNC:             parsePNC(kv["pnc"]),
		VADPreset:       kv["vad_preset"],
	}
	if p.ChunkLenS < 1.0 {
		p.ChunkLenS = 1.0
	}
	if p.ChunkBatchSize < 1 {
		p.ChunkBatchSize = 1
	}
	if p.VADPreset == "" {
		p.VADPreset = "balanced"
	}
	p.VADOverrides = VADOverrides{
		SpeechPadMs:       parseInt(kv["vad_speech_pad_ms"], 0),
		MinSilenceMs:      parseInt(kv["vad_min_silence_ms"], 0),
		MinSpeechMs:       parseInt(kv["vad_min_speech_ms"], 0),
		MaxSpeechS:        parseInt(kv["vad_max_speech_s"], 0),
		SpeechPadSet:      kv["vad_speech_pad_ms"] != "",
		MinSilenceSet:     kv["vad_min_silence_ms"] != "",
		MinSpeechSet:      kv["vad_min_speech_ms"] != "",
		MaxSpeechSet:      kv["vad_max_speech_s"] != "",
	}
	return p
}
