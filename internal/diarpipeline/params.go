// Package diarpipeline implements the Diarization Pipeline of §4.5:
// pyannote/sortformer dispatch and RTTM/JSON output writing.
package diarpipeline

import (
	"strconv"
	"strings"
)

// Params is the typed, validated StartJob configuration for the
// diarization engine, grounded on diar_engine/params.py's JobParams.
type Params struct {
	OutputFormat string
	Device       string
	HFToken      string
	Model        string

	MinSpeakers *int
	MaxSpeakers *int

	SegmentationOnset  *float64
	SegmentationOffset *float64

	BatchSize      int
	StreamingMode  bool
	ChunkLengthS   float64

	ChunkLen               int
	ChunkRightContext      int
	FIFOLen                int
	SpkcacheUpdatePeriod   int
	Exclusive              bool
	SegmentationBatchSize  *int
	EmbeddingBatchSize     *int
	EmbeddingExcludeOverlap *bool
	TorchThreads           *int
	TorchInteropThreads    *int
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

func parseIntPtr(v string) *int {
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return nil
	}
	return &n
}

func parseIntDefault(v string, def int) int {
	if p := parseIntPtr(v); p != nil {
		return *p
	}
	return def
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

func parseFloatDefault(v string, def float64) float64 {
	if p := parseFloatPtr(v); p != nil {
		return *p
	}
	return def
}

// ParamsFromKV parses the flat string map StartJob receives on the wire,
// with the same malformed-numeric-falls-back-to-default rule as the ASR
// engine's param parsing.
func ParamsFromKV(kv map[string]string) Params {
	onset := parseFloatDefault(kv["segmentation_onset"], 0.5)
	offset := parseFloatDefault(kv["segmentation_offset"], 0.363)

	p := Params{
		OutputFormat: kv["output_format"],
		Device:       kv["device"],
		HFToken:      kv["hf_token"],
		Model:        kv["model"],

		MinSpeakers: parseIntPtr(kv["min_speakers"]),
		MaxSpeakers: parseIntPtr(kv["max_speakers"]),

		SegmentationOnset:  &onset,
		SegmentationOffset: &offset,

		BatchSize:     parseIntDefault(kv["batch_size"], 1),
		StreamingMode: parseBool(kv["streaming_mode"], false),
		ChunkLengthS:  parseFloatDefault(kv["chunk_length_s"], 30.0),

		ChunkLen:             parseIntDefault(kv["chunk_len"], 340),
		ChunkRightContext:    parseIntDefault(kv["chunk_right_context"], 40),
		FIFOLen:              parseIntDefault(kv["fifo_len"], 40),
		SpkcacheUpdatePeriod: parseIntDefault(kv["spkcache_update_period"], 300),
		Exclusive:            parseBool(kv["exclusive"], true),

		SegmentationBatchSize:   parseIntPtr(kv["segmentation_batch_size"]),
		EmbeddingBatchSize:      parseIntPtr(kv["embedding_batch_size"]),
		EmbeddingExcludeOverlap: parseBoolPtr(kv["embedding_exclude_overlap"]),
		TorchThreads:            parseIntPtr(kv["torch_threads"]),
		TorchInteropThreads:     parseIntPtr(kv["torch_interop_threads"]),
	}
	if p.OutputFormat == "" {
		p.OutputFormat = "rttm"
	}
	if p.Device == "" {
		p.Device = "auto"
	}
	if p.BatchSize < 1 {
		p.BatchSize = 1
	}
	if p.ChunkLengthS <= 0 {
		p.ChunkLengthS = 30.0
	}
	if p.ChunkLen <= 0 {
		p.ChunkLen = 340
	}
	if p.ChunkRightContext <= 0 {
		p.ChunkRightContext = 40
	}
	if p.FIFOLen <= 0 {
		p.FIFOLen = 40
	}
	if p.SpkcacheUpdatePeriod <= 0 {
		p.SpkcacheUpdatePeriod = 300
	}
	return p
}
