package modelbackend

import (
	"strconv"

	"github.com/rishikanthc/scriberr-engine/internal/diarpipeline"
)

// paramsToKV re-flattens a typed diarpipeline.Params back into the wire kv
// form, the inverse of diarpipeline.ParamsFromKV, so the external backend
// receives the same string-keyed shape the wire StartJob request carried.
func paramsToKV(p diarpipeline.Params) map[string]string {
	kv := map[string]string{
		"output_format":          p.OutputFormat,
		"device":                 p.Device,
		"hf_token":               p.HFToken,
		"model":                  p.Model,
		"batch_size":             strconv.Itoa(p.BatchSize),
		"streaming_mode":         strconv.FormatBool(p.StreamingMode),
		"chunk_length_s":         strconv.FormatFloat(p.ChunkLengthS, 'f', -1, 64),
		"chunk_len":              strconv.Itoa(p.ChunkLen),
		"chunk_right_context":    strconv.Itoa(p.ChunkRightContext),
		"fifo_len":               strconv.Itoa(p.FIFOLen),
		"spkcache_update_period": strconv.Itoa(p.SpkcacheUpdatePeriod),
		"exclusive":              strconv.FormatBool(p.Exclusive),
	}
	if p.MinSpeakers != nil {
		kv["min_speakers"] = strconv.Itoa(*p.MinSpeakers)
	}
	if p.MaxSpeakers != nil {
		kv["max_speakers"] = strconv.Itoa(*p.MaxSpeakers)
	}
	if p.SegmentationOnset != nil {
		kv["segmentation_onset"] = strconv.FormatFloat(*p.SegmentationOnset, 'f', -1, 64)
	}
	if p.SegmentationOffset != nil {
		kv["segmentation_offset"] = strconv.FormatFloat(*p.SegmentationOffset, 'f', -1, 64)
	}
	if p.SegmentationBatchSize != nil {
		kv["segmentation_batch_size"] = strconv.Itoa(*p.SegmentationBatchSize)
	}
	if p.EmbeddingBatchSize != nil {
		kv["embedding_batch_size"] = strconv.Itoa(*p.EmbeddingBatchSize)
	}
	if p.EmbeddingExcludeOverlap != nil {
		kv["embedding_exclude_overlap"] = strconv.FormatBool(*p.EmbeddingExcludeOverlap)
	}
	if p.TorchThreads != nil {
		kv["torch_threads"] = strconv.Itoa(*p.TorchThreads)
	}
	if p.TorchInteropThreads != nil {
		kv["torch_interop_threads"] = strconv.Itoa(*p.TorchInteropThreads)
	}
	return kv
}
