package diarpipeline

import (
	"path/filepath"
	"strconv"

	"github.com/rishikanthc/scriberr-engine/internal/audio"
	"github.com/rishikanthc/scriberr-engine/internal/common"
	"github.com/rishikanthc/scriberr-engine/internal/enginerr"
	"github.com/rishikanthc/scriberr-engine/internal/jobrunner"
	"github.com/rishikanthc/scriberr-engine/internal/modelspec"
)

// Pipeline implements §4.5's diarization algorithm. It satisfies
// jobrunner.Pipeline. Unlike the ASR pipeline, the underlying diarize call
// is a single non-preemptible operation (§5's cancellation note), so
// cancellation is checked only before dispatch and once more after the
// model returns, never mid-inference.
type Pipeline struct {
	ModelID   string
	ModelName string
	Diarizer  Diarizer
	Decoder   audio.Decoder
}

func (p *Pipeline) Run(inputPath, outputDir string, paramsKV map[string]string, cancel *modelspec.CancelToken, progress jobrunner.ProgressFunc) (map[string]string, error) {
	params := ParamsFromKV(paramsKV)

	if err := common.EnsureOutputDir(outputDir); err != nil {
		return nil, enginerr.Wrap(enginerr.EKind.PipelineFailed(), err, "preparing output directory")
	}

	if cancel.Cancelled() {
		return nil, enginerr.New(enginerr.EKind.Cancelled(), "cancelled before diarize")
	}

	progress(0.0, "RUNNING")

	audioSeconds, _ := p.Decoder.HeaderSeconds(inputPath)

	segments, err := p.Diarizer.Diarize(inputPath, params)
	if err != nil {
		return nil, enginerr.Wrap(enginerr.EKind.PipelineFailed(), err, "diarize failed")
	}

	if cancel.Cancelled() {
		return nil, enginerr.New(enginerr.EKind.Cancelled(), "cancelled after diarize")
	}

	outputs, err := p.writeOutputs(inputPath, outputDir, params, segments, audioSeconds)
	if err != nil {
		return nil, err
	}

	progress(1.0, "COMPLETED")
	return outputs, nil
}

func (p *Pipeline) writeOutputs(inputPath, outputDir string, params Params, segments []modelspec.DiarSegment, audioSeconds float64) (map[string]string, error) {
	outputs := map[string]string{}

	diarPath := filepath.Join(outputDir, "diarization.json")
	payload := BuildJSONPayload(inputPath, p.ModelName, p.ModelID, segments, audioSeconds)
	if err := WriteDiarizationJSON(diarPath, payload); err != nil {
		return nil, enginerr.Wrap(enginerr.EKind.PipelineFailed(), err, "writing diarization json")
	}
	outputs["diarization"] = diarPath

	var rttmWritten string
	if params.OutputFormat == "rttm" {
		rttmPath := filepath.Join(outputDir, "diarization.rttm")
		if err := WriteRTTM(rttmPath, inputPath, segments); err != nil {
			return nil, enginerr.Wrap(enginerr.EKind.PipelineFailed(), err, "writing rttm")
		}
		outputs["rttm"] = rttmPath
		rttmWritten = rttmPath
	}

	resultPath := filepath.Join(outputDir, "result.json")
	m := newManifest(p.ModelID, p.ModelName, inputPath, outputDir, len(segments), audioSeconds, kvFromParams(params), map[string]string{
		"diarization": diarPath,
		"rttm":        rttmWritten,
	})
	if err := WriteManifest(resultPath, m); err != nil {
		return nil, enginerr.Wrap(enginerr.EKind.PipelineFailed(), err, "writing result manifest")
	}
	outputs["result"] = resultPath

	return outputs, nil
}

func kvFromParams(p Params) map[string]string {
	kv := map[string]string{
		"output_format":           p.OutputFormat,
		"batch_size":              strconv.Itoa(p.BatchSize),
		"streaming_mode":          strconv.FormatBool(p.StreamingMode),
		"chunk_length_s":          strconv.FormatFloat(p.ChunkLengthS, 'f', -1, 64),
		"chunk_len":               strconv.Itoa(p.ChunkLen),
		"chunk_right_context":     strconv.Itoa(p.ChunkRightContext),
		"fifo_len":                strconv.Itoa(p.FIFOLen),
		"spkcache_update_period":  strconv.Itoa(p.SpkcacheUpdatePeriod),
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
	return kv
}
