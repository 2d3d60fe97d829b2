package diarpipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/rishikanthc/scriberr-engine/internal/modelspec"
)

type segmentRecord struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Speaker    string  `json:"speaker"`
	Duration   float64 `json:"duration"`
	Confidence float64 `json:"confidence"`
}

type processingInfo struct {
	TotalSegments   int     `json:"total_segments"`
	TotalSpeechTime float64 `json:"total_speech_time"`
}

type diarizationPayload struct {
	AudioFile      string          `json:"audio_file"`
	Model          string          `json:"model"`
	ModelID        string          `json:"model_id"`
	Segments       []segmentRecord `json:"segments"`
	Speakers       []string        `json:"speakers"`
	SpeakerCount   int             `json:"speaker_count"`
	TotalDuration  float64         `json:"total_duration"`
	ProcessingInfo processingInfo  `json:"processing_info"`
}

type manifest struct {
	ModelID      string            `json:"model_id"`
	ModelName    string            `json:"model_name"`
	AudioPath    string            `json:"input_path"`
	OutputDir    string            `json:"output_dir"`
	SegmentCount int               `json:"segment_count"`
	AudioSeconds float64           `json:"audio_seconds"`
	CreatedAt    string            `json:"created_at"`
	Params       map[string]string `json:"params"`
	Outputs      map[string]string `json:"outputs"`
}

// BuildJSONPayload assembles the diarization.json object of §4.5 step 6.
func BuildJSONPayload(audioFile, modelName, modelID string, segments []modelspec.DiarSegment, audioSeconds float64) diarizationPayload {
	speakerSet := map[string]struct{}{}
	records := make([]segmentRecord, len(segments))
	var totalSpeech float64
	for i, s := range segments {
		records[i] = segmentRecord{
			Start:      s.Start,
			End:        s.End,
			Speaker:    s.Speaker,
			Duration:   s.Duration(),
			Confidence: s.Confidence,
		}
		speakerSet[s.Speaker] = struct{}{}
		totalSpeech += s.Duration()
	}

	speakers := make([]string, 0, len(speakerSet))
	for sp := range speakerSet {
		speakers = append(speakers, sp)
	}
	sort.Strings(speakers)

	return diarizationPayload{
		AudioFile:     audioFile,
		Model:         modelName,
		ModelID:       modelID,
		Segments:      records,
		Speakers:      speakers,
		SpeakerCount:  len(speakers),
		TotalDuration: audioSeconds,
		ProcessingInfo: processingInfo{
			TotalSegments:   len(segments),
			TotalSpeechTime: totalSpeech,
		},
	}
}

// WriteDiarizationJSON writes diarization.json.
func WriteDiarizationJSON(path string, payload diarizationPayload) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling diarization payload")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

// WriteRTTM writes diarization.rttm: one SPEAKER line per segment, per
// §4.5's line format, grounded on backend.py's _write_rttm.
func WriteRTTM(path, audioPath string, segments []modelspec.DiarSegment) error {
	stem := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))

	var b strings.Builder
	for _, s := range segments {
		fmt.Fprintf(&b, "SPEAKER %s 1 %.3f %.3f <NA> <NA> %s <NA> <NA>\n", stem, s.Start, s.Duration(), s.Speaker)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

// WriteManifest writes result.json: the ASR manifest's keys of §4.4 plus
// model_name and output_dir.
func WriteManifest(path string, m manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling result manifest")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

func newManifest(modelID, modelName, audioPath, outputDir string, segmentCount int, audioSeconds float64, params, outputs map[string]string) manifest {
	return manifest{
		ModelID:      modelID,
		ModelName:    modelName,
		AudioPath:    audioPath,
		OutputDir:    outputDir,
		SegmentCount: segmentCount,
		AudioSeconds: audioSeconds,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		Params:       params,
		Outputs:      outputs,
	}
}
