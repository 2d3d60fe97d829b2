package asrpipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/rishikanthc/scriberr-engine/internal/common"
	"github.com/rishikanthc/scriberr-engine/internal/modelspec"
)

type segmentRecord struct {
	SegmentIndex int     `json:"segment_index"`
	Start        float64 `json:"start"`
	End          float64 `json:"end"`
	StartHHMMSS  string  `json:"start_hhmmss"`
	EndHHMMSS    string  `json:"end_hhmmss"`
	Text         string  `json:"text"`
}

type wordRecord struct {
	GlobalWordIndex    int     `json:"global_word_index"`
	SegmentIndex       int     `json:"segment_index"`
	WordIndexInSegment int     `json:"word_index_in_segment"`
	Word               string  `json:"word"`
	Start              float64 `json:"start"`
	End                float64 `json:"end"`
	StartHHMMSS        string  `json:"start_hhmmss"`
	EndHHMMSS          string  `json:"end_hhmmss"`
}

type manifest struct {
	ModelID       string            `json:"model_id"`
	InputPath     string            `json:"input_path"`
	SegmentCount  int               `json:"segment_count"`
	AudioSeconds  float64           `json:"audio_seconds"`
	CreatedAt     string            `json:"created_at"`
	Params        map[string]string `json:"params"`
	Outputs       map[string]string `json:"outputs"`
}

// WriteTranscript writes transcript.txt: the space-join of segment texts,
// trimmed, newline-terminated (§6).
func WriteTranscript(path string, segments []modelspec.Segment) error {
	texts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s.Text != "" {
			texts = append(texts, s.Text)
		}
	}
	content := strings.TrimSpace(strings.Join(texts, " ")) + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

// WriteSegmentsJSONL writes segments.jsonl.
func WriteSegmentsJSONL(path string, segments []modelspec.Segment) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for i, s := range segments {
		rec := segmentRecord{
			SegmentIndex: i + 1,
			Start:        s.Start,
			End:          s.End,
			StartHHMMSS:  common.FormatHHMMSS(s.Start),
			EndHHMMSS:    common.FormatHHMMSS(s.End),
			Text:         s.Text,
		}
		if err := enc.Encode(rec); err != nil {
			return errors.Wrapf(err, "encoding segment %d", i+1)
		}
	}
	return nil
}

// WriteWordsJSONL writes words.jsonl.
func WriteWordsJSONL(path string, words []modelspec.Word) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, w := range words {
		rec := wordRecord{
			GlobalWordIndex:    w.GlobalWordIndex,
			SegmentIndex:       w.SegmentIndex,
			WordIndexInSegment: w.WordIndexInSegment,
			Word:               w.Word,
			Start:              w.Start,
			End:                w.End,
			StartHHMMSS:        common.FormatHHMMSS(w.Start),
			EndHHMMSS:          common.FormatHHMMSS(w.End),
		}
		if err := enc.Encode(rec); err != nil {
			return errors.Wrap(err, "encoding word record")
		}
	}
	return nil
}

// WriteResultManifest writes result.json; the diarization manifest (§4.5)
// carries the same keys plus model_name and output_dir.
func WriteResultManifest(path string, m manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling result manifest")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

func newManifest(modelID, inputPath string, segmentCount int, audioSeconds float64, params, outputs map[string]string) manifest {
	return manifest{
		ModelID:      modelID,
		InputPath:    inputPath,
		SegmentCount: segmentCount,
		AudioSeconds: audioSeconds,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		Params:       params,
		Outputs:      outputs,
	}
}

func outputPath(outputDir, name string) string {
	return filepath.Join(outputDir, name)
}
