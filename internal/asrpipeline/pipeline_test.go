package asrpipeline

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishikanthc/scriberr-engine/internal/modelspec"
)

type fakeDecoder struct {
	seconds float64
	rate    int
}

func (d *fakeDecoder) Decode(path string, sampleRate int) ([]float32, error) {
	n := int(d.seconds * float64(sampleRate))
	return make([]float32, n), nil
}

func (d *fakeDecoder) HeaderSeconds(path string) (float64, error) {
	return d.seconds, nil
}

type fakeRecognizer struct {
	textForChunk       func(chunkIdx int) string
	calls              int
	timestampCapable   bool
	lastWantTimestamps bool
}

func (r *fakeRecognizer) SupportsTimestamps() bool { return r.timestampCapable }

func (r *fakeRecognizer) RecognizeBatch(chunks [][]float32, sampleRate int, language, targetLanguage string, pnc *PNCValue, wantTimestamps bool) ([]RecognizeResult, error) {
	r.lastWantTimestamps = wantTimestamps
	out := make([]RecognizeResult, len(chunks))
	for i := range chunks {
		out[i] = RecognizeResult{Text: r.textForChunk(r.calls)}
		r.calls++
	}
	return out, nil
}

func TestPipelineHappyPathWritesExpectedOutputs(t *testing.T) {
	dir := t.TempDir()
	pipeline := &Pipeline{
		ModelID:    "test-model",
		Decoder:    &fakeDecoder{seconds: 2.0},
		Recognizer: &fakeRecognizer{textForChunk: func(i int) string { return "hello world." }},
	}

	var progressed []float64
	outputs, err := pipeline.Run("in.wav", dir, map[string]string{
		"chunk_len_s":       "1",
		"chunk_batch_size":  "1",
		"sample_rate":       "16000",
	}, modelspec.NewCancelToken(), func(p float64, msg string) {
		progressed = append(progressed, p)
	})
	require.NoError(t, err)
	require.NotEmpty(t, progressed)

	transcript, err := os.ReadFile(outputs["transcript"])
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(transcript), "\n"))

	segLines := readLines(t, outputs["segments"])
	require.NotEmpty(t, segLines)

	var rebuilt []string
	for _, line := range segLines {
		var rec segmentRecord
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		rebuilt = append(rebuilt, rec.Text)
	}
	// P7: transcript.txt equals the space-join of segments.jsonl text
	// fields trimmed of whitespace, plus a trailing newline.
	expected := strings.TrimSpace(strings.Join(rebuilt, " ")) + "\n"
	assert.Equal(t, expected, string(transcript))

	_, err = os.Stat(filepath.Join(dir, "result.json"))
	require.NoError(t, err)
}

func TestPipelineRequestsTimestampVariantWhenSupportedAndWanted(t *testing.T) {
	dir := t.TempDir()
	recognizer := &fakeRecognizer{textForChunk: func(int) string { return "hi." }, timestampCapable: true}
	pipeline := &Pipeline{
		ModelID:    "test-model",
		Decoder:    &fakeDecoder{seconds: 1.0},
		Recognizer: recognizer,
	}

	_, err := pipeline.Run("in.wav", dir, map[string]string{
		"chunk_len_s":      "1",
		"chunk_batch_size": "1",
		"include_words":    "true",
	}, modelspec.NewCancelToken(), func(float64, string) {})
	require.NoError(t, err)
	assert.True(t, recognizer.lastWantTimestamps)
}

func TestPipelineSkipsTimestampVariantWhenNotCapable(t *testing.T) {
	dir := t.TempDir()
	recognizer := &fakeRecognizer{textForChunk: func(int) string { return "hi." }, timestampCapable: false}
	pipeline := &Pipeline{
		ModelID:    "test-model",
		Decoder:    &fakeDecoder{seconds: 1.0},
		Recognizer: recognizer,
	}

	_, err := pipeline.Run("in.wav", dir, map[string]string{
		"chunk_len_s":      "1",
		"chunk_batch_size": "1",
		"include_words":    "true",
	}, modelspec.NewCancelToken(), func(float64, string) {})
	require.NoError(t, err)
	assert.False(t, recognizer.lastWantTimestamps)
}

func TestPipelineCancellationStopsAfterCurrentBatch(t *testing.T) {
	dir := t.TempDir()
	token := modelspec.NewCancelToken()
	var batchCount int

	pipeline := &Pipeline{
		ModelID: "test-model",
		Decoder: &fakeDecoder{seconds: 5.0},
		Recognizer: &fakeRecognizer{textForChunk: func(i int) string {
			return "word"
		}},
	}

	_, err := pipeline.Run("in.wav", dir, map[string]string{
		"chunk_len_s":      "1",
		"chunk_batch_size": "1",
	}, token, func(p float64, msg string) {
		batchCount++
		if batchCount == 1 {
			token.Cancel()
		}
	})

	require.Error(t, err)
	assert.LessOrEqual(t, batchCount, 2) // P9: at most one further progress event after stop
}

func TestPipelineEmptyAudioProducesEmptyOutputs(t *testing.T) {
	dir := t.TempDir()
	pipeline := &Pipeline{
		ModelID:    "test-model",
		Decoder:    &fakeDecoder{seconds: 0},
		Recognizer: &fakeRecognizer{textForChunk: func(int) string { return "" }},
	}

	outputs, err := pipeline.Run("in.wav", dir, nil, modelspec.NewCancelToken(), func(float64, string) {})
	require.NoError(t, err)

	var m manifest
	data, err := os.ReadFile(outputs["result"])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, 0, m.SegmentCount)
	assert.Equal(t, 0.0, m.AudioSeconds)
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if scanner.Text() != "" {
			lines = append(lines, scanner.Text())
		}
	}
	return lines
}
