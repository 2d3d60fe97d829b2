// Package modelbackend adapts the opaque, external inference model (§1's
// "opaque callables the runtime loads and invokes") to the asrpipeline
// Recognizer and diarpipeline Diarizer interfaces by shelling out to a
// configured backend executable once per call, exchanging JSON over
// stdin/stdout. This mirrors azcopy's own spawnSte pattern in main.go,
// where heavy work is offloaded to a separate process, generalized here
// from a fixed companion binary to any operator-configured model backend
// command. Process implements Recognizer directly; for diarization, Loader
// wraps it in a diarpipeline.PyannoteDiarizer or SortformerDiarizer so the
// kind dispatch and sortformer segment normalization happen in Go.
package modelbackend

import (
	"bytes"
	"encoding/json"
	"os/exec"

	"github.com/pkg/errors"

	"github.com/rishikanthc/scriberr-engine/internal/asrpipeline"
	"github.com/rishikanthc/scriberr-engine/internal/diarpipeline"
	"github.com/rishikanthc/scriberr-engine/internal/modelspec"
)

// Process is a live handle to an external model backend: a command that
// understands the {op: "..."} request/response protocol below on a single
// invocation per call. It is the Handle stored in modelspec.LoadedModel.
type Process struct {
	Command string
	Args    []string

	supportsTimestamps bool
}

func (p *Process) run(req any, resp any) error {
	body, err := json.Marshal(req)
	if err != nil {
		return errors.Wrap(err, "marshaling backend request")
	}

	cmd := exec.Command(p.Command, p.Args...)
	cmd.Stdin = bytes.NewReader(body)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "model backend %s failed: %s", p.Command, stderr.String())
	}

	if err := json.Unmarshal(stdout.Bytes(), resp); err != nil {
		return errors.Wrap(err, "decoding backend response")
	}
	return nil
}

// SupportsTimestamps satisfies asrpipeline.Recognizer, reporting the
// capability discovered once at load time (see probeCapabilities).
func (p *Process) SupportsTimestamps() bool { return p.supportsTimestamps }

type recognizeRequest struct {
	Op             string      `json:"op"`
	Chunks         [][]float32 `json:"chunks"`
	SampleRate     int         `json:"sample_rate"`
	Language       string      `json:"language,omitempty"`
	TargetLanguage string      `json:"target_language,omitempty"`
	PNC            string      `json:"pnc,omitempty"`
	PNCBool        *bool       `json:"pnc_bool,omitempty"`
	WantTimestamps bool        `json:"want_timestamps"`
}

type timedResultWire struct {
	Text       string    `json:"text"`
	Tokens     []string  `json:"tokens"`
	Timestamps []float64 `json:"timestamps"`
}

type recognizeResultWire struct {
	Text  string           `json:"text"`
	Timed *timedResultWire `json:"timed,omitempty"`
}

type recognizeResponse struct {
	Results []recognizeResultWire `json:"results"`
}

// RecognizeBatch satisfies asrpipeline.Recognizer by delegating a whole
// chunk batch to the backend in one request.
func (p *Process) RecognizeBatch(chunks [][]float32, sampleRate int, language, targetLanguage string, pnc *asrpipeline.PNCValue, wantTimestamps bool) ([]asrpipeline.RecognizeResult, error) {
	req := recognizeRequest{
		Op:             "recognize_batch",
		Chunks:         chunks,
		SampleRate:     sampleRate,
		Language:       language,
		TargetLanguage: targetLanguage,
		WantTimestamps: wantTimestamps && p.supportsTimestamps,
	}
	if pnc != nil {
		req.PNC = pnc.Literal
		req.PNCBool = pnc.Bool
	}

	var resp recognizeResponse
	if err := p.run(req, &resp); err != nil {
		return nil, err
	}

	out := make([]asrpipeline.RecognizeResult, 0, len(resp.Results))
	for _, r := range resp.Results {
		rr := asrpipeline.RecognizeResult{Text: r.Text}
		if r.Timed != nil {
			rr.Timed = &asrpipeline.TimedResult{
				Text:       r.Timed.Text,
				Tokens:     r.Timed.Tokens,
				Timestamps: r.Timed.Timestamps,
			}
		}
		out = append(out, rr)
	}
	return out, nil
}

type diarizeRequest struct {
	Op        string            `json:"op"`
	InputPath string            `json:"input_path"`
	Params    map[string]string `json:"params"`
}

type diarSegmentWire struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Speaker    string  `json:"speaker"`
	Confidence float64 `json:"confidence"`
}

// diarizeResponse is the backend's reply to a "diarize" call. A pyannote
// backend fills Segments: the speaker_diarization-vs-itertracks distinction
// backend.py's _pyannote_segments_to_dicts makes is internal to the Python
// process and cannot cross the JSON boundary, so the backend normalizes
// that part itself and hands back a uniform list. A sortformer backend
// instead fills Items with the raw, not-yet-normalized payload of §4.5 step
// 5, leaving the string/tuple/mapping dispatch to
// diarpipeline.NormalizeSortformerItems.
type diarizeResponse struct {
	Segments []diarSegmentWire `json:"segments,omitempty"`
	Items    json.RawMessage   `json:"items,omitempty"`
}

func (p *Process) runDiarize(inputPath string, params diarpipeline.Params) (diarizeResponse, error) {
	req := diarizeRequest{Op: "diarize", InputPath: inputPath, Params: paramsToKV(params)}
	var resp diarizeResponse
	err := p.run(req, &resp)
	return resp, err
}

// diarizePyannote backs a diarpipeline.PyannoteDiarizer's Run field.
func (p *Process) diarizePyannote(inputPath string, params diarpipeline.Params) ([]modelspec.DiarSegment, error) {
	resp, err := p.runDiarize(inputPath, params)
	if err != nil {
		return nil, err
	}
	segs := make([]modelspec.DiarSegment, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		segs = append(segs, modelspec.DiarSegment{Start: s.Start, End: s.End, Speaker: s.Speaker, Confidence: s.Confidence})
	}
	return segs, nil
}

// diarizeSortformer backs a diarpipeline.SortformerDiarizer's Run field.
func (p *Process) diarizeSortformer(inputPath string, params diarpipeline.Params) ([]modelspec.DiarSegment, error) {
	resp, err := p.runDiarize(inputPath, params)
	if err != nil {
		return nil, err
	}
	if len(resp.Items) > 0 {
		return diarpipeline.NormalizeSortformerItems(resp.Items)
	}
	segs := make([]modelspec.DiarSegment, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		segs = append(segs, modelspec.DiarSegment{Start: s.Start, End: s.End, Speaker: s.Speaker, Confidence: s.Confidence})
	}
	return segs, nil
}
