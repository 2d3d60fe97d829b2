package diarpipeline

import "github.com/rishikanthc/scriberr-engine/internal/modelspec"

// Diarizer is the small interface a loaded model handle exposes, declaring
// the two families dispatched by §4.2/§4.5 instead of the source's
// attribute-sniffing on the loaded object (Design Notes §9).
type Diarizer interface {
	Kind() modelspec.DiarKind
	// Diarize runs the model over inputPath and returns speaker-attributed
	// spans, already sorted by start.
	Diarize(inputPath string, params Params) ([]modelspec.DiarSegment, error)
}

// PyannoteDiarizer adapts a pyannote.audio-style pipeline handle.
type PyannoteDiarizer struct {
	// Run invokes the underlying pipeline with the resolved onset/offset
	// thresholds and min/max speaker hints already applied by the
	// integration, grounded on backend.py's _run_pyannote.
	Run func(inputPath string, params Params) ([]modelspec.DiarSegment, error)
}

func (d *PyannoteDiarizer) Kind() modelspec.DiarKind { return modelspec.EDiarKind.Pyannote() }

func (d *PyannoteDiarizer) Diarize(inputPath string, params Params) ([]modelspec.DiarSegment, error) {
	segs, err := d.Run(inputPath, params)
	if err != nil {
		return nil, err
	}
	return sortByStart(segs), nil
}

// SortformerDiarizer adapts a NeMo Sortformer model handle.
type SortformerDiarizer struct {
	Run func(inputPath string, params Params) ([]modelspec.DiarSegment, error)
}

func (d *SortformerDiarizer) Kind() modelspec.DiarKind { return modelspec.EDiarKind.Sortformer() }

func (d *SortformerDiarizer) Diarize(inputPath string, params Params) ([]modelspec.DiarSegment, error) {
	segs, err := d.Run(inputPath, params)
	if err != nil {
		return nil, err
	}
	return sortByStart(segs), nil
}

func sortByStart(segs []modelspec.DiarSegment) []modelspec.DiarSegment {
	out := make([]modelspec.DiarSegment, len(segs))
	copy(out, segs)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Start < out[j-1].Start; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
