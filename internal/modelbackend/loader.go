package modelbackend

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/rishikanthc/scriberr-engine/internal/diarpipeline"
	"github.com/rishikanthc/scriberr-engine/internal/modelspec"
)

// Loader implements modelmanager.Loader by resolving a ModelSpec to a
// backend executable and probing its capabilities once at load time. The
// model network itself, whatever the executable wraps, is the opaque
// external collaborator of §1; the Loader never inspects it.
type Loader struct {
	// DefaultCommand is used when a ModelSpec carries no ModelPath, e.g. a
	// single fixed backend installed alongside the engine.
	DefaultCommand string
	Args           []string

	// RequireDiarKind makes Load reject a model_id outside the
	// pyannote/sortformer families, per §4.2's diarization-engine dispatch.
	// The ASR engine leaves this false and accepts any model_id.
	RequireDiarKind bool
}

func NewLoader(defaultCommand string, args ...string) *Loader {
	return &Loader{DefaultCommand: defaultCommand, Args: args}
}

func (l *Loader) Load(spec modelspec.ModelSpec, authToken string, provider modelspec.ProviderKind) (any, modelspec.DiarKind, error) {
	command := spec.ModelPath
	if command == "" {
		command = l.DefaultCommand
	}
	if command == "" {
		return nil, modelspec.EDiarKind.Unspecified(), errors.Errorf("no backend command configured for model %q", spec.ModelID)
	}

	kind := dispatchKind(spec.ModelID)
	if l.RequireDiarKind && kind == modelspec.EDiarKind.Unspecified() {
		return nil, modelspec.EDiarKind.Unspecified(), errors.Errorf("unsupported diarization model_id %q", spec.ModelID)
	}

	proc := &Process{Command: command, Args: l.Args}

	if err := proc.probeCapabilities(); err != nil {
		return nil, modelspec.EDiarKind.Unspecified(), errors.Wrapf(err, "probing backend capabilities for %q", spec.ModelID)
	}

	if !l.RequireDiarKind {
		return proc, kind, nil
	}

	// The diarization engine stores a kind-specific Diarizer adapter as the
	// handle rather than the bare Process, so the kind dispatch and
	// segment normalization of §4.5 run in Go instead of inside the
	// opaque backend.
	if kind == modelspec.EDiarKind.Sortformer() {
		return &diarpipeline.SortformerDiarizer{Run: proc.diarizeSortformer}, kind, nil
	}
	return &diarpipeline.PyannoteDiarizer{Run: proc.diarizePyannote}, kind, nil
}

// dispatchKind maps a model_id to its DiarKind the way model_manager.py's
// _default_loader dispatches on spec.model_id; any id outside the two
// known diarization families is Unspecified (the ASR engine never inspects
// this value).
func dispatchKind(modelID string) modelspec.DiarKind {
	switch strings.ToLower(modelID) {
	case "pyannote":
		return modelspec.EDiarKind.Pyannote()
	case "sortformer":
		return modelspec.EDiarKind.Sortformer()
	default:
		return modelspec.EDiarKind.Unspecified()
	}
}

type capabilitiesRequest struct {
	Op string `json:"op"`
}

type capabilitiesResponse struct {
	SupportsTimestamps bool `json:"supports_timestamps"`
}

// probeCapabilities asks the backend once, at load time, whether it
// exposes the timestamp-augmented recognize variant (§4.4 step 2), instead
// of introspecting accepted keyword arguments the way the source does
// (Design Notes §9).
func (p *Process) probeCapabilities() error {
	var resp capabilitiesResponse
	if err := p.run(capabilitiesRequest{Op: "capabilities"}, &resp); err != nil {
		return err
	}
	p.supportsTimestamps = resp.SupportsTimestamps
	return nil
}
