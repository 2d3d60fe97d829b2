// Package modelmanager owns the single-model slot (§4.2), grounded on the
// teacher's idempotent-reload idiom in jobsAdmin.JobMgrEnsureExists, but
// kept as an explicit owned value per Design Notes §9 rather than a
// package-level singleton.
package modelmanager

import (
	"strings"
	"sync"
	"time"

	"github.com/rishikanthc/scriberr-engine/internal/enginerr"
	"github.com/rishikanthc/scriberr-engine/internal/modelspec"
)

// Loader loads a single model kind (pyannote, sortformer, or the ASR
// catalog) into an opaque handle. Each engine binary wires a concrete
// Loader; the Manager never knows what is inside a LoadedModel.Handle.
type Loader interface {
	Load(spec modelspec.ModelSpec, authToken string, provider modelspec.ProviderKind) (handle any, kind modelspec.DiarKind, err error)
}

// CUDAAvailable reports whether the runtime can see a CUDA device, used by
// the provider resolution policy in §4.2. Engines wire a real GPU probe;
// tests wire a constant.
type CUDAAvailable func() bool

type Manager struct {
	mu            sync.Mutex
	loader        Loader
	cudaAvailable CUDAAvailable
	current       *modelspec.LoadedModel
}

func New(loader Loader, cudaAvailable CUDAAvailable) *Manager {
	if cudaAvailable == nil {
		cudaAvailable = func() bool { return false }
	}
	return &Manager{loader: loader, cudaAvailable: cudaAvailable}
}

// ResolveProvider applies the provider resolution policy of §4.2: prefer
// CUDA when the model's Providers list is empty and the runtime reports
// CUDA available; for diarization, any providers entry mentioning
// CUDA/TensorRT maps to the cuda device tag.
func (m *Manager) ResolveProvider(spec modelspec.ModelSpec) modelspec.ProviderKind {
	if len(spec.Providers) == 0 {
		if m.cudaAvailable() {
			return modelspec.EProviderKind.CUDA()
		}
		return modelspec.EProviderKind.CPU()
	}
	for _, p := range spec.Providers {
		up := strings.ToUpper(p)
		if strings.Contains(up, "CUDA") || strings.Contains(up, "TENSORRT") {
			return modelspec.EProviderKind.CUDA()
		}
	}
	return modelspec.EProviderKind.CPU()
}

// Load loads spec synchronously, replacing any existing LoadedModel.
// Loading is serialized with every other Manager call by m.mu. On failure
// the slot is left empty.
func (m *Manager) Load(spec modelspec.ModelSpec, authToken string) (*modelspec.LoadedModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadLocked(spec, authToken)
}

func (m *Manager) loadLocked(spec modelspec.ModelSpec, authToken string) (*modelspec.LoadedModel, error) {
	provider := m.ResolveProvider(spec)
	handle, kind, err := m.loader.Load(spec, authToken, provider)
	if err != nil {
		m.current = nil
		return nil, enginerr.Wrap(enginerr.EKind.LoadFailed(), err, "loading model "+spec.ModelID)
	}
	loaded := &modelspec.LoadedModel{
		Spec:      spec,
		Handle:    handle,
		Kind:      kind,
		Provider:  provider,
		LoadedAt:  time.Now(),
		AuthToken: authToken,
	}
	m.current = loaded
	return loaded, nil
}

// Unload unloads the current model if present. If modelID is non-empty,
// unload only when it matches the currently loaded model's id. Returns
// whether an unload occurred (P10: idempotent, no side effect on an
// already-empty slot).
func (m *Manager) Unload(modelID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return false
	}
	if modelID != "" && m.current.Spec.ModelID != modelID {
		return false
	}
	m.current = nil
	return true
}

// GetLoaded returns the currently loaded model, or nil.
func (m *Manager) GetLoaded() *modelspec.LoadedModel {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// EnsureLoaded idempotently loads spec keyed by model_id: reloads only if
// model_id differs, or, for pyannote diarization, if the auth token
// changed, since a different token implies a different identity scope.
func (m *Manager) EnsureLoaded(spec modelspec.ModelSpec, authToken string) (*modelspec.LoadedModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current.SameIdentity(spec, authToken) {
		return m.current, nil
	}
	return m.loadLocked(spec, authToken)
}
