// Package modelspec holds the data types shared across the Model Manager,
// Job Runner and both pipelines: ModelSpec, LoadedModel, JobStatus and the
// transient ASR/diarization record types.
package modelspec

import (
	"reflect"
	"time"

	"github.com/JeffreyRichter/enum/enum"
)

// ModelSpec is a request to load a model (§3).
type ModelSpec struct {
	ModelID       string
	ModelName     string
	ModelPath     string
	Providers     []string
	IntraOpThreads int
	VADBackend    string
}

// ProviderKind is the resolved execution provider after applying the
// policy in §4.2.
type ProviderKind uint8

var EProviderKind = ProviderKind(0)

func (ProviderKind) CPU() ProviderKind  { return ProviderKind(1) }
func (ProviderKind) CUDA() ProviderKind { return ProviderKind(2) }

func (p ProviderKind) String() string {
	return enum.StringInt(p, reflect.TypeOf(p))
}

// DiarKind distinguishes the two diarization model families dispatched in
// §4.2/§4.5.
type DiarKind uint8

var EDiarKind = DiarKind(0)

func (DiarKind) Unspecified() DiarKind { return DiarKind(0) }
func (DiarKind) Pyannote() DiarKind    { return DiarKind(1) }
func (DiarKind) Sortformer() DiarKind  { return DiarKind(2) }

func (k DiarKind) String() string {
	return enum.StringInt(k, reflect.TypeOf(k))
}

// LoadedModel is a model resident in memory (§3). Handle is an opaque
// reference to whatever backend-specific object the model integration
// produced; the runtime never inspects it directly.
type LoadedModel struct {
	Spec      ModelSpec
	Handle    any
	Kind      DiarKind
	Provider  ProviderKind
	LoadedAt  time.Time
	AuthToken string
}

// SameIdentity reports whether a candidate spec+token would be satisfied by
// this already-loaded model, used by Model Manager's ensure_loaded (§4.2).
func (m *LoadedModel) SameIdentity(spec ModelSpec, authToken string) bool {
	if m == nil {
		return false
	}
	if m.Spec.ModelID != spec.ModelID {
		return false
	}
	if m.Kind == EDiarKind.Pyannote() && m.AuthToken != authToken {
		return false
	}
	return true
}
