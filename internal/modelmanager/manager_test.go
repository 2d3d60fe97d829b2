package modelmanager

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishikanthc/scriberr-engine/internal/modelspec"
)

type fakeLoader struct {
	calls int
	fail  bool
}

func (f *fakeLoader) Load(spec modelspec.ModelSpec, authToken string, provider modelspec.ProviderKind) (any, modelspec.DiarKind, error) {
	f.calls++
	if f.fail {
		return nil, 0, errors.New("boom")
	}
	return "handle-" + spec.ModelID, modelspec.EDiarKind.Pyannote(), nil
}

func TestLoadReplacesSlot(t *testing.T) {
	loader := &fakeLoader{}
	m := New(loader, nil)

	loaded, err := m.Load(modelspec.ModelSpec{ModelID: "a"}, "")
	require.NoError(t, err)
	assert.Equal(t, "handle-a", loaded.Handle)

	loaded2, err := m.Load(modelspec.ModelSpec{ModelID: "b"}, "")
	require.NoError(t, err)
	assert.Equal(t, "handle-b", loaded2.Handle)
	assert.Equal(t, "b", m.GetLoaded().Spec.ModelID)
}

func TestLoadFailureLeavesSlotEmpty(t *testing.T) {
	loader := &fakeLoader{fail: true}
	m := New(loader, nil)

	_, err := m.Load(modelspec.ModelSpec{ModelID: "a"}, "")
	require.Error(t, err)
	assert.Nil(t, m.GetLoaded())
}

func TestUnloadIsIdempotentOnEmptySlot(t *testing.T) {
	m := New(&fakeLoader{}, nil)
	assert.False(t, m.Unload(""))
}

func TestUnloadRequiresMatchingID(t *testing.T) {
	loader := &fakeLoader{}
	m := New(loader, nil)
	_, err := m.Load(modelspec.ModelSpec{ModelID: "a"}, "")
	require.NoError(t, err)

	assert.False(t, m.Unload("other"))
	assert.NotNil(t, m.GetLoaded())

	assert.True(t, m.Unload("a"))
	assert.Nil(t, m.GetLoaded())
}

func TestEnsureLoadedIsIdempotentByModelID(t *testing.T) {
	loader := &fakeLoader{}
	m := New(loader, nil)

	first, err := m.EnsureLoaded(modelspec.ModelSpec{ModelID: "pyannote"}, "tok-1")
	require.NoError(t, err)
	second, err := m.EnsureLoaded(modelspec.ModelSpec{ModelID: "pyannote"}, "tok-1")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, loader.calls)
}

func TestEnsureLoadedReloadsOnTokenChangeForPyannote(t *testing.T) {
	loader := &fakeLoader{}
	m := New(loader, nil)

	_, err := m.EnsureLoaded(modelspec.ModelSpec{ModelID: "pyannote"}, "tok-1")
	require.NoError(t, err)
	_, err = m.EnsureLoaded(modelspec.ModelSpec{ModelID: "pyannote"}, "tok-2")
	require.NoError(t, err)

	assert.Equal(t, 2, loader.calls)
}

func TestResolveProviderPrefersCUDAWhenAvailableAndUnspecified(t *testing.T) {
	m := New(&fakeLoader{}, func() bool { return true })
	p := m.ResolveProvider(modelspec.ModelSpec{})
	assert.Equal(t, modelspec.EProviderKind.CUDA(), p)
}

func TestResolveProviderDetectsCUDAFromProviderStrings(t *testing.T) {
	m := New(&fakeLoader{}, func() bool { return false })
	p := m.ResolveProvider(modelspec.ModelSpec{Providers: []string{"TensorrtExecutionProvider"}})
	assert.Equal(t, modelspec.EProviderKind.CUDA(), p)
}
