package jobrunner

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishikanthc/scriberr-engine/internal/modelspec"
	"github.com/rishikanthc/scriberr-engine/internal/statusstore"
)

type scriptedPipeline struct {
	run func(inputPath, outputDir string, params map[string]string, cancel *modelspec.CancelToken, progress ProgressFunc) (map[string]string, error)
}

func (p *scriptedPipeline) Run(inputPath, outputDir string, params map[string]string, cancel *modelspec.CancelToken, progress ProgressFunc) (map[string]string, error) {
	return p.run(inputPath, outputDir, params, cancel, progress)
}

func drainUntilTerminal(t *testing.T, sink *statusstore.Sink) []modelspec.JobStatus {
	t.Helper()
	var got []modelspec.JobStatus
	for st := range sink.C() {
		got = append(got, st)
	}
	return got
}

func TestStartJobRejectsWhenBusy(t *testing.T) {
	store := statusstore.New()
	block := make(chan struct{})
	pipeline := &scriptedPipeline{run: func(string, string, map[string]string, *modelspec.CancelToken, ProgressFunc) (map[string]string, error) {
		<-block
		return map[string]string{"transcript": "t.txt"}, nil
	}}
	runner := New(store, pipeline)

	require.True(t, runner.StartJob("a", "in.wav", "out", nil))
	assert.False(t, runner.StartJob("b", "in.wav", "out", nil))

	close(block)
	assert.Eventually(t, func() bool { return runner.ActiveJobID() == "" }, time.Second, time.Millisecond)
}

func TestRunnerPublishesCompletedWithOutputs(t *testing.T) {
	store := statusstore.New()
	pipeline := &scriptedPipeline{run: func(_, _ string, _ map[string]string, _ *modelspec.CancelToken, progress ProgressFunc) (map[string]string, error) {
		progress(0.5, "halfway")
		return map[string]string{"transcript": "t.txt"}, nil
	}}
	runner := New(store, pipeline)
	sink := store.Subscribe("job-1")

	require.True(t, runner.StartJob("job-1", "in.wav", "out", nil))

	states := drainUntilTerminal(t, sink)
	require.NotEmpty(t, states)
	last := states[len(states)-1]
	assert.Equal(t, modelspec.EJobState.Completed(), last.State)
	assert.Equal(t, "t.txt", last.Outputs["transcript"])
}

func TestStopJobSignalsTokenAndPublishesCancelled(t *testing.T) {
	store := statusstore.New()
	started := make(chan struct{})
	pipeline := &scriptedPipeline{run: func(_, _ string, _ map[string]string, cancel *modelspec.CancelToken, progress ProgressFunc) (map[string]string, error) {
		close(started)
		<-cancel.Done()
		return nil, errors.New("should be ignored, Cancelled() wins")
	}}
	runner := New(store, pipeline)
	sink := store.Subscribe("job-2")

	require.True(t, runner.StartJob("job-2", "in.wav", "out", nil))
	<-started
	assert.True(t, runner.StopJob("job-2"))

	states := drainUntilTerminal(t, sink)
	last := states[len(states)-1]
	assert.Equal(t, modelspec.EJobState.Cancelled(), last.State)
	assert.Equal(t, "cancelled", last.Message)
}

func TestStopJobReturnsFalseForUnknownJob(t *testing.T) {
	store := statusstore.New()
	runner := New(store, &scriptedPipeline{run: func(_, _ string, _ map[string]string, _ *modelspec.CancelToken, _ ProgressFunc) (map[string]string, error) {
		return nil, nil
	}})
	assert.False(t, runner.StopJob("does-not-exist"))
}
