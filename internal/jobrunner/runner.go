// Package jobrunner implements the single-slot job scheduler of §4.3.
package jobrunner

import (
	"sync"
	"time"

	"github.com/rishikanthc/scriberr-engine/internal/modelspec"
	"github.com/rishikanthc/scriberr-engine/internal/statusstore"
)

// ProgressFunc is the callback a Pipeline invokes to report progress; it
// publishes RUNNING with updated progress/message.
type ProgressFunc func(progress float64, message string)

// Pipeline is implemented by the ASR and diarization pipelines. Outputs is
// populated on success and ignored otherwise.
type Pipeline interface {
	Run(inputPath, outputDir string, params map[string]string, cancel *modelspec.CancelToken, progress ProgressFunc) (outputs map[string]string, err error)
}

// Runner is a single-slot scheduler: internal state is the active job id,
// the current CancelToken, and a mutex (§4.3).
type Runner struct {
	mu          sync.Mutex
	activeJobID string
	cancel      *modelspec.CancelToken

	store    *statusstore.Store
	pipeline Pipeline
}

func New(store *statusstore.Store, pipeline Pipeline) *Runner {
	return &Runner{store: store, pipeline: pipeline}
}

// StartJob records the active id, mints a fresh CancelToken, publishes
// QUEUED, spawns the worker, and returns true. Returns false immediately
// if a job is already active (§4.3).
func (r *Runner) StartJob(jobID, inputPath, outputDir string, params map[string]string) bool {
	r.mu.Lock()
	if r.activeJobID != "" {
		r.mu.Unlock()
		return false
	}
	token := modelspec.NewCancelToken()
	r.activeJobID = jobID
	r.cancel = token
	r.mu.Unlock()

	r.store.Set(modelspec.JobStatus{JobID: jobID, State: modelspec.EJobState.Queued(), Progress: 0})

	go r.runWorker(jobID, inputPath, outputDir, params, token)
	return true
}

func (r *Runner) runWorker(jobID, inputPath, outputDir string, params map[string]string, token *modelspec.CancelToken) {
	startedAt := time.Now().UnixMilli()

	r.store.Set(modelspec.JobStatus{
		JobID:         jobID,
		State:         modelspec.EJobState.Running(),
		Progress:      0,
		StartedUnixMs: startedAt,
	})

	progress := func(p float64, msg string) {
		if token.Cancelled() {
			return
		}
		r.store.Set(modelspec.JobStatus{
			JobID:         jobID,
			State:         modelspec.EJobState.Running(),
			Progress:      clampProgress(p),
			Message:       msg,
			StartedUnixMs: startedAt,
		})
	}

	outputs, err := r.pipeline.Run(inputPath, outputDir, params, token, progress)
	finishedAt := time.Now().UnixMilli()

	switch {
	case err == nil:
		r.store.Set(modelspec.JobStatus{
			JobID:          jobID,
			State:          modelspec.EJobState.Completed(),
			Progress:       1,
			Outputs:        outputs,
			StartedUnixMs:  startedAt,
			FinishedUnixMs: finishedAt,
		})
	case token.Cancelled():
		r.store.Set(modelspec.JobStatus{
			JobID:          jobID,
			State:          modelspec.EJobState.Cancelled(),
			Message:        "cancelled",
			StartedUnixMs:  startedAt,
			FinishedUnixMs: finishedAt,
		})
	default:
		r.store.Set(modelspec.JobStatus{
			JobID:          jobID,
			State:          modelspec.EJobState.Failed(),
			Message:        err.Error(),
			StartedUnixMs:  startedAt,
			FinishedUnixMs: finishedAt,
		})
	}

	r.mu.Lock()
	r.activeJobID = ""
	r.cancel = nil
	r.mu.Unlock()
}

// StopJob signals the cancel token if jobID matches the active id.
func (r *Runner) StopJob(jobID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.activeJobID != jobID || r.cancel == nil {
		return false
	}
	r.cancel.Cancel()
	return true
}

// ActiveJobID returns the current active job id, or "" if idle.
func (r *Runner) ActiveJobID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeJobID
}

func clampProgress(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
