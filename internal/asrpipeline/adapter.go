package asrpipeline

import (
	"github.com/rishikanthc/scriberr-engine/internal/audio"
	"github.com/rishikanthc/scriberr-engine/internal/enginerr"
	"github.com/rishikanthc/scriberr-engine/internal/jobrunner"
	"github.com/rishikanthc/scriberr-engine/internal/modelmanager"
	"github.com/rishikanthc/scriberr-engine/internal/modelspec"
)

// ManagerPipeline adapts the Model Manager's currently loaded model into a
// Pipeline per call, grounded on backend.py's diarize()/recognize() pattern
// of calling model_manager.get_loaded() at the start of every job rather
// than binding a model at construction time. The same shape applies here
// since LoadModel and StartJob are independent RPCs separated in time.
type ManagerPipeline struct {
	Manager              *modelmanager.Manager
	Decoder              audio.Decoder
	MaxConcurrentBatches int64
}

func (mp *ManagerPipeline) Run(inputPath, outputDir string, paramsKV map[string]string, cancel *modelspec.CancelToken, progress jobrunner.ProgressFunc) (map[string]string, error) {
	loaded := mp.Manager.GetLoaded()
	if loaded == nil {
		return nil, enginerr.New(enginerr.EKind.FailedPrecondition(), "no model loaded")
	}
	recognizer, ok := loaded.Handle.(Recognizer)
	if !ok {
		return nil, enginerr.New(enginerr.EKind.PipelineFailed(), "loaded model handle does not implement Recognizer")
	}

	p := &Pipeline{
		ModelID:              loaded.Spec.ModelID,
		Recognizer:           recognizer,
		Decoder:              mp.Decoder,
		MaxConcurrentBatches: mp.MaxConcurrentBatches,
	}
	return p.Run(inputPath, outputDir, paramsKV, cancel, progress)
}
