package diarpipeline

import (
	"github.com/rishikanthc/scriberr-engine/internal/audio"
	"github.com/rishikanthc/scriberr-engine/internal/enginerr"
	"github.com/rishikanthc/scriberr-engine/internal/jobrunner"
	"github.com/rishikanthc/scriberr-engine/internal/modelmanager"
	"github.com/rishikanthc/scriberr-engine/internal/modelspec"
)

// ManagerPipeline mirrors asrpipeline.ManagerPipeline: it resolves the
// currently loaded model at the start of each job rather than binding a
// Diarizer at construction, directly grounded on backend.py's diarize()
// calling self.model_manager.get_loaded() as its first step.
type ManagerPipeline struct {
	Manager *modelmanager.Manager
	Decoder audio.Decoder
}

func (mp *ManagerPipeline) Run(inputPath, outputDir string, paramsKV map[string]string, cancel *modelspec.CancelToken, progress jobrunner.ProgressFunc) (map[string]string, error) {
	loaded := mp.Manager.GetLoaded()
	if loaded == nil {
		return nil, enginerr.New(enginerr.EKind.FailedPrecondition(), "no model loaded")
	}

	params := ParamsFromKV(paramsKV)
	if params.Model != "" && params.Model != loaded.Spec.ModelName {
		spec := loaded.Spec
		spec.ModelName = params.Model
		updated, err := mp.Manager.EnsureLoaded(spec, params.HFToken)
		if err != nil {
			return nil, enginerr.Wrap(enginerr.EKind.LoadFailed(), err, "reloading model for override")
		}
		loaded = updated
	}

	diarizer, ok := loaded.Handle.(Diarizer)
	if !ok {
		return nil, enginerr.New(enginerr.EKind.PipelineFailed(), "loaded model handle does not implement Diarizer")
	}

	p := &Pipeline{
		ModelID:   loaded.Spec.ModelID,
		ModelName: loaded.Spec.ModelName,
		Diarizer:  diarizer,
		Decoder:   mp.Decoder,
	}
	return p.Run(inputPath, outputDir, paramsKV, cancel, progress)
}
