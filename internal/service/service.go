// Package service implements the gRPC Service Surface of §4.6: the
// AsrEngine server, translating wire requests into Model Manager, Job
// Runner and Status Store calls and enginerr.Kind into gRPC status codes.
// It never leaks a Go stack trace to a caller (§7); every returned error is
// built from status.New with a kind-mapped code and a plain message.
package service

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rishikanthc/scriberr-engine/internal/enginelog"
	"github.com/rishikanthc/scriberr-engine/internal/enginepb"
	"github.com/rishikanthc/scriberr-engine/internal/enginerr"
	"github.com/rishikanthc/scriberr-engine/internal/modelmanager"
	"github.com/rishikanthc/scriberr-engine/internal/modelspec"
	"github.com/rishikanthc/scriberr-engine/internal/procinfo"
	"github.com/rishikanthc/scriberr-engine/internal/statusstore"
)

// Runner is the subset of jobrunner.Runner the service depends on.
type Runner interface {
	StartJob(jobID, inputPath, outputDir string, params map[string]string) bool
	StopJob(jobID string) bool
	ActiveJobID() string
}

// Server implements enginepb.AsrEngineServer for one engine process (§4.6).
// The same type backs both the ASR and diarization binaries; only the
// wired Manager/Runner/Pipeline differ.
type Server struct {
	enginepb.UnimplementedAsrEngineServer

	manager *modelmanager.Manager
	runner  Runner
	store   *statusstore.Store
	log     enginelog.Logger
}

func New(manager *modelmanager.Manager, runner Runner, store *statusstore.Store, log enginelog.Logger) *Server {
	return &Server{manager: manager, runner: runner, store: store, log: log}
}

func (s *Server) LoadModel(ctx context.Context, req *enginepb.ModelSpec) (*enginepb.LoadModelReply, error) {
	if req.GetModelId() == "" {
		return nil, invalidArgument("model_id is required")
	}
	spec := modelspec.ModelSpec{
		ModelID:        req.GetModelId(),
		ModelName:      req.GetModelName(),
		ModelPath:      req.GetModelPath(),
		Providers:      req.GetProviders(),
		IntraOpThreads: int(req.GetIntraOpThreads()),
		VADBackend:     req.GetVadBackend(),
	}
	loaded, err := s.manager.Load(spec, req.GetAuthToken())
	if err != nil {
		return nil, kindToStatus(err)
	}
	return &enginepb.LoadModelReply{ModelId: loaded.Spec.ModelID, Ok: true, Message: "loaded"}, nil
}

func (s *Server) UnloadModel(ctx context.Context, req *enginepb.UnloadModelRequest) (*enginepb.OkReply, error) {
	ok := s.manager.Unload(req.GetModelId())
	msg := "unloaded"
	if !ok {
		msg = "no matching model loaded"
	}
	return &enginepb.OkReply{Ok: ok, Message: msg}, nil
}

func (s *Server) StartJob(ctx context.Context, req *enginepb.StartJobRequest) (*enginepb.StartJobReply, error) {
	if req.GetJobId() == "" || req.GetInputPath() == "" || req.GetOutputDir() == "" {
		return nil, invalidArgument("job_id, input_path and output_dir are required")
	}
	loaded := s.manager.GetLoaded()
	if loaded == nil {
		return nil, kindToStatus(enginerr.New(enginerr.EKind.FailedPrecondition(), "no model loaded"))
	}
	if req.GetModelId() != "" && req.GetModelId() != loaded.Spec.ModelID {
		return nil, invalidArgument("model_id does not match the loaded model")
	}
	accepted := s.runner.StartJob(req.GetJobId(), req.GetInputPath(), req.GetOutputDir(), req.GetParams())
	if !accepted {
		return nil, kindToStatus(enginerr.New(enginerr.EKind.ResourceExhausted(), "a job is already active"))
	}
	return &enginepb.StartJobReply{JobId: req.GetJobId(), Accepted: true, Message: "queued"}, nil
}

func (s *Server) StopJob(ctx context.Context, req *enginepb.StopJobRequest) (*enginepb.OkReply, error) {
	ok := s.runner.StopJob(req.GetJobId())
	msg := "stop signalled"
	if !ok {
		msg = "job not active"
	}
	return &enginepb.OkReply{Ok: ok, Message: msg}, nil
}

func (s *Server) GetJobStatus(ctx context.Context, req *enginepb.GetJobStatusRequest) (*enginepb.JobStatus, error) {
	st, ok := s.store.Get(req.GetJobId())
	if !ok {
		return nil, kindToStatus(enginerr.New(enginerr.EKind.NotFound(), "unknown job_id"))
	}
	return toWireStatus(st), nil
}

func (s *Server) StreamJobStatus(req *enginepb.GetJobStatusRequest, stream enginepb.AsrEngine_StreamJobStatusServer) error {
	sink := s.store.Subscribe(req.GetJobId())
	defer s.store.Unsubscribe(req.GetJobId(), sink)

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case st, ok := <-sink.C():
			if !ok {
				return nil
			}
			if err := stream.Send(toWireStatus(st)); err != nil {
				return err
			}
		}
	}
}

func (s *Server) ListLoadedModels(ctx context.Context, req *enginepb.ListLoadedModelsRequest) (*enginepb.ListLoadedModelsReply, error) {
	loaded := s.manager.GetLoaded()
	if loaded == nil {
		return &enginepb.ListLoadedModelsReply{}, nil
	}
	return &enginepb.ListLoadedModelsReply{
		Models: []*enginepb.LoadedModelInfo{
			{
				ModelId:      loaded.Spec.ModelID,
				ModelName:    loaded.Spec.ModelName,
				Provider:     loaded.Provider.String(),
				LoadedUnixMs: loaded.LoadedAt.UnixMilli(),
			},
		},
	}, nil
}

func (s *Server) GetEngineInfo(ctx context.Context, req *enginepb.GetEngineInfoRequest) (*enginepb.EngineInfo, error) {
	activeJobID := s.runner.ActiveJobID()
	loadedModelID := ""
	if loaded := s.manager.GetLoaded(); loaded != nil {
		loadedModelID = loaded.Spec.ModelID
	}
	rss, err := procinfo.RSSBytes()
	if err != nil && s.log != nil {
		s.log.Logf(enginelog.ELevel.Warn(), "rss read failed: %v", err)
	}
	return &enginepb.EngineInfo{
		Busy:          activeJobID != "",
		ActiveJobId:   activeJobID,
		LoadedModelId: loadedModelID,
		RssBytes:      rss,
	}, nil
}

func toWireStatus(s modelspec.JobStatus) *enginepb.JobStatus {
	return &enginepb.JobStatus{
		JobId:          s.JobID,
		State:          enginepb.JobState(s.State),
		Message:        s.Message,
		Progress:       s.Progress,
		Outputs:        s.Outputs,
		StartedUnixMs:  s.StartedUnixMs,
		FinishedUnixMs: s.FinishedUnixMs,
	}
}

func invalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}

// kindToStatus translates an enginerr.Kind-tagged error into a gRPC status,
// per §7: only the Kind-derived code and message cross the boundary, never
// a stack trace.
func kindToStatus(err error) error {
	if err == nil {
		return nil
	}
	return status.Error(enginerr.KindOf(err).Code(), err.Error())
}
