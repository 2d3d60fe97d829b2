// Package enginecli builds the `serve` subcommand shared by both engine
// binaries, grounded on cmd/root.go's cobra rootCmd/PersistentPreRunE
// pattern and uihooks.go's signal.Notify-based shutdown handling.
package enginecli

import (
	"fmt"
	"net"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/rishikanthc/scriberr-engine/internal/audio"
	"github.com/rishikanthc/scriberr-engine/internal/config"
	"github.com/rishikanthc/scriberr-engine/internal/enginelog"
	"github.com/rishikanthc/scriberr-engine/internal/enginepb"
	"github.com/rishikanthc/scriberr-engine/internal/jobrunner"
	"github.com/rishikanthc/scriberr-engine/internal/modelbackend"
	"github.com/rishikanthc/scriberr-engine/internal/modelmanager"
	"github.com/rishikanthc/scriberr-engine/internal/service"
	"github.com/rishikanthc/scriberr-engine/internal/statusstore"
)

// Options parameterizes the shared serve wiring over the two engine
// binaries; only the pipeline construction and RequireDiarKind differ
// between them.
type Options struct {
	EngineName            string
	DefaultBackendCommand string
	NewPipeline           func(manager *modelmanager.Manager, decoder audio.Decoder) jobrunner.Pipeline
	// RequireDiarKind marks the diarization engine binary, where a model_id
	// outside the pyannote/sortformer families must fail to load (§4.2)
	// rather than loading permissively the way the ASR engine does.
	RequireDiarKind bool
}

var (
	flagSocket       string
	flagHost         string
	flagPort         int
	flagLogLevel     string
	flagConfig       string
	flagBackendCmd   string
	flagLogDir       string
)

// NewServeCommand builds the `serve` subcommand per §6:
// serve(--socket <path> | --host <h> --port <p>) [--log-level LEVEL].
func NewServeCommand(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: fmt.Sprintf("run the %s gRPC engine", opts.EngineName),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}

	cmd.Flags().StringVar(&flagSocket, "socket", "", "unix domain socket path to listen on")
	cmd.Flags().StringVar(&flagHost, "host", "", "TCP host to listen on, used when --socket is unset")
	cmd.Flags().IntVar(&flagPort, "port", 0, "TCP port to listen on, used when --socket is unset")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level: none|panic|error|warn|info|debug (default info)")
	cmd.Flags().StringVar(&flagConfig, "config", "", "optional TOML config file")
	cmd.Flags().StringVar(&flagBackendCmd, "backend-command", "", "external model backend executable")
	cmd.Flags().StringVar(&flagLogDir, "log-dir", "", "directory engine log files are written to (default .)")

	return cmd
}

func runServe(opts Options) error {
	fileCfg, err := config.LoadFile(flagConfig)
	if err != nil {
		return err
	}

	level := flagLogLevel
	if level == "" && fileCfg.LogLevel != "" {
		level = fileCfg.LogLevel
	}
	logLevel, err := enginelog.ParseLevel(orDefault(level, "info"))
	if err != nil {
		return errors.Wrap(err, "parsing --log-level")
	}

	logDir := flagLogDir
	if logDir == "" {
		logDir = config.GetEnv(config.EnvLogLocation)
	}
	if logDir == "" {
		logDir = "."
	}
	log, err := enginelog.New(opts.EngineName, logLevel, logDir)
	if err != nil {
		return err
	}
	defer log.Close()

	backendCommand := flagBackendCmd
	if backendCommand == "" {
		backendCommand = config.GetEnv(config.EnvBackendCommand)
	}
	if backendCommand == "" {
		backendCommand = opts.DefaultBackendCommand
	}
	loader := modelbackend.NewLoader(backendCommand)
	loader.RequireDiarKind = opts.RequireDiarKind

	manager := modelmanager.New(loader, cudaAvailable)
	store := statusstore.New()
	decoder := audio.NewWAVDecoder()
	pipeline := opts.NewPipeline(manager, decoder)
	runner := jobrunner.New(store, pipeline)
	srv := service.New(manager, runner, store, log)

	lis, err := listen()
	if err != nil {
		log.Logf(enginelog.ELevel.Error(), "bind failed: %v", err)
		return err
	}

	grpcServer := grpc.NewServer()
	enginepb.RegisterAsrEngineServer(grpcServer, srv)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Log(enginelog.ELevel.Info(), "shutdown signal received")
		grpcServer.GracefulStop()
	}()

	log.Logf(enginelog.ELevel.Info(), "%s listening on %s", opts.EngineName, lis.Addr())
	return grpcServer.Serve(lis)
}

func listen() (net.Listener, error) {
	if flagSocket != "" {
		_ = os.Remove(flagSocket)
		return net.Listen("unix", flagSocket)
	}
	if flagHost == "" && flagPort == 0 {
		return nil, errors.New("either --socket or --host/--port must be set")
	}
	return net.Listen("tcp", fmt.Sprintf("%s:%d", flagHost, flagPort))
}

// cudaAvailable probes for an NVIDIA driver the simple way an operator
// would: the presence of nvidia-smi on PATH. It is a coarse stand-in for a
// real CUDA runtime probe, which lives outside this repo's scope (§1's
// "opaque" model backend owns the actual device selection).
func cudaAvailable() bool {
	_, err := exec.LookPath("nvidia-smi")
	return err == nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
