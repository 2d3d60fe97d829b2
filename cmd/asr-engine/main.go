// Command asr-engine runs the automatic speech recognition engine: the
// gRPC AsrEngine service of §4.6 backed by the chunked-batched ASR
// pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rishikanthc/scriberr-engine/internal/asrpipeline"
	"github.com/rishikanthc/scriberr-engine/internal/audio"
	"github.com/rishikanthc/scriberr-engine/internal/enginecli"
	"github.com/rishikanthc/scriberr-engine/internal/jobrunner"
	"github.com/rishikanthc/scriberr-engine/internal/modelmanager"
)

var rootCmd = &cobra.Command{
	Use:   "asr-engine",
	Short: "long-lived ASR inference engine",
}

func main() {
	opts := enginecli.Options{
		EngineName: "asr-engine",
		NewPipeline: func(manager *modelmanager.Manager, decoder audio.Decoder) jobrunner.Pipeline {
			return &asrpipeline.ManagerPipeline{
				Manager:              manager,
				Decoder:              decoder,
				MaxConcurrentBatches: 1,
			}
		},
	}
	rootCmd.AddCommand(enginecli.NewServeCommand(opts))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
