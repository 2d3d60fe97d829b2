// Command diarize-engine runs the speaker diarization engine: the same
// gRPC AsrEngine service definition as asr-engine (§9's Open Questions
// note this reuse is intentional), backed by the pyannote/sortformer
// dispatch pipeline of §4.5.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rishikanthc/scriberr-engine/internal/audio"
	"github.com/rishikanthc/scriberr-engine/internal/diarpipeline"
	"github.com/rishikanthc/scriberr-engine/internal/enginecli"
	"github.com/rishikanthc/scriberr-engine/internal/jobrunner"
	"github.com/rishikanthc/scriberr-engine/internal/modelmanager"
)

var rootCmd = &cobra.Command{
	Use:   "diarize-engine",
	Short: "long-lived speaker diarization inference engine",
}

func main() {
	opts := enginecli.Options{
		EngineName:      "diarize-engine",
		RequireDiarKind: true,
		NewPipeline: func(manager *modelmanager.Manager, decoder audio.Decoder) jobrunner.Pipeline {
			return &diarpipeline.ManagerPipeline{
				Manager: manager,
				Decoder: decoder,
			}
		},
	}
	rootCmd.AddCommand(enginecli.NewServeCommand(opts))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
