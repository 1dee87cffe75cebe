package cli

import (
	"github.com/spf13/cobra"
)

// catchupRequest is the body for POST /api/v1/catchup
type catchupRequest struct {
	TranscriptPath string `json:"transcript_path,omitempty"`
}

func newCatchupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catchup <transcript-path>",
		Short: "Replay a message transcript",
		Long: `Replay a JSONL message transcript through the ingestion pipeline.

The path is resolved on the server, so it must be reachable from the
server process.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := catchupRequest{TranscriptPath: args[0]}

			var result CatchupReport
			if err := client.Post("/api/v1/catchup", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	return cmd
}
