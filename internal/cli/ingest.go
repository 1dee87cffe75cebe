package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// ingestRequest is the body for POST /api/v1/messages
type ingestRequest struct {
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func newIngestCmd() *cobra.Command {
	var authorID string
	var stdin bool

	cmd := &cobra.Command{
		Use:   "ingest [content]",
		Short: "Ingest one result message",
		Long: `Ingest one chat message containing result lines.

The message content is taken from the argument, or from stdin with --stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var content string
			switch {
			case stdin:
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				content = string(data)
			case len(args) == 1:
				content = args[0]
			default:
				return fmt.Errorf("provide message content or --stdin")
			}

			req := ingestRequest{
				AuthorID:  authorID,
				Content:   content,
				CreatedAt: time.Now(),
			}

			var result IngestResult
			if err := client.Post("/api/v1/messages", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&authorID, "author", "", "Message author id")
	cmd.Flags().BoolVar(&stdin, "stdin", false, "Read message content from stdin")

	return cmd
}
