package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCalendarCmd() *cobra.Command {
	var months int
	var glyphs string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Render the results calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/calendar?months=%d", months)
			if glyphs != "" {
				path += "&glyphs=" + glyphs
			}

			var result CalendarResult
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&months, "months", 1, "Number of months to render (1-12)")
	cmd.Flags().StringVar(&glyphs, "glyphs", "", "Glyph mode: ascii, squares")

	return cmd
}
