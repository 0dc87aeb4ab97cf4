// Package timeline implements the "gwosc timeline" command.
package timeline

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gwopen/gwosc/internal/commands/shared"
	gwoscerrors "github.com/gwopen/gwosc/pkg/errors"
	"github.com/gwopen/gwosc/pkg/segments"
	"github.com/gwopen/gwosc/pkg/timeline"
)

// NewCommand creates the timeline command
func NewCommand() *cobra.Command {
	var clip bool

	cmd := &cobra.Command{
		Use:   "timeline <flag> <start> <end>",
		Short: "Fetch data-quality segments for a Timeline flag",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return &gwoscerrors.ValidationError{Field: "start", Message: err.Error()}
			}
			end, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return &gwoscerrors.ValidationError{Field: "end", Message: err.Error()}
			}

			client, err := shared.NewClient()
			if err != nil {
				return err
			}

			var segs []segments.Segment
			if clip {
				segs, err = timeline.SegmentsClipped(cmd.Context(), client, args[0], start, end)
			} else {
				segs, err = timeline.Segments(cmd.Context(), client, args[0], start, end)
			}
			if err != nil {
				return err
			}

			if shared.GetJSON() {
				return shared.EmitJSON(cmd.OutOrStdout(), struct {
					shared.JSONResponse
					Flag     string             `json:"flag"`
					Start    int64              `json:"start"`
					End      int64              `json:"end"`
					Segments []segments.Segment `json:"segments"`
				}{
					JSONResponse: shared.JSONResponse{Version: "1.0", Command: "timeline", Success: true},
					Flag:         args[0],
					Start:        start,
					End:          end,
					Segments:     segs,
				})
			}

			for _, seg := range segs {
				cmd.Printf("%d %d\n", seg.Start, seg.End)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clip, "clip", false, "Clip segments to the query window")

	return cmd
}
