// Package run implements the "gwosc run" command group.
package run

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gwopen/gwosc/internal/commands/shared"
	"github.com/gwopen/gwosc/pkg/datasets"
	gwoscerrors "github.com/gwopen/gwosc/pkg/errors"
)

// NewCommand creates the run command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Query observing-run datasets",
	}

	cmd.AddCommand(newSegmentCommand())
	cmd.AddCommand(newAtGPSCommand())

	return cmd
}

func newSegmentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "segment <run>",
		Short: "Show the GPS interval covered by an observing run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewClient()
			if err != nil {
				return err
			}

			seg, err := datasets.RunSegment(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}

			if shared.GetJSON() {
				return shared.EmitJSON(cmd.OutOrStdout(), struct {
					shared.JSONResponse
					Run   string `json:"run"`
					Start int64  `json:"start"`
					End   int64  `json:"end"`
				}{
					JSONResponse: shared.JSONResponse{Version: "1.0", Command: "run segment", Success: true},
					Run:          args[0],
					Start:        seg.Start,
					End:          seg.End,
				})
			}

			cmd.Printf("[%d, %d)\n", seg.Start, seg.End)
			return nil
		},
	}
}

func newAtGPSCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "at-gps <gps>",
		Short: "Find the observing run containing a GPS time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gps, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return &gwoscerrors.ValidationError{Field: "gps", Message: err.Error()}
			}

			client, err := shared.NewClient()
			if err != nil {
				return err
			}

			name, err := datasets.RunAtGPS(cmd.Context(), client, gps)
			if err != nil {
				return err
			}

			if shared.GetJSON() {
				return shared.EmitJSON(cmd.OutOrStdout(), struct {
					shared.JSONResponse
					GPS int64  `json:"gps"`
					Run string `json:"run"`
				}{
					JSONResponse: shared.JSONResponse{Version: "1.0", Command: "run at-gps", Success: true},
					GPS:          gps,
					Run:          name,
				})
			}

			cmd.Println(name)
			return nil
		},
	}
}
