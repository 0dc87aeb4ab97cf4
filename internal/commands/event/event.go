// Package event implements the "gwosc event" command group.
package event

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gwopen/gwosc/internal/commands/shared"
	"github.com/gwopen/gwosc/pkg/datasets"
	gwoscerrors "github.com/gwopen/gwosc/pkg/errors"
)

// NewCommand creates the event command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Query transient-event datasets",
	}

	cmd.AddCommand(newGPSCommand())
	cmd.AddCommand(newSegmentCommand())
	cmd.AddCommand(newDetectorsCommand())
	cmd.AddCommand(newAtGPSCommand())

	return cmd
}

func newGPSCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gps <event>",
		Short: "Show the GPS time of an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewClient()
			if err != nil {
				return err
			}

			gps, err := datasets.EventGPS(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}

			if shared.GetJSON() {
				return shared.EmitJSON(cmd.OutOrStdout(), struct {
					shared.JSONResponse
					Event string  `json:"event"`
					GPS   float64 `json:"gps"`
				}{
					JSONResponse: shared.JSONResponse{Version: "1.0", Command: "event gps", Success: true},
					Event:        args[0],
					GPS:          gps,
				})
			}

			cmd.Println(strconv.FormatFloat(gps, 'f', -1, 64))
			return nil
		},
	}
}

func newSegmentCommand() *cobra.Command {
	var detector string

	cmd := &cobra.Command{
		Use:   "segment <event>",
		Short: "Show the GPS interval covered by an event's strain files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewClient()
			if err != nil {
				return err
			}

			seg, err := datasets.EventSegment(cmd.Context(), client, args[0], detector)
			if err != nil {
				return err
			}

			if shared.GetJSON() {
				return shared.EmitJSON(cmd.OutOrStdout(), struct {
					shared.JSONResponse
					Event string `json:"event"`
					Start int64  `json:"start"`
					End   int64  `json:"end"`
				}{
					JSONResponse: shared.JSONResponse{Version: "1.0", Command: "event segment", Success: true},
					Event:        args[0],
					Start:        seg.Start,
					End:          seg.End,
				})
			}

			cmd.Printf("[%d, %d)\n", seg.Start, seg.End)
			return nil
		},
	}

	cmd.Flags().StringVar(&detector, "detector", "", "Restrict to one detector")

	return cmd
}

func newDetectorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detectors <event>",
		Short: "List the detectors with strain data for an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewClient()
			if err != nil {
				return err
			}

			dets, err := datasets.EventDetectors(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}

			if shared.GetJSON() {
				return shared.EmitJSON(cmd.OutOrStdout(), struct {
					shared.JSONResponse
					Event     string   `json:"event"`
					Detectors []string `json:"detectors"`
				}{
					JSONResponse: shared.JSONResponse{Version: "1.0", Command: "event detectors", Success: true},
					Event:        args[0],
					Detectors:    dets,
				})
			}

			for _, det := range dets {
				cmd.Println(det)
			}
			return nil
		},
	}
}

func newAtGPSCommand() *cobra.Command {
	var tol float64

	cmd := &cobra.Command{
		Use:   "at-gps <gps>",
		Short: "Find the event dataset near a GPS time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gps, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return &gwoscerrors.ValidationError{Field: "gps", Message: err.Error()}
			}

			client, err := shared.NewClient()
			if err != nil {
				return err
			}

			name, err := datasets.EventAtGPS(cmd.Context(), client, gps, tol)
			if err != nil {
				return err
			}

			if shared.GetJSON() {
				return shared.EmitJSON(cmd.OutOrStdout(), struct {
					shared.JSONResponse
					GPS   float64 `json:"gps"`
					Event string  `json:"event"`
				}{
					JSONResponse: shared.JSONResponse{Version: "1.0", Command: "event at-gps", Success: true},
					GPS:          gps,
					Event:        name,
				})
			}

			cmd.Println(name)
			return nil
		},
	}

	cmd.Flags().Float64Var(&tol, "tol", 1, "Match tolerance in seconds")

	return cmd
}
