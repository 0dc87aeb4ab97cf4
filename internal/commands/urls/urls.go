// Package urls implements the "gwosc urls" command.
package urls

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gwopen/gwosc/internal/commands/shared"
	gwoscerrors "github.com/gwopen/gwosc/pkg/errors"
	"github.com/gwopen/gwosc/pkg/locate"
)

// NewCommand creates the urls command
func NewCommand() *cobra.Command {
	var (
		dataset    string
		version    int
		sampleRate int
		format     string
	)

	cmd := &cobra.Command{
		Use:   "urls <detector> <start> <end>",
		Short: "Locate strain-file URLs for a detector and GPS window",
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

			urls, err := locate.URLs(cmd.Context(), client, args[0], start, end, locate.Options{
				Dataset:    dataset,
				Version:    version,
				SampleRate: sampleRate,
				Format:     format,
			})
			if err != nil {
				return err
			}

			if shared.GetJSON() {
				return shared.EmitJSON(cmd.OutOrStdout(), struct {
					shared.JSONResponse
					Detector string   `json:"detector"`
					Start    int64    `json:"start"`
					End      int64    `json:"end"`
					URLs     []string `json:"urls"`
				}{
					JSONResponse: shared.JSONResponse{Version: "1.0", Command: "urls", Success: true},
					Detector:     args[0],
					Start:        start,
					End:          end,
					URLs:         urls,
				})
			}

			for _, u := range urls {
				cmd.Println(u)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", "", "Query one dataset instead of searching")
	cmd.Flags().IntVar(&version, "version", 0, "Data-release version (event datasets only)")
	cmd.Flags().IntVar(&sampleRate, "sample-rate", locate.DefaultSampleRate, "Sample rate (Hz)")
	cmd.Flags().StringVar(&format, "format", locate.DefaultFormat, "File format (extension)")

	return cmd
}
