// Package datasets implements the "gwosc datasets" command group.
package datasets

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gwopen/gwosc/internal/commands/shared"
	"github.com/gwopen/gwosc/pkg/datasets"
	"github.com/gwopen/gwosc/pkg/segments"
)

// NewCommand creates the datasets command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "List and classify archive datasets",
	}

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newTypeCommand())

	return cmd
}

func newListCommand() *cobra.Command {
	var (
		dstype   string
		detector string
		start    int64
		end      int64
		match    string
		catalog  string
		version  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List dataset names matching the given filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewClient()
			if err != nil {
				return err
			}

			opts := datasets.FindOptions{
				Type:     datasets.Type(dstype),
				Detector: detector,
				Match:    match,
				Catalog:  catalog,
				Version:  version,
			}
			if start != 0 || end != 0 {
				window := segments.New(start, end)
				opts.Window = &window
			}

			names, err := datasets.Find(cmd.Context(), client, opts)
			if err != nil {
				return err
			}

			if shared.GetJSON() {
				return shared.EmitJSON(cmd.OutOrStdout(), struct {
					shared.JSONResponse
					Datasets []string `json:"datasets"`
				}{
					JSONResponse: shared.JSONResponse{Version: "1.0", Command: "datasets list", Success: true},
					Datasets:     names,
				})
			}

			for _, name := range names {
				cmd.Println(name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dstype, "type", "", "Dataset type (run, catalog, event)")
	cmd.Flags().StringVar(&detector, "detector", "", "Detector prefix, e.g. H1")
	cmd.Flags().Int64Var(&start, "start", 0, "GPS window start")
	cmd.Flags().Int64Var(&end, "end", 0, "GPS window end")
	cmd.Flags().StringVar(&match, "match", "", "Regular expression filter on names")
	cmd.Flags().StringVar(&catalog, "catalog", "", "Catalog short name (event datasets only)")
	cmd.Flags().IntVar(&version, "version", 0, "Data-release version (event datasets only)")

	return cmd
}

func newTypeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "type <dataset>",
		Short: "Show whether a dataset is a run, catalog, or event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewClient()
			if err != nil {
				return err
			}

			dstype, err := datasets.TypeOf(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}

			if shared.GetJSON() {
				return shared.EmitJSON(cmd.OutOrStdout(), struct {
					shared.JSONResponse
					Dataset string `json:"dataset"`
					Type    string `json:"type"`
				}{
					JSONResponse: shared.JSONResponse{Version: "1.0", Command: "datasets type", Success: true},
					Dataset:      args[0],
					Type:         string(dstype),
				})
			}

			cmd.Println(fmt.Sprintf("%s %s", shared.RenderLabel(args[0])+":", string(dstype)))
			return nil
		},
	}
}
