// Package catalog implements the "gwosc catalog" command group.
package catalog

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/gwopen/gwosc/internal/commands/shared"
	"github.com/gwopen/gwosc/pkg/catalog"
)

// NewCommand creates the catalog command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse event catalogs",
	}

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newEventsCommand())

	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the published event catalogs",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewClient()
			if err != nil {
				return err
			}

			list, err := client.CatalogList(cmd.Context())
			if err != nil {
				return err
			}

			names := make([]string, 0, len(list))
			for name := range list {
				names = append(names, name)
			}
			sort.Strings(names)

			if shared.GetJSON() {
				return shared.EmitJSON(cmd.OutOrStdout(), struct {
					shared.JSONResponse
					Catalogs []string `json:"catalogs"`
				}{
					JSONResponse: shared.JSONResponse{Version: "1.0", Command: "catalog list", Success: true},
					Catalogs:     names,
				})
			}

			for _, name := range names {
				cmd.Println(shared.Bold.Render(name) + " " + shared.RenderLabel(list[name].Description))
			}
			return nil
		},
	}
}

func newEventsCommand() *cobra.Command {
	var detector string

	cmd := &cobra.Command{
		Use:   "events <catalog>",
		Short: "List the events of a legacy catalog release",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewClient()
			if err != nil {
				return err
			}

			events, err := catalog.Events(cmd.Context(), client, args[0], catalog.Options{
				Detector: detector,
			})
			if err != nil {
				return err
			}

			if shared.GetJSON() {
				return shared.EmitJSON(cmd.OutOrStdout(), struct {
					shared.JSONResponse
					Catalog string   `json:"catalog"`
					Events  []string `json:"events"`
				}{
					JSONResponse: shared.JSONResponse{Version: "1.0", Command: "catalog events", Success: true},
					Catalog:      args[0],
					Events:       events,
				})
			}

			for _, event := range events {
				cmd.Println(event)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&detector, "detector", "", "Keep events observed by this detector")

	return cmd
}
