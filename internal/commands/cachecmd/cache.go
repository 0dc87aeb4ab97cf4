// Package cachecmd implements the "gwosc cache" command group.
package cachecmd

import (
	"github.com/spf13/cobra"

	"github.com/gwopen/gwosc/internal/cache"
	"github.com/gwopen/gwosc/internal/commands/shared"
	"github.com/gwopen/gwosc/internal/config"
)

// NewCommand creates the cache command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the persistent response cache",
	}

	cmd.AddCommand(newPurgeCommand())

	return cmd
}

func newPurgeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Remove stale entries from the response cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(shared.GetConfigPath())
			if err != nil {
				return err
			}

			store, err := cache.NewSQLite(cache.SQLiteConfig{
				Path: settings.Cache.Path,
				TTL:  settings.Cache.TTL,
			})
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Purge()
			if err != nil {
				return err
			}

			if shared.GetJSON() {
				return shared.EmitJSON(cmd.OutOrStdout(), struct {
					shared.JSONResponse
					Removed int64 `json:"removed"`
				}{
					JSONResponse: shared.JSONResponse{Version: "1.0", Command: "cache purge", Success: true},
					Removed:      removed,
				})
			}

			cmd.Printf("removed %d stale entries\n", removed)
			return nil
		},
	}
}
