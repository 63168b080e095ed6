package root

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/internal/catalog"
	"github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/internal/engine"
	"github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/internal/sink"
	"github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/internal/tui"
)

func newBuildCmd() *cobra.Command {
	var budget int
	var hostURL string
	var catalogURL string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Open the interactive character builder",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg := loadConfig()
			if budget > 0 {
				cfg.TotalBudget = budget
			}
			if hostURL != "" {
				cfg.HostURL = hostURL
			}
			if catalogURL != "" {
				cfg.CatalogURL = catalogURL
			}

			deps := tui.Deps{
				Loader:      catalog.NewLoader(cfg.CatalogURL),
				Host:        sink.New(cfg.HostURL, os.Stdout),
				IDs:         engine.NewIDSource(),
				TotalBudget: cfg.TotalBudget,
				PageSize:    cfg.PageSize,
			}

			// The archive is best-effort: a broken DB should not stop a build
			// session, it only means the export isn't recorded.
			repo, cleanup, err := openSnapshots(ctx, cfg)
			if err != nil {
				log.Warn().Err(err).Msg("snapshot archive unavailable; exports will not be recorded")
			} else {
				defer cleanup()
				deps.Snapshots = repo
			}

			return tui.RunBuilder(ctx, deps, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&budget, "budget", "b", 0, "Starting RP allowance (default: config, 1000)")
	cmd.Flags().StringVar(&hostURL, "host", "", "Chat host base URL (empty: print export to console)")
	cmd.Flags().StringVar(&catalogURL, "catalog", "", "Catalog JSON URL override")

	return cmd
}
