package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived export snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg := loadConfig()

			repo, cleanup, err := openSnapshots(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			list, err := repo.ListRecent(ctx, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSend, "Export history"))
			if len(list) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("no exports archived yet — run `starsea build` and press e"))
				return nil
			}
			for _, s := range list {
				status := ui.Good.Render("delivered")
				if !s.Delivered {
					status = ui.Muted.Render("console")
				}
				fmt.Fprintf(out, "#%-4d %s  %s  %s\n",
					s.ID,
					ui.Muted.Render(s.CreatedAt.Format("2006-01-02 15:04")),
					ui.RPText(s.Remaining, s.TotalBudget),
					status,
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum snapshots to list")

	return cmd
}
