package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/internal/ui"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <snapshot-id>",
		Short: "Print an archived export payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid snapshot id %q", args[0])
			}

			ctx := context.Background()
			cfg := loadConfig()

			repo, cleanup, err := openSnapshots(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			s, err := repo.Get(ctx, id)
			if err != nil {
				return err
			}
			if s == nil {
				return fmt.Errorf("snapshot #%d not found", id)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconStar, fmt.Sprintf("Snapshot #%d", s.ID)))
			fmt.Fprintln(out, ui.LabelValue("Created", s.CreatedAt.Format("2006-01-02 15:04:05")))
			fmt.Fprintln(out, ui.LabelValue("Budget", fmt.Sprintf("%d RP (spent %d, remaining %d)", s.TotalBudget, s.Spent, s.Remaining)))
			fmt.Fprintln(out, ui.LabelValue("Delivered", s.Delivered))
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, s.Document)
			return nil
		},
	}

	return cmd
}
