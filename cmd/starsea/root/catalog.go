package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/internal/catalog"
	"github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/internal/engine"
	"github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/internal/ui"
)

func newCatalogCmd() *cobra.Command {
	var categoryArg string
	var search string
	var tier int
	var tag string
	var page int

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the reference catalog without starting a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg := loadConfig()

			cat, err := catalog.ParseCategory(categoryArg)
			if err != nil {
				return err
			}

			data, loadErr := catalog.NewLoader(cfg.CatalogURL).Load(ctx)
			if loadErr != nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" catalog unavailable; showing an empty data set"))
			}

			view := catalog.NewView(cat)
			if cfg.PageSize > 0 {
				view.PageSize = cfg.PageSize
			}
			view = view.WithSearch(search).WithTier(tier).WithTag(tag)
			entries := data.Entries(cat)
			view = view.WithPage(entries, page)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.CategoryIcon(cat.Plural()), cat.Label()))

			pageEntries := view.Slice(entries)
			if len(pageEntries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("no matching entries"))
			}
			for _, e := range pageEntries {
				line := "- " + ui.Key.Render(e.DisplayName())
				if cat.Purchasable() {
					line += "  " + ui.TierBadge(e.Tier) + "  " + ui.Gold.Render(fmt.Sprintf("%d RP", engine.CostFor(cat, e.Tier)))
				}
				if len(e.Tags) > 0 {
					line += "  " + ui.Dim.Render("["+strings.Join(e.Tags, ", ")+"]")
				}
				fmt.Fprintln(out, line)
				if e.Effects != "" {
					fmt.Fprintln(out, "  "+ui.Muted.Render(e.Effects))
				}
			}

			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("page %d / %d — %d matching", view.Page, view.TotalPages(entries), len(view.Matching(entries)))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryArg, "category", "c", "item", "Category (faction|spawn_location|scenario|item|ship|skill)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Substring match on name or tags")
	cmd.Flags().IntVarP(&tier, "tier", "t", catalog.TierAll, "Tier filter (1-7, 0 for all)")
	cmd.Flags().StringVar(&tag, "tag", catalog.TagAll, "Exact tag filter")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number")

	return cmd
}
