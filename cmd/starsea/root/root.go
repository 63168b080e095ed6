package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "starsea",
	Short:         "A Tale of the Stars — budgeted character builder",
	Long:          "Starsea is a terminal character builder: spend a random Resonance Point allowance on factions, ships, items and skills, then export the finished setup to a chat host.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newBuildCmd(),
		newCatalogCmd(),
		newHistoryCmd(),
		newShowCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
