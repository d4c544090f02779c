package main

import (
	"github.com/spf13/cobra"

	"github.com/ChiobiJason/asa-policy-frontend/cmd/asa/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive policy browser",
	Long: `Opens the interactive browse view: approved policies grouped into
their three sections, a bylaws tab, local search, and a background poll
that announces newly approved documents while the window is focused.`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	return ui.RunBrowse(ui.BrowseDeps{
		Client:       client,
		Logger:       logger,
		PollInterval: cfg.GetPollInterval(),
		Theme:        ui.ThemeNamed(cfg.UI.Theme),
	})
}
