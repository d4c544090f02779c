// Command asa is the terminal client for the ASA governance portal:
// public browsing of approved policies and bylaws, plus the authenticated
// admin surface (drafting, approval, reviews, suggestions, users).
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ChiobiJason/asa-policy-frontend/internal/api"
	"github.com/ChiobiJason/asa-policy-frontend/internal/config"
	"github.com/ChiobiJason/asa-policy-frontend/internal/session"
)

var (
	// Global flags
	verbose   bool
	apiURL    string
	assumeYes bool

	// Shared state built in PersistentPreRunE
	logger *zap.Logger
	cfg    *config.Config
	client *api.Client
	store  *session.Store
	gate   *session.Gate
)

var rootCmd = &cobra.Command{
	Use:   "asa",
	Short: "ASA governance portal client",
	Long: `asa is the terminal client for the ASA governance-document portal.

It browses approved policies and bylaws, watches for newly approved
documents, and exposes the full authenticated workflow: drafting,
editing, approval, reviews, suggestions and user administration.

Run without arguments to open the interactive browse view.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(cmd, args)
	},
}

// initApp loads .env and config, builds the logger and the shared API
// client, and installs any stored token on it.
func initApp(cmd *cobra.Command) error {
	_ = godotenv.Load()

	// The browse view owns the terminal; console logging would corrupt it.
	if isInteractive(cmd) {
		logger = zap.NewNop()
	} else {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	path, err := config.File()
	if err != nil {
		return fmt.Errorf("failed to locate config: %w", err)
	}
	cfg, err = config.Load(path)
	if err != nil {
		return err
	}
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}

	dir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("failed to locate config directory: %w", err)
	}
	store = session.NewStore(dir)

	client = api.New(cfg.API.BaseURL,
		api.WithLogger(logger),
		api.WithHTTPClient(&http.Client{Timeout: cfg.GetTimeout()}),
	)
	if token, tokenErr := store.Token(); tokenErr == nil {
		client.SetToken(token)
	}
	gate = session.NewGate(store, client, logger)
	return nil
}

func isInteractive(cmd *cobra.Command) bool {
	return cmd.Name() == "asa" || cmd.Name() == "browse"
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation prompts")

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(policiesCmd)
	rootCmd.AddCommand(bylawsCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(suggestionsCmd)
	rootCmd.AddCommand(reviewsCmd)
	rootCmd.AddCommand(usersCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", renderError(err))
		os.Exit(1)
	}
}
