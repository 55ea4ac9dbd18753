package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aslanbek/kazlearn/internal/api"
	"github.com/aslanbek/kazlearn/internal/app"
	"github.com/aslanbek/kazlearn/internal/auth"
	"github.com/aslanbek/kazlearn/internal/config"
	"github.com/aslanbek/kazlearn/internal/logging"
	"github.com/aslanbek/kazlearn/internal/notify"
	"github.com/aslanbek/kazlearn/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "kazlearn",
	Short: "Learn Kazakh vocabulary from your terminal",
	Long:  "Kazlearn — terminal client for the Kazakh Learn platform: practice words, track reviews and keep your streak alive.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// .env is optional; environment always wins.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("api-url", "", "API base URL (overrides KAZLEARN_API_URL)")
	rootCmd.PersistentFlags().String("db", "", "Path to local SQLite history file (overrides KAZLEARN_DB)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// loadConfig resolves configuration from env plus flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.FromEnv(os.Getenv)
	if u, _ := cmd.Flags().GetString("api-url"); u != "" {
		cfg.APIBaseURL = u
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// buildClient wires the token store and HTTP client.
func buildClient(cfg config.Config, log *zap.Logger) (*api.Client, *auth.Store, error) {
	tokenPath := cfg.TokenPath
	if tokenPath == "" {
		p, err := auth.DefaultTokenPath()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve token path: %w", err)
		}
		tokenPath = p
	}
	tokens := auth.NewStore(tokenPath)
	client := api.New(cfg.APIBaseURL, tokens,
		api.WithLogger(log),
		api.WithTimeout(cfg.HTTPTimeout),
	)
	return client, tokens, nil
}

// requireLogin fails fast when no usable token is stored.
func requireLogin(tokens *auth.Store) error {
	tok, err := tokens.Load()
	if err != nil {
		return fmt.Errorf("not logged in. Run: kazlearn login")
	}
	if tok.Expired(time.Now()) {
		return fmt.Errorf("your session has expired. Run: kazlearn login")
	}
	return nil
}

// resolveDBPath returns the history path using --db flag (highest
// priority), then KAZLEARN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, nil
	}
	return store.DefaultDBPath()
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logPath, err := logging.DefaultLogPath()
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}
	log, err := logging.New(logPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = log.Sync() }()

	client, tokens, err := buildClient(cfg, log)
	if err != nil {
		return err
	}
	if err := requireLogin(tokens); err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	hist, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer hist.Close()

	return app.Run(app.Deps{
		Client:  client,
		History: hist,
		Config:  cfg,
		Notices: notify.NewLatest(notify.NewLogNotifier(log)),
	})
}
