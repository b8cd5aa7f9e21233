package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgray/cinelog/internal/adapter"
	"github.com/rgray/cinelog/internal/domain"
	"github.com/rgray/cinelog/internal/genres"
	"github.com/rgray/cinelog/internal/store"
	"github.com/rgray/cinelog/internal/tmdb"
	"github.com/rgray/cinelog/internal/tui"
	"github.com/rgray/cinelog/internal/watchlist"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting cinelog", "version", "1.0.0")

	// First run: collect the catalog API key and the local profile
	if !cfg.IsConfigured() {
		return runSetup(cfg)
	}

	// Open the durable store
	boltStore, err := store.NewBoltStore(adapter.DataPath())
	if err != nil {
		logger.Error("failed to open store, running without persistence", "error", err)
		boltStore, _ = store.NewBoltStore("")
	}
	defer boltStore.Close()

	// Wire services; the watchlist service is the single owner of state
	catalog := tmdb.NewClient(cfg.TMDB.BaseURL, cfg.TMDB.APIKey, cfg.TMDB.Language, logger)
	resolver := genres.NewResolver(catalog, logger)
	svc := watchlist.NewService(boltStore, logger)

	kind := domain.MediaKindMovie
	if cfg.UI.MediaKind == "tv" {
		kind = domain.MediaKindTV
	}

	model := tui.NewModel(svc, catalog, resolver, cfg.Profile.Profile(), kind, cfg.UI.DefaultView)

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetup handles the initial configuration when no API key is set
func runSetup(cfg *adapter.Config) error {
	fmt.Println("Welcome to cinelog!")
	fmt.Println()
	fmt.Println("A TMDB API key is required (https://www.themoviedb.org/settings/api).")
	fmt.Print("Enter your API key: ")

	keyBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read API key: %w", err)
	}
	apiKey := strings.TrimSpace(string(keyBytes))
	if apiKey == "" {
		return fmt.Errorf("no API key provided")
	}
	cfg.TMDB.APIKey = apiKey

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Display name (optional): ")
	if name, err := reader.ReadString('\n'); err == nil {
		cfg.Profile.Name = strings.TrimSpace(name)
	}
	fmt.Print("Email (optional): ")
	if email, err := reader.ReadString('\n'); err == nil {
		cfg.Profile.Email = strings.TrimSpace(email)
	}

	if err := adapter.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println("Run cinelog again to start the application.")
	return nil
}
