package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pmartin/issuedeck/internal/config"
	"github.com/pmartin/issuedeck/internal/tracker"
	"github.com/pmartin/issuedeck/internal/tracker/memory"
	"github.com/pmartin/issuedeck/internal/tui"
	"github.com/pmartin/issuedeck/internal/web"
)

func main() {
	defer func() {
		// The TUI takes over the terminal; make sure a crash still prints
		// something useful after the screen is restored.
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "issuedeck",
		Short: "A terminal client for the issue tracker",
		Long: "issuedeck browses, creates, and edits issues in a tracker backend\n" +
			"from the terminal. Run with no arguments to open the issue list.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			client := tracker.NewClient(cfg.Server.BaseURL)
			p := tea.NewProgram(tui.NewApp(client, cfg), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")

	root.AddCommand(newInitCmd())
	root.AddCommand(newHealthCmd(&configPath))
	root.AddCommand(newDemoCmd())
	root.AddCommand(newWebCmd(&configPath))

	return root
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the config directory with a sample config",
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.DirExists() {
				dir, _ := config.DefaultConfigDir()
				fmt.Printf("%s/ already exists\n", dir)
				return nil
			}
			dir, err := config.Init()
			if err != nil {
				return err
			}
			fmt.Printf("Created %s/\n", dir)
			fmt.Println("  config.yaml — server address, columns, page size")
			return nil
		},
	}
}

func newHealthCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the tracker backend is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			client := tracker.NewClient(cfg.Server.BaseURL)

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()

			h, err := client.CheckHealth(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", client.BaseURL(), err)
			}
			fmt.Printf("%s: %s, %d issues\n", client.BaseURL(), h.Status, h.TotalIssues)
			return nil
		},
	}
}

func newDemoCmd() *cobra.Command {
	var addr string
	var seed bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a self-contained in-memory tracker backend",
		Long: "demo starts a local tracker backend that holds issues in memory,\n" +
			"for trying issuedeck without a real server. Data is lost on exit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := memory.NewServer()
			if seed {
				seedDemoIssues(srv)
			}
			fmt.Printf("Demo backend listening on %s\n", addr)
			fmt.Printf("Point issuedeck at it with server.base_url: http://%s\n", addr)
			return http.ListenAndServe(addr, srv.Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8000", "listen address")
	cmd.Flags().BoolVar(&seed, "seed", true, "pre-populate sample issues")
	return cmd
}

func newWebCmd(configPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "web",
		Short: "Serve a read-only HTML view of the issue list",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			client := tracker.NewClient(cfg.Server.BaseURL)
			srv := web.NewServer(client)
			fmt.Printf("Dashboard listening on http://%s (backend %s)\n", addr, client.BaseURL())
			return http.ListenAndServe(addr, srv.Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	return cmd
}

// loadConfig resolves and loads the configuration. With no explicit path, a
// missing config directory is created on first run and built-in defaults are
// used until the file is edited.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	if !config.DirExists() {
		dir, err := config.Init()
		if err != nil {
			return nil, fmt.Errorf("initializing config: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Created %s/ with a sample config\n", dir)
	}

	defaultPath, err := config.DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(defaultPath); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(defaultPath)
}

func seedDemoIssues(srv *memory.Server) {
	for _, issue := range []tracker.Issue{
		{
			Title:       "Set up project scaffolding",
			Description: "Repository layout, CI, and a first release build.",
			Status:      tracker.StatusClosed,
			Priority:    tracker.PriorityHigh,
			Assignee:    "sam@example.com",
		},
		{
			Title:       "Search returns stale results while typing",
			Description: "Fast typing fires overlapping requests and an older response can overwrite a newer one.",
			Status:      tracker.StatusInProgress,
			Priority:    tracker.PriorityCritical,
			Assignee:    "alex@example.com",
		},
		{
			Title:       "Add keyboard shortcut reference",
			Status:      tracker.StatusOpen,
			Priority:    tracker.PriorityLow,
		},
		{
			Title:       "Paginate the issue list",
			Description: "Large trackers need server-side paging with a page indicator.",
			Status:      tracker.StatusOpen,
			Priority:    tracker.PriorityMedium,
			Assignee:    "alex@example.com",
		},
	} {
		srv.Add(issue)
	}
}
