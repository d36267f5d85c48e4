package commands

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/zym-starx/bucolin-translator-website/internal/config"
	"github.com/zym-starx/bucolin-translator-website/internal/state"
	"github.com/zym-starx/bucolin-translator-website/internal/ui"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Watch     bool
	NoBrowser bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the translator website",
		Long: `Start the web server serving the translation demo, the project
pages and the JSON API.

In development mode the admin panel is available at /admin; production
deployments do not expose it.`,
		Example: `  # Start with the mock service on the default port
  bucolin serve --mock

  # Serve against the production API
  bucolin serve --environment production --api-url https://api.example.com/translate`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Reload the lexicon file on change")
	cmd.Flags().BoolVar(&opts.NoBrowser, "no-browser", false, "Don't auto-open browser in development")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cfg := cmdCtx.Cfg

	if cmd.Flags().Changed("watch") {
		cfg.Watch = opts.Watch
	}

	if cfg.IsDevelopment() {
		if err := cfg.ValidateAdmin(); err != nil {
			return err
		}
	}

	history, err := state.Open(cmd.Context(), cfg.GetHistoryConfig(), cmdCtx.Logger)
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer func() { _ = history.Close() }()

	server := ui.NewServer(ui.ServerConfig{
		Config:  cfg,
		Service: cmdCtx.Service,
		Lexicon: cmdCtx.Lexicon,
		History: history,
		Logger:  cmdCtx.Logger,
	})

	// Auto-open only in development; containers and production deployments
	// have no browser to open.
	if cfg.IsDevelopment() && !opts.NoBrowser {
		go openBrowser(fmt.Sprintf("http://localhost:%d", cfg.Port))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Starting %s on http://localhost:%d\n", config.AppName, cfg.Port)
	fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

	return server.Serve(cmd.Context())
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return
	}

	_ = cmd.Start()
}
