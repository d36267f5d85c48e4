package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

// REPLOptions holds options for the repl command.
type REPLOptions struct {
	Format string // Output format: table, json, markdown
}

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	opts := &REPLOptions{}

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive translation session",
		Long: `Start an interactive session where every line is translated.

Dot-commands control the session; type .help inside the REPL for the
full list.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "table", "Output format: table, json, markdown")

	return cmd
}

func runREPL(cmd *cobra.Command, opts *REPLOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	historyFile := replHistoryFile()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "bucolin> ",
		HistoryFile:     historyFile,
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "BUCOLIN Translation REPL (service: %s)\n", cmdCtx.Cfg.ServiceLabel())
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if quit := handleDotCommand(cmd, cmdCtx, line); quit {
				break
			}
			continue
		}

		result, err := cmdCtx.Translator.Translate(cmd.Context(), line)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		if !result.Success {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", result.Error)
			continue
		}
		if err := renderResult(cmd.OutOrStdout(), result, opts.Format); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
	}

	return nil
}

// replHistoryFile returns the readline history path under the user's
// home directory, or a project-local fallback.
func replHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bucolin/repl_history"
	}
	return filepath.Join(home, ".bucolin", "repl_history")
}

func handleDotCommand(cmd *cobra.Command, cmdCtx *CommandContext, line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(cmd.OutOrStdout())

	case ".service":
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Service: %s\n", cmdCtx.Cfg.ServiceLabel())
		if !cmdCtx.Cfg.UseMockService {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Endpoint: %s\n", cmdCtx.Cfg.APIURL)
		}

	case ".lexicon":
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Lexicon entries: %d\n", cmdCtx.Lexicon.Len())
		if path := cmdCtx.Lexicon.Path(); path != "" {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Loaded from: %s\n", path)
		} else {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Loaded from: embedded default")
		}

	case ".clear":
		fmt.Print("\033[H\033[2J")

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", command)
	}

	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .service        Show the active translation service
  .lexicon        Show lexicon information
  .clear          Clear the screen
  .quit / .exit   Exit the REPL

Any other input is translated as Ottoman Turkish text.
`
	_, _ = fmt.Fprintln(w, help)
}

// newREPLCompleter completes the dot-commands.
func newREPLCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".service"),
		readline.PcItem(".lexicon"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
