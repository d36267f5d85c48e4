package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/zym-starx/bucolin-translator-website/internal/translate"
)

// TranslateOptions holds options for the translate command.
type TranslateOptions struct {
	Format string // Output format: table, json, markdown
}

// NewTranslateCommand creates the translate command.
func NewTranslateCommand() *cobra.Command {
	opts := &TranslateOptions{}

	cmd := &cobra.Command{
		Use:   "translate [text...]",
		Short: "Translate text from the command line",
		Long: `Translate Ottoman Turkish text without starting the web server.

Text is taken from the arguments, or from stdin when none are given.
Uses the same service selection as the website: the mock dictionary when
USE_MOCK_SERVICE is enabled, the configured translation API otherwise.`,
		Example: `  # Translate with the mock service
  bucolin translate --mock "merhaba güzel ev"

  # Machine-readable output
  bucolin translate --format json "selam"

  # Read from stdin
  cat letter.txt | bucolin translate`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				text = strings.TrimSpace(string(data))
			}
			return runTranslate(cmd, text, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "table", "Output format: table, json, markdown")

	return cmd
}

func runTranslate(cmd *cobra.Command, text string, opts *TranslateOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	result, err := cmdCtx.Translator.Translate(cmd.Context(), text)
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("%s", result.Error)
	}

	return renderResult(cmd.OutOrStdout(), result, opts.Format)
}

func renderResult(w io.Writer, result *translate.Result, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "md", "markdown":
		return renderResultMarkdown(w, result)
	default:
		return renderResultTable(w, result)
	}
}

func renderResultTable(w io.Writer, result *translate.Result) error {
	_, _ = fmt.Fprintln(w, result.TranslatedText)
	_, _ = fmt.Fprintln(w)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Confidence", "Time", "Words", "Recognized", "Service"})
	t.AppendRow(table.Row{
		fmt.Sprintf("%.1f%%", result.Confidence*100),
		fmt.Sprintf("%.2fs", result.ProcessingSeconds()),
		result.WordCount,
		result.RecognizedWords,
		result.ServiceUsed,
	})
	t.Render()
	return nil
}

func renderResultMarkdown(w io.Writer, result *translate.Result) error {
	_, _ = fmt.Fprintf(w, "**Translation:** %s\n\n", result.TranslatedText)
	_, _ = fmt.Fprintln(w, "| Confidence | Time | Words | Recognized | Service |")
	_, _ = fmt.Fprintln(w, "| --- | --- | --- | --- | --- |")
	_, _ = fmt.Fprintf(w, "| %.1f%% | %.2fs | %d | %d | %s |\n",
		result.Confidence*100,
		result.ProcessingSeconds(),
		result.WordCount,
		result.RecognizedWords,
		result.ServiceUsed,
	)
	return nil
}
