// Package commands implements the bucolin subcommands.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/zym-starx/bucolin-translator-website/internal/config"
	"github.com/zym-starx/bucolin-translator-website/internal/lexicon"
	"github.com/zym-starx/bucolin-translator-website/internal/translate"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg        *config.Config
	Logger     *slog.Logger
	Lexicon    *lexicon.Lexicon
	Service    translate.Service
	Translator *translate.Translator
}

// NewCommandContext builds the lexicon, translation service and
// translator from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	lex, err := loadLexicon(cfg)
	if err != nil {
		return nil, err
	}

	svc := translate.BuildService(cfg, lex)
	translator := translate.New(translate.Options{
		Service:     svc,
		ServiceName: cfg.ServiceLabel(),
		Logger:      logger,
	})

	return &CommandContext{
		Cfg:        cfg,
		Logger:     logger,
		Lexicon:    lex,
		Service:    svc,
		Translator: translator,
	}, nil
}

// getConfig returns the current configuration, falling back to defaults
// when no configuration was loaded (e.g. in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		APIURL:         config.DefaultAPIURL,
		UseMockService: true,
		Environment:    config.DefaultEnvironment,
		SecretKey:      config.DefaultSecretKey,
		Port:           config.DefaultPort,
	}
}

// loadLexicon loads the configured lexicon file, or the embedded default
// dictionary when none is configured.
func loadLexicon(cfg *config.Config) (*lexicon.Lexicon, error) {
	if cfg.LexiconPath == "" {
		return lexicon.Default(), nil
	}
	return lexicon.Load(cfg.LexiconPath)
}
