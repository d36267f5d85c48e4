package translate

import (
	"github.com/zym-starx/bucolin-translator-website/internal/config"
	"github.com/zym-starx/bucolin-translator-website/internal/lexicon"
)

// BuildService creates the translation service selected by the config:
// the dictionary mock when USE_MOCK_SERVICE is set, the API client
// otherwise. The lexicon only matters for the mock and may be nil.
func BuildService(cfg *config.Config, lex *lexicon.Lexicon) Service {
	if cfg.UseMockService {
		return NewMockService(lex)
	}
	return NewAPIService(cfg.APIURL, cfg.APIKey)
}
