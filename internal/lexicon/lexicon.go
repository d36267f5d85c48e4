// Package lexicon provides the word dictionary backing the mock
// translation service. The built-in dictionary covers the demo vocabulary;
// an external YAML file can replace it and is hot-reloadable.
package lexicon

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// lexiconFile is the on-disk YAML shape.
type lexiconFile struct {
	Entries map[string]string `yaml:"entries"`
}

// Lexicon is a thread-safe Ottoman -> modern Turkish word dictionary.
type Lexicon struct {
	mu      sync.RWMutex
	entries map[string]string
	path    string
}

// Default returns a lexicon populated from the embedded dictionary.
func Default() *Lexicon {
	lex := &Lexicon{}
	// The embedded file is validated by tests; a parse failure here would
	// be a build defect, so fall back to an empty dictionary.
	if err := lex.replaceFromYAML(defaultYAML); err != nil {
		lex.entries = map[string]string{}
	}
	return lex
}

// Load reads a lexicon from a YAML file.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon: %w", err)
	}

	lex := &Lexicon{path: path}
	if err := lex.replaceFromYAML(data); err != nil {
		return nil, err
	}
	return lex, nil
}

func (l *Lexicon) replaceFromYAML(data []byte) error {
	var f lexiconFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse lexicon: %w", err)
	}
	if len(f.Entries) == 0 {
		return fmt.Errorf("lexicon has no entries")
	}

	entries := make(map[string]string, len(f.Entries))
	for k, v := range f.Entries {
		entries[strings.ToLower(strings.TrimSpace(k))] = v
	}

	l.mu.Lock()
	l.entries = entries
	l.mu.Unlock()
	return nil
}

// Reload re-reads the lexicon from its backing file. It is a no-op for the
// embedded default. On parse errors the previous dictionary stays active.
func (l *Lexicon) Reload() error {
	if l.path == "" {
		return nil
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return fmt.Errorf("failed to read lexicon: %w", err)
	}
	return l.replaceFromYAML(data)
}

// Path returns the backing file path, empty for the embedded default.
func (l *Lexicon) Path() string {
	return l.path
}

// Lookup returns the modern Turkish translation for a word.
func (l *Lexicon) Lookup(word string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	v, ok := l.entries[strings.ToLower(word)]
	return v, ok
}

// Len returns the number of dictionary entries.
func (l *Lexicon) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
