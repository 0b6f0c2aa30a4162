package config

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/highrascal9098/Interview-Prep/internal/topic"
)

// BankPattern matches question bank files below the data directory.
const BankPattern = "**/*.json"

// DiscoverTopics finds question banks under dataDir and derives a topic
// for each: "backend/go.json" becomes id "backend-go", title "Backend Go".
func DiscoverTopics(dataDir string) ([]topic.Descriptor, error) {
	return discoverFS(os.DirFS(dataDir))
}

func discoverFS(fsys fs.FS) ([]topic.Descriptor, error) {
	matches, err := doublestar.Glob(fsys, BankPattern)
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", BankPattern, err)
	}
	sort.Strings(matches)

	topics := make([]topic.Descriptor, 0, len(matches))
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		base := strings.TrimSuffix(m, path.Ext(m))
		id := strings.ToLower(strings.ReplaceAll(base, "/", "-"))
		if seen[id] {
			continue
		}
		seen[id] = true
		topics = append(topics, topic.Descriptor{
			ID:       id,
			DataPath: m,
			Title:    formatTitle(base),
		})
	}
	return topics, nil
}

// formatTitle converts a bank path to a human-readable title.
func formatTitle(name string) string {
	words := strings.FieldsFunc(name, func(c rune) bool {
		return c == '-' || c == '_' || c == '/'
	})
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Scaffold returns a default config whose topics are discovered from dataDir.
func Scaffold(dataDir string) (*Config, error) {
	topics, err := DiscoverTopics(dataDir)
	if err != nil {
		return nil, err
	}
	if len(topics) == 0 {
		return nil, fmt.Errorf("no question banks (%s) found in %s", BankPattern, dataDir)
	}
	cfg := DefaultConfig()
	cfg.DataSource = dataDir
	cfg.Topics = topics
	return cfg, nil
}
