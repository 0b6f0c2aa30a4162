package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/highrascal9098/Interview-Prep/internal/topic"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.QuestionsPerTopic != 5 {
		t.Errorf("expected 5 questions per topic, got %d", cfg.QuestionsPerTopic)
	}
	if cfg.OutputDir != "site" {
		t.Errorf("expected output dir 'site', got %q", cfg.OutputDir)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if len(cfg.Topics) != len(DefaultTopics) {
		t.Errorf("expected %d default topics, got %d", len(DefaultTopics), len(cfg.Topics))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	// Mutating one default must not leak into the next.
	cfg.Topics[0].ID = "changed"
	if DefaultConfig().Topics[0].ID == "changed" {
		t.Error("DefaultConfig shares its topic slice")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".quiz.yml")

	cfg := DefaultConfig()
	cfg.Title = "Frontend"
	cfg.QuestionsPerTopic = 3
	cfg.Topics = []topic.Descriptor{
		{ID: "css", DataPath: "css.json", Title: "CSS"},
	}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Title != "Frontend" {
		t.Errorf("expected title 'Frontend', got %q", loaded.Title)
	}
	if loaded.QuestionsPerTopic != 3 {
		t.Errorf("expected 3 questions per topic, got %d", loaded.QuestionsPerTopic)
	}
	if !reflect.DeepEqual(loaded.Topics, cfg.Topics) {
		t.Errorf("topics = %+v, want %+v", loaded.Topics, cfg.Topics)
	}
}

func TestLoadTopicsReplaceDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".quiz.yml")
	yml := "topics:\n  - id: go\n    data_path: go.json\n"
	if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Topics) != 1 {
		t.Fatalf("expected 1 topic, got %d", len(cfg.Topics))
	}
	if cfg.Topics[0].Title != "" {
		t.Errorf("title leaked from defaults: %q", cfg.Topics[0].Title)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/.quiz.yml")
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.DataSource != "data" {
		t.Errorf("expected default data source, got %q", cfg.DataSource)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".quiz.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("QUIZ_QUESTIONS_PER_TOPIC", "2")
	t.Setenv("QUIZ_DATA_SOURCE", "https://example.com/banks")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.QuestionsPerTopic != 2 {
		t.Errorf("expected env override 2, got %d", loaded.QuestionsPerTopic)
	}
	if loaded.DataSource != "https://example.com/banks" {
		t.Errorf("expected env data source, got %q", loaded.DataSource)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"negative count", func(c *Config) { c.QuestionsPerTopic = -1 }, "questions_per_topic"},
		{"missing output", func(c *Config) { c.OutputDir = "" }, "output_dir"},
		{"bad port", func(c *Config) { c.Port = 70000 }, "port"},
		{"no topics", func(c *Config) { c.Topics = nil }, "topics"},
		{"duplicate topic", func(c *Config) {
			c.Topics = append(c.Topics, c.Topics[0])
		}, "duplicate"},
		{"zero count ok", func(c *Config) { c.QuestionsPerTopic = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errSub == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errSub) {
				t.Errorf("error = %v, want containing %q", err, tt.errSub)
			}
		})
	}
}

func TestDiscoverTopics(t *testing.T) {
	fsys := fstest.MapFS{
		"javascript.json":      {Data: []byte("[]")},
		"backend/go.json":      {Data: []byte("[]")},
		"backend/node_js.json": {Data: []byte("[]")},
		"notes.md":             {Data: []byte("# notes")},
	}

	got, err := discoverFS(fsys)
	if err != nil {
		t.Fatalf("discoverFS: %v", err)
	}
	want := []topic.Descriptor{
		{ID: "backend-go", DataPath: "backend/go.json", Title: "Backend Go"},
		{ID: "backend-node_js", DataPath: "backend/node_js.json", Title: "Backend Node Js"},
		{ID: "javascript", DataPath: "javascript.json", Title: "Javascript"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v\nwant %+v", got, want)
	}
}

func TestScaffold(t *testing.T) {
	dir := t.TempDir()
	if _, err := Scaffold(dir); err == nil {
		t.Error("expected error for empty data dir")
	}

	if err := os.WriteFile(filepath.Join(dir, "react.json"), []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Scaffold(dir)
	if err != nil {
		t.Fatalf("Scaffold: %v", err)
	}
	if cfg.DataSource != dir || len(cfg.Topics) != 1 || cfg.Topics[0].ID != "react" {
		t.Errorf("unexpected scaffold: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("scaffolded config invalid: %v", err)
	}
}

func TestValidateCount(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"5", false},
		{"0", false},
		{"-1", true},
		{"five", true},
	}
	for _, tt := range tests {
		if err := validateCount(tt.in); (err != nil) != tt.wantErr {
			t.Errorf("validateCount(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}
