package config

import "github.com/highrascal9098/Interview-Prep/internal/topic"

// DefaultPath is where the CLI looks for configuration.
const DefaultPath = ".quiz.yml"

// DefaultTopics match the banks shipped in data/.
var DefaultTopics = []topic.Descriptor{
	{ID: "javascript", DataPath: "javascript.json", Title: "JavaScript"},
	{ID: "react", DataPath: "react.json", Title: "React"},
	{ID: "nodejs", DataPath: "nodejs.json", Title: "Node.js"},
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	topics := make([]topic.Descriptor, len(DefaultTopics))
	copy(topics, DefaultTopics)
	return &Config{
		Title:             "Interview Prep",
		DataSource:        "data",
		QuestionsPerTopic: 5,
		OutputDir:         "site",
		Port:              8080,
		LogLevel:          "info",
		Topics:            topics,
	}
}
