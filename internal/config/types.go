package config

import "github.com/highrascal9098/Interview-Prep/internal/topic"

// Config is the top-level quiz configuration, corresponding to .quiz.yml.
type Config struct {
	Title             string             `yaml:"title" koanf:"title"`
	DataSource        string             `yaml:"data_source" koanf:"data_source"`
	QuestionsPerTopic int                `yaml:"questions_per_topic" koanf:"questions_per_topic"`
	OutputDir         string             `yaml:"output_dir" koanf:"output_dir"`
	Port              int                `yaml:"port" koanf:"port"`
	AllowAllOrigins   bool               `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	LogLevel          string             `yaml:"log_level" koanf:"log_level"`
	Topics            []topic.Descriptor `yaml:"topics" koanf:"topics"`
}
