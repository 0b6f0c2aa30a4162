package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"

	"github.com/highrascal9098/Interview-Prep/internal/topic"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(dataDir, path string) (*Config, error) {
	fmt.Println("Welcome to quiz! Let's configure your question banks.")
	fmt.Println()

	// 1. Page title.
	titlePrompt := promptui.Prompt{
		Label:   "Page title",
		Default: DefaultConfig().Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	// 2. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Directory containing question banks",
		Default: dataDir,
	}
	dataDir, err = dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	cfg, err := Scaffold(dataDir)
	if err != nil {
		return nil, err
	}
	cfg.Title = title

	// 3. Questions per topic.
	countPrompt := promptui.Prompt{
		Label:    "Questions per topic",
		Default:  strconv.Itoa(cfg.QuestionsPerTopic),
		Validate: validateCount,
	}
	countStr, err := countPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("questions per topic: %w", err)
	}
	cfg.QuestionsPerTopic, _ = strconv.Atoi(countStr)

	// 4. Pick topics.
	var picked []topic.Descriptor
	for _, t := range cfg.Topics {
		confirm := promptui.Prompt{
			Label:     fmt.Sprintf("Include %s (%s)", t.Title, t.DataPath),
			IsConfirm: true,
			Default:   "y",
		}
		if _, err := confirm.Run(); err == nil {
			picked = append(picked, t)
		} else if err != promptui.ErrAbort {
			return nil, fmt.Errorf("topic selection: %w", err)
		}
	}
	if len(picked) == 0 {
		return nil, fmt.Errorf("no topics selected")
	}
	cfg.Topics = picked

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s (%d topics)\n", path, len(picked))
	return cfg, nil
}

func validateCount(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a whole number")
	}
	if n < 0 {
		return fmt.Errorf("must be non-negative")
	}
	return nil
}
