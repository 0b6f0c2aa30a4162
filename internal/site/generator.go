package site

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/highrascal9098/Interview-Prep/internal/logging"
	"github.com/highrascal9098/Interview-Prep/internal/orchestrator"
)

// Generator writes a static snapshot of one regeneration pass.
type Generator struct {
	Title        string
	OutputDir    string
	Count        int
	Orchestrator *orchestrator.Orchestrator
	Logger       *logrus.Logger
}

// NewGenerator creates a Generator writing into outputDir.
func NewGenerator(o *orchestrator.Orchestrator, title, outputDir string, count int) *Generator {
	return &Generator{
		Title:        title,
		OutputDir:    outputDir,
		Count:        count,
		Orchestrator: o,
		Logger:       logging.Discard(),
	}
}

// Generate runs one pass and writes index.html, style.css and script.js.
// Per-topic failures are rendered into the page; only an aggregate failure
// aborts the build.
func (g *Generator) Generate(ctx context.Context) (orchestrator.Pass, error) {
	doc := g.Orchestrator.NewDocument()
	pass, err := g.Orchestrator.RegenerateAll(ctx, doc, g.Count)
	if err != nil {
		return pass, fmt.Errorf("regenerating questions: %w", err)
	}

	var buf bytes.Buffer
	data := NewPageData(g.Title, g.Orchestrator.Registry(), doc, g.Count)
	if err := RenderPage(&buf, data); err != nil {
		return pass, err
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return pass, err
	}

	files := map[string][]byte{
		"index.html": buf.Bytes(),
		"style.css":  []byte(cssContent),
		"script.js":  []byte(jsContent),
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(g.OutputDir, name), content, 0o644); err != nil {
			return pass, fmt.Errorf("writing %s: %w", name, err)
		}
	}

	g.Logger.WithFields(logrus.Fields{
		"pass_id": pass.ID,
		"output":  g.OutputDir,
		"failed":  pass.Failed(),
	}).Info("site written")
	return pass, nil
}
