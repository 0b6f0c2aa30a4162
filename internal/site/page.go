package site

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/highrascal9098/Interview-Prep/internal/topic"
	"github.com/highrascal9098/Interview-Prep/internal/view"
)

// PageData holds the data passed to the page template.
type PageData struct {
	Title           string
	Topics          []Section
	Count           int
	TriggerLabel    string
	TriggerDisabled bool
	// AssetBase prefixes style.css and script.js: "" for a static build,
	// "/static/" when served.
	AssetBase   string
	Live        bool
	GeneratedAt time.Time
}

// Section is one topic heading and its question container.
type Section struct {
	ID      string
	Title   string
	Content template.HTML
}

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// NewPageData snapshots doc for rendering, in registry order.
func NewPageData(title string, reg *topic.Registry, doc *view.Document, count int) PageData {
	data := PageData{
		Title:           title,
		Count:           count,
		TriggerLabel:    doc.Trigger.Label(),
		TriggerDisabled: doc.Trigger.Disabled(),
		GeneratedAt:     time.Now(),
	}
	for _, t := range reg.All() {
		s := Section{ID: t.ID, Title: t.Title}
		if c, ok := doc.Container(t.ID); ok {
			s.Content = c.HTML()
		}
		data.Topics = append(data.Topics, s)
	}
	return data
}

// RenderPage writes the full HTML page.
func RenderPage(w io.Writer, data PageData) error {
	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// Asset returns a bundled static file and its content type.
func Asset(name string) ([]byte, string, bool) {
	switch name {
	case "style.css":
		return []byte(cssContent), "text/css; charset=utf-8", true
	case "script.js":
		return []byte(jsContent), "application/javascript; charset=utf-8", true
	}
	return nil, "", false
}
