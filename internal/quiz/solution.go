package quiz

import (
	"bytes"
	"html"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// UnavailableSolution is rendered for solutions of unrecognised shape.
const UnavailableSolution = `<p class="solution-unavailable">Solution not available.</p>`

// Bank content is trusted, so raw HTML inside markdown passes through.
var (
	prose = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)
	highlighted = goldmark.New(
		goldmark.WithExtensions(
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
	)
)

// RenderSolution maps a solution to its markup fragment. It never fails:
// every input yields some fragment.
func RenderSolution(s Solution) template.HTML {
	switch s.Kind {
	case SolutionText:
		return renderText(s.Text)
	case SolutionMarkdown:
		return renderMarkdown(s.Text)
	case SolutionCode:
		return renderCode(s.Code, s.Language)
	default:
		return template.HTML(UnavailableSolution)
	}
}

// renderText wraps prose in a paragraph verbatim; the text is neither
// escaped nor interpreted.
func renderText(text string) template.HTML {
	return template.HTML("<p>" + text + "</p>")
}

func renderMarkdown(text string) template.HTML {
	var buf bytes.Buffer
	if err := prose.Convert([]byte(text), &buf); err != nil || strings.TrimSpace(buf.String()) == "" {
		return template.HTML("<p>" + text + "</p>")
	}
	return template.HTML(strings.TrimSpace(buf.String()))
}

func renderCode(code, language string) template.HTML {
	plain := template.HTML("<pre><code>" + html.EscapeString(code) + "</code></pre>")
	if language == "" {
		return plain
	}

	fence := strings.Repeat("`", max(3, longestRun(code, '`')+1))
	var src strings.Builder
	src.WriteString(fence + language + "\n")
	src.WriteString(code)
	if !strings.HasSuffix(code, "\n") {
		src.WriteString("\n")
	}
	src.WriteString(fence + "\n")

	var buf bytes.Buffer
	if err := highlighted.Convert([]byte(src.String()), &buf); err != nil {
		return plain
	}
	return template.HTML(strings.TrimSpace(buf.String()))
}

// longestRun returns the length of the longest run of c in s.
func longestRun(s string, c byte) int {
	best, cur := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			cur++
			best = max(best, cur)
		} else {
			cur = 0
		}
	}
	return best
}
