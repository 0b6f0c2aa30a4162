package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter shows how far a regeneration pass has got.
type Reporter interface {
	Start(topics int)
	Settled(done int, line string)
	Done(summary string)
}

// NewReporter picks a bar for interactive terminals and plain lines when
// running under CI. Output goes to w so stdout stays free for results.
func NewReporter(w io.Writer) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &LineReporter{Out: w}
	}
	return &BarReporter{Out: w}
}

// BarReporter draws a progressbar counting settled topics.
type BarReporter struct {
	Out io.Writer
	bar *progressbar.ProgressBar
}

func (r *BarReporter) Start(topics int) {
	r.bar = progressbar.NewOptions(topics,
		progressbar.OptionSetWriter(r.Out),
		progressbar.OptionSetDescription("sampling"),
		progressbar.OptionSetItsString("topics"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *BarReporter) Settled(done int, line string) {
	if r.bar == nil {
		return
	}
	r.bar.Describe(line)
	_ = r.bar.Set(done)
}

func (r *BarReporter) Done(summary string) {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
	fmt.Fprintln(r.Out, summary)
}

// LineReporter writes one line per settled topic.
type LineReporter struct {
	Out    io.Writer
	topics int
}

func (r *LineReporter) Start(topics int) {
	r.topics = topics
	fmt.Fprintf(r.Out, "sampling %d topics\n", topics)
}

func (r *LineReporter) Settled(done int, line string) {
	fmt.Fprintf(r.Out, "  %d/%d %s\n", done, r.topics, line)
}

func (r *LineReporter) Done(summary string) {
	fmt.Fprintln(r.Out, summary)
}
