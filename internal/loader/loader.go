package loader

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/highrascal9098/Interview-Prep/internal/logging"
	"github.com/highrascal9098/Interview-Prep/internal/quiz"
	"github.com/highrascal9098/Interview-Prep/internal/view"
)

// LoadingMessage is shown in a container while its bank is fetched.
const LoadingMessage = "Loading questions..."

// ErrContainerNotFound means the page has no container for the topic.
var ErrContainerNotFound = errors.New("container not found")

// Status is the terminal state of one topic load.
type Status int

const (
	StatusLoaded Status = iota
	StatusFailed
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "loaded"
	}
}

// Result describes how one topic load settled.
type Result struct {
	TopicID   string
	DataPath  string
	Status    Status
	Available int
	Rendered  int
	// Questions are the sampled source questions, in render order.
	Questions []quiz.Question
	Err       error
	Duration  time.Duration
}

// Loader fetches, samples and renders one topic at a time.
type Loader struct {
	fetcher Fetcher
	sampler quiz.Sampler
	logger  *logrus.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithSampler overrides the random sampler.
func WithSampler(s quiz.Sampler) Option {
	return func(l *Loader) { l.sampler = s }
}

// WithLogger sets the logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// New creates a Loader reading banks through fetcher.
func New(fetcher Fetcher, opts ...Option) *Loader {
	l := &Loader{
		fetcher: fetcher,
		sampler: quiz.Sampler{Source: quiz.RandomSource()},
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadTopic fills the container containerID with count questions sampled
// from dataPath. It always settles: fetch and decode failures are written
// into the container as a visible error and reported in the Result, never
// returned. A missing container is logged and skipped.
func (l *Loader) LoadTopic(ctx context.Context, doc *view.Document, containerID, dataPath string, count int) Result {
	start := time.Now()
	res := Result{TopicID: containerID, DataPath: dataPath}
	log := l.logger.WithFields(logrus.Fields{
		"topic":     containerID,
		"data_path": dataPath,
	})

	container, ok := doc.Container(containerID)
	if !ok {
		res.Status = StatusSkipped
		res.Err = fmt.Errorf("%w: %s", ErrContainerNotFound, containerID)
		res.Duration = time.Since(start)
		log.Warn("no container on page, skipping topic")
		return res
	}

	container.SetLoading(LoadingMessage)

	questions, err := l.fetchBank(ctx, dataPath)
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		res.Duration = time.Since(start)
		container.Fail(ErrorMessage(containerID, dataPath, err))
		log.WithError(err).Error("loading topic failed")
		return res
	}

	sampled := l.sampler.Sample(questions, count)
	container.Replace(buildItems(containerID, sampled))

	res.Status = StatusLoaded
	res.Available = len(questions)
	res.Rendered = len(sampled)
	res.Questions = sampled
	res.Duration = time.Since(start)
	log.WithFields(logrus.Fields{
		"available": res.Available,
		"rendered":  res.Rendered,
	}).Debug("topic loaded")
	return res
}

func (l *Loader) fetchBank(ctx context.Context, dataPath string) ([]quiz.Question, error) {
	data, err := l.fetcher.Fetch(ctx, dataPath)
	if err != nil {
		return nil, err
	}
	return quiz.DecodeBank(data)
}

// ErrorMessage is the text shown in a container whose load failed.
func ErrorMessage(containerID, dataPath string, err error) string {
	return fmt.Sprintf("Error loading questions for %q from %s: %v", containerID, dataPath, err)
}

// buildItems renders sampled questions into view items. Control and panel
// ids are built from the encoded container and question ids, so they stay
// unique page-wide.
func buildItems(containerID string, sampled []quiz.Question) []*view.Item {
	items := make([]*view.Item, 0, len(sampled))
	used := make(map[string]bool, len(sampled))
	prefix := idPart(containerID)
	for i, q := range sampled {
		ordinal := i + 1
		key := idPart(string(q.ID))
		if key == "" {
			// Never an idPart output: '_' is always followed by two hex digits there.
			key = "_q" + strconv.Itoa(ordinal)
		}
		suffix := prefix + "-" + key
		if used[suffix] {
			suffix += "-" + strconv.Itoa(ordinal)
		}
		used[suffix] = true

		items = append(items, view.NewItem(
			ordinal,
			string(q.ID),
			q.Topic,
			template.HTML(q.Question),
			quiz.RenderSolution(q.Solution),
			"toggle-"+suffix,
			"solution-"+suffix,
		))
	}
	return items
}

// idPart encodes s for use inside an element id. ASCII letters and digits
// are kept; every other byte becomes _xx (lowercase hex). The encoding is
// injective and never contains '-', which separates the parts of an id.
func idPart(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "_%02x", c)
		}
	}
	return b.String()
}
