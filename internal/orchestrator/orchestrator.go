package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/highrascal9098/Interview-Prep/internal/loader"
	"github.com/highrascal9098/Interview-Prep/internal/logging"
	"github.com/highrascal9098/Interview-Prep/internal/topic"
	"github.com/highrascal9098/Interview-Prep/internal/view"
)

// ErrBusy is returned when a regeneration is already running on the document.
var ErrBusy = errors.New("regeneration already in progress")

// TopicLoader is the part of loader.Loader the orchestrator drives.
type TopicLoader interface {
	LoadTopic(ctx context.Context, doc *view.Document, containerID, dataPath string, count int) loader.Result
}

// Alerter surfaces an unexpected aggregate failure to the user.
type Alerter interface {
	Alert(msg string)
}

// Observer receives progress for each pass. Methods may be called from
// several goroutines at once.
type Observer interface {
	TopicLoading(passID string, t topic.Descriptor)
	TopicSettled(passID string, t topic.Descriptor, res loader.Result)
	PassFinished(p Pass)
}

// Pass summarises one regeneration.
type Pass struct {
	ID           string
	Count        int
	Started      time.Time
	Finished     time.Time
	Results      []loader.Result
	BoundToggles int
	Err          error
}

// Failed returns the number of topics that settled with an error.
func (p Pass) Failed() int {
	n := 0
	for _, r := range p.Results {
		if r.Status != loader.StatusLoaded {
			n++
		}
	}
	return n
}

// Orchestrator regenerates every configured topic in parallel.
type Orchestrator struct {
	registry *topic.Registry
	loader   TopicLoader
	alerter  Alerter
	observer Observer
	logger   *logrus.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithAlerter sets the alert sink for aggregate failures.
func WithAlerter(a Alerter) Option {
	return func(o *Orchestrator) { o.alerter = a }
}

// WithObserver sets the progress observer.
func WithObserver(obs Observer) Option {
	return func(o *Orchestrator) { o.observer = obs }
}

// WithLogger sets the logger.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// New creates an Orchestrator over an immutable topic registry.
func New(registry *topic.Registry, l TopicLoader, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		registry: registry,
		loader:   l,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Registry returns the configured topics.
func (o *Orchestrator) Registry() *topic.Registry { return o.registry }

// NewDocument returns a document with one container per configured topic.
func (o *Orchestrator) NewDocument() *view.Document {
	return view.NewDocument(o.registry.IDs()...)
}

// RegenerateAll reloads every topic into doc with questionsPerTopic
// questions each. All loads run concurrently; once every one has settled
// the toggle handlers are attached in a single pass and the trigger is
// re-enabled. Individual topic failures stay inside their containers. An
// error is returned only for an unexpected aggregate failure, after the
// user has been alerted and the trigger set to its error label.
func (o *Orchestrator) RegenerateAll(ctx context.Context, doc *view.Document, questionsPerTopic int) (Pass, error) {
	pass := Pass{
		ID:      uuid.NewString(),
		Count:   questionsPerTopic,
		Started: time.Now(),
	}
	if !doc.Trigger.TryBusy() {
		return pass, ErrBusy
	}
	log := o.logger.WithFields(logrus.Fields{
		"pass_id": pass.ID,
		"count":   questionsPerTopic,
	})
	log.Debug("regenerating topics")

	topics := o.registry.All()
	results := make([]loader.Result, len(topics))
	panics := make([]error, len(topics))

	var wg sync.WaitGroup
	for i, t := range topics {
		wg.Add(1)
		go func(i int, t topic.Descriptor) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panics[i] = fmt.Errorf("topic %s: %v", t.ID, r)
					results[i] = loader.Result{
						TopicID:  t.ID,
						DataPath: t.DataPath,
						Status:   loader.StatusFailed,
						Err:      panics[i],
					}
				}
			}()
			if o.observer != nil {
				o.observer.TopicLoading(pass.ID, t)
			}
			results[i] = o.loader.LoadTopic(ctx, doc, t.ID, t.DataPath, questionsPerTopic)
			if o.observer != nil {
				o.observer.TopicSettled(pass.ID, t, results[i])
			}
		}(i, t)
	}
	wg.Wait()

	pass.Results = results
	pass.Err = errors.Join(panics...)
	if pass.Err == nil {
		pass.BoundToggles = view.AttachToggleHandlers(doc)
		doc.Trigger.SetIdle()
	} else {
		log.WithError(pass.Err).Error("regeneration failed")
		if o.alerter != nil {
			o.alerter.Alert("Failed to generate questions: " + pass.Err.Error())
		}
		doc.Trigger.SetError()
	}
	pass.Finished = time.Now()

	log.WithFields(logrus.Fields{
		"topics":   len(results),
		"failed":   pass.Failed(),
		"toggles":  pass.BoundToggles,
		"duration": pass.Finished.Sub(pass.Started).String(),
	}).Info("regeneration finished")

	if o.observer != nil {
		o.observer.PassFinished(pass)
	}
	return pass, pass.Err
}
