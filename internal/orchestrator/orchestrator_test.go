package orchestrator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/highrascal9098/Interview-Prep/internal/loader"
	"github.com/highrascal9098/Interview-Prep/internal/topic"
	"github.com/highrascal9098/Interview-Prep/internal/view"
)

const bank = `[
	{"id": "a", "topic": "One", "question": "Q1", "solution": "S1"},
	{"id": "b", "topic": "Two", "question": "Q2", "solution": {"type": "code", "code": "x()"}},
	{"id": "c", "topic": "Three", "question": "Q3", "solution": "S3"},
	{"id": "d", "topic": "Four", "question": "Q4", "solution": "S4"}
]`

func fixtureRegistry(t *testing.T, descs ...topic.Descriptor) *topic.Registry {
	t.Helper()
	r, err := topic.NewRegistry(descs...)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return r
}

func fixtureLoader() *loader.Loader {
	return loader.New(loader.NewFSFetcher(fstest.MapFS{
		"js.json":    {Data: []byte(bank)},
		"react.json": {Data: []byte(bank)},
	}))
}

type recordingObserver struct {
	mu       sync.Mutex
	loading  []string
	settled  []string
	finished []Pass
}

func (r *recordingObserver) TopicLoading(_ string, t topic.Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = append(r.loading, t.ID)
}

func (r *recordingObserver) TopicSettled(_ string, t topic.Descriptor, _ loader.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settled = append(r.settled, t.ID)
}

func (r *recordingObserver) PassFinished(p Pass) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished = append(r.finished, p)
}

type recordingAlerter struct{ msgs []string }

func (a *recordingAlerter) Alert(msg string) { a.msgs = append(a.msgs, msg) }

func TestRegenerateAll(t *testing.T) {
	reg := fixtureRegistry(t,
		topic.Descriptor{ID: "js", DataPath: "js.json"},
		topic.Descriptor{ID: "react", DataPath: "react.json"},
		topic.Descriptor{ID: "broken", DataPath: "missing.json"},
	)
	obs := &recordingObserver{}
	o := New(reg, fixtureLoader(), WithObserver(obs))
	doc := o.NewDocument()

	pass, err := o.RegenerateAll(context.Background(), doc, 2)
	if err != nil {
		t.Fatalf("RegenerateAll: %v", err)
	}
	if pass.ID == "" {
		t.Error("pass id should be set")
	}
	if len(pass.Results) != 3 || pass.Failed() != 1 {
		t.Errorf("results = %d, failed = %d", len(pass.Results), pass.Failed())
	}
	if pass.BoundToggles != 4 {
		t.Errorf("bound toggles = %d, want 4", pass.BoundToggles)
	}
	if doc.Trigger.Label() != view.TriggerIdleLabel || doc.Trigger.Disabled() {
		t.Errorf("trigger = %q/%v", doc.Trigger.Label(), doc.Trigger.Disabled())
	}

	for _, id := range []string{"js", "react"} {
		c, _ := doc.Container(id)
		if len(c.Items()) != 2 {
			t.Errorf("%s rendered %d items, want 2", id, len(c.Items()))
		}
	}
	c, _ := doc.Container("broken")
	if c.Status() != view.StatusFailed || !strings.Contains(c.Message(), "missing.json") {
		t.Errorf("broken container = %v %q", c.Status(), c.Message())
	}

	if len(obs.loading) != 3 || len(obs.settled) != 3 || len(obs.finished) != 1 {
		t.Errorf("observer saw %d loading, %d settled, %d finished", len(obs.loading), len(obs.settled), len(obs.finished))
	}
}

func TestRegenerateTwiceNoHandlerAccumulation(t *testing.T) {
	reg := fixtureRegistry(t,
		topic.Descriptor{ID: "js", DataPath: "js.json"},
		topic.Descriptor{ID: "react", DataPath: "react.json"},
	)
	o := New(reg, fixtureLoader())
	doc := o.NewDocument()

	if _, err := o.RegenerateAll(context.Background(), doc, 3); err != nil {
		t.Fatalf("first pass: %v", err)
	}
	first := map[*view.Item]bool{}
	for _, it := range doc.Controls() {
		first[it] = true
	}

	if _, err := o.RegenerateAll(context.Background(), doc, 3); err != nil {
		t.Fatalf("second pass: %v", err)
	}
	controls := doc.Controls()
	if len(controls) != 6 {
		t.Fatalf("controls = %d, want 6", len(controls))
	}
	for _, it := range controls {
		if first[it] {
			t.Errorf("control %s survived regeneration", it.ControlID)
		}
		if it.HandlerCount() != 1 {
			t.Errorf("control %s has %d handlers, want 1", it.ControlID, it.HandlerCount())
		}
	}

	// One click toggles exactly once.
	target := controls[0]
	if err := doc.Activate(target.ControlID); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if target.State() != view.Visible || target.Label() != view.HideLabel {
		t.Errorf("after click = %v/%q", target.State(), target.Label())
	}
}

// slowLoader lets the test observe that loads overlap.
type slowLoader struct {
	inner   TopicLoader
	mu      sync.Mutex
	active  int
	maxSeen int
}

func (s *slowLoader) LoadTopic(ctx context.Context, doc *view.Document, id, path string, n int) loader.Result {
	s.mu.Lock()
	s.active++
	if s.active > s.maxSeen {
		s.maxSeen = s.active
	}
	s.mu.Unlock()

	time.Sleep(50 * time.Millisecond)
	res := s.inner.LoadTopic(ctx, doc, id, path, n)

	s.mu.Lock()
	s.active--
	s.mu.Unlock()
	return res
}

func TestRegenerateAllRunsConcurrently(t *testing.T) {
	reg := fixtureRegistry(t,
		topic.Descriptor{ID: "js", DataPath: "js.json"},
		topic.Descriptor{ID: "react", DataPath: "react.json"},
	)
	sl := &slowLoader{inner: fixtureLoader()}
	o := New(reg, sl)
	if _, err := o.RegenerateAll(context.Background(), o.NewDocument(), 1); err != nil {
		t.Fatalf("RegenerateAll: %v", err)
	}
	if sl.maxSeen != 2 {
		t.Errorf("max concurrent loads = %d, want 2", sl.maxSeen)
	}
}

type panickyLoader struct{ inner TopicLoader }

func (p panickyLoader) LoadTopic(ctx context.Context, doc *view.Document, id, path string, n int) loader.Result {
	if id == "bad" {
		panic("boom")
	}
	return p.inner.LoadTopic(ctx, doc, id, path, n)
}

func TestRegenerateAllAggregateFailure(t *testing.T) {
	reg := fixtureRegistry(t,
		topic.Descriptor{ID: "js", DataPath: "js.json"},
		topic.Descriptor{ID: "bad", DataPath: "bad.json"},
	)
	alerter := &recordingAlerter{}
	o := New(reg, panickyLoader{inner: fixtureLoader()}, WithAlerter(alerter))
	doc := o.NewDocument()

	pass, err := o.RegenerateAll(context.Background(), doc, 2)
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("err = %v, want boom", err)
	}
	if len(alerter.msgs) != 1 {
		t.Errorf("alerts = %v", alerter.msgs)
	}
	if doc.Trigger.Label() != view.TriggerErrorLabel || doc.Trigger.Disabled() {
		t.Errorf("trigger = %q/%v", doc.Trigger.Label(), doc.Trigger.Disabled())
	}
	if pass.Failed() != 1 {
		t.Errorf("failed = %d", pass.Failed())
	}

	// The trigger is usable again.
	healthy := New(fixtureRegistry(t, topic.Descriptor{ID: "js", DataPath: "js.json"}), fixtureLoader())
	if _, err := healthy.RegenerateAll(context.Background(), doc, 1); err != nil {
		t.Errorf("retry after error: %v", err)
	}
	if doc.Trigger.Label() != view.TriggerIdleLabel {
		t.Errorf("trigger after retry = %q", doc.Trigger.Label())
	}
}

func TestRegenerateAllBusy(t *testing.T) {
	reg := fixtureRegistry(t, topic.Descriptor{ID: "js", DataPath: "js.json"})
	o := New(reg, fixtureLoader())
	doc := o.NewDocument()
	doc.Trigger.TryBusy()

	if _, err := o.RegenerateAll(context.Background(), doc, 1); !errors.Is(err, ErrBusy) {
		t.Errorf("err = %v, want ErrBusy", err)
	}
}

func TestRegenerateAllMissingContainer(t *testing.T) {
	reg := fixtureRegistry(t,
		topic.Descriptor{ID: "js", DataPath: "js.json"},
		topic.Descriptor{ID: "react", DataPath: "react.json"},
	)
	o := New(reg, fixtureLoader())
	doc := view.NewDocument("js")

	pass, err := o.RegenerateAll(context.Background(), doc, 1)
	if err != nil {
		t.Fatalf("RegenerateAll: %v", err)
	}
	var skipped int
	for _, r := range pass.Results {
		if r.Status == loader.StatusSkipped {
			skipped++
			if !errors.Is(r.Err, loader.ErrContainerNotFound) {
				t.Errorf("skip err = %v", r.Err)
			}
		}
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
}
