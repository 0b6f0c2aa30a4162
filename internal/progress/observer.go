package progress

import (
	"fmt"
	"sync"
	"time"

	"github.com/highrascal9098/Interview-Prep/internal/loader"
	"github.com/highrascal9098/Interview-Prep/internal/orchestrator"
	"github.com/highrascal9098/Interview-Prep/internal/topic"
)

// PassObserver feeds orchestrator events to a Reporter. Topics settle on
// their own goroutines; the mutex keeps the count and output ordered.
type PassObserver struct {
	reporter Reporter

	mu      sync.Mutex
	settled int
}

// NewPassObserver starts reporter for total topics.
func NewPassObserver(reporter Reporter, total int) *PassObserver {
	reporter.Start(total)
	return &PassObserver{reporter: reporter}
}

func (p *PassObserver) TopicLoading(string, topic.Descriptor) {}

func (p *PassObserver) TopicSettled(_ string, t topic.Descriptor, res loader.Result) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.settled++
	line := fmt.Sprintf("%s %d/%d", t.ID, res.Rendered, res.Available)
	if res.Status != loader.StatusLoaded {
		line = fmt.Sprintf("%s %s", t.ID, res.Status)
	}
	p.reporter.Settled(p.settled, line)
}

func (p *PassObserver) PassFinished(pass orchestrator.Pass) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reporter.Done(fmt.Sprintf("pass %s: %d topics, %d failed in %s",
		shortID(pass.ID), len(pass.Results), pass.Failed(),
		pass.Finished.Sub(pass.Started).Round(time.Millisecond)))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
