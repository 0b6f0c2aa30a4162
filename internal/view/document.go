package view

import (
	"errors"
	"fmt"
	"html/template"
	"strings"
	"sync"
)

var (
	// ErrUnknownControl is returned when activating a control id that is not on the page.
	ErrUnknownControl = errors.New("unknown control")
	// ErrUnboundControl is returned when activating a control with no handler attached.
	ErrUnboundControl = errors.New("control has no handler")
)

// Item is one rendered question together with its solution control and
// panel state.
type Item struct {
	Ordinal    int
	QuestionID string
	Topic      string
	Question   template.HTML
	Solution   template.HTML
	ControlID  string
	PanelID    string

	mu       sync.Mutex
	current  Transition
	handlers []func()
}

// NewItem returns an item with a hidden panel and no handler.
func NewItem(ordinal int, questionID, topic string, question, solution template.HTML, controlID, panelID string) *Item {
	return &Item{
		Ordinal:    ordinal,
		QuestionID: questionID,
		Topic:      topic,
		Question:   question,
		Solution:   solution,
		ControlID:  controlID,
		PanelID:    panelID,
		current:    initial,
	}
}

// State returns the panel visibility.
func (it *Item) State() State {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.current.State
}

// Label returns the control's current label.
func (it *Item) Label() string {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.current.Label
}

// Class returns the control's current style class.
func (it *Item) Class() string {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.current.Class
}

// HandlerCount reports how many activation handlers are attached.
func (it *Item) HandlerCount() int {
	it.mu.Lock()
	defer it.mu.Unlock()
	return len(it.handlers)
}

func (it *Item) bind(h func()) bool {
	it.mu.Lock()
	defer it.mu.Unlock()
	if len(it.handlers) > 0 {
		return false
	}
	it.handlers = append(it.handlers, h)
	return true
}

func (it *Item) toggle() {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.current = Toggle(it.current.State)
}

func (it *Item) activate() error {
	it.mu.Lock()
	hs := make([]func(), len(it.handlers))
	copy(hs, it.handlers)
	it.mu.Unlock()

	if len(hs) == 0 {
		return ErrUnboundControl
	}
	for _, h := range hs {
		h()
	}
	return nil
}

func (it *Item) snapshot() itemView {
	it.mu.Lock()
	defer it.mu.Unlock()
	return itemView{
		Ordinal:   it.Ordinal,
		Topic:     it.Topic,
		Question:  it.Question,
		Solution:  it.Solution,
		ControlID: it.ControlID,
		PanelID:   it.PanelID,
		Label:     it.current.Label,
		Class:     it.current.Class,
		Visible:   it.current.State == Visible,
	}
}

// Status describes what a container currently shows.
type Status int

const (
	StatusEmpty Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "empty"
	}
}

// Container is the page region owned by one topic. Each write replaces the
// whole content; items from a previous render are dropped with it.
type Container struct {
	ID string

	mu      sync.RWMutex
	status  Status
	message string
	items   []*Item
}

// SetLoading shows a transient loading message.
func (c *Container) SetLoading(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = StatusLoading
	c.message = msg
	c.items = nil
}

// Replace swaps in a freshly rendered question list.
func (c *Container) Replace(items []*Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = StatusReady
	c.message = ""
	c.items = items
}

// Fail shows a visible error message in place of the content.
func (c *Container) Fail(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = StatusFailed
	c.message = msg
	c.items = nil
}

// Status returns what the container currently shows.
func (c *Container) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Message returns the loading or error text, if any.
func (c *Container) Message() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.message
}

// Items returns the currently rendered items.
func (c *Container) Items() []*Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

// HTML renders the container's current content.
func (c *Container) HTML() template.HTML {
	c.mu.RLock()
	status, msg, items := c.status, c.message, c.items
	c.mu.RUnlock()

	data := contentView{Status: status.String(), Message: msg}
	for _, it := range items {
		data.Items = append(data.Items, it.snapshot())
	}

	var b strings.Builder
	if err := contentTemplate.Execute(&b, data); err != nil {
		return template.HTML(`<p class="error">` + template.HTMLEscapeString(err.Error()) + `</p>`)
	}
	return template.HTML(b.String())
}

// Document is the rendered page: one container per topic plus the global
// trigger control.
type Document struct {
	Trigger *Trigger

	order      []string
	containers map[string]*Container
}

// NewDocument creates a document with one empty container per id.
func NewDocument(ids ...string) *Document {
	d := &Document{
		Trigger:    NewTrigger(),
		containers: make(map[string]*Container, len(ids)),
	}
	for _, id := range ids {
		if _, ok := d.containers[id]; ok {
			continue
		}
		d.order = append(d.order, id)
		d.containers[id] = &Container{ID: id}
	}
	return d
}

// Container looks up a container by id.
func (d *Document) Container(id string) (*Container, bool) {
	c, ok := d.containers[id]
	return c, ok
}

// Containers returns all containers in creation order.
func (d *Document) Containers() []*Container {
	out := make([]*Container, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.containers[id])
	}
	return out
}

// Controls returns every solution control currently on the page.
func (d *Document) Controls() []*Item {
	var out []*Item
	for _, c := range d.Containers() {
		out = append(out, c.Items()...)
	}
	return out
}

// Activate simulates a click on the control with the given id.
func (d *Document) Activate(controlID string) error {
	for _, it := range d.Controls() {
		if it.ControlID == controlID {
			return it.activate()
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownControl, controlID)
}
