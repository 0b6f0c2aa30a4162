package topic

import (
	"errors"
	"fmt"
	"strings"
)

// Descriptor identifies one topic: the container it renders into, the
// question bank it loads and the label shown above it.
type Descriptor struct {
	ID       string `yaml:"id" koanf:"id" json:"id"`
	DataPath string `yaml:"data_path" koanf:"data_path" json:"data_path"`
	Title    string `yaml:"title" koanf:"title" json:"title"`
}

// ErrNoTopics is returned when a registry is built from an empty list.
var ErrNoTopics = errors.New("no topics configured")

// Registry is an immutable, ordered set of topic descriptors.
type Registry struct {
	topics []Descriptor
	byID   map[string]int
}

// NewRegistry validates descs and returns a registry preserving their order.
// IDs must be unique and non-empty; every topic needs a data path. A missing
// title falls back to the ID.
func NewRegistry(descs ...Descriptor) (*Registry, error) {
	if len(descs) == 0 {
		return nil, ErrNoTopics
	}

	r := &Registry{
		topics: make([]Descriptor, 0, len(descs)),
		byID:   make(map[string]int, len(descs)),
	}
	for i, d := range descs {
		d.ID = strings.TrimSpace(d.ID)
		d.DataPath = strings.TrimSpace(d.DataPath)
		if d.ID == "" {
			return nil, fmt.Errorf("topic %d: id is required", i)
		}
		if d.DataPath == "" {
			return nil, fmt.Errorf("topic %q: data_path is required", d.ID)
		}
		if _, dup := r.byID[d.ID]; dup {
			return nil, fmt.Errorf("topic %q: duplicate id", d.ID)
		}
		if strings.TrimSpace(d.Title) == "" {
			d.Title = d.ID
		}
		r.byID[d.ID] = len(r.topics)
		r.topics = append(r.topics, d)
	}
	return r, nil
}

// All returns a copy of the descriptors in configuration order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, len(r.topics))
	copy(out, r.topics)
	return out
}

// Lookup returns the descriptor with the given id.
func (r *Registry) Lookup(id string) (Descriptor, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Descriptor{}, false
	}
	return r.topics[i], true
}

// Len returns the number of topics.
func (r *Registry) Len() int { return len(r.topics) }

// IDs returns the topic ids in configuration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.topics))
	for i, d := range r.topics {
		ids[i] = d.ID
	}
	return ids
}
