package topic

import (
	"errors"
	"strings"
	"testing"
)

func TestNewRegistry(t *testing.T) {
	r, err := NewRegistry(
		Descriptor{ID: "javascript", DataPath: "javascript.json", Title: "JavaScript"},
		Descriptor{ID: "react", DataPath: "react.json"},
	)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}

	all := r.All()
	if all[0].ID != "javascript" || all[1].ID != "react" {
		t.Errorf("order not preserved: %+v", all)
	}
	if all[1].Title != "react" {
		t.Errorf("title fallback = %q, want %q", all[1].Title, "react")
	}

	// Mutating the returned slice must not affect the registry.
	all[0].ID = "changed"
	if got := r.All()[0].ID; got != "javascript" {
		t.Errorf("registry mutated through All(): got %q", got)
	}

	d, ok := r.Lookup("react")
	if !ok || d.DataPath != "react.json" {
		t.Errorf("Lookup(react) = %+v, %v", d, ok)
	}
	if _, ok := r.Lookup("missing"); ok {
		t.Error("Lookup(missing) should fail")
	}
	if ids := r.IDs(); strings.Join(ids, ",") != "javascript,react" {
		t.Errorf("IDs() = %v", ids)
	}
}

func TestNewRegistryErrors(t *testing.T) {
	tests := []struct {
		name    string
		descs   []Descriptor
		wantErr string
	}{
		{"empty", nil, "no topics"},
		{"missing id", []Descriptor{{DataPath: "a.json"}}, "id is required"},
		{"missing path", []Descriptor{{ID: "a"}}, "data_path is required"},
		{"duplicate", []Descriptor{{ID: "a", DataPath: "a.json"}, {ID: "a", DataPath: "b.json"}}, "duplicate id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.descs...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}

	if _, err := NewRegistry(); !errors.Is(err, ErrNoTopics) {
		t.Errorf("expected ErrNoTopics, got %v", err)
	}
}
