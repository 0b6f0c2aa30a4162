package view

import "sync"

// Trigger labels.
const (
	TriggerIdleLabel  = "Generate New Questions"
	TriggerBusyLabel  = "Generating..."
	TriggerErrorLabel = "Error - Try Again"
)

// Trigger is the global "regenerate" control.
type Trigger struct {
	mu       sync.Mutex
	label    string
	disabled bool
}

// NewTrigger returns an enabled trigger with the idle label.
func NewTrigger() *Trigger {
	return &Trigger{label: TriggerIdleLabel}
}

// TryBusy disables the trigger and reports whether it was enabled.
func (t *Trigger) TryBusy() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.disabled {
		return false
	}
	t.disabled = true
	t.label = TriggerBusyLabel
	return true
}

// SetIdle re-enables the trigger with the idle label.
func (t *Trigger) SetIdle() {
	t.set(TriggerIdleLabel, false)
}

// SetError re-enables the trigger with the error label.
func (t *Trigger) SetError() {
	t.set(TriggerErrorLabel, false)
}

func (t *Trigger) set(label string, disabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.label = label
	t.disabled = disabled
}

// Label returns the current label.
func (t *Trigger) Label() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.label
}

// Disabled reports whether the trigger is disabled.
func (t *Trigger) Disabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.disabled
}
