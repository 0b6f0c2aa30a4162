package view

// State is the visibility of one solution panel.
type State int

const (
	Hidden State = iota
	Visible
)

func (s State) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// Control labels and style classes.
const (
	ShowLabel    = "Show Solution"
	HideLabel    = "Hide Solution"
	VisibleClass = "solution-visible"
	HiddenClass  = "solution-hidden"
)

// Transition is the result of activating a solution control.
type Transition struct {
	State State
	Label string
	Class string
}

// Toggle returns the transition for a control whose panel is in state s.
func Toggle(s State) Transition {
	if s == Hidden {
		return Transition{State: Visible, Label: HideLabel, Class: VisibleClass}
	}
	return Transition{State: Hidden, Label: ShowLabel, Class: HiddenClass}
}

// initial is the presentation of a freshly rendered, hidden panel.
var initial = Transition{State: Hidden, Label: ShowLabel, Class: HiddenClass}

// AttachToggleHandlers binds the toggle behaviour to every solution control
// currently present in doc. Controls that already carry a handler are left
// alone, so repeated calls never stack handlers. It returns the number of
// controls bound by this call.
func AttachToggleHandlers(doc *Document) int {
	bound := 0
	for _, item := range doc.Controls() {
		if item.bind(item.toggle) {
			bound++
		}
	}
	return bound
}
