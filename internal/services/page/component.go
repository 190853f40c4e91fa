// Package page hosts the greeting page component.
//
// The component follows the construct/update/render contract of browser
// component frameworks: New builds it, Update reacts to a Message and reports
// whether a redraw is needed, View renders its markup. It has exactly one
// state and every update is a self-transition.
package page

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Greeting is the text rendered inside the component's paragraph.
const Greeting = "Hello, friend."

// Message is the only signal the component accepts. It carries no payload.
type Message struct{}

// State enumerates the component states.
type State uint8

// StateRendered is the single state of the component.
const StateRendered State = iota

func (s State) String() string {
	if s == StateRendered {
		return "rendered"
	}
	return "unknown"
}

// Model is the component instance. It has no fields.
type Model struct{}

// New constructs the component.
func New() *Model {
	return &Model{}
}

// State reports the current state, always StateRendered.
func (m *Model) State() State {
	return StateRendered
}

// Update handles a message. Nothing changes, but a redraw is always requested.
func (m *Model) Update(Message) bool {
	return true
}

// View renders <p>Hello, friend.</p>.
func (m *Model) View() templ.Component {
	return paragraph
}

var paragraph = templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, "<p>"+templ.EscapeString(Greeting)+"</p>")
	return err
})
