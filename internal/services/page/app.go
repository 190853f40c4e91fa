package page

import (
	"sync"

	"github.com/a-h/templ"
)

// App is a mounted component. It serializes message delivery and counts the
// redraws the component asked for.
type App struct {
	mu      sync.Mutex
	model   *Model
	redraws int
}

// Mount hosts model. A nil model is replaced by a freshly constructed one.
func Mount(model *Model) *App {
	if model == nil {
		model = New()
	}
	return &App{model: model}
}

// Send delivers msg to the component and returns whether it requested a
// redraw.
func (a *App) Send(msg Message) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	redraw := a.model.Update(msg)
	if redraw {
		a.redraws++
	}
	return redraw
}

// Redraws returns how many redraws the component requested since mounting.
func (a *App) Redraws() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.redraws
}

// State returns the mounted component state.
func (a *App) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.model.State()
}

// View renders the mounted component.
func (a *App) View() templ.Component {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.model.View()
}
