package action

import (
	"github.com/teranos/paw/errors"
	"github.com/teranos/paw/prompt"
)

// MenuLabel is the question of the action menu.
const MenuLabel = "Select the Action:"

// Registry is the ordered, immutable list of available actions.
type Registry struct {
	actions []Action
}

// NewRegistry builds a registry; menu order is argument order.
func NewRegistry(actions ...Action) *Registry {
	return &Registry{actions: append([]Action(nil), actions...)}
}

// Len returns the number of actions.
func (r *Registry) Len() int {
	return len(r.actions)
}

// Names returns the menu labels in order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.actions))
	for i, a := range r.actions {
		names[i] = a.Name()
	}
	return names
}

// Get returns the action at index.
func (r *Registry) Get(index int) (Action, error) {
	if index < 0 || index >= len(r.actions) {
		return nil, errors.NewInvalidRequestError("action index %d out of range [0, %d)", index, len(r.actions))
	}
	return r.actions[index], nil
}

// Choose asks the operator for an action.
func (r *Registry) Choose(p prompt.Prompter) (Action, error) {
	if len(r.actions) == 0 {
		return nil, errors.NewInvalidRequestError("no actions registered")
	}
	index, err := p.Select(MenuLabel, r.Names())
	if err != nil {
		return nil, err
	}
	return r.Get(index)
}
