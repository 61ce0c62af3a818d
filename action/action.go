// Package action holds the operator-facing actions offered by the
// interactive menu and the ordered registry they are chosen from.
package action

import (
	"context"
	"io"
	"os"

	"github.com/teranos/paw/prompt"
	"github.com/teranos/paw/retry"
	"github.com/teranos/paw/workflow"
)

// DefaultName is the label of an action that does not declare its own.
// Seeing it in the menu means an action forgot to override Name.
const DefaultName = "Invalid Action"

// Action is one entry of the interactive menu.
type Action interface {
	// Name is the menu label
	Name() string
	// Execute runs the action to completion
	Execute(ctx context.Context) error
}

// Base supplies the default name. Concrete actions embed it and override Name.
type Base struct{}

// Name returns DefaultName.
func (Base) Name() string { return DefaultName }

// String returns the display form, equal to Name.
func (b Base) String() string { return b.Name() }

// Deps are the collaborators shared by the workflow actions.
type Deps struct {
	Client   workflow.Client
	Prompter prompt.Prompter
	// Emitter receives retry progress; nil discards it
	Emitter retry.ProgressEmitter
	// Warn reports rejected date answers; nil uses prompt.PrintWarning
	Warn   prompt.WarnFunc
	DryRun bool
	// Out receives notices and listings; nil means stdout
	Out io.Writer
}

func (d Deps) out() io.Writer {
	if d.Out == nil {
		return os.Stdout
	}
	return d.Out
}
