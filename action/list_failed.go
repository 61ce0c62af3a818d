package action

import (
	"context"

	"github.com/teranos/paw/display"
)

// ListFailedExecutions prints the failed executions of a machine in a window.
// It never writes to the service.
type ListFailedExecutions struct {
	Base
	deps Deps
}

// NewListFailedExecutions creates the listing action.
func NewListFailedExecutions(deps Deps) *ListFailedExecutions {
	return &ListFailedExecutions{deps: deps}
}

func (a *ListFailedExecutions) Name() string { return "List Failed Executions" }

func (a *ListFailedExecutions) String() string { return a.Name() }

func (a *ListFailedExecutions) Execute(ctx context.Context) error {
	catalog, err := discover(ctx, a.deps)
	if err != nil {
		return err
	}
	return display.PrintCatalog(a.deps.out(), catalog)
}
