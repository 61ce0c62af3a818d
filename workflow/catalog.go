package workflow

import "github.com/teranos/paw/errors"

// Catalog is the materialized list of failed executions of one machine
// within one window. It lives for a single action run.
type Catalog struct {
	Machine    Machine            `json:"machine"`
	Window     DateWindow         `json:"window"`
	Executions []ExecutionSummary `json:"executions"`
}

// NewCatalog builds a catalog from an already filtered listing.
func NewCatalog(machine Machine, window DateWindow, executions []ExecutionSummary) *Catalog {
	return &Catalog{Machine: machine, Window: window, Executions: executions}
}

// Len returns the number of executions.
func (c *Catalog) Len() int {
	return len(c.Executions)
}

// IsEmpty reports whether there is nothing to pick from.
func (c *Catalog) IsEmpty() bool {
	return len(c.Executions) == 0
}

// At returns the execution at index i.
func (c *Catalog) At(i int) (ExecutionSummary, error) {
	if i < 0 || i >= len(c.Executions) {
		return ExecutionSummary{}, errors.NewInvalidRequestError("execution index %d out of range [0, %d)", i, len(c.Executions))
	}
	return c.Executions[i], nil
}

// Labels returns the display form of every execution, in catalog order.
func (c *Catalog) Labels() []string {
	labels := make([]string, len(c.Executions))
	for i, e := range c.Executions {
		labels[i] = e.String()
	}
	return labels
}

// FindMachine looks a machine up by name or ARN.
func FindMachine(machines []Machine, nameOrARN string) (Machine, error) {
	for _, m := range machines {
		if m.ARN == nameOrARN || m.Name == nameOrARN {
			return m, nil
		}
	}
	return Machine{}, errors.NewNotFoundError("state machine %q", nameOrARN)
}

// MachineNames returns the display form of every machine, in order.
func MachineNames(machines []Machine) []string {
	names := make([]string, len(machines))
	for i, m := range machines {
		names[i] = m.String()
	}
	return names
}
