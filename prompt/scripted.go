package prompt

import (
	"github.com/teranos/paw/errors"
)

// ErrScriptExhausted is returned by Scripted when a question has no answer left.
var ErrScriptExhausted = errors.New("scripted prompter has no answer left")

// Call is one question asked of a Scripted prompter.
type Call struct {
	Kind    string // "select", "multiselect" or "input"
	Label   string
	Options []string
	Checked []int
}

// Scripted answers questions from fixed queues and records every call.
// It drives actions without a terminal, e.g. in tests.
type Scripted struct {
	Selects      []int
	MultiSelects [][]int
	Inputs       []string

	Calls []Call
}

var _ Prompter = (*Scripted)(nil)

func (s *Scripted) Select(label string, options []string) (int, error) {
	s.Calls = append(s.Calls, Call{Kind: "select", Label: label, Options: options})
	if len(s.Selects) == 0 {
		return 0, errors.Wrapf(ErrScriptExhausted, "select %q", label)
	}
	answer := s.Selects[0]
	s.Selects = s.Selects[1:]
	return answer, nil
}

func (s *Scripted) MultiSelect(label string, options []string, checked []int) ([]int, error) {
	s.Calls = append(s.Calls, Call{Kind: "multiselect", Label: label, Options: options, Checked: checked})
	if len(s.MultiSelects) == 0 {
		return nil, errors.Wrapf(ErrScriptExhausted, "multiselect %q", label)
	}
	answer := s.MultiSelects[0]
	s.MultiSelects = s.MultiSelects[1:]
	return answer, nil
}

func (s *Scripted) Input(label string) (string, error) {
	s.Calls = append(s.Calls, Call{Kind: "input", Label: label})
	if len(s.Inputs) == 0 {
		return "", errors.Wrapf(ErrScriptExhausted, "input %q", label)
	}
	answer := s.Inputs[0]
	s.Inputs = s.Inputs[1:]
	return answer, nil
}

// Asked reports how many calls of kind were made.
func (s *Scripted) Asked(kind string) int {
	n := 0
	for _, c := range s.Calls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}
