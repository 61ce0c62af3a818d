package prompt

import (
	"time"

	"github.com/pterm/pterm"

	"github.com/teranos/paw/errors"
	"github.com/teranos/paw/workflow"
)

// Date prompt labels.
const (
	StartDateLabel = "Start Date (ex. 1989-09-30 22:10:32 -03:00)"
	EndDateLabel   = "End Date (ex. 1989-09-30 23:15:00 -03:00)"
)

// WarnFunc reports a rejected answer before the question is asked again.
type WarnFunc func(raw string, err error)

// PrintWarning is the default WarnFunc.
func PrintWarning(raw string, err error) {
	pterm.Warning.Printfln("Invalid date (%s). Please try again!", invalidReason(raw, err))
	if hint := errors.FlattenHints(err); hint != "" {
		pterm.Printfln("  %s", pterm.Gray(hint))
	}
}

// invalidReason is the parser's explanation, or the raw answer when there is none.
func invalidReason(raw string, err error) string {
	if detail := errors.FlattenDetails(err); detail != "" {
		return detail
	}
	return raw
}

// Date asks for a timestamp until the answer parses. A blank answer is no
// bound and returns nil. Only a failure of the prompter itself ends the loop
// with an error.
func Date(p Prompter, label string, warn WarnFunc) (*time.Time, error) {
	if warn == nil {
		warn = PrintWarning
	}

	for {
		raw, err := p.Input(label)
		if err != nil {
			return nil, err
		}

		ts, err := workflow.ParseTimestamp(raw)
		if err == nil {
			return ts, nil
		}
		if !errors.Is(err, errors.ErrParse) {
			return nil, err
		}
		warn(raw, err)
	}
}

// Window asks for the start and then the end bound.
func Window(p Prompter, warn WarnFunc) (workflow.DateWindow, error) {
	start, err := Date(p, StartDateLabel, warn)
	if err != nil {
		return workflow.DateWindow{}, err
	}
	end, err := Date(p, EndDateLabel, warn)
	if err != nil {
		return workflow.DateWindow{}, err
	}
	return workflow.DateWindow{Start: start, End: end}, nil
}
