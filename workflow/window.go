package workflow

import (
	"fmt"
	"strings"
	"time"

	"github.com/teranos/paw/errors"
	"github.com/teranos/paw/internal/util"
)

// TimestampLayout is the operator date format, e.g. "1989-09-30 22:10:32 -03:00".
const TimestampLayout = "2006-01-02 15:04:05 -07:00"

// DateWindow bounds executions by start time. A nil bound is open.
// Start after End is allowed and simply matches nothing.
type DateWindow struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// Contains reports whether t falls inside the window, bounds inclusive.
// Missing bounds impose no constraint; "now" is never substituted.
func (w DateWindow) Contains(t time.Time) bool {
	t = t.UTC()
	if w.Start != nil && t.Before(w.Start.UTC()) {
		return false
	}
	if w.End != nil && t.After(w.End.UTC()) {
		return false
	}
	return true
}

// IsOpen reports whether neither bound is set.
func (w DateWindow) IsOpen() bool {
	return w.Start == nil && w.End == nil
}

func (w DateWindow) String() string {
	bound := func(t *time.Time) string {
		if t == nil {
			return "…"
		}
		return t.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("[%s, %s]", bound(w.Start), bound(w.End))
}

// Filter returns the executions whose StartedAt falls inside w, in input order.
// An open window returns the input unchanged.
func Filter(executions []ExecutionSummary, w DateWindow) []ExecutionSummary {
	if w.IsOpen() {
		return executions
	}

	kept := make([]ExecutionSummary, 0, len(executions))
	for _, e := range executions {
		if w.Contains(e.StartedAt) {
			kept = append(kept, e)
		}
	}
	return kept
}

// ParseTimestamp parses operator input in TimestampLayout and normalizes it to UTC.
// Blank input means "no bound" and returns nil without error.
func ParseTimestamp(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(TimestampLayout, raw)
	if err != nil {
		return nil, errors.WithDetail(
			errors.WithHint(
				errors.Wrapf(errors.ErrParse, "invalid date %q", raw),
				"expected YYYY-MM-DD HH:MM:SS ±HH:MM, e.g. 1989-09-30 22:10:32 -03:00",
			),
			err.Error(),
		)
	}

	return util.Ptr(parsed.UTC()), nil
}
