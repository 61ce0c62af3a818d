package display

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/teranos/paw/retry"
)

// ProgressBar renders a retry batch as a pterm progress bar titled
// "(<pos> of <len>) ID: <name>".
type ProgressBar struct {
	writer io.Writer
	bar    *pterm.ProgressbarPrinter
}

var _ retry.ProgressEmitter = (*ProgressBar)(nil)

// NewProgressBar creates a progress bar on stderr, next to the prompts.
func NewProgressBar() *ProgressBar {
	return NewProgressBarWithWriter(os.Stderr)
}

// NewProgressBarWithWriter creates a progress bar writing to w.
func NewProgressBarWithWriter(w io.Writer) *ProgressBar {
	return &ProgressBar{writer: w}
}

// ProgressTitle is the bar title after position items of total.
func ProgressTitle(position, total int, name string) string {
	return fmt.Sprintf("(%d of %d) ID: %s", position, total, name)
}

func (p *ProgressBar) Begin(total int) {
	if total == 0 {
		return
	}
	p.bar, _ = pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle(fmt.Sprintf("(0 of %d)", total)).
		WithShowCount(false).
		WithShowElapsedTime(false).
		WithWriter(p.writer).
		Start()
}

func (p *ProgressBar) Advance(position, total int, name string) {
	if p.bar == nil {
		return
	}
	p.bar.UpdateTitle(ProgressTitle(position, total, name))
	p.bar.Increment()
}

func (p *ProgressBar) Fail(position, total int, name string, err error) {
	if p.bar == nil {
		return
	}
	p.bar.UpdateTitle(ProgressTitle(position, total, name) + " failed")
	_, _ = p.bar.Stop()
}

func (p *ProgressBar) Finish(report retry.Report) {
	if p.bar != nil {
		_, _ = p.bar.Stop()
		p.bar = nil
	}
}
