// Package prompt is the operator interaction surface: single choice,
// multiple choice and free text, plus the date questions built on them.
package prompt

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/teranos/paw/errors"
)

// Prompter asks the operator questions. Implementations block until answered.
type Prompter interface {
	// Select returns the index of the chosen option.
	Select(label string, options []string) (int, error)

	// MultiSelect returns the indices of the chosen options in option order.
	// Indices in checked start pre-selected.
	MultiSelect(label string, options []string, checked []int) ([]int, error)

	// Input returns the entered text, untrimmed.
	Input(label string) (string, error)
}

// Terminal prompts on the controlling terminal with pterm.
type Terminal struct {
	// MaxHeight is the number of visible options, 0 uses the pterm default.
	MaxHeight int
}

var _ Prompter = (*Terminal)(nil)

// NewTerminal creates a terminal prompter.
func NewTerminal() *Terminal {
	return &Terminal{MaxHeight: 10}
}

func (t *Terminal) Select(label string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.NewInvalidRequestError("nothing to select for %q", label)
	}

	labels, index := uniqueLabels(options)
	printer := pterm.DefaultInteractiveSelect.
		WithOptions(labels).
		WithDefaultText(label)
	if t.MaxHeight > 0 {
		printer = printer.WithMaxHeight(t.MaxHeight)
	}

	choice, err := printer.Show()
	if err != nil {
		return 0, errors.Wrap(err, "selection aborted")
	}
	i, ok := index[choice]
	if !ok {
		return 0, errors.AssertionFailedf("selected option %q is not in the list", choice)
	}
	return i, nil
}

func (t *Terminal) MultiSelect(label string, options []string, checked []int) ([]int, error) {
	if len(options) == 0 {
		return nil, nil
	}

	labels, index := uniqueLabels(options)
	defaults := make([]string, 0, len(checked))
	for _, i := range checked {
		if i >= 0 && i < len(labels) {
			defaults = append(defaults, labels[i])
		}
	}

	printer := pterm.DefaultInteractiveMultiselect.
		WithOptions(labels).
		WithDefaultOptions(defaults).
		WithDefaultText(label).
		WithFilter(false)
	if t.MaxHeight > 0 {
		printer = printer.WithMaxHeight(t.MaxHeight)
	}

	chosen, err := printer.Show()
	if err != nil {
		return nil, errors.Wrap(err, "selection aborted")
	}
	return indicesOf(chosen, index, len(labels)), nil
}

func (t *Terminal) Input(label string) (string, error) {
	text, err := pterm.DefaultInteractiveTextInput.
		WithDefaultText(label).
		Show()
	if err != nil {
		return "", errors.Wrap(err, "input aborted")
	}
	return text, nil
}

// uniqueLabels suffixes repeated labels so every label maps back to one index.
func uniqueLabels(options []string) ([]string, map[string]int) {
	labels := make([]string, len(options))
	index := make(map[string]int, len(options))
	for i, opt := range options {
		label := opt
		for n := 2; ; n++ {
			if _, taken := index[label]; !taken {
				break
			}
			label = fmt.Sprintf("%s (%d)", opt, n)
		}
		labels[i] = label
		index[label] = i
	}
	return labels, index
}

// indicesOf maps chosen labels back to option indices in option order.
func indicesOf(chosen []string, index map[string]int, n int) []int {
	picked := make([]bool, n)
	for _, label := range chosen {
		if i, ok := index[label]; ok {
			picked[i] = true
		}
	}
	out := make([]int, 0, len(chosen))
	for i, ok := range picked {
		if ok {
			out = append(out, i)
		}
	}
	return out
}
