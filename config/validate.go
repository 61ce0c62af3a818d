package config

import (
	"github.com/teranos/paw/errors"
	"github.com/teranos/paw/internal/util"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Page size: 0 = default, otherwise bounded by the ListExecutions API
	if !util.InRange(c.SFN.PageSize, 0, MaxPageSize) {
		return errors.Newf("sfn.page_size must be between 1 and %d, got %d (omit for default)", MaxPageSize, c.SFN.PageSize)
	}

	// Start rate: 0 = unlimited, negative = invalid
	if c.SFN.StartRatePerSecond < 0 {
		return errors.Newf("sfn.start_rate_per_second must be >= 0, got %f", c.SFN.StartRatePerSecond)
	}

	if c.AWS.MaxAttempts < 0 {
		return errors.Newf("aws.max_attempts must be >= 0, got %d", c.AWS.MaxAttempts)
	}

	switch c.Log.Theme {
	case "", "everforest", "gruvbox", "plain":
	default:
		return errors.Newf("log.theme must be one of everforest, gruvbox, plain; got %q", c.Log.Theme)
	}

	return nil
}
