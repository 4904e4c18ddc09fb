// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package catalog

type config struct {
	normalize bool
}

type Option func(c *config) error

// WithNormalize converts every message to Unicode normalization form C when loaded.
func WithNormalize(flag bool) Option {
	return func(c *config) error {
		c.normalize = flag
		return nil
	}
}
