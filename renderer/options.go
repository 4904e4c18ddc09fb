// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import (
	"fmt"
	"log/slog"
)

type Option func(r *Renderer) error

// WithTagFunc sets the callback used for every tag.
func WithTagFunc(fn TagFunc) Option {
	return func(r *Renderer) error {
		r.tagFunc = fn
		return nil
	}
}

// WithTags renames tags when they are rendered by default,
// for example "b" to "strong". Both names must be non-empty. The element
// name must start with a letter and hold only letters, digits and hyphens.
func WithTags(tags map[string]string) Option {
	return func(r *Renderer) error {
		for from, to := range tags {
			if from == "" || !isElementName(to) {
				return fmt.Errorf("renderer: invalid tag mapping %q=%q", from, to)
			}
			r.tags[from] = to
		}
		return nil
	}
}

func isElementName(name string) bool {
	for i, ch := range name {
		switch {
		case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z':
		case i > 0 && ('0' <= ch && ch <= '9' || ch == '-'):
		default:
			return false
		}
	}
	return name != ""
}

// WithLogger sets the logger used to report markup that falls back to text.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) error {
		r.logger = logger
		return nil
	}
}
