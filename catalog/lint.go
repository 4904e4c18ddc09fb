// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package catalog

import (
	"context"
	"errors"
	"runtime"

	"github.com/KenyStev/tinymarkup"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of parsing one message.
type Result struct {
	ID     string
	Source string
	Digest string
	Nodes  []tinymarkup.Node // nil if the message failed to parse

	// Err is the *tinymarkup.StructuralMismatch returned by the parser, if any.
	Err        error
	Diagnostic *tinymarkup.Diagnostic
}

// OK reports whether the message parsed.
func (r Result) OK() bool {
	return r.Err == nil
}

// Lint parses every message, running up to jobs parses at once.
// If jobs is zero or less, GOMAXPROCS is used.
// Results are returned in id order. The only error returned is from ctx.
func (c *Catalog) Lint(ctx context.Context, jobs int) ([]Result, error) {
	ids := c.IDs()
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// each goroutine writes only its own index, so results needs no lock
	results := make([]Result, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(ids))))
	for i, id := range ids {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = c.lint(id)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Catalog) lint(id string) Result {
	src := c.messages[id]
	r := Result{ID: id, Source: src, Digest: c.Digest(id)}
	nodes, err := tinymarkup.Parse(src)
	if err != nil {
		r.Err = err
		var mismatch *tinymarkup.StructuralMismatch
		if errors.As(err, &mismatch) {
			d := mismatch.Diagnostic()
			r.Diagnostic = &d
		}
		return r
	}
	r.Nodes = nodes
	return r
}

// Failures returns the results that did not parse.
func Failures(results []Result) []Result {
	var list []Result
	for _, r := range results {
		if !r.OK() {
			list = append(list, r)
		}
	}
	return list
}
