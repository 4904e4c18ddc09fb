// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package catalog

import "fmt"

// ErrFormat is returned when the catalog file extension is not supported.
type ErrFormat struct {
	Path string
	Ext  string
}

func (e *ErrFormat) Error() string {
	return fmt.Sprintf("%s: unsupported catalog format %q (want .json, .toml, .yaml or .yml)", e.Path, e.Ext)
}

// ErrDecode is returned when the catalog file cannot be decoded.
type ErrDecode struct {
	Path string
	Err  error
}

func (e *ErrDecode) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *ErrDecode) Unwrap() error {
	return e.Err
}
