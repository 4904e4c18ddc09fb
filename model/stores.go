// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package model

import "context"

// Store is an interface for recording lint results.
type Store interface {
	// UpsertMessage inserts the message or replaces the one with the same catalog and id.
	UpsertMessage(ctx context.Context, msg *Message) error
	// GetMessage returns nil, nil if there is no such message.
	GetMessage(ctx context.Context, catalog, id string) (*Message, error)
	ListMessages(ctx context.Context, catalog string) ([]Message, error)
	ListFailures(ctx context.Context, catalog string) ([]Message, error)
	// DeleteMissing removes messages in the catalog whose id is not in ids.
	DeleteMissing(ctx context.Context, catalog string, ids []string) (int, error)
	Stats(ctx context.Context) (Stats, error)

	Close() error
}

// Stats holds store statistics.
type Stats struct {
	Catalogs int
	Messages int
	Failures int
}
