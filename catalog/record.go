// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/KenyStev/tinymarkup"
	"github.com/KenyStev/tinymarkup/model"
)

// Record saves lint results for the catalog named name.
//
// Messages whose digest and status match the stored row are skipped,
// and stored messages that are no longer in results are deleted.
// It returns the number of messages written and deleted.
func Record(ctx context.Context, store model.Store, name string, results []Result, now time.Time) (written, deleted int, err error) {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)

		msg := toMessage(name, r, now)
		prev, err := store.GetMessage(ctx, name, r.ID)
		if err != nil {
			return written, deleted, err
		} else if prev != nil && prev.Digest == msg.Digest && prev.Status == msg.Status {
			continue
		}
		if err := store.UpsertMessage(ctx, msg); err != nil {
			return written, deleted, err
		}
		written++
	}

	deleted, err = store.DeleteMissing(ctx, name, ids)
	return written, deleted, err
}

func toMessage(name string, r Result, now time.Time) *model.Message {
	msg := &model.Message{
		Catalog:   name,
		ID:        r.ID,
		Source:    r.Source,
		Digest:    r.Digest,
		Status:    model.StatusOK,
		CheckedAt: now,
	}
	if r.Err != nil {
		msg.Status = model.StatusMismatch
		msg.ErrorCode = errorCode(r.Err)
		msg.ErrorMessage = r.Err.Error()
	}
	return msg
}

// errorCode returns the error code string for a given error.
func errorCode(err error) string {
	var mismatch *tinymarkup.StructuralMismatch
	if errors.As(err, &mismatch) {
		return model.ErrCodeStructuralMismatch
	}
	return model.ErrCodeUnknown
}
