// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package model

import (
	"time"
)

// Message is the last recorded lint result for one message in a catalog.
// The natural key is (catalog, id).
type Message struct {
	Catalog      string    `json:"catalog"                db:"catalog"`
	ID           string    `json:"id"                     db:"id"`
	Source       string    `json:"source"                 db:"source"`
	Digest       string    `json:"digest"                 db:"digest"` // BLAKE2b-256 of Source, hex
	Status       Status    `json:"status"                 db:"status"`
	ErrorCode    string    `json:"errorCode,omitempty"    db:"error_code"`
	ErrorMessage string    `json:"errorMessage,omitempty" db:"error_message"`
	CheckedAt    time.Time `json:"checkedAt"              db:"checked_at"`
}

// Status is the outcome of parsing a message.
type Status string

const (
	StatusOK       Status = "ok"
	StatusMismatch Status = "mismatch"
)

// Error code constants for database storage.
const (
	ErrCodeStructuralMismatch = "STRUCTURAL_MISMATCH"
	ErrCodeUnknown            = "UNKNOWN"
)
