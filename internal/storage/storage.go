// Package storage abstracts where uploaded pet images live. Exactly one
// backend is active per deployment: local disk served under /uploads, or a
// MinIO bucket with public object URLs.
package storage

import (
	"context"
	"mime/multipart"
)

type Storage interface {
	// Store persists the uploaded file and returns the reference that gets
	// written into the pet document (a relative path or an absolute URL).
	Store(ctx context.Context, file *multipart.FileHeader) (string, error)

	// Delete removes a previously stored asset. Callers treat failures as
	// best-effort: log and move on.
	Delete(ctx context.Context, ref string) error

	// Owns reports whether ref points at an asset held by this backend.
	// Literal URLs submitted by clients are never owned and never deleted.
	Owns(ref string) bool
}
