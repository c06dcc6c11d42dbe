// Package storage abstracts where uploaded documents are kept. A BlobStore
// hands back an opaque reference; the rest of the system never interprets it
// beyond echoing it to clients and persisting it on the order record.
package storage

import (
	"context"
	"io"
)

type BlobStore interface {
	// Save writes the document to a new, unique location and returns its
	// reference. originalName is advisory only (logging, extension hints);
	// the stored name is always freshly generated.
	Save(ctx context.Context, r io.Reader, originalName string) (string, error)
}
