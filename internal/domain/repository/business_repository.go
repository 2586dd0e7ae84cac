// Package repository defines the interfaces for the backend data layer.
// These interfaces act as a contract between the application layers and the
// REST infrastructure; every operation is credential-bearing and scoped
// server-side to the signed-in identity, which is why none of them take an
// identity parameter.
package repository

import (
	"context"

	"frontdesk/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDocumentNotFound is returned when a document attachment does not exist,
// including the repeat of an already-successful delete.
var ErrDocumentNotFound = errors.New("document not found")

// BusinessRepository defines the operations on the per-identity business
// collection. Server responses are authoritative: after any mutation the
// caller either applies the returned record or re-issues List.
type BusinessRepository interface {
	// List retrieves the caller's businesses in server order, assigning each
	// a stable display index for presentation purposes only.
	List(ctx context.Context) ([]*entity.Business, error)

	// Create validates the draft's required fields locally, then persists a
	// new business. The returned record carries the server-assigned ID.
	Create(ctx context.Context, draft *entity.Draft) (*entity.Business, error)

	// Update validates the draft locally, then replaces the record with the
	// given ID.
	Update(ctx context.Context, id string, draft *entity.Draft) (*entity.Business, error)

	// Delete removes a business. The server cascades to all attachments.
	Delete(ctx context.Context, id string) error

	// UploadLogo attaches a logo image and returns the new logo reference.
	// Preconditions (resolved ID, size, image type) are checked locally.
	UploadLogo(ctx context.Context, id string, file entity.FileUpload) (string, error)

	// UploadDocument attaches a document and returns its metadata.
	UploadDocument(ctx context.Context, id string, file entity.FileUpload) (*entity.Document, error)

	// DeleteDocument removes one attachment. A missing document maps to
	// ErrDocumentNotFound so repeated deletes stay harmless.
	DeleteDocument(ctx context.Context, id, documentID string) error
}
