// Package repository defines the interfaces for the backend data layer.
package repository

import (
	"context"

	"frontdesk/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when the singleton profile has not been
// created yet. It is the expected outcome of the existence probe, not a
// failure.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the operations on the legacy singleton business
// profile. Existence is probed rather than listed; create vs update is the
// caller's choice based on the probe result.
type ProfileRepository interface {
	// Fetch retrieves the caller's profile, or ErrProfileNotFound when none
	// exists yet.
	Fetch(ctx context.Context) (*entity.Business, error)

	// Create persists the profile for the first time.
	Create(ctx context.Context, draft *entity.Draft) (*entity.Business, error)

	// Update replaces the existing profile.
	Update(ctx context.Context, draft *entity.Draft) (*entity.Business, error)

	// UploadDocument attaches a document to the profile.
	UploadDocument(ctx context.Context, file entity.FileUpload) (*entity.Document, error)

	// DeleteDocument removes one attachment; missing documents map to
	// ErrDocumentNotFound.
	DeleteDocument(ctx context.Context, documentID string) error

	// BusinessTypes retrieves the enumerated type values used by form
	// selectors.
	BusinessTypes(ctx context.Context) ([]string, error)
}
