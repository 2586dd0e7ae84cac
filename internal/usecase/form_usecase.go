// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"frontdesk/internal/domain/entity"
)

// FormPhase is the lifecycle phase of the profile form.
type FormPhase int

const (
	// FormIdle means no draft is open.
	FormIdle FormPhase = iota
	// FormEditing means a draft is open and editable.
	FormEditing
	// FormSaving means a save is in flight; edits and a second save are
	// rejected until it resolves.
	FormSaving
)

// String returns a human-readable phase name for logs.
func (p FormPhase) String() string {
	switch p {
	case FormIdle:
		return "idle"
	case FormEditing:
		return "editing"
	case FormSaving:
		return "saving"
	default:
		return "unknown"
	}
}

// FormUsecase is the draft/form controller shared by the business form and
// the legacy profile form. It owns exactly one draft at a time; the server's
// response replaces the draft as the source of truth on save.
type FormUsecase interface {
	// New opens an empty draft for creating a business.
	New()

	// Edit opens a draft initialized from an existing business.
	Edit(business *entity.Business)

	// EditProfile probes the singleton profile and opens a draft from it,
	// or an empty profile draft when none exists yet. Returns false when
	// the probe failed for any other reason.
	EditProfile(ctx context.Context) bool

	// Draft returns the open draft, or nil when idle.
	Draft() *entity.Draft

	// Phase returns the current form phase.
	Phase() FormPhase

	// UploadingLogo reports whether a logo upload is in flight.
	UploadingLogo() bool

	// UploadingDocument reports whether a document upload is in flight.
	UploadingDocument() bool

	// SetName, SetType, and SetPhone update the draft's required fields.
	SetName(name string)
	SetType(businessType string)
	SetPhone(phone string)

	// AddService appends a trimmed service tag; whitespace-only input is a
	// no-op and reports false.
	AddService(text string) bool

	// RemoveService removes the tag at the given position.
	RemoveService(index int)

	// Save persists the draft, choosing create vs update by draft ID for
	// businesses and by the probe result for profiles. On success it
	// notifies, closes the form, and returns the saved record; on failure
	// it notifies and keeps the draft editable.
	Save(ctx context.Context) *entity.Business

	// Cancel discards the draft and returns to idle.
	Cancel()

	// UploadLogo attaches a logo to the open business draft. Preconditions
	// are checked before any network call; failures notify and report false.
	UploadLogo(ctx context.Context, file entity.FileUpload) bool

	// UploadDocument attaches a document to the open draft.
	UploadDocument(ctx context.Context, file entity.FileUpload) bool

	// RemoveDocument deletes an attachment of the open draft. An
	// already-deleted document still reports success.
	RemoveDocument(ctx context.Context, documentID string) bool

	// BusinessTypes returns the selectable business types for the form,
	// cached after first load. Failures notify and return an empty list.
	BusinessTypes(ctx context.Context) []string
}
