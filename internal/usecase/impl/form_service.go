// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"frontdesk/internal/domain/entity"
	domainerrors "frontdesk/internal/domain/errors"
	"frontdesk/internal/domain/repository"
	"frontdesk/internal/domain/service"
	"frontdesk/internal/usecase"

	"github.com/pkg/errors"
)

// formService implements the FormUsecase interface. It owns at most one
// draft at a time; every mutation happens under the mutex, while network
// calls run with the lock released so a slow save never blocks reads.
type formService struct {
	businessRepo repository.BusinessRepository
	profileRepo  repository.ProfileRepository
	notifier     service.Notifier
	logger       *slog.Logger

	mu                sync.Mutex
	draft             *entity.Draft
	phase             usecase.FormPhase
	uploadingLogo     bool
	uploadingDocument bool
	profileExists     bool
	businessTypes     []string
}

// NewFormService is the constructor for formService.
func NewFormService(
	businessRepo repository.BusinessRepository,
	profileRepo repository.ProfileRepository,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.FormUsecase {
	return &formService{
		businessRepo: businessRepo,
		profileRepo:  profileRepo,
		notifier:     notifier,
		logger:       logger,
		phase:        usecase.FormIdle,
	}
}

// New opens an empty business draft.
func (srv *formService) New() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.draft = entity.NewBusinessDraft()
	srv.phase = usecase.FormEditing
}

// Edit opens a draft initialized from an existing business.
func (srv *formService) Edit(business *entity.Business) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.draft = entity.DraftOf(business)
	srv.phase = usecase.FormEditing
}

// EditProfile probes the singleton profile and opens a draft from the
// result. A missing profile is the expected first-run outcome and opens an
// empty draft that will create on save.
func (srv *formService) EditProfile(ctx context.Context) bool {
	profile, err := srv.profileRepo.Fetch(ctx)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	switch {
	case err == nil:
		draft := entity.DraftOf(profile)
		draft.Kind = entity.KindProfile
		srv.draft = draft
		srv.profileExists = true
	case errors.Is(err, repository.ErrProfileNotFound):
		srv.draft = &entity.Draft{Kind: entity.KindProfile}
		srv.profileExists = false
	default:
		srv.logger.Warn("failed to load profile", slog.Any("error", err))
		srv.notifier.Error(domainerrors.UserMessage(err, "failed to load profile"))

		return false
	}

	srv.phase = usecase.FormEditing

	return true
}

// Draft returns the open draft, or nil when idle.
func (srv *formService) Draft() *entity.Draft {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.draft
}

// Phase returns the current form phase.
func (srv *formService) Phase() usecase.FormPhase {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.phase
}

// UploadingLogo reports whether a logo upload is in flight.
func (srv *formService) UploadingLogo() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.uploadingLogo
}

// UploadingDocument reports whether a document upload is in flight.
func (srv *formService) UploadingDocument() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.uploadingDocument
}

// SetName updates the draft's business name.
func (srv *formService) SetName(name string) {
	srv.withEditableDraft(func(draft *entity.Draft) {
		draft.Name = name
	})
}

// SetType updates the draft's business type.
func (srv *formService) SetType(businessType string) {
	srv.withEditableDraft(func(draft *entity.Draft) {
		draft.Type = businessType
	})
}

// SetPhone updates the draft's phone number.
func (srv *formService) SetPhone(phone string) {
	srv.withEditableDraft(func(draft *entity.Draft) {
		draft.Phone = phone
	})
}

// AddService appends a trimmed service tag to the draft.
func (srv *formService) AddService(text string) bool {
	added := false
	srv.withEditableDraft(func(draft *entity.Draft) {
		added = draft.AddService(text)
	})

	return added
}

// RemoveService removes the tag at the given position.
func (srv *formService) RemoveService(index int) {
	srv.withEditableDraft(func(draft *entity.Draft) {
		draft.RemoveService(index)
	})
}

// Save persists the open draft. Create vs update is chosen by the draft ID
// for businesses and by the probe result for profiles; the server response
// is authoritative. Success closes the form; failure keeps it editable.
func (srv *formService) Save(ctx context.Context) *entity.Business {
	srv.mu.Lock()
	if srv.phase != usecase.FormEditing || srv.draft == nil {
		srv.mu.Unlock()

		return nil
	}
	srv.phase = usecase.FormSaving
	draft := srv.draft
	profileExists := srv.profileExists
	srv.mu.Unlock()

	saved, err := srv.persist(ctx, draft, profileExists)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err != nil {
		srv.logger.Warn("failed to save draft", slog.Any("error", err))
		srv.notifier.Error(domainerrors.UserMessage(err, "failed to save"))
		srv.phase = usecase.FormEditing

		return nil
	}

	if draft.Kind == entity.KindProfile {
		srv.profileExists = true
		srv.notifier.Success("Profile saved")
	} else {
		srv.notifier.Success("Business saved")
	}
	srv.draft = nil
	srv.phase = usecase.FormIdle

	return saved
}

func (srv *formService) persist(ctx context.Context, draft *entity.Draft, profileExists bool) (*entity.Business, error) {
	if draft.Kind == entity.KindProfile {
		if profileExists {
			return srv.profileRepo.Update(ctx, draft)
		}

		return srv.profileRepo.Create(ctx, draft)
	}

	if draft.ID == "" {
		return srv.businessRepo.Create(ctx, draft)
	}

	return srv.businessRepo.Update(ctx, draft.ID, draft)
}

// Cancel discards the draft.
func (srv *formService) Cancel() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.draft = nil
	srv.phase = usecase.FormIdle
}

// UploadLogo attaches a logo image to the open business draft. The upload
// trigger stays disabled while one is in flight.
func (srv *formService) UploadLogo(ctx context.Context, file entity.FileUpload) bool {
	srv.mu.Lock()
	draft := srv.draft
	if draft == nil || srv.uploadingLogo {
		srv.mu.Unlock()

		return false
	}
	if draft.Kind != entity.KindBusiness {
		srv.mu.Unlock()
		srv.notifier.Error("logo upload is only available for businesses")

		return false
	}
	if !draft.Saved() {
		srv.mu.Unlock()
		srv.notifier.Error("save the business before uploading a logo")

		return false
	}
	srv.uploadingLogo = true
	id := draft.ID
	srv.mu.Unlock()

	logoURL, err := srv.businessRepo.UploadLogo(ctx, id, file)

	srv.mu.Lock()
	defer srv.mu.Unlock()
	srv.uploadingLogo = false

	if err != nil {
		srv.logger.Warn("logo upload failed", slog.Any("error", err))
		srv.notifier.Error(domainerrors.UserMessage(err, "failed to upload logo"))

		return false
	}

	if srv.draft != nil {
		srv.draft.LogoURL = logoURL
	}
	srv.notifier.Success("Logo uploaded")

	return true
}

// UploadDocument attaches a document to the open draft and appends it to the
// in-memory document list on success.
func (srv *formService) UploadDocument(ctx context.Context, file entity.FileUpload) bool {
	srv.mu.Lock()
	draft := srv.draft
	if draft == nil || srv.uploadingDocument {
		srv.mu.Unlock()

		return false
	}
	// A profile draft reports Saved even before its first save; the probe
	// result is the real existence signal there.
	saved := draft.Saved()
	if draft.Kind == entity.KindProfile {
		saved = srv.profileExists
	}
	if !saved {
		srv.mu.Unlock()
		srv.notifier.Error("save before uploading documents")

		return false
	}
	srv.uploadingDocument = true
	kind, id := draft.Kind, draft.ID
	srv.mu.Unlock()

	var doc *entity.Document
	var err error
	if kind == entity.KindProfile {
		doc, err = srv.profileRepo.UploadDocument(ctx, file)
	} else {
		doc, err = srv.businessRepo.UploadDocument(ctx, id, file)
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()
	srv.uploadingDocument = false

	if err != nil {
		srv.logger.Warn("document upload failed", slog.Any("error", err))
		srv.notifier.Error(domainerrors.UserMessage(err, "failed to upload document"))

		return false
	}

	if srv.draft != nil {
		srv.draft.Documents = append(srv.draft.Documents, *doc)
	}
	srv.notifier.Success("Document uploaded")

	return true
}

// RemoveDocument deletes an attachment of the open draft. A document the
// server no longer has is treated as deleted, so a repeated remove stays
// harmless.
func (srv *formService) RemoveDocument(ctx context.Context, documentID string) bool {
	srv.mu.Lock()
	draft := srv.draft
	if draft == nil {
		srv.mu.Unlock()

		return false
	}
	kind, id := draft.Kind, draft.ID
	srv.mu.Unlock()

	var err error
	if kind == entity.KindProfile {
		err = srv.profileRepo.DeleteDocument(ctx, documentID)
	} else {
		err = srv.businessRepo.DeleteDocument(ctx, id, documentID)
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err != nil && !errors.Is(err, repository.ErrDocumentNotFound) {
		srv.logger.Warn("document delete failed",
			slog.String("document_id", documentID),
			slog.Any("error", err))
		srv.notifier.Error(domainerrors.UserMessage(err, "failed to delete document"))

		return false
	}

	if srv.draft != nil {
		srv.draft.Documents = removeDocument(srv.draft.Documents, documentID)
	}
	srv.notifier.Success("Document deleted")

	return true
}

// BusinessTypes returns the selectable business types, fetched once and
// cached for the lifetime of the service.
func (srv *formService) BusinessTypes(ctx context.Context) []string {
	srv.mu.Lock()
	if srv.businessTypes != nil {
		cached := srv.businessTypes
		srv.mu.Unlock()

		return cached
	}
	srv.mu.Unlock()

	types, err := srv.profileRepo.BusinessTypes(ctx)
	if err != nil {
		srv.logger.Warn("failed to load business types", slog.Any("error", err))
		srv.notifier.Error(domainerrors.UserMessage(err, "failed to load business types"))

		return nil
	}

	srv.mu.Lock()
	srv.businessTypes = types
	srv.mu.Unlock()

	return types
}

func (srv *formService) withEditableDraft(fn func(*entity.Draft)) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.phase != usecase.FormEditing || srv.draft == nil {
		return
	}
	fn(srv.draft)
}

func removeDocument(docs []entity.Document, documentID string) []entity.Document {
	kept := docs[:0]
	for _, doc := range docs {
		if doc.ID != documentID {
			kept = append(kept, doc)
		}
	}

	return kept
}
