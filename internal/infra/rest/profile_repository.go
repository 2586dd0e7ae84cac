package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"frontdesk/internal/domain/entity"
	domainerrors "frontdesk/internal/domain/errors"
	"frontdesk/internal/domain/repository"

	"github.com/pkg/errors"
)

// profileRepository implements repository.ProfileRepository over the
// backend's singleton /api/profile endpoints.
type profileRepository struct {
	client *Client
	logger *slog.Logger
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(client *Client, logger *slog.Logger) repository.ProfileRepository {
	return &profileRepository{
		client: client,
		logger: logger,
	}
}

// Fetch loads the caller's profile. A 404 maps to
// repository.ErrProfileNotFound so callers can distinguish "not created
// yet" from a real failure.
func (r *profileRepository) Fetch(ctx context.Context) (*entity.Business, error) {
	var dto businessDTO
	if err := r.client.doJSON(ctx, http.MethodGet, "/api/profile", nil, &dto); err != nil {
		var serverErr *domainerrors.ServerError
		if errors.As(err, &serverErr) && serverErr.Status == http.StatusNotFound {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to fetch profile")
	}

	return dto.toEntity(), nil
}

// Create validates the draft locally, then creates the profile.
func (r *profileRepository) Create(ctx context.Context, draft *entity.Draft) (*entity.Business, error) {
	payload := draftPayload(draft)
	if err := r.client.validate.Struct(payload); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidation, err.Error())
	}

	var dto businessDTO
	if err := r.client.doJSON(ctx, http.MethodPost, "/api/profile", payload, &dto); err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}
	r.logger.Info("profile created")

	return dto.toEntity(), nil
}

// Update validates the draft locally, then replaces the profile.
func (r *profileRepository) Update(ctx context.Context, draft *entity.Draft) (*entity.Business, error) {
	payload := draftPayload(draft)
	if err := r.client.validate.Struct(payload); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidation, err.Error())
	}

	var dto businessDTO
	if err := r.client.doJSON(ctx, http.MethodPut, "/api/profile", payload, &dto); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return dto.toEntity(), nil
}

// UploadDocument checks the attachment preconditions locally, then uploads
// the document to the profile.
func (r *profileRepository) UploadDocument(ctx context.Context, file entity.FileUpload) (*entity.Document, error) {
	if file.Size > entity.MaxDocumentBytes {
		return nil, errors.Wrap(domainerrors.ErrPrecondition, "file size must be less than 5MB")
	}
	if !entity.DocumentFileAllowed(file.Filename) {
		return nil, errors.Wrap(domainerrors.ErrPrecondition, "documents must be PDF, DOC, or DOCX")
	}

	var dto documentDTO
	if err := r.client.uploadFile(ctx, "/api/profile/upload-document", file, &dto); err != nil {
		return nil, errors.Wrap(err, "failed to upload profile document")
	}

	doc := dto.toEntity()

	return &doc, nil
}

// DeleteDocument removes one profile attachment; a 404 maps to
// repository.ErrDocumentNotFound.
func (r *profileRepository) DeleteDocument(ctx context.Context, documentID string) error {
	path := "/api/profile/document/" + url.PathEscape(documentID)
	if err := r.client.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		var serverErr *domainerrors.ServerError
		if errors.As(err, &serverErr) && serverErr.Status == http.StatusNotFound {
			return errors.Wrap(repository.ErrDocumentNotFound, documentID)
		}

		return errors.Wrapf(err, "failed to delete document %s", documentID)
	}

	return nil
}

// BusinessTypes retrieves the selectable business type catalogue.
func (r *profileRepository) BusinessTypes(ctx context.Context) ([]string, error) {
	var envelope struct {
		BusinessTypes []string `json:"business_types"`
	}

	if err := r.client.doJSON(ctx, http.MethodGet, "/api/profile/business-types", nil, &envelope); err != nil {
		return nil, errors.Wrap(err, "failed to fetch business types")
	}

	return envelope.BusinessTypes, nil
}
