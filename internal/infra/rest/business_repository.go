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

// businessRepository implements repository.BusinessRepository over the
// backend's /api/business endpoints.
type businessRepository struct {
	client *Client
	logger *slog.Logger
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(client *Client, logger *slog.Logger) repository.BusinessRepository {
	return &businessRepository{
		client: client,
		logger: logger,
	}
}

// List retrieves the caller's businesses and assigns display indices in
// server order.
func (r *businessRepository) List(ctx context.Context) ([]*entity.Business, error) {
	var envelope struct {
		Businesses []businessDTO `json:"businesses"`
	}

	if err := r.client.doJSON(ctx, http.MethodGet, "/api/businesses", nil, &envelope); err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	businesses := make([]*entity.Business, 0, len(envelope.Businesses))
	for i, dto := range envelope.Businesses {
		business := dto.toEntity()
		business.DisplayIndex = i
		businesses = append(businesses, business)
	}

	return businesses, nil
}

// Create validates the draft locally, then persists a new business.
func (r *businessRepository) Create(ctx context.Context, draft *entity.Draft) (*entity.Business, error) {
	payload := draftPayload(draft)
	if err := r.client.validate.Struct(payload); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidation, err.Error())
	}

	var dto businessDTO
	if err := r.client.doJSON(ctx, http.MethodPost, "/api/business", payload, &dto); err != nil {
		return nil, errors.Wrap(err, "failed to create business")
	}
	r.logger.Info("business created", slog.String("business_id", dto.ID))

	return dto.toEntity(), nil
}

// Update validates the draft locally, then replaces the record.
func (r *businessRepository) Update(ctx context.Context, id string, draft *entity.Draft) (*entity.Business, error) {
	payload := draftPayload(draft)
	if err := r.client.validate.Struct(payload); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidation, err.Error())
	}

	var dto businessDTO
	if err := r.client.doJSON(ctx, http.MethodPut, "/api/business/"+url.PathEscape(id), payload, &dto); err != nil {
		return nil, errors.Wrapf(err, "failed to update business %s", id)
	}

	return dto.toEntity(), nil
}

// Delete removes a business; the server cascades to its attachments.
func (r *businessRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.doJSON(ctx, http.MethodDelete, "/api/business/"+url.PathEscape(id), nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete business %s", id)
	}
	r.logger.Info("business deleted", slog.String("business_id", id))

	return nil
}

// UploadLogo checks the attachment preconditions locally, then uploads the
// image and returns the new logo reference.
func (r *businessRepository) UploadLogo(ctx context.Context, id string, file entity.FileUpload) (string, error) {
	if id == "" {
		return "", errors.Wrap(domainerrors.ErrPrecondition, "save the business before uploading a logo")
	}
	if file.Size > entity.MaxLogoBytes {
		return "", errors.Wrap(domainerrors.ErrPrecondition, "logo size must be less than 2MB")
	}
	if !entity.LogoFileAllowed(file.Filename) {
		return "", errors.Wrap(domainerrors.ErrPrecondition, "logo must be a PNG or JPG image")
	}

	var out struct {
		LogoURL string `json:"logo_url"`
	}
	path := "/api/business/" + url.PathEscape(id) + "/upload-logo"
	if err := r.client.uploadFile(ctx, path, file, &out); err != nil {
		return "", errors.Wrapf(err, "failed to upload logo for business %s", id)
	}

	return out.LogoURL, nil
}

// UploadDocument checks the attachment preconditions locally, then uploads
// the document and returns its metadata.
func (r *businessRepository) UploadDocument(ctx context.Context, id string, file entity.FileUpload) (*entity.Document, error) {
	if id == "" {
		return nil, errors.Wrap(domainerrors.ErrPrecondition, "save the business before uploading documents")
	}
	if file.Size > entity.MaxDocumentBytes {
		return nil, errors.Wrap(domainerrors.ErrPrecondition, "file size must be less than 5MB")
	}
	if !entity.DocumentFileAllowed(file.Filename) {
		return nil, errors.Wrap(domainerrors.ErrPrecondition, "documents must be PDF, DOC, or DOCX")
	}

	var dto documentDTO
	path := "/api/business/" + url.PathEscape(id) + "/upload-document"
	if err := r.client.uploadFile(ctx, path, file, &dto); err != nil {
		return nil, errors.Wrapf(err, "failed to upload document for business %s", id)
	}

	doc := dto.toEntity()

	return &doc, nil
}

// DeleteDocument removes one attachment. A 404 maps to
// repository.ErrDocumentNotFound so a repeated delete reports not-found
// instead of failing the caller.
func (r *businessRepository) DeleteDocument(ctx context.Context, id, documentID string) error {
	path := "/api/business/" + url.PathEscape(id) + "/document/" + url.PathEscape(documentID)
	if err := r.client.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		var serverErr *domainerrors.ServerError
		if errors.As(err, &serverErr) && serverErr.Status == http.StatusNotFound {
			return errors.Wrap(repository.ErrDocumentNotFound, documentID)
		}

		return errors.Wrapf(err, "failed to delete document %s", documentID)
	}

	return nil
}
