package rest

import (
	"strings"
	"time"

	"frontdesk/internal/domain/entity"
)

// Wire shapes for the backend's snake_case JSON contract.

type identityDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

func (d identityDTO) toEntity() *entity.Identity {
	return &entity.Identity{
		ID:      d.ID,
		Name:    d.Name,
		Email:   d.Email,
		Picture: d.Picture,
	}
}

type documentDTO struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func (d documentDTO) toEntity() entity.Document {
	return entity.Document{
		ID:         d.ID,
		Filename:   d.Filename,
		Size:       d.Size,
		URL:        d.URL,
		UploadedAt: d.UploadedAt,
	}
}

type businessDTO struct {
	ID        string        `json:"id"`
	Name      string        `json:"business_name"`
	Type      string        `json:"business_type"`
	Phone     string        `json:"business_phone"`
	Services  []string      `json:"custom_services"`
	LogoURL   string        `json:"logo_url"`
	Documents []documentDTO `json:"documents"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (d businessDTO) toEntity() *entity.Business {
	docs := make([]entity.Document, 0, len(d.Documents))
	for _, doc := range d.Documents {
		docs = append(docs, doc.toEntity())
	}

	return &entity.Business{
		ID:        d.ID,
		Name:      d.Name,
		Type:      d.Type,
		Phone:     d.Phone,
		Services:  d.Services,
		LogoURL:   d.LogoURL,
		Documents: docs,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// businessPayload is the mutation body for creates and updates. The required
// tags are the client-side validation gate: a blank name/type/phone never
// reaches the network.
type businessPayload struct {
	Name     string   `json:"business_name" validate:"required"`
	Type     string   `json:"business_type" validate:"required"`
	Phone    string   `json:"business_phone" validate:"required"`
	Services []string `json:"custom_services"`
}

func draftPayload(draft *entity.Draft) businessPayload {
	services := draft.Services
	if services == nil {
		services = []string{}
	}

	return businessPayload{
		Name:     strings.TrimSpace(draft.Name),
		Type:     strings.TrimSpace(draft.Type),
		Phone:    strings.TrimSpace(draft.Phone),
		Services: services,
	}
}
