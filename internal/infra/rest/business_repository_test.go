package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"frontdesk/internal/domain/entity"
	domainerrors "frontdesk/internal/domain/errors"
	"frontdesk/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() *entity.Draft {
	return &entity.Draft{
		Kind:  entity.KindBusiness,
		Name:  "Corner Bakery",
		Type:  "restaurant",
		Phone: "+1-555-0101",
	}
}

func TestBusinessRepositoryList(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/businesses", r.URL.Path)
		w.Write([]byte(`{"businesses": [
			{"id": "b-1", "business_name": "Corner Bakery", "business_type": "restaurant", "business_phone": "+1-555-0101"},
			{"id": "b-2", "business_name": "Quick Cuts", "business_type": "salon", "business_phone": "+1-555-0102"}
		]}`))
	}))
	repo := NewBusinessRepository(client, discardLogger())

	businesses, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, businesses, 2)
	assert.Equal(t, "Corner Bakery", businesses[0].Name)
	assert.Equal(t, 0, businesses[0].DisplayIndex)
	assert.Equal(t, 1, businesses[1].DisplayIndex)
}

func TestBusinessRepositoryCreate(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/business", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Corner Bakery", payload["business_name"])
		assert.Equal(t, []any{}, payload["custom_services"])

		w.Write([]byte(`{"id": "b-9", "business_name": "Corner Bakery", "business_type": "restaurant", "business_phone": "+1-555-0101"}`))
	}))
	repo := NewBusinessRepository(client, discardLogger())

	created, err := repo.Create(context.Background(), validDraft())
	require.NoError(t, err)
	assert.Equal(t, "b-9", created.ID)
}

func TestBusinessRepositoryCreateValidationSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{}`))
	}))
	repo := NewBusinessRepository(client, discardLogger())

	draft := validDraft()
	draft.Name = "   "

	_, err := repo.Create(context.Background(), draft)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidation))
	assert.Equal(t, int32(0), calls.Load())
}

func TestBusinessRepositoryUpdate(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/business/b-3", r.URL.Path)
		w.Write([]byte(`{"id": "b-3", "business_name": "Corner Bakery", "business_type": "restaurant", "business_phone": "+1-555-0101"}`))
	}))
	repo := NewBusinessRepository(client, discardLogger())

	updated, err := repo.Update(context.Background(), "b-3", validDraft())
	require.NoError(t, err)
	assert.Equal(t, "b-3", updated.ID)
}

func TestBusinessRepositoryDelete(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/business/b-3", r.URL.Path)
		w.Write([]byte(`{}`))
	}))
	repo := NewBusinessRepository(client, discardLogger())

	require.NoError(t, repo.Delete(context.Background(), "b-3"))
}

func TestBusinessRepositoryUploadLogo(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/business/b-3/upload-logo", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "logo.png", header.Filename)

		w.Write([]byte(`{"logo_url": "/uploads/logos/b-3.png"}`))
	}))
	repo := NewBusinessRepository(client, discardLogger())

	logoURL, err := repo.UploadLogo(context.Background(), "b-3", entity.FileUpload{
		Filename: "logo.png",
		Size:     1024,
		Content:  strings.NewReader("png-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/logos/b-3.png", logoURL)
}

func TestBusinessRepositoryUploadPreconditions(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{}`))
	}))
	repo := NewBusinessRepository(client, discardLogger())
	ctx := context.Background()

	tests := []struct {
		name string
		run  func() error
	}{
		{
			name: "logo on unsaved business",
			run: func() error {
				_, err := repo.UploadLogo(ctx, "", entity.FileUpload{Filename: "logo.png", Size: 10, Content: strings.NewReader("x")})

				return err
			},
		},
		{
			name: "logo over size limit",
			run: func() error {
				_, err := repo.UploadLogo(ctx, "b-1", entity.FileUpload{Filename: "logo.png", Size: entity.MaxLogoBytes + 1, Content: strings.NewReader("x")})

				return err
			},
		},
		{
			name: "logo with disallowed type",
			run: func() error {
				_, err := repo.UploadLogo(ctx, "b-1", entity.FileUpload{Filename: "logo.gif", Size: 10, Content: strings.NewReader("x")})

				return err
			},
		},
		{
			name: "document over size limit",
			run: func() error {
				_, err := repo.UploadDocument(ctx, "b-1", entity.FileUpload{Filename: "menu.pdf", Size: entity.MaxDocumentBytes + 1, Content: strings.NewReader("x")})

				return err
			},
		},
		{
			name: "document with disallowed type",
			run: func() error {
				_, err := repo.UploadDocument(ctx, "b-1", entity.FileUpload{Filename: "menu.txt", Size: 10, Content: strings.NewReader("x")})

				return err
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrPrecondition))
		})
	}

	assert.Equal(t, int32(0), calls.Load(), "precondition failures must not reach the network")
}

func TestBusinessRepositoryUploadDocument(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/business/b-3/upload-document", r.URL.Path)
		w.Write([]byte(`{"id": "d-1", "filename": "menu.pdf", "size": 2048, "url": "/uploads/docs/d-1.pdf"}`))
	}))
	repo := NewBusinessRepository(client, discardLogger())

	doc, err := repo.UploadDocument(context.Background(), "b-3", entity.FileUpload{
		Filename: "menu.pdf",
		Size:     2048,
		Content:  strings.NewReader("pdf-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "d-1", doc.ID)
	assert.Equal(t, "menu.pdf", doc.Filename)
}

func TestBusinessRepositoryCreateThenListRoundTrip(t *testing.T) {
	var stored []businessDTO
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/business":
			var payload businessPayload
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			dto := businessDTO{
				ID:       "b-1",
				Name:     payload.Name,
				Type:     payload.Type,
				Phone:    payload.Phone,
				Services: payload.Services,
			}
			stored = append(stored, dto)
			require.NoError(t, json.NewEncoder(w).Encode(dto))
		case r.Method == http.MethodGet && r.URL.Path == "/api/businesses":
			require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"businesses": stored}))
		}
	}))
	repo := NewBusinessRepository(client, discardLogger())
	ctx := context.Background()

	draft := validDraft()
	draft.Services = []string{"catering", "delivery"}

	created, err := repo.Create(ctx, draft)
	require.NoError(t, err)

	businesses, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, businesses, 1)
	assert.Equal(t, created.ID, businesses[0].ID)
	assert.Equal(t, draft.Name, businesses[0].Name)
	assert.Equal(t, draft.Type, businesses[0].Type)
	assert.Equal(t, draft.Phone, businesses[0].Phone)
	assert.Equal(t, draft.Services, businesses[0].Services)
}

func TestBusinessRepositoryDeleteDocumentNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "document not found"}`))
	}))
	repo := NewBusinessRepository(client, discardLogger())

	err := repo.DeleteDocument(context.Background(), "b-3", "d-9")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrDocumentNotFound))
}
