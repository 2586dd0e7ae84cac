// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// Attachment size limits enforced client-side before any network call.
const (
	// MaxLogoBytes is the maximum source image size for a business logo.
	MaxLogoBytes int64 = 2 << 20
	// MaxDocumentBytes is the maximum size for a business document.
	MaxDocumentBytes int64 = 5 << 20
)

// Document is a single file attachment owned by a Business or Profile.
type Document struct {
	ID         string    // Server-assigned attachment ID.
	Filename   string    // Original filename as uploaded.
	Size       int64     // Byte size reported by the server.
	URL        string    // Server path the file is served from.
	UploadedAt time.Time // Timestamp of the upload.
}

// Business is a managed business profile record owned by exactly one
// Identity. The owning identity is implied by the session and never carried
// on the record client-side.
type Business struct {
	ID           string     // Server-assigned ID; immutable once set.
	Name         string     // Required display name.
	Type         string     // Required; one of the server-provided type set.
	Phone        string     // Required; freeform phone string.
	Services     []string   // User-defined service tags, insertion order significant.
	LogoURL      string     // Optional logo reference returned by upload.
	Documents    []Document // Attached documents.
	DisplayIndex int        // Position assigned on list for presentation only; not persisted.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DraftKind tags a draft as a collection-owned business or the legacy
// singleton profile. The two share field shape, validation, and attachment
// rules; only the save/probe semantics differ.
type DraftKind int

const (
	// KindBusiness is a record in the per-identity business collection.
	KindBusiness DraftKind = iota
	// KindProfile is the legacy singleton profile surface.
	KindProfile
)

// Draft is the in-memory, unsaved mutation buffer for a Business or Profile.
// It is discarded on cancel and replaced by the server's canonical record on
// save.
type Draft struct {
	Kind      DraftKind
	ID        string // Empty until the server assigns one; profiles never carry an ID.
	Name      string
	Type      string
	Phone     string
	Services  []string
	LogoURL   string
	Documents []Document
}

// NewBusinessDraft returns an empty draft for creating a new business.
func NewBusinessDraft() *Draft {
	return &Draft{Kind: KindBusiness}
}

// DraftOf initializes a draft from an existing business record.
func DraftOf(b *Business) *Draft {
	return &Draft{
		Kind:      KindBusiness,
		ID:        b.ID,
		Name:      b.Name,
		Type:      b.Type,
		Phone:     b.Phone,
		Services:  append([]string(nil), b.Services...),
		LogoURL:   b.LogoURL,
		Documents: append([]Document(nil), b.Documents...),
	}
}

// Saved reports whether the draft is backed by a server-assigned record.
// Attachment mutations are only allowed once this is true.
func (d *Draft) Saved() bool {
	return d.Kind == KindProfile || d.ID != ""
}

// AddService appends a trimmed service tag. Empty or whitespace-only input
// is rejected and the draft is left unchanged. Duplicates are allowed.
func (d *Draft) AddService(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	d.Services = append(d.Services, trimmed)

	return true
}

// RemoveService removes the tag at the given position, preserving the
// relative order of the remaining tags. Out-of-range positions are ignored.
func (d *Draft) RemoveService(index int) {
	if index < 0 || index >= len(d.Services) {
		return
	}
	d.Services = append(d.Services[:index], d.Services[index+1:]...)
}
