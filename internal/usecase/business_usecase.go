// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"frontdesk/internal/domain/entity"
)

// BusinessUsecase drives the business directory: listing the caller's
// businesses and deleting one after interactive confirmation. Failures
// surface as notifications, never as returned errors.
type BusinessUsecase interface {
	// Load retrieves the caller's businesses with display indices. On
	// failure it notifies and returns an empty list.
	Load(ctx context.Context) []*entity.Business

	// Delete asks for confirmation naming the business and the attachment
	// cascade, deletes on consent, and returns the refreshed list. A
	// declined prompt or a failed delete leaves the server untouched and
	// returns nil; the caller keeps its current list.
	Delete(ctx context.Context, business *entity.Business) []*entity.Business
}
