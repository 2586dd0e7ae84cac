// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	"frontdesk/internal/domain/entity"
	domainerrors "frontdesk/internal/domain/errors"
	"frontdesk/internal/domain/repository"
	"frontdesk/internal/domain/service"
	"frontdesk/internal/usecase"
)

// businessService implements the BusinessUsecase interface.
type businessService struct {
	businessRepo repository.BusinessRepository
	notifier     service.Notifier
	prompter     service.Prompter
	logger       *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(
	businessRepo repository.BusinessRepository,
	notifier service.Notifier,
	prompter service.Prompter,
	logger *slog.Logger,
) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: businessRepo,
		notifier:     notifier,
		prompter:     prompter,
		logger:       logger,
	}
}

// Load retrieves the caller's businesses. A failure is reported as a
// notification and yields an empty directory rather than an error.
func (srv *businessService) Load(ctx context.Context) []*entity.Business {
	businesses, err := srv.businessRepo.List(ctx)
	if err != nil {
		srv.logger.Warn("failed to load businesses", slog.Any("error", err))
		srv.notifier.Error(domainerrors.UserMessage(err, "failed to load businesses"))

		return nil
	}

	return businesses
}

// Delete removes a business after interactive confirmation. The prompt names
// the business and warns about the attachment cascade; declining leaves the
// server untouched. The directory is refetched only after an actual delete,
// so a declined or failed attempt returns nil and the caller keeps its
// current list.
func (srv *businessService) Delete(ctx context.Context, business *entity.Business) []*entity.Business {
	prompt := fmt.Sprintf(
		"Delete %q? This also removes its logo and all uploaded documents.",
		business.Name,
	)
	if !srv.prompter.Confirm(prompt) {
		return nil
	}

	if err := srv.businessRepo.Delete(ctx, business.ID); err != nil {
		srv.logger.Warn("failed to delete business",
			slog.String("business_id", business.ID),
			slog.Any("error", err))
		srv.notifier.Error(domainerrors.UserMessage(err, "failed to delete business"))

		return nil
	}

	srv.notifier.Success(fmt.Sprintf("%s deleted", business.Name))

	return srv.Load(ctx)
}
