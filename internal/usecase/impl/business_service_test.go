package impl

import (
	"context"
	"testing"

	"frontdesk/internal/domain/entity"
	domainerrors "frontdesk/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessService_Load_Success(t *testing.T) {
	repo := &fakeBusinessRepo{listResult: []*entity.Business{
		testBusiness("b-1", "Corner Bakery"),
		testBusiness("b-2", "Quick Cuts"),
	}}
	notifier := &fakeNotifier{}
	service := NewBusinessService(repo, notifier, &fakePrompter{}, testLogger())

	businesses := service.Load(context.Background())

	require.Len(t, businesses, 2)
	assert.Empty(t, notifier.failures)
}

func TestBusinessService_Load_FailureNotifies(t *testing.T) {
	repo := &fakeBusinessRepo{listErr: domainerrors.NewServerError(500, "database unavailable")}
	notifier := &fakeNotifier{}
	service := NewBusinessService(repo, notifier, &fakePrompter{}, testLogger())

	businesses := service.Load(context.Background())

	assert.Empty(t, businesses)
	require.Len(t, notifier.failures, 1)
	assert.Equal(t, "database unavailable", notifier.failures[0])
}

func TestBusinessService_Delete_Confirmed(t *testing.T) {
	repo := &fakeBusinessRepo{}
	notifier := &fakeNotifier{}
	prompter := &fakePrompter{answer: true}
	service := NewBusinessService(repo, notifier, prompter, testLogger())

	service.Delete(context.Background(), testBusiness("b-1", "Corner Bakery"))

	require.Len(t, prompter.prompts, 1)
	assert.Contains(t, prompter.prompts[0], "Corner Bakery")
	assert.Contains(t, prompter.prompts[0], "documents")
	assert.Equal(t, []string{"b-1"}, repo.deleteIDs)
	assert.Equal(t, 1, repo.listCalls, "delete reloads the directory")
	require.Len(t, notifier.successes, 1)
}

func TestBusinessService_Delete_DeclinedLeavesServerUntouched(t *testing.T) {
	repo := &fakeBusinessRepo{listResult: []*entity.Business{testBusiness("b-1", "Corner Bakery")}}
	prompter := &fakePrompter{answer: false}
	service := NewBusinessService(repo, &fakeNotifier{}, prompter, testLogger())

	businesses := service.Delete(context.Background(), testBusiness("b-1", "Corner Bakery"))

	assert.Empty(t, repo.deleteIDs)
	assert.Zero(t, repo.listCalls, "a declined delete must not refetch the directory")
	assert.Nil(t, businesses)
}

func TestBusinessService_Delete_FailureNotifies(t *testing.T) {
	repo := &fakeBusinessRepo{deleteErr: domainerrors.NewServerError(409, "business has active bookings")}
	notifier := &fakeNotifier{}
	service := NewBusinessService(repo, notifier, &fakePrompter{answer: true}, testLogger())

	businesses := service.Delete(context.Background(), testBusiness("b-1", "Corner Bakery"))

	require.Len(t, notifier.failures, 1)
	assert.Equal(t, "business has active bookings", notifier.failures[0])
	assert.Zero(t, repo.listCalls)
	assert.Nil(t, businesses)
}
