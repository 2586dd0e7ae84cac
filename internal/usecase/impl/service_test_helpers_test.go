package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"frontdesk/internal/domain/entity"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testIdentity() *entity.Identity {
	return &entity.Identity{
		ID:    "u-1",
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
	}
}

func testBusiness(id, name string) *entity.Business {
	return &entity.Business{
		ID:        id,
		Name:      name,
		Type:      "restaurant",
		Phone:     "+1-555-0101",
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// fakeAuthGateway is a hand-written service.AuthGateway test double.
type fakeAuthGateway struct {
	exchangeIdentity *entity.Identity
	exchangeErr      error
	exchangeCalls    int
	exchangeTokens   []string

	fetchIdentity *entity.Identity
	fetchErr      error
	fetchCalls    int

	logoutErr   error
	logoutCalls int

	signInURL string
}

func (f *fakeAuthGateway) ExchangeSession(_ context.Context, token string) (*entity.Identity, error) {
	f.exchangeCalls++
	f.exchangeTokens = append(f.exchangeTokens, token)

	return f.exchangeIdentity, f.exchangeErr
}

func (f *fakeAuthGateway) FetchIdentity(context.Context) (*entity.Identity, error) {
	f.fetchCalls++

	return f.fetchIdentity, f.fetchErr
}

func (f *fakeAuthGateway) Logout(context.Context) error {
	f.logoutCalls++

	return f.logoutErr
}

func (f *fakeAuthGateway) SignInURL() string {
	return f.signInURL
}

// fakeNavigator records navigation calls.
type fakeNavigator struct {
	replaced  []entity.Location
	navigated []string
}

func (f *fakeNavigator) Replace(loc entity.Location) {
	f.replaced = append(f.replaced, loc)
}

func (f *fakeNavigator) Navigate(path string) {
	f.navigated = append(f.navigated, path)
}

// fakeNotifier records notifications.
type fakeNotifier struct {
	successes []string
	failures  []string
}

func (f *fakeNotifier) Success(message string) {
	f.successes = append(f.successes, message)
}

func (f *fakeNotifier) Error(message string) {
	f.failures = append(f.failures, message)
}

// fakePrompter answers every confirmation with a canned response.
type fakePrompter struct {
	answer  bool
	prompts []string
}

func (f *fakePrompter) Confirm(message string) bool {
	f.prompts = append(f.prompts, message)

	return f.answer
}

// fakeBusinessRepo is a hand-written repository.BusinessRepository double.
// When block is set, Create/UploadLogo/UploadDocument park on it after
// recording the call, so tests can observe in-flight state.
type fakeBusinessRepo struct {
	block chan struct{}

	listResult []*entity.Business
	listErr    error
	listCalls  int

	createResult *entity.Business
	createErr    error
	createDrafts []*entity.Draft

	updateResult *entity.Business
	updateErr    error
	updateIDs    []string

	deleteErr error
	deleteIDs []string

	logoURL     string
	logoErr     error
	logoCalls   int
	docResult   *entity.Document
	docErr      error
	docCalls    int
	docDelErr   error
	docDelCalls int
}

func (f *fakeBusinessRepo) List(context.Context) ([]*entity.Business, error) {
	f.listCalls++

	return f.listResult, f.listErr
}

func (f *fakeBusinessRepo) Create(_ context.Context, draft *entity.Draft) (*entity.Business, error) {
	f.createDrafts = append(f.createDrafts, draft)
	f.wait()

	return f.createResult, f.createErr
}

func (f *fakeBusinessRepo) Update(_ context.Context, id string, _ *entity.Draft) (*entity.Business, error) {
	f.updateIDs = append(f.updateIDs, id)

	return f.updateResult, f.updateErr
}

func (f *fakeBusinessRepo) Delete(_ context.Context, id string) error {
	f.deleteIDs = append(f.deleteIDs, id)

	return f.deleteErr
}

func (f *fakeBusinessRepo) UploadLogo(_ context.Context, _ string, _ entity.FileUpload) (string, error) {
	f.logoCalls++
	f.wait()

	return f.logoURL, f.logoErr
}

func (f *fakeBusinessRepo) UploadDocument(_ context.Context, _ string, _ entity.FileUpload) (*entity.Document, error) {
	f.docCalls++
	f.wait()

	return f.docResult, f.docErr
}

func (f *fakeBusinessRepo) DeleteDocument(_ context.Context, _, _ string) error {
	f.docDelCalls++

	return f.docDelErr
}

func (f *fakeBusinessRepo) wait() {
	if f.block != nil {
		<-f.block
	}
}

// fakeProfileRepo is a hand-written repository.ProfileRepository double.
type fakeProfileRepo struct {
	fetchResult *entity.Business
	fetchErr    error
	fetchCalls  int

	createResult *entity.Business
	createErr    error
	createCalls  int

	updateResult *entity.Business
	updateErr    error
	updateCalls  int

	docResult   *entity.Document
	docErr      error
	docCalls    int
	docDelErr   error
	docDelCalls int

	types    []string
	typesErr error
}

func (f *fakeProfileRepo) Fetch(context.Context) (*entity.Business, error) {
	f.fetchCalls++

	return f.fetchResult, f.fetchErr
}

func (f *fakeProfileRepo) Create(_ context.Context, _ *entity.Draft) (*entity.Business, error) {
	f.createCalls++

	return f.createResult, f.createErr
}

func (f *fakeProfileRepo) Update(_ context.Context, _ *entity.Draft) (*entity.Business, error) {
	f.updateCalls++

	return f.updateResult, f.updateErr
}

func (f *fakeProfileRepo) UploadDocument(_ context.Context, _ entity.FileUpload) (*entity.Document, error) {
	f.docCalls++

	return f.docResult, f.docErr
}

func (f *fakeProfileRepo) DeleteDocument(_ context.Context, _ string) error {
	f.docDelCalls++

	return f.docDelErr
}

func (f *fakeProfileRepo) BusinessTypes(context.Context) ([]string, error) {
	return f.types, f.typesErr
}
