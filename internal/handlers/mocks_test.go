package handlers_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/Abdurrokhman02/gh-library/models"
)

// --- Mock AuthService --- //

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req models.RegisterRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	args := m.Called(ctx, email, password)
	result, _ := args.Get(0).(*models.LoginResult)
	return result, args.Error(1)
}

// --- Mock CatalogService --- //

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListBooks(
	ctx context.Context,
	userID int64,
	filter models.BookFilter,
) ([]models.BookView, error) {
	args := m.Called(ctx, userID, filter)
	books, _ := args.Get(0).([]models.BookView)
	return books, args.Error(1)
}

func (m *MockCatalogService) ListSavedBooks(ctx context.Context, userID int64, search string) ([]models.BookView, error) {
	args := m.Called(ctx, userID, search)
	books, _ := args.Get(0).([]models.BookView)
	return books, args.Error(1)
}

// --- Mock SavedBookService --- //

type MockSavedBookService struct {
	mock.Mock
}

func (m *MockSavedBookService) Toggle(ctx context.Context, userID int64, book models.BookDescriptor) (bool, error) {
	args := m.Called(ctx, userID, book)
	return args.Bool(0), args.Error(1)
}

// --- Mock ProfileService --- //

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID int64) (*models.UserView, error) {
	args := m.Called(ctx, userID)
	profile, _ := args.Get(0).(*models.UserView)
	return profile, args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, userID int64, patch models.ProfilePatch) error {
	args := m.Called(ctx, userID, patch)
	return args.Error(0)
}

func (m *MockProfileService) UploadAvatar(
	ctx context.Context,
	userID int64,
	reader io.Reader,
	size int64,
	contentType string,
) (string, error) {
	args := m.Called(ctx, userID, reader, size, contentType)
	return args.String(0), args.Error(1)
}

// --- Mock InventoryService --- //

type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) Login(
	ctx context.Context,
	email, password string,
) (*models.InventoryLoginResponse, error) {
	args := m.Called(ctx, email, password)
	resp, _ := args.Get(0).(*models.InventoryLoginResponse)
	return resp, args.Error(1)
}

func (m *MockInventoryService) ListItems(ctx context.Context) ([]models.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]models.Item)
	return items, args.Error(1)
}

func (m *MockInventoryService) CreateItem(ctx context.Context, item *models.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryService) UpdateItem(ctx context.Context, id int64, item *models.Item) error {
	args := m.Called(ctx, id, item)
	return args.Error(0)
}

func (m *MockInventoryService) DeleteItem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
