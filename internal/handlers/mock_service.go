package handlers

import (
	"context"

	"inventory_lending/internal/models"
	"inventory_lending/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser models.User
	registerErr  error
	loginUser    models.User
	loginToken   string
	loginErr     error
	parseID      int
	parseErr     error
	getUserResp  models.User
	getUserErr   error

	lastRegisterEmail string
	lastLoginEmail    string
	lastParseToken    string
	lastGetUserID     int
}

func (m *mockAuth) Register(ctx context.Context, username, email, password string) (models.User, error) {
	m.lastRegisterEmail = email
	return m.registerUser, m.registerErr
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (models.User, string, error) {
	m.lastLoginEmail = email
	return m.loginUser, m.loginToken, m.loginErr
}

func (m *mockAuth) ParseToken(accessToken string) (int, error) {
	m.lastParseToken = accessToken
	return m.parseID, m.parseErr
}

func (m *mockAuth) GetUser(ctx context.Context, id int) (models.User, error) {
	m.lastGetUserID = id
	return m.getUserResp, m.getUserErr
}

// mockResource is a function-table double for service.Resource[T]; nil
// entries return zero values.
type mockResource[T any] struct {
	createFn func(ctx context.Context, rec T) (T, error)
	listFn   func(ctx context.Context) ([]T, error)
	getFn    func(ctx context.Context, id string) (T, error)
	updateFn func(ctx context.Context, id string, rec T) (T, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockResource[T]) Create(ctx context.Context, rec T) (T, error) {
	if m.createFn == nil {
		var zero T
		return zero, nil
	}
	return m.createFn(ctx, rec)
}

func (m *mockResource[T]) List(ctx context.Context) ([]T, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx)
}

func (m *mockResource[T]) GetByID(ctx context.Context, id string) (T, error) {
	if m.getFn == nil {
		var zero T
		return zero, nil
	}
	return m.getFn(ctx, id)
}

func (m *mockResource[T]) Update(ctx context.Context, id string, rec T) (T, error) {
	if m.updateFn == nil {
		var zero T
		return zero, nil
	}
	return m.updateFn(ctx, id, rec)
}

func (m *mockResource[T]) Delete(ctx context.Context, id string) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
