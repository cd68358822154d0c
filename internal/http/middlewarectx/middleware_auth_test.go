package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/storefront-backend/internal/models"
	"github.com/magabrotheeeer/storefront-backend/internal/services/auth"
)

// MockAuthService реализует интерфейс middlewarectx.Service
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestAuthMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	user := &models.User{UserID: "user_abc123def456", Email: "test@example.com"}

	tests := []struct {
		name           string
		setupRequest   func(r *http.Request)
		setupMock      func(*MockAuthService)
		expectedStatus int
		expectedBody   string
		expectNext     bool
	}{
		{
			name: "токен из cookie",
			setupRequest: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "session_token", Value: "cookie-token"})
			},
			setupMock: func(m *MockAuthService) {
				m.On("Authenticate", mock.Anything, "cookie-token").Return(user, nil)
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name: "токен из заголовка Authorization",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer header-token")
			},
			setupMock: func(m *MockAuthService) {
				m.On("Authenticate", mock.Anything, "header-token").Return(user, nil)
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name: "cookie имеет приоритет над заголовком",
			setupRequest: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "session_token", Value: "cookie-token"})
				r.Header.Set("Authorization", "Bearer header-token")
			},
			setupMock: func(m *MockAuthService) {
				m.On("Authenticate", mock.Anything, "cookie-token").Return(user, nil)
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:         "запрос без токена",
			setupRequest: func(_ *http.Request) {},
			setupMock: func(m *MockAuthService) {
				m.On("Authenticate", mock.Anything, "").Return(nil, auth.ErrUnauthenticated)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"not authenticated"`,
		},
		{
			name: "истекшая сессия",
			setupRequest: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "session_token", Value: "stale-token"})
			},
			setupMock: func(m *MockAuthService) {
				m.On("Authenticate", mock.Anything, "stale-token").Return(nil, auth.ErrSessionExpired)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"session expired"`,
		},
		{
			name: "пользователь удален",
			setupRequest: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "session_token", Value: "orphan-token"})
			},
			setupMock: func(m *MockAuthService) {
				m.On("Authenticate", mock.Anything, "orphan-token").Return(nil, auth.ErrUserNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"user not found"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			tt.setupMock(mockService)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				got, ok := UserFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, user, got)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/licenses", nil)
			tt.setupRequest(req)
			w := httptest.NewRecorder()

			AuthMiddleware(mockService, logger)(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}

			mockService.AssertExpectations(t)
		})
	}
}
