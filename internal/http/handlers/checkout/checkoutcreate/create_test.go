package checkoutcreate

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/storefront-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/storefront-backend/internal/models"
	"github.com/magabrotheeeer/storefront-backend/internal/services/checkout"
)

// MockService реализует интерфейс checkoutcreate.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, user *models.User, productID, originURL, duration string) (*checkout.Result, error) {
	args := m.Called(ctx, user, productID, originURL, duration)
	if res := args.Get(0); res != nil {
		return res.(*checkout.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCheckoutCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	user := &models.User{UserID: "user_abc123def456", Email: "test@example.com"}

	tests := []struct {
		name           string
		body           string
		withUser       bool
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "успешное создание сессии",
			body:     `{"product_id":"rust-disconnect","origin_url":"https://shop.example.com","duration":"monthly"}`,
			withUser: true,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, user, "rust-disconnect", "https://shop.example.com", "monthly").
					Return(&checkout.Result{URL: "https://checkout.example.com/cs_test_123", SessionID: "cs_test_123"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"session_id":"cs_test_123"`,
		},
		{
			name:     "неизвестный товар",
			body:     `{"product_id":"no-such","origin_url":"https://shop.example.com","duration":"monthly"}`,
			withUser: true,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, user, "no-such", "https://shop.example.com", "monthly").
					Return(nil, checkout.ErrUnknownProduct)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid product"`,
		},
		{
			name:     "неподдерживаемая длительность",
			body:     `{"product_id":"rust-disconnect","origin_url":"https://shop.example.com","duration":"yearly"}`,
			withUser: true,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, user, "rust-disconnect", "https://shop.example.com", "yearly").
					Return(nil, checkout.ErrInvalidDuration)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid duration"`,
		},
		{
			name:           "отсутствует origin_url",
			body:           `{"product_id":"rust-disconnect","duration":"monthly"}`,
			withUser:       true,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field OriginURL is a required field`,
		},
		{
			name:     "провайдер недоступен",
			body:     `{"product_id":"rust-disconnect","origin_url":"https://shop.example.com","duration":"monthly"}`,
			withUser: true,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, user, "rust-disconnect", "https://shop.example.com", "monthly").
					Return(nil, checkout.ErrProvider)
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `"error":"payment provider unavailable"`,
		},
		{
			name:           "нет пользователя в контексте",
			body:           `{"product_id":"rust-disconnect","origin_url":"https://shop.example.com","duration":"monthly"}`,
			withUser:       false,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"not authenticated"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/checkout/create", strings.NewReader(tt.body))
			if tt.withUser {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.User, user))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
