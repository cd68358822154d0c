package checkout

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/magabrotheeeer/storefront-backend/internal/catalog"
	"github.com/magabrotheeeer/storefront-backend/internal/models"
	"github.com/magabrotheeeer/storefront-backend/internal/paymentprovider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateTransaction(ctx context.Context, txn models.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) CreateSession(ctx context.Context, p paymentprovider.SessionParams) (*paymentprovider.SessionInfo, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentprovider.SessionInfo), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestPriceCents(t *testing.T) {
	tests := []struct {
		name      string
		basePrice float64
		duration  string
		want      int64
		wantErr   bool
	}{
		{name: "monthly keeps base price", basePrice: 29.99, duration: "monthly", want: 2999},
		{name: "weekly is half rounded up", basePrice: 29.99, duration: "weekly", want: 1500},
		{name: "daily is quarter rounded up", basePrice: 29.99, duration: "daily", want: 750},
		{name: "even base price divides cleanly", basePrice: 20.00, duration: "weekly", want: 1000},
		{name: "daily half cent rounds up", basePrice: 0.10, duration: "daily", want: 3},
		{name: "unknown duration", basePrice: 29.99, duration: "yearly", wantErr: true},
		{name: "empty duration", basePrice: 29.99, duration: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PriceCents(tt.basePrice, tt.duration)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDuration)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Create(t *testing.T) {
	user := &models.User{UserID: "user_abc123def456", Email: "test@example.com"}

	tests := []struct {
		name         string
		productID    string
		originURL    string
		duration     string
		setupMocks   func(p *MockProvider, r *MockRepository)
		wantSentinel error
		errContains  string
	}{
		{
			name:      "successful checkout",
			productID: "rust-disconnect",
			originURL: "https://shop.example.com/",
			duration:  "weekly",
			setupMocks: func(p *MockProvider, r *MockRepository) {
				p.On("CreateSession", mock.Anything, mock.MatchedBy(func(sp paymentprovider.SessionParams) bool {
					return sp.AmountCents == 1500 &&
						sp.Currency == "usd" &&
						sp.SuccessURL == "https://shop.example.com/checkout/success?session_id={CHECKOUT_SESSION_ID}" &&
						sp.CancelURL == "https://shop.example.com/products/rust-disconnect" &&
						sp.Metadata["product_id"] == "rust-disconnect" &&
						sp.Metadata["user_id"] == "user_abc123def456" &&
						sp.Metadata["duration"] == "weekly"
				})).Return(&paymentprovider.SessionInfo{SessionID: "cs_test_123", URL: "https://checkout.example.com/cs_test_123"}, nil).Once()
				r.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(txn models.Transaction) bool {
					return txn.SessionID == "cs_test_123" &&
						txn.PaymentStatus == models.PaymentStatusPending &&
						txn.Status == "initiated" &&
						txn.Amount == 15.00 &&
						txn.UserID == "user_abc123def456"
				})).Return(nil).Once()
			},
		},
		{
			name:         "unknown product",
			productID:    "no-such-product",
			originURL:    "https://shop.example.com",
			duration:     "monthly",
			setupMocks:   func(_ *MockProvider, _ *MockRepository) {},
			wantSentinel: ErrUnknownProduct,
		},
		{
			name:         "invalid duration",
			productID:    "rust-disconnect",
			originURL:    "https://shop.example.com",
			duration:     "yearly",
			setupMocks:   func(_ *MockProvider, _ *MockRepository) {},
			wantSentinel: ErrInvalidDuration,
		},
		{
			name:      "provider failure",
			productID: "rust-disconnect",
			originURL: "https://shop.example.com",
			duration:  "monthly",
			setupMocks: func(p *MockProvider, _ *MockRepository) {
				p.On("CreateSession", mock.Anything, mock.Anything).Return(nil, errors.New("stripe down")).Once()
			},
			wantSentinel: ErrProvider,
		},
		{
			name:      "repository failure",
			productID: "rust-disconnect",
			originURL: "https://shop.example.com",
			duration:  "monthly",
			setupMocks: func(p *MockProvider, r *MockRepository) {
				p.On("CreateSession", mock.Anything, mock.Anything).Return(&paymentprovider.SessionInfo{SessionID: "cs_test_456", URL: "https://checkout.example.com/cs_test_456"}, nil).Once()
				r.On("CreateTransaction", mock.Anything, mock.Anything).Return(errors.New("db error")).Once()
			},
			errContains: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(MockProvider)
			repo := new(MockRepository)
			svc := New(catalog.Default(), provider, repo, newNoopLogger())

			tt.setupMocks(provider, repo)

			result, err := svc.Create(context.Background(), user, tt.productID, tt.originURL, tt.duration)
			if tt.wantSentinel != nil || tt.errContains != "" {
				require.Error(t, err)
				if tt.wantSentinel != nil {
					assert.ErrorIs(t, err, tt.wantSentinel)
				}
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "cs_test_123", result.SessionID)
				assert.Equal(t, "https://checkout.example.com/cs_test_123", result.URL)
			}

			provider.AssertExpectations(t)
			repo.AssertExpectations(t)
		})
	}
}
