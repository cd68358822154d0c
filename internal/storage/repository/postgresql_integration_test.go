package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/storefront-backend/internal/migrations"
	"github.com/magabrotheeeer/storefront-backend/internal/models"
)

// setupTestDatabase поднимает контейнер PostgreSQL и применяет миграции.
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(3*time.Minute)),
	)
	require.NoError(t, err, "failed to start container")

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	storage, err := New(connStr)
	require.NoError(t, err, "failed to create storage")

	require.NoError(t, migrations.Run(storage.DB, "../../../migrations"), "failed to run migrations")

	cleanup := func() {
		_ = storage.DB.Close()
		_ = container.Terminate(ctx)
	}
	return storage, cleanup
}

func createTestUser(t *testing.T, storage *Storage, userID, email string) {
	t.Helper()
	err := storage.CreateUser(context.Background(), models.User{
		UserID:       userID,
		Email:        email,
		Name:         "Test User",
		PasswordHash: "hashed",
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	})
	require.NoError(t, err)
}

func createTestTransaction(t *testing.T, storage *Storage, txnID, sessionID, userID string) {
	t.Helper()
	err := storage.CreateTransaction(context.Background(), models.Transaction{
		TransactionID: txnID,
		SessionID:     sessionID,
		ProductID:     "rust-disconnect",
		ProductName:   "Disconnect",
		Game:          "Rust",
		UserID:        userID,
		Amount:        29.99,
		Currency:      "usd",
		Duration:      "monthly",
		PaymentStatus: models.PaymentStatusPending,
		Status:        "initiated",
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	})
	require.NoError(t, err)
}

func TestStorage_Users(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	createTestUser(t, storage, "user_aaa111bbb222", "test@example.com")

	t.Run("поиск по email", func(t *testing.T) {
		user, found, err := storage.FindUserByEmail(ctx, "test@example.com")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "user_aaa111bbb222", user.UserID)
	})

	t.Run("поиск по id", func(t *testing.T) {
		user, found, err := storage.FindUser(ctx, "user_aaa111bbb222")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "test@example.com", user.Email)
	})

	t.Run("неизвестный email не является ошибкой", func(t *testing.T) {
		user, found, err := storage.FindUserByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, user)
	})

	t.Run("обновление профиля", func(t *testing.T) {
		err := storage.UpdateUserProfile(ctx, "test@example.com", "Renamed", "https://example.com/pic.png")
		require.NoError(t, err)

		user, found, err := storage.FindUserByEmail(ctx, "test@example.com")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "Renamed", user.Name)
		assert.Equal(t, "https://example.com/pic.png", user.Picture)
	})
}

func TestStorage_Sessions(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	createTestUser(t, storage, "user_aaa111bbb222", "test@example.com")

	now := time.Now().UTC().Truncate(time.Second)
	err := storage.CreateSession(ctx, models.Session{
		SessionToken: "session-token-1",
		UserID:       "user_aaa111bbb222",
		ExpiresAt:    now.Add(7 * 24 * time.Hour),
		CreatedAt:    now,
	})
	require.NoError(t, err)

	t.Run("поиск существующей сессии", func(t *testing.T) {
		sess, found, err := storage.FindSession(ctx, "session-token-1")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "user_aaa111bbb222", sess.UserID)
	})

	t.Run("удаленная сессия не находится", func(t *testing.T) {
		require.NoError(t, storage.DeleteSession(ctx, "session-token-1"))

		sess, found, err := storage.FindSession(ctx, "session-token-1")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, sess)
	})
}

func TestStorage_UpdateTransactionStatusIfNotPaid(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	createTestUser(t, storage, "user_aaa111bbb222", "test@example.com")
	createTestTransaction(t, storage, "txn_aaa111bbb222", "cs_test_123", "user_aaa111bbb222")

	t.Run("первый переход в paid обновляет строку", func(t *testing.T) {
		txn, updated, err := storage.UpdateTransactionStatusIfNotPaid(ctx, "cs_test_123", models.PaymentStatusPaid, "complete")
		require.NoError(t, err)
		require.True(t, updated)
		assert.Equal(t, "txn_aaa111bbb222", txn.TransactionID)
		assert.Equal(t, models.PaymentStatusPaid, txn.PaymentStatus)
	})

	t.Run("повторный переход в paid не обновляет", func(t *testing.T) {
		txn, updated, err := storage.UpdateTransactionStatusIfNotPaid(ctx, "cs_test_123", models.PaymentStatusPaid, "complete")
		require.NoError(t, err)
		assert.False(t, updated)
		assert.Nil(t, txn)
	})

	t.Run("неизвестная сессия не обновляет", func(t *testing.T) {
		txn, updated, err := storage.UpdateTransactionStatusIfNotPaid(ctx, "cs_unknown", models.PaymentStatusPaid, "complete")
		require.NoError(t, err)
		assert.False(t, updated)
		assert.Nil(t, txn)
	})
}

func TestStorage_TransactionsAndLicenses(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	createTestUser(t, storage, "user_aaa111bbb222", "owner@example.com")
	createTestUser(t, storage, "user_ccc333ddd444", "other@example.com")
	createTestTransaction(t, storage, "txn_aaa111bbb222", "cs_test_123", "user_aaa111bbb222")
	createTestTransaction(t, storage, "txn_ccc333ddd444", "cs_test_456", "user_ccc333ddd444")

	now := time.Now().UTC()
	err := storage.CreateLicense(ctx, models.License{
		LicenseID:   "lic_aaa111bbb222",
		ProductID:   "rust-disconnect",
		ProductName: "Disconnect",
		Game:        "Rust",
		UserID:      "user_aaa111bbb222",
		LicenseKey:  "CC-AAAA-BBBB-CCCC-DDDD",
		Status:      models.LicenseStatusActive,
		Duration:    "monthly",
		PurchasedAt: now.Format(time.RFC3339),
		ExpiresAt:   now.AddDate(0, 0, 30).Format(time.RFC3339),
	})
	require.NoError(t, err)

	t.Run("транзакции только своего пользователя", func(t *testing.T) {
		txns, err := storage.ListTransactions(ctx, "user_aaa111bbb222")
		require.NoError(t, err)
		require.Len(t, txns, 1)
		assert.Equal(t, "txn_aaa111bbb222", txns[0].TransactionID)
	})

	t.Run("лицензии только своего пользователя", func(t *testing.T) {
		licenses, err := storage.ListLicenses(ctx, "user_aaa111bbb222")
		require.NoError(t, err)
		require.Len(t, licenses, 1)
		assert.Equal(t, "CC-AAAA-BBBB-CCCC-DDDD", licenses[0].LicenseKey)

		other, err := storage.ListLicenses(ctx, "user_ccc333ddd444")
		require.NoError(t, err)
		assert.Empty(t, other)
	})

	t.Run("дубликат ключа лицензии отклоняется", func(t *testing.T) {
		err := storage.CreateLicense(ctx, models.License{
			LicenseID:   "lic_ccc333ddd444",
			ProductID:   "rust-disconnect",
			ProductName: "Disconnect",
			Game:        "Rust",
			UserID:      "user_ccc333ddd444",
			LicenseKey:  "CC-AAAA-BBBB-CCCC-DDDD",
			Status:      models.LicenseStatusActive,
			Duration:    "monthly",
			PurchasedAt: now.Format(time.RFC3339),
			ExpiresAt:   now.AddDate(0, 0, 30).Format(time.RFC3339),
		})
		assert.Error(t, err)
	})
}
