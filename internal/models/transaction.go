package models

// Статусы оплаты транзакции. Переход в paid допускается не более одного раза.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// Классы длительности покупки.
const (
	DurationDaily   = "daily"
	DurationWeekly  = "weekly"
	DurationMonthly = "monthly"
)

// Transaction представляет попытку покупки, привязанную к checkout-сессии
// платежного провайдера. PaymentStatus отражает состояние оплаты,
// Status — стадию workflow провайдера (initiated, open, complete, expired).
type Transaction struct {
	TransactionID string  `json:"transaction_id"` // Формат txn_<12 hex>
	SessionID     string  `json:"session_id"`     // Идентификатор checkout-сессии провайдера
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"` // Денормализовано из каталога
	Game          string  `json:"game"`
	UserID        string  `json:"user_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Duration      string  `json:"duration"`
	PaymentStatus string  `json:"payment_status"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}
