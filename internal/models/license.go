package models

// LicenseStatusActive — статус лицензии по умолчанию.
// Истечение вычисляется читателями по ExpiresAt, фонового процесса нет.
const LicenseStatusActive = "active"

// License представляет выданную лицензию. Создается ровно один раз
// при первом переходе транзакции в paid и далее не изменяется.
type License struct {
	LicenseID   string `json:"license_id"` // Формат lic_<12 hex>
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Game        string `json:"game"`
	UserID      string `json:"user_id"`
	LicenseKey  string `json:"license_key"` // Формат CC-XXXX-XXXX-XXXX-XXXX
	Status      string `json:"status"`
	Duration    string `json:"duration"`
	PurchasedAt string `json:"purchased_at"`
	ExpiresAt   string `json:"expires_at"`
}
