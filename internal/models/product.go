package models

// Статусы жизненного цикла товара.
const (
	ProductStatusUndetected = "undetected"
	ProductStatusTesting    = "testing"
	ProductStatusUpdating   = "updating"
)

// Product представляет товар из неизменяемого каталога.
// Каталог фиксируется при старте процесса, API изменения не существует.
type Product struct {
	ProductID   string   `json:"product_id"`
	Name        string   `json:"name"`
	Game        string   `json:"game"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Price       float64  `json:"price"` // Базовая цена за месячный период, USD
	Status      string   `json:"status"`
	StatusLabel string   `json:"status_label"`
	ImageURL    string   `json:"image_url"`
	AccentColor string   `json:"accent_color"`
	Tier        string   `json:"tier"`
}

// ProductStatus — срез статуса товара для страницы статусов.
type ProductStatus struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Game        string `json:"game"`
	Status      string `json:"status"`
	LastUpdated string `json:"last_updated"`
}

// ProductSummary — краткая карточка товара внутри группировки по играм.
type ProductSummary struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Tier      string  `json:"tier"`
	Price     float64 `json:"price"`
	Status    string  `json:"status"`
}

// Game — игра со списком товаров для нее.
type Game struct {
	Name     string           `json:"name"`
	Products []ProductSummary `json:"products"`
}

// Stats — агрегированные показатели каталога.
type Stats struct {
	TotalProducts   int `json:"total_products"`
	TotalGames      int `json:"total_games"`
	UndetectedCount int `json:"undetected_count"`
	TotalReviews    int `json:"total_reviews"`
}
