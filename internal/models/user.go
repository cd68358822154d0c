// Package models содержит доменные структуры магазина: пользователей,
// сессии, товары, транзакции и лицензии. Структуры используются
// в бизнес‑логике и при работе с хранилищем.
package models

// User представляет зарегистрированного пользователя системы.
//
// PasswordHash пустой у пользователей, созданных через вход
// по внешнему провайдеру идентификации.
type User struct {
	UserID       string `json:"user_id"` // Уникальный идентификатор, формат user_<12 hex>
	Email        string `json:"email"`   // Электронная почта (уникальная)
	Name         string `json:"name"`    // Отображаемое имя
	Picture      string `json:"picture,omitempty"`
	PasswordHash string `json:"-"`
	CreatedAt    string `json:"created_at"` // RFC3339, UTC
}
