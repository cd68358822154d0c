package models

import "time"

// Session представляет сессию, выданную после обмена кода внешнего
// провайдера идентификации. Истекшая сессия считается отсутствующей.
type Session struct {
	SessionToken string    `json:"session_token"`
	UserID       string    `json:"user_id"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}
