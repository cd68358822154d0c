// Package sessioncookie задает единый контракт cookie с токеном сессии.
// Фронтенд живет на другом origin, поэтому cookie кросс-сайтовая:
// SameSite=None требует Secure.
package sessioncookie

import (
	"net/http"
	"time"
)

// Name — имя cookie с токеном сессии.
const Name = "session_token"

// maxAge — срок жизни cookie, совпадает со сроком жизни сессии.
const maxAge = 7 * 24 * time.Hour

// Set устанавливает cookie с токеном сессии на весь API.
func Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// Clear сбрасывает cookie с токеном сессии.
func Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// FromRequest возвращает токен из cookie или заголовка Authorization.
// Cookie имеет приоритет; возвращает пустую строку, если токена нет.
func FromRequest(r *http.Request) string {
	if c, err := r.Cookie(Name); err == nil && c.Value != "" {
		return c.Value
	}
	auth := r.Header.Get("Authorization")
	if len(auth) > 7 && auth[:7] == "Bearer " {
		return auth[7:]
	}
	return ""
}
