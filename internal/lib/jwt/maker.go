// Package jwt реализует генерацию и парсинг самоподписанных токенов
// с пользовательскими claim полями.
//
// Токен несет идентификатор пользователя и email; срок жизни задается TTL.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга токенов.
type Maker interface {
	// GenerateToken создает токен для пользователя с указанным id и email
	GenerateToken(userID, email string) (string, error)
	// ParseToken возвращает *CustomClaims, если токен корректен и не истек
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
