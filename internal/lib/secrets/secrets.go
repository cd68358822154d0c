// Package secrets генерирует криптографически случайные строки
// для токенов сессий и секрета подписи.
package secrets

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Hex возвращает случайную hex-строку из n байт энтропии.
func Hex(n int) (string, error) {
	const op = "secrets.Hex"
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return hex.EncodeToString(buf), nil
}
