// Package licensekey генерирует лицензионные ключи фиксированного
// текстового формата CC-XXXX-XXXX-XXXX-XXXX (группы — hex в верхнем регистре).
package licensekey

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Prefix — неизменяемый префикс всех лицензионных ключей.
const Prefix = "CC"

func group() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:4])
}

// Generate возвращает новый ключ в формате CC-XXXX-XXXX-XXXX-XXXX.
// Глобальная уникальность опирается на случайность uuid;
// дополнительно ее гарантирует уникальный индекс в хранилище.
func Generate() string {
	return fmt.Sprintf("%s-%s-%s-%s-%s", Prefix, group(), group(), group(), group())
}
