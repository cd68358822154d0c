// Package ident генерирует идентификаторы доменных сущностей
// вида <prefix>_<12 hex>, например user_1f8a02c4d9b3.
package ident

import (
	"strings"

	"github.com/google/uuid"
)

// New возвращает новый идентификатор с заданным префиксом.
func New(prefix string) string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return prefix + "_" + hex[:12]
}
