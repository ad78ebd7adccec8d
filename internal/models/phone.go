package models

import (
	"regexp"
	"strings"
)

// PhoneRe - международный формат: ведущий '+', 6-15 цифр
var PhoneRe = regexp.MustCompile(`^\+\d{6,15}$`)

// NormalizePhone обрезает края и удаляет внутренние пробелы.
// Сравнение в хранилище дополнительно регистронезависимое.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	return strings.Join(strings.Fields(phone), "")
}

// ValidPhone проверяет нормализованный номер против формата
func ValidPhone(phone string) bool {
	return PhoneRe.MatchString(phone)
}
