package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные правила валидации.
// Паника уместна: это ошибка времени запуска приложения.
func registerCustomRules(v *validator.Validate) {
	// notblank - непустая строка после TrimSpace.
	// Обязателен для причин reject/revoke и текстов резолюций:
	// "   " не считается причиной.
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic("validator: failed to register rule 'notblank': " + err.Error())
	}
}
