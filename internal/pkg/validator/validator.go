package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/fuel-route-service/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры запроса; ошибки валидации
// конвертируются в AppError с кодом INVALID_INPUT
func Validate(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return errors.ErrInvalidRequest.WithMessage(err.Error())
	}
	return nil
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
