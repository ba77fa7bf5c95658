package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// ValidationDetails раскладывает ошибку валидации по полям для ответа API
func ValidationDetails(err error) map[string]interface{} {
	details := make(map[string]interface{})

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		for _, fe := range vErrs {
			details[fe.Field()] = fe.Tag()
		}
		return details
	}

	details["error"] = err.Error()
	return details
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
