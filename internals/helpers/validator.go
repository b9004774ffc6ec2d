package helper

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs validator.v10 tags over a request DTO.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// ValidationMap converts validator errors into the standard field-error shape.
func ValidationMap(err error) map[string][]string {
	out := map[string][]string{}
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	}
	return out
}
