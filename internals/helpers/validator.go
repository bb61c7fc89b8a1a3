// file: internals/helpers/validator.go
package helper

import (
	"github.com/go-playground/validator/v10"
)

// Satu instance validator untuk seluruh app (cache struct metadata)
var Validate = validator.New()

// ValidationErrorsToMap merapikan error validator.v10 jadi map field → pesan,
// siap dikirim lewat JsonValidationError.
func ValidationErrorsToMap(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{"invalid input"}
		return out
	}
	for _, fe := range ve {
		field := fe.Field()
		var msg string
		switch fe.Tag() {
		case "required":
			msg = field + " wajib diisi."
		case "email":
			msg = "Format email tidak valid."
		case "min":
			msg = field + " harus minimal " + fe.Param() + " karakter."
		case "max":
			msg = field + " harus kurang dari " + fe.Param() + " karakter."
		case "oneof":
			msg = field + " harus salah satu dari " + fe.Param() + "."
		case "uuid":
			msg = field + " harus berupa UUID valid."
		case "gte":
			msg = field + " minimal " + fe.Param() + "."
		case "lte":
			msg = field + " maksimal " + fe.Param() + "."
		default:
			msg = "Format tidak valid."
		}
		out[field] = append(out[field], msg)
	}
	return out
}
