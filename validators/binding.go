package validators

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterBindings attaches the custom rules to gin's binding engine
// so request structs can use them in binding tags
func RegisterBindings() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return UsernameValidator(fl.Field().String()) == nil
	})

	v.RegisterValidation("userpassword", func(fl validator.FieldLevel) bool {
		return PasswordValidator(fl.Field().String()) == nil
	})
}
