package validator

import (
	"pms/pricing"

	"github.com/gin-gonic/gin/binding"
	validatorv10 "github.com/go-playground/validator/v10"
)

// RegisterBindings đăng ký các rule binding tùy chỉnh cho gin, gọi một
// lần lúc khởi động
func RegisterBindings() {
	v, ok := binding.Validator.Engine().(*validatorv10.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("shift_type", func(fl validatorv10.FieldLevel) bool {
		value := fl.Field().String()
		return value == "" || pricing.ShiftType(value).Valid()
	})

	v.RegisterValidation("discount_type", func(fl validatorv10.FieldLevel) bool {
		value := pricing.DiscountType(fl.Field().String())
		return value == "" || value == pricing.DiscountPercentage || value == pricing.DiscountAmount
	})
}
