// Package validation 注册请求参数的自定义校验规则
package validation

import (
	"fmt"
	"reflect"
	"time"

	"filmorate-go/internal/api/dto"
	"filmorate-go/internal/service"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register 把自定义规则注册到 gin 使用的校验器
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return RegisterOn(v)
}

// RegisterOn 注册 releasedate、notfuture 规则，并让 dto.Date 按 time.Time 参与校验
func RegisterOn(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(dateValue, dto.Date{})

	if err := v.RegisterValidation("releasedate", releaseDate); err != nil {
		return fmt.Errorf("register releasedate: %w", err)
	}
	if err := v.RegisterValidation("notfuture", notFuture); err != nil {
		return fmt.Errorf("register notfuture: %w", err)
	}
	return nil
}

func dateValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(dto.Date); ok {
		return d.Time
	}
	return nil
}

// releaseDate 非零且不早于 1895-12-28
func releaseDate(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok || t.IsZero() {
		return false
	}
	return !t.Before(service.EarliestReleaseDate)
}

// notFuture 不晚于今天
func notFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !t.After(time.Now())
}
