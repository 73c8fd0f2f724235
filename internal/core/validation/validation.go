// Package validation is the single gate every request DTO passes through before a
// service touches a repository. Rules live in `validate` struct tags.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-gin-contacts/internal/core/apperr"
)

var gate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// 字段名优先取 json，其次 form / uri（路径参数）
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, key := range []string{"json", "form", "uri"} {
			name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.String {
			return !f.IsZero()
		}
		return strings.TrimSpace(f.String()) != ""
	})
	return v
}

// Validate 返回 nil 或 apperr.Validation（字段按名称排序）
func Validate(req any) error {
	err := gate.Struct(req)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return apperr.Internal("internal server error", err)
	}
	vs := make([]apperr.Violation, 0, len(ves))
	for _, fe := range ves {
		vs = append(vs, apperr.Violation{Field: fe.Field(), Message: message(fe)})
	}
	sort.SliceStable(vs, func(i, j int) bool { return vs[i].Field < vs[j].Field })
	return apperr.Validation(vs)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "must not be blank"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("size must be between 0 and %s", fe.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "email":
		return "must be a well-formed email address"
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}
