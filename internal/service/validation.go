package service

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// validatorInstance 字段名使用 json tag，错误信息与请求体一致
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// validateStruct 校验请求 DTO
// 缺失字段合并为一条 "... are required"，其余取第一条
func validateStruct(v interface{}) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return wrapError(KindBadRequest, err, "invalid request")
	}

	var missing []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return newError(KindBadRequest, "missing required fields: %s", strings.Join(missing, ", "))
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "email":
		return newError(KindBadRequest, "%s must be a valid email", fe.Field())
	case "oneof":
		return newError(KindBadRequest, "%s must be one of: %s", fe.Field(), fe.Param())
	case "url":
		return newError(KindBadRequest, "%s must be a valid url", fe.Field())
	case "min", "max":
		return newError(KindBadRequest, "%s is out of range", fe.Field())
	default:
		return newError(KindBadRequest, "%s is invalid", fe.Field())
	}
}
