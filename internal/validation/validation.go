// Package validation holds the shared validator instance and the custom
// rules used by the vehicle form and the exercise panels.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Now is the clock used by the maxyear rule. Tests may replace it.
var Now = time.Now

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the process-wide validator with custom rules registered.
// Field names in errors are taken from json tags.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("notblank", NotBlank)
		_ = v.RegisterValidation("maxyear", MaxYear)
		validate = v
	})
	return validate
}

// NotBlank reports whether a string field has content after trimming.
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// MaxYear reports whether an integer field is at most next calendar year.
func MaxYear(fl validator.FieldLevel) bool {
	return fl.Field().Int() <= int64(Now().Year()+1)
}

// Fields runs struct validation and returns the failing rule per field name.
// A nil map means the struct is valid. Errors other than field failures are
// reported under the empty key.
func Fields(s any) map[string]string {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return map[string]string{"": err.Error()}
	}
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = fe.Tag()
		}
	}
	return out
}
