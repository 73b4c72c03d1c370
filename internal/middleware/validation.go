package middleware

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/jwalitptl/passcheck/pkg/httputil"
)

var validationMessages = map[string]string{
	"required": "Field is required",
	"min":      "Value is too small",
	"max":      "Value is too large",
}

// RegisterValidation makes gin's validator report JSON field names
func RegisterValidation() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	}
}

// ValidationErrors converts a binding error into field errors. It returns
// false when err is not a validation failure (e.g. malformed JSON).
func ValidationErrors(err error) ([]httputil.FieldError, bool) {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil, false
	}

	out := make([]httputil.FieldError, 0, len(errs))
	for _, e := range errs {
		msg := validationMessages[e.Tag()]
		if msg == "" {
			msg = e.Error()
		}
		if e.Param() != "" {
			msg = fmt.Sprintf("%s (%s %s)", msg, e.Tag(), e.Param())
		}
		out = append(out, httputil.FieldError{
			Field:   e.Field(),
			Message: msg,
		})
	}
	return out, true
}
