package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fitdesk/memberdesk/pkg/apperr"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// report json field names, not Go struct names
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return val
}

// Struct runs tag-based validation and returns a field-keyed error set the
// caller can keep appending domain checks to before calling ErrOrNil.
func Struct(in any) *apperr.ValidationError {
	ve := apperr.NewValidation()
	err := v.Struct(in)
	if err == nil {
		return ve
	}
	var ferrs validator.ValidationErrors
	if !errors.As(err, &ferrs) {
		return ve.Add("_", err.Error())
	}
	for _, fe := range ferrs {
		ve.Add(fe.Field(), messageFor(fe))
	}
	return ve
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}
