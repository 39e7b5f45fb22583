package document

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals
var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the validator shared by the package. Field names are reported by their yaml key.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0] //nolint:mnd
			if name == "-" {
				return ""
			}

			return name
		})

		validateInst = v
	})

	return validateInst
}

// FieldError describes one failed validation rule.
type FieldError struct {
	Field string
	Tag   string
	Param string
	Value any
}

// String returns "field: tag" or "field: tag=param".
func (e FieldError) String() string {
	if e.Param != "" {
		return e.Field + ": " + e.Tag + "=" + e.Param
	}

	return e.Field + ": " + e.Tag
}

// fieldErrors flattens validator errors, nil when err holds none.
func fieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field: fe.Namespace(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
			Value: fe.Value(),
		})
	}

	return out
}
