package validation

import (
	"errors"
	"reflect"
	"strings"

	"myShopStack/domain"

	"github.com/go-playground/validator/v10"
)

const requiredMessage = "Missing data for required field."

// New builds the validator shared by a service's business layer: field
// names come from json tags, domain.Date values validate as their
// YYYY-MM-DD string form, and "notfuture" rejects dates after today.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(domain.Date); ok {
			return d.String()
		}
		return nil
	}, domain.Date{})

	// ISO dates compare correctly as strings.
	_ = v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return s <= domain.Today().String()
	})

	return v
}

// Messages maps a field to the single message reported for any violated
// constraint on that field, mirroring the per-field schema messages of the
// wire contract. Missing required fields get requiredMessage instead.
type Messages map[string]string

// Translate turns a validator error into a *domain.ValidationError listing
// every violated field. Non-validation errors pass through unchanged.
func Translate(err error, msgs Messages) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		msg := msgs[field]
		if fe.Tag() == "required" || msg == "" {
			msg = requiredMessage
		}
		out[field] = append(out[field], msg)
	}

	return &domain.ValidationError{Messages: out}
}
