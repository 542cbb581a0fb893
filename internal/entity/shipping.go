package entity

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ShippingDetails is the checkout form: who sends the gift and who receives it.
type ShippingDetails struct {
	Name           string `json:"name" validate:"required"`
	Mobile         string `json:"mobile" validate:"required,mobile"`
	Email          string `json:"email" validate:"required,email"`
	Address        string `json:"address" validate:"required"`
	ReceiverName   string `json:"receiverName" validate:"required"`
	ReceiverMobile string `json:"receiverMobile" validate:"required,mobile"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (d ShippingDetails) Trimmed() ShippingDetails {
	return ShippingDetails{
		Name:           strings.TrimSpace(d.Name),
		Mobile:         strings.TrimSpace(d.Mobile),
		Email:          strings.TrimSpace(d.Email),
		Address:        strings.TrimSpace(d.Address),
		ReceiverName:   strings.TrimSpace(d.ReceiverName),
		ReceiverMobile: strings.TrimSpace(d.ReceiverMobile),
	}
}

// Validate checks every required field. The returned error is a *ValidationError.
func (d ShippingDetails) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate shipping details: %w", err)
	}

	ve := &ValidationError{}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return ve
}

// FieldError names one invalid form field and the rule it broke.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError is returned for missing or malformed checkout input.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field+" ("+f.Rule+")")
	}
	return "invalid shipping details: " + strings.Join(names, ", ")
}

var mobilePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		n := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(fl.Field().String())
		return mobilePattern.MatchString(n)
	}); err != nil {
		panic(err)
	}
	return v
}
