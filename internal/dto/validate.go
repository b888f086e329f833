// Package dto holds the API shapes of every entity and the mapping between
// them and the persisted models.
package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"bespokedbikes/internal/domain"
	"bespokedbikes/internal/query"

	"github.com/go-playground/validator/v10"
)

// ParametersDto is the list query accepted by every collection endpoint.
type ParametersDto = query.Parameters

type (
	CustomerParametersDto    = ParametersDto
	ProductParametersDto     = ParametersDto
	SalespersonParametersDto = ParametersDto
	SaleParametersDto        = ParametersDto
	DiscountParametersDto    = ParametersDto
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks v against its struct tags. Failures come back as a
// domain.ValidationError whose Problems are keyed by JSON field name.
// The only declared rules are max lengths matching the column widths;
// numbers, dates and references are accepted as sent.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	problems := map[string][]string{}
	for _, fe := range fieldErrs {
		problems[fe.Field()] = append(problems[fe.Field()], describe(fe))
	}
	return domain.ValidationError{Problems: problems, Err: err}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "max":
		return fmt.Sprintf("The field %s must be at most %s characters long.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("The field %s is invalid (%s).", fe.Field(), fe.Tag())
	}
}
