package validators

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// now is replaced in tests.
var now = time.Now

// CurrencyCode accepts three upper-case letters.
func CurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodeRegex.MatchString(fl.Field().String())
}

// NotFuture accepts dates on or before today.
func NotFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !lifecycle.Date(t).After(lifecycle.Date(now()))
}

// RatingScope accepts the known rating scales.
func RatingScope(fl validator.FieldLevel) bool {
	return domain.RatingScope(fl.Field().String()).Valid()
}

// Register adds the portal tags to v and reports fields by their wire name.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(wireName)
	for tag, fn := range map[string]validator.Func{
		"currencycode": CurrencyCode,
		"notfuture":    NotFuture,
		"rating_scope": RatingScope,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validator: %w", tag, err)
		}
	}
	return nil
}

// RegisterWithGin installs the portal tags on gin's binding engine.
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return Register(v)
}

func wireName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// FromBindingError turns a bind failure into a ValidationError keyed by field.
// Errors that are not validator errors, such as malformed JSON, are reported
// on field "body".
func FromBindingError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewValidationError("body", "is malformed: "+err.Error())
	}
	v := &apperrors.ValidationError{}
	for _, fe := range verrs {
		field := fe.Field()
		if field == "" {
			field = fe.StructField()
		}
		v.Add(field, message(fe))
	}
	return v.OrNil()
}

func message(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required", "required_without":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid url"
	case "uuid":
		return "must be a valid uuid"
	case "hexcolor":
		return "must be a hex colour"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of [" + fe.Param() + "]"
	case "currencycode":
		return "must be a three letter ISO 4217 code"
	case "notfuture":
		return "must not be in the future"
	case "rating_scope":
		return "must be national or international"
	default:
		return "is invalid"
	}
}
