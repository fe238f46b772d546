package validate

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their label so messages read like the prompts the user answered.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})

	if err := validate.RegisterValidation("nodigits", noDigits); err != nil {
		panic("failed to register nodigits validation: " + err.Error())
	}
	if err := validate.RegisterValidation("nocr", noCarriageReturn); err != nil {
		panic("failed to register nocr validation: " + err.Error())
	}
}

// Struct is a thin wrapper around validator.Validate's StructCtx.
// This exists purely to ensure that we only have one validator cache.
func Struct(ctx context.Context, s any) error {
	return validate.StructCtx(ctx, s)
}

// Partial validates only the named struct fields, used when prompting one field at a time.
func Partial(ctx context.Context, s any, fields ...string) error {
	return validate.StructPartialCtx(ctx, s, fields...)
}

// Register adds a custom validation tag to the shared validator.
func Register(tag string, fn validator.Func) error {
	return validate.RegisterValidation(tag, fn)
}

func noDigits(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), "0123456789")
}

// noCarriageReturn keeps text to plain newlines, which is all a line in the reviews file ends with.
func noCarriageReturn(fl validator.FieldLevel) bool {
	return !strings.ContainsRune(fl.Field().String(), '\r')
}

// Messages describes each failed constraint in err for a person to read.
// Errors that didn't come from the validator are returned as a single message.
func Messages(err error) []string {
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return []string{err.Error()}
	}

	ret := make([]string, 0, len(errs))
	for _, fe := range errs {
		ret = append(ret, message(fe))
	}

	return ret
}

func message(fe validator.FieldError) string {
	isText := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		if isText {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if isText {
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "nodigits":
		return fmt.Sprintf("%s must not contain digits", fe.Field())
	case "nocr":
		return fmt.Sprintf("%s must not contain carriage returns", fe.Field())
	case "month":
		return fmt.Sprintf("%s must be a full month name such as January", fe.Field())
	default:
		return fmt.Sprintf("%s failed the %q check", fe.Field(), fe.Tag())
	}
}
