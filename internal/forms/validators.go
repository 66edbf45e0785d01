package forms

import (
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the value format of HTML date inputs.
const DateLayout = "2006-01-02"

// RegisterValidators installs the custom tags and json field naming on v.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)
	return v.RegisterValidation("notfuture", notFuture)
}

// RegisterGinValidators installs the custom tags on gin's binding engine.
func RegisterGinValidators() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return RegisterValidators(v)
	}
	return nil
}

// NewValidator returns a validator that reads `binding` tags like gin does.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	_ = RegisterValidators(v)
	return v
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// notFuture accepts empty values and anything not parseable as a date,
// leaving format errors to the datetime tag.
func notFuture(fl validator.FieldLevel) bool {
	var d time.Time
	switch v := fl.Field().Interface().(type) {
	case string:
		if v == "" {
			return true
		}
		parsed, err := ParseDate(v)
		if err != nil {
			return true
		}
		d = parsed
	case time.Time:
		d = v
	default:
		return true
	}
	return !d.After(Today())
}

// ParseDate parses a YYYY-MM-DD value as a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}

// Today is the current calendar date at UTC midnight.
func Today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseOptionalDate(field, value string, errs *ValidationErrors) *time.Time {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	d, err := ParseDate(value)
	if err != nil {
		errs.Add(field, msgInvalidDate)
		return nil
	}
	return &d
}

func parseRequiredDate(field, value string, errs *ValidationErrors) time.Time {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, msgRequired)
		return time.Time{}
	}
	d, err := ParseDate(value)
	if err != nil {
		errs.Add(field, msgInvalidDate)
	}
	return d
}
