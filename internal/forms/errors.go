package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	msgRequired      = "Este campo es obligatorio."
	msgInvalidChoice = "Seleccione una opción válida."
	msgInvalidDate   = "Introduzca una fecha válida."
	msgInvalidEmail  = "Introduzca una dirección de correo electrónico válida."
	msgInvalidURL    = "Introduzca una URL válida."
	msgPhoneTooLong  = "El número no puede tener más de 12 dígitos."
	msgBirthInFuture = "La fecha de nacimiento no puede ser posterior al día de hoy."
	msgDateInFuture  = "La fecha no puede ser posterior al día de hoy."
	msgOnlyPDF       = "Solo se permiten certificados en formato PDF."
	msgOnlyImages    = "Solo se permiten imágenes JPG o PNG."
	msgFileTooLarge  = "El archivo supera el tamaño máximo permitido."
	msgEmptyFile     = "El archivo está vacío."
)

// ValidationError is a field-level rejection with a user facing message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every rejected field of one form submission.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}

func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, &ValidationError{Field: field, Message: message})
}

func (v *ValidationErrors) Append(err error) {
	if err == nil {
		return
	}
	var ve *ValidationError
	var list ValidationErrors
	switch {
	case errors.As(err, &list):
		*v = append(*v, list...)
	case errors.As(err, &ve):
		*v = append(*v, ve)
	default:
		*v = append(*v, &ValidationError{Message: err.Error()})
	}
}

// Err returns nil when nothing was collected.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// Fields maps field names to the first message reported for each.
func (v ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(v))
	for _, e := range v {
		if _, ok := out[e.Field]; !ok {
			out[e.Field] = e.Message
		}
	}
	return out
}

// AsValidation converts binding and form errors into ValidationErrors.
// It reports false for anything else, such as malformed JSON.
func AsValidation(err error) (ValidationErrors, bool) {
	var out ValidationErrors

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out.Add(fe.Field(), tagMessage(fe))
		}
		return out, true
	}

	var list ValidationErrors
	if errors.As(err, &list) {
		return list, true
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ValidationErrors{ve}, true
	}
	return nil, false
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "oneof":
		return msgInvalidChoice
	case "datetime":
		return msgInvalidDate
	case "notfuture":
		return msgDateInFuture
	case "email":
		return msgInvalidEmail
	case "url":
		return msgInvalidURL
	case "max":
		return fmt.Sprintf("Asegúrese de que este valor tenga como máximo %s caracteres.", fe.Param())
	case "gte", "min":
		return fmt.Sprintf("Asegúrese de que este valor sea mayor o igual a %s.", fe.Param())
	}
	return "Valor no válido."
}
