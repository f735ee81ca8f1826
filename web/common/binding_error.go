package common

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	msgEmptyBody   = "Request body is empty"
	msgInvalidJSON = "Invalid JSON at byte offset %d"
	msgFieldType   = "Field '%s' should be of type %s"
	msgRequired    = "Field '%s' is required"
	msgMin         = "Field '%s' must be at least %s"
	msgMax         = "Field '%s' must be at most %s"
	msgOneOf       = "Field '%s' must be one of: %s"
	msgInvalid     = "Field '%s' failed validation for '%s'"
)

var english = message.NewPrinter(language.English)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}

	for key, text := range map[string]string{
		msgEmptyBody:   "Il corpo della richiesta è vuoto",
		msgInvalidJSON: "JSON non valido alla posizione %d",
		msgFieldType:   "Il campo '%s' deve essere di tipo %s",
		msgRequired:    "Il campo '%s' è obbligatorio",
		msgMin:         "Il campo '%s' deve essere almeno %s",
		msgMax:         "Il campo '%s' deve essere al massimo %s",
		msgOneOf:       "Il campo '%s' deve essere uno tra: %s",
		msgInvalid:     "Il campo '%s' non supera la regola '%s'",
	} {
		_ = message.SetString(language.Italian, key, text)
	}
}

// FormatBindingError renders a request binding failure in the language of p.
// A nil printer renders English.
func FormatBindingError(err error, p *message.Printer) string {
	if err == nil {
		return ""
	}
	if p == nil {
		p = english
	}

	if errors.Is(err, io.EOF) {
		return p.Sprintf(msgEmptyBody)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return p.Sprintf(msgInvalidJSON, syntaxErr.Offset)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return p.Sprintf(msgFieldType, typeErr.Field, typeErr.Type.String())
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make([]string, 0, len(ve))
		for _, fe := range ve {
			out = append(out, formatFieldError(fe, p))
		}
		return strings.Join(out, ", ")
	}

	return err.Error()
}

func formatFieldError(fe validator.FieldError, p *message.Printer) string {
	switch fe.Tag() {
	case "required":
		return p.Sprintf(msgRequired, fe.Field())
	case "min", "gte":
		return p.Sprintf(msgMin, fe.Field(), fe.Param())
	case "max", "lte":
		return p.Sprintf(msgMax, fe.Field(), fe.Param())
	case "oneof":
		return p.Sprintf(msgOneOf, fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	}
	return p.Sprintf(msgInvalid, fe.Field(), fe.Tag())
}
