// Package validation wires the request validator used by the binding layer
// and translates its failures into the API's error envelope.
package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"spendtrack/internal/models"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Initialize configures gin's underlying validator. Field names in error
// messages come from json tags, and decimal amounts validate as numbers.
// Call once at startup before serving requests.
func Initialize() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// Translate converts validator failures into per-field message lists.
func Translate(verrs validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		out[field] = append(out[field], message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "len":
		return fmt.Sprintf("The %s must be %s characters.", field, fe.Param())
	case "min":
		if (fe.Kind() == reflect.String || fe.Kind() == reflect.Ptr) && fe.Param() == "1" {
			return fmt.Sprintf("The %s field is required.", field)
		}
		return fmt.Sprintf("The %s must be at least %s characters.", field, fe.Param())
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", field, fe.Param())
	case "gt":
		return fmt.Sprintf("The %s must be greater than %s.", field, fe.Param())
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	default:
		return fmt.Sprintf("The %s is invalid.", field)
	}
}

// HandleBindError writes the appropriate error envelope for a failed bind:
// a 422 with per-field messages for validation failures, a 400 for payloads
// that could not be parsed at all.
func HandleBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusUnprocessableEntity, models.ValidationErrorResponse{
			Message: "The given data was invalid.",
			Errors:  Translate(verrs),
		})
		return
	}

	c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request payload"})
}
