package http

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Los mensajes usan el nombre JSON del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// decimal.Decimal se valida como su representación en texto.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("decimal_gte0", decimalGTE0)
	_ = v.RegisterValidation("decimal_fraction", decimalFraction)
	return v
}

func parseDecimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(fl.Field().String())
	return d, err == nil
}

// decimalGTE0: importe no negativo.
func decimalGTE0(fl validator.FieldLevel) bool {
	d, ok := parseDecimalField(fl)
	return ok && !d.IsNegative()
}

// decimalFraction: tasa entre 0 y 1 (0.16 = 16%).
func decimalFraction(fl validator.FieldLevel) bool {
	d, ok := parseDecimalField(fl)
	return ok && !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(1))
}

// validationMessage resume el primer error de validación en un texto legible.
func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "entrada inválida"
	}
	fe := verrs[0]
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " es requerido"
	case "decimal_gte0":
		return field + " no puede ser negativo"
	case "decimal_fraction":
		return field + " debe estar entre 0 y 1"
	case "datetime":
		return field + " debe tener formato YYYY-MM-DD"
	case "email":
		return field + " debe ser un email válido"
	default:
		if fe.Param() != "" {
			return field + " no cumple " + fe.Tag() + "=" + fe.Param()
		}
		return field + " no cumple " + fe.Tag()
	}
}
