package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"menu-admin/menu-svc/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

var hexRGB = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// maxPrice is the first value a NUMERIC(10,2) column cannot hold.
var maxPrice = decimal.New(1, 8)

var dietaryLabels = map[domain.DietaryLabel]struct{}{
	domain.Vegetarian: {}, domain.Vegan: {}, domain.GlutenFree: {}, domain.DairyFree: {},
	domain.NutFree: {}, domain.Keto: {}, domain.LowCarb: {}, domain.Halal: {},
	domain.Kosher: {}, domain.Spicy: {}, domain.Organic: {},
}

// FieldError describes one rejected field using its JSON name.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Error is returned for any input that fails its schema.
type Error struct {
	Fields []FieldError `json:"fields"`
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(nullableString, domain.Nullable[string]{})
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	mustRegister(v, "hex_rgb", func(fl validator.FieldLevel) bool {
		return hexRGB.MatchString(fl.Field().String())
	})
	mustRegister(v, "dietary_label", func(fl validator.FieldLevel) bool {
		_, ok := dietaryLabels[domain.DietaryLabel(fl.Field().String())]
		return ok
	})
	mustRegister(v, "price", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && priceProblem(d) == ""
	})
	mustRegister(v, "qr_payload", func(fl validator.FieldLevel) bool {
		_, err := qrcode.New(fl.Field().String(), qrcode.Medium)
		return err == nil
	})

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

func nullableString(field reflect.Value) interface{} {
	if n, ok := field.Interface().(domain.Nullable[string]); ok {
		if p := n.Ptr(); p != nil {
			return *p
		}
	}
	return nil
}

// decimalValue hands decimals to the rules as exact strings.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func priceProblem(d decimal.Decimal) string {
	switch {
	case !d.IsPositive():
		return "must be greater than 0"
	case !d.Round(2).Equal(d):
		return "must have at most 2 decimal places"
	case !d.LessThan(maxPrice):
		return "must be less than " + maxPrice.String()
	}
	return ""
}

// Struct validates input and converts failures into *Error.
func (v *Validator) Struct(input interface{}) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fieldPath(fe),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace so nested
// slice elements read as dietary_labels[1].
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return "must not be empty"
		}
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "url":
		return "must be an absolute URL"
	case "hex_rgb":
		return "must be a hex color like #1A2B3C"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "dietary_label":
		return fmt.Sprintf("unknown dietary label %q", fe.Value())
	case "price":
		d, err := decimal.NewFromString(fmt.Sprint(fe.Value()))
		if err != nil {
			return "must be a decimal amount"
		}
		return priceProblem(d)
	case "qr_payload":
		return "is too long to encode as a QR code"
	default:
		return "failed " + fe.Tag() + " check"
	}
}
