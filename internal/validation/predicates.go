package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	integerRegex = regexp.MustCompile(`^[-+]?[0-9]+$`)
)

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("integer", func(fl validator.FieldLevel) bool {
		return integerRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// Checks used by the product routes. Text checks see the value the way it is
// written in a query string: missing and null are "", numbers and booleans
// are their literal spelling.
var (
	IsInt           Predicate = func(v any) bool { return validate.Var(Stringify(v), "integer") == nil }
	NotEmpty        Predicate = func(v any) bool { return validate.Var(Stringify(v), "required") == nil }
	IsNumeric       Predicate = func(v any) bool { return validate.Var(Stringify(v), "numeric") == nil }
	IsBoolean       Predicate = func(v any) bool { return validate.Var(Stringify(v), "oneof=true false 1 0") == nil }
	GreaterThanZero Predicate = func(v any) bool {
		n, ok := ToNumber(v)
		return ok && validate.Var(n, "gt=0") == nil
	}
)

// Stringify renders a decoded JSON value as text.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = Stringify(item)
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}

// ToNumber coerces a decoded JSON value to a number. ok is false when the
// value has no numeric reading, e.g. "hello" or a missing field.
func ToNumber(v any) (n float64, ok bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// ToBool reads a value that already passed IsBoolean.
func ToBool(v any) bool {
	switch Stringify(v) {
	case "true", "1":
		return true
	default:
		return false
	}
}
