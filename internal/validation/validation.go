// Package validation implements the field-level rule engine behind every
// customer-facing form: a fixed-order rule set producing at most one
// human-readable error per field, plus per-field form state tracking
// value, error and touched flags.
package validation

import (
	"fmt"
	"regexp"
	"time"
)

// Rules describes the checks applied to one field. Evaluation order is
// fixed: required, pattern, min length, max length, min, max, custom. The
// first failing rule's message is returned; later rules are not evaluated.
type Rules struct {
	Required  bool
	Pattern   *regexp.Regexp
	MinLength int
	MaxLength int
	// Min and Max accept a number (any numeric type) or a time.Time.
	Min    any
	Max    any
	Custom func(value any) string
}

// Validate returns the first violation's message, or "" when the value
// passes. Empty values skip every non-required check.
func (r Rules) Validate(value any) string {
	if r.Required && isEmpty(value) {
		return "This field is required"
	}
	if isEmpty(value) {
		return ""
	}

	str := fmt.Sprintf("%v", value)
	if s, ok := value.(string); ok {
		str = s
	}

	if r.Pattern != nil && !r.Pattern.MatchString(str) {
		return "Invalid format"
	}
	if r.MinLength > 0 && len([]rune(str)) < r.MinLength {
		return fmt.Sprintf("Minimum length is %d characters", r.MinLength)
	}
	if r.MaxLength > 0 && len([]rune(str)) > r.MaxLength {
		return fmt.Sprintf("Maximum length is %d characters", r.MaxLength)
	}

	if r.Min != nil {
		if msg := checkMin(value, r.Min); msg != "" {
			return msg
		}
	}
	if r.Max != nil {
		if msg := checkMax(value, r.Max); msg != "" {
			return msg
		}
	}

	if r.Custom != nil {
		return r.Custom(value)
	}
	return ""
}

// isEmpty mirrors the falsy check of the original forms: nil, the empty
// string, a zero time and a zero number all count as "not filled in".
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case time.Time:
		return v.IsZero()
	default:
		if f, ok := toFloat(value); ok {
			return f == 0
		}
		return false
	}
}

func checkMin(value, min any) string {
	if t, ok := value.(time.Time); ok {
		if bound, ok := min.(time.Time); ok && t.Before(bound) {
			return "Date is too early"
		}
		return ""
	}
	f, ok1 := toFloat(value)
	bound, ok2 := toFloat(min)
	if ok1 && ok2 && f < bound {
		return fmt.Sprintf("Minimum value is %v", min)
	}
	return ""
}

func checkMax(value, max any) string {
	if t, ok := value.(time.Time); ok {
		if bound, ok := max.(time.Time); ok && t.After(bound) {
			return "Date is too late"
		}
		return ""
	}
	f, ok1 := toFloat(value)
	bound, ok2 := toFloat(max)
	if ok1 && ok2 && f > bound {
		return fmt.Sprintf("Maximum value is %v", max)
	}
	return ""
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

var (
	EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	PhonePattern = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
)

// Named rule presets shared across forms.

func Email() Rules {
	return Rules{Required: true, Pattern: EmailPattern}
}

func Phone() Rules {
	return Rules{Required: true, Pattern: PhonePattern, MinLength: 10}
}

func Required() Rules {
	return Rules{Required: true}
}

// FutureDate requires the value to be no earlier than the baseline; a zero
// baseline means "now".
func FutureDate(baseline time.Time) Rules {
	return Rules{
		Required: true,
		Custom: func(value any) string {
			t, ok := value.(time.Time)
			if !ok {
				return "Invalid format"
			}
			compare := baseline
			if compare.IsZero() {
				compare = time.Now()
			}
			if t.Before(compare) {
				return "Date cannot be in the past"
			}
			return ""
		},
	}
}

// AfterDate requires the value to be strictly after the pivot.
func AfterDate(pivot time.Time) Rules {
	return Rules{
		Required: true,
		Custom: func(value any) string {
			t, ok := value.(time.Time)
			if !ok {
				return "Invalid format"
			}
			if !t.After(pivot) {
				return "Must be after the pickup date"
			}
			return ""
		},
	}
}
