package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequiredShortCircuits(t *testing.T) {
	customCalled := false
	rules := Rules{
		Required:  true,
		Pattern:   EmailPattern,
		MinLength: 5,
		Custom: func(any) string {
			customCalled = true
			return "custom error"
		},
	}

	assert.Equal(t, "This field is required", rules.Validate(""))
	assert.Equal(t, "This field is required", rules.Validate(nil))
	assert.False(t, customCalled, "no other rule should run after required fails")
}

func TestEmptyValueSkipsNonRequiredChecks(t *testing.T) {
	rules := Rules{Pattern: EmailPattern, MinLength: 5}
	assert.Equal(t, "", rules.Validate(""))
	assert.Equal(t, "", rules.Validate(nil))
	assert.Equal(t, "", rules.Validate(time.Time{}))
}

func TestRuleEvaluationOrder(t *testing.T) {
	rules := Rules{
		Pattern:   EmailPattern,
		MinLength: 50,
		Custom:    func(any) string { return "custom error" },
	}

	// Pattern fails first even though length would fail too.
	assert.Equal(t, "Invalid format", rules.Validate("not-an-email"))

	// With a passing pattern, min length fires before custom.
	assert.Equal(t, "Minimum length is 50 characters", rules.Validate("a@b.co"))
}

func TestLengthRules(t *testing.T) {
	rules := Rules{MinLength: 3, MaxLength: 5}
	assert.Equal(t, "Minimum length is 3 characters", rules.Validate("ab"))
	assert.Equal(t, "", rules.Validate("abc"))
	assert.Equal(t, "", rules.Validate("abcde"))
	assert.Equal(t, "Maximum length is 5 characters", rules.Validate("abcdef"))
}

func TestNumericBounds(t *testing.T) {
	rules := Rules{Min: 2, Max: 10}
	assert.Equal(t, "Minimum value is 2", rules.Validate(1.5))
	assert.Equal(t, "", rules.Validate(5))
	assert.Equal(t, "Maximum value is 10", rules.Validate(11))
}

func TestDateBounds(t *testing.T) {
	early := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	rules := Rules{Min: early, Max: late}

	assert.Equal(t, "Date is too early", rules.Validate(early.AddDate(0, -1, 0)))
	assert.Equal(t, "", rules.Validate(early.AddDate(0, 3, 0)))
	assert.Equal(t, "Date is too late", rules.Validate(late.AddDate(0, 1, 0)))
}

func TestEmailPreset(t *testing.T) {
	rules := Email()
	assert.Equal(t, "This field is required", rules.Validate(""))
	assert.Equal(t, "Invalid format", rules.Validate("missing-at.example.com"))
	assert.Equal(t, "Invalid format", rules.Validate("two words@example.com"))
	assert.Equal(t, "", rules.Validate("jane@example.com"))
}

func TestPhonePreset(t *testing.T) {
	rules := Phone()
	assert.Equal(t, "Invalid format", rules.Validate("call me maybe"))
	assert.Equal(t, "Minimum length is 10 characters", rules.Validate("12345"))
	assert.Equal(t, "", rules.Validate("+61 3 6123 4567"))
}

func TestFutureDatePreset(t *testing.T) {
	baseline := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	rules := FutureDate(baseline)

	assert.Equal(t, "Date cannot be in the past", rules.Validate(baseline.AddDate(0, 0, -1)))
	assert.Equal(t, "", rules.Validate(baseline.AddDate(0, 0, 1)))
	assert.Equal(t, "Invalid format", rules.Validate("not a date"))
}

func TestAfterDatePreset(t *testing.T) {
	pickup := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	rules := AfterDate(pickup)

	assert.Equal(t, "Must be after the pickup date", rules.Validate(pickup))
	assert.Equal(t, "Must be after the pickup date", rules.Validate(pickup.Add(-time.Hour)))
	assert.Equal(t, "", rules.Validate(pickup.Add(time.Hour)))
}
