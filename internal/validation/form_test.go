package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newContactForm() *Form {
	return NewForm(
		map[string]any{"firstName": "", "email": ""},
		map[string]Rules{
			"firstName": Required(),
			"email":     Email(),
		},
	)
}

func TestFormStartsUntouchedAndValid(t *testing.T) {
	form := newContactForm()

	assert.True(t, form.Valid(), "untouched fields must not block validity")

	field, ok := form.Field("email")
	assert.True(t, ok)
	assert.False(t, field.Touched)
	assert.Empty(t, field.Error)
}

func TestUpdateFieldRevalidatesAndTouches(t *testing.T) {
	form := newContactForm()

	form.UpdateField("email", "not-an-email")
	field, _ := form.Field("email")
	assert.True(t, field.Touched)
	assert.False(t, field.Valid)
	assert.Equal(t, "Invalid format", field.Error)
	assert.False(t, form.Valid())

	form.UpdateField("email", "jane@example.com")
	field, _ = form.Field("email")
	assert.True(t, field.Valid)
	assert.Empty(t, field.Error)
	assert.True(t, form.Valid())
}

func TestTouchFieldMarksWithoutChangingValue(t *testing.T) {
	form := newContactForm()

	form.TouchField("firstName")
	field, _ := form.Field("firstName")
	assert.True(t, field.Touched)
	assert.Equal(t, "", field.Value)
}

func TestResetRestoresInitialValues(t *testing.T) {
	form := newContactForm()
	form.UpdateField("email", "jane@example.com")

	form.Reset(nil)
	field, _ := form.Field("email")
	assert.Equal(t, "", field.Value)
	assert.False(t, field.Touched)
	assert.True(t, form.Valid())
}

func TestResetWithExplicitValues(t *testing.T) {
	form := newContactForm()

	form.Reset(map[string]any{"firstName": "Jane", "email": "jane@example.com"})
	field, _ := form.Field("firstName")
	assert.Equal(t, "Jane", field.Value)
	assert.False(t, field.Touched)
}

func TestValuesSnapshot(t *testing.T) {
	form := newContactForm()
	form.UpdateField("firstName", "Jane")

	values := form.Values()
	assert.Equal(t, "Jane", values["firstName"])
	assert.Equal(t, "", values["email"])
}
