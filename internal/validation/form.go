package validation

// Field holds one field's state: current value, last computed error,
// whether the user has interacted with it, and the resulting validity.
type Field struct {
	Value   any    `json:"value"`
	Error   string `json:"error,omitempty"`
	Touched bool   `json:"touched"`
	Valid   bool   `json:"valid"`
}

// Form is an immutable-by-convention set of fields replaced wholesale on
// each change. A field that has never been touched does not block overall
// validity, so errors don't flash before first interaction.
type Form struct {
	initial map[string]any
	rules   map[string]Rules
	fields  map[string]Field
}

func NewForm(initial map[string]any, rules map[string]Rules) *Form {
	f := &Form{
		initial: initial,
		rules:   rules,
	}
	f.fields = freshFields(initial)
	return f
}

func freshFields(values map[string]any) map[string]Field {
	fields := make(map[string]Field, len(values))
	for name, value := range values {
		fields[name] = Field{Value: value}
	}
	return fields
}

// UpdateField sets a new value, revalidates it against the field's rules
// and marks the field touched.
func (f *Form) UpdateField(name string, value any) {
	err := f.rules[name].Validate(value)
	f.fields[name] = Field{
		Value:   value,
		Error:   err,
		Touched: true,
		Valid:   err == "",
	}
}

// TouchField marks a field as interacted with without changing its value.
func (f *Form) TouchField(name string) {
	field := f.fields[name]
	field.Touched = true
	f.fields[name] = field
}

// Reset replaces all field state. A nil values map resets to the original
// initial values.
func (f *Form) Reset(values map[string]any) {
	if values == nil {
		values = f.initial
	}
	f.fields = freshFields(values)
}

// Valid reports whether the form as a whole may be submitted: every field
// is either explicitly valid or has not yet been touched.
func (f *Form) Valid() bool {
	for _, field := range f.fields {
		if field.Touched && !field.Valid {
			return false
		}
	}
	return true
}

func (f *Form) Field(name string) (Field, bool) {
	field, ok := f.fields[name]
	return field, ok
}

func (f *Form) Values() map[string]any {
	values := make(map[string]any, len(f.fields))
	for name, field := range f.fields {
		values[name] = field.Value
	}
	return values
}

// Validate runs a field's rules against a value without storing anything.
func (f *Form) Validate(name string, value any) string {
	return f.rules[name].Validate(value)
}
