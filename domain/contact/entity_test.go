package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_RoundTrip(t *testing.T) {
	for _, f := range Fields {
		got, err := ParseField(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseField("company")
	assert.Error(t, err)
	assert.Equal(t, "field(9)", Field(9).String())
}

func TestForm_SetOnlyTouchesOneField(t *testing.T) {
	form := NewForm()
	assert.True(t, form.Values().IsEmpty())
	assert.False(t, form.Submitting())

	form.Set(FieldEmail, "ana@x.com")
	form.Set(FieldName, "Ana")
	form.Set(FieldEmail, "ana@y.com")

	assert.Equal(t, Values{Name: "Ana", Email: "ana@y.com"}, form.Values())
}

func TestForm_ResetClearsValues(t *testing.T) {
	form := FormFrom(validValues())
	assert.Equal(t, validValues(), form.Values())

	form.Reset()
	assert.True(t, form.Values().IsEmpty())
}

func TestValues_GetWith(t *testing.T) {
	v := Values{}.With(FieldPhone, "123").With(FieldMessage, "oi")
	assert.Equal(t, "123", v.Get(FieldPhone))
	assert.Equal(t, "oi", v.Get(FieldMessage))
	assert.Equal(t, "", v.Get(FieldName))
	assert.False(t, v.IsEmpty())
}
