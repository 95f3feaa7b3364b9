package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validValues() Values {
	return Values{
		Name:    "Ana",
		Email:   "ana@x.com",
		Phone:   "11999999999",
		Message: "Olá",
	}
}

func TestValidate_Valid(t *testing.T) {
	res := Validate(validValues())
	require.True(t, res.OK())
	assert.Equal(t, validValues(), res.Data)
}

func TestValidate_TrimsFields(t *testing.T) {
	res := Validate(Values{
		Name:    "  Ana ",
		Email:   " ana@x.com\t",
		Phone:   " 11999999999 ",
		Message: "\nOlá  ",
	})
	require.True(t, res.OK())
	assert.Equal(t, validValues(), res.Data)
}

func TestValidate_FirstFailingField(t *testing.T) {
	tests := []struct {
		name    string
		values  Values
		field   Field
		message string
	}{
		{
			name:    "empty form reports name first",
			values:  Values{},
			field:   FieldName,
			message: MsgNameRequired,
		},
		{
			name:    "whitespace name",
			values:  validValues().With(FieldName, "   "),
			field:   FieldName,
			message: MsgNameRequired,
		},
		{
			name:    "name too long",
			values:  validValues().With(FieldName, strings.Repeat("a", MaxNameLength+1)),
			field:   FieldName,
			message: MsgNameTooLong,
		},
		{
			name:    "empty email is invalid",
			values:  validValues().With(FieldEmail, ""),
			field:   FieldEmail,
			message: MsgEmailInvalid,
		},
		{
			name:    "email without at sign",
			values:  Values{Name: "Ana", Email: "ana.x.com", Phone: "1", Message: "m"},
			field:   FieldEmail,
			message: MsgEmailInvalid,
		},
		{
			name:    "empty phone",
			values:  validValues().With(FieldPhone, ""),
			field:   FieldPhone,
			message: MsgPhoneRequired,
		},
		{
			name:    "phone too long",
			values:  validValues().With(FieldPhone, strings.Repeat("9", MaxPhoneLength+1)),
			field:   FieldPhone,
			message: MsgPhoneTooLong,
		},
		{
			name:    "empty message",
			values:  validValues().With(FieldMessage, " \n "),
			field:   FieldMessage,
			message: MsgMessageRequired,
		},
		{
			name:    "message too long",
			values:  validValues().With(FieldMessage, strings.Repeat("m", MaxMessageLength+1)),
			field:   FieldMessage,
			message: MsgMessageTooLong,
		},
		{
			name:    "earlier field wins",
			values:  Values{Name: "Ana", Email: "bad", Phone: "", Message: ""},
			field:   FieldEmail,
			message: MsgEmailInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.values)
			require.False(t, res.OK())
			assert.Equal(t, tt.field, res.Err.Field)
			assert.Equal(t, tt.message, res.Err.Message)
			assert.Equal(t, Values{}, res.Data)
		})
	}
}

func TestValidate_EmailTooLong(t *testing.T) {
	addr := "a@" + strings.Repeat(strings.Repeat("b", 60)+".", 5) + "com"
	require.Greater(t, len(addr), MaxEmailLength)

	res := Validate(validValues().With(FieldEmail, addr))
	require.False(t, res.OK())
	assert.Equal(t, FieldEmail, res.Err.Field)
	assert.Equal(t, MsgEmailTooLong, res.Err.Message)
}

func TestValidate_EmailDomain(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"ana@x.com", true},
		{"ana@mail.4data.com.br", true},
		{"ANA@X.COM", true},
		{"ana@x.c", false},
		{"ana@x.com.", false},
		{"ana@localhost", false},
		{"ana@x.c0m", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			res := Validate(validValues().With(FieldEmail, tt.email))
			if tt.valid {
				assert.True(t, res.OK())
				return
			}
			require.False(t, res.OK())
			assert.Equal(t, FieldEmail, res.Err.Field)
			assert.Equal(t, MsgEmailInvalid, res.Err.Message)
		})
	}
}

func TestValidate_LengthLimitsAreInclusive(t *testing.T) {
	v := Values{
		Name:    strings.Repeat("a", MaxNameLength),
		Email:   "ana@x.com",
		Phone:   strings.Repeat("9", MaxPhoneLength),
		Message: strings.Repeat("m", MaxMessageLength),
	}
	assert.True(t, Validate(v).OK())
}

func TestValidate_CountsCharactersNotBytes(t *testing.T) {
	// 100 two-byte runes is within the name limit.
	v := validValues().With(FieldName, strings.Repeat("é", MaxNameLength))
	assert.True(t, Validate(v).OK())

	v = validValues().With(FieldName, strings.Repeat("é", MaxNameLength+1))
	res := Validate(v)
	require.False(t, res.OK())
	assert.Equal(t, MsgNameTooLong, res.Err.Message)
}

func TestValidationError_AppError(t *testing.T) {
	err := (&ValidationError{Field: FieldPhone, Message: MsgPhoneRequired}).AppError()
	assert.Equal(t, 422, err.HTTPStatus)
	assert.Equal(t, MsgPhoneRequired, err.Message)
	assert.Equal(t, "phone", err.Details["field"])
}

func TestValidate_EmptyNameWithOtherFieldsValid(t *testing.T) {
	res := Validate(Values{Name: "", Email: "a@b.com", Phone: "123", Message: "hi"})
	require.False(t, res.OK())
	assert.Equal(t, FieldName, res.Err.Field)
	assert.Equal(t, MsgNameRequired, res.Err.Message)
}
