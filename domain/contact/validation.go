package contact

import (
	"strings"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"

	"github.com/DevPedroAugusto-BR/data-beacon-launch/pkg/apperror"
)

// Maximum lengths in characters (Unicode code points), after trimming.
const (
	MaxNameLength    = 100
	MaxEmailLength   = 255
	MaxPhoneLength   = 20
	MaxMessageLength = 1000
)

// Messages shown to the visitor. Email has no separate "required" text:
// an empty address is reported as invalid.
const (
	MsgNameRequired    = "Nome é obrigatório"
	MsgNameTooLong     = "Nome deve ter no máximo 100 caracteres"
	MsgEmailInvalid    = "Email inválido"
	MsgEmailTooLong    = "Email deve ter no máximo 255 caracteres"
	MsgPhoneRequired   = "Telefone é obrigatório"
	MsgPhoneTooLong    = "Telefone deve ter no máximo 20 caracteres"
	MsgMessageRequired = "Mensagem é obrigatória"
	MsgMessageTooLong  = "Mensagem deve ter no máximo 1000 caracteres"
)

// ValidationError reports the first field that failed validation.
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field.String() + ": " + e.Message
}

// AppError converts the failure into the API error envelope.
func (e *ValidationError) AppError() *apperror.Error {
	return apperror.NewValidation(e.Field.String(), e.Message)
}

// Result is either validated data or the first validation failure.
type Result struct {
	Data Values
	Err  *ValidationError
}

// OK reports whether validation passed.
func (r Result) OK() bool {
	return r.Err == nil
}

type rule func(string) string

var rules = map[Field][]rule{
	FieldName: {
		required(MsgNameRequired),
		maxLength(MaxNameLength, MsgNameTooLong),
	},
	FieldEmail: {
		email(MsgEmailInvalid),
		maxLength(MaxEmailLength, MsgEmailTooLong),
	},
	FieldPhone: {
		required(MsgPhoneRequired),
		maxLength(MaxPhoneLength, MsgPhoneTooLong),
	},
	FieldMessage: {
		required(MsgMessageRequired),
		maxLength(MaxMessageLength, MsgMessageTooLong),
	},
}

// Validate trims every field and checks them in order name, email, phone,
// message. It stops at the first failing field. On success Data holds the
// trimmed values.
func Validate(v Values) Result {
	var trimmed Values
	for _, f := range Fields {
		value := strings.TrimSpace(v.Get(f))
		for _, check := range rules[f] {
			if msg := check(value); msg != "" {
				return Result{Err: &ValidationError{Field: f, Message: msg}}
			}
		}
		trimmed = trimmed.With(f, value)
	}
	return Result{Data: trimmed}
}

func required(msg string) rule {
	return func(s string) string {
		if s == "" {
			return msg
		}
		return ""
	}
}

func maxLength(n int, msg string) rule {
	return func(s string) string {
		if utf8.RuneCountInString(s) > n {
			return msg
		}
		return ""
	}
}

func email(msg string) rule {
	return func(s string) string {
		if s == "" || !govalidator.IsEmail(s) || !hasTLD(s) {
			return msg
		}
		return ""
	}
}

// hasTLD requires the domain to end in a label of two or more ASCII
// letters, without a trailing dot.
func hasTLD(addr string) bool {
	domain := addr[strings.LastIndexByte(addr, '@')+1:]
	dot := strings.LastIndexByte(domain, '.')
	if dot < 0 {
		return false
	}
	tld := domain[dot+1:]
	if len(tld) < 2 {
		return false
	}
	for _, r := range tld {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
