package contact

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Field identifies one input of the contact form. The declaration order is
// the validation order.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldPhone
	FieldMessage
)

// Fields lists every form field in validation order.
var Fields = []Field{FieldName, FieldEmail, FieldPhone, FieldMessage}

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	case FieldPhone:
		return "phone"
	case FieldMessage:
		return "message"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// ParseField maps a form input name back to its Field.
func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown contact field %q", s)
}

// Values is a snapshot of the four form inputs.
type Values struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Message string `json:"message" form:"message"`
}

// Get returns the value of a single field.
func (v Values) Get(f Field) string {
	switch f {
	case FieldName:
		return v.Name
	case FieldEmail:
		return v.Email
	case FieldPhone:
		return v.Phone
	case FieldMessage:
		return v.Message
	}
	return ""
}

// With returns a copy of v with one field replaced.
func (v Values) With(f Field, value string) Values {
	switch f {
	case FieldName:
		v.Name = value
	case FieldEmail:
		v.Email = value
	case FieldPhone:
		v.Phone = value
	case FieldMessage:
		v.Message = value
	}
	return v
}

// IsEmpty reports whether every field is the empty string.
func (v Values) IsEmpty() bool {
	return v == Values{}
}

// Form owns the state of one contact form: its field values and whether a
// submission is in flight. The zero value is an empty, idle form.
type Form struct {
	mu         sync.Mutex
	values     Values
	submitting bool
}

// NewForm returns an empty, idle form.
func NewForm() *Form {
	return &Form{}
}

// FormFrom builds a form by setting each field in turn.
func FormFrom(v Values) *Form {
	f := NewForm()
	for _, field := range Fields {
		f.Set(field, v.Get(field))
	}
	return f
}

// Set replaces the value of one field, leaving the others untouched.
func (f *Form) Set(field Field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = f.values.With(field, value)
}

// Values returns a copy of the current field values.
func (f *Form) Values() Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Submitting reports whether a submission is in flight. The submit control
// is disabled while this is true.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Reset clears every field.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = Values{}
}

func (f *Form) setSubmitting(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = v
}

// Message is a validated submission handed to a Sender.
type Message struct {
	ID         uuid.UUID
	Values     Values
	ReceivedAt time.Time
	ClientIP   string
}
