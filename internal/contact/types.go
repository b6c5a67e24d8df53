// Package contact validates contact form submissions and hands valid ones
// to a delivery sink.
package contact

import "time"

// Field names one input of the contact form.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// Fields lists the form inputs in the order they appear on the page.
var Fields = []Field{FieldName, FieldEmail, FieldMessage}

// Label returns the human-readable name of the field.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldEmail:
		return "Email"
	case FieldMessage:
		return "Message"
	default:
		return string(f)
	}
}

// ErrorKind is the rule a field failed.
type ErrorKind string

const (
	EmptyField    ErrorKind = "empty_field"
	InvalidFormat ErrorKind = "invalid_format"
)

// FieldError is the diagnostic for one failing field.
type FieldError struct {
	Field   Field     `json:"field"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func newFieldError(f Field, kind ErrorKind) FieldError {
	msg := f.Label() + " is required"
	if kind == InvalidFormat {
		msg = f.Label() + " is invalid"
	}
	return FieldError{Field: f, Kind: kind, Message: msg}
}

// Errors maps each failing field to its diagnostic. Fields that passed are
// absent; an empty map means the submission is valid.
type Errors map[Field]FieldError

// Valid reports whether no field failed.
func (e Errors) Valid() bool { return len(e) == 0 }

// Has reports whether the given field failed.
func (e Errors) Has(f Field) bool {
	_, ok := e[f]
	return ok
}

// Message returns the diagnostic text for f, or "".
func (e Errors) Message(f Field) string {
	return e[f].Message
}

// Messages flattens the errors into field name -> message, the shape the
// page and the JSON API render.
func (e Errors) Messages() map[string]string {
	out := make(map[string]string, len(e))
	for f, fe := range e {
		out[string(f)] = fe.Message
	}
	return out
}

// Clone returns an independent copy.
func (e Errors) Clone() Errors {
	if e == nil {
		return nil
	}
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Submission is the three-field record entered by a visitor.
type Submission struct {
	Name    string `json:"name" validate:"notblank"`
	Email   string `json:"email" validate:"notblank,looseemail"`
	Message string `json:"message" validate:"notblank"`
}

// Get returns the value of one field.
func (s Submission) Get(f Field) string {
	switch f {
	case FieldName:
		return s.Name
	case FieldEmail:
		return s.Email
	case FieldMessage:
		return s.Message
	}
	return ""
}

// With returns a copy of s with one field replaced. Unknown fields leave s
// unchanged.
func (s Submission) With(f Field, value string) Submission {
	switch f {
	case FieldName:
		s.Name = value
	case FieldEmail:
		s.Email = value
	case FieldMessage:
		s.Message = value
	}
	return s
}

// Status tracks delivery of a stored message.
type Status string

const (
	StatusPending   Status = "pending"
	StatusDelivered Status = "delivered"
	StatusFailed    Status = "failed"
)

// Meta is request information recorded alongside a submission.
type Meta struct {
	RemoteAddr string
	UserAgent  string
}

// Message is a validated submission as persisted and delivered.
type Message struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Body        string     `json:"message"`
	RemoteAddr  string     `json:"remote_addr,omitempty"`
	UserAgent   string     `json:"user_agent,omitempty"`
	Status      Status     `json:"status"`
	Attempts    int        `json:"attempts"`
	LastError   string     `json:"last_error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

// NewMessage builds an unsaved message from a submission.
func NewMessage(s Submission, meta Meta) Message {
	return Message{
		Name:       s.Name,
		Email:      s.Email,
		Body:       s.Message,
		RemoteAddr: meta.RemoteAddr,
		UserAgent:  meta.UserAgent,
		Status:     StatusPending,
	}
}
