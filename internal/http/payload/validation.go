package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jellydator/validation"
)

const maxBodyBytes = 1 << 20

var (
	ErrMalformedPayload = errors.New("malformed request payload")
	ErrInvalidPayload   = errors.New("invalid request payload")
)

// FormBinder is implemented by payloads that can be read from a URL-encoded form.
type FormBinder interface {
	BindForm(values url.Values)
}

// Lenient is implemented by JSON payloads that accept fields they do not declare.
type Lenient interface {
	IgnoreUnknownFields() bool
}

type DecodeValidator struct{}

// DecodeJSONPayload decodes the JSON body of r into object and validates it.
// Unknown fields are rejected unless object is Lenient.
func (dv DecodeValidator) DecodeJSONPayload(r *http.Request, object any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	defer r.Body.Close()
	if lenient, ok := object.(Lenient); !ok || !lenient.IgnoreUnknownFields() {
		decoder.DisallowUnknownFields()
	}

	if err := decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w: %w", ErrMalformedPayload, err)
	}
	return dv.validatePayload(object)
}

// DecodeFormPayload binds the URL-encoded body of r into object and validates it.
func (dv DecodeValidator) DecodeFormPayload(r *http.Request, object any) error {
	binder, ok := object.(FormBinder)
	if !ok {
		return fmt.Errorf("%w: %T cannot be bound from a form", ErrMalformedPayload, object)
	}

	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parsing form payload: %w: %w", ErrMalformedPayload, err)
	}

	binder.BindForm(r.PostForm)
	return dv.validatePayload(object)
}

func (dv DecodeValidator) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w: %w", ErrInvalidPayload, err)
	}

	return nil
}

// FieldErrors returns the per-field messages of a validation failure, keyed by
// the JSON field name. It returns nil when err carries no field errors.
func FieldErrors(err error) map[string]string {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return nil
	}

	details := make(map[string]string, len(fieldErrs))
	for field, fieldErr := range fieldErrs {
		details[field] = fieldErr.Error()
	}
	return details
}
