package providers

import "errors"

// Failure causes of an outbound call. They never leave this package boundary as
// errors: public fetch methods log them, count them and return nil.
var (
	ErrMissingCredential = errors.New("missing credential")
	ErrUnexpectedStatus  = errors.New("unexpected status")
	ErrTransport         = errors.New("transport failure")
	ErrMalformedPayload  = errors.New("malformed payload")

	// ErrNoContent means the provider answered but had nothing usable.
	ErrNoContent = errors.New("no usable content")
)

const (
	OutcomeOK                = "ok"
	OutcomeMissingCredential = "missing_credential"
	OutcomeBadStatus         = "bad_status"
	OutcomeTransport         = "transport"
	OutcomeMalformed         = "malformed"
	OutcomeAbsent            = "absent"
)

// Outcome maps a fetch error to its metric label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrMissingCredential):
		return OutcomeMissingCredential
	case errors.Is(err, ErrUnexpectedStatus):
		return OutcomeBadStatus
	case errors.Is(err, ErrTransport):
		return OutcomeTransport
	case errors.Is(err, ErrMalformedPayload):
		return OutcomeMalformed
	default:
		return OutcomeAbsent
	}
}
