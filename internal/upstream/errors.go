package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingAPIKey short-circuits any provider call that requires the ORS
// credential when it is not configured. The message is surfaced verbatim
// to the caller.
var ErrMissingAPIKey = errors.New("ORS_API_KEY não configurada no .env")

// TransportError wraps a network-level failure talking to a provider,
// including retries that never produced a response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports a provider response body that was not valid JSON. Raw
// carries the body so it can be passed along for diagnosis.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string { return "upstream response is not valid JSON" }

// StatusError reports a non-success provider status after retries were
// exhausted. Detail carries the provider's decoded body for passthrough.
type StatusError struct {
	Status int
	Detail json.RawMessage
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Status)
}
