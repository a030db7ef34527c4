package api

import "fmt"

// TransportError wraps a network-level failure: DNS, refused connection,
// broken pipe. There is no HTTP response behind it.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("transport: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// AuthError reports a request the server rejected as unauthenticated or
// unauthorized. Payload carries the server's body verbatim for diagnostics.
type AuthError struct {
	Status  int
	Payload string
}

func (e *AuthError) Error() string {
	if e.Payload == "" {
		return fmt.Sprintf("not authorized (status %d)", e.Status)
	}
	return fmt.Sprintf("not authorized (status %d): %s", e.Status, e.Payload)
}

// ServerError reports any other non-2xx response. Payload carries the
// server's body verbatim.
type ServerError struct {
	Status  int
	Payload string
}

func (e *ServerError) Error() string {
	if e.Payload == "" {
		return fmt.Sprintf("server error (status %d)", e.Status)
	}
	return fmt.Sprintf("server error (status %d): %s", e.Status, e.Payload)
}

// Err converts a non-OK response into a typed error value, nil when OK.
// 401/403 map to AuthError, everything else to ServerError.
func (r Response) Err() error {
	if r.OK {
		return nil
	}
	payload := string(r.raw)
	if r.Status == 401 || r.Status == 403 {
		return &AuthError{Status: r.Status, Payload: payload}
	}
	return &ServerError{Status: r.Status, Payload: payload}
}
