package response

import (
	"fmt"
	"net/http"
)

// FailureKind is the closed set of classified authorization failures. One
// kind exists per standard OAuth error code, plus two structural kinds for
// outcomes that never reached a well-formed OAuth error, plus a fallback for
// codes this package does not know.
type FailureKind string

const (
	// FailureMissingRedirectParameters: the redirect URI carried neither a
	// code nor an error in its query string.
	FailureMissingRedirectParameters FailureKind = "missing_parameters_in_redirection_uri"

	// FailureUnexpectedServerResponse: the response (or the interactive
	// step) could not be interpreted as either a token or an OAuth error.
	// Carries the raw HTTP metadata and the underlying error for diagnostics.
	FailureUnexpectedServerResponse FailureKind = "unexpected_server_response"

	FailureInvalidRequest          FailureKind = "invalid_request"
	FailureUnauthorizedClient      FailureKind = "unauthorized_client"
	FailureAccessDenied            FailureKind = "access_denied"
	FailureUnsupportedResponseType FailureKind = "unsupported_response_type"
	FailureUnsupportedGrantType    FailureKind = "unsupported_grant_type"
	FailureInvalidScope            FailureKind = "invalid_scope"
	FailureServerError             FailureKind = "server_error"
	FailureTemporarilyUnavailable  FailureKind = "temporarily_unavailable"
	FailureInvalidGrant            FailureKind = "invalid_grant"
	FailureInvalidClient           FailureKind = "invalid_client"

	// FailureUnknownError: the server sent an error code outside the
	// standard set. The raw code is preserved in Code.
	FailureUnknownError FailureKind = "unknown_error"
)

// Failure is the terminal error surface delivered to callers. Every failure
// path of a flow resolves to exactly one Failure; raw transport and decode
// errors never escape unclassified.
type Failure struct {
	// Kind classifies the failure.
	Kind FailureKind

	// Description is the server's human-readable explanation, percent-decoded.
	// Optional for the OAuth kinds; synthesized for FailureUnknownError.
	Description string

	// Code is the raw wire-level error code. Set for FailureUnknownError so
	// diagnostics survive classification.
	Code string

	// StatusCode and Header carry the raw HTTP response metadata.
	// Set only for FailureUnexpectedServerResponse.
	StatusCode int
	Header     http.Header

	// Err is the underlying transport or decode error.
	// Set only for FailureUnexpectedServerResponse.
	Err error
}

var _ error = (*Failure)(nil)

// Error implements the error interface.
func (f *Failure) Error() string {
	switch {
	case f.Kind == FailureUnexpectedServerResponse && f.Err != nil:
		return fmt.Sprintf("authorization failed: %s: %s", f.Kind, f.Err)
	case f.Description != "":
		return fmt.Sprintf("authorization failed: %s: %s", f.Kind, f.Description)
	default:
		return fmt.Sprintf("authorization failed: %s", f.Kind)
	}
}

// Unwrap exposes the underlying error of structural failures to errors.Is
// and errors.As.
func (f *Failure) Unwrap() error {
	return f.Err
}

// NewMissingRedirectParametersFailure reports a redirect URI that carried
// neither a code nor an error.
func NewMissingRedirectParametersFailure() *Failure {
	return &Failure{Kind: FailureMissingRedirectParameters}
}

// NewUnexpectedServerResponseFailure wraps a transport or decode error,
// preserving whatever HTTP metadata was available.
func NewUnexpectedServerResponseFailure(err error, statusCode int, header http.Header) *Failure {
	return &Failure{
		Kind:       FailureUnexpectedServerResponse,
		StatusCode: statusCode,
		Header:     header,
		Err:        err,
	}
}
