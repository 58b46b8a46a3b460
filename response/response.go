// Package response decodes raw OAuth 2.0 token-endpoint responses into either
// successful credential data or a classified authorization failure. Decoding
// is independent of how the request was made: it takes bytes, a status code
// and headers, and always yields a classified result.
package response

import (
	"net/url"
	"time"

	"github.com/jrsteele09/go-oauth-client/internal/utils"
	xoauth2 "golang.org/x/oauth2"
)

// Response is the terminal outcome of one flow attempt. Exactly one of Data
// and Failure is set.
type Response struct {
	// Data holds the credentials on success.
	Data *AuthorizationData

	// Failure holds the classified failure otherwise.
	Failure *Failure
}

// Succeeded reports whether the attempt produced credentials.
func (r Response) Succeeded() bool {
	return r.Data != nil
}

// NewSuccessResponse wraps credential data in a Response.
func NewSuccessResponse(data AuthorizationData) Response {
	return Response{Data: &data}
}

// NewFailureResponse wraps a classified failure in a Response.
func NewFailureResponse(failure *Failure) Response {
	return Response{Failure: failure}
}

// AuthorizationData is the success payload of a token exchange.
type AuthorizationData struct {
	// AccessToken is the token used to access protected resources.
	// Usage: Include in Authorization header: "Bearer <access_token>"
	AccessToken string

	// RefreshToken is an opaque token used to obtain new access tokens.
	// Only present when the server issues one.
	RefreshToken *string

	// ExpiresIn is the lifetime in seconds of the access token. Servers
	// report it as `expires_in` or `expires`, numeric or numeric string;
	// absent when the server omits both.
	ExpiresIn *int64
}

// Token converts the data to an x/oauth2 token so credentials plug into the
// wider golang.org/x/oauth2 ecosystem.
func (d AuthorizationData) Token() *xoauth2.Token {
	token := &xoauth2.Token{
		AccessToken:  d.AccessToken,
		TokenType:    "Bearer",
		RefreshToken: utils.Value(d.RefreshToken),
	}
	if d.ExpiresIn != nil {
		token.Expiry = time.Now().Add(time.Duration(*d.ExpiresIn) * time.Second)
	}
	return token
}

// ErrorData is the wire-level decode of an OAuth error response, used only as
// an intermediate before classification into a Failure.
type ErrorData struct {
	// Code is the required `error` field.
	Code string

	// Description is the optional `error_description`, percent-decoded.
	Description string

	// URI is the optional `error_uri`, present only when it parses as a URL.
	URI *url.URL
}
