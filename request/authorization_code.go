package request

import (
	"net/url"

	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/pkg/errors"
)

// AuthorizationCodeRequest describes one authorization-code grant attempt.
// The flow first sends the user to the authorization endpoint and then
// exchanges the returned code at the token endpoint.
type AuthorizationCodeRequest struct {
	authorizationURL *url.URL
	tokenURL         *url.URL

	// ClientID identifies the OAuth2 client making the request.
	// Required: Yes
	// Example: "web-app-client"
	ClientID string

	// ClientSecret is the secret credential for confidential clients.
	// Required: Yes for confidential clients
	// Security: Never log or expose this value
	ClientSecret string

	// RedirectURL is where the authorization server sends the user back,
	// carrying either a `code` or an `error` in its query string.
	// Security: Must exactly match a URI pre-registered with the server
	RedirectURL *url.URL

	// Scope is the space-separated list of requested permissions.
	// Required: No
	// Example: "openid profile email"
	Scope string

	// State is an opaque value echoed back in the redirect.
	// Required: Recommended (CSRF protection); see RandomState
	State string
}

var _ Request = (*AuthorizationCodeRequest)(nil)

// AuthorizationCodeOption modifies an AuthorizationCodeRequest at construction.
type AuthorizationCodeOption func(*AuthorizationCodeRequest)

// WithScope sets the requested scope.
func WithScope(scope string) AuthorizationCodeOption {
	return func(r *AuthorizationCodeRequest) {
		r.Scope = scope
	}
}

// WithState sets the CSRF state parameter.
func WithState(state string) AuthorizationCodeOption {
	return func(r *AuthorizationCodeRequest) {
		r.State = state
	}
}

// NewAuthorizationCodeRequest validates the three URLs and builds the request.
// An unparsable or relative URL is a construction error, never deferred to
// flow execution.
func NewAuthorizationCodeRequest(authorizationURL, tokenURL, clientID, clientSecret, redirectURL string, options ...AuthorizationCodeOption) (*AuthorizationCodeRequest, error) {
	authURL, err := parseAbsoluteURL("authorization URL", authorizationURL)
	if err != nil {
		return nil, errors.Wrap(err, "[NewAuthorizationCodeRequest]")
	}
	tokURL, err := parseAbsoluteURL("token URL", tokenURL)
	if err != nil {
		return nil, errors.Wrap(err, "[NewAuthorizationCodeRequest]")
	}
	redirURL, err := parseAbsoluteURL("redirect URL", redirectURL)
	if err != nil {
		return nil, errors.Wrap(err, "[NewAuthorizationCodeRequest]")
	}

	req := &AuthorizationCodeRequest{
		authorizationURL: authURL,
		tokenURL:         tokURL,
		ClientID:         clientID,
		ClientSecret:     clientSecret,
		RedirectURL:      redirURL,
	}
	for _, opt := range options {
		opt(req)
	}
	return req, nil
}

// GrantType implements Request.
func (r *AuthorizationCodeRequest) GrantType() oauth2.GrantType {
	return oauth2.AuthorizationCodeGrant
}

// AuthorizationURL implements Request.
func (r *AuthorizationCodeRequest) AuthorizationURL() *url.URL {
	return r.authorizationURL
}

// TokenURL implements Request.
func (r *AuthorizationCodeRequest) TokenURL() *url.URL {
	return r.tokenURL
}

// Headers implements Request. The authorization-code grant carries its
// credentials as parameters, not headers.
func (r *AuthorizationCodeRequest) Headers() map[string]string {
	return map[string]string{}
}

// Parameters implements Request, returning the authorization-step parameters
// sent to the authorization endpoint.
func (r *AuthorizationCodeRequest) Parameters() map[string]string {
	params := map[string]string{
		oauth2.ParamClientID:     r.ClientID,
		oauth2.ParamRedirectURI:  r.RedirectURL.String(),
		oauth2.ParamResponseType: string(oauth2.CodeResponseType),
	}
	setIfNotEmpty(params, oauth2.ParamScope, r.Scope)
	setIfNotEmpty(params, oauth2.ParamState, r.State)
	return params
}

// TokenExchangeParameters returns the parameters for the second step, trading
// the authorization code for tokens at the token endpoint.
func (r *AuthorizationCodeRequest) TokenExchangeParameters(code string) map[string]string {
	return map[string]string{
		oauth2.ParamGrantType:    string(oauth2.AuthorizationCodeGrant),
		oauth2.ParamCode:         code,
		oauth2.ParamRedirectURI:  r.RedirectURL.String(),
		oauth2.ParamClientID:     r.ClientID,
		oauth2.ParamClientSecret: r.ClientSecret,
	}
}

func (r *AuthorizationCodeRequest) sealed() {}
