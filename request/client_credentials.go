package request

import (
	"encoding/base64"
	"fmt"
	"net/url"

	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/pkg/errors"
)

// CredentialsPlacement selects how a client-credentials request transmits its
// credentials. Exactly one placement is active per request.
type CredentialsPlacement string

const (
	// CredentialsInHeader sends credentials as an HTTP Basic Authorization
	// header: "Basic " + base64(clientID:clientSecret).
	CredentialsInHeader CredentialsPlacement = "header"

	// CredentialsInBody sends client_id and client_secret as request
	// parameters instead of a header.
	CredentialsInBody CredentialsPlacement = "body"
)

// ClientCredentialsRequest describes one client-credentials grant attempt
// (machine-to-machine, no user context). Its token-issuing endpoint is
// exposed as the authorization URL; there is no separate token URL.
type ClientCredentialsRequest struct {
	authorizationURL *url.URL

	// ClientID identifies the OAuth2 client making the request.
	ClientID string

	// ClientSecret is the client's secret credential.
	// Security: Never log or expose this value
	ClientSecret string

	// Placement selects header vs. body credential transmission.
	Placement CredentialsPlacement

	// Scope is the space-separated list of requested permissions. Optional.
	Scope string
}

var _ Request = (*ClientCredentialsRequest)(nil)

// ClientCredentialsOption modifies a ClientCredentialsRequest at construction.
type ClientCredentialsOption func(*ClientCredentialsRequest)

// WithClientCredentialsScope sets the requested scope.
func WithClientCredentialsScope(scope string) ClientCredentialsOption {
	return func(r *ClientCredentialsRequest) {
		r.Scope = scope
	}
}

// NewClientCredentialsRequest validates the token-issuing URL and the
// credential placement, and builds the request.
func NewClientCredentialsRequest(tokenIssuingURL, clientID, clientSecret string, placement CredentialsPlacement, options ...ClientCredentialsOption) (*ClientCredentialsRequest, error) {
	u, err := parseAbsoluteURL("token-issuing URL", tokenIssuingURL)
	if err != nil {
		return nil, errors.Wrap(err, "[NewClientCredentialsRequest]")
	}
	switch placement {
	case CredentialsInHeader, CredentialsInBody:
	default:
		return nil, errors.Errorf("[NewClientCredentialsRequest] unknown credentials placement %q", placement)
	}

	req := &ClientCredentialsRequest{
		authorizationURL: u,
		ClientID:         clientID,
		ClientSecret:     clientSecret,
		Placement:        placement,
	}
	for _, opt := range options {
		opt(req)
	}
	return req, nil
}

// GrantType implements Request.
func (r *ClientCredentialsRequest) GrantType() oauth2.GrantType {
	return oauth2.ClientCredentialsGrant
}

// AuthorizationURL implements Request, returning the token-issuing endpoint.
func (r *ClientCredentialsRequest) AuthorizationURL() *url.URL {
	return r.authorizationURL
}

// TokenURL implements Request. Always nil for this grant.
func (r *ClientCredentialsRequest) TokenURL() *url.URL {
	return nil
}

// Headers implements Request. In header placement the credentials travel as
// an HTTP Basic Authorization header.
func (r *ClientCredentialsRequest) Headers() map[string]string {
	if r.Placement != CredentialsInHeader {
		return map[string]string{}
	}
	credentials := base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", r.ClientID, r.ClientSecret)))
	return map[string]string{"Authorization": "Basic " + credentials}
}

// Parameters implements Request. Both placements set grant_type; only body
// placement adds the credentials as parameters.
func (r *ClientCredentialsRequest) Parameters() map[string]string {
	params := map[string]string{
		oauth2.ParamGrantType: string(oauth2.ClientCredentialsGrant),
	}
	if r.Placement == CredentialsInBody {
		params[oauth2.ParamClientID] = r.ClientID
		params[oauth2.ParamClientSecret] = r.ClientSecret
	}
	setIfNotEmpty(params, oauth2.ParamScope, r.Scope)
	return params
}

func (r *ClientCredentialsRequest) sealed() {}
