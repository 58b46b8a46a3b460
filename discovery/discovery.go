// Package discovery resolves an OIDC issuer's authorization and token
// endpoints from its discovery document, so callers can build grant requests
// from just an issuer URL.
package discovery

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/jrsteele09/go-oauth-client/request"
	"github.com/pkg/errors"
	xoauth2 "golang.org/x/oauth2"
)

// Endpoints fetches issuer's /.well-known/openid-configuration and returns
// its authorization and token endpoints. The HTTP client is taken from ctx
// via oidc.ClientContext, or http.DefaultClient otherwise.
func Endpoints(ctx context.Context, issuer string) (xoauth2.Endpoint, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return xoauth2.Endpoint{}, errors.Wrap(err, "[Endpoints] oidc.NewProvider")
	}
	return provider.Endpoint(), nil
}

// NewAuthorizationCodeRequest builds an authorization-code request whose
// endpoints come from the issuer's discovery document.
func NewAuthorizationCodeRequest(ctx context.Context, issuer, clientID, clientSecret, redirectURL string, options ...request.AuthorizationCodeOption) (*request.AuthorizationCodeRequest, error) {
	endpoint, err := Endpoints(ctx, issuer)
	if err != nil {
		return nil, errors.Wrap(err, "[NewAuthorizationCodeRequest]")
	}
	return request.NewAuthorizationCodeRequest(endpoint.AuthURL, endpoint.TokenURL, clientID, clientSecret, redirectURL, options...)
}
