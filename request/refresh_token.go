package request

import (
	"net/url"

	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/pkg/errors"
)

// RefreshTokenRequest describes one refresh-token grant attempt, trading a
// previously issued refresh token for a new access token.
type RefreshTokenRequest struct {
	tokenURL *url.URL

	// ClientID identifies the OAuth2 client making the request.
	ClientID string

	// ClientSecret is the client's secret credential.
	// Security: Never log or expose this value
	ClientSecret string

	// RefreshToken is the token being exchanged.
	// Behavior: Typically rotated - old refresh token invalidated, new one issued
	RefreshToken string
}

var _ Request = (*RefreshTokenRequest)(nil)

// NewRefreshTokenRequest validates the token URL and builds the request.
func NewRefreshTokenRequest(tokenURL, clientID, clientSecret, refreshToken string) (*RefreshTokenRequest, error) {
	u, err := parseAbsoluteURL("token URL", tokenURL)
	if err != nil {
		return nil, errors.Wrap(err, "[NewRefreshTokenRequest]")
	}
	return &RefreshTokenRequest{
		tokenURL:     u,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RefreshToken: refreshToken,
	}, nil
}

// GrantType implements Request.
func (r *RefreshTokenRequest) GrantType() oauth2.GrantType {
	return oauth2.RefreshTokenGrant
}

// AuthorizationURL implements Request. Always nil: refreshing needs no
// interactive step.
func (r *RefreshTokenRequest) AuthorizationURL() *url.URL {
	return nil
}

// TokenURL implements Request.
func (r *RefreshTokenRequest) TokenURL() *url.URL {
	return r.tokenURL
}

// Headers implements Request.
func (r *RefreshTokenRequest) Headers() map[string]string {
	return map[string]string{}
}

// Parameters implements Request.
func (r *RefreshTokenRequest) Parameters() map[string]string {
	return map[string]string{
		oauth2.ParamGrantType:    string(oauth2.RefreshTokenGrant),
		oauth2.ParamRefreshToken: r.RefreshToken,
		oauth2.ParamClientID:     r.ClientID,
		oauth2.ParamClientSecret: r.ClientSecret,
	}
}

func (r *RefreshTokenRequest) sealed() {}
