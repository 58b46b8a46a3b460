package request_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/jrsteele09/go-oauth-client/request"
	"github.com/stretchr/testify/require"
)

const (
	testAuthorizationURL = "https://auth.example.com/oauth/authorize"
	testTokenURL         = "https://auth.example.com/oauth/token"
	testClientID         = "test-client-1"
	testClientSecret     = "test-secret-1"
	testRedirectURL      = "https://client.example.com/callback"
	testScope            = "openid profile"
	testState            = "random-state-value"
)

func TestNewAuthorizationCodeRequest(t *testing.T) {
	t.Run("valid URLs construct", func(t *testing.T) {
		req, err := request.NewAuthorizationCodeRequest(testAuthorizationURL, testTokenURL, testClientID, testClientSecret, testRedirectURL)
		require.NoError(t, err)
		require.Equal(t, oauth2.AuthorizationCodeGrant, req.GrantType())
		require.Equal(t, testAuthorizationURL, req.AuthorizationURL().String())
		require.Equal(t, testTokenURL, req.TokenURL().String())
	})

	t.Run("relative authorization URL fails", func(t *testing.T) {
		_, err := request.NewAuthorizationCodeRequest("/oauth/authorize", testTokenURL, testClientID, testClientSecret, testRedirectURL)
		require.Error(t, err)
	})

	t.Run("unparsable token URL fails", func(t *testing.T) {
		_, err := request.NewAuthorizationCodeRequest(testAuthorizationURL, "https://auth.example.com/%zz", testClientID, testClientSecret, testRedirectURL)
		require.Error(t, err)
	})

	t.Run("invalid redirect URL fails", func(t *testing.T) {
		_, err := request.NewAuthorizationCodeRequest(testAuthorizationURL, testTokenURL, testClientID, testClientSecret, "not a url")
		require.Error(t, err)
	})

	t.Run("authorization parameters", func(t *testing.T) {
		req, err := request.NewAuthorizationCodeRequest(testAuthorizationURL, testTokenURL, testClientID, testClientSecret, testRedirectURL,
			request.WithScope(testScope), request.WithState(testState))
		require.NoError(t, err)

		params := req.Parameters()
		require.Equal(t, testClientID, params[oauth2.ParamClientID])
		require.Equal(t, testRedirectURL, params[oauth2.ParamRedirectURI])
		require.Equal(t, string(oauth2.CodeResponseType), params[oauth2.ParamResponseType])
		require.Equal(t, testScope, params[oauth2.ParamScope])
		require.Equal(t, testState, params[oauth2.ParamState])
		require.Empty(t, req.Headers())
	})

	t.Run("optional parameters omitted when unset", func(t *testing.T) {
		req, err := request.NewAuthorizationCodeRequest(testAuthorizationURL, testTokenURL, testClientID, testClientSecret, testRedirectURL)
		require.NoError(t, err)

		params := req.Parameters()
		require.NotContains(t, params, oauth2.ParamScope)
		require.NotContains(t, params, oauth2.ParamState)
	})

	t.Run("token exchange parameters", func(t *testing.T) {
		req, err := request.NewAuthorizationCodeRequest(testAuthorizationURL, testTokenURL, testClientID, testClientSecret, testRedirectURL)
		require.NoError(t, err)

		params := req.TokenExchangeParameters("abc123")
		require.Equal(t, map[string]string{
			oauth2.ParamGrantType:    "authorization_code",
			oauth2.ParamCode:         "abc123",
			oauth2.ParamRedirectURI:  testRedirectURL,
			oauth2.ParamClientID:     testClientID,
			oauth2.ParamClientSecret: testClientSecret,
		}, params)
	})
}

func TestNewClientCredentialsRequest(t *testing.T) {
	t.Run("header placement sets Basic auth and no credential parameters", func(t *testing.T) {
		req, err := request.NewClientCredentialsRequest(testTokenURL, testClientID, testClientSecret, request.CredentialsInHeader)
		require.NoError(t, err)

		expected := "Basic " + base64.StdEncoding.EncodeToString([]byte(testClientID+":"+testClientSecret))
		require.Equal(t, expected, req.Headers()["Authorization"])

		params := req.Parameters()
		require.Equal(t, "client_credentials", params[oauth2.ParamGrantType])
		require.NotContains(t, params, oauth2.ParamClientID)
		require.NotContains(t, params, oauth2.ParamClientSecret)
	})

	t.Run("body placement sets credential parameters and no header", func(t *testing.T) {
		req, err := request.NewClientCredentialsRequest(testTokenURL, testClientID, testClientSecret, request.CredentialsInBody)
		require.NoError(t, err)
		require.Empty(t, req.Headers())

		params := req.Parameters()
		require.Equal(t, "client_credentials", params[oauth2.ParamGrantType])
		require.Equal(t, testClientID, params[oauth2.ParamClientID])
		require.Equal(t, testClientSecret, params[oauth2.ParamClientSecret])
	})

	t.Run("scope option", func(t *testing.T) {
		req, err := request.NewClientCredentialsRequest(testTokenURL, testClientID, testClientSecret, request.CredentialsInHeader,
			request.WithClientCredentialsScope(testScope))
		require.NoError(t, err)
		require.Equal(t, testScope, req.Parameters()[oauth2.ParamScope])
	})

	t.Run("unknown placement fails", func(t *testing.T) {
		_, err := request.NewClientCredentialsRequest(testTokenURL, testClientID, testClientSecret, "carrier-pigeon")
		require.Error(t, err)
	})

	t.Run("token-issuing endpoint exposed as authorization URL", func(t *testing.T) {
		req, err := request.NewClientCredentialsRequest(testTokenURL, testClientID, testClientSecret, request.CredentialsInHeader)
		require.NoError(t, err)
		require.Equal(t, testTokenURL, req.AuthorizationURL().String())
		require.Nil(t, req.TokenURL())
	})
}

func TestNewRefreshTokenRequest(t *testing.T) {
	t.Run("parameters", func(t *testing.T) {
		req, err := request.NewRefreshTokenRequest(testTokenURL, testClientID, testClientSecret, "tGzv3JOkF0XG5Qx2TlKWIA")
		require.NoError(t, err)
		require.Equal(t, oauth2.RefreshTokenGrant, req.GrantType())
		require.Nil(t, req.AuthorizationURL())
		require.Equal(t, testTokenURL, req.TokenURL().String())

		params := req.Parameters()
		require.Equal(t, "refresh_token", params[oauth2.ParamGrantType])
		require.Equal(t, "tGzv3JOkF0XG5Qx2TlKWIA", params[oauth2.ParamRefreshToken])
		require.Equal(t, testClientID, params[oauth2.ParamClientID])
		require.Equal(t, testClientSecret, params[oauth2.ParamClientSecret])
	})

	t.Run("invalid token URL fails", func(t *testing.T) {
		_, err := request.NewRefreshTokenRequest("token", testClientID, testClientSecret, "tok")
		require.Error(t, err)
	})
}

func TestNewHTTPRequest(t *testing.T) {
	t.Run("appends to existing query and sets headers", func(t *testing.T) {
		req, err := request.NewClientCredentialsRequest(testTokenURL+"?tenant=acme", testClientID, testClientSecret, request.CredentialsInHeader)
		require.NoError(t, err)

		httpReq, err := request.NewHTTPRequest(context.Background(), req.AuthorizationURL(), req.Headers(), req.Parameters())
		require.NoError(t, err)
		require.Equal(t, http.MethodPost, httpReq.Method)

		query := httpReq.URL.Query()
		require.Equal(t, "acme", query.Get("tenant"))
		require.Equal(t, "client_credentials", query.Get(oauth2.ParamGrantType))
		require.Equal(t, "Basic "+base64.StdEncoding.EncodeToString([]byte(testClientID+":"+testClientSecret)), httpReq.Header.Get("Authorization"))
	})

	t.Run("headers overwrite same-named header", func(t *testing.T) {
		req, err := request.NewClientCredentialsRequest(testTokenURL, testClientID, testClientSecret, request.CredentialsInHeader)
		require.NoError(t, err)

		httpReq, err := request.NewHTTPRequest(context.Background(), req.AuthorizationURL(), req.Headers(), nil)
		require.NoError(t, err)
		require.Len(t, httpReq.Header.Values("Authorization"), 1)
	})

	t.Run("nil target fails", func(t *testing.T) {
		_, err := request.NewHTTPRequest(context.Background(), nil, nil, nil)
		require.Error(t, err)
	})
}

func TestRandomState(t *testing.T) {
	first := request.RandomState()
	second := request.RandomState()
	require.NotEmpty(t, first)
	require.NotEqual(t, first, second)
}
