package oauth2

// GrantType represents the OAuth 2.0 grant type used at the token endpoint.
// Determines what credentials are required to obtain tokens.
type GrantType string

const (
	// AuthorizationCodeGrant exchanges an authorization code for tokens.
	// Used in: Standard Authorization Code Flow
	// Token request includes: code, client_id, client_secret, redirect_uri
	// Requires: a prior interactive authorization step that yields the code
	AuthorizationCodeGrant GrantType = "authorization_code"

	// ClientCredentialsGrant allows machine-to-machine authentication.
	// Used in: Backend service authentication (no user context)
	// Token request includes: client_id, client_secret (header or body), scope
	// Example: Microservice calling another microservice
	ClientCredentialsGrant GrantType = "client_credentials"

	// RefreshTokenGrant exchanges a refresh token for new tokens.
	// Used in: Session extension without re-authentication
	// Token request includes: refresh_token, client_id, client_secret
	RefreshTokenGrant GrantType = "refresh_token"
)

// ResponseType represents the OAuth 2.0 response type.
// Determines what is returned from the authorization endpoint.
type ResponseType string

const (
	// CodeResponseType indicates the authorization code flow.
	// Returns an authorization code that must be exchanged for tokens at the token endpoint.
	// Example: /oauth/authorize?response_type=code&client_id=...
	CodeResponseType ResponseType = "code"
)

// Standard request and redirect parameter names per RFC 6749.
const (
	ParamGrantType        = "grant_type"
	ParamResponseType     = "response_type"
	ParamClientID         = "client_id"
	ParamClientSecret     = "client_secret"
	ParamRedirectURI      = "redirect_uri"
	ParamCode             = "code"
	ParamRefreshToken     = "refresh_token"
	ParamScope            = "scope"
	ParamState            = "state"
	ParamError            = "error"
	ParamErrorDescription = "error_description"
	ParamErrorURI         = "error_uri"
)

// Standard OAuth 2.0 error codes (RFC 6749 §4.1.2.1 and §5.2).
// Returned by servers in the `error` field of error responses and in the
// query string of error redirects.
const (
	ErrorCodeInvalidRequest          = "invalid_request"
	ErrorCodeUnauthorizedClient      = "unauthorized_client"
	ErrorCodeAccessDenied            = "access_denied"
	ErrorCodeUnsupportedResponseType = "unsupported_response_type"
	ErrorCodeUnsupportedGrantType    = "unsupported_grant_type"
	ErrorCodeInvalidScope            = "invalid_scope"
	ErrorCodeServerError             = "server_error"
	ErrorCodeTemporarilyUnavailable  = "temporarily_unavailable"
	ErrorCodeInvalidGrant            = "invalid_grant"
	ErrorCodeInvalidClient           = "invalid_client"
)
