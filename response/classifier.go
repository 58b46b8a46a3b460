package response

import (
	"fmt"

	"github.com/jrsteele09/go-oauth-client/oauth2"
)

// oauthFailureKinds maps the standard wire-level error codes to failure
// kinds. Matching is case-sensitive and exact per RFC 6749.
var oauthFailureKinds = map[string]FailureKind{
	oauth2.ErrorCodeInvalidRequest:          FailureInvalidRequest,
	oauth2.ErrorCodeUnauthorizedClient:      FailureUnauthorizedClient,
	oauth2.ErrorCodeAccessDenied:            FailureAccessDenied,
	oauth2.ErrorCodeUnsupportedResponseType: FailureUnsupportedResponseType,
	oauth2.ErrorCodeUnsupportedGrantType:    FailureUnsupportedGrantType,
	oauth2.ErrorCodeInvalidScope:            FailureInvalidScope,
	oauth2.ErrorCodeServerError:             FailureServerError,
	oauth2.ErrorCodeTemporarilyUnavailable:  FailureTemporarilyUnavailable,
	oauth2.ErrorCodeInvalidGrant:            FailureInvalidGrant,
	oauth2.ErrorCodeInvalidClient:           FailureInvalidClient,
}

// ClassifyError maps wire-level error data to a Failure. The mapping is
// total: codes outside the standard set classify as FailureUnknownError with
// the original code and description folded into the synthesized description,
// never a crash.
func ClassifyError(data ErrorData) *Failure {
	if kind, ok := oauthFailureKinds[data.Code]; ok {
		return &Failure{
			Kind:        kind,
			Description: data.Description,
		}
	}
	return &Failure{
		Kind:        FailureUnknownError,
		Code:        data.Code,
		Description: fmt.Sprintf("Unknown error: %s (%s)", data.Description, data.Code),
	}
}
