package response

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Structural decode errors. These never reach callers directly: Decode wraps
// them into a FailureUnexpectedServerResponse, keeping the public surface a
// classified Failure. They are exported so callers can inspect Failure.Err
// with errors.Is.
var (
	ErrInvalidUTF8       = errors.New("response body is not valid UTF-8")
	ErrMalformedJSON     = errors.New("response body is not valid JSON")
	ErrNotJSONObject     = errors.New("response body is not a JSON object")
	ErrMissingErrorField = errors.New("response is neither a token nor an error: no access_token or error field")
)

// Decode interprets raw response bytes as either a token payload or an OAuth
// error, and always returns a classified Response.
//
// Success is determined by payload shape (presence of access_token), not by
// HTTP status code: some servers return error bodies with non-400 statuses
// and vice versa. A body that cannot be interpreted either way yields a
// FailureUnexpectedServerResponse carrying statusCode and header.
func Decode(body []byte, statusCode int, header http.Header) Response {
	if !utf8.Valid(body) {
		return NewFailureResponse(NewUnexpectedServerResponseFailure(ErrInvalidUTF8, statusCode, header))
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		wrapped := errors.Wrapf(ErrMalformedJSON, "[Decode] %v", err)
		return NewFailureResponse(NewUnexpectedServerResponseFailure(wrapped, statusCode, header))
	}

	object, ok := parsed.(map[string]any)
	if !ok {
		return NewFailureResponse(NewUnexpectedServerResponseFailure(ErrNotJSONObject, statusCode, header))
	}

	if accessToken, ok := object["access_token"].(string); ok {
		return NewSuccessResponse(decodeAuthorizationData(accessToken, object))
	}

	errorCode, ok := object["error"].(string)
	if !ok {
		return NewFailureResponse(NewUnexpectedServerResponseFailure(ErrMissingErrorField, statusCode, header))
	}
	return NewFailureResponse(ClassifyError(decodeErrorData(errorCode, object)))
}

// decodeAuthorizationData extracts the optional fields permissively: absence
// is never an error once access_token is present.
func decodeAuthorizationData(accessToken string, object map[string]any) AuthorizationData {
	data := AuthorizationData{AccessToken: accessToken}
	if refreshToken, ok := object["refresh_token"].(string); ok {
		data.RefreshToken = &refreshToken
	}
	data.ExpiresIn = decodeExpiry(object)
	return data
}

// decodeExpiry accepts the expiry from either field name, numeric or numeric
// string. A numeric value wins over a string, expires_in wins over expires.
func decodeExpiry(object map[string]any) *int64 {
	for _, field := range []string{"expires_in", "expires"} {
		if number, ok := object[field].(float64); ok {
			seconds := int64(number)
			return &seconds
		}
	}
	for _, field := range []string{"expires_in", "expires"} {
		text, ok := object[field].(string)
		if !ok {
			continue
		}
		if seconds, err := strconv.ParseInt(text, 10, 64); err == nil {
			return &seconds
		}
	}
	return nil
}

func decodeErrorData(code string, object map[string]any) ErrorData {
	data := ErrorData{Code: code}
	if description, ok := object["error_description"].(string); ok {
		data.Description = percentDecoded(description)
	}
	if rawURI, ok := object["error_uri"].(string); ok {
		if uri, err := url.Parse(rawURI); err == nil {
			data.URI = uri
		}
	}
	return data
}

// percentDecoded unescapes %XX sequences and treats + as space, matching the
// query-string convention some servers apply to error descriptions. A string
// that fails to unescape is kept verbatim.
func percentDecoded(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
