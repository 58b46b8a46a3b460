package request

import "github.com/google/uuid"

// RandomState generates an opaque value for the state parameter. Clients
// should verify the redirect echoes it back to detect CSRF.
func RandomState() string {
	return uuid.NewString()
}
