package user

import (
	"strings"

	"github.com/jacwu/toy-store/internal/domain"
)

// CredentialsInput holds a username and password for registration or login.
type CredentialsInput struct {
	Username string
	Password string
}

// Validate requires both fields to be non-blank.
func (i CredentialsInput) Validate() error {
	if strings.TrimSpace(i.Username) == "" || strings.TrimSpace(i.Password) == "" {
		return domain.ErrMissingCredentials
	}
	return nil
}
