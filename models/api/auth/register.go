package authapimodels

import (
	"net/mail"
	"strings"

	"github.com/pkg/errors"
)

const (
	minPasswordLen = 6
	minNameLen     = 2
)

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r RegisterRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("email has an invalid format")
	}
	if len(r.Password) < minPasswordLen {
		return errors.Errorf("password must be at least %d characters", minPasswordLen)
	}
	if len(strings.TrimSpace(r.FirstName)) < minNameLen {
		return errors.Errorf("first name must be at least %d characters", minNameLen)
	}
	if len(strings.TrimSpace(r.LastName)) < minNameLen {
		return errors.Errorf("last name must be at least %d characters", minNameLen)
	}
	return nil
}
