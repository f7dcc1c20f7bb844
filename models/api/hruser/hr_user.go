package hruserapimodels

import (
	"net/mail"
	"strings"
	"time"

	"github.com/pkg/errors"

	"ats-backend/models"
)

type InviteRequest struct {
	Email      string          `json:"email"`
	Role       models.UserRole `json:"role"`
	Department string          `json:"department"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
}

func (r InviteRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("email has an invalid format")
	}
	if !r.Role.IsValid() {
		return errors.New("unknown role")
	}
	return nil
}

type CompleteSetupRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (r CompleteSetupRequest) Validate() error {
	if strings.TrimSpace(r.Token) == "" {
		return errors.New("invitation token is required")
	}
	if len(r.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

type HRUser struct {
	ID            string          `json:"id"`
	Email         string          `json:"email"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Department    string          `json:"department"`
	Role          models.UserRole `json:"role"`
	RoleName      string          `json:"role_name"`
	IsActive      bool            `json:"is_active"`
	EmailVerified bool            `json:"email_verified"`
	PasswordSet   bool            `json:"password_set"`
	SetupComplete bool            `json:"setup_complete"`
	CreatedAt     time.Time       `json:"created_at"`
}
