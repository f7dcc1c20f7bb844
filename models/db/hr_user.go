package dbmodels

import (
	"fmt"
	"time"

	"ats-backend/models"
	hruserapimodels "ats-backend/models/api/hruser"
)

type HRUser struct {
	BaseModel
	Email         string          `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash  string          `gorm:"type:varchar(128)"`
	FirstName     string          `gorm:"type:varchar(150)"`
	LastName      string          `gorm:"type:varchar(150)"`
	Department    string          `gorm:"type:varchar(150)"`
	Role          models.UserRole `gorm:"type:varchar(50)"`
	IsActive      bool
	EmailVerified bool
	PasswordSet   bool
	InviteToken   string `gorm:"type:varchar(64);index"`
	InviteExpires time.Time
	LastLogin     time.Time
}

// SetupComplete reports whether the invitation flow has been finished; a
// completed invite token must never be accepted again.
func (u HRUser) SetupComplete() bool {
	return u.EmailVerified && u.PasswordSet
}

func (u HRUser) GetFullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

func (u HRUser) ToModel() hruserapimodels.HRUser {
	return hruserapimodels.HRUser{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Department:    u.Department,
		Role:          u.Role,
		RoleName:      u.Role.ToHuman(),
		IsActive:      u.IsActive,
		EmailVerified: u.EmailVerified,
		PasswordSet:   u.PasswordSet,
		SetupComplete: u.SetupComplete(),
		CreatedAt:     u.CreatedAt,
	}
}
