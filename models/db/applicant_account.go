package dbmodels

import (
	"fmt"
	"time"
)

type ApplicantAccount struct {
	BaseModel
	Email         string `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash  string `gorm:"type:varchar(128)"`
	FirstName     string `gorm:"type:varchar(150)"`
	LastName      string `gorm:"type:varchar(150)"`
	IsActive      bool
	EmailVerified bool
	LastLogin     time.Time
}

func (a ApplicantAccount) GetFullName() string {
	return fmt.Sprintf("%s %s", a.FirstName, a.LastName)
}
