package models

type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleHRManager UserRole = "hr_manager"
	UserRoleHRStaff   UserRole = "hr_staff"
)

var roleHumanName = map[UserRole]string{
	UserRoleAdmin:     "Administrator",
	UserRoleHRManager: "HR manager",
	UserRoleHRStaff:   "HR staff",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

// PrincipalType discriminates the two account kinds carried in session tokens.
type PrincipalType string

const (
	PrincipalHRUser    PrincipalType = "hr_user"
	PrincipalApplicant PrincipalType = "applicant"
)

// TokenPurpose keeps session tokens and email-verification tokens from being
// interchangeable.
type TokenPurpose string

const (
	TokenPurposeSession           TokenPurpose = "session"
	TokenPurposeEmailVerification TokenPurpose = "email_verification"
)

const SystemUser = "system"
