package authhandler

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"ats-backend/db"
	applicantaccountstore "ats-backend/lib/applicant-account/store"
	hruserstore "ats-backend/lib/hr-users/store"
	"ats-backend/lib/notify"
	authutils "ats-backend/lib/utils/auth-utils"
	"ats-backend/lib/utils/helpers"
	"ats-backend/models"
	authapimodels "ats-backend/models/api/auth"
	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Login(email, password string) (resp authapimodels.LoginResponse, err error)
	RegisterApplicant(req authapimodels.RegisterRequest) error
	VerifyEmail(token string) (result VerifyResult, err error)
	Me(userID string, principal models.PrincipalType) (authapimodels.SessionUser, error)
}

// VerifyResult reports a verification outcome; calling twice with the same
// token is not an error.
type VerifyResult struct {
	AlreadyVerified bool
	SessionToken    string
	Email           string
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		hrUserStore:           hruserstore.NewInstance(db.DB),
		applicantAccountStore: applicantaccountstore.NewInstance(db.DB),
	}
}

type impl struct {
	hrUserStore           hruserstore.Provider
	applicantAccountStore applicantaccountstore.Provider
}

// Login authenticates either principal kind by email. HR users are checked
// first, applicant accounts after.
func (i impl) Login(email, password string) (resp authapimodels.LoginResponse, err error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hrUser, err := i.hrUserStore.FindByEmail(email)
	if err != nil {
		return resp, err
	}
	if hrUser != nil {
		return i.loginHRUser(*hrUser, password)
	}

	account, err := i.applicantAccountStore.FindByEmail(email)
	if err != nil {
		return resp, err
	}
	if account != nil {
		return i.loginApplicant(*account, password)
	}
	return resp, ErrInvalidCredentials
}

// Setup state is reported before the password is checked: an invited user who
// never finished setup has no password to get right.
func (i impl) loginHRUser(user dbmodels.HRUser, password string) (resp authapimodels.LoginResponse, err error) {
	if !user.SetupComplete() {
		return resp, ErrSetupIncomplete
	}
	if !authutils.CheckPassword(user.PasswordHash, password) {
		return resp, ErrInvalidCredentials
	}
	if !user.IsActive {
		return resp, ErrAccountInactive
	}
	token, err := authutils.GetSessionToken(user.ID, user.Email, user.GetFullName(), models.PrincipalHRUser, user.Role)
	if err != nil {
		return resp, err
	}
	if err = i.hrUserStore.TouchLastLogin(user.ID); err != nil {
		log.WithError(err).WithField("user_id", user.ID).Error("failed to stamp last login")
	}
	return authapimodels.LoginResponse{
		Token: token,
		User: authapimodels.SessionUser{
			ID:            user.ID,
			Email:         user.Email,
			Name:          user.GetFullName(),
			Role:          user.Role,
			PrincipalType: models.PrincipalHRUser,
		},
	}, nil
}

func (i impl) loginApplicant(account dbmodels.ApplicantAccount, password string) (resp authapimodels.LoginResponse, err error) {
	if !account.EmailVerified {
		return resp, ErrSetupIncomplete
	}
	if !authutils.CheckPassword(account.PasswordHash, password) {
		return resp, ErrInvalidCredentials
	}
	if !account.IsActive {
		return resp, ErrAccountInactive
	}
	token, err := authutils.GetSessionToken(account.ID, account.Email, account.GetFullName(), models.PrincipalApplicant, "")
	if err != nil {
		return resp, err
	}
	if err = i.applicantAccountStore.TouchLastLogin(account.ID); err != nil {
		log.WithError(err).WithField("account_id", account.ID).Error("failed to stamp last login")
	}
	return authapimodels.LoginResponse{
		Token: token,
		User: authapimodels.SessionUser{
			ID:            account.ID,
			Email:         account.Email,
			Name:          account.GetFullName(),
			PrincipalType: models.PrincipalApplicant,
		},
	}, nil
}

// RegisterApplicant creates a pending account and emails a verification link.
// A duplicate unverified email re-issues the link instead of erroring, a
// verified duplicate is a conflict.
func (i impl) RegisterApplicant(req authapimodels.RegisterRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := i.applicantAccountStore.FindByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.EmailVerified {
			return ErrAlreadyExists
		}
		return i.sendVerification(existing.ID, email)
	}

	hash, err := authutils.HashPassword(req.Password)
	if err != nil {
		return err
	}
	rec := dbmodels.ApplicantAccount{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		IsActive:     true,
	}
	id, err := i.applicantAccountStore.Create(rec)
	if err != nil {
		if helpers.IsUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}
	return i.sendVerification(id, email)
}

func (i impl) sendVerification(accountID, email string) error {
	token, err := authutils.GetVerificationToken(accountID, email, models.PrincipalApplicant)
	if err != nil {
		return err
	}
	notify.Instance.SendVerificationEmail(email, token)
	return nil
}

// VerifyEmail consumes a signed verification token. Idempotent: a token for an
// already-verified account answers success with AlreadyVerified set. On first
// success a session token is issued so the email link logs the user in.
func (i impl) VerifyEmail(token string) (result VerifyResult, err error) {
	claims, err := authutils.ParseVerificationToken(token)
	if err != nil {
		return result, err
	}
	account, err := i.applicantAccountStore.GetByID(claims.AccountID)
	if err != nil {
		return result, err
	}
	if account == nil || !strings.EqualFold(account.Email, claims.Email) {
		return result, ErrUserNotFound
	}
	result.Email = account.Email
	if account.EmailVerified {
		result.AlreadyVerified = true
		return result, nil
	}
	err = i.applicantAccountStore.Update(account.ID, map[string]interface{}{
		"email_verified": true,
	})
	if err != nil {
		return result, err
	}
	sessionToken, err := authutils.GetSessionToken(account.ID, account.Email, account.GetFullName(), models.PrincipalApplicant, "")
	if err != nil {
		log.WithError(err).WithField("account_id", account.ID).Error("verified, but failed to issue session token")
		return result, nil
	}
	result.SessionToken = sessionToken
	return result, nil
}

func (i impl) Me(userID string, principal models.PrincipalType) (authapimodels.SessionUser, error) {
	switch principal {
	case models.PrincipalHRUser:
		user, err := i.hrUserStore.GetByID(userID)
		if err != nil {
			return authapimodels.SessionUser{}, err
		}
		if user == nil {
			return authapimodels.SessionUser{}, ErrUserNotFound
		}
		return authapimodels.SessionUser{
			ID:            user.ID,
			Email:         user.Email,
			Name:          user.GetFullName(),
			Role:          user.Role,
			PrincipalType: models.PrincipalHRUser,
		}, nil
	case models.PrincipalApplicant:
		account, err := i.applicantAccountStore.GetByID(userID)
		if err != nil {
			return authapimodels.SessionUser{}, err
		}
		if account == nil {
			return authapimodels.SessionUser{}, ErrUserNotFound
		}
		return authapimodels.SessionUser{
			ID:            account.ID,
			Email:         account.Email,
			Name:          account.GetFullName(),
			PrincipalType: models.PrincipalApplicant,
		}, nil
	}
	return authapimodels.SessionUser{}, ErrUserNotFound
}
