package hrusershandler

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"ats-backend/config"
	"ats-backend/db"
	hruserstore "ats-backend/lib/hr-users/store"
	"ats-backend/lib/notify"
	authutils "ats-backend/lib/utils/auth-utils"
	"ats-backend/lib/utils/helpers"
	hruserapimodels "ats-backend/models/api/hruser"
	dbmodels "ats-backend/models/db"
)

var (
	ErrAlreadyExists  = errors.New("user with this email already exists")
	ErrUserNotFound   = errors.New("user not found")
	ErrSetupDone      = errors.New("account setup is already completed")
	ErrInviteNotValid = errors.New("invitation token is invalid or expired")
)

type Provider interface {
	Invite(req hruserapimodels.InviteRequest) (id string, err error)
	ResendInvite(userID string) error
	CompleteSetup(req hruserapimodels.CompleteSetupRequest) error
	List(limit, offset int) (list []hruserapimodels.HRUser, rowCount int64, err error)
	GetByID(userID string) (hruserapimodels.HRUser, error)
	Deactivate(userID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: hruserstore.NewInstance(db.DB),
	}
}

type impl struct {
	store hruserstore.Provider
}

// Invite creates an inactive-pending HR account and emails a setup link. The
// invitation token is random, persisted and time-boxed.
func (i impl) Invite(req hruserapimodels.InviteRequest) (id string, err error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	exist, err := i.store.ExistByEmail(email)
	if err != nil {
		return "", err
	}
	if exist {
		return "", ErrAlreadyExists
	}
	rec := dbmodels.HRUser{
		Email:         email,
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Department:    req.Department,
		Role:          req.Role,
		IsActive:      true,
		InviteToken:   authutils.GenerateInviteToken(),
		InviteExpires: time.Now().Add(time.Second * time.Duration(config.Conf.Auth.InviteExpireInSec)),
	}
	id, err = i.store.Create(rec)
	if err != nil {
		if helpers.IsUniqueViolation(err) {
			return "", ErrAlreadyExists
		}
		log.WithError(err).WithField("email", email).Error("failed to create invited user")
		return "", err
	}
	notify.Instance.SendInvitationEmail(rec.Email, rec.GetFullName(), rec.InviteToken)
	return id, nil
}

// ResendInvite rotates the token and expiry. Rejected once setup is complete,
// even when the old token has not yet expired.
func (i impl) ResendInvite(userID string) error {
	user, err := i.store.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.SetupComplete() {
		return ErrSetupDone
	}
	token := authutils.GenerateInviteToken()
	err = i.store.Update(user.ID, map[string]interface{}{
		"invite_token":   token,
		"invite_expires": time.Now().Add(time.Second * time.Duration(config.Conf.Auth.InviteExpireInSec)),
	})
	if err != nil {
		return err
	}
	notify.Instance.SendInvitationEmail(user.Email, user.GetFullName(), token)
	return nil
}

// CompleteSetup consumes an invitation token: sets the password, marks the
// email verified and clears the token so it can never be replayed.
func (i impl) CompleteSetup(req hruserapimodels.CompleteSetupRequest) error {
	user, err := i.store.FindByInviteToken(req.Token)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInviteNotValid
	}
	if user.SetupComplete() {
		return ErrSetupDone
	}
	if user.InviteExpires.Before(time.Now()) {
		return ErrInviteNotValid
	}
	hash, err := authutils.HashPassword(req.Password)
	if err != nil {
		return err
	}
	return i.store.Update(user.ID, map[string]interface{}{
		"password_hash":  hash,
		"password_set":   true,
		"email_verified": true,
		"invite_token":   "",
		"invite_expires": time.Time{},
	})
}

func (i impl) List(limit, offset int) (list []hruserapimodels.HRUser, rowCount int64, err error) {
	users, rowCount, err := i.store.List(limit, offset)
	if err != nil {
		log.WithError(err).Error("failed to list hr users")
		return nil, 0, err
	}
	list = make([]hruserapimodels.HRUser, 0, len(users))
	for _, user := range users {
		list = append(list, user.ToModel())
	}
	return list, rowCount, nil
}

func (i impl) GetByID(userID string) (hruserapimodels.HRUser, error) {
	user, err := i.store.GetByID(userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("failed to find hr user")
		return hruserapimodels.HRUser{}, err
	}
	if user == nil {
		return hruserapimodels.HRUser{}, ErrUserNotFound
	}
	return user.ToModel(), nil
}

func (i impl) Deactivate(userID string) error {
	user, err := i.store.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return i.store.Update(userID, map[string]interface{}{
		"is_active": false,
	})
}
