package hrusershandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ats-backend/config"
	"ats-backend/lib/notify"
	authutils "ats-backend/lib/utils/auth-utils"
	hruserapimodels "ats-backend/models/api/hruser"
	dbmodels "ats-backend/models/db"
)

type stubHRUserStore struct {
	users   map[string]*dbmodels.HRUser
	updates map[string]map[string]interface{}
}

func newStubHRUserStore(users ...dbmodels.HRUser) *stubHRUserStore {
	s := &stubHRUserStore{
		users:   map[string]*dbmodels.HRUser{},
		updates: map[string]map[string]interface{}{},
	}
	for i := range users {
		user := users[i]
		s.users[user.ID] = &user
	}
	return s
}

func (s *stubHRUserStore) Create(rec dbmodels.HRUser) (string, error) { return rec.ID, nil }
func (s *stubHRUserStore) GetByID(id string) (*dbmodels.HRUser, error) {
	return s.users[id], nil
}
func (s *stubHRUserStore) FindByEmail(email string) (*dbmodels.HRUser, error) { return nil, nil }
func (s *stubHRUserStore) FindByInviteToken(token string) (*dbmodels.HRUser, error) {
	if token == "" {
		return nil, nil
	}
	for _, user := range s.users {
		if user.InviteToken == token {
			return user, nil
		}
	}
	return nil, nil
}
func (s *stubHRUserStore) ExistByEmail(email string) (bool, error) { return false, nil }
func (s *stubHRUserStore) Update(id string, updMap map[string]interface{}) error {
	s.updates[id] = updMap
	return nil
}
func (s *stubHRUserStore) List(limit, offset int) ([]dbmodels.HRUser, int64, error) {
	return nil, 0, nil
}
func (s *stubHRUserStore) TouchLastLogin(id string) error { return nil }

type silentNotify struct{}

func (silentNotify) SendVerificationEmail(to, token string) {}

func (silentNotify) SendInvitationEmail(to, name, token string) {}

func (silentNotify) SendNewApplicationNotice(jobTitle, applicantName string) {}

func (silentNotify) SendStatusChangeEmail(to, name, jobTitle, stageName string) {}

func initInviteTest() {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.InviteExpireInSec = 604800
	notify.Instance = silentNotify{}
}

func TestCompleteSetup(t *testing.T) {
	initInviteTest()
	token := authutils.GenerateInviteToken()

	t.Run(`token replay after completed setup is rejected check`, func(t *testing.T) {
		store := newStubHRUserStore(dbmodels.HRUser{
			BaseModel:     dbmodels.BaseModel{ID: "u1"},
			Email:         "hr@example.com",
			EmailVerified: true,
			PasswordSet:   true,
			InviteToken:   token,
			InviteExpires: time.Now().Add(time.Hour),
		})
		err := impl{store: store}.CompleteSetup(hruserapimodels.CompleteSetupRequest{
			Token:    token,
			Password: "new-password",
		})
		require.ErrorIs(t, err, ErrSetupDone)
		require.Empty(t, store.updates)
	})

	t.Run(`expired token is rejected check`, func(t *testing.T) {
		store := newStubHRUserStore(dbmodels.HRUser{
			BaseModel:     dbmodels.BaseModel{ID: "u1"},
			Email:         "hr@example.com",
			InviteToken:   token,
			InviteExpires: time.Now().Add(-time.Hour),
		})
		err := impl{store: store}.CompleteSetup(hruserapimodels.CompleteSetupRequest{
			Token:    token,
			Password: "new-password",
		})
		require.ErrorIs(t, err, ErrInviteNotValid)
	})

	t.Run(`unknown token is rejected check`, func(t *testing.T) {
		store := newStubHRUserStore()
		err := impl{store: store}.CompleteSetup(hruserapimodels.CompleteSetupRequest{
			Token:    "no-such-token",
			Password: "new-password",
		})
		require.ErrorIs(t, err, ErrInviteNotValid)
	})

	t.Run(`setup consumes the token check`, func(t *testing.T) {
		store := newStubHRUserStore(dbmodels.HRUser{
			BaseModel:     dbmodels.BaseModel{ID: "u1"},
			Email:         "hr@example.com",
			InviteToken:   token,
			InviteExpires: time.Now().Add(time.Hour),
		})
		err := impl{store: store}.CompleteSetup(hruserapimodels.CompleteSetupRequest{
			Token:    token,
			Password: "new-password",
		})
		require.NoError(t, err)

		updMap := store.updates["u1"]
		require.NotNil(t, updMap)
		require.Equal(t, true, updMap["password_set"])
		require.Equal(t, true, updMap["email_verified"])
		require.Equal(t, "", updMap["invite_token"])
		require.Equal(t, true, authutils.CheckPassword(updMap["password_hash"].(string), "new-password"))
	})
}

func TestResendInvite(t *testing.T) {
	initInviteTest()
	token := authutils.GenerateInviteToken()

	t.Run(`completed account cannot be re-invited check`, func(t *testing.T) {
		store := newStubHRUserStore(dbmodels.HRUser{
			BaseModel:     dbmodels.BaseModel{ID: "u1"},
			Email:         "hr@example.com",
			EmailVerified: true,
			PasswordSet:   true,
		})
		err := impl{store: store}.ResendInvite("u1")
		require.ErrorIs(t, err, ErrSetupDone)
		require.Empty(t, store.updates)
	})

	t.Run(`resend rotates token and expiry check`, func(t *testing.T) {
		store := newStubHRUserStore(dbmodels.HRUser{
			BaseModel:     dbmodels.BaseModel{ID: "u1"},
			Email:         "hr@example.com",
			InviteToken:   token,
			InviteExpires: time.Now().Add(-time.Hour),
		})
		err := impl{store: store}.ResendInvite("u1")
		require.NoError(t, err)

		updMap := store.updates["u1"]
		require.NotNil(t, updMap)
		require.NotEqual(t, token, updMap["invite_token"])
		require.NotEmpty(t, updMap["invite_token"])
		require.Greater(t, updMap["invite_expires"].(time.Time).Unix(), time.Now().Unix())
	})

	t.Run(`unknown user check`, func(t *testing.T) {
		store := newStubHRUserStore()
		err := impl{store: store}.ResendInvite("missing")
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
