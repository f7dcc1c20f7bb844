package authhandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	authutils "ats-backend/lib/utils/auth-utils"
	dbmodels "ats-backend/models/db"
)

func TestLoginHRUserGates(t *testing.T) {
	hash, err := authutils.HashPassword("correct-horse")
	require.NoError(t, err)

	t.Run(`invited user without password gets setup incomplete check`, func(t *testing.T) {
		_, err := impl{}.loginHRUser(dbmodels.HRUser{IsActive: true}, "whatever")
		require.ErrorIs(t, err, ErrSetupIncomplete)
	})

	t.Run(`unverified email gets setup incomplete check`, func(t *testing.T) {
		user := dbmodels.HRUser{
			IsActive:     true,
			PasswordSet:  true,
			PasswordHash: hash,
		}
		_, err := impl{}.loginHRUser(user, "correct-horse")
		require.ErrorIs(t, err, ErrSetupIncomplete)
	})

	t.Run(`wrong password on a complete account check`, func(t *testing.T) {
		user := dbmodels.HRUser{
			IsActive:      true,
			PasswordSet:   true,
			EmailVerified: true,
			PasswordHash:  hash,
		}
		_, err := impl{}.loginHRUser(user, "battery-staple")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run(`deactivated account check`, func(t *testing.T) {
		user := dbmodels.HRUser{
			PasswordSet:   true,
			EmailVerified: true,
			PasswordHash:  hash,
		}
		_, err := impl{}.loginHRUser(user, "correct-horse")
		require.ErrorIs(t, err, ErrAccountInactive)
	})
}

func TestLoginApplicantGates(t *testing.T) {
	hash, err := authutils.HashPassword("correct-horse")
	require.NoError(t, err)

	t.Run(`unverified email gets setup incomplete check`, func(t *testing.T) {
		account := dbmodels.ApplicantAccount{
			IsActive:     true,
			PasswordHash: hash,
		}
		_, err := impl{}.loginApplicant(account, "correct-horse")
		require.ErrorIs(t, err, ErrSetupIncomplete)
	})

	t.Run(`wrong password check`, func(t *testing.T) {
		account := dbmodels.ApplicantAccount{
			IsActive:      true,
			EmailVerified: true,
			PasswordHash:  hash,
		}
		_, err := impl{}.loginApplicant(account, "battery-staple")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run(`deactivated account check`, func(t *testing.T) {
		account := dbmodels.ApplicantAccount{
			EmailVerified: true,
			PasswordHash:  hash,
		}
		_, err := impl{}.loginApplicant(account, "correct-horse")
		require.ErrorIs(t, err, ErrAccountInactive)
	})
}
