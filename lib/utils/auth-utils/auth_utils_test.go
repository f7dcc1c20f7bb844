package authutils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"ats-backend/config"
	"ats-backend/models"
)

func initTestConfig() {
	secure := false
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTIssuer = "ats-backend"
	conf.Auth.JWTAudience = "ats"
	conf.Auth.JWTExpireInSec = 3600
	conf.Auth.VerifyExpireInSec = 3600
	conf.Auth.SecureCookie = &secure
	config.Conf = conf
}

func TestTokens(t *testing.T) {
	initTestConfig()

	t.Run(`verification token round trip check`, func(t *testing.T) {
		token, err := GetVerificationToken("account-1", "user@example.com", models.PrincipalApplicant)
		require.Nil(t, err)
		require.NotEmpty(t, token)

		claims, err := ParseVerificationToken(token)
		require.Nil(t, err)
		require.Equal(t, "account-1", claims.AccountID)
		require.Equal(t, "user@example.com", claims.Email)
		require.Equal(t, models.PrincipalApplicant, claims.Principal)
	})

	t.Run(`session token is not a verification token check`, func(t *testing.T) {
		token, err := GetSessionToken("user-1", "user@example.com", "User", models.PrincipalHRUser, models.UserRoleAdmin)
		require.Nil(t, err)

		_, err = ParseVerificationToken(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run(`session token carries the session purpose check`, func(t *testing.T) {
		token, err := GetSessionToken("user-1", "user@example.com", "User", models.PrincipalHRUser, models.UserRoleAdmin)
		require.Nil(t, err)

		parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
			return []byte(config.Conf.Auth.JWTSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		require.Nil(t, err)

		claims := parsed.Claims.(jwt.MapClaims)
		require.Equal(t, string(models.TokenPurposeSession), claims["purpose"])
	})

	t.Run(`tampered token is rejected check`, func(t *testing.T) {
		token, err := GetVerificationToken("account-1", "user@example.com", models.PrincipalApplicant)
		require.Nil(t, err)

		_, err = ParseVerificationToken(token + "x")
		require.ErrorIs(t, err, ErrInvalidToken)

		_, err = ParseVerificationToken("not-a-token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run(`token signed with another secret is rejected check`, func(t *testing.T) {
		token, err := GetVerificationToken("account-1", "user@example.com", models.PrincipalApplicant)
		require.Nil(t, err)

		config.Conf.Auth.JWTSecret = "rotated-secret"
		defer initTestConfig()

		_, err = ParseVerificationToken(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestPasswords(t *testing.T) {
	t.Run(`bcrypt hash round trip check`, func(t *testing.T) {
		hash, err := HashPassword("s3cret-password")
		require.Nil(t, err)
		require.NotEqual(t, "s3cret-password", hash)

		require.Equal(t, true, CheckPassword(hash, "s3cret-password"))
		require.Equal(t, false, CheckPassword(hash, "wrong-password"))
	})

	t.Run(`invite token uniqueness check`, func(t *testing.T) {
		first := GenerateInviteToken()
		second := GenerateInviteToken()
		require.Len(t, first, 64)
		require.NotEqual(t, first, second)
	})
}
