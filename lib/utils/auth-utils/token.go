package authutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"ats-backend/config"
	"ats-backend/models"
)

// SessionCookieName is the HTTP-only cookie carrying the session token.
const SessionCookieName = "auth-token"

func GetSessionToken(userID, email, name string, principal models.PrincipalType, role models.UserRole) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"sub":     userID,
		"email":   email,
		"name":    name,
		"type":    string(principal),
		"role":    string(role),
		"purpose": string(models.TokenPurposeSession),
		"iss":     config.Conf.Auth.JWTIssuer,
		"aud":     config.Conf.Auth.JWTAudience,
		"exp":     time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetVerificationToken(accountID, email string, principal models.PrincipalType) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"sub":     accountID,
		"email":   email,
		"type":    string(principal),
		"purpose": string(models.TokenPurposeEmailVerification),
		"iss":     config.Conf.Auth.JWTIssuer,
		"aud":     config.Conf.Auth.JWTAudience,
		"exp":     time.Now().Add(time.Second * time.Duration(config.Conf.Auth.VerifyExpireInSec)).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

type VerificationClaims struct {
	AccountID string
	Email     string
	Principal models.PrincipalType
}

var ErrInvalidToken = errors.New("invalid or expired token")

// ParseVerificationToken checks signature, expiry, issuer/audience and the
// purpose discriminator. A session token is not accepted here.
func ParseVerificationToken(tokenString string) (VerificationClaims, error) {
	token, err := jwt.Parse(tokenString,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(config.Conf.Auth.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(config.Conf.Auth.JWTIssuer),
		jwt.WithAudience(config.Conf.Auth.JWTAudience),
	)
	if err != nil || !token.Valid {
		return VerificationClaims{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return VerificationClaims{}, ErrInvalidToken
	}
	if purpose, _ := claims["purpose"].(string); purpose != string(models.TokenPurposeEmailVerification) {
		return VerificationClaims{}, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	principal, _ := claims["type"].(string)
	if sub == "" || email == "" {
		return VerificationClaims{}, ErrInvalidToken
	}
	return VerificationClaims{
		AccountID: sub,
		Email:     email,
		Principal: models.PrincipalType(principal),
	}, nil
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

func GetUserID(ctx *fiber.Ctx) string {
	id, _ := GetClaims(ctx)["sub"].(string)
	return id
}

func GetUserEmail(ctx *fiber.Ctx) string {
	email, _ := GetClaims(ctx)["email"].(string)
	return email
}

func GetUserName(ctx *fiber.Ctx) string {
	name, _ := GetClaims(ctx)["name"].(string)
	return name
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	role, _ := GetClaims(ctx)["role"].(string)
	return models.UserRole(role)
}

func GetPrincipalType(ctx *fiber.Ctx) models.PrincipalType {
	principal, _ := GetClaims(ctx)["type"].(string)
	return models.PrincipalType(principal)
}

func SetSessionCookie(ctx *fiber.Ctx, token string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   *config.Conf.Auth.SecureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   config.Conf.Auth.JWTExpireInSec,
		Path:     "/",
	})
}

func ClearSessionCookie(ctx *fiber.Ctx) {
	ctx.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		HTTPOnly: true,
		Secure:   *config.Conf.Auth.SecureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   -1,
		Path:     "/",
	})
}
