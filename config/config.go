package config

import (
	"github.com/gotify/configor"
	"github.com/pkg/errors"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr    string `default:"" env:"APP_HOST"`
		Port          int    `default:"8080" env:"APP_PORT"`
		AllowedOrigin string `default:"http://localhost:3000" env:"APP_ALLOWED_ORIGIN"`
		// SiteURL is where verify-email links land after processing.
		SiteURL string `default:"http://localhost:3000" env:"APP_SITE_URL"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"ats" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret         string `default:"" env:"AUTH_JWT_SECRET"`
		JWTIssuer         string `default:"ats-backend" env:"AUTH_JWT_ISSUER"`
		JWTAudience       string `default:"ats" env:"AUTH_JWT_AUDIENCE"`
		JWTExpireInSec    int    `default:"604800" env:"AUTH_JWT_EXPIRE_IN_SEC"`   // 7 days
		VerifyExpireInSec int    `default:"86400" env:"AUTH_VERIFY_EXPIRE_IN_SEC"` // 24 hours
		InviteExpireInSec int    `default:"604800" env:"AUTH_INVITE_EXPIRE_IN_SEC"`
		SecureCookie      *bool  `default:"true" env:"AUTH_SECURE_COOKIE"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		EmailFrom  string `default:"" env:"SMTP_EMAIL_FROM"`
		// HRNotifyEmail receives internal new-application notifications.
		HRNotifyEmail string `default:"" env:"SMTP_HR_NOTIFY_EMAIL"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"ats-documents" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"true" env:"S3_USE_SSL"`
	}
	Admin struct {
		Email     string `default:"" env:"ADMIN_EMAIL"`
		Password  string `default:"" env:"ADMIN_PASSWORD"`
		FirstName string `default:"" env:"ADMIN_FIRST_NAME"`
		LastName  string `default:"" env:"ADMIN_LAST_NAME"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	if err = validateRequired(conf); err != nil {
		panic(err)
	}
	Conf = conf
}

// Missing secrets must stop the process at start, not at first request.
func validateRequired(conf *Configuration) error {
	if conf.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}
	if conf.Database.Host == "" || conf.Database.Name == "" || conf.Database.User == "" {
		return errors.New("database connection settings are incomplete")
	}
	return nil
}
