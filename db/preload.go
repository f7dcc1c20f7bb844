package db

import (
	log "github.com/sirupsen/logrus"

	"ats-backend/config"
	hruserstore "ats-backend/lib/hr-users/store"
	authutils "ats-backend/lib/utils/auth-utils"
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

func InitPreload() {
	addAdminUser()
}

// addAdminUser seeds the bootstrap administrator so invitations can be issued
// on a fresh install.
func addAdminUser() {
	if config.Conf.Admin.Email == "" {
		log.Warn("admin user not seeded, ADMIN_EMAIL is not set")
		return
	}
	userStore := hruserstore.NewInstance(DB)
	existedRec, err := userStore.FindByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("failed to seed admin user")
		return
	}
	if existedRec != nil {
		return
	}
	hash, err := authutils.HashPassword(config.Conf.Admin.Password)
	if err != nil {
		log.WithError(err).Error("failed to seed admin user")
		return
	}
	rec := dbmodels.HRUser{
		Email:         config.Conf.Admin.Email,
		PasswordHash:  hash,
		FirstName:     config.Conf.Admin.FirstName,
		LastName:      config.Conf.Admin.LastName,
		Role:          models.UserRoleAdmin,
		IsActive:      true,
		EmailVerified: true,
		PasswordSet:   true,
	}
	_, err = userStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("failed to seed admin user")
	}
}
