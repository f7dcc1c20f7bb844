package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "ats-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.HRUser{}); err != nil {
		return errors.Wrap(err, "failed to migrate HRUser")
	}
	if err := DB.AutoMigrate(&dbmodels.ApplicantAccount{}); err != nil {
		return errors.Wrap(err, "failed to migrate ApplicantAccount")
	}
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "failed to migrate Job")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "failed to migrate Application")
	}
	if err := DB.AutoMigrate(&dbmodels.ApplicationEvent{}); err != nil {
		return errors.Wrap(err, "failed to migrate ApplicationEvent")
	}
	log.Info("migrations finished")
	return nil
}
