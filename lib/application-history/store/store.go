package applicationhistorystore

import (
	"gorm.io/gorm"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ApplicationEvent) (id string, err error)
	List(applicationID string) (list []dbmodels.ApplicationEvent, err error)
	DeleteByJobID(jobID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApplicationEvent) (id string, err error) {
	err = i.db.
		Omit("Application").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(applicationID string) (list []dbmodels.ApplicationEvent, err error) {
	list = []dbmodels.ApplicationEvent{}
	err = i.db.
		Where("application_id = ?", applicationID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteByJobID removes the audit rows of every application under a job, runs
// inside the cascading job delete transaction.
func (i impl) DeleteByJobID(jobID string) error {
	return i.db.
		Where("application_id in (?)",
			i.db.Model(&dbmodels.Application{}).Select("id").Where("job_id = ?", jobID)).
		Delete(&dbmodels.ApplicationEvent{}).
		Error
}
