package applicationstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (*dbmodels.Application, error)
	Update(id string, updMap map[string]interface{}) error
	DeleteByJobID(jobID string) error
	List(filter dbmodels.ApplicationFilter) (list []dbmodels.Application, rowCount int64, err error)
	ListAllByJob(jobID string) (list []dbmodels.Application, err error)
	ListStatuses(jobID string) (statuses []string, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	rec.Email = strings.ToLower(rec.Email)
	err = i.db.
		Omit("Job").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Where("id = ?", id).
		Preload("Job").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("application not found")
	}
	return nil
}

func (i impl) DeleteByJobID(jobID string) error {
	return i.db.
		Where("job_id = ?", jobID).
		Delete(&dbmodels.Application{}).
		Error
}

// List filters by job and raw search in SQL; bucket/tab classification happens
// in the handler because the canonical mapping lives in code, not in the
// status column.
func (i impl) List(filter dbmodels.ApplicationFilter) (list []dbmodels.Application, rowCount int64, err error) {
	list = []dbmodels.Application{}
	tx := i.db.Model(&dbmodels.Application{})
	if filter.JobID != "" {
		tx = tx.Where("job_id = ?", filter.JobID)
	}
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		tx = tx.Where("lower(first_name) like ? or lower(last_name) like ? or lower(email) like ?", search, search, search)
	}
	if filter.Status != "" {
		// bucket match needs the synonym table, pull every raw spelling
		bucket, known := models.BucketForStatus(filter.Status)
		if !known {
			// a status outside the vocabulary matches no rows
			return list, 0, nil
		}
		if bucket == models.BucketApplied {
			// unrecognized raw values fall back into this bucket
			known := []string{}
			for _, b := range models.AllBuckets() {
				if b != models.BucketApplied {
					known = append(known, models.SynonymsOf(b)...)
				}
			}
			tx = tx.Where("lower(status) not in ?", known)
		} else {
			tx = tx.Where("lower(status) in ?", models.SynonymsOf(bucket))
		}
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	err = tx.
		Order("submitted_at desc").
		Limit(limit).
		Offset(filter.Offset).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListAllByJob(jobID string) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Where("job_id = ?", jobID).
		Order("submitted_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListStatuses(jobID string) (statuses []string, err error) {
	statuses = []string{}
	tx := i.db.
		Model(&dbmodels.Application{})
	if jobID != "" {
		tx = tx.Where("job_id = ?", jobID)
	}
	err = tx.
		Pluck("status", &statuses).
		Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}
