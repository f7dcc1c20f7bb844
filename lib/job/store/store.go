package jobstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Job) (id string, err error)
	GetByID(id string) (*dbmodels.Job, error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter dbmodels.JobFilter) (list []dbmodels.Job, err error)
	ListPublished() (list []dbmodels.Job, err error)
	CountApplications(jobID string) (int, error)
	CountApplicationsByJob() (map[string]int, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.
		Where("id = ?", id).
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
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("job not found")
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Job{}).
		Error
}

func (i impl) List(filter dbmodels.JobFilter) (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	tx := i.db.Model(&dbmodels.Job{})
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		tx = tx.Where("lower(title) like ? or lower(description) like ?", search, search)
	}
	if filter.Department != "" {
		tx = tx.Where("department = ?", filter.Department)
	}
	if filter.Location != "" {
		tx = tx.Where("location = ?", filter.Location)
	}
	if len(filter.Statuses) > 0 {
		tx = tx.Where("status in ?", filter.Statuses)
	}
	err = tx.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ListPublished returns rows stored as published; time/count expiry is applied
// by the caller on top.
func (i impl) ListPublished() (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	err = i.db.
		Where("status in ? or (status = '' and posted = true)", []models.JobStatus{models.JobStatusPublished, "active"}).
		Order("posted_date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountApplications(jobID string) (int, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("job_id = ?", jobID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (i impl) CountApplicationsByJob() (map[string]int, error) {
	type row struct {
		JobID string
		Cnt   int
	}
	rows := []row{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Select("job_id, count(*) as cnt").
		Group("job_id").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	result := make(map[string]int, len(rows))
	for _, r := range rows {
		result[r.JobID] = r.Cnt
	}
	return result, nil
}
