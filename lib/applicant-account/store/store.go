package applicantaccountstore

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ApplicantAccount) (id string, err error)
	GetByID(id string) (*dbmodels.ApplicantAccount, error)
	FindByEmail(email string) (*dbmodels.ApplicantAccount, error)
	Update(id string, updMap map[string]interface{}) error
	TouchLastLogin(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApplicantAccount) (id string, err error) {
	rec.Email = strings.ToLower(rec.Email)
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ApplicantAccount, error) {
	rec := dbmodels.ApplicantAccount{}
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

func (i impl) FindByEmail(email string) (*dbmodels.ApplicantAccount, error) {
	rec := dbmodels.ApplicantAccount{}
	err := i.db.
		Where("email = ?", strings.ToLower(email)).
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
		Model(&dbmodels.ApplicantAccount{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("account not found")
	}
	return nil
}

func (i impl) TouchLastLogin(id string) error {
	return i.db.
		Model(&dbmodels.ApplicantAccount{}).
		Where("id = ?", id).
		Update("last_login", time.Now()).
		Error
}
