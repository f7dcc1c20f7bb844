package hruserstore

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.HRUser) (id string, err error)
	GetByID(id string) (*dbmodels.HRUser, error)
	FindByEmail(email string) (*dbmodels.HRUser, error)
	FindByInviteToken(token string) (*dbmodels.HRUser, error)
	ExistByEmail(email string) (bool, error)
	Update(id string, updMap map[string]interface{}) error
	List(limit, offset int) (list []dbmodels.HRUser, rowCount int64, err error)
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

func (i impl) Create(rec dbmodels.HRUser) (id string, err error) {
	rec.Email = strings.ToLower(rec.Email)
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.HRUser, error) {
	rec := dbmodels.HRUser{}
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

func (i impl) FindByEmail(email string) (*dbmodels.HRUser, error) {
	rec := dbmodels.HRUser{}
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

func (i impl) FindByInviteToken(token string) (*dbmodels.HRUser, error) {
	rec := dbmodels.HRUser{}
	err := i.db.
		Where("invite_token = ?", token).
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

func (i impl) ExistByEmail(email string) (bool, error) {
	rec, err := i.FindByEmail(email)
	if err != nil {
		return false, err
	}
	return rec != nil, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.HRUser{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("user not found")
	}
	return nil
}

func (i impl) List(limit, offset int) (list []dbmodels.HRUser, rowCount int64, err error) {
	err = i.db.
		Model(&dbmodels.HRUser{}).
		Count(&rowCount).
		Error
	if err != nil {
		return nil, 0, err
	}
	list = []dbmodels.HRUser{}
	err = i.db.
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) TouchLastLogin(id string) error {
	return i.db.
		Model(&dbmodels.HRUser{}).
		Where("id = ?", id).
		Update("last_login", time.Now()).
		Error
}
