package dbmodels

import (
	"time"

	"ats-backend/models"
	applicationapimodels "ats-backend/models/api/application"
)

type Application struct {
	BaseModel
	JobID string `gorm:"type:varchar(36);index"`
	Job   *Job   `gorm:"foreignKey:JobID"`

	FirstName string `gorm:"type:varchar(150)"`
	LastName  string `gorm:"type:varchar(150)"`
	Email     string `gorm:"type:varchar(255);index"`
	Phone     string `gorm:"type:varchar(50)"`
	Address   string `gorm:"type:varchar(255)"`

	ResumeKey         string `gorm:"type:varchar(512)"`
	CoverLetterKey    string `gorm:"type:varchar(512)"`
	WorkAuthorization string `gorm:"type:varchar(100)"`
	Gender            string `gorm:"type:varchar(50)"`
	Ethnicity         string `gorm:"type:varchar(100)"`
	VeteranStatus     string `gorm:"type:varchar(100)"`
	Interest          string

	// Status keeps the raw vocabulary as written by HR; classification always
	// goes through models.NormalizeApplicationStatus.
	Status      string `gorm:"type:varchar(100)"`
	SubmittedAt time.Time
}

func (a Application) Bucket() models.StatusBucket {
	return models.NormalizeApplicationStatus(a.Status)
}

func (a Application) FullName() string {
	return a.FirstName + " " + a.LastName
}

func (a Application) ToModel() applicationapimodels.ApplicationView {
	bucket := a.Bucket()
	return applicationapimodels.ApplicationView{
		ID:    a.ID,
		JobID: a.JobID,
		ApplicantData: applicationapimodels.ApplicantData{
			FirstName:         a.FirstName,
			LastName:          a.LastName,
			Email:             a.Email,
			Phone:             a.Phone,
			Address:           a.Address,
			WorkAuthorization: a.WorkAuthorization,
			Gender:            a.Gender,
			Ethnicity:         a.Ethnicity,
			VeteranStatus:     a.VeteranStatus,
			Interest:          a.Interest,
		},
		ResumeKey:      a.ResumeKey,
		CoverLetterKey: a.CoverLetterKey,
		Status:         a.Status,
		Bucket:         bucket,
		BucketName:     bucket.ToHuman(),
		SubmittedAt:    a.SubmittedAt,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

type ApplicationFilter struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"` // matched by bucket, not raw string
	Tab    string `json:"tab"`
	Search string `json:"search"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}
