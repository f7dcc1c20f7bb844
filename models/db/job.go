package dbmodels

import (
	"time"

	"ats-backend/models"
	jobapimodels "ats-backend/models/api/job"
)

const (
	DefaultAutoExpireDays  = 30
	DefaultMaxApplications = 50
)

type Job struct {
	BaseModel
	Title          string `gorm:"type:varchar(255)"`
	Department     string `gorm:"type:varchar(150)"`
	Location       string `gorm:"type:varchar(255)"`
	EmploymentType string `gorm:"type:varchar(100)"`
	SalaryRange    string `gorm:"type:varchar(100)"`
	Description    string
	Requirements   string
	Benefits       string
	// Status is the stored column; the value shown to callers is recomputed
	// on every read, see EffectiveStatus.
	Status models.JobStatus `gorm:"type:varchar(50)"`
	// Posted is the legacy flag kept in step with Status for old rows.
	Posted          bool
	PostedDate      time.Time
	AutoExpireDays  int `gorm:"default:30"`
	MaxApplications int `gorm:"default:50"`
}

// StoredStatus resolves the status column against the legacy posted flag.
func (j Job) StoredStatus() models.JobStatus {
	return models.NormalizeJobStatus(string(j.Status), j.Posted)
}

// EffectiveStatus applies time- and count-based expiry at read time; the
// stored column is left untouched.
func (j Job) EffectiveStatus(applicationCount int, now time.Time) models.JobStatus {
	return models.EffectiveJobStatus(j.StoredStatus(), j.PostedDate, j.AutoExpireDays, applicationCount, j.MaxApplications, now)
}

func (j Job) ToModel(applicationCount int, now time.Time) jobapimodels.JobView {
	effective := j.EffectiveStatus(applicationCount, now)
	return jobapimodels.JobView{
		ID: j.ID,
		JobData: jobapimodels.JobData{
			Title:           j.Title,
			Department:      j.Department,
			Location:        j.Location,
			EmploymentType:  j.EmploymentType,
			SalaryRange:     j.SalaryRange,
			Description:     j.Description,
			Requirements:    j.Requirements,
			Benefits:        j.Benefits,
			AutoExpireDays:  j.AutoExpireDays,
			MaxApplications: j.MaxApplications,
		},
		Status:           effective,
		StatusName:       effective.ToHuman(),
		StoredStatus:     j.StoredStatus(),
		Posted:           j.Posted,
		PostedDate:       j.PostedDate,
		ApplicationCount: applicationCount,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
}

type JobFilter struct {
	Search     string   `json:"search"`
	Department string   `json:"department"`
	Location   string   `json:"location"`
	Statuses   []string `json:"statuses"`
}
