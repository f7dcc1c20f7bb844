package jobapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"ats-backend/models"
)

type JobData struct {
	Title           string `json:"title"`
	Department      string `json:"department"`
	Location        string `json:"location"`
	EmploymentType  string `json:"employment_type"`
	SalaryRange     string `json:"salary_range"`
	Description     string `json:"description"`
	Requirements    string `json:"requirements"`
	Benefits        string `json:"benefits"`
	AutoExpireDays  int    `json:"auto_expire_days"`
	MaxApplications int    `json:"max_applications"`
}

func (r JobData) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("job title is required")
	}
	if r.AutoExpireDays < 0 {
		return errors.New("auto_expire_days must not be negative")
	}
	if r.MaxApplications < 0 {
		return errors.New("max_applications must not be negative")
	}
	return nil
}

type JobCreateRequest struct {
	JobData
	PublishNow bool `json:"publish_now"`
}

type JobUpdateRequest struct {
	JobData
	Status string `json:"status"`
}

func (r JobUpdateRequest) Validate() error {
	if err := r.JobData.Validate(); err != nil {
		return err
	}
	if r.Status != "" && !models.IsKnownJobStatus(r.Status) {
		return errors.New("unknown job status")
	}
	return nil
}

type JobView struct {
	ID string `json:"id"`
	JobData
	Status           models.JobStatus `json:"status"`
	StatusName       string           `json:"status_name"`
	StoredStatus     models.JobStatus `json:"stored_status"`
	Posted           bool             `json:"posted"`
	PostedDate       time.Time        `json:"posted_date"`
	ApplicationCount int              `json:"application_count"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// PublicJobView is the careers-page projection, internal counters stripped.
type PublicJobView struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Department     string    `json:"department"`
	Location       string    `json:"location"`
	EmploymentType string    `json:"employment_type"`
	SalaryRange    string    `json:"salary_range"`
	Description    string    `json:"description"`
	Requirements   string    `json:"requirements"`
	Benefits       string    `json:"benefits"`
	PostedDate     time.Time `json:"posted_date"`
}
