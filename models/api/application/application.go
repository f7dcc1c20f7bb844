package applicationapimodels

import (
	"net/mail"
	"strings"
	"time"

	"github.com/pkg/errors"

	"ats-backend/models"
)

type ApplicantData struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	WorkAuthorization string `json:"work_authorization"`
	Gender            string `json:"gender"`
	Ethnicity         string `json:"ethnicity"`
	VeteranStatus     string `json:"veteran_status"`
	Interest          string `json:"interest"`
}

type SubmitRequest struct {
	JobID string `json:"job_id"`
	ApplicantData
	ResumeKey      string `json:"resume_key"`
	CoverLetterKey string `json:"cover_letter_key"`
}

func (r SubmitRequest) Validate() error {
	if strings.TrimSpace(r.JobID) == "" {
		return errors.New("Missing required field: job_id")
	}
	required := []struct {
		name  string
		value string
	}{
		{"first_name", r.FirstName},
		{"last_name", r.LastName},
		{"email", r.Email},
		{"phone", r.Phone},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return errors.Errorf("Missing required field: %s", field.name)
		}
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("email has an invalid format")
	}
	return nil
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

func (r StatusUpdateRequest) Validate() error {
	if strings.TrimSpace(r.Status) == "" {
		return errors.New("status is required")
	}
	return nil
}

type ApplicationView struct {
	ID    string `json:"id"`
	JobID string `json:"job_id"`
	ApplicantData
	ResumeKey      string              `json:"resume_key,omitempty"`
	CoverLetterKey string              `json:"cover_letter_key,omitempty"`
	Status         string              `json:"status"`
	Bucket         models.StatusBucket `json:"bucket"`
	BucketName     string              `json:"bucket_name"`
	SubmittedAt    time.Time           `json:"submitted_at"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

type ApplicationEventView struct {
	ID            string              `json:"id"`
	ApplicationID string              `json:"application_id"`
	ActorName     string              `json:"actor_name"`
	FromStatus    string              `json:"from_status"`
	ToStatus      string              `json:"to_status"`
	FromBucket    models.StatusBucket `json:"from_bucket"`
	ToBucket      models.StatusBucket `json:"to_bucket"`
	BucketChanged bool                `json:"bucket_changed"`
	Note          string              `json:"note,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

type TabCount struct {
	Bucket models.StatusBucket `json:"bucket"`
	Name   string              `json:"name"`
	Count  int                 `json:"count"`
}

type TabCountsView struct {
	Tabs  []TabCount `json:"tabs"`
	Total int        `json:"total"` // bucket counts always sum to this
}
