package applicationhandler

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"ats-backend/db"
	applicationhistorystore "ats-backend/lib/application-history/store"
	applicationstore "ats-backend/lib/application/store"
	xlsexport "ats-backend/lib/export/xls"
	jobstore "ats-backend/lib/job/store"
	"ats-backend/lib/notify"
	"ats-backend/models"
	applicationapimodels "ats-backend/models/api/application"
	dbmodels "ats-backend/models/db"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrJobNotAccepting     = errors.New("job is no longer accepting applications")
)

type Actor struct {
	ID   string
	Name string
}

type Provider interface {
	Submit(req applicationapimodels.SubmitRequest) (id string, err error)
	GetByID(id string) (applicationapimodels.ApplicationView, error)
	List(filter dbmodels.ApplicationFilter) (list []applicationapimodels.ApplicationView, rowCount int64, err error)
	UpdateStatus(id string, req applicationapimodels.StatusUpdateRequest, actor Actor) error
	TabCounts(jobID string) (counts []applicationapimodels.TabCount, total int, err error)
	History(applicationID string) (list []applicationapimodels.ApplicationEventView, err error)
	ExportByJob(jobID string) (fileName string, buf *bytes.Buffer, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        applicationstore.NewInstance(db.DB),
		jobStore:     jobstore.NewInstance(db.DB),
		historyStore: applicationhistorystore.NewInstance(db.DB),
	}
}

type impl struct {
	store        applicationstore.Provider
	jobStore     jobstore.Provider
	historyStore applicationhistorystore.Provider
}

// Submit records a public careers-page application. The job must still be
// effectively published: an expired or hidden job does not accept submissions.
func (i impl) Submit(req applicationapimodels.SubmitRequest) (id string, err error) {
	job, err := i.jobStore.GetByID(req.JobID)
	if err != nil {
		return "", err
	}
	if job == nil {
		return "", ErrJobNotFound
	}
	count, err := i.jobStore.CountApplications(job.ID)
	if err != nil {
		return "", err
	}
	if job.EffectiveStatus(count, time.Now()) != models.JobStatusPublished {
		return "", ErrJobNotAccepting
	}
	rec := dbmodels.Application{
		JobID:             job.ID,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             req.Phone,
		Address:           req.Address,
		WorkAuthorization: req.WorkAuthorization,
		Gender:            req.Gender,
		Ethnicity:         req.Ethnicity,
		VeteranStatus:     req.VeteranStatus,
		Interest:          req.Interest,
		ResumeKey:         req.ResumeKey,
		CoverLetterKey:    req.CoverLetterKey,
		Status:            string(models.BucketApplied),
		SubmittedAt:       time.Now(),
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).WithField("job_id", job.ID).Error("failed to create application")
		return "", err
	}
	notify.Instance.SendNewApplicationNotice(job.Title, rec.FullName())
	return id, nil
}

func (i impl) GetByID(id string) (applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if rec == nil {
		return applicationapimodels.ApplicationView{}, ErrApplicationNotFound
	}
	return rec.ToModel(), nil
}

func (i impl) List(filter dbmodels.ApplicationFilter) (list []applicationapimodels.ApplicationView, rowCount int64, err error) {
	if filter.Status == "" {
		buckets := models.BucketsForTab(filter.Tab)
		if buckets != nil && len(buckets) == 0 {
			// a tab that names no bucket shows nothing
			return []applicationapimodels.ApplicationView{}, 0, nil
		}
		if len(buckets) == 1 {
			filter.Status = string(buckets[0])
		}
	}
	records, rowCount, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("failed to list applications")
		return nil, 0, err
	}
	list = make([]applicationapimodels.ApplicationView, 0, len(records))
	for _, rec := range records {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

// ShouldNotifyStatusChange decides whether a status update is visible to the
// candidate. Raw synonym churn inside one bucket (interview_1 to
// first_interview) is not a stage change and must not re-trigger email.
func ShouldNotifyStatusChange(oldRaw, newRaw string) bool {
	return models.NormalizeApplicationStatus(oldRaw) != models.NormalizeApplicationStatus(newRaw)
}

// UpdateStatus persists the raw status string as written, records an audit
// event, and emails the candidate only when the normalized bucket moved.
func (i impl) UpdateStatus(id string, req applicationapimodels.StatusUpdateRequest, actor Actor) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrApplicationNotFound
	}
	if actor.Name == "" {
		actor.Name = models.SystemUser
	}
	oldStatus := rec.Status
	bucketChanged := ShouldNotifyStatusChange(oldStatus, req.Status)

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := applicationstore.NewInstance(tx)
		historyStore := applicationhistorystore.NewInstance(tx)

		if err := store.Update(id, map[string]interface{}{
			"status": req.Status,
		}); err != nil {
			return err
		}
		_, err := historyStore.Create(dbmodels.ApplicationEvent{
			ApplicationID: id,
			ActorID:       actor.ID,
			ActorName:     actor.Name,
			FromStatus:    oldStatus,
			ToStatus:      req.Status,
			BucketChanged: bucketChanged,
			Note:          req.Note,
		})
		return err
	})
	if err != nil {
		log.WithError(err).WithField("application_id", id).Error("failed to update application status")
		return err
	}

	if bucketChanged {
		jobTitle := ""
		if rec.Job != nil {
			jobTitle = rec.Job.Title
		}
		stage := models.NormalizeApplicationStatus(req.Status)
		notify.Instance.SendStatusChangeEmail(rec.Email, rec.FullName(), jobTitle, stage.ToHuman())
	}
	return nil
}

// TabCounts renders the dashboard tab counters; every application lands in
// exactly one bucket, so the counts sum to the total.
func (i impl) TabCounts(jobID string) (counts []applicationapimodels.TabCount, total int, err error) {
	statuses, err := i.store.ListStatuses(jobID)
	if err != nil {
		log.WithError(err).Error("failed to load application statuses")
		return nil, 0, err
	}
	byBucket := models.CountByBucket(statuses)
	counts = make([]applicationapimodels.TabCount, 0, len(models.AllBuckets()))
	for _, bucket := range models.AllBuckets() {
		counts = append(counts, applicationapimodels.TabCount{
			Bucket: bucket,
			Name:   bucket.ToHuman(),
			Count:  byBucket[bucket],
		})
	}
	return counts, len(statuses), nil
}

// ExportByJob builds an xlsx workbook with every application for the job.
func (i impl) ExportByJob(jobID string) (fileName string, buf *bytes.Buffer, err error) {
	job, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return "", nil, err
	}
	if job == nil {
		return "", nil, ErrJobNotFound
	}
	records, err := i.store.ListAllByJob(jobID)
	if err != nil {
		log.WithError(err).WithField("job_id", jobID).Error("failed to load applications for export")
		return "", nil, err
	}
	buf, err = xlsexport.Instance.ExportApplicationList(job.Title, records)
	if err != nil {
		log.WithError(err).WithField("job_id", jobID).Error("failed to build applications workbook")
		return "", nil, err
	}
	fileName = fmt.Sprintf("applications_%s.xlsx", strings.ReplaceAll(strings.ToLower(job.Title), " ", "_"))
	return fileName, buf, nil
}

func (i impl) History(applicationID string) (list []applicationapimodels.ApplicationEventView, err error) {
	rec, err := i.store.GetByID(applicationID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrApplicationNotFound
	}
	events, err := i.historyStore.List(applicationID)
	if err != nil {
		log.WithError(err).WithField("application_id", applicationID).Error("failed to load application history")
		return nil, err
	}
	list = make([]applicationapimodels.ApplicationEventView, 0, len(events))
	for _, event := range events {
		list = append(list, event.ToModel())
	}
	return list, nil
}
