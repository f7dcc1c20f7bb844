package jobhandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"ats-backend/db"
	applicationhistorystore "ats-backend/lib/application-history/store"
	applicationstore "ats-backend/lib/application/store"
	jobstore "ats-backend/lib/job/store"
	"ats-backend/models"
	jobapimodels "ats-backend/models/api/job"
	dbmodels "ats-backend/models/db"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrIllegalTransition = errors.New("status change not allowed")
)

type Provider interface {
	Create(req jobapimodels.JobCreateRequest) (id string, err error)
	GetByID(id string) (jobapimodels.JobView, error)
	Update(id string, req jobapimodels.JobUpdateRequest) error
	Delete(id string) error
	List(filter dbmodels.JobFilter) (list []jobapimodels.JobView, err error)
	PublicList() (list []jobapimodels.PublicJobView, err error)
	Publish(id string) error
	Deactivate(id string) error
	Archive(id string) error
	Reactivate(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            jobstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store            jobstore.Provider
	applicationStore applicationstore.Provider
}

func (i impl) Create(req jobapimodels.JobCreateRequest) (id string, err error) {
	rec := dbmodels.Job{
		Title:           req.Title,
		Department:      req.Department,
		Location:        req.Location,
		EmploymentType:  req.EmploymentType,
		SalaryRange:     req.SalaryRange,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Benefits:        req.Benefits,
		AutoExpireDays:  req.AutoExpireDays,
		MaxApplications: req.MaxApplications,
		Status:          models.JobStatusDraft,
	}
	if rec.AutoExpireDays == 0 {
		rec.AutoExpireDays = dbmodels.DefaultAutoExpireDays
	}
	if rec.MaxApplications == 0 {
		rec.MaxApplications = dbmodels.DefaultMaxApplications
	}
	if req.PublishNow {
		rec.Status = models.JobStatusPublished
		rec.Posted = true
		rec.PostedDate = time.Now()
	}
	return i.store.Create(rec)
}

func (i impl) GetByID(id string) (jobapimodels.JobView, error) {
	rec, count, err := i.getWithCount(id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	return rec.ToModel(count, time.Now()), nil
}

func (i impl) Update(id string, req jobapimodels.JobUpdateRequest) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrJobNotFound
	}
	updMap := map[string]interface{}{
		"title":           req.Title,
		"department":      req.Department,
		"location":        req.Location,
		"employment_type": req.EmploymentType,
		"salary_range":    req.SalaryRange,
		"description":     req.Description,
		"requirements":    req.Requirements,
		"benefits":        req.Benefits,
	}
	if req.AutoExpireDays > 0 {
		updMap["auto_expire_days"] = req.AutoExpireDays
	}
	if req.MaxApplications > 0 {
		updMap["max_applications"] = req.MaxApplications
	}
	if req.Status != "" {
		status := models.NormalizeJobStatus(req.Status, rec.Posted)
		updMap["status"] = status
		updMap["posted"] = status == models.JobStatusPublished
		// entering published restarts the expiry window, same as Publish
		if status == models.JobStatusPublished && rec.StoredStatus() != models.JobStatusPublished {
			updMap["posted_date"] = time.Now()
		}
	}
	return i.store.Update(id, updMap)
}

// Delete removes the job and everything hanging off it. Cascade runs inside
// one transaction: audit events, applications, then the job row.
func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrJobNotFound
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		historyStore := applicationhistorystore.NewInstance(tx)
		applicationStore := applicationstore.NewInstance(tx)
		jobStore := jobstore.NewInstance(tx)

		if err := historyStore.DeleteByJobID(id); err != nil {
			return err
		}
		if err := applicationStore.DeleteByJobID(id); err != nil {
			return err
		}
		return jobStore.Delete(id)
	})
	if err != nil {
		log.WithError(err).WithField("job_id", id).Error("failed to delete job")
	}
	return err
}

func (i impl) List(filter dbmodels.JobFilter) (list []jobapimodels.JobView, err error) {
	jobs, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("failed to list jobs")
		return nil, err
	}
	counts, err := i.store.CountApplicationsByJob()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	list = make([]jobapimodels.JobView, 0, len(jobs))
	for _, job := range jobs {
		list = append(list, job.ToModel(counts[job.ID], now))
	}
	return list, nil
}

// PublicList feeds the careers page: only jobs whose effective status is still
// published, expiry applied at read time.
func (i impl) PublicList() (list []jobapimodels.PublicJobView, err error) {
	jobs, err := i.store.ListPublished()
	if err != nil {
		log.WithError(err).Error("failed to list published jobs")
		return nil, err
	}
	counts, err := i.store.CountApplicationsByJob()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	list = make([]jobapimodels.PublicJobView, 0, len(jobs))
	for _, job := range jobs {
		if job.EffectiveStatus(counts[job.ID], now) != models.JobStatusPublished {
			continue
		}
		list = append(list, jobapimodels.PublicJobView{
			ID:             job.ID,
			Title:          job.Title,
			Department:     job.Department,
			Location:       job.Location,
			EmploymentType: job.EmploymentType,
			SalaryRange:    job.SalaryRange,
			Description:    job.Description,
			Requirements:   job.Requirements,
			Benefits:       job.Benefits,
			PostedDate:     job.PostedDate,
		})
	}
	return list, nil
}

func (i impl) Publish(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrJobNotFound
	}
	if !rec.StoredStatus().CanPublish() {
		return errors.Wrapf(ErrIllegalTransition, "cannot publish a job in status %q", rec.StoredStatus())
	}
	return i.store.Update(id, map[string]interface{}{
		"status":      models.JobStatusPublished,
		"posted":      true,
		"posted_date": time.Now(),
	})
}

func (i impl) Deactivate(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrJobNotFound
	}
	if !rec.StoredStatus().CanDeactivate() {
		return errors.Wrapf(ErrIllegalTransition, "cannot deactivate a job in status %q", rec.StoredStatus())
	}
	return i.store.Update(id, map[string]interface{}{
		"status": models.JobStatusDeactivated,
		"posted": false,
	})
}

// Archive hides the job from the careers listing while keeping the record and
// its applications.
func (i impl) Archive(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrJobNotFound
	}
	if !rec.StoredStatus().CanArchive() {
		return errors.Wrap(ErrIllegalTransition, "job is already archived")
	}
	return i.store.Update(id, map[string]interface{}{
		"status": models.JobStatusArchived,
		"posted": false,
	})
}

// Reactivate returns a hidden job to the careers listing and restarts the
// expiry clock.
func (i impl) Reactivate(id string) error {
	rec, count, err := i.getWithCount(id)
	if err != nil {
		return err
	}
	// the stored column may still read published while the job is effectively
	// expired, judge the transition on the effective status
	effective := rec.EffectiveStatus(count, time.Now())
	if !effective.CanReactivate() {
		return errors.Wrapf(ErrIllegalTransition, "cannot reactivate a job in status %q", effective)
	}
	return i.store.Update(id, map[string]interface{}{
		"status":      models.JobStatusPublished,
		"posted":      true,
		"posted_date": time.Now(),
	})
}

func (i impl) getWithCount(id string) (*dbmodels.Job, int, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, 0, err
	}
	if rec == nil {
		return nil, 0, ErrJobNotFound
	}
	count, err := i.store.CountApplications(id)
	if err != nil {
		return nil, 0, err
	}
	return rec, count, nil
}
