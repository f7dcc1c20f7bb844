package jobhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ats-backend/models"
	jobapimodels "ats-backend/models/api/job"
	dbmodels "ats-backend/models/db"
)

type stubJobStore struct {
	job     *dbmodels.Job
	updates map[string]map[string]interface{}
}

func newStubJobStore(job *dbmodels.Job) *stubJobStore {
	return &stubJobStore{
		job:     job,
		updates: map[string]map[string]interface{}{},
	}
}

func (s *stubJobStore) Create(rec dbmodels.Job) (string, error) { return rec.ID, nil }
func (s *stubJobStore) GetByID(id string) (*dbmodels.Job, error) {
	if s.job != nil && s.job.ID == id {
		return s.job, nil
	}
	return nil, nil
}
func (s *stubJobStore) Update(id string, updMap map[string]interface{}) error {
	s.updates[id] = updMap
	return nil
}
func (s *stubJobStore) Delete(id string) error                                 { return nil }
func (s *stubJobStore) List(filter dbmodels.JobFilter) ([]dbmodels.Job, error) { return nil, nil }
func (s *stubJobStore) ListPublished() ([]dbmodels.Job, error)                 { return nil, nil }
func (s *stubJobStore) CountApplications(jobID string) (int, error)            { return 0, nil }
func (s *stubJobStore) CountApplicationsByJob() (map[string]int, error) {
	return map[string]int{}, nil
}

func TestUpdateStatusTransition(t *testing.T) {
	t.Run(`update into published restarts the posting clock check`, func(t *testing.T) {
		staleDate := time.Now().AddDate(0, 0, -90)
		store := newStubJobStore(&dbmodels.Job{
			BaseModel:  dbmodels.BaseModel{ID: "j1"},
			Title:      "Backend Engineer",
			Status:     models.JobStatusDraft,
			PostedDate: staleDate,
		})
		err := impl{store: store}.Update("j1", jobapimodels.JobUpdateRequest{
			JobData: jobapimodels.JobData{Title: "Backend Engineer"},
			Status:  "published",
		})
		require.NoError(t, err)

		updMap := store.updates["j1"]
		require.NotNil(t, updMap)
		require.Equal(t, models.JobStatusPublished, updMap["status"])
		require.Equal(t, true, updMap["posted"])
		postedDate, ok := updMap["posted_date"].(time.Time)
		require.Equal(t, true, ok)
		require.Greater(t, postedDate.Unix(), staleDate.Unix())
	})

	t.Run(`already published keeps its posting date check`, func(t *testing.T) {
		store := newStubJobStore(&dbmodels.Job{
			BaseModel:  dbmodels.BaseModel{ID: "j1"},
			Title:      "Backend Engineer",
			Status:     models.JobStatusPublished,
			Posted:     true,
			PostedDate: time.Now().AddDate(0, 0, -5),
		})
		err := impl{store: store}.Update("j1", jobapimodels.JobUpdateRequest{
			JobData: jobapimodels.JobData{Title: "Backend Engineer"},
			Status:  "published",
		})
		require.NoError(t, err)

		updMap := store.updates["j1"]
		require.NotNil(t, updMap)
		_, present := updMap["posted_date"]
		require.Equal(t, false, present)
	})

	t.Run(`leaving published keeps the date too check`, func(t *testing.T) {
		store := newStubJobStore(&dbmodels.Job{
			BaseModel: dbmodels.BaseModel{ID: "j1"},
			Title:     "Backend Engineer",
			Status:    models.JobStatusPublished,
			Posted:    true,
		})
		err := impl{store: store}.Update("j1", jobapimodels.JobUpdateRequest{
			JobData: jobapimodels.JobData{Title: "Backend Engineer"},
			Status:  "deactivated",
		})
		require.NoError(t, err)

		updMap := store.updates["j1"]
		require.NotNil(t, updMap)
		require.Equal(t, models.JobStatusDeactivated, updMap["status"])
		require.Equal(t, false, updMap["posted"])
		_, present := updMap["posted_date"]
		require.Equal(t, false, present)
	})

	t.Run(`unknown job check`, func(t *testing.T) {
		store := newStubJobStore(nil)
		err := impl{store: store}.Update("missing", jobapimodels.JobUpdateRequest{
			JobData: jobapimodels.JobData{Title: "Backend Engineer"},
		})
		require.ErrorIs(t, err, ErrJobNotFound)
	})
}
