package dbmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ats-backend/models"
)

func TestJobModel(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run(`legacy posted row reads as published check`, func(t *testing.T) {
		job := Job{Posted: true, PostedDate: now.AddDate(0, 0, -1), AutoExpireDays: 30, MaxApplications: 50}
		require.Equal(t, models.JobStatusPublished, job.StoredStatus())
		require.Equal(t, models.JobStatusPublished, job.EffectiveStatus(0, now))
	})

	t.Run(`published row past the window reads expired check`, func(t *testing.T) {
		job := Job{
			Status:          models.JobStatusPublished,
			Posted:          true,
			PostedDate:      now.AddDate(0, 0, -45),
			AutoExpireDays:  30,
			MaxApplications: 50,
		}
		require.Equal(t, models.JobStatusPublished, job.StoredStatus())
		require.Equal(t, models.JobStatusExpired, job.EffectiveStatus(0, now))
	})

	t.Run(`ToModel exposes both statuses check`, func(t *testing.T) {
		job := Job{
			Title:           "Backend Engineer",
			Status:          models.JobStatusPublished,
			Posted:          true,
			PostedDate:      now.AddDate(0, 0, -1),
			AutoExpireDays:  30,
			MaxApplications: 50,
		}
		view := job.ToModel(50, now)
		require.Equal(t, models.JobStatusExpired, view.Status)
		require.Equal(t, "Expired", view.StatusName)
		require.Equal(t, models.JobStatusPublished, view.StoredStatus)
		require.Equal(t, 50, view.ApplicationCount)
	})
}
