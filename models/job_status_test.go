package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJobStatus(t *testing.T) {
	t.Run(`NormalizeJobStatus status column wins check`, func(t *testing.T) {
		require.Equal(t, JobStatusDraft, NormalizeJobStatus("draft", true))
		require.Equal(t, JobStatusArchived, NormalizeJobStatus("archived", true))
		require.Equal(t, JobStatusPublished, NormalizeJobStatus("published", false))
	})

	t.Run(`NormalizeJobStatus posted fallback check`, func(t *testing.T) {
		require.Equal(t, JobStatusPublished, NormalizeJobStatus("", true))
		require.Equal(t, JobStatusDraft, NormalizeJobStatus("", false))
	})

	t.Run(`NormalizeJobStatus active alias check`, func(t *testing.T) {
		require.Equal(t, JobStatusPublished, NormalizeJobStatus("active", false))
		require.Equal(t, JobStatusPublished, NormalizeJobStatus(" Active ", false))
	})

	t.Run(`IsKnownJobStatus vocabulary check`, func(t *testing.T) {
		for _, raw := range []string{"draft", "published", "active", " Archived ", "deactivated", "inactive", "expired"} {
			require.Equal(t, true, IsKnownJobStatus(raw), raw)
		}
		require.Equal(t, false, IsKnownJobStatus("bogus_status"))
		require.Equal(t, false, IsKnownJobStatus(""))
	})

	t.Run(`EffectiveJobStatus expires by time check`, func(t *testing.T) {
		now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		posted := now.AddDate(0, 0, -31)
		status := EffectiveJobStatus(JobStatusPublished, posted, 30, 0, 50, now)
		require.Equal(t, JobStatusExpired, status)

		posted = now.AddDate(0, 0, -10)
		status = EffectiveJobStatus(JobStatusPublished, posted, 30, 0, 50, now)
		require.Equal(t, JobStatusPublished, status)
	})

	t.Run(`EffectiveJobStatus expires by application cap check`, func(t *testing.T) {
		now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		posted := now.AddDate(0, 0, -1)
		status := EffectiveJobStatus(JobStatusPublished, posted, 30, 50, 50, now)
		require.Equal(t, JobStatusExpired, status)

		status = EffectiveJobStatus(JobStatusPublished, posted, 30, 49, 50, now)
		require.Equal(t, JobStatusPublished, status)
	})

	t.Run(`EffectiveJobStatus only touches published jobs check`, func(t *testing.T) {
		now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		posted := now.AddDate(0, 0, -100)
		status := EffectiveJobStatus(JobStatusDraft, posted, 30, 100, 50, now)
		require.Equal(t, JobStatusDraft, status)

		status = EffectiveJobStatus(JobStatusArchived, posted, 30, 100, 50, now)
		require.Equal(t, JobStatusArchived, status)
	})

	t.Run(`EffectiveJobStatus zero limits never expire check`, func(t *testing.T) {
		now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		posted := now.AddDate(0, 0, -365)
		status := EffectiveJobStatus(JobStatusPublished, posted, 0, 1000, 0, now)
		require.Equal(t, JobStatusPublished, status)
	})

	t.Run(`transition gates check`, func(t *testing.T) {
		require.Equal(t, true, JobStatusDraft.CanPublish())
		require.Equal(t, false, JobStatusPublished.CanPublish())

		require.Equal(t, true, JobStatusPublished.CanDeactivate())
		require.Equal(t, false, JobStatusDraft.CanDeactivate())

		require.Equal(t, true, JobStatusPublished.CanArchive())
		require.Equal(t, false, JobStatusArchived.CanArchive())

		require.Equal(t, true, JobStatusExpired.CanReactivate())
		require.Equal(t, true, JobStatusDeactivated.CanReactivate())
		require.Equal(t, true, JobStatusArchived.CanReactivate())
		require.Equal(t, false, JobStatusDraft.CanReactivate())
		require.Equal(t, false, JobStatusPublished.CanReactivate())
	})
}
