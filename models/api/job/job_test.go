package jobapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJobDataValidate(t *testing.T) {
	t.Run(`title is required`, func(t *testing.T) {
		err := JobData{Title: "   "}.Validate()
		require.EqualError(t, err, "job title is required")
	})
	t.Run(`negative limits rejected`, func(t *testing.T) {
		err := JobData{Title: "Backend Engineer", AutoExpireDays: -1}.Validate()
		require.Error(t, err)
		err = JobData{Title: "Backend Engineer", MaxApplications: -5}.Validate()
		require.Error(t, err)
	})
	t.Run(`zero limits accepted`, func(t *testing.T) {
		require.NoError(t, JobData{Title: "Backend Engineer"}.Validate())
	})
}

func TestJobUpdateRequestValidate(t *testing.T) {
	t.Run(`unrecognized status rejected`, func(t *testing.T) {
		req := JobUpdateRequest{
			JobData: JobData{Title: "Backend Engineer"},
			Status:  "bogus_status",
		}
		require.EqualError(t, req.Validate(), "unknown job status")
	})
	t.Run(`canonical statuses accepted`, func(t *testing.T) {
		for _, status := range []string{"draft", "published", "inactive", "expired", "archived", "deactivated"} {
			req := JobUpdateRequest{
				JobData: JobData{Title: "Backend Engineer"},
				Status:  status,
			}
			require.NoError(t, req.Validate(), status)
		}
	})
	t.Run(`active alias accepted`, func(t *testing.T) {
		req := JobUpdateRequest{
			JobData: JobData{Title: "Backend Engineer"},
			Status:  "Active",
		}
		require.NoError(t, req.Validate())
	})
	t.Run(`empty status accepted`, func(t *testing.T) {
		req := JobUpdateRequest{JobData: JobData{Title: "Backend Engineer"}}
		require.NoError(t, req.Validate())
	})
}
