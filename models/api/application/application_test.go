package applicationapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubmitRequestValidate(t *testing.T) {
	valid := SubmitRequest{
		JobID: "job-1",
		ApplicantData: ApplicantData{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane.doe@example.com",
			Phone:     "+1 555 0100",
		},
	}

	t.Run(`valid request check`, func(t *testing.T) {
		require.Nil(t, valid.Validate())
	})

	t.Run(`missing fields are named check`, func(t *testing.T) {
		req := valid
		req.Phone = ""
		err := req.Validate()
		require.NotNil(t, err)
		require.Equal(t, "Missing required field: phone", err.Error())

		req = valid
		req.FirstName = "   "
		err = req.Validate()
		require.NotNil(t, err)
		require.Equal(t, "Missing required field: first_name", err.Error())

		req = valid
		req.JobID = ""
		err = req.Validate()
		require.NotNil(t, err)
		require.Equal(t, "Missing required field: job_id", err.Error())
	})

	t.Run(`malformed email check`, func(t *testing.T) {
		req := valid
		req.Email = "not-an-email"
		require.NotNil(t, req.Validate())
	})
}

func TestStatusUpdateRequestValidate(t *testing.T) {
	t.Run(`status is required check`, func(t *testing.T) {
		require.NotNil(t, StatusUpdateRequest{}.Validate())
		require.NotNil(t, StatusUpdateRequest{Status: "  "}.Validate())
		require.Nil(t, StatusUpdateRequest{Status: "under_review"}.Validate())
	})
}
