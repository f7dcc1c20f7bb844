package authapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterRequestValidate(t *testing.T) {
	valid := RegisterRequest{
		Email:     "jane.doe@example.com",
		Password:  "secret-1",
		FirstName: "Jane",
		LastName:  "Doe",
	}

	t.Run(`valid request check`, func(t *testing.T) {
		require.Nil(t, valid.Validate())
	})

	t.Run(`malformed email check`, func(t *testing.T) {
		req := valid
		req.Email = "jane.doe"
		require.NotNil(t, req.Validate())
	})

	t.Run(`short password check`, func(t *testing.T) {
		req := valid
		req.Password = "12345"
		require.NotNil(t, req.Validate())
	})

	t.Run(`short names check`, func(t *testing.T) {
		req := valid
		req.FirstName = "J"
		require.NotNil(t, req.Validate())

		req = valid
		req.LastName = " D "
		require.NotNil(t, req.Validate())
	})
}
