package main

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// The swagger middleware stats its FilePath at startup and panics when the
// file is missing, so the generated spec has to ship with the binary.
func TestSwaggerSpecShips(t *testing.T) {
	t.Run(`spec file is present and parses`, func(t *testing.T) {
		raw, err := os.ReadFile("./docs/swagger.json")
		require.NoError(t, err)

		var spec struct {
			Swagger string                     `json:"swagger"`
			Paths   map[string]json.RawMessage `json:"paths"`
		}
		require.NoError(t, json.Unmarshal(raw, &spec))
		require.Equal(t, "2.0", spec.Swagger)
		require.NotEmpty(t, spec.Paths)
	})
}
