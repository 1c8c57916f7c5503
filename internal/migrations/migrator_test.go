package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(files, dir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		body, err := fs.ReadFile(files, dir+"/"+e.Name())
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", e.Name())
		assert.Contains(t, string(body), "-- +goose Down", e.Name())
	}
}

func TestSchemaEnforcesSeatInvariant(t *testing.T) {
	body, err := fs.ReadFile(files, dir+"/00001_init.sql")
	require.NoError(t, err)

	schema := string(body)
	assert.True(t, strings.Contains(schema, "available_seats >= 0 AND available_seats <= total_seats"))
	assert.True(t, strings.Contains(schema, "number_of_travelers >= 1"))
}
