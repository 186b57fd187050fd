package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsAreOrdered(t *testing.T) {
	files, err := MigrationFiles()
	require.NoError(t, err)
	require.Len(t, files, 3)

	assert.Equal(t, "00001_initial_schema.sql", files[0])
	for _, f := range files {
		assert.True(t, strings.HasSuffix(f, ".sql"))
	}
}

func TestMigrationsDeclareGooseSections(t *testing.T) {
	files, err := MigrationFiles()
	require.NoError(t, err)

	for _, f := range files {
		data, err := migrationsFS.ReadFile(migrationsDir + "/" + f)
		require.NoError(t, err)
		body := string(data)
		assert.Contains(t, body, "-- +goose Up", f)
		assert.Contains(t, body, "-- +goose Down", f)
	}
}
