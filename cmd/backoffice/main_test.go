package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkipMigrationsFlag(t *testing.T) {
	t.Cleanup(func() { skipMigrations = false })

	require.NoError(t, rootCmd.ParseFlags([]string{"--skip-migrations"}))
	assert.True(t, skipMigrations, "bare command")

	skipMigrations = false
	require.NoError(t, serveCmd.ParseFlags([]string{"--skip-migrations"}))
	assert.True(t, skipMigrations, "serve subcommand")

	assert.Nil(t, migrateCmd.Flags().Lookup("skip-migrations"))
}
