package main

import (
	"context"
	"path/filepath"
	"testing"

	"probuilder/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_SQLite(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{
		Driver:     config.StoreDriverSQLite,
		Table:      "requests",
		SQLitePath: filepath.Join(t.TempDir(), "probuilder.db"),
	}}

	require.NoError(t, migrate(context.Background(), cfg))
	// running twice is harmless
	require.NoError(t, migrate(context.Background(), cfg))
}

func TestMigrate_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "mongo"}}
	assert.Error(t, migrate(context.Background(), cfg))
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	f := cmd.Flags().Lookup("timeout")
	require.NotNil(t, f)
	assert.Equal(t, "1m0s", f.DefValue)
}
