package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruitflow/recruitflow/test/util"
)

func newTestClient(t *testing.T) *Client {
	entClient, db := util.SetupTestDatabase(t)
	return NewClientFromEnt(entClient, db)
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestUniqueApplicationPerCandidatePosition(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	cand, err := client.Candidate.Create().
		SetFirstName("Ada").
		SetLastName("Lovelace").
		SetEmail("ada@example.com").
		Save(ctx)
	require.NoError(t, err)

	pos, err := client.Position.Create().
		SetTitle("Backend Engineer").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Application.Create().
		SetCandidateID(cand.ID).
		SetPositionID(pos.ID).
		Save(ctx)
	require.NoError(t, err)

	// Second application for the same pair must violate the unique index.
	_, err = client.Application.Create().
		SetCandidateID(cand.ID).
		SetPositionID(pos.ID).
		Save(ctx)
	require.Error(t, err)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DB_PASSWORD", "test")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "recruitflow", cfg.User)
		assert.Equal(t, "recruitflow", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
	})

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_USER", "admin")
		t.Setenv("DB_NAME", "production")
		t.Setenv("DB_SSLMODE", "require")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "admin", cfg.User)
		assert.Equal(t, "production", cfg.Database)
		assert.Equal(t, "require", cfg.SSLMode)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("DB_PORT", "not-a-port")

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_PORT")
	})
}
