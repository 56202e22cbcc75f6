package repository

import (
	"context"
	"testing"

	"probuilder/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSQLiteRepository(t *testing.T) *QuoteRequestGormRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a second pooled connection would open a different in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	repo := NewQuoteRequestGormRepository(db, "requests")
	require.NoError(t, repo.Migrate())
	return repo
}

func TestQuoteRequestGormRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create get list", func(t *testing.T) {
		repo := newSQLiteRepository(t)

		_, err := repo.Create(ctx, sampleQuoteRequest("q1"))
		require.NoError(t, err)
		_, err = repo.Create(ctx, sampleQuoteRequest("q2"))
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, "q1")
		require.NoError(t, err)
		assert.Equal(t, "q1", got.ID)
		assert.Equal(t, "ana@example.com", got.ContactEmail)
		assert.Equal(t, entities.QuoteRequestStatusPendente, got.Status)
		assert.True(t, got.CreatedAt.Equal(sampleQuoteRequest("q1").CreatedAt))

		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		repo := newSQLiteRepository(t)
		_, err := repo.Create(ctx, sampleQuoteRequest("q1"))
		require.NoError(t, err)
		_, err = repo.Create(ctx, sampleQuoteRequest("q1"))
		assert.Error(t, err)
	})

	t.Run("get unknown returns zero", func(t *testing.T) {
		repo := newSQLiteRepository(t)
		got, err := repo.GetByID(ctx, "missing")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("update status", func(t *testing.T) {
		repo := newSQLiteRepository(t)
		_, _ = repo.Create(ctx, sampleQuoteRequest("q1"))
		_, _ = repo.Create(ctx, sampleQuoteRequest("q2"))

		got, err := repo.UpdateStatus(ctx, "q1", entities.QuoteRequestStatusAceite)
		require.NoError(t, err)
		assert.Equal(t, entities.QuoteRequestStatusAceite, got.Status)
		assert.Equal(t, "Pintar sala", got.Description)

		other, err := repo.GetByID(ctx, "q2")
		require.NoError(t, err)
		assert.Equal(t, entities.QuoteRequestStatusPendente, other.Status)
	})

	t.Run("update status unknown id returns zero", func(t *testing.T) {
		repo := newSQLiteRepository(t)
		got, err := repo.UpdateStatus(ctx, "missing", entities.QuoteRequestStatusAceite)
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("delete", func(t *testing.T) {
		repo := newSQLiteRepository(t)
		_, _ = repo.Create(ctx, sampleQuoteRequest("q1"))
		_, _ = repo.Create(ctx, sampleQuoteRequest("q2"))

		require.NoError(t, repo.Delete(ctx, "q1"))
		require.NoError(t, repo.Delete(ctx, "q1"))

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "q2", list[0].ID)
	})
}
