package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/backoffice/internal/domain/publisher"
)

func TestPublisherRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPublisherRepository(db)
	ctx := context.Background()

	novatec := seedPublisher(t, repo, "Novatec")
	seedPublisher(t, repo, "Alta Books")

	t.Run("按ID查询", func(t *testing.T) {
		found, err := repo.FindByID(ctx, novatec.ID)
		require.NoError(t, err)
		assert.Equal(t, novatec, found)
	})

	t.Run("按名称查询", func(t *testing.T) {
		found, err := repo.FindByName(ctx, "Novatec")
		require.NoError(t, err)
		assert.Equal(t, novatec.ID, found.ID)

		_, err = repo.FindByName(ctx, "Inexistente")
		assert.ErrorIs(t, err, publisher.ErrPublisherNotFound)
	})

	t.Run("列表按名称排序", func(t *testing.T) {
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Alta Books", list[0].Name)
		assert.Equal(t, "Novatec", list[1].Name)
	})

	t.Run("更新", func(t *testing.T) {
		novatec.Manager = "Rubens"
		require.NoError(t, repo.Update(ctx, novatec))

		found, err := repo.FindByID(ctx, novatec.ID)
		require.NoError(t, err)
		assert.Equal(t, "Rubens", found.Manager)

		ghost := &publisher.Publisher{ID: 999, Name: "Ghost"}
		assert.ErrorIs(t, repo.Update(ctx, ghost), publisher.ErrPublisherNotFound)
	})

	t.Run("物理删除", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, novatec.ID))

		_, err := repo.FindByID(ctx, novatec.ID)
		assert.ErrorIs(t, err, publisher.ErrPublisherNotFound)

		var count int64
		require.NoError(t, db.Model(&PublisherModel{}).Where("id = ?", novatec.ID).Count(&count).Error)
		assert.Zero(t, count)

		assert.ErrorIs(t, repo.Delete(ctx, novatec.ID), publisher.ErrPublisherNotFound)
	})
}

func TestPublisherRepository_DeleteInUse(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	ctx := context.Background()

	pub := seedPublisher(t, repos.publishers, "Novatec")
	seedBook(t, repos.books, pub, "Go", "9788575220000", 1)

	assert.ErrorIs(t, repos.publishers.Delete(ctx, pub.ID), publisher.ErrPublisherInUse)

	_, err := repos.publishers.FindByID(ctx, pub.ID)
	assert.NoError(t, err)
}
