package database

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/backoffice/internal/domain/book"
	"github.com/xiebiao/backoffice/internal/domain/publisher"
	"github.com/xiebiao/backoffice/internal/domain/purchase"
)

func TestBookRepository_CreateResolvesPublisher(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	ctx := context.Background()

	pub := seedPublisher(t, repos.publishers, "Novatec")

	b := book.NewBook("Go em Ação", "Kennedy", "9788575224000", nil, 3, decimal.RequireFromString("89.90"), "Programação")
	b.SetPublisherID(pub.ID)
	require.NoError(t, repos.books.Create(ctx, b))
	assert.NotZero(t, b.ID)
	require.NotNil(t, b.Publisher)
	assert.Equal(t, "Novatec", b.Publisher.Name)

	found, err := repos.books.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go em Ação", found.Title)
	assert.Equal(t, 3, found.Stock)
	assert.True(t, found.Price.Equal(decimal.RequireFromString("89.90")), "price=%s", found.Price)
	require.NotNil(t, found.Publisher)
	assert.Equal(t, pub.ID, found.Publisher.ID)
	assert.Equal(t, pub.ID, found.PublisherRef())
}

func TestBookRepository_CreateValidatesReferences(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	ctx := context.Background()

	t.Run("出版社不存在", func(t *testing.T) {
		b := book.NewBook("Órfão", "A", "1111111111", nil, 1, decimal.Zero, "")
		b.SetPublisherID(42)
		assert.ErrorIs(t, repos.books.Create(ctx, b), publisher.ErrPublisherNotFound)
	})

	t.Run("ISBN重复", func(t *testing.T) {
		pub := seedPublisher(t, repos.publishers, "Novatec")
		seedBook(t, repos.books, pub, "Primeiro", "9780000000001", 1)

		dup := book.NewBook("Segundo", "B", "9780000000001", pub, 1, decimal.Zero, "")
		assert.ErrorIs(t, repos.books.Create(ctx, dup), book.ErrISBNDuplicate)
	})
}

func TestBookRepository_ListAndUpdate(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	ctx := context.Background()

	novatec := seedPublisher(t, repos.publishers, "Novatec")
	alta := seedPublisher(t, repos.publishers, "Alta Books")
	zeta := seedBook(t, repos.books, novatec, "Zeta", "9780000000002", 1)
	seedBook(t, repos.books, novatec, "Alfa", "9780000000003", 1)

	list, err := repos.books.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alfa", list[0].Title)
	assert.Equal(t, "Zeta", list[1].Title)
	for _, b := range list {
		require.NotNil(t, b.Publisher)
		assert.Equal(t, "Novatec", b.Publisher.Name)
	}

	zeta.SetPublisher(alta)
	zeta.Stock = 10
	zeta.Price = decimal.RequireFromString("12.50")
	require.NoError(t, repos.books.Update(ctx, zeta))

	found, err := repos.books.FindByID(ctx, zeta.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, found.Stock)
	assert.Equal(t, alta.ID, found.PublisherRef())
	assert.True(t, found.Price.Equal(decimal.RequireFromString("12.5")))

	ghost := book.NewBook("Ghost", "", "9789999999999", alta, 0, decimal.Zero, "")
	ghost.ID = 999
	assert.ErrorIs(t, repos.books.Update(ctx, ghost), book.ErrBookNotFound)
}

func TestBookRepository_DecrementStock(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	ctx := context.Background()

	pub := seedPublisher(t, repos.publishers, "Novatec")
	b := seedBook(t, repos.books, pub, "Go", "9780000000004", 2)

	require.NoError(t, repos.books.DecrementStock(ctx, b.ID))
	require.NoError(t, repos.books.DecrementStock(ctx, b.ID))
	assert.ErrorIs(t, repos.books.DecrementStock(ctx, b.ID), book.ErrOutOfStock)

	found, err := repos.books.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, found.Stock, "库存不能被扣成负数")

	// 图书不存在与库存不足是同一个错误
	assert.ErrorIs(t, repos.books.DecrementStock(ctx, 999), book.ErrOutOfStock)
}

func TestBookRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	ctx := context.Background()

	pub := seedPublisher(t, repos.publishers, "Novatec")
	c := seedCustomer(t, repos.customers, "Ana")
	sold := seedBook(t, repos.books, pub, "Vendido", "9780000000005", 1)
	unsold := seedBook(t, repos.books, pub, "Encalhado", "9780000000006", 1)

	require.NoError(t, repos.purchases.Create(ctx, &purchase.Purchase{
		CustomerID: c.ID, BookID: sold.ID, PurchasedAt: time.Now(),
	}))

	assert.ErrorIs(t, repos.books.Delete(ctx, sold.ID), book.ErrBookInUse)

	require.NoError(t, repos.books.Delete(ctx, unsold.ID))
	_, err := repos.books.FindByID(ctx, unsold.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
	assert.ErrorIs(t, repos.books.Delete(ctx, unsold.ID), book.ErrBookNotFound)
}
