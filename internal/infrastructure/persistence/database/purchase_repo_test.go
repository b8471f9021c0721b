package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/backoffice/internal/domain/purchase"
)

func TestPurchaseRepository_ListOrderAndFilter(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	ctx := context.Background()

	pub := seedPublisher(t, repos.publishers, "Novatec")
	ana := seedCustomer(t, repos.customers, "Ana")
	bruno := seedCustomer(t, repos.customers, "Bruno")
	b := seedBook(t, repos.books, pub, "Go", "9780000000010", 10)

	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	older := &purchase.Purchase{CustomerID: ana.ID, BookID: b.ID, PurchasedAt: base}
	newer := &purchase.Purchase{CustomerID: ana.ID, BookID: b.ID, PurchasedAt: base.Add(48 * time.Hour)}
	other := &purchase.Purchase{CustomerID: bruno.ID, BookID: b.ID, PurchasedAt: base.Add(time.Hour)}
	for _, p := range []*purchase.Purchase{older, newer, other} {
		require.NoError(t, repos.purchases.Create(ctx, p))
		assert.NotZero(t, p.ID)
	}

	all, err := repos.purchases.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, newer.ID, all[0].ID)
	assert.Equal(t, other.ID, all[1].ID)
	assert.Equal(t, older.ID, all[2].ID)

	mine, err := repos.purchases.ListByCustomer(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, newer.ID, mine[0].ID)
	for _, p := range mine {
		require.NotNil(t, p.Customer)
		assert.Equal(t, "Ana", p.Customer.Name)
		require.NotNil(t, p.Book)
		assert.Equal(t, "Go", p.Book.Title)
		require.NotNil(t, p.Book.Publisher)
	}
	assert.True(t, mine[1].PurchasedAt.Equal(base))

	none, err := repos.purchases.ListByCustomer(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPurchaseRepository_SoftDeletedCustomer(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	ctx := context.Background()

	pub := seedPublisher(t, repos.publishers, "Novatec")
	c := seedCustomer(t, repos.customers, "Ana")
	b := seedBook(t, repos.books, pub, "Go", "9780000000011", 1)

	p := &purchase.Purchase{CustomerID: c.ID, BookID: b.ID, PurchasedAt: time.Now()}
	require.NoError(t, repos.purchases.Create(ctx, p))
	require.NoError(t, repos.customers.Delete(ctx, c.ID))

	found, err := repos.purchases.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, found.Customer)
	assert.Equal(t, c.ID, found.CustomerID)
	assert.NotNil(t, found.Book)
	assert.Contains(t, found.String(), "customer=N/A")
}

func TestPurchaseRepository_FindMissing(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)

	_, err := repos.purchases.FindByID(context.Background(), 1)
	assert.ErrorIs(t, err, purchase.ErrPurchaseNotFound)
}
