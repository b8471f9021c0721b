package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xiebiao/backoffice/internal/domain/book"
	"github.com/xiebiao/backoffice/internal/domain/customer"
	"github.com/xiebiao/backoffice/internal/domain/publisher"
	"github.com/xiebiao/backoffice/internal/domain/purchase"
	"github.com/xiebiao/backoffice/internal/infrastructure/config"
)

func testDatabaseConfig(t *testing.T) config.DatabaseConfig {
	t.Helper()
	return config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "backoffice.db"),
		// sqlite单写者；单连接让事务串行执行
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}
}

// setupTestDB 每个测试使用独立的sqlite文件
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := NewDB(testDatabaseConfig(t))
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

type testRepos struct {
	customers  customer.Repository
	publishers publisher.Repository
	books      book.Repository
	purchases  purchase.Repository
}

func newTestRepos(db *gorm.DB) testRepos {
	customers := NewCustomerRepository(db)
	publishers := NewPublisherRepository(db)
	books := NewBookRepository(db, publishers)
	return testRepos{
		customers:  customers,
		publishers: publishers,
		books:      books,
		purchases:  NewPurchaseRepository(db, customers, books),
	}
}

func seedPublisher(t *testing.T, repo publisher.Repository, name string) *publisher.Publisher {
	t.Helper()
	p := publisher.NewPublisher(name, "Rua A, 100", "1133334444", "Maria", "Técnico")
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func seedCustomer(t *testing.T, repo customer.Repository, name string) *customer.Customer {
	t.Helper()
	c := customer.NewCustomer(name, "Rua B, 200", "11999990000", "12345678900", customer.PersonIndividual)
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func seedBook(t *testing.T, repo book.Repository, pub *publisher.Publisher, title, isbn string, stock int) *book.Book {
	t.Helper()
	b := book.NewBook(title, "Autor", isbn, pub, stock, decimal.RequireFromString("49.90"), "Tecnologia")
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}
