package book

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/backoffice/internal/domain/deletion"
	"github.com/xiebiao/backoffice/internal/domain/publisher"
	apperrors "github.com/xiebiao/backoffice/pkg/errors"
)

type fakeRepo struct {
	calls int
}

func (f *fakeRepo) Create(_ context.Context, b *Book) error {
	f.calls++
	b.ID = 1
	return nil
}

func (f *fakeRepo) FindByID(context.Context, uint) (*Book, error) {
	f.calls++
	return nil, ErrBookNotFound
}

func (f *fakeRepo) List(context.Context) ([]*Book, error) {
	f.calls++
	return nil, nil
}

func (f *fakeRepo) Update(context.Context, *Book) error {
	f.calls++
	return nil
}

func (f *fakeRepo) Delete(context.Context, uint) error {
	f.calls++
	return nil
}

func (f *fakeRepo) DecrementStock(context.Context, uint) error {
	f.calls++
	return nil
}

func alfa() *publisher.Publisher {
	p := publisher.NewPublisher("Editora Alfa", "", "", "", "")
	p.ID = 7
	return p
}

func TestBook_PublisherReference(t *testing.T) {
	b := NewBook("Go", "Ana", "978", alfa(), 1, decimal.NewFromInt(10), "")
	assert.Equal(t, uint(7), b.PublisherID)
	assert.Equal(t, uint(7), b.PublisherRef())

	// 引用变化时丢弃已加载的出版社
	b.SetPublisherID(9)
	assert.Nil(t, b.Publisher)
	assert.Equal(t, uint(9), b.PublisherRef())

	b.SetPublisher(alfa())
	b.SetPublisherID(7)
	assert.NotNil(t, b.Publisher)
}

func TestBook_Basics(t *testing.T) {
	b := NewBook("Go na Prática", "Ana", "978", alfa(), 0, decimal.NewFromInt(10), "")
	assert.Equal(t, "Go na Prática (Ana)", b.String())
	assert.False(t, b.InStock())
	b.Stock = 1
	assert.True(t, b.InStock())
	assert.Equal(t, deletion.Hard, DeletePolicy)
}

func TestService_Create(t *testing.T) {
	price := decimal.RequireFromString("49.90")

	tests := []struct {
		name    string
		input   *Book
		wantErr bool
	}{
		{"合法", NewBook("Go", "Ana", "978", alfa(), 3, price, ""), false},
		{"库存为0也合法", NewBook("Go", "Ana", "978", alfa(), 0, decimal.Zero, ""), false},
		{"缺少出版社", NewBook("Go", "Ana", "978", nil, 3, price, ""), true},
		{"书名为空", NewBook("", "Ana", "978", alfa(), 3, price, ""), true},
		{"ISBN为空", NewBook("Go", "Ana", "", alfa(), 3, price, ""), true},
		{"书名只有空格", NewBook("   ", "Ana", "978", alfa(), 3, price, ""), true},
		{"ISBN只有空格", NewBook("Go", "Ana", "  ", alfa(), 3, price, ""), true},
		{"库存为负", NewBook("Go", "Ana", "978", alfa(), -1, price, ""), true},
		{"价格为负", NewBook("Go", "Ana", "978", alfa(), 1, decimal.NewFromInt(-1), ""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			err := NewService(repo).Create(context.Background(), tt.input)
			if tt.wantErr {
				assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidParams), "err=%v", err)
				assert.Zero(t, repo.calls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, repo.calls)
		})
	}
}

func TestService_IDValidation(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Get(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.ErrorIs(t, svc.Delete(ctx, 0), ErrInvalidID)
	assert.ErrorIs(t, svc.Update(ctx, NewBook("Go", "Ana", "978", alfa(), 1, decimal.Zero, "")), ErrInvalidID)
	assert.Zero(t, repo.calls)
}
