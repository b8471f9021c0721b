package book

import (
	"context"
)

// Repository 图书仓储接口
// 读操作会按PublisherID加载完整的出版社
type Repository interface {
	Create(ctx context.Context, b *Book) error

	// FindByID 不存在时返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// List 按书名排序
	List(ctx context.Context) ([]*Book, error)

	Update(ctx context.Context, b *Book) error

	// Delete 物理删除，已有购买记录时返回ErrBookInUse
	Delete(ctx context.Context, id uint) error

	// DecrementStock 单条语句完成"库存>0则减1"，未命中返回ErrOutOfStock
	// 在事务Context中调用时使用该事务
	DecrementStock(ctx context.Context, id uint) error
}
