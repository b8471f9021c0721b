package publisher

import (
	"context"
)

// Repository 出版社仓储接口
type Repository interface {
	Create(ctx context.Context, p *Publisher) error

	// FindByID 不存在时返回ErrPublisherNotFound
	FindByID(ctx context.Context, id uint) (*Publisher, error)

	// FindByName 精确匹配名称，不存在时返回ErrPublisherNotFound
	FindByName(ctx context.Context, name string) (*Publisher, error)

	// List 按名称排序
	List(ctx context.Context) ([]*Publisher, error)

	Update(ctx context.Context, p *Publisher) error

	// Delete 物理删除，有关联图书时返回ErrPublisherInUse
	Delete(ctx context.Context, id uint) error
}
