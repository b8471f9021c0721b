package purchase

import (
	"context"
)

// Repository 购买记录仓储接口
// 没有Update/Delete：购买记录只追加
type Repository interface {
	// Create 插入购买记录并回填ID，未影响任何行时返回ErrInsertFailed
	// 在事务Context中调用时使用该事务
	Create(ctx context.Context, p *Purchase) error

	// FindByID 不存在时返回ErrPurchaseNotFound
	FindByID(ctx context.Context, id uint) (*Purchase, error)

	// List 按购买时间倒序
	List(ctx context.Context) ([]*Purchase, error)

	// ListByCustomer 某客户的购买记录，按购买时间倒序
	ListByCustomer(ctx context.Context, customerID uint) ([]*Purchase, error)
}
