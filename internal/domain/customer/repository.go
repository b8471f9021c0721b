package customer

import (
	"context"
)

// Repository 客户仓储接口
// 所有读操作只返回active=true的客户
type Repository interface {
	// Create 插入客户并回填ID
	Create(ctx context.Context, c *Customer) error

	// FindByID 不存在或已软删除时返回ErrCustomerNotFound
	FindByID(ctx context.Context, id uint) (*Customer, error)

	// List 按姓名排序
	List(ctx context.Context) ([]*Customer, error)

	// Update 更新全部字段，目标不存在时返回ErrCustomerNotFound
	Update(ctx context.Context, c *Customer) error

	// Delete 软删除，目标不存在时返回ErrCustomerNotFound
	Delete(ctx context.Context, id uint) error
}
