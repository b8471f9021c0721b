package operator

import (
	"context"
)

// Repository 操作员仓储接口
type Repository interface {
	// Create 邮箱已存在时返回errors.ErrEmailDuplicate
	Create(ctx context.Context, op *Operator) error

	// FindByID 不存在时返回ErrOperatorNotFound
	FindByID(ctx context.Context, id uint) (*Operator, error)

	// FindByEmail 不存在时返回ErrOperatorNotFound
	FindByEmail(ctx context.Context, email string) (*Operator, error)
}
