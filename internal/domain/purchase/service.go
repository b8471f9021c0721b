package purchase

import (
	"context"
)

// Workflow 购买流程：原子地扣减库存并写入购买记录
// 由application层实现
type Workflow interface {
	Execute(ctx context.Context, customerID, bookID uint) (*Purchase, error)
}

// Service 购买用例门面
type Service interface {
	// RegisterPurchase 登记一次购买（一本书）
	RegisterPurchase(ctx context.Context, customerID, bookID uint) (*Purchase, error)
	Get(ctx context.Context, id uint) (*Purchase, error)
	ListAll(ctx context.Context) ([]*Purchase, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]*Purchase, error)
}

type service struct {
	repo     Repository
	workflow Workflow
}

// NewService 创建购买服务
func NewService(repo Repository, workflow Workflow) Service {
	return &service{repo: repo, workflow: workflow}
}

func (s *service) RegisterPurchase(ctx context.Context, customerID, bookID uint) (*Purchase, error) {
	if customerID == 0 {
		return nil, ErrInvalidCustomerID
	}
	if bookID == 0 {
		return nil, ErrInvalidBookID
	}
	return s.workflow.Execute(ctx, customerID, bookID)
}

func (s *service) Get(ctx context.Context, id uint) (*Purchase, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListAll(ctx context.Context) ([]*Purchase, error) {
	return s.repo.List(ctx)
}

func (s *service) ListByCustomer(ctx context.Context, customerID uint) ([]*Purchase, error) {
	if customerID == 0 {
		return nil, ErrInvalidCustomerID
	}
	return s.repo.ListByCustomer(ctx, customerID)
}
