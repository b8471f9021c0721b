package database

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/xiebiao/backoffice/internal/domain/book"
	"github.com/xiebiao/backoffice/internal/domain/customer"
	"github.com/xiebiao/backoffice/internal/domain/purchase"
	apperrors "github.com/xiebiao/backoffice/pkg/errors"
)

// purchaseRepository 购买记录仓储实现
// 读取时按ID重新加载客户和图书；软删除的客户加载结果为nil
type purchaseRepository struct {
	db        *gorm.DB
	customers customer.Repository
	books     book.Repository
}

// NewPurchaseRepository 创建购买记录仓储
func NewPurchaseRepository(db *gorm.DB, customers customer.Repository, books book.Repository) purchase.Repository {
	return &purchaseRepository{db: db, customers: customers, books: books}
}

func (r *purchaseRepository) Create(ctx context.Context, p *purchase.Purchase) error {
	model := &PurchaseModel{
		CustomerID:  p.CustomerID,
		BookID:      p.BookID,
		PurchasedAt: p.PurchasedAt,
	}

	result := dbFrom(ctx, r.db).Create(model)
	if result.Error != nil {
		log.Error().Err(result.Error).
			Uint("customer_id", p.CustomerID).
			Uint("book_id", p.BookID).
			Msg("写入购买记录失败")
		return apperrors.WrapDB(result.Error, "写入购买记录失败")
	}
	if result.RowsAffected == 0 {
		return purchase.ErrInsertFailed
	}

	p.ID = model.ID
	return nil
}

func (r *purchaseRepository) FindByID(ctx context.Context, id uint) (*purchase.Purchase, error) {
	var model PurchaseModel
	err := dbFrom(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, purchase.ErrPurchaseNotFound
		}
		log.Error().Err(err).Uint("id", id).Msg("查询购买记录失败")
		return nil, apperrors.WrapDB(err, "查询购买记录失败")
	}

	return r.toEntity(ctx, &model)
}

func (r *purchaseRepository) List(ctx context.Context) ([]*purchase.Purchase, error) {
	return r.list(ctx, dbFrom(ctx, r.db))
}

func (r *purchaseRepository) ListByCustomer(ctx context.Context, customerID uint) ([]*purchase.Purchase, error) {
	return r.list(ctx, dbFrom(ctx, r.db).Where("customer_id = ?", customerID))
}

func (r *purchaseRepository) list(ctx context.Context, query *gorm.DB) ([]*purchase.Purchase, error) {
	var models []PurchaseModel
	if err := query.Order("purchased_at DESC").Order("id DESC").Find(&models).Error; err != nil {
		log.Error().Err(err).Msg("查询购买记录列表失败")
		return nil, apperrors.WrapDB(err, "查询购买记录列表失败")
	}

	purchases := make([]*purchase.Purchase, 0, len(models))
	for i := range models {
		p, err := r.toEntity(ctx, &models[i])
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, nil
}

// toEntity 按ID加载客户与图书；被删除的引用保持nil
func (r *purchaseRepository) toEntity(ctx context.Context, model *PurchaseModel) (*purchase.Purchase, error) {
	p := &purchase.Purchase{
		ID:          model.ID,
		CustomerID:  model.CustomerID,
		BookID:      model.BookID,
		PurchasedAt: model.PurchasedAt,
	}

	c, err := r.customers.FindByID(ctx, model.CustomerID)
	switch {
	case err == nil:
		p.Customer = c
	case !errors.Is(err, customer.ErrCustomerNotFound):
		return nil, err
	}

	b, err := r.books.FindByID(ctx, model.BookID)
	switch {
	case err == nil:
		p.Book = b
	case !errors.Is(err, book.ErrBookNotFound):
		return nil, err
	}

	return p, nil
}
