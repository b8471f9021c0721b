package book

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"github.com/xiebiao/backoffice/internal/domain/rules"
	apperrors "github.com/xiebiao/backoffice/pkg/errors"
)

// Service 图书用例门面
type Service interface {
	Create(ctx context.Context, b *Book) error
	Get(ctx context.Context, id uint) (*Book, error)
	List(ctx context.Context) ([]*Book, error)
	Update(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService 创建图书服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, b *Book) error {
	if err := validateBook(b, false); err != nil {
		return err
	}
	return s.repo.Create(ctx, b)
}

func (s *service) Get(ctx context.Context, id uint) (*Book, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Book, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, b *Book) error {
	if err := validateBook(b, true); err != nil {
		return err
	}
	return s.repo.Update(ctx, b)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}

// validateBook 书名、ISBN必填；必须引用出版社；库存和价格不能为负
func validateBook(b *Book, requireID bool) error {
	if b == nil {
		return apperrors.New(apperrors.ErrCodeInvalidParams, "图书不能为空")
	}
	if requireID && b.ID == 0 {
		return ErrInvalidID
	}
	if b.PublisherRef() == 0 {
		return apperrors.New(apperrors.ErrCodeInvalidParams, "图书必须关联出版社")
	}

	err := validation.ValidateStruct(b,
		validation.Field(&b.Title, rules.NotBlank("书名不能为空"), validation.Length(1, 200)),
		validation.Field(&b.ISBN, rules.NotBlank("ISBN不能为空"), validation.Length(1, 20)),
		validation.Field(&b.Author, validation.Length(0, 100)),
		validation.Field(&b.Stock, validation.Min(0).Error("库存不能为负数")),
		validation.Field(&b.Price, validation.By(nonNegativeDecimal)),
	)
	if err != nil {
		return apperrors.InvalidParams(err)
	}
	return nil
}

func nonNegativeDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return validation.NewError("validation_decimal", "价格格式不正确")
	}
	if d.IsNegative() {
		return validation.NewError("validation_min", "价格不能为负数")
	}
	return nil
}
