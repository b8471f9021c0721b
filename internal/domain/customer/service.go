package customer

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/xiebiao/backoffice/internal/domain/rules"
	apperrors "github.com/xiebiao/backoffice/pkg/errors"
)

// Service 客户用例门面
// 校验输入后直接委托给仓储，不包含其他业务逻辑
type Service interface {
	Create(ctx context.Context, c *Customer) error
	Get(ctx context.Context, id uint) (*Customer, error)
	List(ctx context.Context) ([]*Customer, error)
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService 创建客户服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, c *Customer) error {
	if err := validateCustomer(c, false); err != nil {
		return err
	}
	c.Active = true
	return s.repo.Create(ctx, c)
}

func (s *service) Get(ctx context.Context, id uint) (*Customer, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Customer, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, c *Customer) error {
	if err := validateCustomer(c, true); err != nil {
		return err
	}
	return s.repo.Update(ctx, c)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}

// validateCustomer 必填：姓名、税号、类型；更新时还要求ID
func validateCustomer(c *Customer, requireID bool) error {
	if c == nil {
		return apperrors.New(apperrors.ErrCodeInvalidParams, "客户不能为空")
	}
	if requireID && c.ID == 0 {
		return ErrInvalidID
	}

	err := validation.ValidateStruct(c,
		validation.Field(&c.Name, rules.NotBlank("姓名不能为空"), validation.Length(1, 100)),
		validation.Field(&c.TaxID, rules.NotBlank("税号不能为空"), validation.Length(1, 20)),
		validation.Field(&c.PersonType,
			validation.Required.Error("客户类型不能为空"),
			validation.In(PersonIndividual, PersonOrganization).Error("客户类型必须为PF或PJ"),
		),
		validation.Field(&c.Phone, validation.Length(0, 20)),
		validation.Field(&c.Address, validation.Length(0, 200)),
	)
	if err != nil {
		return apperrors.InvalidParams(err)
	}
	return nil
}
