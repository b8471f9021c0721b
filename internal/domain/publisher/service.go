package publisher

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/xiebiao/backoffice/internal/domain/rules"
	apperrors "github.com/xiebiao/backoffice/pkg/errors"
)

// Service 出版社用例门面
type Service interface {
	Create(ctx context.Context, p *Publisher) error
	Get(ctx context.Context, id uint) (*Publisher, error)
	GetByName(ctx context.Context, name string) (*Publisher, error)
	List(ctx context.Context) ([]*Publisher, error)
	Update(ctx context.Context, p *Publisher) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService 创建出版社服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, p *Publisher) error {
	if err := validatePublisher(p, false); err != nil {
		return err
	}
	return s.repo.Create(ctx, p)
}

func (s *service) Get(ctx context.Context, id uint) (*Publisher, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetByName(ctx context.Context, name string) (*Publisher, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "出版社名称不能为空")
	}
	return s.repo.FindByName(ctx, name)
}

func (s *service) List(ctx context.Context) ([]*Publisher, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, p *Publisher) error {
	if err := validatePublisher(p, true); err != nil {
		return err
	}
	return s.repo.Update(ctx, p)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}

func validatePublisher(p *Publisher, requireID bool) error {
	if p == nil {
		return apperrors.New(apperrors.ErrCodeInvalidParams, "出版社不能为空")
	}
	if requireID && p.ID == 0 {
		return ErrInvalidID
	}

	err := validation.ValidateStruct(p,
		validation.Field(&p.Name, rules.NotBlank("出版社名称不能为空"), validation.Length(1, 100)),
		validation.Field(&p.Phone, validation.Length(0, 20)),
		validation.Field(&p.Manager, validation.Length(0, 100)),
		validation.Field(&p.Category, validation.Length(0, 50)),
	)
	if err != nil {
		return apperrors.InvalidParams(err)
	}
	return nil
}
