package database

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/xiebiao/backoffice/internal/domain/publisher"
	apperrors "github.com/xiebiao/backoffice/pkg/errors"
)

type publisherRepository struct {
	db *gorm.DB
}

// NewPublisherRepository 创建出版社仓储
func NewPublisherRepository(db *gorm.DB) publisher.Repository {
	return &publisherRepository{db: db}
}

func (r *publisherRepository) Create(ctx context.Context, p *publisher.Publisher) error {
	model := toPublisherModel(p)
	model.ID = 0

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		log.Error().Err(err).Str("name", p.Name).Msg("创建出版社失败")
		return apperrors.WrapDB(err, "创建出版社失败")
	}

	p.ID = model.ID
	return nil
}

func (r *publisherRepository) FindByID(ctx context.Context, id uint) (*publisher.Publisher, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *publisherRepository) FindByName(ctx context.Context, name string) (*publisher.Publisher, error) {
	return r.findOne(ctx, "name = ?", name)
}

func (r *publisherRepository) findOne(ctx context.Context, query string, arg interface{}) (*publisher.Publisher, error) {
	var model PublisherModel
	err := dbFrom(ctx, r.db).Where(query, arg).Order("id").First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, publisher.ErrPublisherNotFound
		}
		log.Error().Err(err).Interface("arg", arg).Msg("查询出版社失败")
		return nil, apperrors.WrapDB(err, "查询出版社失败")
	}
	return toPublisherEntity(&model), nil
}

func (r *publisherRepository) List(ctx context.Context) ([]*publisher.Publisher, error) {
	var models []PublisherModel
	if err := dbFrom(ctx, r.db).Order("name").Order("id").Find(&models).Error; err != nil {
		log.Error().Err(err).Msg("查询出版社列表失败")
		return nil, apperrors.WrapDB(err, "查询出版社列表失败")
	}

	publishers := make([]*publisher.Publisher, len(models))
	for i := range models {
		publishers[i] = toPublisherEntity(&models[i])
	}
	return publishers, nil
}

func (r *publisherRepository) Update(ctx context.Context, p *publisher.Publisher) error {
	result := dbFrom(ctx, r.db).Model(&PublisherModel{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":     p.Name,
			"address":  p.Address,
			"phone":    p.Phone,
			"manager":  p.Manager,
			"category": p.Category,
		})
	if result.Error != nil {
		log.Error().Err(result.Error).Uint("id", p.ID).Msg("更新出版社失败")
		return apperrors.WrapDB(result.Error, "更新出版社失败")
	}

	if result.RowsAffected == 0 {
		if _, err := r.FindByID(ctx, p.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete 物理删除，检查关联图书与删除在同一事务中
func (r *publisherRepository) Delete(ctx context.Context, id uint) error {
	err := dbFrom(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var books int64
		if err := tx.Model(&BookModel{}).Where("publisher_id = ?", id).Count(&books).Error; err != nil {
			return apperrors.WrapDB(err, "查询出版社图书失败")
		}
		if books > 0 {
			return publisher.ErrPublisherInUse
		}

		result := tx.Delete(&PublisherModel{}, id)
		if result.Error != nil {
			return apperrors.WrapDB(result.Error, "删除出版社失败")
		}
		if result.RowsAffected == 0 {
			return publisher.ErrPublisherNotFound
		}
		return nil
	})
	if err != nil && apperrors.HasCode(err, apperrors.ErrCodeDatabaseError) {
		log.Error().Err(err).Uint("id", id).Msg("删除出版社失败")
	}
	return err
}

func toPublisherModel(p *publisher.Publisher) *PublisherModel {
	return &PublisherModel{
		ID:       p.ID,
		Name:     p.Name,
		Address:  p.Address,
		Phone:    p.Phone,
		Manager:  p.Manager,
		Category: p.Category,
	}
}

func toPublisherEntity(model *PublisherModel) *publisher.Publisher {
	return &publisher.Publisher{
		ID:       model.ID,
		Name:     model.Name,
		Address:  model.Address,
		Phone:    model.Phone,
		Manager:  model.Manager,
		Category: model.Category,
	}
}
