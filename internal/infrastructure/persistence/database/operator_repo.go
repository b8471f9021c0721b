package database

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/xiebiao/backoffice/internal/domain/operator"
	apperrors "github.com/xiebiao/backoffice/pkg/errors"
)

type operatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository 创建操作员仓储
func NewOperatorRepository(db *gorm.DB) operator.Repository {
	return &operatorRepository{db: db}
}

// Create 邮箱唯一性由UNIQUE索引保证，冲突转换为ErrEmailDuplicate
func (r *operatorRepository) Create(ctx context.Context, op *operator.Operator) error {
	model := &OperatorModel{
		Email:    op.Email,
		Password: op.Password,
		Nickname: op.Nickname,
	}

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.ErrEmailDuplicate
		}
		log.Error().Err(err).Str("email", op.Email).Msg("创建操作员失败")
		return apperrors.WrapDB(err, "创建操作员失败")
	}

	op.ID = model.ID
	op.CreatedAt = model.CreatedAt
	op.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *operatorRepository) FindByID(ctx context.Context, id uint) (*operator.Operator, error) {
	var model OperatorModel
	if err := dbFrom(ctx, r.db).First(&model, id).Error; err != nil {
		return nil, r.notFoundOr(err)
	}
	return toOperatorEntity(&model), nil
}

func (r *operatorRepository) FindByEmail(ctx context.Context, email string) (*operator.Operator, error) {
	var model OperatorModel
	if err := dbFrom(ctx, r.db).Where("email = ?", email).First(&model).Error; err != nil {
		return nil, r.notFoundOr(err)
	}
	return toOperatorEntity(&model), nil
}

func (r *operatorRepository) notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return operator.ErrOperatorNotFound
	}
	log.Error().Err(err).Msg("查询操作员失败")
	return apperrors.WrapDB(err, "查询操作员失败")
}

func toOperatorEntity(model *OperatorModel) *operator.Operator {
	return &operator.Operator{
		ID:        model.ID,
		Email:     model.Email,
		Password:  model.Password,
		Nickname:  model.Nickname,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
