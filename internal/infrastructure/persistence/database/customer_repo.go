package database

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/xiebiao/backoffice/internal/domain/customer"
	apperrors "github.com/xiebiao/backoffice/pkg/errors"
)

// customerRepository 客户仓储实现
// 所有读写都带active=true条件，软删除的客户对外不可见
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository 创建客户仓储
func NewCustomerRepository(db *gorm.DB) customer.Repository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *customer.Customer) error {
	model := &CustomerModel{
		Name:       c.Name,
		Address:    c.Address,
		TaxID:      c.TaxID,
		PersonType: string(c.PersonType),
		Phone:      c.Phone,
		Active:     true,
	}

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		log.Error().Err(err).Str("name", c.Name).Msg("创建客户失败")
		return apperrors.WrapDB(err, "创建客户失败")
	}

	c.ID = model.ID
	c.Active = true
	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model CustomerModel
	err := dbFrom(ctx, r.db).Where("id = ? AND active = ?", id, true).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		log.Error().Err(err).Uint("id", id).Msg("查询客户失败")
		return nil, apperrors.WrapDB(err, "查询客户失败")
	}

	return toCustomerEntity(&model), nil
}

func (r *customerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	var models []CustomerModel
	err := dbFrom(ctx, r.db).Where("active = ?", true).Order("name").Order("id").Find(&models).Error
	if err != nil {
		log.Error().Err(err).Msg("查询客户列表失败")
		return nil, apperrors.WrapDB(err, "查询客户列表失败")
	}

	customers := make([]*customer.Customer, len(models))
	for i := range models {
		customers[i] = toCustomerEntity(&models[i])
	}
	return customers, nil
}

func (r *customerRepository) Update(ctx context.Context, c *customer.Customer) error {
	db := dbFrom(ctx, r.db)
	result := db.Model(&CustomerModel{}).
		Where("id = ? AND active = ?", c.ID, true).
		Updates(map[string]interface{}{
			"name":        c.Name,
			"address":     c.Address,
			"tax_id":      c.TaxID,
			"person_type": string(c.PersonType),
			"phone":       c.Phone,
		})
	if result.Error != nil {
		log.Error().Err(result.Error).Uint("id", c.ID).Msg("更新客户失败")
		return apperrors.WrapDB(result.Error, "更新客户失败")
	}

	if result.RowsAffected == 0 {
		// MySQL在值未变化时RowsAffected为0，需要再确认一次记录是否存在
		if _, err := r.FindByID(ctx, c.ID); err != nil {
			return err
		}
	}
	c.Active = true
	return nil
}

// Delete 软删除：只把active置为false
func (r *customerRepository) Delete(ctx context.Context, id uint) error {
	result := dbFrom(ctx, r.db).Model(&CustomerModel{}).
		Where("id = ? AND active = ?", id, true).
		Update("active", false)
	if result.Error != nil {
		log.Error().Err(result.Error).Uint("id", id).Msg("删除客户失败")
		return apperrors.WrapDB(result.Error, "删除客户失败")
	}

	if result.RowsAffected == 0 {
		return customer.ErrCustomerNotFound
	}
	return nil
}

func toCustomerEntity(model *CustomerModel) *customer.Customer {
	return &customer.Customer{
		ID:         model.ID,
		Name:       model.Name,
		Address:    model.Address,
		Phone:      model.Phone,
		TaxID:      model.TaxID,
		PersonType: customer.PersonType(model.PersonType),
		Active:     model.Active,
	}
}
