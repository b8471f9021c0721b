package dto

import (
	"github.com/xiebiao/backoffice/internal/domain/customer"
)

// CustomerRequest 新增/修改客户
type CustomerRequest struct {
	Name       string `json:"name" binding:"required,max=100" example:"João Silva"`
	Address    string `json:"address" binding:"max=200" example:"Rua B, 200"`
	Phone      string `json:"phone" binding:"max=20" example:"11999990000"`
	TaxID      string `json:"tax_id" binding:"required,max=20" example:"12345678900"`
	PersonType string `json:"person_type" binding:"required,oneof=PF PJ" example:"PF"` // PF个人 / PJ机构
}

// ToEntity id为0表示新增
func (r *CustomerRequest) ToEntity(id uint) *customer.Customer {
	c := customer.NewCustomer(r.Name, r.Address, r.Phone, r.TaxID, customer.PersonType(r.PersonType))
	c.ID = id
	return c
}

// CustomerResponse 客户
type CustomerResponse struct {
	ID         uint   `json:"id" example:"1"`
	Name       string `json:"name" example:"João Silva"`
	Address    string `json:"address" example:"Rua B, 200"`
	Phone      string `json:"phone" example:"11999990000"`
	TaxID      string `json:"tax_id" example:"12345678900"`
	PersonType string `json:"person_type" example:"PF"`
}

func NewCustomerResponse(c *customer.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:         c.ID,
		Name:       c.Name,
		Address:    c.Address,
		Phone:      c.Phone,
		TaxID:      c.TaxID,
		PersonType: string(c.PersonType),
	}
}

func NewCustomerList(customers []*customer.Customer) []*CustomerResponse {
	list := make([]*CustomerResponse, 0, len(customers))
	for _, c := range customers {
		list = append(list, NewCustomerResponse(c))
	}
	return list
}
