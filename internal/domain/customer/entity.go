package customer

import (
	"github.com/xiebiao/backoffice/internal/domain/deletion"
)

// DeletePolicy 客户只做软删除（active=false），历史购买记录仍能引用其ID
const DeletePolicy = deletion.Soft

// PersonType 客户类型
type PersonType string

const (
	PersonIndividual   PersonType = "PF" // 个人
	PersonOrganization PersonType = "PJ" // 机构
)

// Valid 是否为已知类型
func (t PersonType) Valid() bool {
	return t == PersonIndividual || t == PersonOrganization
}

// Customer 客户实体
// ID由存储层分配，0表示尚未持久化
type Customer struct {
	ID         uint
	Name       string
	Address    string
	Phone      string
	TaxID      string // 税号（个人或机构）
	PersonType PersonType
	Active     bool
}

// NewCustomer 创建新客户，默认为激活状态
func NewCustomer(name, address, phone, taxID string, personType PersonType) *Customer {
	return &Customer{
		Name:       name,
		Address:    address,
		Phone:      phone,
		TaxID:      taxID,
		PersonType: personType,
		Active:     true,
	}
}

func (c *Customer) String() string {
	return c.Name
}
