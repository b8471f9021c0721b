package publisher

import (
	"github.com/xiebiao/backoffice/internal/domain/deletion"
)

// DeletePolicy 出版社物理删除，仍有关联图书时拒绝删除
const DeletePolicy = deletion.Hard

// Publisher 出版社实体
type Publisher struct {
	ID       uint
	Name     string
	Address  string
	Phone    string
	Manager  string // 负责人
	Category string
}

// NewPublisher 创建出版社
func NewPublisher(name, address, phone, manager, category string) *Publisher {
	return &Publisher{
		Name:     name,
		Address:  address,
		Phone:    phone,
		Manager:  manager,
		Category: category,
	}
}

func (p *Publisher) String() string {
	return p.Name
}
