package database

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 以下是infrastructure层的数据模型，包含GORM tag；
// domain层实体不依赖GORM，由各Repository负责转换

// OperatorModel 操作员
type OperatorModel struct {
	ID        uint           `gorm:"primaryKey"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	Nickname  string         `gorm:"size:50;not null;comment:昵称"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

func (OperatorModel) TableName() string {
	return "operators"
}

// CustomerModel 客户
// active=false表示已软删除，查询时由Repository过滤
type CustomerModel struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"index;size:100;not null;comment:姓名"`
	Address    string `gorm:"size:200;comment:地址"`
	TaxID      string `gorm:"size:20;not null;comment:税号"`
	PersonType string `gorm:"size:2;not null;comment:类型(PF个人/PJ机构)"`
	Phone      string `gorm:"size:20;comment:电话"`
	Active     bool   `gorm:"index;not null;default:true;comment:是否有效"`
}

func (CustomerModel) TableName() string {
	return "customer"
}

// PublisherModel 出版社
type PublisherModel struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"index;size:100;not null;comment:名称"`
	Address  string `gorm:"size:200;comment:地址"`
	Phone    string `gorm:"size:20;comment:电话"`
	Manager  string `gorm:"size:100;comment:负责人"`
	Category string `gorm:"size:50;comment:类别"`
}

func (PublisherModel) TableName() string {
	return "publisher"
}

// BookModel 图书
// 价格使用decimal存储，避免浮点误差
type BookModel struct {
	ID          uint            `gorm:"primaryKey"`
	PublisherID uint            `gorm:"index;not null;comment:出版社ID"`
	Title       string          `gorm:"index;size:200;not null;comment:书名"`
	Author      string          `gorm:"size:100;comment:作者"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:价格"`
	Category    string          `gorm:"size:50;comment:类别"`
	ISBN        string          `gorm:"column:isbn;uniqueIndex;size:20;not null;comment:ISBN号"`
	Stock       int             `gorm:"not null;default:0;comment:库存数量"`
}

func (BookModel) TableName() string {
	return "book"
}

// PurchaseModel 购买记录，只追加
type PurchaseModel struct {
	ID          uint      `gorm:"primaryKey"`
	CustomerID  uint      `gorm:"index;not null;comment:客户ID"`
	BookID      uint      `gorm:"index;not null;comment:图书ID"`
	PurchasedAt time.Time `gorm:"index;not null;comment:购买时间"`
}

func (PurchaseModel) TableName() string {
	return "purchase"
}
