package book

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/backoffice/internal/domain/deletion"
	"github.com/xiebiao/backoffice/internal/domain/publisher"
)

// DeletePolicy 图书物理删除，已有购买记录时拒绝删除
const DeletePolicy = deletion.Hard

// Book 图书实体
// PublisherID与Publisher同时存在时以Publisher为准，
// 读取时仓储会按PublisherID加载完整的Publisher
type Book struct {
	ID          uint
	Title       string
	Author      string
	ISBN        string
	PublisherID uint
	Publisher   *publisher.Publisher
	Stock       int
	Price       decimal.Decimal
	Category    string
}

// NewBook 创建图书
func NewBook(title, author, isbn string, pub *publisher.Publisher, stock int, price decimal.Decimal, category string) *Book {
	b := &Book{
		Title:    title,
		Author:   author,
		ISBN:     isbn,
		Stock:    stock,
		Price:    price,
		Category: category,
	}
	b.SetPublisher(pub)
	return b
}

// SetPublisher 设置出版社，同时覆盖PublisherID
func (b *Book) SetPublisher(p *publisher.Publisher) {
	b.Publisher = p
	if p != nil {
		b.PublisherID = p.ID
	}
}

// SetPublisherID 只设置引用；已加载的出版社ID不一致时丢弃
func (b *Book) SetPublisherID(id uint) {
	b.PublisherID = id
	if b.Publisher != nil && b.Publisher.ID != id {
		b.Publisher = nil
	}
}

// PublisherRef 写入存储时使用的出版社ID
func (b *Book) PublisherRef() uint {
	if b.Publisher != nil {
		return b.Publisher.ID
	}
	return b.PublisherID
}

// InStock 是否还有库存
func (b *Book) InStock() bool {
	return b.Stock > 0
}

func (b *Book) String() string {
	return fmt.Sprintf("%s (%s)", b.Title, b.Author)
}
