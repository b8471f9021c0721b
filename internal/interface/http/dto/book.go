package dto

import (
	"github.com/shopspring/decimal"

	"github.com/xiebiao/backoffice/internal/domain/book"
)

// BookRequest 新增/修改图书
// price接受数字或字符串（"59.90"），避免浮点误差
type BookRequest struct {
	Title       string          `json:"title" binding:"required,max=200" example:"Go na Prática"`
	Author      string          `json:"author" binding:"max=100" example:"Ana Souza"`
	ISBN        string          `json:"isbn" binding:"required,max=20" example:"9788500000011"`
	PublisherID uint            `json:"publisher_id" binding:"required,min=1" example:"1"`
	Stock       int             `json:"stock" binding:"min=0" example:"10"`
	Price       decimal.Decimal `json:"price" swaggertype:"string" example:"59.90"`
	Category    string          `json:"category" binding:"max=50" example:"Tecnologia"`
}

func (r *BookRequest) ToEntity(id uint) *book.Book {
	b := book.NewBook(r.Title, r.Author, r.ISBN, nil, r.Stock, r.Price, r.Category)
	b.ID = id
	b.SetPublisherID(r.PublisherID)
	return b
}

// BookResponse 图书，publisher为已加载的出版社（已删除时为null）
type BookResponse struct {
	ID          uint               `json:"id" example:"1"`
	Title       string             `json:"title" example:"Go na Prática"`
	Author      string             `json:"author" example:"Ana Souza"`
	ISBN        string             `json:"isbn" example:"9788500000011"`
	PublisherID uint               `json:"publisher_id" example:"1"`
	Publisher   *PublisherResponse `json:"publisher,omitempty"`
	Stock       int                `json:"stock" example:"10"`
	Price       string             `json:"price" example:"59.90"`
	Category    string             `json:"category" example:"Tecnologia"`
}

func NewBookResponse(b *book.Book) *BookResponse {
	if b == nil {
		return nil
	}
	return &BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		PublisherID: b.PublisherRef(),
		Publisher:   NewPublisherResponse(b.Publisher),
		Stock:       b.Stock,
		Price:       b.Price.StringFixed(2),
		Category:    b.Category,
	}
}

func NewBookList(books []*book.Book) []*BookResponse {
	list := make([]*BookResponse, 0, len(books))
	for _, b := range books {
		list = append(list, NewBookResponse(b))
	}
	return list
}
