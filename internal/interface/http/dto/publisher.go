package dto

import (
	"github.com/xiebiao/backoffice/internal/domain/publisher"
)

// PublisherRequest 新增/修改出版社
type PublisherRequest struct {
	Name     string `json:"name" binding:"required,max=100" example:"Editora Alfa"`
	Address  string `json:"address" binding:"max=200" example:"Rua A, 100"`
	Phone    string `json:"phone" binding:"max=20" example:"1133334444"`
	Manager  string `json:"manager" binding:"max=100" example:"Maria"`
	Category string `json:"category" binding:"max=50" example:"Técnico"`
}

func (r *PublisherRequest) ToEntity(id uint) *publisher.Publisher {
	p := publisher.NewPublisher(r.Name, r.Address, r.Phone, r.Manager, r.Category)
	p.ID = id
	return p
}

// PublisherResponse 出版社
type PublisherResponse struct {
	ID       uint   `json:"id" example:"1"`
	Name     string `json:"name" example:"Editora Alfa"`
	Address  string `json:"address" example:"Rua A, 100"`
	Phone    string `json:"phone" example:"1133334444"`
	Manager  string `json:"manager" example:"Maria"`
	Category string `json:"category" example:"Técnico"`
}

func NewPublisherResponse(p *publisher.Publisher) *PublisherResponse {
	if p == nil {
		return nil
	}
	return &PublisherResponse{
		ID:       p.ID,
		Name:     p.Name,
		Address:  p.Address,
		Phone:    p.Phone,
		Manager:  p.Manager,
		Category: p.Category,
	}
}

func NewPublisherList(publishers []*publisher.Publisher) []*PublisherResponse {
	list := make([]*PublisherResponse, 0, len(publishers))
	for _, p := range publishers {
		list = append(list, NewPublisherResponse(p))
	}
	return list
}
